package main

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gifportal",
		Short: "Wallet session client for the on-chain GIF board",
		Long: `gifportal connects a wallet to the GIF board program, creates the board
account once and submits GIF links to it.

Configuration is read from the environment; a .env file in the working
directory is loaded first if present.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
	}

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newWalletCmd())

	return cmd
}
