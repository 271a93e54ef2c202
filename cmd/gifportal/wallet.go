package main

import (
	"fmt"

	"github.com/AlexZinkM/gif-portal/internal/config"
	"github.com/AlexZinkM/gif-portal/solana"

	"github.com/spf13/cobra"
)

func newWalletCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wallet",
		Short: "Manage the local wallet keystore",
	}
	cmd.AddCommand(newWalletGenerateCmd())
	return cmd
}

func newWalletGenerateCmd() *cobra.Command {
	var filePath string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a new wallet and save it to an encrypted .cwt keystore",
		Example: `  # Write to WALLET_FILE_PATH
  gifportal wallet generate

  # Write to a specific file
  gifportal wallet generate --file wallet.cwt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if filePath == "" {
				wcfg, err := config.LoadWallet()
				if err != nil {
					return fmt.Errorf("no keystore path: pass --file or set WALLET_FILE_PATH: %w", err)
				}
				filePath = wcfg.WalletFilePath
			}

			password, err := config.PromptForPassword()
			if err != nil {
				return err
			}
			defer password.Clear()

			passwordBytes, err := password.Bytes()
			if err != nil {
				return err
			}
			defer clear(passwordBytes)

			address, err := solana.GenerateWallet(filePath, passwordBytes)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wallet generated: %s\n%s\n", filePath, address)
			return nil
		},
	}

	cmd.Flags().StringVarP(&filePath, "file", "f", "", "Keystore path (defaults to WALLET_FILE_PATH)")

	return cmd
}
