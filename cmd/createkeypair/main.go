// One-off: generate the board account keypair and write it to keypair.json.
// Every portal instance must load the same file, so run it once and share the result.
// Usage: go run ./cmd/createkeypair
package main

import (
	"fmt"
	"os"

	"github.com/AlexZinkM/gif-portal/internal/keypair"
)

func main() {
	kp, err := keypair.Generate(keypair.DefaultFileName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(kp.PublicKey().String())
}
