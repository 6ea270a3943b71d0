// Package main is the entry point for the rsa-cli application. It wires
// the key-management commands onto the root command and executes the
// command-line interface.
package main

import (
	"fmt"
	"log"

	commands "github.com/cipherkit/rsa-lib/cmd/rsa-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "rsa-cli",
		Short: "Textbook RSA operations CLI tool",
		Long: `rsa-cli exercises the RSA library end-to-end: key-pair generation,
encryption/decryption of text and integer payloads, and message
signing/verification. Keys live in an in-memory keystore for the
lifetime of a single invocation.`,
	}

	if err := commands.InitRSACommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}
