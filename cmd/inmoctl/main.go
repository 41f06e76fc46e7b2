// Command inmoctl queries the InmoGestor catalog from the terminal.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "inmoctl",
		Short:        "InmoGestor catalog tool",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		searchCmd(),
		reportCmd(),
		routesCmd(),
		digestCmd(),
	)
	return rootCmd
}

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
