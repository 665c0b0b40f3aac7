package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/seamfix/internal/cli"
)

func main() {
	// Load .env if exists
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "seamfix",
		Short: "seamfix - stitch holes split across two B-rep faces",
		Long: `seamfix pairs partial boundary wires on different faces that bound the
same hole, builds the connecting edge and splits both faces.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(cli.StitchCmd())
	rootCmd.AddCommand(cli.InspectCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
