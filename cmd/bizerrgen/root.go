package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "bizerrgen",
	Short: "Generate business-error taxonomies as Go source",
	Long: `bizerrgen turns a declarative taxonomy schema (YAML or TOML) into Go
source built on the bizerror package: one classified error type per
taxonomy, a code table assigned in declaration order, typed code
constants, and variant constructors.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
