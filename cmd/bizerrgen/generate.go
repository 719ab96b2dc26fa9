package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/VainJoker/bizerror/internal/emit"
	"github.com/VainJoker/bizerror/internal/schema"
)

var outPath string

// generateCmd renders one schema file into Go source.
var generateCmd = &cobra.Command{
	Use:   "generate <schema-file>",
	Short: "Generate Go source from a taxonomy schema",
	Long: `generate loads a taxonomy schema, resolves every variant's code the
way the runtime would, and writes formatted Go source. The schema format
is selected by extension: .yaml/.yml or .toml.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := schema.Load(args[0])
		if err != nil {
			return err
		}
		src, err := emit.Generate(f)
		if err != nil {
			return fmt.Errorf("generating from %s: %w", args[0], err)
		}
		if outPath == "" {
			_, err = cmd.OutOrStdout().Write(src)
			return err
		}
		if err := os.WriteFile(outPath, src, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", outPath, err)
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (defaults to stdout)")
	rootCmd.AddCommand(generateCmd)
}
