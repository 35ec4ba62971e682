package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/m-lima/dircmp/internal/config"
	"github.com/m-lima/dircmp/internal/render"
	"github.com/m-lima/dircmp/internal/serialize"
)

var printSettings config.PrintSettings

var printCmd = &cobra.Command{
	Use:   "print INPUT",
	Short: "Re-render a previously saved scan result",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		printSettings.Input = args[0]
		return runPrint(printSettings)
	},
}

func init() {
	rootCmd.AddCommand(printCmd)

	printCmd.Flags().StringVar(&printSettings.Summary, "summary", config.EnvOr("DIRCMP_SUMMARY", ""), "write a TSV summary to this file")
	printCmd.Flags().BoolVar(&printSettings.Matched, "matched", false, "also print Same entries")
}

func runPrint(s config.PrintSettings) error {
	f, err := os.Open(s.Input)
	if err != nil {
		return fmt.Errorf("opening %s: %w", s.Input, err)
	}
	defer f.Close()

	left, right, err := serialize.Read(f)
	if err != nil {
		return fmt.Errorf("reading %s: %w", s.Input, err)
	}

	if s.Summary != "" {
		if err := writeSummary(s.Summary, left, right); err != nil {
			return err
		}
	}

	return render.Write(os.Stdout, left, right, s.Matched)
}
