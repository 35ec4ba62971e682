package main

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/m-lima/dircmp/internal/config"
	"github.com/m-lima/dircmp/internal/render"
	"github.com/m-lima/dircmp/internal/serialize"
	"github.com/m-lima/dircmp/internal/stats"
	"github.com/m-lima/dircmp/internal/summary"

	"github.com/m-lima/dircmp"
)

var scanSettings config.ScanSettings

var scanCmd = &cobra.Command{
	Use:   "scan LEFT RIGHT",
	Short: "Compare two directory trees and report how they differ",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		scanSettings.Left = args[0]
		scanSettings.Right = args[1]
		scanSettings.Workers = config.Concurrency(scanSettings.Workers)
		return runScan(cmd, scanSettings)
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().StringVarP(&scanSettings.Output, "output", "o", config.EnvOr("DIRCMP_OUTPUT", ""), "write the binary comparison result to this file")
	scanCmd.Flags().StringVar(&scanSettings.Summary, "summary", config.EnvOr("DIRCMP_SUMMARY", ""), "write a TSV summary to this file")
	scanCmd.Flags().StringVar(&scanSettings.Print, "print", config.EnvOr("DIRCMP_PRINT", "diff"), `what to print to stdout: "none", "diff", or "all"`)
	scanCmd.Flags().BoolVar(&scanSettings.Stats, "stats", config.EnvToBool("DIRCMP_STATS", false), "print per-tree statistics after comparing")
	scanCmd.Flags().IntVar(&scanSettings.Workers, "workers", 0, "worker pool capacity (defaults to DIRCMP_WORKERS or the number of CPUs)")
}

func runScan(cmd *cobra.Command, s config.ScanSettings) error {
	start := time.Now()

	left, right, err := dircmp.CompareWithConcurrency(cmd.Context(), s.Left, s.Right, s.Workers)
	if err != nil {
		return fmt.Errorf("comparing %s and %s: %w", s.Left, s.Right, err)
	}

	if s.Output != "" {
		if err := writeBinary(s.Output, left, right); err != nil {
			return err
		}
	}

	if s.Summary != "" {
		if err := writeSummary(s.Summary, left, right); err != nil {
			return err
		}
	}

	if s.Stats {
		stats.Print(os.Stdout, left)
		stats.Print(os.Stdout, right)
	}

	switch s.Print {
	case "none":
	case "all":
		if err := render.Write(os.Stdout, left, right, true); err != nil {
			return fmt.Errorf("printing comparison: %w", err)
		}
	case "diff":
		if err := render.Write(os.Stdout, left, right, false); err != nil {
			return fmt.Errorf("printing comparison: %w", err)
		}
	default:
		return fmt.Errorf("unknown --print value %q", s.Print)
	}

	logrus.Infof("elapsed: %s", time.Since(start))
	return nil
}

func writeBinary(path string, left, right *dircmp.Directory) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := serialize.Write(f, left, right); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func writeSummary(path string, left, right *dircmp.Directory) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := summary.Write(f, left, right); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
