package main

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/m-lima/dircmp"
	"github.com/m-lima/dircmp/internal/config"
	"github.com/m-lima/dircmp/internal/reconcile"
)

var copySettings config.CopySettings

var copyCmd = &cobra.Command{
	Use:   "copy REFERENCE DERIVED TARGET",
	Short: "Reconcile REFERENCE and DERIVED into a single TARGET tree",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		copySettings.Reference = args[0]
		copySettings.Derived = args[1]
		copySettings.Target = args[2]
		return runCopy(cmd, copySettings)
	},
}

func init() {
	rootCmd.AddCommand(copyCmd)
}

func runCopy(cmd *cobra.Command, s config.CopySettings) error {
	reference, derived, err := dircmp.Compare(cmd.Context(), s.Reference, s.Derived)
	if err != nil {
		return fmt.Errorf("comparing %s and %s: %w", s.Reference, s.Derived, err)
	}

	start := time.Now()
	n, err := reconcile.Copy(reference, derived, s.Target)
	if err != nil {
		return fmt.Errorf("reconciling into %s: %w", s.Target, err)
	}

	logrus.Infof("finished copying %d files into %s in %s", n, s.Target, time.Since(start))
	return nil
}
