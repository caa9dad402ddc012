// Package main implements the tb CLI tool.
package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		var exitErr interface{ ExitCode() int }
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tb",
	Short: "Taskbook - a snapshot-backed task manager",
}

var rootFile string

func init() {
	rootCmd.PersistentFlags().StringVar(&rootFile, "file", "", "Snapshot file (overrides tasks.file from config)")
}
