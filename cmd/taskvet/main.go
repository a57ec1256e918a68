// Package main is the entry point for taskvet.
package main

import (
	"context"
	"os"
	"path/filepath"

	"charm.land/fang/v2"
	"github.com/spf13/cobra"
)

const defaultPolicyFile = "policy.yaml"

var (
	cfgFile string
	dbFile  string
)

var rootCmd = &cobra.Command{
	Use:   "taskvet",
	Short: "Strictly-typed to-do task manager",
	Long: `taskvet is a to-do task manager backed by a JSON file database. It ships
with a static-analysis policy artifact and can validate, inspect, and watch
that policy alongside managing tasks.`,
}

func init() {
	// Global flags available to all subcommands
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"policy file path (default: ./"+defaultPolicyFile+" or ~/.config/taskvet/"+defaultPolicyFile+")")
	rootCmd.PersistentFlags().StringVar(&dbFile, "db", "",
		"task database path (default: ./task_db.json)")
}

func main() {
	if err := fang.Execute(context.Background(), rootCmd); err != nil {
		os.Exit(1)
	}
}

// findPolicyFile searches for the policy file in default locations.
func findPolicyFile() string {
	// Check current directory
	if _, err := os.Stat(defaultPolicyFile); err == nil {
		return defaultPolicyFile
	}
	// Check ~/.config/taskvet/
	home, err := os.UserHomeDir()
	if err == nil && home != "" {
		p := filepath.Join(home, ".config", "taskvet", defaultPolicyFile)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return defaultPolicyFile // Default, will error if not found
}

// resolvePolicyPath honors the --config flag before falling back to the
// default search locations.
func resolvePolicyPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	return findPolicyFile()
}
