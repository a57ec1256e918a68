package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taskvet/taskvet/cmd/taskvet/di"
	"github.com/taskvet/taskvet/internal/policy"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show database and policy status",
	Long: `Print the task database location, task count, next task ID, and whether
the policy artifact currently validates.`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(_ *cobra.Command, _ []string) error {
	c := newContainer()
	defer closeContainer(c)

	store := di.MustInvoke[*di.StoreService](c).Store

	count, err := store.Count()
	if err != nil {
		return err
	}

	next, err := store.NextID()
	if err != nil {
		return err
	}

	fmt.Printf("database: %s\n", store.Path())
	fmt.Printf("tasks:    %d\n", count)
	fmt.Printf("next id:  %d\n", next)

	policyPath := resolvePolicyPath()
	if cfg, err := policy.Load(policyPath); err != nil {
		fmt.Printf("policy:   ✗ %s (%s)\n", policyPath, err)
	} else if err := cfg.Validate(); err != nil {
		fmt.Printf("policy:   ✗ %s (invalid)\n", policyPath)
	} else {
		fmt.Printf("policy:   ✓ %s\n", policyPath)
	}

	return nil
}
