package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taskvet/taskvet/internal/policy"
)

var policyShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective policy",
	Long:  `Print every declared policy setting as block.key=value, in artifact order.`,
	RunE:  runPolicyShow,
}

func init() {
	policyCmd.AddCommand(policyShowCmd)
}

func runPolicyShow(_ *cobra.Command, _ []string) error {
	path := resolvePolicyPath()

	cfg, err := policy.Load(path)
	if err != nil {
		return err
	}

	for _, setting := range cfg.Settings() {
		fmt.Println(setting.String())
	}

	return nil
}
