package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/taskvet/taskvet/internal/policy"
)

var policyCmd = &cobra.Command{
	Use:   "policy",
	Short: "Policy artifact management commands",
}

var policyValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the policy file",
	Long: `Validate the policy file without running any other command.
Checks document structure, recognized option names, and option values.`,
	RunE: runPolicyValidate,
}

func init() {
	policyCmd.AddCommand(policyValidateCmd)
	rootCmd.AddCommand(policyCmd)
}

func runPolicyValidate(_ *cobra.Command, _ []string) error {
	path := resolvePolicyPath()

	if err := validatePolicyFile(path); err != nil {
		fmt.Printf("✗ Policy validation failed: %s\n", err)
		return err
	}

	fmt.Printf("✓ %s is valid\n", path)

	return nil
}

// validatePolicyFile runs the full validation pipeline for a policy file:
// structural schema check on the raw document, strict decode, then semantic
// validation.
func validatePolicyFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read policy file %s: %w", path, err)
	}

	format := policy.DetectFormat(path)

	if err := policy.ValidateDocument(content, format); err != nil {
		return err
	}

	cfg, err := policy.Load(path)
	if err != nil {
		return err
	}

	return cfg.Validate()
}
