package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var policyInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default policy file",
	Long:  `Generate the strict default policy artifact at ./policy.yaml`,
	RunE:  runPolicyInit,
}

func init() {
	policyCmd.AddCommand(policyInitCmd)
	policyInitCmd.Flags().StringP("output", "o", "", "output path (default: ./policy.yaml)")
	policyInitCmd.Flags().Bool("force", false, "overwrite existing policy file")
}

func runPolicyInit(cmd *cobra.Command, _ []string) error {
	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return fmt.Errorf("failed to get output flag: %w", err)
	}
	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return fmt.Errorf("failed to get force flag: %w", err)
	}

	if output == "" {
		output = defaultPolicyFile
	}

	// Check if file exists
	if _, err := os.Stat(output); err == nil && !force {
		return fmt.Errorf("policy file already exists at %s (use --force to overwrite)", output)
	}

	// Create directory if needed
	dir := filepath.Dir(output)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create policy directory: %w", err)
	}

	if err := os.WriteFile(output, []byte(defaultPolicyTemplate), 0o600); err != nil {
		return fmt.Errorf("failed to write policy file: %w", err)
	}

	fmt.Printf("✓ Policy file created at %s\n", output)
	fmt.Println("\nNext steps:")
	fmt.Println("  1. Adjust the lint suppressions and exclusions to taste")
	fmt.Println("  2. Validate with: taskvet policy validate")
	fmt.Println("  3. Keep it honest while editing: taskvet policy watch")

	return nil
}
