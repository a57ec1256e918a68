package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTempPolicy(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestValidatePolicyFileAcceptsTemplate(t *testing.T) {
	t.Parallel()

	path := writeTempPolicy(t, "policy.yaml", defaultPolicyTemplate)

	if err := validatePolicyFile(path); err != nil {
		t.Errorf("Expected template policy to validate, got: %v", err)
	}
}

func TestValidatePolicyFileRejectsUnknownOption(t *testing.T) {
	t.Parallel()

	path := writeTempPolicy(t, "policy.yaml", "typecheck:\n  disallow_everything: true\n")

	err := validatePolicyFile(path)
	if err == nil {
		t.Fatal("Expected validation error for unknown option")
	}
	if !strings.Contains(err.Error(), "disallow_everything") {
		t.Errorf("Expected error to name the unknown option, got: %v", err)
	}
}

func TestValidatePolicyFileRejectsBadValues(t *testing.T) {
	t.Parallel()

	path := writeTempPolicy(t, "policy.yaml", "lint:\n  max_complexity: -1\n")

	if err := validatePolicyFile(path); err == nil {
		t.Error("Expected validation error for non-positive max_complexity")
	}
}

func TestValidatePolicyFileTOML(t *testing.T) {
	t.Parallel()

	path := writeTempPolicy(t, "policy.toml", "[lint]\nmax_complexity = 6\n")

	if err := validatePolicyFile(path); err != nil {
		t.Errorf("Expected TOML policy to validate, got: %v", err)
	}
}

func TestValidatePolicyFileMissing(t *testing.T) {
	t.Parallel()

	err := validatePolicyFile(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Error("Expected error for missing policy file")
	}
}

func TestResolvePolicyPathHonorsFlag(t *testing.T) {
	// Note: cannot use t.Parallel() (mutates the package-level cfgFile)
	orig := cfgFile
	defer func() { cfgFile = orig }()

	cfgFile = "/tmp/custom-policy.yaml"
	if got := resolvePolicyPath(); got != "/tmp/custom-policy.yaml" {
		t.Errorf("resolvePolicyPath() = %q, want the --config value", got)
	}
}
