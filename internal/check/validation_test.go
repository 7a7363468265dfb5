package check

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestValidateConfigYaml_MissingFile tests validation when the file is absent
func TestValidateConfigYaml_MissingFile(t *testing.T) {
	checker := NewChecker()
	checker.configDir = filepath.Join(t.TempDir(), "config")

	result := checker.validateConfigYaml()
	if result.Valid {
		t.Error("Validation should fail for a missing file")
	}
	if result.Error == nil {
		t.Error("Expected an error for a missing file")
	}
}

// TestValidateConfigYaml_BadYaml tests validation of malformed YAML
func TestValidateConfigYaml_BadYaml(t *testing.T) {
	checker := NewChecker()
	checker.configDir = t.TempDir()

	if err := os.WriteFile(checker.ConfigPath(), []byte("server: [unclosed"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	result := checker.validateConfigYaml()
	if result.Valid {
		t.Error("Validation should fail for malformed YAML")
	}
}

// TestValidateConfigYaml_AdminDisabledWarning tests that a disabled admin
// console surfaces as a warning, not an error.
func TestValidateConfigYaml_AdminDisabledWarning(t *testing.T) {
	checker := NewChecker()
	checker.configDir = t.TempDir()

	content := "server:\n  port: 8080\nadmin:\n  enabled: false\n"
	if err := os.WriteFile(checker.ConfigPath(), []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	result := checker.validateConfigYaml()
	if !result.Valid {
		t.Errorf("Validation should succeed, got error: %v", result.Error)
	}
	if len(result.Warnings) == 0 {
		t.Error("Expected a warning about the disabled admin console")
	}
}

// TestValidateConfigYaml_ChannelWithoutEvents tests the notification warning
func TestValidateConfigYaml_ChannelWithoutEvents(t *testing.T) {
	checker := NewChecker()
	checker.configDir = t.TempDir()

	content := "notifications:\n  channel: smtp\n"
	if err := os.WriteFile(checker.ConfigPath(), []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	result := checker.validateConfigYaml()
	if !result.Valid {
		t.Errorf("Validation should succeed, got error: %v", result.Error)
	}

	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "no events selected") {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected a no-events warning, got: %v", result.Warnings)
	}
}

// TestValidateYamlSyntax tests the YAML syntax helper
func TestValidateYamlSyntax(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.yaml")
	if err := os.WriteFile(good, []byte("key: value\nlist:\n  - a\n  - b\n"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
	if err := validateYamlSyntax(good); err != nil {
		t.Errorf("validateYamlSyntax failed for valid YAML: %v", err)
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("key: [unclosed"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
	if err := validateYamlSyntax(bad); err == nil {
		t.Error("validateYamlSyntax should fail for malformed YAML")
	}
}

// TestFindChrome_CustomPath tests the CHROME_PATH override
func TestFindChrome_CustomPath(t *testing.T) {
	fake := filepath.Join(t.TempDir(), "chrome")
	if err := os.WriteFile(fake, []byte("#!/bin/sh\n"), 0755); err != nil {
		t.Fatalf("Failed to write fake binary: %v", err)
	}

	t.Setenv("CHROME_PATH", fake)
	path, err := findChrome()
	if err != nil {
		t.Fatalf("findChrome failed: %v", err)
	}
	if path != fake {
		t.Errorf("findChrome = %s, want %s", path, fake)
	}

	t.Setenv("CHROME_PATH", filepath.Join(t.TempDir(), "missing"))
	if _, err := findChrome(); err == nil {
		t.Error("findChrome should fail when CHROME_PATH points to a missing file")
	}
}

// TestRenderConfigTemplate tests the generated starter configuration
func TestRenderConfigTemplate(t *testing.T) {
	content, err := renderConfigTemplate(&adminSetup{
		Username: "ops",
		Password: "Sup3rSecret!",
	})
	if err != nil {
		t.Fatalf("renderConfigTemplate failed: %v", err)
	}

	text := string(content)
	if !strings.Contains(text, "username: ops") {
		t.Error("Generated config should contain the admin username")
	}
	if !strings.Contains(text, "$2a$") && !strings.Contains(text, "$2b$") {
		t.Error("Generated config should contain a bcrypt password hash")
	}
	if strings.Contains(text, "Sup3rSecret!") {
		t.Error("Generated config must not contain the plaintext password")
	}
	if !strings.Contains(text, "jwt_secret") {
		t.Error("Generated config should contain a JWT secret")
	}
}
