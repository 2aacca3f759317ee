package config

import (
	"os"
	"path/filepath"
	"testing"
)

// TestGetConfigDir validates config directory access
func TestGetConfigDir(t *testing.T) {
	tempDir := t.TempDir()
	if err := Init(filepath.Join(tempDir, "test_config")); err != nil {
		t.Fatalf("Failed to initialize config: %v", err)
	}

	configDir := GetConfigDir()
	if configDir == "" {
		t.Fatal("Config directory should not be empty")
	}

	if _, err := os.Stat(configDir); err != nil {
		t.Errorf("Config directory should exist: %v", err)
	}
}

// TestGetCredentialsPath validates credentials path
func TestGetCredentialsPath(t *testing.T) {
	tempDir := t.TempDir()
	if err := Init(filepath.Join(tempDir, "test_config")); err != nil {
		t.Fatalf("Failed to initialize config: %v", err)
	}

	credsPath := GetCredentialsPath()
	if credsPath == "" {
		t.Fatal("Credentials path should not be empty")
	}

	if !filepath.IsAbs(credsPath) {
		t.Error("Credentials path should be absolute")
	}
}

// TestInitWithCustomPath validates custom config path
func TestInitWithCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	customConfigPath := filepath.Join(tempDir, "custom", "path", "config.toml")

	if err := Init(customConfigPath); err != nil {
		t.Fatalf("Failed to initialize with custom path: %v", err)
	}

	configDir := GetConfigDir()
	expectedDir := filepath.Join(tempDir, "custom", "path")

	if configDir != expectedDir {
		t.Errorf("Expected config dir %s, got %s", expectedDir, configDir)
	}
}

// TestDefaultAPIBaseURL validates default API base URL
func TestDefaultAPIBaseURL(t *testing.T) {
	tempDir := t.TempDir()
	if err := Init(filepath.Join(tempDir, "test")); err != nil {
		t.Fatalf("Failed to initialize: %v", err)
	}

	baseURL := GetString("api.base_url")
	if baseURL != "http://localhost:4000/api" {
		t.Errorf("Expected default base URL 'http://localhost:4000/api', got '%s'", baseURL)
	}
}

// TestDefaultOutputFormat validates default output format
func TestDefaultOutputFormat(t *testing.T) {
	tempDir := t.TempDir()
	if err := Init(filepath.Join(tempDir, "test")); err != nil {
		t.Fatalf("Failed to initialize: %v", err)
	}

	format := GetString("output.format")
	if format != "text" {
		t.Errorf("Expected default format 'text', got '%s'", format)
	}
}

// TestDefaultTimeout validates default API timeout
func TestDefaultTimeout(t *testing.T) {
	tempDir := t.TempDir()
	if err := Init(filepath.Join(tempDir, "test")); err != nil {
		t.Fatalf("Failed to initialize: %v", err)
	}

	timeout := GetInt("api.timeout")
	if timeout != 30 {
		t.Errorf("Expected default timeout 30, got %d", timeout)
	}
}

// TestExportDirDefault validates default export directory
func TestExportDirDefault(t *testing.T) {
	tempDir := t.TempDir()
	if err := Init(filepath.Join(tempDir, "test")); err != nil {
		t.Fatalf("Failed to initialize: %v", err)
	}

	exportDir := GetString("export.dir")
	if exportDir == "" {
		t.Error("Export directory should have a default value")
	}

	if !filepath.IsAbs(exportDir) {
		t.Error("Export directory should be absolute path")
	}
}

// TestMultipleInitCalls validates multiple initialization calls
func TestMultipleInitCalls(t *testing.T) {
	tempDir := t.TempDir()
	path1 := filepath.Join(tempDir, "config1", "config.toml")
	path2 := filepath.Join(tempDir, "config2", "config.toml")

	if err := Init(path1); err != nil {
		t.Fatalf("First init failed: %v", err)
	}

	firstDir := GetConfigDir()

	if err := Init(path2); err != nil {
		t.Fatalf("Second init failed: %v", err)
	}

	secondDir := GetConfigDir()

	if firstDir == secondDir {
		t.Errorf("Config dir should change after re-init, both were %s", firstDir)
	}
}

// TestCredentialsPathUnderConfigDir validates credentials location
func TestCredentialsPathUnderConfigDir(t *testing.T) {
	tempDir := t.TempDir()
	if err := Init(filepath.Join(tempDir, "test_config")); err != nil {
		t.Fatalf("Failed to initialize: %v", err)
	}

	credsPath := GetCredentialsPath()
	configDir := GetConfigDir()

	if filepath.Dir(credsPath) != configDir {
		t.Errorf("Credentials path %s should be directly under config dir %s", credsPath, configDir)
	}
}
