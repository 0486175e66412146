package app

import (
	"os"
	"testing"
)

// TestLoadConfig verifies basic config loading.
func TestLoadConfig(t *testing.T) {
	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config == nil {
		t.Fatal("LoadConfig() returned nil config")
	}

	// Note: LogLevel may be empty (triggers precedence logic in logger.go)
	if config.LogFormat == "" {
		t.Error("LogFormat not set to default")
	}
	if config.StoreDir == "" {
		t.Error("StoreDir not set to default")
	}
}

// TestConfig_EnvLogLevel verifies LOG_LEVEL lands in the env-level slot,
// not the explicit flag slot, so it cannot outrank -v/-q.
func TestConfig_EnvLogLevel(t *testing.T) {
	old := os.Getenv("LOG_LEVEL")
	defer os.Setenv("LOG_LEVEL", old)
	os.Setenv("LOG_LEVEL", "error")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config.EnvLogLevel != "error" {
		t.Errorf("EnvLogLevel = %q, want error", config.EnvLogLevel)
	}
	if config.LogLevel != "" {
		t.Errorf("LogLevel = %q, want empty (reserved for the --log-level flag)", config.LogLevel)
	}
}

// TestConfig_UpdateFromFlags verifies flag values take precedence.
func TestConfig_UpdateFromFlags(t *testing.T) {
	config := &Config{LogLevel: "info"}

	config.UpdateFromFlags(true, false, true, "")
	if !config.Verbose {
		t.Error("Verbose flag not applied")
	}
	if !config.NoColor {
		t.Error("NoColor flag not applied")
	}
	if config.LogLevel != "info" {
		t.Error("empty log-level flag should not clear configured level")
	}

	config.UpdateFromFlags(false, true, false, "debug")
	if config.LogLevel != "debug" {
		t.Errorf("LogLevel = %s, want debug", config.LogLevel)
	}
}
