package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const validYAML = `
store:
  path: "/tmp/couchrunner/store.yaml"
timer:
  tick_interval: 250ms
log:
  level: debug
`

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// TestLoadValid verifies that a well-formed YAML config loads with all fields populated.
func TestLoadValid(t *testing.T) {
	cfg, err := Load(writeTemp(t, validYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Store.Path != "/tmp/couchrunner/store.yaml" {
		t.Errorf("store.path = %q", cfg.Store.Path)
	}
	if cfg.Timer.TickInterval != 250*time.Millisecond {
		t.Errorf("timer.tick_interval = %v, want 250ms", cfg.Timer.TickInterval)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log.level = %q, want debug", cfg.Log.Level)
	}
}

// TestLoadMissingFile verifies a missing file yields defaults rather than an error.
func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *cfg != Default() {
		t.Errorf("cfg = %+v, want defaults", *cfg)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeTemp(t, "log:\n  level: warn\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Timer.TickInterval != time.Second {
		t.Errorf("timer.tick_interval = %v, want 1s default", cfg.Timer.TickInterval)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("log.level = %q, want warn", cfg.Log.Level)
	}
}

// TestEnvOverride verifies that COUCHRUNNER_ env vars take precedence over YAML values.
func TestEnvOverride(t *testing.T) {
	t.Setenv("COUCHRUNNER_STORE_PATH", "/override/store.yaml")
	t.Setenv("COUCHRUNNER_TICK_INTERVAL", "10ms")

	cfg, err := Load(writeTemp(t, validYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Store.Path != "/override/store.yaml" {
		t.Errorf("store.path = %q", cfg.Store.Path)
	}
	if cfg.Timer.TickInterval != 10*time.Millisecond {
		t.Errorf("timer.tick_interval = %v, want 10ms", cfg.Timer.TickInterval)
	}
	// Unchanged fields keep YAML values
	if cfg.Log.Level != "debug" {
		t.Errorf("log.level = %q, want debug", cfg.Log.Level)
	}

	path, err := cfg.StorePath()
	if err != nil || path != "/override/store.yaml" {
		t.Errorf("StorePath = %q, %v", path, err)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		env  map[string]string
	}{
		{name: "bad yaml", yaml: "timer: [oops"},
		{name: "zero tick", yaml: "timer:\n  tick_interval: 0s\n"},
		{name: "bad level", yaml: "log:\n  level: shouty\n"},
		{name: "bad env duration", yaml: validYAML, env: map[string]string{"COUCHRUNNER_TICK_INTERVAL": "soon"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			if _, err := Load(writeTemp(t, tc.yaml)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	path := DefaultPath()
	if !strings.HasSuffix(path, filepath.Join(AppName, "config.yaml")) {
		t.Errorf("DefaultPath() = %q", path)
	}
}
