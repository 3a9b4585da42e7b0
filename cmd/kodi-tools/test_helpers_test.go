package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"github.com/JanKremser/kodi-tools/internal/config"
	"github.com/JanKremser/kodi-tools/internal/testsupport"
)

// writeConfigFile serializes cfg to a TOML file and returns its path for use
// with the --config flag.
func writeConfigFile(t *testing.T, cfg *config.Config) string {
	t.Helper()

	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	path := filepath.Join(t.TempDir(), "kodi-tools.toml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func newTestCLIConfig(t *testing.T, opts ...testsupport.ConfigOption) (*config.Config, string) {
	t.Helper()
	cfg := testsupport.NewConfig(t, opts...)
	return cfg, writeConfigFile(t, cfg)
}

// runCommand executes the CLI with the given args and returns its combined
// output.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}
