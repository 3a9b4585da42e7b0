package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigInitWritesSample(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")

	output, err := runCommand(t, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init failed: %v\n%s", err, output)
	}

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("sample config missing: %v", err)
	}
	if !strings.Contains(string(data), "out_of_band_threshold") {
		t.Fatalf("sample config lacks expected keys:\n%s", data)
	}
}

func TestConfigInitRefusesOverwrite(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(target, []byte("# existing"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := runCommand(t, "config", "init", "--path", target); err == nil {
		t.Fatal("expected refusal without --overwrite")
	}

	output, err := runCommand(t, "config", "init", "--path", target, "--overwrite")
	if err != nil {
		t.Fatalf("config init --overwrite failed: %v\n%s", err, output)
	}
}

func TestConfigShowRendersResolvedConfig(t *testing.T) {
	_, configPath := newTestCLIConfig(t)

	output, err := runCommand(t, "--config", configPath, "config", "show")
	if err != nil {
		t.Fatalf("config show failed: %v\n%s", err, output)
	}
	if !strings.Contains(output, "[sequencing]") {
		t.Fatalf("expected sequencing section:\n%s", output)
	}
	if !strings.Contains(output, configPath) {
		t.Fatalf("expected resolved path comment:\n%s", output)
	}
}
