package main

import (
	"strings"
	"testing"

	"github.com/JanKremser/kodi-tools/internal/testsupport"
)

func TestDepsCommandReportsStubbedTools(t *testing.T) {
	_, configPath := newTestCLIConfig(t, testsupport.WithStubbedBinaries())

	output, err := runCommand(t, "--config", configPath, "deps")
	if err != nil {
		t.Fatalf("deps command failed: %v\n%s", err, output)
	}
	if !strings.Contains(output, "FFmpeg") || !strings.Contains(output, "FFprobe") {
		t.Fatalf("expected both tools listed:\n%s", output)
	}
	if strings.Contains(output, "missing") {
		t.Fatalf("stubbed tools should be available:\n%s", output)
	}
}

func TestDepsCommandFailsWhenToolMissing(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	cfg.FFmpeg.FFmpegBinary = "definitely-not-a-real-binary"
	cfg.FFmpeg.FFprobeBinary = "also-not-a-real-binary"
	configPath := writeConfigFile(t, cfg)

	if _, err := runCommand(t, "--config", configPath, "deps"); err == nil {
		t.Fatal("expected failure when tools are missing")
	}
}
