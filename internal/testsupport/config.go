// Package testsupport provides shared fixtures for package tests: temp-dir
// seeded configurations, stubbed external binaries, and library file writers.
package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/JanKremser/kodi-tools/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.History.Path = filepath.Join(base, "history.db")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithHistoryDisabled turns off the run journal for the test config.
func WithHistoryDisabled() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.History.Enabled = false
	}
}

// WithStubbedBinaries points the ffmpeg and ffprobe binaries at shell script
// stubs: ffprobe reports a fixed 120 second duration and ffmpeg writes its
// last argument so frame extraction produces an output file.
func WithStubbedBinaries() ConfigOption {
	return func(b *configBuilder) {
		binDir := filepath.Join(b.baseDir, "bin")
		if err := os.MkdirAll(binDir, 0o755); err != nil {
			b.t.Fatalf("mkdir stub bin dir: %v", err)
		}
		b.cfg.FFmpeg.FFprobeBinary = writeStubBinary(b.t, binDir, "ffprobe",
			`echo '{"format":{"filename":"stub","duration":"120.0"}}'`)
		b.cfg.FFmpeg.FFmpegBinary = writeStubBinary(b.t, binDir, "ffmpeg",
			`eval "out=\${$#}"`+"\necho frame > \"$out\"")
	}
}

func writeStubBinary(t testing.TB, dir, name, script string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0o755); err != nil {
		t.Fatalf("write stub binary %s: %v", name, err)
	}
	return path
}
