package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	cfg, _, exists, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if exists {
		t.Fatal("expected exists=false for missing config file")
	}
	if cfg.Sequencing.OutOfBandThreshold != defaultOutOfBandThreshold {
		t.Errorf("threshold = %d, want %d", cfg.Sequencing.OutOfBandThreshold, defaultOutOfBandThreshold)
	}
	if cfg.Extras.MinEpisode != defaultExtrasMinEpisode {
		t.Errorf("min episode = %d, want %d", cfg.Extras.MinEpisode, defaultExtrasMinEpisode)
	}
	if !cfg.Extras.Labels {
		t.Error("labels should default to enabled")
	}
}

func TestLoadParsesOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[sequencing]
out_of_band_threshold = 5000

[extras]
min_episode = 500
video_extensions = ["MKV", "webm"]

[logging]
format = "json"
level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !exists {
		t.Fatal("expected exists=true")
	}
	if cfg.Sequencing.OutOfBandThreshold != 5000 {
		t.Errorf("threshold = %d, want 5000", cfg.Sequencing.OutOfBandThreshold)
	}
	if cfg.Extras.MinEpisode != 500 {
		t.Errorf("min episode = %d, want 500", cfg.Extras.MinEpisode)
	}
	want := []string{".mkv", ".webm"}
	if len(cfg.Extras.VideoExtensions) != len(want) {
		t.Fatalf("extensions = %v, want %v", cfg.Extras.VideoExtensions, want)
	}
	for i, ext := range want {
		if cfg.Extras.VideoExtensions[i] != ext {
			t.Errorf("extension[%d] = %q, want %q", i, cfg.Extras.VideoExtensions[i], ext)
		}
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Errorf("logging = %+v", cfg.Logging)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "zero threshold",
			content: "[sequencing]\nout_of_band_threshold = 0\n",
			wantErr: "out_of_band_threshold",
		},
		{
			name:    "bad log format",
			content: "[logging]\nformat = \"xml\"\n",
			wantErr: "logging.format",
		},
		{
			name:    "bad thumbnail quality",
			content: "[extras]\nthumbnail_quality = 50\n",
			wantErr: "thumbnail_quality",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			_, _, _, err := Load(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q does not mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestIsExtraVideo(t *testing.T) {
	cfg := Default()
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if !cfg.IsExtraVideo("Show - S00E1001 - Trailer.mkv") {
		t.Error("mkv should be recognized")
	}
	if !cfg.IsExtraVideo("clip.MP4") {
		t.Error("extension match should be case-insensitive")
	}
	if cfg.IsExtraVideo("episode.nfo") {
		t.Error("nfo is not a video")
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}
	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatalf("sample config does not load: %v", err)
	}
	if !exists {
		t.Fatal("sample config not found after CreateSample")
	}
	if cfg.Sequencing.OutOfBandThreshold != defaultOutOfBandThreshold {
		t.Errorf("sample threshold = %d, want default", cfg.Sequencing.OutOfBandThreshold)
	}
}
