package services

import (
	"errors"
	"strings"
	"testing"
)

func TestWrapTagsMarker(t *testing.T) {
	base := errors.New("disk full")
	err := Wrap(ErrPersistence, "sequence", "write nfo", "episode.nfo", base)

	if !errors.Is(err, ErrPersistence) {
		t.Error("wrapped error should match its marker")
	}
	if !errors.Is(err, base) {
		t.Error("wrapped error should match the underlying error")
	}
	for _, fragment := range []string{"sequence", "write nfo", "episode.nfo", "disk full"} {
		if !strings.Contains(err.Error(), fragment) {
			t.Errorf("error %q missing %q", err, fragment)
		}
	}
}

func TestWrapNilMarkerDefaultsToTransient(t *testing.T) {
	err := Wrap(nil, "extras", "thumbnail", "", nil)
	if !errors.Is(err, ErrTransient) {
		t.Error("nil marker should default to ErrTransient")
	}
}

func TestIsRecordLocal(t *testing.T) {
	if !IsRecordLocal(Wrap(ErrPersistence, "sequence", "write", "", nil)) {
		t.Error("persistence failures are local to one record")
	}
	if !IsRecordLocal(Wrap(ErrExternalTool, "extras", "ffmpeg", "", nil)) {
		t.Error("external tool failures are local to one record")
	}
	if IsRecordLocal(Wrap(ErrConfiguration, "run", "load config", "", nil)) {
		t.Error("configuration errors abort the run")
	}
}
