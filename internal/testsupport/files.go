package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/JanKremser/kodi-tools/internal/nfo"
)

// WriteEpisodeNFO writes an episodedetails document under root and returns
// its path. Parent directories are created as needed.
func WriteEpisodeNFO(t testing.TB, root, name string, ep nfo.Episode) string {
	t.Helper()

	path := filepath.Join(root, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := ep.Save(path); err != nil {
		t.Fatalf("write nfo %s: %v", name, err)
	}
	return path
}

// WriteVideoFile writes a small placeholder video file under root and returns
// its path.
func WriteVideoFile(t testing.TB, root, name string) string {
	t.Helper()

	path := filepath.Join(root, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte("video"), 0o644); err != nil {
		t.Fatalf("write video %s: %v", name, err)
	}
	return path
}
