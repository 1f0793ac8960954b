package videomatch_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"obsmark/internal/timestamps"
	"obsmark/internal/videomatch"
)

func touch(t *testing.T, path string, mtime time.Time) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Chtimes(path, mtime, mtime); err != nil {
		t.Fatal(err)
	}
}

func TestLocatePrefersFileWithinTolerance(t *testing.T) {
	dir := t.TempDir()
	recorded := time.Date(2026, 8, 30, 12, 0, 0, 0, time.Local)

	near := filepath.Join(dir, "session.mkv")
	far := filepath.Join(dir, "older.mp4")
	touch(t, near, recorded.Add(2*time.Minute))
	touch(t, far, recorded.Add(time.Hour))

	got, ok := videomatch.Locate(dir, recorded.Format(timestamps.TimestampLayout), videomatch.Options{})
	if !ok {
		t.Fatal("expected a match")
	}
	// The far file is newer, but only the near one is inside the window.
	if got != near {
		t.Fatalf("expected %q, got %q", near, got)
	}
}

func TestLocateFallsBackToNewestOutsideTolerance(t *testing.T) {
	dir := t.TempDir()
	recorded := time.Date(2026, 8, 30, 12, 0, 0, 0, time.Local)

	older := filepath.Join(dir, "a.mp4")
	newest := filepath.Join(dir, "b.mp4")
	touch(t, older, recorded.Add(-3*time.Hour))
	touch(t, newest, recorded.Add(-1*time.Hour))

	got, ok := videomatch.Locate(dir, recorded.Format(timestamps.TimestampLayout), videomatch.Options{})
	if !ok {
		t.Fatal("expected a match")
	}
	if got != newest {
		t.Fatalf("expected newest file %q, got %q", newest, got)
	}
}

func TestLocateUnparsableTimestampUsesNewest(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()

	older := filepath.Join(dir, "a.mov")
	newest := filepath.Join(dir, "b.mov")
	touch(t, older, now.Add(-2*time.Hour))
	touch(t, newest, now.Add(-time.Minute))

	got, ok := videomatch.Locate(dir, "not a timestamp", videomatch.Options{})
	if !ok {
		t.Fatal("expected a match")
	}
	if got != newest {
		t.Fatalf("expected newest file %q, got %q", newest, got)
	}
}

func TestLocateIgnoresNonVideoFiles(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()
	touch(t, filepath.Join(dir, "notes.txt"), now)
	touch(t, filepath.Join(dir, "timestamps.jsonl"), now)

	if _, ok := videomatch.Locate(dir, "", videomatch.Options{}); ok {
		t.Fatal("expected no match in a directory without video files")
	}
}

func TestLocateMissingDirectory(t *testing.T) {
	if _, ok := videomatch.Locate(filepath.Join(t.TempDir(), "absent"), "", videomatch.Options{}); ok {
		t.Fatal("expected no match for missing directory")
	}
	if _, ok := videomatch.Locate("", "", videomatch.Options{}); ok {
		t.Fatal("expected no match for empty directory path")
	}
}

func TestLocateRespectsConfiguredExtensions(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()
	webm := filepath.Join(dir, "clip.webm")
	touch(t, webm, now)

	if _, ok := videomatch.Locate(dir, "", videomatch.Options{}); ok {
		t.Fatal("webm should not match the default extension set")
	}

	got, ok := videomatch.Locate(dir, "", videomatch.Options{Extensions: []string{"webm"}})
	if !ok || got != webm {
		t.Fatalf("expected webm match, got %q ok=%v", got, ok)
	}
}
