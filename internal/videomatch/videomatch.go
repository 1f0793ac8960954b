// Package videomatch locates the recorded video file that belongs to a
// marker log. The match is a heuristic over directory modification times,
// used only to pick a friendly output file name.
package videomatch

import (
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"obsmark/internal/logging"
	"obsmark/internal/timestamps"
)

// DefaultTolerance is how far a file's modification time may drift from the
// recording timestamp and still count as the matching recording.
const DefaultTolerance = 5 * time.Minute

// Options controls the directory scan.
type Options struct {
	// Extensions without leading dots; defaults to the common capture formats.
	Extensions []string
	Tolerance  time.Duration
	Logger     *slog.Logger
}

type candidate struct {
	path    string
	modTime time.Time
}

// Locate scans dir for video files and returns the one whose modification
// time is closest to recordedAt (format "2006-01-02 15:04:05"), preferring
// files within the tolerance window and falling back to the most recently
// modified file. Returns false when the directory is missing, unreadable, or
// holds no video files.
func Locate(dir, recordedAt string, opts Options) (string, bool) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	if dir == "" {
		return "", false
	}

	extensions := opts.Extensions
	if len(extensions) == 0 {
		extensions = []string{"mp4", "mkv", "flv", "mov", "avi", "ts"}
	}
	tolerance := opts.Tolerance
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		logger.Warn("cannot scan recording directory",
			logging.String("dir", dir),
			logging.Error(err),
		)
		return "", false
	}

	var candidates []candidate
	for _, entry := range entries {
		if entry.IsDir() || !matchesExtension(entry.Name(), extensions) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			logger.Warn("cannot stat video file",
				logging.String("file", entry.Name()),
				logging.Error(err),
			)
			continue
		}
		candidates = append(candidates, candidate{
			path:    filepath.Join(dir, entry.Name()),
			modTime: info.ModTime(),
		})
	}
	if len(candidates) == 0 {
		return "", false
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].modTime.After(candidates[j].modTime)
	})

	if recorded, err := time.ParseInLocation(timestamps.TimestampLayout, recordedAt, time.Local); err == nil {
		for _, c := range candidates {
			drift := c.modTime.Sub(recorded)
			if drift < 0 {
				drift = -drift
			}
			if drift < tolerance {
				return c.path, true
			}
		}
	} else if recordedAt != "" {
		logger.Debug("recording timestamp did not parse, using newest file",
			logging.String("timestamp", recordedAt),
			logging.Error(err),
		)
	}

	return candidates[0].path, true
}

func matchesExtension(name string, extensions []string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
	if ext == "" {
		return false
	}
	for _, want := range extensions {
		if ext == want {
			return true
		}
	}
	return false
}
