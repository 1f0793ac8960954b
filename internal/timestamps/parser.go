package timestamps

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"obsmark/internal/logging"
)

// Parser reads the recorder's JSON Lines marker log. Lines that fail to
// parse are logged and skipped; only an unreadable file is fatal.
type Parser struct {
	// DefaultColor is assigned to markers that omit a color. Defaults to
	// "blue" when empty.
	DefaultColor string
	Logger       *slog.Logger
}

// ParseFile reads path and splits it into the session metadata (nil when the
// log carries none) and the markers in input order. The first metadata
// record wins; additional ones are ignored with a warning.
func (p *Parser) ParseFile(path string) (*Metadata, []Marker, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open marker log: %w", err)
	}
	defer file.Close()

	logger := p.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	defaultColor := p.DefaultColor
	if defaultColor == "" {
		defaultColor = "blue"
	}

	var metadata *Metadata
	var markers []Marker

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var fields map[string]json.RawMessage
		if err := json.Unmarshal([]byte(line), &fields); err != nil {
			logger.Warn("skipping line: not valid JSON",
				logging.Int("line", lineNum),
				logging.Error(err),
			)
			continue
		}

		if raw, ok := fields["metadata"]; ok {
			if metadata != nil {
				logger.Warn("ignoring additional metadata record",
					logging.Int("line", lineNum),
				)
				continue
			}
			var meta Metadata
			if err := json.Unmarshal(raw, &meta); err != nil {
				logger.Warn("skipping line: malformed metadata record",
					logging.Int("line", lineNum),
					logging.Error(err),
				)
				continue
			}
			metadata = &meta
			logger.Debug("found metadata",
				logging.String("recording_path", meta.RecordingPath),
				logging.String("timestamp", meta.Timestamp),
			)
			continue
		}

		raw, ok := fields["timestamp_ms"]
		if !ok {
			logger.Warn("skipping line: missing timestamp_ms field",
				logging.Int("line", lineNum),
			)
			continue
		}
		offset, err := coerceMilliseconds(raw)
		if err != nil {
			logger.Warn("skipping line: invalid timestamp_ms value",
				logging.Int("line", lineNum),
				logging.Error(err),
			)
			continue
		}
		if offset < 0 {
			logger.Warn("skipping line: negative timestamp_ms value",
				logging.Int("line", lineNum),
				logging.Int64("timestamp_ms", offset),
			)
			continue
		}

		markers = append(markers, Marker{
			OffsetMS: offset,
			Comment:  stringField(fields, "comment", ""),
			Name:     stringField(fields, "name", ""),
			Color:    stringField(fields, "color", defaultColor),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("read marker log: %w", err)
	}

	return metadata, markers, nil
}

// coerceMilliseconds accepts a JSON number (truncating a fractional part) or
// a string holding a base-10 integer.
func coerceMilliseconds(raw json.RawMessage) (int64, error) {
	var num json.Number
	if err := json.Unmarshal(raw, &num); err == nil {
		if v, err := num.Int64(); err == nil {
			return v, nil
		}
		if f, err := num.Float64(); err == nil {
			return int64(f), nil
		}
		return 0, fmt.Errorf("unusable number %q", num.String())
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("not an integer: %q", s)
		}
		return v, nil
	}

	return 0, fmt.Errorf("unsupported value %s", string(raw))
}

func stringField(fields map[string]json.RawMessage, key, fallback string) string {
	raw, ok := fields[key]
	if !ok {
		return fallback
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return fallback
	}
	if key == "color" && strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
