package logging_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"obsmark/internal/logging"
)

func TestConsoleHandlerOutput(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	logger.Info("parsed markers", logging.Int("count", 3))

	out := buf.String()
	if !strings.Contains(out, "INFO") {
		t.Fatalf("missing level label: %q", out)
	}
	if !strings.Contains(out, "parsed markers") {
		t.Fatalf("missing message: %q", out)
	}
	if !strings.Contains(out, "count=3") {
		t.Fatalf("missing attr: %q", out)
	}
}

func TestConsoleHandlerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "warn", Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	logger.Info("hidden")
	logger.Warn("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line should be suppressed: %q", out)
	}
	if !strings.Contains(out, "visible") {
		t.Fatalf("warn line missing: %q", out)
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	logger.Info("emit", logging.String("path", "/tmp/out.xml"))

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if record["msg"] != "emit" {
		t.Fatalf("unexpected msg: %v", record["msg"])
	}
	if record["path"] != "/tmp/out.xml" {
		t.Fatalf("unexpected path attr: %v", record["path"])
	}
}

func TestUnsupportedFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "yaml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}
