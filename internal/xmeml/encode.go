package xmeml

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
)

const doctype = "<!DOCTYPE xmeml>\n"

// Encoder writes an XMEML document with the declaration and DOCTYPE the
// destination editor expects.
type Encoder struct {
	w io.Writer
}

// NewEncoder creates an encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode serializes doc with 2-space indentation, prefixed by the XML
// declaration and DOCTYPE lines.
func (e *Encoder) Encode(doc *XMEML) error {
	if doc == nil {
		return fmt.Errorf("document cannot be nil")
	}

	if _, err := io.WriteString(e.w, xml.Header); err != nil {
		return fmt.Errorf("write XML header: %w", err)
	}
	if _, err := io.WriteString(e.w, doctype); err != nil {
		return fmt.Errorf("write DOCTYPE: %w", err)
	}

	encoder := xml.NewEncoder(e.w)
	encoder.Indent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("encode XML: %w", err)
	}

	if _, err := io.WriteString(e.w, "\n"); err != nil {
		return fmt.Errorf("write trailing newline: %w", err)
	}
	return nil
}

// WriteFile serializes doc to path, truncating any existing file.
func WriteFile(path string, doc *XMEML) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}

	if err := NewEncoder(file).Encode(doc); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close output file: %w", err)
	}
	return nil
}
