package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Convert contains defaults for the XML conversion itself.
type Convert struct {
	FPS          float64 `toml:"fps"`
	Width        int     `toml:"width"`
	Height       int     `toml:"height"`
	OutputSuffix string  `toml:"output_suffix"`
	DefaultColor string  `toml:"default_color"`
}

// VideoMatch contains settings for locating the recorded video file.
type VideoMatch struct {
	Extensions       []string `toml:"extensions"`
	ToleranceSeconds int      `toml:"tolerance_seconds"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for obsmark.
type Config struct {
	Convert    Convert    `toml:"convert"`
	VideoMatch VideoMatch `toml:"videomatch"`
	Logging    Logging    `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return ExpandPath("~/.config/obsmark/config.toml")
}

// Load locates, parses, and validates a configuration file. An empty path
// falls back to the default location; a missing file yields defaults.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := ExpandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}
	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	return defaultPath, false, nil
}

// ExpandPath resolves a leading ~ against the current user's home directory
// and returns an absolute path.
func ExpandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", errors.New("path is empty")
	}
	if trimmed == "~" || strings.HasPrefix(trimmed, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	abs, err := filepath.Abs(trimmed)
	if err != nil {
		return "", fmt.Errorf("resolve path %q: %w", path, err)
	}
	return abs, nil
}

// CreateSample writes the embedded sample configuration to target.
func CreateSample(target string) error {
	return os.WriteFile(target, []byte(sampleConfig), 0o644)
}

func (c *Config) normalize() {
	c.Convert.OutputSuffix = strings.TrimSpace(c.Convert.OutputSuffix)
	c.Convert.DefaultColor = strings.ToLower(strings.TrimSpace(c.Convert.DefaultColor))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))

	normalized := make([]string, 0, len(c.VideoMatch.Extensions))
	for _, ext := range c.VideoMatch.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		ext = strings.TrimPrefix(ext, ".")
		if ext != "" {
			normalized = append(normalized, ext)
		}
	}
	c.VideoMatch.Extensions = normalized
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if c.Convert.FPS <= 0 {
		return errors.New("convert.fps must be positive")
	}
	if c.Convert.Width <= 0 || c.Convert.Height <= 0 {
		return errors.New("convert.width and convert.height must be positive")
	}
	if c.Convert.OutputSuffix == "" {
		return errors.New("convert.output_suffix must not be empty")
	}
	if len(c.VideoMatch.Extensions) == 0 {
		return errors.New("videomatch.extensions must list at least one extension")
	}
	if c.VideoMatch.ToleranceSeconds < 0 {
		return errors.New("videomatch.tolerance_seconds must not be negative")
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	return nil
}
