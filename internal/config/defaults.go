package config

const (
	defaultFPS              = 60.0
	defaultWidth            = 1920
	defaultHeight           = 1080
	defaultOutputSuffix     = "_markers"
	defaultColor            = "blue"
	defaultToleranceSeconds = 300
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Convert: Convert{
			FPS:          defaultFPS,
			Width:        defaultWidth,
			Height:       defaultHeight,
			OutputSuffix: defaultOutputSuffix,
			DefaultColor: defaultColor,
		},
		VideoMatch: VideoMatch{
			Extensions:       []string{"mp4", "mkv", "flv", "mov", "avi", "ts"},
			ToleranceSeconds: defaultToleranceSeconds,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
