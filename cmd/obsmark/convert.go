package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"obsmark/internal/config"
	"obsmark/internal/logging"
	"obsmark/internal/timestamps"
	"obsmark/internal/videomatch"
	"obsmark/internal/xmeml"
)

type convertFlags struct {
	fps          float64
	sequenceName string
	width        int
	height       int
}

func runConvert(ctx *commandContext, cmd *cobra.Command, input, output string, flags convertFlags) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	logger, err := ctx.newLogger()
	if err != nil {
		return fmt.Errorf("setup logging: %w", err)
	}

	out := cmd.OutOrStdout()
	colorize := shouldColorize(cmd)

	parser := &timestamps.Parser{
		DefaultColor: cfg.Convert.DefaultColor,
		Logger:       logger,
	}
	metadata, markers, err := parser.ParseFile(input)
	if err != nil {
		return err
	}
	if len(markers) == 0 {
		return errors.New("no usable markers found in the input file")
	}
	fmt.Fprintln(out, renderStatusLine("Markers", statusOK, fmt.Sprintf("%d parsed", len(markers)), colorize))

	fps := effectiveFPS(cfg, flags, metadata, logger)
	width, height := cfg.Convert.Width, cfg.Convert.Height
	if flags.width > 0 {
		width = flags.width
	}
	if flags.height > 0 {
		height = flags.height
	}

	outputPath := resolveOutputPath(cfg, input, output, metadata, logger, out, colorize)

	fmt.Fprintln(out, renderStatusLine("Frame rate", statusInfo, fmt.Sprintf("%.3f fps", fps), colorize))
	fmt.Fprintln(out, renderStatusLine("Output", statusInfo, outputPath, colorize))
	fmt.Fprintln(out)
	fmt.Fprintln(out, renderMarkerTable(markers))
	fmt.Fprintln(out)

	doc, err := xmeml.Build(markers, xmeml.Settings{
		FPS:          fps,
		SequenceName: flags.sequenceName,
		Width:        width,
		Height:       height,
	})
	if err != nil {
		return err
	}
	if err := xmeml.WriteFile(outputPath, doc); err != nil {
		logger.Error("writing XML failed",
			logging.String("path", outputPath),
			logging.Error(err),
		)
		return err
	}

	logger.Info("conversion complete",
		logging.String("output", outputPath),
		logging.Int("markers", len(markers)),
		logging.Float64("fps", fps),
	)
	fmt.Fprintln(out, renderStatusLine("Saved", statusOK, outputPath, colorize))
	return nil
}

// effectiveFPS applies the precedence: metadata ratio > --fps flag > config.
func effectiveFPS(cfg *config.Config, flags convertFlags, metadata *timestamps.Metadata, logger *slog.Logger) float64 {
	fps := cfg.Convert.FPS
	if flags.fps > 0 {
		fps = flags.fps
	}
	if metaFPS, ok := metadata.FrameRate(); ok {
		logger.Info("using frame rate from metadata",
			logging.Int("fps_num", metadata.FPSNum),
			logging.Int("fps_den", metadata.FPSDen),
			logging.Float64("fps", metaFPS),
		)
		fps = metaFPS
	}
	return fps
}

// resolveOutputPath picks the output file: a name derived from the matched
// recording wins, then the explicit argument, then input stem + suffix.
func resolveOutputPath(cfg *config.Config, input, explicit string, metadata *timestamps.Metadata, logger *slog.Logger, out io.Writer, colorize bool) string {
	outputPath := explicit

	if metadata != nil && metadata.RecordingPath != "" {
		video, ok := videomatch.Locate(metadata.RecordingPath, metadata.Timestamp, videomatch.Options{
			Extensions: cfg.VideoMatch.Extensions,
			Tolerance:  time.Duration(cfg.VideoMatch.ToleranceSeconds) * time.Second,
			Logger:     logger,
		})
		if ok {
			base := strings.TrimSuffix(filepath.Base(video), filepath.Ext(video))
			outputPath = filepath.Join(metadata.RecordingPath, base+cfg.Convert.OutputSuffix+".xml")
			fmt.Fprintln(out, renderStatusLine("Video", statusOK, filepath.Base(video), colorize))
		} else {
			fmt.Fprintln(out, renderStatusLine("Video", statusWarn, "no matching recording found", colorize))
		}
	}

	if outputPath == "" {
		outputPath = strings.TrimSuffix(input, filepath.Ext(input)) + cfg.Convert.OutputSuffix + ".xml"
	}
	return outputPath
}
