package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"obsmark/internal/timestamps"
)

func newPreviewCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "preview <input>",
		Short: "Parse a marker log and list its markers without writing XML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			logger, err := ctx.newLogger()
			if err != nil {
				return fmt.Errorf("setup logging: %w", err)
			}

			parser := &timestamps.Parser{
				DefaultColor: cfg.Convert.DefaultColor,
				Logger:       logger,
			}
			metadata, markers, err := parser.ParseFile(args[0])
			if err != nil {
				return err
			}
			if len(markers) == 0 {
				return errors.New("no usable markers found in the input file")
			}

			out := cmd.OutOrStdout()
			if metadata != nil {
				if metadata.RecordingPath != "" {
					fmt.Fprintf(out, "Recording directory: %s\n", metadata.RecordingPath)
				}
				if metadata.Timestamp != "" {
					fmt.Fprintf(out, "Recording timestamp: %s\n", metadata.Timestamp)
				}
				if fps, ok := metadata.FrameRate(); ok {
					fmt.Fprintf(out, "Frame rate: %d/%d = %.3f fps\n", metadata.FPSNum, metadata.FPSDen, fps)
				}
			}
			fmt.Fprintln(out, renderMarkerTable(markers))
			fmt.Fprintf(out, "%d marker(s)\n", len(markers))
			return nil
		},
	}
}
