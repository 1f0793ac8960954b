package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var logLevelFlag string

	ctx := newCommandContext(&configFlag, &logLevelFlag)

	var flags convertFlags

	rootCmd := &cobra.Command{
		Use:   "obsmark <input> [output]",
		Short: "Convert recorder timestamp markers to editor XML",
		Long: `Convert a screen recorder's timestamp marker log (JSON Lines) into an
XML project file whose sequence carries the markers at the matching frames.

When the log starts with a metadata record, the frame rate is taken from it
and the output file is named after the recorded video located in the
recording directory.

Examples:
  obsmark timestamps.jsonl                     # auto-detect video and output name
  obsmark timestamps.jsonl markers.xml         # explicit output path
  obsmark timestamps.jsonl --fps 30            # override frame rate
  obsmark timestamps.jsonl --sequence-name "My Recording"`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			input := args[0]
			output := ""
			if len(args) > 1 {
				output = args[1]
			}
			return runConvert(ctx, cmd, input, output, flags)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level override (debug, info, warn, error)")

	rootCmd.Flags().Float64Var(&flags.fps, "fps", 0, "Frames per second (default 60, overridden by log metadata)")
	rootCmd.Flags().StringVar(&flags.sequenceName, "sequence-name", "", "Name for the sequence (default derived from the conversion time)")
	rootCmd.Flags().IntVar(&flags.width, "width", 0, "Video width (default 1920)")
	rootCmd.Flags().IntVar(&flags.height, "height", 0, "Video height (default 1080)")

	rootCmd.AddCommand(newPreviewCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(&configFlag))

	return rootCmd
}
