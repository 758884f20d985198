package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phanxgames/gesture"
)

// NewRunCommand creates the run command.
func NewRunCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run SCRIPT...",
		Short: "Replay gesture scripts and print the recognized intents",
		Long: `Replay each script on a virtual clock and print, per script, every
recognized intent and every change of the reveal offset with its time in
milliseconds since the script started.

Examples:
  gesture-replay run testdata/scripts/swipe.yaml
  gesture-replay run --format json traces/*.yaml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(opts.v)
			if err != nil {
				return err
			}
			logger := opts.Logger()

			traces := make([]*gesture.Trace, 0, len(args))
			for _, path := range args {
				script, err := gesture.LoadScriptFile(path)
				if err != nil {
					return err
				}
				trace, err := gesture.Replay(script, cfg, gesture.WithLogger(logger))
				if err != nil {
					return err
				}
				logger.Info("script replayed", "script", script.Name, "entries", len(trace.Entries))
				traces = append(traces, trace)
			}

			out := cmd.OutOrStdout()
			if opts.Format == "json" {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(traces); err != nil {
					return fmt.Errorf("encode traces: %w", err)
				}
				return nil
			}
			for i, trace := range traces {
				if i > 0 {
					fmt.Fprintln(out)
				}
				if err := trace.WriteText(out); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
