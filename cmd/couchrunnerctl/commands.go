package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"couchrunner/internal/codec"
	"couchrunner/internal/core/model"
	"couchrunner/internal/core/timer"

	"github.com/spf13/cobra"
)

func newListCmd(opts *rootOptions) *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List program runs and their completion",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer e.close()
			writeCatalog(cmd.OutOrStdout(), e.tracker.Runs(), verbose)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show descriptions and durations")
	return cmd
}

func writeCatalog(out io.Writer, catalog model.Catalog, verbose bool) {
	for i, run := range catalog {
		mark := " "
		if run.Completed {
			mark = "x"
		}
		fmt.Fprintf(out, "%2d [%s] %s\n", i+1, mark, run.Name())
		if verbose {
			fmt.Fprintf(out, "       %s (%s, %d intervals)\n",
				run.Description(), timer.FormatClock(run.TotalSeconds()), run.IntervalCount())
		}
	}
	fmt.Fprintf(out, "%d of %d runs completed\n", catalog.CompletedCount(), len(catalog))
}

func newToggleCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <run>",
		Short: "Flip the completion mark of a run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer e.close()

			index, err := parseRunArg(args[0], e.tracker.Runs())
			if err != nil {
				return err
			}
			completed, err := e.tracker.Toggle(index)
			if err != nil {
				return err
			}
			run, _ := e.tracker.Run(index)
			state := "not completed"
			if completed {
				state = "completed"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s marked %s\n", run.Name(), state)
			return nil
		},
	}
}

func newSettingsCmd(opts *rootOptions) *cobra.Command {
	var sound, vibrate bool
	var volume float64
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change cue settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer e.close()

			flags := cmd.Flags()
			if flags.Changed("sound") {
				if err := e.tracker.SetSound(sound); err != nil {
					return err
				}
			}
			if flags.Changed("vibrate") {
				if err := e.tracker.SetVibrate(vibrate); err != nil {
					return err
				}
			}
			if flags.Changed("volume") {
				if volume < 0 || volume > 1 {
					return fmt.Errorf("volume %.2f: must be between 0 and 1", volume)
				}
				if err := e.tracker.SetVolume(volume); err != nil {
					return err
				}
			}

			settings := e.tracker.Settings()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "sound:   %t\n", settings.Sound)
			fmt.Fprintf(out, "vibrate: %t\n", settings.Vibrate)
			fmt.Fprintf(out, "volume:  %.2f\n", settings.Volume)
			return nil
		},
	}
	cmd.Flags().BoolVar(&sound, "sound", true, "enable audible cues")
	cmd.Flags().BoolVar(&vibrate, "vibrate", true, "enable vibration cues")
	cmd.Flags().Float64Var(&volume, "volume", 0.5, "cue volume between 0 and 1")
	return cmd
}

func newExportCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Print the encoded catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer e.close()
			fmt.Fprintln(cmd.OutOrStdout(), codec.Encode(e.tracker.Runs()))
			return nil
		},
	}
}

func newImportCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file|->",
		Short: "Replace the catalog with an encoded one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var raw []byte
			var err error
			if args[0] == "-" {
				raw, err = io.ReadAll(cmd.InOrStdin())
			} else {
				raw, err = os.ReadFile(args[0])
			}
			if err != nil {
				return fmt.Errorf("read catalog: %w", err)
			}

			catalog, err := codec.Decode(strings.TrimSpace(string(raw)))
			if err != nil {
				return err
			}
			if err := codec.CheckEncodable(catalog); err != nil {
				return err
			}

			e, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer e.close()
			if err := e.runStore.SetRuns(catalog); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d runs\n", len(catalog))
			return nil
		},
	}
}

func newResetCmd(opts *rootOptions) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Restore the default program and clear progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("reset clears all progress; pass --yes to confirm")
			}
			e, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer e.close()
			if err := e.tracker.Reset(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "program reset")
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the reset")
	return cmd
}
