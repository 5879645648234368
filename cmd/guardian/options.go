package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/energy-guardian/internal/progress"
)

var (
	flagMusic    float64
	flagSFX      float64
	flagAmbient  float64
	flagJoystick bool
)

var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "Show or set audio and input options",
	Long: `Without flags, shows the stored options. Volumes are between 0 and 1;
values outside that range are clamped.

Examples:
  guardian options
  guardian options --music 0.2 --sfx 1
  guardian options --joystick=false`,
	Args: cobra.NoArgs,
	RunE: runOptions,
}

func init() {
	optionsCmd.Flags().Float64Var(&flagMusic, "music", progress.DefaultVolume, "Music volume (0-1)")
	optionsCmd.Flags().Float64Var(&flagSFX, "sfx", progress.DefaultVolume, "Sound effects volume (0-1)")
	optionsCmd.Flags().Float64Var(&flagAmbient, "ambient", progress.DefaultVolume, "Ambient volume (0-1)")
	optionsCmd.Flags().BoolVar(&flagJoystick, "joystick", false, "Show the on-screen joystick")
}

func runOptions(cmd *cobra.Command, _ []string) error {
	store, repo, err := openRepository()
	if err != nil {
		return err
	}
	defer store.Close()

	opts, err := repo.LoadOptions()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	changed := false
	if flags.Changed("music") {
		opts.MusicVolume, changed = progress.ClampVolume(flagMusic), true
	}
	if flags.Changed("sfx") {
		opts.SFXVolume, changed = progress.ClampVolume(flagSFX), true
	}
	if flags.Changed("ambient") {
		opts.AmbientVolume, changed = progress.ClampVolume(flagAmbient), true
	}
	if flags.Changed("joystick") {
		opts.Joystick, changed = flagJoystick, true
	}
	if changed {
		if err := repo.SaveOptions(opts); err != nil {
			return err
		}
	}

	fmt.Printf("  %-8s  %.1f\n", "music", opts.MusicVolume)
	fmt.Printf("  %-8s  %.1f\n", "sfx", opts.SFXVolume)
	fmt.Printf("  %-8s  %.1f\n", "ambient", opts.AmbientVolume)
	fmt.Printf("  %-8s  %t\n", "joystick", opts.Joystick)
	return nil
}
