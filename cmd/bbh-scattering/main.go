package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oxygene76/bbh-scattering/internal/types"
	"github.com/oxygene76/bbh-scattering/pkg/animation"
	"github.com/oxygene76/bbh-scattering/pkg/render"
	relmath "github.com/oxygene76/bbh-scattering/pkg/relativity/math"
	"github.com/oxygene76/bbh-scattering/pkg/scattering"
	"github.com/oxygene76/bbh-scattering/pkg/surrogate"
	"github.com/oxygene76/bbh-scattering/pkg/utils"
)

const (
	appName = "bbh-scattering"
	version = "v1.0.0"
)

var (
	flagQ        float64
	flagChiA     []float64
	flagChiB     []float64
	flagOmegaRef float64
	flagSaveFile string
	flagFullTraj bool
)

var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "Animations of binary black hole scattering",
	Long: `Generates an animation of a binary black hole merger and the final
remnant: component trajectories and spins from a precessing-frame dynamics
model, an approximate 3.5PN separation, the radiated waveform projected on a
plane below the orbital plane, and the remnant's mass, spin and kick from a
remnant fit.

During the inspiral there are 30 frames per orbit; after the merger each
frame advances the time by 100M, so displayed times are non-uniform.

Example usage:
  bbh-scattering --q 2 --chiA 0.2,0.7,-0.1 --chiB 0.2,0.6,0.1`,
	Version: version,
	RunE:    runAnimation,
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := utils.SaveConfig(utils.DefaultConfig()); err != nil {
			return err
		}
		path, err := utils.GetConfigPath()
		if err != nil {
			return err
		}
		fmt.Printf("Configuration written to %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.Flags().Float64Var(&flagQ, "q", 0, "Mass ratio (>= 1).")
	rootCmd.Flags().Float64SliceVar(&flagChiA, "chiA", nil,
		"Spin of the heavier hole at the reference point, three components x,y,z.")
	rootCmd.Flags().Float64SliceVar(&flagChiB, "chiB", nil,
		"Spin of the lighter hole at the reference point, three components x,y,z.")
	rootCmd.Flags().Float64Var(&flagOmegaRef, "omega_ref", 0,
		"Orbital frequency at which the spins are specified (> 0.018). "+
			"If omitted, spins are interpreted at t=-100M from the waveform peak.")
	rootCmd.Flags().StringVar(&flagSaveFile, "save_file", "",
		"Write the animation to this file (.gif or .mp4). "+
			"If omitted, serve it in an interactive local viewer.")
	rootCmd.Flags().BoolVar(&flagFullTraj, "draw_full_trajectory", false,
		"Draw the entire component trajectories instead of the last 3/4 orbit.")

	rootCmd.MarkFlagRequired("q")
	rootCmd.MarkFlagRequired("chiA")
	rootCmd.MarkFlagRequired("chiB")

	rootCmd.AddCommand(initCmd)
}

func runAnimation(cmd *cobra.Command, args []string) error {
	// Reject an unusable save path before any numerical work.
	if flagSaveFile != "" {
		if err := animation.CheckFormat(flagSaveFile); err != nil {
			return err
		}
	}

	chiA, err := parseSpin("chiA", flagChiA)
	if err != nil {
		return err
	}
	chiB, err := parseSpin("chiB", flagChiB)
	if err != nil {
		return err
	}

	cfg, err := utils.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	bcfg := types.BinaryConfig{
		Q:        flagQ,
		ChiA:     chiA,
		ChiB:     chiB,
		OmegaRef: flagOmegaRef,
	}

	mgr := scattering.NewManager(
		surrogate.NewPNInspiralModel(),
		surrogate.NewPhenomRemnantFit(),
		scattering.Params{
			PtsPerOrbit:    cfg.Playback.PtsPerOrbit,
			FreezeTime:     cfg.Playback.FreezeTime,
			FreezeTol:      0.1,
			HoldFrames:     int(cfg.Playback.FreezeSeconds * float64(cfg.Playback.FPS)),
			Cutoff:         75,
			PostStep:       100,
			PostSpan:       10000,
			GridN:          cfg.Render.GridN,
			TrailFraction:  cfg.Playback.TrailFraction,
			FullTrajectory: flagFullTraj,
			MarkerScale:    cfg.Render.MarkerScale,
			ArrowScale:     cfg.Render.ArrowScale,
			LHatScale:      cfg.Render.LHatScale,
		})

	res, err := mgr.Precompute(bcfg)
	if err != nil {
		return err
	}

	frames := render.RasterizeAll(mgr.Scenes(res), render.Options{
		Width:     cfg.Render.Width,
		Height:    cfg.Render.Height,
		LineWidth: cfg.Render.LineWidth,
	})

	if flagSaveFile != "" {
		if err := animation.Save(flagSaveFile, res.Plan, frames,
			cfg.Playback.FPS, cfg.Playback.RepeatDelayMS/10); err != nil {
			return err
		}
		fmt.Printf("Animation saved to %s\n", flagSaveFile)
		return nil
	}

	player, err := animation.NewPlayer(res.Plan, frames, cfg.Playback.FPS)
	if err != nil {
		return err
	}
	return player.ListenAndServe(cfg.Viewer.Addr)
}

func parseSpin(name string, v []float64) (relmath.Vector3, error) {
	if len(v) != 3 {
		return relmath.Vector3{}, fmt.Errorf("--%s needs exactly 3 components, got %d", name, len(v))
	}
	return relmath.Vector3{X: v[0], Y: v[1], Z: v[2]}, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
