package cli

import (
	"fmt"
	"strconv"
	"time"

	"mosaic/internal/analysis"
	"mosaic/internal/config"
	"mosaic/internal/core"
	"mosaic/internal/logging"
	"mosaic/internal/paint"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Root builds the mosaic command tree.
func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "mosaic <size>",
		Short: "Paint a size×size mosaic of diffused colors",
		Long: `Paint a square grid of colors by visiting cells in random order and giving
each one the color that best agrees with the cells already painted around it.
The written file name is printed to stdout.
A size of 0 paints an empty grid, which only --format rgbz can store.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runPaint,
	}
	config.AddFlags(root.PersistentFlags())
	root.AddCommand(Batch(), Convert(), Version())
	return root
}

// ParseSize validates the grid size argument.
func ParseSize(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("size must be a non-negative integer, got %q", arg)
	}
	return n, nil
}

// setup loads the configuration and configures logging for a command run.
func setup(cmd *cobra.Command) (config.Options, func(), error) {
	opts, err := config.Load(cmd.Flags())
	if err != nil {
		return opts, func() {}, err
	}
	closeLog, err := logging.Setup(opts.LogLevel, opts.LogFile)
	if err != nil {
		return opts, func() {}, fmt.Errorf("open log file: %w", err)
	}
	return opts, closeLog, nil
}

func resolveSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	seed = time.Now().UnixNano()
	log.Info().Int64("seed", seed).Msg("no seed configured, picked one")
	return seed
}

func runPaint(cmd *cobra.Command, args []string) error {
	size, err := ParseSize(args[0])
	if err != nil {
		return err
	}
	opts, closeLog, err := setup(cmd)
	defer closeLog()
	if err != nil {
		return err
	}
	out, err := newSink(opts, nil)
	if err != nil {
		return err
	}

	seed := resolveSeed(opts.Seed)
	grid, err := paintGrid(size, seed, opts.Progress)
	if err != nil {
		return err
	}
	path, err := out.Save(grid)
	if err != nil {
		return err
	}
	log.Info().Str("path", path).Msg("saved")
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

// paintGrid runs one complete painting, logging progress and a summary.
func paintGrid(size int, seed int64, progress time.Duration) (*core.ColorGrid, error) {
	total := size * size
	p := paint.NewWithConfig(paint.Config{Size: size, Seed: seed})
	throttle := core.NewThrottle(progress)
	start := time.Now()

	log.Debug().Int("size", size).Int64("seed", seed).Int("max_radius", paint.MaxRadius(size)).Msg("painting")
	grid, err := p.RunWithProgress(func(v paint.Visit) {
		if !throttle.Ready() {
			return
		}
		log.Info().
			Int64("seed", seed).
			Int("step", v.Index+1).
			Int("total", total).
			Int("radius", v.Radius).
			Str("done", fmt.Sprintf("%.1f%%", 100*p.Progress())).
			Msg("progress")
	})
	if err != nil {
		return nil, fmt.Errorf("paint %dx%d seed %d: %w", size, size, seed, err)
	}

	s := analysis.Summarize(grid)
	log.Info().
		Int("size", size).
		Int64("seed", seed).
		Dur("elapsed", time.Since(start)).
		Floats64("mean", []float64{s.Channels[0].Mean, s.Channels[1].Mean, s.Channels[2].Mean}).
		Floats64("stddev", []float64{s.Channels[0].StdDev, s.Channels[1].StdDev, s.Channels[2].StdDev}).
		Float64("neighbor_delta_e", s.NeighborDeltaE).
		Msg("painted")
	return grid, nil
}
