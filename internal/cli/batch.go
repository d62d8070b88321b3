package cli

import (
	"fmt"

	"mosaic/internal/config"
	"mosaic/internal/sink"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// Batch paints several grids of the same size with consecutive seeds.
func Batch() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <size>",
		Short: "Paint several mosaics in parallel",
		Long: `Paint --count mosaics of the same size using seeds seed, seed+1, ...
Each painting is sequential; independent paintings run on --workers goroutines.
Files are named pic<size>-s<seed>.<ext> and printed in seed order.`,
		Args: cobra.ExactArgs(1),
		RunE: runBatch,
	}
	config.AddBatchFlags(cmd.Flags())
	return cmd
}

func runBatch(cmd *cobra.Command, args []string) error {
	size, err := ParseSize(args[0])
	if err != nil {
		return err
	}
	opts, closeLog, err := setup(cmd)
	defer closeLog()
	if err != nil {
		return err
	}
	base := resolveSeed(opts.Seed)

	paths := make([]string, opts.Count)
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(opts.Workers)
	for i := 0; i < opts.Count; i++ {
		seed := base + int64(i)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out, err := newSink(opts, sink.SeedName(seed))
			if err != nil {
				return err
			}
			grid, err := paintGrid(size, seed, opts.Progress)
			if err != nil {
				return err
			}
			path, err := out.Save(grid)
			if err != nil {
				return fmt.Errorf("seed %d: %w", seed, err)
			}
			paths[i] = path
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, path := range paths {
		fmt.Fprintln(cmd.OutOrStdout(), path)
	}
	log.Info().Int("count", opts.Count).Int("workers", opts.Workers).Msg("batch complete")
	return nil
}

// newSink builds the file sink for the configured directory and format.
func newSink(opts config.Options, name sink.Namer) (*sink.File, error) {
	return sink.New(opts.OutDir, opts.Format, name)
}
