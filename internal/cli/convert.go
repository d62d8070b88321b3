package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"mosaic/internal/formats"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Convert re-encodes a saved grid into another format.
func Convert() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <file>",
		Short: "Re-encode a saved mosaic",
		Long: `Read a mosaic saved as rgbz, png, bmp or tiff and write it again with
--format into --out-dir, keeping the base name.`,
		Args: cobra.ExactArgs(1),
		RunE: runConvert,
	}
}

func runConvert(cmd *cobra.Command, args []string) error {
	opts, closeLog, err := setup(cmd)
	defer closeLog()
	if err != nil {
		return err
	}
	in := args[0]
	base := strings.TrimSuffix(filepath.Base(in), filepath.Ext(in))
	out, err := newSink(opts, func(_ int, ext string) string { return base + "." + ext })
	if err != nil {
		return err
	}

	grid, err := formats.DecodeFile(in)
	if err != nil {
		return fmt.Errorf("read %s: %w", in, err)
	}
	path, err := out.Save(grid)
	if err != nil {
		return err
	}
	log.Info().Str("from", in).Str("to", path).Int("size", grid.N).Msg("converted")
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}
