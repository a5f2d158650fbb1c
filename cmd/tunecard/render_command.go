package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tunecard/internal/catalog"
	"tunecard/internal/render"
)

func newRenderCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "render",
		Short: "Render the saved catalog into printable SVG card sheets",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.newLogger(cfg)
			if err != nil {
				return err
			}

			songs, skipped, err := catalog.LoadSnapshot(cfg.SnapshotPath())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if skipped > 0 {
				fmt.Fprintf(out, "warning: skipped %d malformed snapshot lines\n", skipped)
			}
			if len(songs) == 0 {
				fmt.Fprintln(out, "snapshot is empty; run `tunecard build` first")
				return nil
			}

			catalog.SortByYear(songs)

			renderer := render.New(render.Options{
				OutputPath: cfg.Render.OutputPath,
				IconPath:   cfg.Render.IconPath,
				DesignPath: cfg.Render.DesignPath,
				FontFamily: cfg.Render.FontFamily,
				Columns:    cfg.Render.Columns,
				Rows:       cfg.Render.Rows,
			}, logger)
			paths, err := renderer.Render(songs)
			if err != nil {
				return err
			}

			for _, path := range paths {
				fmt.Fprintln(out, path)
			}
			fmt.Fprintf(out, "rendered %d songs onto %d sheets\n", len(songs), len(paths))
			return nil
		},
	}
}
