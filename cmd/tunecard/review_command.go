package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tunecard/internal/browse"
	"tunecard/internal/catalog"
	"tunecard/internal/prompt"
)

func newReviewCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "review",
		Short: "Re-open the saved catalog in the browser",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.newLogger(cfg)
			if err != nil {
				return err
			}

			lock, err := catalog.AcquireSessionLock(cfg.LockPath())
			if err != nil {
				return err
			}
			defer lock.Release()

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

			resolver, cleanup, err := ctx.newResolver(cfg, logger)
			if err != nil {
				return err
			}
			defer cleanup()

			prompter := prompt.NewTerminal(cmd.InOrStdin(), out)
			browser := browse.New(resolver, prompter, out, cfg.Browser.PageSize, logger)
			songs, err = browser.Run(cmd.Context(), songs)
			if err != nil {
				return err
			}
			if err := catalog.SaveSnapshot(cfg.SnapshotPath(), songs); err != nil {
				return err
			}

			fmt.Fprintf(out, "catalog saved: %d songs in %s\n", len(songs), cfg.SnapshotPath())
			return nil
		},
	}
}
