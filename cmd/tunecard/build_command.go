package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tunecard/internal/browse"
	"tunecard/internal/catalog"
	"tunecard/internal/feed"
	"tunecard/internal/ingest"
	"tunecard/internal/logging"
	"tunecard/internal/prompt"
	"tunecard/internal/review"
)

func newBuildCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Fetch the playlist, resolve every song, and review the catalog",
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

			resolver, cleanup, err := ctx.newResolver(cfg, logger)
			if err != nil {
				return err
			}
			defer cleanup()

			feedClient, err := feed.New(cfg.Feed.APIKey, cfg.Feed.BaseURL, cfg.Feed.PageSize, logger)
			if err != nil {
				return err
			}
			entries, err := feedClient.FetchPlaylist(cmd.Context(), cfg.Feed.PlaylistID)
			if err != nil {
				return err
			}
			logger.Info("playlist fetched", logging.Int("entries", len(entries)))

			out := cmd.OutOrStdout()
			ingestor := ingest.New(resolver, out, logger)
			result, err := ingestor.Run(cmd.Context(), entries)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "resolved %d of %d songs, %d need review\n",
				len(result.Accepted), len(entries), len(result.Unresolved))

			prompter := prompt.NewTerminal(cmd.InOrStdin(), out)
			session := review.NewSession(resolver, prompter, out, logger)
			decided, err := session.Run(cmd.Context(), result.Unresolved)
			if err != nil {
				return err
			}

			songs := append(result.Accepted, decided...)

			// Checkpoint before browsing so an aborted audit can resume
			// with `tunecard review`.
			if err := catalog.SaveSnapshot(cfg.SnapshotPath(), songs); err != nil {
				return err
			}

			browser := browse.New(resolver, prompter, out, cfg.Browser.PageSize, logger)
			songs, err = browser.Run(cmd.Context(), songs)
			if err != nil {
				return err
			}
			if err := catalog.SaveSnapshot(cfg.SnapshotPath(), songs); err != nil {
				return err
			}

			fmt.Fprintf(out, "catalog saved: %d songs in %s\n", len(songs), cfg.SnapshotPath())
			fmt.Fprintln(out, "run `tunecard render` to produce the card sheets")
			return nil
		},
	}
}
