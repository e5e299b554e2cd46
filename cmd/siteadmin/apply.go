// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	xglog "github.com/ManuGH/siteadmin/internal/log"
	"github.com/ManuGH/siteadmin/internal/metrics"
	"github.com/ManuGH/siteadmin/internal/siteconfig"
)

func newApplyCmd(g *globalFlags) *cobra.Command {
	var (
		file  string
		watch bool
	)

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Save the settings from a YAML snapshot",
		Long: `Read a snapshot written by 'siteadmin export' (or by hand) and save it
to the config store. With --watch the snapshot is re-applied whenever the file
changes or the process receives SIGHUP, until interrupted.`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if file == "" {
				return usageErrorf("--file is required")
			}
			return g.withSession(cmd, func(ctx context.Context, s *session) error {
				err := applyFile(ctx, s, file)
				if !watch {
					return err
				}
				if err != nil {
					s.logger.Warn().Err(err).Str(xglog.FieldPath, file).Msg("initial apply failed, watching for changes")
				}
				return watchFile(ctx, s, file)
			})
		},
	}

	f := cmd.Flags()
	f.StringVarP(&file, "file", "f", "", "snapshot file to apply")
	f.BoolVarP(&watch, "watch", "w", false, "keep running and re-apply on every change")
	return cmd
}

func applyFile(ctx context.Context, s *session, path string) error {
	cfg, err := siteconfig.ReadFile(path)
	if err != nil {
		return err
	}
	return applyConfig(ctx, s, cfg)
}

func applyConfig(ctx context.Context, s *session, cfg siteconfig.SiteConfig) error {
	s.panel.Replace(cfg)
	err := s.panel.Save(ctx)
	if path := s.cfg.Metrics.TextfilePath; path != "" {
		if werr := metrics.WriteTextfile(path); werr != nil {
			s.logger.Warn().Err(werr).Str(xglog.FieldPath, path).Msg("failed to write metrics textfile")
		}
	}
	return err
}

// watchFile blocks until ctx is done, re-applying path on file changes and
// on SIGHUP.
func watchFile(ctx context.Context, s *session, path string) error {
	g, ctx := errgroup.WithContext(ctx)

	w := &siteconfig.Watcher{
		Path: path,
		OnChange: func(ctx context.Context, cfg siteconfig.SiteConfig) error {
			return applyConfig(ctx, s, cfg)
		},
	}
	g.Go(func() error {
		return w.Run(ctx)
	})

	g.Go(func() error {
		hup := make(chan os.Signal, 1)
		signal.Notify(hup, syscall.SIGHUP)
		defer signal.Stop(hup)

		for {
			select {
			case <-ctx.Done():
				return nil
			case <-hup:
				s.logger.Info().
					Str(xglog.FieldEvent, "snapshot.reload_signal").
					Str(xglog.FieldPath, path).
					Msg("received reload signal, re-applying snapshot")
				if err := applyFile(ctx, s, path); err != nil {
					s.logger.Warn().Err(err).Str(xglog.FieldEvent, "snapshot.reload_failed").Msg("snapshot reload failed")
				}
			}
		}
	})

	return g.Wait()
}
