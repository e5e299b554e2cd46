// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newDomainsCmd(g *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "domains",
		Short: "List or edit the allowed email domains",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(newDomainsListCmd(g), newDomainsAddCmd(g), newDomainsRemoveCmd(g))
	return cmd
}

func newDomainsListCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print one allowed domain per line",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return g.withSession(cmd, func(ctx context.Context, s *session) error {
				if err := s.panel.Load(ctx); err != nil {
					return err
				}
				for _, d := range s.panel.Domains() {
					fmt.Fprintln(g.stdout, d)
				}
				return nil
			})
		},
	}
}

func newDomainsAddCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "add DOMAIN...",
		Short: "Add domains and save",
		Long: `Add each domain in order and save once. Empty and already listed
domains are reported and skipped; the accepted ones are still saved, but the
command exits non-zero.`,
		Args: usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return g.withSession(cmd, func(ctx context.Context, s *session) error {
				if err := s.panel.Load(ctx); err != nil {
					return err
				}

				var rejected []error
				for _, d := range args {
					if err := s.panel.AddDomainValue(ctx, d); err != nil {
						rejected = append(rejected, err)
					}
				}
				if len(rejected) < len(args) {
					if err := s.panel.Save(ctx); err != nil {
						return err
					}
				}
				if len(rejected) > 0 {
					return fmt.Errorf("%d of %d domains rejected: %w", len(rejected), len(args), errors.Join(rejected...))
				}
				return nil
			})
		},
	}
}

func newDomainsRemoveCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "remove DOMAIN...",
		Aliases: []string{"rm"},
		Short:   "Remove domains and save",
		Args:    usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return g.withSession(cmd, func(ctx context.Context, s *session) error {
				if err := s.panel.Load(ctx); err != nil {
					return err
				}
				for _, d := range args {
					s.panel.RemoveDomain(ctx, d)
				}
				return s.panel.Save(ctx)
			})
		},
	}
}
