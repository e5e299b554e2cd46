// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ManuGH/siteadmin/internal/siteconfig"
)

func newExportCmd(g *globalFlags) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the current settings to a YAML snapshot",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if output == "" {
				return usageErrorf("--output is required")
			}
			return g.withSession(cmd, func(ctx context.Context, s *session) error {
				if err := s.panel.Load(ctx); err != nil {
					return err
				}
				return siteconfig.WriteFile(ctx, output, s.panel.Snapshot())
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "snapshot file to write")
	return cmd
}
