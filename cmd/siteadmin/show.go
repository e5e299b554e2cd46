// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ManuGH/siteadmin/internal/roles"
	"github.com/ManuGH/siteadmin/internal/siteconfig"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

func newShowCmd(g *globalFlags) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the current site settings",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			switch format {
			case formatText, formatJSON, formatYAML:
			default:
				return usageErrorf("invalid --format %q (supported: text, json, yaml)", format)
			}
			return g.withSession(cmd, func(ctx context.Context, s *session) error {
				if err := s.panel.Load(ctx); err != nil {
					return err
				}
				return printConfig(g.stdout, format, s.panel.Snapshot(), s.cfg.MaxEmailsFallback())
			})
		},
	}
	cmd.Flags().StringVar(&format, "format", formatText, "output format: text, json or yaml")
	return cmd
}

func printConfig(out io.Writer, format string, c siteconfig.SiteConfig, fallback string) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(c.ToWire(fallback))
	case formatYAML:
		return siteconfig.EncodeSnapshot(out, c)
	}

	role := "(unset)"
	if c.DefaultRole != "" {
		role = roles.Label(c.DefaultRole)
	}
	domains := "(none)"
	if c.EmailDomains.Len() > 0 {
		domains = strings.Join(c.EmailDomains.Values(), ", ")
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Default role:\t%s\n", role)
	fmt.Fprintf(tw, "Email domains:\t%s\n", domains)
	fmt.Fprintf(tw, "Admin contact:\t%s\n", c.AdminContact)
	fmt.Fprintf(tw, "Max emails:\t%s\n", siteconfig.MaxEmailsOrDefault(c.MaxEmails, fallback))
	return tw.Flush()
}
