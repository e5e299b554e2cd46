// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package main

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ManuGH/siteadmin/internal/roles"
	"github.com/ManuGH/siteadmin/internal/validate"
)

func newSetCmd(g *globalFlags) *cobra.Command {
	var (
		defaultRole  string
		adminContact string
		maxEmails    string
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change site settings and save them",
		Example: `  siteadmin set --default-role knight
  siteadmin set --admin-contact "ops@example.org" --max-emails 25`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()
			if !flags.Changed("default-role") && !flags.Changed("admin-contact") && !flags.Changed("max-emails") {
				return usageErrorf("nothing to set: pass --default-role, --admin-contact or --max-emails")
			}

			var role roles.Role
			v := validate.New()
			if flags.Changed("default-role") {
				v.Custom("default-role", defaultRole, func(val any) error {
					r, err := roles.ParseAssignable(val.(string))
					role = r
					return err
				})
			}
			if flags.Changed("max-emails") {
				v.PositiveIntString("max-emails", maxEmails)
			}
			if err := v.Err(); err != nil {
				return &usageError{err: err}
			}

			return g.withSession(cmd, func(ctx context.Context, s *session) error {
				if err := s.panel.Load(ctx); err != nil {
					return err
				}
				if flags.Changed("default-role") {
					s.panel.SetDefaultRole(role)
				}
				if flags.Changed("admin-contact") {
					s.panel.SetAdminContact(adminContact)
				}
				if flags.Changed("max-emails") {
					s.panel.SetMaxEmails(maxEmails)
				}
				return s.panel.Save(ctx)
			})
		},
	}

	f := cmd.Flags()
	f.StringVar(&defaultRole, "default-role", "", "default role for new users: "+assignableRoles())
	f.StringVar(&adminContact, "admin-contact", "", "contact shown to users who need an administrator")
	f.StringVar(&maxEmails, "max-emails", "", "maximum active email addresses per user")
	return cmd
}

func assignableRoles() string {
	names := make([]string, 0, len(roles.Assignable()))
	for _, r := range roles.Assignable() {
		names = append(names, r.String())
	}
	return strings.Join(names, ", ")
}
