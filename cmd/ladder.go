// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var ladderCmd = &cobra.Command{
	Use:   "ladder",
	Short: "Show the privilege tiers of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := getClient(cmd.Context())
		if err != nil {
			return err
		}

		tiers, err := client.Ladder()
		if err != nil {
			return fmt.Errorf("failed to get ladder: %w", err)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ROLE\tLEVEL")
		for _, t := range tiers {
			fmt.Fprintf(w, "%s\t%d\n", t.Name, t.Level)
		}
		return w.Flush()
	},
}

var permissionsCmd = &cobra.Command{
	Use:   "permissions",
	Short: "List the permission catalog grouped by category",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := getClient(cmd.Context())
		if err != nil {
			return err
		}

		categories, err := client.Permissions()
		if err != nil {
			return fmt.Errorf("failed to list permissions: %w", err)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "CATEGORY\tID\tCODE\tDESCRIPTION")
		for _, c := range categories {
			for _, p := range c.Permissions {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.Category, p.ID, p.Code, p.Description)
			}
		}
		return w.Flush()
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami [account-id]",
	Short: "Show the effective privilege of the caller in an account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := getClient(cmd.Context())
		if err != nil {
			return err
		}

		actor, err := client.Me(args[0])
		if err != nil {
			return fmt.Errorf("failed to resolve caller: %w", err)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "USER\tMEMBERSHIP\tSUPER_ADMIN\tLEVEL\tROLES")
		fmt.Fprintf(w, "%s\t%s\t%v\t%d\t%s\n", actor.UserID, actor.MembershipID, actor.IsSuperAdmin, actor.Level, strings.Join(actor.RoleNames, ","))
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(ladderCmd)
	rootCmd.AddCommand(permissionsCmd)
	rootCmd.AddCommand(whoamiCmd)
}
