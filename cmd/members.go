// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var membershipsCmd = &cobra.Command{
	Use:   "memberships",
	Short: "Manage the roles held by account memberships",
}

var (
	assignedRoles []string
	superAdmin    bool
)

var assignCmd = &cobra.Command{
	Use:   "assign [account-id] [membership-id]",
	Short: "Replace the roles of a membership, an empty --roles removes them all",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var flag *bool
		if cmd.Flags().Changed("super-admin") {
			flag = &superAdmin
		}

		client, err := getClient(cmd.Context())
		if err != nil {
			return err
		}

		if err := client.AssignRoles(args[0], args[1], assignedRoles, flag); err != nil {
			return fmt.Errorf("failed to assign roles: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Roles assigned: %s (%d roles)\n", args[1], len(assignedRoles))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(membershipsCmd)
	membershipsCmd.AddCommand(assignCmd)

	assignCmd.Flags().StringSliceVar(&assignedRoles, "roles", []string{}, "Comma-separated list of role IDs")
	assignCmd.Flags().BoolVar(&superAdmin, "super-admin", false, "Set the super admin flag of the member, omitted leaves it unchanged")
}
