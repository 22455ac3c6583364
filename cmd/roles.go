// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "Manage the roles of an account",
}

var listRolesCmd = &cobra.Command{
	Use:   "list [account-id]",
	Short: "List the roles of an account and whether the caller can assign them",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := getClient(cmd.Context())
		if err != nil {
			return err
		}

		partition, err := client.Roles(args[0])
		if err != nil {
			return fmt.Errorf("failed to list roles: %w", err)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tSYSTEM\tASSIGNABLE")
		for _, r := range partition.Assignable {
			fmt.Fprintf(w, "%s\t%s\t%v\t%v\n", r.ID, r.Name, r.IsSystemDefined, true)
		}
		for _, r := range partition.Blocked {
			fmt.Fprintf(w, "%s\t%s\t%v\t%v\n", r.ID, r.Name, r.IsSystemDefined, false)
		}
		return w.Flush()
	},
}

var rolePermissions []string

var createRoleCmd = &cobra.Command{
	Use:   "create [account-id] [name]",
	Short: "Create a custom role",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := getClient(cmd.Context())
		if err != nil {
			return err
		}

		role, err := client.CreateRole(args[0], args[1], rolePermissions)
		if err != nil {
			return fmt.Errorf("failed to create role: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Role created: %s (ID: %s)\n", role.Name, role.ID)
		return nil
	},
}

var deleteRoleCmd = &cobra.Command{
	Use:   "delete [account-id] [role-id]",
	Short: "Delete a role together with its permission and membership links",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := getClient(cmd.Context())
		if err != nil {
			return err
		}

		if err := client.DeleteRole(args[0], args[1]); err != nil {
			return fmt.Errorf("failed to delete role: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Role deleted: %s\n", args[1])
		return nil
	},
}

var rolePermissionsCmd = &cobra.Command{
	Use:   "permissions [account-id] [role-id]",
	Short: "List the permissions granted to a role",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := getClient(cmd.Context())
		if err != nil {
			return err
		}

		permissions, err := client.RolePermissions(args[0], args[1])
		if err != nil {
			return fmt.Errorf("failed to list role permissions: %w", err)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tCODE\tCATEGORY")
		for _, p := range permissions {
			fmt.Fprintf(w, "%s\t%s\t%s\n", p.ID, p.Code, p.Category)
		}
		return w.Flush()
	},
}

var grantCmd = &cobra.Command{
	Use:   "grant [account-id] [role-id]",
	Short: "Replace the permissions of a role, an empty --permissions clears them",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := getClient(cmd.Context())
		if err != nil {
			return err
		}

		if err := client.ReplacePermissions(args[0], args[1], rolePermissions); err != nil {
			return fmt.Errorf("failed to replace permissions: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Permissions replaced: %s (%d granted)\n", args[1], len(rolePermissions))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rolesCmd)
	rolesCmd.AddCommand(listRolesCmd)
	rolesCmd.AddCommand(createRoleCmd)
	rolesCmd.AddCommand(deleteRoleCmd)
	rolesCmd.AddCommand(rolePermissionsCmd)
	rolesCmd.AddCommand(grantCmd)

	createRoleCmd.Flags().StringSliceVar(&rolePermissions, "permissions", []string{}, "Comma-separated list of permission IDs")
	grantCmd.Flags().StringSliceVar(&rolePermissions, "permissions", []string{}, "Comma-separated list of permission IDs")
}
