package main

import (
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/scp-jp/scpjp-go"
	"github.com/scp-jp/scpjp-go/memberman"
)

func init() {
	usersCmd := &cobra.Command{
		Use:   "users",
		Short: "Look up users",
	}

	var (
		name     string
		unixName string
		siteIDs  []int64
		levels   []int
		deleted  bool
		page     int
		perPage  int
	)
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List users matching the given filters",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := memberClient()
			if err != nil {
				return err
			}

			opt := &memberman.ListUsersOptions{
				ListOptions: scpjp.ListOptions{Page: page, PerPage: perPage},
			}
			if name != "" {
				opt.Name = &name
			}
			if unixName != "" {
				opt.UnixName = &unixName
			}
			if len(siteIDs) > 0 {
				opt.SiteIDs = siteIDs
			}
			for _, l := range levels {
				opt.PermissionLevels = append(opt.PermissionLevels, memberman.PermissionLevel(l))
			}
			if cmd.Flags().Changed("deleted") {
				opt.IsDeleted = &deleted
			}

			users, err := client.ListUsers(cmd.Context(), opt)
			if err != nil {
				return err
			}

			rows := make([]table.Row, 0, len(users))
			for _, u := range users {
				rows = append(rows, table.Row{u.ID, u.Name, u.UnixName, u.PermissionLevel, len(u.SiteMemberships)})
			}
			renderTable(table.Row{"ID", "Name", "Unix name", "Permission", "Sites"}, rows)
			return nil
		},
	}
	listCmd.Flags().StringVar(&name, "name", "", "filter by display name")
	listCmd.Flags().StringVar(&unixName, "unix-name", "", "filter by unix name")
	listCmd.Flags().Int64SliceVar(&siteIDs, "site", nil, "filter by site id (repeatable)")
	listCmd.Flags().IntSliceVar(&levels, "permission", nil, "filter by permission level value (repeatable)")
	listCmd.Flags().BoolVar(&deleted, "deleted", false, "filter by deleted state")
	listCmd.Flags().IntVar(&page, "page", 0, "page number")
	listCmd.Flags().IntVar(&perPage, "per-page", 0, "page size")

	getCmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show a user and their site memberships",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid user id %q: %w", args[0], err)
			}

			client, err := memberClient()
			if err != nil {
				return err
			}

			user, err := client.GetUser(cmd.Context(), userID)
			if err != nil {
				return err
			}

			fmt.Printf("%s (%s) id=%d permission=%s deleted=%v\n",
				user.Name, user.UnixName, user.ID, user.PermissionLevel, user.IsDeleted)

			rows := make([]table.Row, 0, len(user.SiteMemberships))
			for _, m := range user.SiteMemberships {
				rows = append(rows, table.Row{m.SiteID, m.EffectivePermissionLevel, m.IsResigned, m.JoinedAt.Format("2006-01-02")})
			}
			renderTable(table.Row{"Site", "Permission", "Resigned", "Joined"}, rows)
			return nil
		},
	}

	usersCmd.AddCommand(listCmd, getCmd)
	rootCmd.AddCommand(usersCmd)
}
