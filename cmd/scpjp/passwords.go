package main

import (
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/scp-jp/scpjp-go/memberman"
)

func init() {
	pwCmd := &cobra.Command{
		Use:   "passwords",
		Short: "Manage site join passwords",
	}

	var siteID int64
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List join passwords",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := memberClient()
			if err != nil {
				return err
			}

			opt := &memberman.ListApplicationPasswordsOptions{}
			if cmd.Flags().Changed("site") {
				opt.SiteID = &siteID
			}

			pws, err := client.ListApplicationPasswords(cmd.Context(), opt)
			if err != nil {
				return err
			}

			rows := make([]table.Row, 0, len(pws))
			for _, p := range pws {
				rows = append(rows, table.Row{p.ID, p.SiteID, p.Password, p.IsEnabled})
			}
			renderTable(table.Row{"ID", "Site", "Password", "Enabled"}, rows)
			return nil
		},
	}
	listCmd.Flags().Int64Var(&siteID, "site", 0, "filter by site id")

	var disabled bool
	createCmd := &cobra.Command{
		Use:   "create <site-id> <password>",
		Short: "Register a new join password",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			createSiteID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid site id %q: %w", args[0], err)
			}

			client, err := memberClient()
			if err != nil {
				return err
			}

			pw, err := client.CreateApplicationPassword(cmd.Context(), createSiteID, args[1], !disabled)
			if err != nil {
				return err
			}
			fmt.Printf("created password %d for site %d (enabled=%v)\n", pw.ID, pw.SiteID, pw.IsEnabled)
			return nil
		},
	}
	createCmd.Flags().BoolVar(&disabled, "disabled", false, "create the password in disabled state")

	toggleCmd := &cobra.Command{
		Use:   "toggle <id>",
		Short: "Flip a join password's enabled state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			passwordID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid password id %q: %w", args[0], err)
			}

			client, err := memberClient()
			if err != nil {
				return err
			}

			pw, err := client.ToggleApplicationPassword(cmd.Context(), passwordID)
			if err != nil {
				return err
			}
			fmt.Printf("password %d enabled=%v\n", pw.ID, pw.IsEnabled)
			return nil
		},
	}

	pwCmd.AddCommand(listCmd, createCmd, toggleCmd)
	rootCmd.AddCommand(pwCmd)
}
