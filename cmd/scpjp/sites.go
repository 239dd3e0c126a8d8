package main

import (
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/scp-jp/scpjp-go/memberman"
)

func init() {
	sitesCmd := &cobra.Command{
		Use:   "sites",
		Short: "Manage sites",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all sites with member counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := memberClient()
			if err != nil {
				return err
			}

			sites, err := client.ListSites(cmd.Context())
			if err != nil {
				return err
			}

			rows := make([]table.Row, 0, len(sites))
			for _, s := range sites {
				rows = append(rows, table.Row{s.ID, s.Name, s.MembersCount, s.CreatedAt.Format("2006-01-02")})
			}
			renderTable(table.Row{"ID", "Name", "Members", "Created"}, rows)
			return nil
		},
	}

	createCmd := &cobra.Command{
		Use:   "create <id> <name>",
		Short: "Register a new site",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			siteID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid site id %q: %w", args[0], err)
			}

			client, err := memberClient()
			if err != nil {
				return err
			}

			site, err := client.CreateSite(cmd.Context(), siteID, args[1])
			if err != nil {
				return err
			}
			fmt.Printf("created site %d (%s)\n", site.ID, site.Name)
			return nil
		},
	}

	updateCmd := &cobra.Command{
		Use:   "update <id> <name>",
		Short: "Rename a site",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			siteID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid site id %q: %w", args[0], err)
			}

			client, err := memberClient()
			if err != nil {
				return err
			}

			site, err := client.UpdateSite(cmd.Context(), siteID, args[1])
			if err != nil {
				return err
			}
			fmt.Printf("updated site %d (%s)\n", site.ID, site.Name)
			return nil
		},
	}

	var fromDate, toDate string
	statsCmd := &cobra.Command{
		Use:   "stats <id>",
		Short: "Show a site's member statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			siteID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid site id %q: %w", args[0], err)
			}

			client, err := memberClient()
			if err != nil {
				return err
			}

			var opt *memberman.MembersStatsOptions
			if fromDate != "" || toDate != "" {
				opt = &memberman.MembersStatsOptions{FromDate: fromDate, ToDate: toDate}
			}

			stats, err := client.SiteMembersStats(cmd.Context(), siteID, opt)
			if err != nil {
				return err
			}

			fmt.Printf("current members: %d\n", stats.CurrentCount)
			rows := make([]table.Row, 0, len(stats.DailyCounts))
			for _, d := range stats.DailyCounts {
				rows = append(rows, table.Row{d.Date, d.Count})
			}
			renderTable(table.Row{"Date", "Members"}, rows)
			return nil
		},
	}
	statsCmd.Flags().StringVar(&fromDate, "from", "", "start date (YYYY-MM-DD)")
	statsCmd.Flags().StringVar(&toDate, "to", "", "end date (YYYY-MM-DD)")

	sitesCmd.AddCommand(listCmd, createCmd, updateCmd, statsCmd)
	rootCmd.AddCommand(sitesCmd)
}
