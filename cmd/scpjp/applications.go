package main

import (
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/scp-jp/scpjp-go/memberman"
)

func init() {
	appsCmd := &cobra.Command{
		Use:   "applications",
		Short: "Review site join applications",
	}

	var (
		siteID   int64
		userID   int64
		statuses []int
	)
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List join applications matching the given filters",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := memberClient()
			if err != nil {
				return err
			}

			opt := &memberman.ListApplicationRequestsOptions{}
			if cmd.Flags().Changed("site") {
				opt.SiteID = &siteID
			}
			if cmd.Flags().Changed("user") {
				opt.UserID = &userID
			}
			for _, s := range statuses {
				opt.Statuses = append(opt.Statuses, memberman.Status(s))
			}

			reqs, err := client.ListApplicationRequests(cmd.Context(), opt)
			if err != nil {
				return err
			}

			rows := make([]table.Row, 0, len(reqs))
			for _, r := range reqs {
				rows = append(rows, table.Row{r.ID, r.Site.Name, r.User.Name, r.Status, r.AcquiredAt.Format("2006-01-02 15:04")})
			}
			renderTable(table.Row{"ID", "Site", "User", "Status", "Acquired"}, rows)
			return nil
		},
	}
	listCmd.Flags().Int64Var(&siteID, "site", 0, "filter by site id")
	listCmd.Flags().Int64Var(&userID, "user", 0, "filter by user id")
	listCmd.Flags().IntSliceVar(&statuses, "status", nil, "filter by status value (repeatable)")

	getCmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one join application",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			requestID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid request id %q: %w", args[0], err)
			}

			client, err := memberClient()
			if err != nil {
				return err
			}

			req, err := client.GetApplicationRequest(cmd.Context(), requestID)
			if err != nil {
				return err
			}

			fmt.Printf("application %d: %s -> %s [%s]\n", req.ID, req.User.Name, req.Site.Name, req.Status)
			fmt.Println(req.Text)
			if req.DeclineReasonType != nil {
				fmt.Printf("declined: %s (%s)\n", *req.DeclineReasonType, req.DeclineReasonDetail)
			}
			return nil
		},
	}

	var reviewerID int64
	approveCmd := &cobra.Command{
		Use:   "approve <id>",
		Short: "Approve a join application",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			requestID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid request id %q: %w", args[0], err)
			}

			client, err := memberClient()
			if err != nil {
				return err
			}

			result, err := client.ApproveApplicationRequest(cmd.Context(), requestID, reviewerID)
			if err != nil {
				return err
			}
			fmt.Println(result["message"])
			return nil
		},
	}
	approveCmd.Flags().Int64Var(&reviewerID, "reviewer", 0, "reviewer user id")
	_ = approveCmd.MarkFlagRequired("reviewer")

	var (
		declineReviewerID int64
		reasonType        int
		reasonDetail      string
	)
	declineCmd := &cobra.Command{
		Use:   "decline <id>",
		Short: "Decline a join application",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			requestID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid request id %q: %w", args[0], err)
			}

			client, err := memberClient()
			if err != nil {
				return err
			}

			result, err := client.DeclineApplicationRequest(cmd.Context(), requestID,
				declineReviewerID, memberman.DeclineReasonType(reasonType), reasonDetail)
			if err != nil {
				return err
			}
			fmt.Println(result["message"])
			return nil
		},
	}
	declineCmd.Flags().Int64Var(&declineReviewerID, "reviewer", 0, "reviewer user id")
	declineCmd.Flags().IntVar(&reasonType, "reason-type", 0, "decline reason type value")
	declineCmd.Flags().StringVar(&reasonDetail, "detail", "", "decline reason detail")
	_ = declineCmd.MarkFlagRequired("reviewer")
	_ = declineCmd.MarkFlagRequired("reason-type")

	reasonsCmd := &cobra.Command{
		Use:   "reasons",
		Short: "List the decline reason types the service reports",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := memberClient()
			if err != nil {
				return err
			}

			types, err := client.DeclineReasonTypes(cmd.Context())
			if err != nil {
				return err
			}

			rows := make([]table.Row, 0, len(types))
			for id, desc := range types {
				rows = append(rows, table.Row{id, desc})
			}
			renderTable(table.Row{"ID", "Description"}, rows)
			return nil
		},
	}

	appsCmd.AddCommand(listCmd, getCmd, approveCmd, declineCmd, reasonsCmd)
	rootCmd.AddCommand(appsCmd)
}
