package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	batchCmd := &cobra.Command{
		Use:   "batch",
		Short: "Inspect and trigger the member management batch tasks",
	}

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show the schedule state of the batch tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := memberClient()
			if err != nil {
				return err
			}

			statuses, err := client.BatchStatuses(cmd.Context())
			if err != nil {
				return err
			}

			rows := make([]table.Row, 0, len(statuses.Statuses))
			for _, s := range statuses.Statuses {
				rows = append(rows, table.Row{s.Name, s.NextRunTime.Format("2006-01-02 15:04:05")})
			}
			renderTable(table.Row{"Task", "Next run"}, rows)
			return nil
		},
	}

	forceStartCmd := &cobra.Command{
		Use:   "force-start <task>",
		Short: "Trigger an immediate run of a batch task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := memberClient()
			if err != nil {
				return err
			}

			resp, err := client.ForceStartBatch(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Println(resp.Status)
			return nil
		},
	}

	batchCmd.AddCommand(statusCmd, forceStartCmd)
	rootCmd.AddCommand(batchCmd)
}
