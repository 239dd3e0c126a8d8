package main

import (
	"log/slog"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func init() {
	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Probe both backend services concurrently",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			memberState := "unconfigured"
			linkerState := "unconfigured"

			g, ctx := errgroup.WithContext(ctx)

			if client, err := memberClient(); err == nil {
				g.Go(func() error {
					if _, err := client.BatchStatuses(ctx); err != nil {
						slog.Debug("member management probe failed", "error", err)
						memberState = "down: " + err.Error()
						return nil
					}
					memberState = "ok"
					return nil
				})
			}

			if client, err := linkerClient(); err == nil {
				g.Go(func() error {
					if _, err := client.Healthcheck(ctx); err != nil {
						slog.Debug("linker probe failed", "error", err)
						linkerState = "down: " + err.Error()
						return nil
					}
					linkerState = "ok"
					return nil
				})
			}

			// Probes record failures instead of returning them, so Wait
			// only propagates a cancelled context.
			if err := g.Wait(); err != nil {
				return err
			}

			renderTable(table.Row{"Service", "Status"}, []table.Row{
				{"member management", memberState},
				{"account linking", linkerState},
			})
			return nil
		},
	}

	rootCmd.AddCommand(statusCmd)
}
