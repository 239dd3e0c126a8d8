package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/scp-jp/scpjp-go/auditlog"
)

func init() {
	linkerCmd := &cobra.Command{
		Use:   "linker",
		Short: "Inspect and manage Discord/Wikidot account links",
	}

	lookupCmd := &cobra.Command{
		Use:   "lookup <discord-id>...",
		Short: "Look up the Wikidot accounts linked to Discord IDs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := linkerClient()
			if err != nil {
				return err
			}

			resp, err := client.AccountList(cmd.Context(), args)
			if err != nil {
				return err
			}

			var rows []table.Row
			for _, id := range args {
				accounts, ok := resp.Result[id]
				if !ok || len(accounts.Wikidot) == 0 {
					rows = append(rows, table.Row{id, "", "-", "-"})
					continue
				}
				for _, w := range accounts.Wikidot {
					rows = append(rows, table.Row{id, accounts.Discord.Username, w.Username, w.IsJPMember})
				}
			}
			renderTable(table.Row{"Discord ID", "Discord", "Wikidot", "JP member"}, rows)
			return nil
		},
	}

	discordCmd := &cobra.Command{
		Use:   "discord",
		Short: "List every Discord account the linker knows",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := linkerClient()
			if err != nil {
				return err
			}

			resp, err := client.ListDiscordAccounts(cmd.Context())
			if err != nil {
				return err
			}

			rows := make([]table.Row, 0, len(resp.Result))
			for _, item := range resp.Result {
				linked := make([]string, 0, len(item.Wikidot))
				for _, w := range item.Wikidot {
					name := w.Username
					if w.UnlinkedAt != nil {
						name += " (unlinked)"
					}
					linked = append(linked, name)
				}
				rows = append(rows, table.Row{item.Discord.ID, item.Discord.Username, strings.Join(linked, ", ")})
			}
			renderTable(table.Row{"Discord ID", "Username", "Wikidot accounts"}, rows)
			return nil
		},
	}

	wikidotCmd := &cobra.Command{
		Use:   "wikidot",
		Short: "List every Wikidot account the linker knows",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := linkerClient()
			if err != nil {
				return err
			}

			resp, err := client.ListWikidotAccounts(cmd.Context())
			if err != nil {
				return err
			}

			rows := make([]table.Row, 0, len(resp.Result))
			for _, item := range resp.Result {
				rows = append(rows, table.Row{item.Wikidot.ID, item.Wikidot.Username, item.Wikidot.IsJPMember, len(item.Discord)})
			}
			renderTable(table.Row{"Wikidot ID", "Username", "JP member", "Discord links"}, rows)
			return nil
		},
	}

	var discordID, wikidotID int64
	unlinkCmd := &cobra.Command{
		Use:   "unlink",
		Short: "Sever a Discord/Wikidot link",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := linkerClient()
			if err != nil {
				return err
			}

			result, err := client.Unlink(cmd.Context(), discordID, wikidotID)
			if err != nil {
				return err
			}

			if err := auditLogger().Log(cmd.Context(), auditlog.Entry{
				Action:  "unlink",
				Message: fmt.Sprintf("unlinked discord %d from wikidot %d", discordID, wikidotID),
			}); err != nil {
				slog.Warn("audit log write failed", "error", err)
			}

			fmt.Println(result)
			return nil
		},
	}
	unlinkCmd.Flags().Int64Var(&discordID, "discord", 0, "Discord account id")
	unlinkCmd.Flags().Int64Var(&wikidotID, "wikidot", 0, "Wikidot account id")
	_ = unlinkCmd.MarkFlagRequired("discord")
	_ = unlinkCmd.MarkFlagRequired("wikidot")

	var relinkDiscordID, relinkWikidotID int64
	relinkCmd := &cobra.Command{
		Use:   "relink",
		Short: "Restore a severed Discord/Wikidot link",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := linkerClient()
			if err != nil {
				return err
			}

			result, err := client.Relink(cmd.Context(), relinkDiscordID, relinkWikidotID)
			if err != nil {
				return err
			}

			if err := auditLogger().Log(cmd.Context(), auditlog.Entry{
				Action:  "relink",
				Message: fmt.Sprintf("relinked discord %d to wikidot %d", relinkDiscordID, relinkWikidotID),
			}); err != nil {
				slog.Warn("audit log write failed", "error", err)
			}

			fmt.Println(result)
			return nil
		},
	}
	relinkCmd.Flags().Int64Var(&relinkDiscordID, "discord", 0, "Discord account id")
	relinkCmd.Flags().Int64Var(&relinkWikidotID, "wikidot", 0, "Wikidot account id")
	_ = relinkCmd.MarkFlagRequired("discord")
	_ = relinkCmd.MarkFlagRequired("wikidot")

	linkerCmd.AddCommand(lookupCmd, discordCmd, wikidotCmd, unlinkCmd, relinkCmd)
	rootCmd.AddCommand(linkerCmd)
}
