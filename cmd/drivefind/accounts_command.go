package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"drivefind/internal/metastore"
)

type accountView struct {
	ID        string `json:"id"`
	StorePath string `json:"store_path"`
	SizeBytes int64  `json:"size_bytes"`
}

func newAccountsCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "List DriveFS accounts with a metadata database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			accounts, err := metastore.DiscoverAccounts(cfg.Paths.DriveFSDir)
			if err != nil {
				return err
			}

			views := make([]accountView, 0, len(accounts))
			for _, account := range accounts {
				view := accountView{ID: account.ID, StorePath: account.StorePath}
				if info, err := os.Stat(account.StorePath); err == nil {
					view.SizeBytes = info.Size()
				}
				views = append(views, view)
			}

			if jsonOutput {
				return writeJSON(cmd, views)
			}

			out := cmd.OutOrStdout()
			if len(views) == 0 {
				fmt.Fprintf(out, "No accounts found under %s\n", cfg.Paths.DriveFSDir)
				return nil
			}

			rows := make([][]string, 0, len(views))
			for _, view := range views {
				rows = append(rows, []string{
					view.ID,
					view.StorePath,
					strconv.FormatInt(view.SizeBytes, 10),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Account", "Metadata DB", "Bytes"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight},
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit accounts as JSON")
	return cmd
}
