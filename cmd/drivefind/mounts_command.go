package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"drivefind/internal/mounts"
)

type rootView struct {
	Path string `json:"path"`
	Rank string `json:"rank"`
}

type mountsView struct {
	Mounts []string   `json:"mounts"`
	Roots  []rootView `json:"roots"`
}

func newMountsCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "mounts",
		Short: "List Drive mount points and ranked search roots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			mountPaths, err := mounts.Discover(cfg.Paths.CloudStorageDir)
			if err != nil {
				return err
			}
			roots := mounts.SearchRoots(mountPaths)

			view := mountsView{Mounts: mountPaths}
			for _, root := range roots {
				view.Roots = append(view.Roots, rootView{Path: root.Path, Rank: root.Rank.String()})
			}

			if jsonOutput {
				return writeJSON(cmd, view)
			}

			out := cmd.OutOrStdout()
			if len(mountPaths) == 0 {
				fmt.Fprintf(out, "No Drive mounts found under %s\n", cfg.Paths.CloudStorageDir)
				return nil
			}

			rows := make([][]string, 0, len(roots))
			for _, root := range view.Roots {
				rows = append(rows, []string{root.Path, root.Rank})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Search Root", "Rank"},
				rows,
				[]columnAlignment{alignLeft, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit mounts as JSON")
	return cmd
}
