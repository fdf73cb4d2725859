package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"drivefind/internal/reveal"
)

func newRevealCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "reveal [FILE_ID]",
		Short: "Resolve a Drive file ID and show it in the file manager",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fileID, err := fileIDFromInput(cmd, args)
			if err != nil {
				return err
			}

			result, err := runResolve(ctx, cmd, fileID)
			if err != nil {
				return err
			}

			if err := reveal.Reveal(cmd.Context(), result.Path); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.Path)
			return nil
		},
	}
}
