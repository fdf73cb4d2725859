package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"drivefind/internal/resolver"
	"drivefind/internal/services"
)

func newResolveCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "resolve [FILE_ID]",
		Short: "Resolve a Drive file ID to its local path",
		Long: `Resolve looks up a Google Drive file identifier in the DriveFS metadata
database and prints the matching local path. When the database misses, the
mounted Drive folders are scanned for a file carrying the identifier in its
extended attributes.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fileID, err := fileIDFromInput(cmd, args)
			if err != nil {
				return err
			}

			result, err := runResolve(ctx, cmd, fileID)
			if err != nil {
				return err
			}

			if jsonOutput {
				return writeJSON(cmd, result)
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.Path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the result as JSON")
	return cmd
}

// runResolve executes one resolution with a fresh request ID and converts an
// exhausted search into a not-found error for the exit code.
func runResolve(ctx *commandContext, cmd *cobra.Command, fileID string) (*resolver.Result, error) {
	res, err := ctx.newResolver()
	if err != nil {
		return nil, err
	}

	runCtx := services.WithRequestID(cmd.Context(), uuid.NewString())
	result, err := res.Resolve(runCtx, fileID)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, services.Wrap(services.ErrNotFound, "resolve", "",
			fmt.Sprintf("no local file for ID %s", fileID), nil)
	}
	return result, nil
}
