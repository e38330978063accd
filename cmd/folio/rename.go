package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/folio"
)

var renameCmd = &cobra.Command{
	Use:   "rename [id] [title]",
	Short: "Set the title of a note",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEditor(cmd, func(ctx context.Context, ed *folio.Editor) error {
			ok, err := ed.Rename(ctx, args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to rename note: %w", err)
			}
			if !ok {
				return fmt.Errorf("note %q not found or title blank", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), ed.Status())
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(renameCmd)
}
