package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/folio"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a note",
	Long:  `Delete a note. Deleting the active note opens the first remaining one; deleting the last note creates a new empty one.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEditor(cmd, func(ctx context.Context, ed *folio.Editor) error {
			next, ok, err := ed.Delete(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to delete note: %w", err)
			}
			if !ok {
				return fmt.Errorf("note %q not found", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Note '%s' deleted. Active note: %s\n", args[0], next)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
