package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/folio"
)

var newTitle string

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a note and make it active",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEditor(cmd, func(ctx context.Context, ed *folio.Editor) error {
			doc, err := ed.NewDocument(ctx)
			if err != nil {
				return fmt.Errorf("failed to create note: %w", err)
			}
			if newTitle != "" {
				if _, err := ed.Rename(ctx, doc.ID, newTitle); err != nil {
					return fmt.Errorf("failed to set title: %w", err)
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), doc.ID)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
	newCmd.Flags().StringVar(&newTitle, "title", "", "Title of the note")
}
