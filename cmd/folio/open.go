package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/folio"
)

var openCmd = &cobra.Command{
	Use:   "open [id]",
	Short: "Make a note the active one and print it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEditor(cmd, func(ctx context.Context, ed *folio.Editor) error {
			doc, ok, err := ed.Open(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to open note: %w", err)
			}
			if !ok {
				return fmt.Errorf("note %q not found", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), doc.Content)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(openCmd)
}
