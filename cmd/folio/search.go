package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/aretw0/folio"
)

var searchJSON bool

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Find notes by title",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEditor(cmd, func(ctx context.Context, ed *folio.Editor) error {
			return printDocuments(cmd.OutOrStdout(), ed.Search(args[0]), ed.ActiveID(), searchJSON)
		})
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "Output in JSON format")
}
