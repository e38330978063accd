package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/aretw0/folio"
	"github.com/aretw0/folio/pkg/core"
)

var (
	listJSON  bool
	listMatch string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all notes in the workspace",
	Long:  `List notes in creation order. The active note is marked with '*'.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEditor(cmd, func(ctx context.Context, ed *folio.Editor) error {
			docs := ed.Documents()
			if listMatch != "" {
				var err error
				if docs, err = ed.Match(listMatch); err != nil {
					return err
				}
			}
			return printDocuments(cmd.OutOrStdout(), docs, ed.ActiveID(), listJSON)
		})
	},
}

// printDocuments writes one "id - title" line per document, or a JSON array.
func printDocuments(w io.Writer, docs []core.Document, activeID string, asJSON bool) error {
	if asJSON {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(docs); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		return nil
	}

	for _, doc := range docs {
		marker := " "
		if doc.ID == activeID {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %s - %s\n", marker, doc.ID, core.DisplayTitle(doc))
	}
	return nil
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().StringVar(&listMatch, "match", "", "Only list titles matching a glob pattern (e.g. 'work/**')")
}
