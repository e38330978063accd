package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/aretw0/folio"
)

var writeContent string

var writeCmd = &cobra.Command{
	Use:   "write [id]",
	Short: "Replace the content of a note",
	Long: `Replace the HTML content of a note, read from --content or stdin.
The title follows the first heading of the new content.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]
		content := writeContent
		if !cmd.Flags().Changed("content") {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("failed to read stdin: %w", err)
			}
			content = string(data)
		}

		return withEditor(cmd, func(ctx context.Context, ed *folio.Editor) error {
			if _, ok := ed.Find(id); !ok {
				return fmt.Errorf("note %q not found", id)
			}
			ed.Edit(id, content)
			if err := ed.Flush(ctx); err != nil {
				return fmt.Errorf("failed to save note: %w", err)
			}
			doc, _ := ed.Find(id)
			fmt.Fprintf(cmd.OutOrStdout(), "Note '%s' saved as %q.\n", id, doc.Title)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(writeCmd)
	writeCmd.Flags().StringVar(&writeContent, "content", "", "HTML content (default: read stdin)")
}
