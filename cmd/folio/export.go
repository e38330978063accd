package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/folio"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export [id]",
	Short: "Export a note as a standalone HTML page",
	Long:  `Export a note as a standalone HTML page. The file name is derived from the title unless -o is given; "-o -" writes to stdout.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEditor(cmd, func(ctx context.Context, ed *folio.Editor) error {
			file, ok, err := ed.Export(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to export note: %w", err)
			}
			if !ok {
				return fmt.Errorf("note %q not found", args[0])
			}

			if exportOutput == "-" {
				_, err := cmd.OutOrStdout().Write(file.Data)
				return err
			}
			target := file.Name
			if exportOutput != "" {
				target = exportOutput
			}
			if err := os.WriteFile(target, file.Data, 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", target, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Exported to", target)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default: derived from the title)")
}
