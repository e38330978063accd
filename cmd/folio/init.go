package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/folio"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a folio workspace",
	Long:  `Create the .folio store directory in the workspace. The first note is created on first open.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := workspace()
		if err != nil {
			return err
		}
		path, err := folio.Init(cmd.Context(), dir, options()...)
		if err != nil {
			return fmt.Errorf("failed to initialize workspace: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Initialized empty folio workspace in", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
