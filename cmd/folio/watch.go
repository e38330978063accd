package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aretw0/folio/pkg/adapters/lifecycle"
	"github.com/aretw0/folio/pkg/core"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print changes made to the workspace by other processes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		ed, err := openEditor(ctx)
		if err != nil {
			return err
		}
		defer ed.Close(context.Background())

		if err := ed.Watch(ctx); err != nil {
			return err
		}

		src := lifecycle.NewSource(ed.Events(), core.EventStorage, core.EventActivate)
		if err := src.Start(ctx); err != nil {
			return err
		}

		fmt.Fprintln(cmd.ErrOrStderr(), "Watching for changes... (Ctrl+C to stop)")
		for e := range src.Events() {
			fmt.Fprintln(cmd.OutOrStdout(), e.String())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
