package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/folio"
	"github.com/aretw0/folio/internal/platform"
)

var (
	verbose  bool
	dirFlag  string
	adapter  string
	codec    string
	readOnly bool

	cfg *platform.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "A note store for rich-text documents",
	Long: `Folio keeps a list of HTML notes in a local workspace.
Edits are autosaved, titles follow the first heading, and any note can be
exported as a standalone HTML page.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := platform.LoadConfig()
		if err != nil {
			return err
		}
		cfg = loaded

		level := cfg.LogLevel
		if verbose {
			level = "debug"
		}
		slog.SetDefault(platform.NewLogger(cmd.ErrOrStderr(), level, cfg.LogFormat))
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&dirFlag, "dir", "d", "", "Workspace directory (default: nearest workspace or FOLIO_DIR)")
	rootCmd.PersistentFlags().StringVar(&adapter, "adapter", "", "Storage adapter: fs or memory (default FOLIO_ADAPTER or fs)")
	rootCmd.PersistentFlags().StringVar(&codec, "codec", "", "Collection encoding: json or yaml (default FOLIO_CODEC or json)")
	rootCmd.PersistentFlags().BoolVar(&readOnly, "read-only", false, "Open the workspace without writing to it")
}

// workspace resolves the directory to operate on: --dir, then FOLIO_DIR,
// then the nearest enclosing workspace, then the working directory.
func workspace() (string, error) {
	if dirFlag != "" {
		return dirFlag, nil
	}
	if cfg != nil && cfg.Dir != "" && cfg.Dir != "." {
		return cfg.Dir, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	if root, err := folio.FindRoot(wd); err == nil {
		return root, nil
	}
	return wd, nil
}

func options() []folio.Option {
	var opts []folio.Option
	if cfg != nil {
		opts = append(opts, cfg.Options()...)
	}
	if adapter != "" {
		opts = append(opts, folio.WithAdapter(adapter))
	}
	if codec != "" {
		opts = append(opts, folio.WithCodec(codec))
	}
	return append(opts, folio.WithLogger(slog.Default()), folio.WithReadOnly(readOnly))
}

// openEditor opens an existing workspace.
func openEditor(ctx context.Context) (*folio.Editor, error) {
	dir, err := workspace()
	if err != nil {
		return nil, err
	}
	ed, err := folio.Open(ctx, dir, append(options(), folio.WithMustExist(true))...)
	if err != nil {
		return nil, fmt.Errorf("failed to open workspace %s (run 'folio init'?): %w", dir, err)
	}
	return ed, nil
}

// withEditor runs fn against an open workspace and closes it afterwards,
// flushing pending edits.
func withEditor(cmd *cobra.Command, fn func(ctx context.Context, ed *folio.Editor) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ed, err := openEditor(ctx)
	if err != nil {
		return err
	}
	return errors.Join(fn(ctx, ed), ed.Close(ctx))
}
