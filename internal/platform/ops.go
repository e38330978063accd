package platform

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/aretw0/folio/pkg/adapters/fs"
	"github.com/aretw0/folio/pkg/adapters/memory"
	"github.com/aretw0/folio/pkg/core"
)

// OpenStore returns the key-value backend for the workspace at uri.
// The uri is adapter specific: a workspace directory for "fs", ignored by
// "memory".
func OpenStore(ctx context.Context, uri string, opts ...Option) (core.KeyValue, error) {
	o := newOptions(opts...)
	if o.kv != nil {
		return o.kv, nil
	}

	switch o.adapter {
	case "fs":
		return openFS(ctx, uri, o)
	case "memory":
		var memOpts []memory.Option
		if quota, ok := o.config["quota"].(int); ok && quota > 0 {
			memOpts = append(memOpts, memory.WithQuota(quota))
		}
		return memory.New(memOpts...), nil
	default:
		return nil, fmt.Errorf("unknown adapter: %s", o.adapter)
	}
}

// Init creates the store directory of a workspace and returns its path.
func Init(ctx context.Context, uri string, opts ...Option) (string, error) {
	o := newOptions(opts...)
	o.config["must_exist"] = false
	o.config["read_only"] = false

	store, err := openFS(ctx, uri, o)
	if err != nil {
		return "", err
	}
	return store.Path, nil
}

func openFS(ctx context.Context, uri string, o *options) (*fs.Store, error) {
	logger := o.logger
	if logger == nil {
		logger = slog.Default()
	}

	storeDir, _ := o.config["store_dir"].(string)
	if storeDir == "" {
		storeDir = fs.DefaultDir
	}
	tempDir, _ := o.config["temp_dir"].(bool)
	mustExist, _ := o.config["must_exist"].(bool)
	readOnly, _ := o.config["read_only"].(bool)
	errorHandler, _ := o.config["watcher_error_handler"].(func(error))

	devSafety := true
	if v, ok := o.config["dev_safety"].(bool); ok {
		devSafety = v
	}

	// Read-only runs can not damage anything, so they skip the sandbox.
	bypass := readOnly || !devSafety
	sandbox := tempDir || (IsDevRun() && !bypass)
	workspace := ResolveWorkspace(uri, sandbox)

	if IsDevRun() {
		switch {
		case readOnly:
			logger.Debug("running in READ-ONLY mode (bypassing dev sandbox)", "path", workspace)
		case bypass:
			logger.Warn("running in UNSAFE mode (bypassing dev sandbox)", "path", workspace)
		default:
			logger.Debug("running in SAFE mode (dev sandbox enabled)", "original_path", uri, "path", workspace)
		}
	}

	store := fs.NewStore(fs.Config{
		Path:         filepath.Join(workspace, storeDir),
		MustExist:    mustExist,
		ReadOnly:     readOnly,
		Logger:       logger,
		ErrorHandler: errorHandler,
		Clock:        o.clock,
	})
	if err := store.Initialize(ctx); err != nil {
		return nil, err
	}
	return store, nil
}
