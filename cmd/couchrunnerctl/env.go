package main

import (
	"fmt"
	"strconv"

	"couchrunner/internal/config"
	"couchrunner/internal/core/model"
	"couchrunner/internal/logging"
	"couchrunner/internal/storage"
	"couchrunner/internal/tracker"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	storePath  string
	ephemeral  bool
	logLevel   string
}

func (opts *rootOptions) bind(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "path to config file")
	flags.StringVar(&opts.storePath, "store", "", "path to the store file (overrides config)")
	flags.BoolVar(&opts.ephemeral, "ephemeral", false, "keep all state in memory")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level (overrides config)")
}

// env is what every subcommand needs: config, logger and the tracker.
type env struct {
	cfg      *config.Config
	logger   zerolog.Logger
	runStore *storage.RunStore
	tracker  *tracker.Tracker
}

func (opts *rootOptions) open(cmd *cobra.Command) (*env, error) {
	configPath := opts.configPath
	if configPath == "" {
		configPath = config.DefaultPath()
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if opts.storePath != "" {
		cfg.Store.Path = opts.storePath
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}

	logger, err := logging.New(cfg.Log.Level, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}

	var store storage.Store
	if opts.ephemeral {
		store = storage.NewMemoryStore()
		logger.Debug().Msg("using in-memory store")
	} else {
		path, err := cfg.StorePath()
		if err != nil {
			return nil, err
		}
		yamlStore, err := storage.OpenYAMLStore(path)
		if err != nil {
			return nil, err
		}
		logger.Debug().Str("path", yamlStore.Path()).Msg("using yaml store")
		store = yamlStore
	}

	runStore := storage.NewRunStore(store, logger)
	return &env{
		cfg:      cfg,
		logger:   logger,
		runStore: runStore,
		tracker:  tracker.New(runStore, logger),
	}, nil
}

func (e *env) close() {
	e.tracker.Close()
}

// parseRunArg accepts a 1-based run number as shown by list, or "next".
func parseRunArg(arg string, catalog model.Catalog) (int, error) {
	if arg == "next" {
		index := catalog.NextIncomplete()
		if index < 0 {
			return 0, fmt.Errorf("every run is already completed")
		}
		return index, nil
	}
	number, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("run %q: expected a number or \"next\"", arg)
	}
	if number < 1 || number > len(catalog) {
		return 0, fmt.Errorf("run %d: %w (1-%d)", number, model.ErrRunIndex, len(catalog))
	}
	return number - 1, nil
}
