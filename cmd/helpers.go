package cmd

import (
	"fmt"

	"github.com/ziadkadry99/menubot/internal/config"
	"github.com/ziadkadry99/menubot/internal/logging"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `menubot init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newLogger builds the process logger. --verbose forces development output.
func newLogger(cfg *config.Config) (*logging.Logger, error) {
	opts := logging.Options{Mode: cfg.Log.Mode, File: cfg.Log.File}
	if verbose {
		opts.Mode = "development"
	}
	log, err := logging.New(opts)
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}
	return log, nil
}
