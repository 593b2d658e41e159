package main

import (
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"subsync/internal/config"
	"subsync/internal/history"
	"subsync/internal/hooks"
	"subsync/internal/logging"
	"subsync/internal/runner"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{
		configFlag: configFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		logger, err := logging.NewFromSettings(cfg.Logging.Format, cfg.Logging.Level, cfg.Paths.LogDir)
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger = logger
	})
	return c.logger, c.loggerErr
}

// newRunner wires the pipeline runner with its hook runner and, when
// enabled, the history ledger. The returned cleanup closes the ledger.
func (c *commandContext) newRunner() (*runner.Runner, func(), error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, nil, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, nil, err
	}

	var opts []runner.Option
	cleanup := func() {}
	if cfg.History.Enabled {
		ledger, err := history.Open(cfg)
		if err != nil {
			return nil, nil, err
		}
		opts = append(opts, runner.WithLedger(ledger))
		cleanup = func() { _ = ledger.Close() }
	}

	hookRunner := hooks.New(cfg, logger, nil)
	return runner.New(cfg, logger, hookRunner, opts...), cleanup, nil
}

func (c *commandContext) openLedger() (*history.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	if !cfg.History.Enabled {
		return nil, errors.New("history ledger is disabled in configuration")
	}
	return history.Open(cfg)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
