package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"langcache/internal/config"
	"langcache/internal/langbatch"
	"langcache/internal/languageapi"
	"langcache/internal/logging"
	"langcache/internal/manifest"
	"langcache/internal/mirror"
	"langcache/internal/runlock"
)

type commandContext struct {
	configFlag   *string
	logLevelFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error

	registry *languageapi.Registry
}

func newCommandContext(configFlag, logLevelFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
		registry:     languageapi.NewRegistry(),
	}
}

func (c *commandContext) configPath() string {
	if c.configFlag == nil {
		return ""
	}
	return strings.TrimSpace(*c.configFlag)
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, _, _, err := config.Load(c.configPath())
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
		var level string
		if c.logLevelFlag != nil {
			level = *c.logLevelFlag
		}
		c.logger, c.loggerErr = logging.NewFromConfig(cfg, level)
	})
	return c.logger, c.loggerErr
}

type recorder interface {
	langbatch.Recorder
	io.Closer
}

func openRecorder(ctx context.Context, cfg *config.Config) (recorder, error) {
	if !cfg.Manifest.Enabled {
		return manifest.Nop{}, nil
	}
	return manifest.Open(ctx, cfg.ManifestPath())
}

// withGenerator wires a Generator for one locked run and hands it to fn.
func (c *commandContext) withGenerator(cmd *cobra.Command, fn func(context.Context, *langbatch.Generator) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	if err := cfg.ValidateAPI(); err != nil {
		return err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return err
	}

	lock, err := runlock.AcquireDir(cfg.CacheDir())
	if err != nil {
		return err
	}
	defer func() {
		if err := lock.Release(); err != nil {
			logger.Warn("failed to release run lock", logging.Error(err))
		}
	}()

	caller, err := c.registry.New(cfg.API)
	if err != nil {
		return err
	}

	rec, err := openRecorder(ctx, cfg)
	if err != nil {
		return err
	}
	defer rec.Close()

	m, err := mirror.New(ctx, cfg.Mirror)
	if err != nil {
		return fmt.Errorf("mirror: %w", err)
	}
	defer m.Close()

	gen, err := langbatch.New(langbatch.Options{
		Caller:   caller,
		Settings: cfg,
		Recorder: rec,
		Mirror:   m,
		Progress: cmd.OutOrStdout(),
		Logger:   logger,
	})
	if err != nil {
		return err
	}
	return fn(ctx, gen)
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
