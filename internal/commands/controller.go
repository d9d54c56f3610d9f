// Package commands contains the CLI commands for the application.
package commands

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/barukai/CppSharp/internal/ast"
	"github.com/barukai/CppSharp/internal/config"
	"github.com/barukai/CppSharp/internal/driver"
)

// Flags carries the global CLI flags into command handlers.
type Flags struct {
	// ConfigPath points at an explicit bindgen.json; empty means search
	// upward from the working directory.
	ConfigPath string
}

// Controller dispatches CLI commands.
type Controller struct {
	Flags  *Flags
	Logger zerolog.Logger
}

// loadConfig resolves the project configuration and its root directory.
func (c *Controller) loadConfig() (*config.Config, string, error) {
	if c.Flags != nil && c.Flags.ConfigPath != "" {
		cfg, err := config.LoadConfigFromPath(c.Flags.ConfigPath)
		if err != nil {
			return nil, "", err
		}
		return cfg, filepath.Dir(c.Flags.ConfigPath), nil
	}
	return config.LoadConfig()
}

// runGeneration executes one full generation pass: config, manifest, driver.
func (c *Controller) runGeneration() error {
	cfg, root, err := c.loadConfig()
	if err != nil {
		return err
	}

	manifestPath := cfg.Manifest
	if !filepath.IsAbs(manifestPath) {
		manifestPath = filepath.Join(root, manifestPath)
	}

	astCtx, modules, err := ast.LoadContext(manifestPath)
	if err != nil {
		return err
	}

	if !filepath.IsAbs(cfg.Output.Dir) {
		cfg.Output.Dir = filepath.Join(root, cfg.Output.Dir)
	}

	d, err := driver.New(cfg, astCtx, modules, c.Logger)
	if err != nil {
		return err
	}

	outputs, err := d.Run()
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	c.Logger.Info().Int("outputs", len(outputs)).Msg("bindings generated")
	return nil
}
