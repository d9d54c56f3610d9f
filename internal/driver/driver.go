// Package driver wires configuration, the AST context, and a backend into
// one generation run, and persists the produced outputs.
package driver

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/barukai/CppSharp/internal/ast"
	"github.com/barukai/CppSharp/internal/config"
	"github.com/barukai/CppSharp/internal/generators"
)

// Driver runs one full generation pass per Run call: backend setup, AST
// passes, generation, and streaming output persistence.
type Driver struct {
	cfg     *config.Config
	ctx     *ast.Context
	modules []*ast.Module
	backend generators.Backend
	kind    generators.Kind
	logger  zerolog.Logger
}

// New builds a driver for the configured backend kind.
func New(cfg *config.Config, ctx *ast.Context, modules []*ast.Module, logger zerolog.Logger) (*Driver, error) {
	kind, err := generators.ParseKind(cfg.Generator)
	if err != nil {
		return nil, err
	}

	backend, err := NewBackend(kind)
	if err != nil {
		return nil, err
	}

	return &Driver{
		cfg:     cfg,
		ctx:     ctx,
		modules: modules,
		backend: backend,
		kind:    kind,
		logger:  logger,
	}, nil
}

// Strategy returns the aggregation strategy the configuration selects:
// single-file aggregation only when requested and the backend is a managed
// one.
func (d *Driver) Strategy() generators.Strategy {
	if d.cfg.Output.SingleFile && d.kind.IsManaged() {
		return generators.StrategySingleFile
	}
	return generators.StrategyPerUnit
}

// Run executes one generation pass and writes every produced template under
// the configured output directory. Outputs produced before a failure are
// still written.
func (d *Driver) Run() ([]*generators.Output, error) {
	runID := uuid.NewString()
	log := d.logger.With().
		Str("run_id", runID).
		Str("generator", d.kind.String()).
		Logger()

	if ok := d.backend.SetupPasses(d.ctx); !ok {
		return nil, fmt.Errorf("backend %s failed to set up passes", d.kind)
	}
	if err := d.ctx.RunPasses(); err != nil {
		return nil, fmt.Errorf("failed to run AST passes: %w", err)
	}

	d.backend.Process()

	strategy := d.Strategy()
	log.Debug().
		Stringer("strategy", strategy).
		Int("units", len(d.ctx.TranslationUnits)).
		Int("modules", len(d.modules)).
		Msg("starting generation")

	gen := generators.New(d.ctx, generators.Options{
		Modules:  d.modules,
		Strategy: strategy,
	}, d.backend)
	defer gen.Close()

	var writeErr error
	gen.OnUnitGenerated = func(out *generators.Output) {
		if err := d.writeOutput(log, out); err != nil && writeErr == nil {
			writeErr = err
		}
	}

	outputs, err := gen.Generate()
	if err != nil {
		return outputs, err
	}
	if writeErr != nil {
		return outputs, writeErr
	}

	log.Info().
		Int("outputs", len(outputs)).
		Str("dir", d.cfg.Output.Dir).
		Msg("generation complete")

	return outputs, nil
}

// writeOutput persists every template of one output.
func (d *Driver) writeOutput(log zerolog.Logger, out *generators.Output) error {
	if err := os.MkdirAll(d.cfg.Output.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	var errs []error
	for _, tmpl := range out.Templates {
		content, err := tmpl.Content()
		if err != nil {
			errs = append(errs, err)
			continue
		}

		path := filepath.Join(d.cfg.Output.Dir, tmpl.FileName)
		if err := os.WriteFile(path, content, 0644); err != nil {
			errs = append(errs, fmt.Errorf("failed to write %s: %w", path, err))
			continue
		}

		log.Debug().
			Str("unit", out.Unit.FilePath).
			Str("file", path).
			Int("size", len(content)).
			Msg("wrote generated file")
	}
	return errors.Join(errs...)
}
