// Package generators contains the orchestration core of the binding
// generator: the backend contract, the generation lifecycle, and the two
// output-aggregation strategies.
package generators

import (
	"github.com/barukai/CppSharp/internal/ast"
)

// GenContext carries the per-call generation state threaded into every
// backend invocation. It replaces mutable process-wide markers: the output
// namespace and include directory of the unit (or module) being generated
// travel with the call instead of living in shared state.
type GenContext struct {
	// OutputNamespace is the namespace of the module whose unit(s) are
	// being generated, set before the backend is invoked.
	OutputNamespace string

	// IncludeDir is the containing directory of the unit's file path.
	// Informational, per-unit mode only; backends needing relative-include
	// resolution read it.
	IncludeDir string
}

// Backend is the contract a concrete language backend implements. The
// orchestrator owns when each hook runs; backends own what text comes out.
type Backend interface {
	// Kind identifies the backend variant.
	Kind() Kind

	// FileExtension returns the extension (including the dot) used for
	// synthesized output file names.
	FileExtension() string

	// SetupPasses registers the AST transformation passes appropriate to
	// the target language. Returning false aborts generation; the driver
	// checks the result, not this package.
	SetupPasses(ctx *ast.Context) bool

	// Process runs once before any unit is generated, for global
	// preparation. Backends with nothing to prepare keep it a no-op.
	Process()

	// Generate returns the templates for the given unit collection: one
	// unit in per-unit mode, a module's whole eligible set in single-file
	// mode. Must be deterministic for identical input.
	Generate(gctx *GenContext, units []*ast.TranslationUnit) ([]*Template, error)

	// PrintType spells an AST type in the target language. Registered as
	// the AST layer's fallback formatter while a generator is live.
	PrintType(t ast.Type) string
}

// Options selects how a generation pass aggregates units into outputs.
type Options struct {
	// Modules lists the configured modules in driver order; consumed by
	// the single-file strategy.
	Modules []*ast.Module

	// Strategy selects the aggregation variant.
	Strategy Strategy
}

// Generator drives one full generation pass over an AST context using one
// backend. A Generator is bound to its context and backend for life; on
// construction it subscribes the backend's type formatter into the AST
// layer's global extension point, and Close releases it. Only one Generator
// may be live at a time.
type Generator struct {
	ctx     *ast.Context
	opts    Options
	backend Backend
	closed  bool

	// OnUnitGenerated, when set, is invoked synchronously once per Output,
	// in production order, letting the caller stream outputs without
	// waiting for the whole batch.
	OnUnitGenerated func(*Output)
}

// New binds a generator to an AST context and backend and subscribes the
// backend's type formatter.
func New(ctx *ast.Context, opts Options, backend Backend) *Generator {
	ast.SetTypePrinter(backend.PrintType)
	return &Generator{ctx: ctx, opts: opts, backend: backend}
}

// Close releases the type formatter subscription. Safe to call more than
// once; calling Generate after Close is undefined.
func (g *Generator) Close() {
	if g.closed {
		return
	}
	g.closed = true
	ast.ResetTypePrinter()
}

// Generate runs one generation pass: it selects the eligible translation
// units, dispatches to the configured aggregation strategy, and returns the
// outputs in production order. On error the outputs produced before the
// failure are still returned, and OnUnitGenerated has already fired for each
// of them.
func (g *Generator) Generate() ([]*Output, error) {
	var units []*ast.TranslationUnit
	for _, u := range g.ctx.TranslationUnits {
		if u.IsGenerated() && u.HasDeclarations() && !u.IsSystemHeader && u.IsValid {
			units = append(units, u)
		}
	}

	return g.opts.Strategy.aggregator().aggregate(g, units)
}

// emit fires the unit-generated callback for one completed output.
func (g *Generator) emit(out *Output) {
	if g.OnUnitGenerated != nil {
		g.OnUnitGenerated(out)
	}
}

// GeneratedIdentifier returns the conventionally-reserved synthetic spelling
// of a base name. The "__" prefix keeps compiler-generated names from
// colliding with user-visible identifiers.
func GeneratedIdentifier(name string) string {
	return "__" + name
}
