package generators

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/barukai/CppSharp/internal/ast"
)

// ErrNoTemplates reports a backend that returned an empty template list, a
// violation of the backend output contract.
var ErrNoTemplates = errors.New("backend produced no templates")

// Strategy selects one of the closed set of output-aggregation variants.
type Strategy int

const (
	// StrategyPerUnit emits one output per eligible translation unit.
	StrategyPerUnit Strategy = iota

	// StrategySingleFile emits one aggregated output per configured module.
	StrategySingleFile
)

// String returns a readable name for logging.
func (s Strategy) String() string {
	if s == StrategySingleFile {
		return "single-file"
	}
	return "per-unit"
}

func (s Strategy) aggregator() aggregator {
	if s == StrategySingleFile {
		return singleFileStrategy{}
	}
	return perUnitStrategy{}
}

// aggregator turns the eligible unit set into outputs. Each variant owns one
// well-defined aggregation policy.
type aggregator interface {
	aggregate(g *Generator, units []*ast.TranslationUnit) ([]*Output, error)
}

// perUnitStrategy generates each eligible unit on its own, in input order.
//
// A backend returning zero templates for a unit stops the entire remaining
// batch: no output is produced for that unit or any unit after it. The
// truncation is deliberate and reported as an error rather than swallowed;
// the outputs produced before the failing unit are still returned.
type perUnitStrategy struct{}

func (perUnitStrategy) aggregate(g *Generator, units []*ast.TranslationUnit) ([]*Output, error) {
	var outputs []*Output
	for _, unit := range units {
		gctx := &GenContext{
			OutputNamespace: unit.Module.OutputNamespace,
			IncludeDir:      filepath.Dir(unit.FilePath),
		}

		templates, err := g.backend.Generate(gctx, []*ast.TranslationUnit{unit})
		if err != nil {
			return outputs, fmt.Errorf("failed to generate %s: %w", unit.FilePath, err)
		}
		if len(templates) == 0 {
			return outputs, fmt.Errorf("%s: %w", unit.FilePath, ErrNoTemplates)
		}

		for _, t := range templates {
			if err := t.Finalize(); err != nil {
				return outputs, err
			}
		}

		out := &Output{Unit: unit, Templates: templates}
		outputs = append(outputs, out)
		g.emit(out)
	}
	return outputs, nil
}

// singleFileStrategy collapses each configured module's eligible units into
// one aggregated output, in module order. The backend must return at least
// one template per module; the first template carries the whole file.
type singleFileStrategy struct{}

func (singleFileStrategy) aggregate(g *Generator, units []*ast.TranslationUnit) ([]*Output, error) {
	eligible := make(map[*ast.TranslationUnit]bool, len(units))
	for _, u := range units {
		eligible[u] = true
	}

	var outputs []*Output
	for _, module := range g.opts.Modules {
		var moduleUnits []*ast.TranslationUnit
		for _, u := range module.Units {
			if eligible[u] {
				moduleUnits = append(moduleUnits, u)
			}
		}
		if len(moduleUnits) == 0 {
			continue
		}

		name := module.OutputNamespace
		if name == "" {
			name = module.LibraryName
		}
		fileName := name + g.backend.FileExtension()

		gctx := &GenContext{OutputNamespace: module.OutputNamespace}

		templates, err := g.backend.Generate(gctx, moduleUnits)
		if err != nil {
			return outputs, fmt.Errorf("failed to generate module %s: %w", module.LibraryName, err)
		}
		if len(templates) == 0 {
			return outputs, fmt.Errorf("module %s: %w", module.LibraryName, ErrNoTemplates)
		}

		templates[0].FileName = fileName
		if err := templates[0].Finalize(); err != nil {
			return outputs, err
		}

		// Synthetic carrier for downstream reporting; it does not
		// correspond to any parsed file.
		unit := &ast.TranslationUnit{
			FilePath:       fileName,
			GenerationKind: ast.GenerationGenerate,
			IsValid:        true,
			Module:         module,
		}

		out := &Output{Unit: unit, Templates: templates}
		outputs = append(outputs, out)
		g.emit(out)
	}
	return outputs, nil
}
