package generators

import "github.com/barukai/CppSharp/internal/ast"

// Output pairs one translation unit with the ordered templates generated for
// it. Outputs are complete at construction and never mutated afterwards.
//
// In single-file mode the unit is synthetic: it carries only the synthesized
// output path and the module reference, purely for downstream reporting.
type Output struct {
	Unit      *ast.TranslationUnit
	Templates []*Template
}
