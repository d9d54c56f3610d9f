// Package cli implements the header-style C++/CLI backend. Each translation
// unit produces a header/source template pair wrapping the native
// declarations in ref classes.
package cli

import (
	"fmt"
	"path"
	"strings"

	"github.com/barukai/CppSharp/internal/ast"
	"github.com/barukai/CppSharp/internal/generators"
	"github.com/barukai/CppSharp/internal/generators/writer"
)

// Generator is the C++/CLI backend.
type Generator struct{}

// New creates a C++/CLI backend.
func New() *Generator {
	return &Generator{}
}

// Kind identifies the backend variant.
func (g *Generator) Kind() generators.Kind {
	return generators.KindCLI
}

// FileExtension returns the extension of the primary (header) output.
func (g *Generator) FileExtension() string {
	return ".h"
}

// SetupPasses registers nothing; the CLI backend renders declarations as the
// parser produced them.
func (g *Generator) SetupPasses(ctx *ast.Context) bool {
	return true
}

// Process is a no-op.
func (g *Generator) Process() {}

// Generate renders a header and a source template for the given unit. The
// CLI backend does not support single-file aggregation.
func (g *Generator) Generate(gctx *generators.GenContext, units []*ast.TranslationUnit) ([]*generators.Template, error) {
	if len(units) != 1 {
		return nil, fmt.Errorf("cli backend generates one unit at a time, got %d", len(units))
	}
	unit := units[0]

	base := unit.FileNameWithoutExtension()
	header := generators.NewTemplate(base+".h", "    ", func(w *writer.Writer) error {
		return g.renderHeader(w, gctx, unit)
	})
	source := generators.NewTemplate(base+".cpp", "    ", func(w *writer.Writer) error {
		return g.renderSource(w, gctx, unit)
	})
	return []*generators.Template{header, source}, nil
}

func (g *Generator) renderHeader(w *writer.Writer, gctx *generators.GenContext, unit *ast.TranslationUnit) error {
	w.Line("#pragma once")
	w.BlankLine()
	w.Linef("#include %q", nativeInclude(gctx, unit))
	w.BlankLine()

	ns := namespaceName(gctx, unit)
	w.Linef("namespace %s {", ns)
	w.BlankLine()

	for _, decl := range unit.Declarations {
		switch decl.Kind {
		case ast.DeclEnum:
			g.renderEnum(w, decl)
		case ast.DeclClass:
			g.renderClassDecl(w, decl)
		case ast.DeclFunction:
			w.Linef("%s %s(%s);", g.PrintType(decl.ReturnType), decl.Name, g.paramList(decl.Params))
		}
		w.BlankLine()
	}

	w.Linef("} // namespace %s", ns)
	return nil
}

func (g *Generator) renderSource(w *writer.Writer, gctx *generators.GenContext, unit *ast.TranslationUnit) error {
	w.Linef("#include %q", unit.FileNameWithoutExtension()+".h")
	w.BlankLine()
	w.Linef("using namespace %s;", namespaceName(gctx, unit))
	w.BlankLine()

	for _, decl := range unit.Declarations {
		if decl.Kind != ast.DeclClass {
			continue
		}
		for _, method := range decl.Methods {
			w.Linef("%s %s::%s(%s)", g.PrintType(method.ReturnType), decl.Name, pascalCase(method.Name), g.paramList(method.Params))
			w.Block("{", "}", func() {
				w.Linef("return %s(%s);", fmt.Sprintf("::%s_%s", decl.Name, method.Name), argList(method.Params))
			})
			w.BlankLine()
		}
	}
	return nil
}

func (g *Generator) renderEnum(w *writer.Writer, decl *ast.Declaration) {
	w.DocComment("//", decl.Doc)
	w.Linef("public enum class %s", decl.Name)
	w.Block("{", "};", func() {
		for _, item := range decl.Items {
			w.Linef("%s = %d,", item.Name, item.Value)
		}
	})
}

func (g *Generator) renderClassDecl(w *writer.Writer, decl *ast.Declaration) {
	w.DocComment("//", decl.Doc)
	w.Linef("public ref class %s", decl.Name)
	w.Block("{", "};", func() {
		w.Line("public:")
		w.Indent()
		for _, field := range decl.Fields {
			w.Linef("%s %s;", g.PrintType(field.Type), field.Name)
		}
		for _, method := range decl.Methods {
			w.Linef("%s %s(%s);", g.PrintType(method.ReturnType), pascalCase(method.Name), g.paramList(method.Params))
		}
		w.Dedent()
	})
}

func (g *Generator) paramList(params []ast.Param) string {
	parts := make([]string, 0, len(params))
	for _, p := range params {
		parts = append(parts, fmt.Sprintf("%s %s", g.PrintType(p.Type), p.Name))
	}
	return strings.Join(parts, ", ")
}

func argList(params []ast.Param) string {
	parts := make([]string, 0, len(params))
	for _, p := range params {
		parts = append(parts, p.Name)
	}
	return strings.Join(parts, ", ")
}

// nativeInclude resolves the original header relative to the include
// directory the orchestrator derived from the unit path.
func nativeInclude(gctx *generators.GenContext, unit *ast.TranslationUnit) string {
	if gctx.IncludeDir != "" && gctx.IncludeDir != "." {
		return path.Join(path.Base(gctx.IncludeDir), unit.FileName())
	}
	return unit.FileName()
}

func namespaceName(gctx *generators.GenContext, unit *ast.TranslationUnit) string {
	if gctx.OutputNamespace != "" {
		return gctx.OutputNamespace
	}
	return pascalCase(unit.Module.LibraryName)
}

// PrintType spells an AST type in C++/CLI.
func (g *Generator) PrintType(t ast.Type) string {
	switch tt := t.(type) {
	case ast.BuiltinType:
		return tt.Name
	case ast.PointerType:
		if b, ok := tt.Pointee.(ast.BuiltinType); ok && b.Name == "char" {
			return "System::String^"
		}
		return g.PrintType(tt.Pointee) + "*"
	case ast.TagType:
		return tt.Name
	default:
		return "void"
	}
}

func pascalCase(s string) string {
	if s == "" {
		return s
	}
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-' || r == '.'
	})
	var sb strings.Builder
	for _, part := range parts {
		sb.WriteString(strings.ToUpper(part[:1]))
		sb.WriteString(part[1:])
	}
	return sb.String()
}
