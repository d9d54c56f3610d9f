// Package csharp implements the managed-binding backend: it renders C#
// P/Invoke bindings for the declarations of each translation unit.
package csharp

import (
	"fmt"
	"strings"

	"github.com/barukai/CppSharp/internal/ast"
	"github.com/barukai/CppSharp/internal/generators"
	"github.com/barukai/CppSharp/internal/generators/writer"
)

// Generator is the C# backend.
type Generator struct{}

// New creates a C# backend.
func New() *Generator {
	return &Generator{}
}

// Kind identifies the backend variant.
func (g *Generator) Kind() generators.Kind {
	return generators.KindCSharp
}

// FileExtension returns the extension used for generated C# files.
func (g *Generator) FileExtension() string {
	return ".cs"
}

// SetupPasses registers the C#-specific AST transformations.
func (g *Generator) SetupPasses(ctx *ast.Context) bool {
	ctx.AddPass(&keywordPass{})
	return true
}

// Process is a no-op; the C# backend needs no global preparation.
func (g *Generator) Process() {}

// Generate renders one template covering the given units: a single unit in
// per-unit mode, a module's whole eligible set in single-file mode.
func (g *Generator) Generate(gctx *generators.GenContext, units []*ast.TranslationUnit) ([]*generators.Template, error) {
	if len(units) == 0 {
		return nil, fmt.Errorf("no translation units given")
	}

	fileName := units[0].FileNameWithoutExtension() + g.FileExtension()

	tmpl := generators.NewTemplate(fileName, "    ", func(w *writer.Writer) error {
		return g.render(w, gctx, units)
	})
	return []*generators.Template{tmpl}, nil
}

func (g *Generator) render(w *writer.Writer, gctx *generators.GenContext, units []*ast.TranslationUnit) error {
	w.Line("// <auto-generated>")
	w.Line("//     Generated bindings. Changes to this file will be lost if the code is regenerated.")
	w.Line("// </auto-generated>")
	w.BlankLine()
	w.Line("using System;")
	w.Line("using System.Runtime.InteropServices;")
	w.BlankLine()

	body := func() {
		for i, unit := range units {
			if i > 0 {
				w.BlankLine()
			}
			w.Comment("//", unit.FileName())
			g.renderUnit(w, unit)
		}
	}

	if gctx.OutputNamespace != "" {
		w.Linef("namespace %s", gctx.OutputNamespace)
		w.Block("{", "}", body)
	} else {
		body()
	}
	return nil
}

func (g *Generator) renderUnit(w *writer.Writer, unit *ast.TranslationUnit) {
	library := unit.Module.LibraryName

	var functions []*ast.Declaration
	for _, decl := range unit.Declarations {
		switch decl.Kind {
		case ast.DeclEnum:
			w.BlankLine()
			g.renderEnum(w, decl)
		case ast.DeclClass:
			w.BlankLine()
			g.renderClass(w, decl, library)
		case ast.DeclFunction:
			functions = append(functions, decl)
		}
	}

	// Free functions land in a static class named after the unit. The
	// suffix keeps the name from colliding with a class declared in the
	// same header.
	if len(functions) > 0 {
		w.BlankLine()
		className := pascalCase(unit.FileNameWithoutExtension()) + "Globals"
		w.DocComment("//", fmt.Sprintf("%s holds the free functions of %s.", className, unit.FileName()))
		w.Linef("public static unsafe partial class %s", className)
		w.Block("{", "}", func() {
			for i, fn := range functions {
				if i > 0 {
					w.BlankLine()
				}
				g.renderImport(w, library, fn.Name, fn.Name, fn.ReturnType, fn.Params)
			}
		})
	}
}

func (g *Generator) renderEnum(w *writer.Writer, decl *ast.Declaration) {
	w.DocComment("///", decl.Doc)
	w.Linef("public enum %s", decl.Name)
	w.Block("{", "}", func() {
		for _, item := range decl.Items {
			w.Linef("%s = %d,", item.Name, item.Value)
		}
	})
}

func (g *Generator) renderClass(w *writer.Writer, decl *ast.Declaration, library string) {
	w.DocComment("///", decl.Doc)
	w.Linef("public unsafe partial class %s", decl.Name)
	w.Block("{", "}", func() {
		for i, field := range decl.Fields {
			if i > 0 {
				w.BlankLine()
			}
			w.DocComment("///", field.Doc)
			w.Linef("public %s %s;", g.PrintType(field.Type), field.Name)
		}
		for i, method := range decl.Methods {
			if i > 0 || len(decl.Fields) > 0 {
				w.BlankLine()
			}
			entryPoint := fmt.Sprintf("%s_%s", decl.Name, method.Name)
			g.renderImport(w, library, pascalCase(method.Name), entryPoint, method.ReturnType, method.Params)
		}
	})
}

// renderImport emits the DllImport attribute and extern declaration for one
// native entry point.
func (g *Generator) renderImport(w *writer.Writer, library, name, entryPoint string, ret ast.Type, params []ast.Param) {
	w.Linef("[DllImport(%q, EntryPoint = %q, CallingConvention = CallingConvention.Cdecl)]", library, entryPoint)
	w.Linef("public static extern %s %s(%s);", g.PrintType(ret), name, g.paramList(params))
}

func (g *Generator) paramList(params []ast.Param) string {
	parts := make([]string, 0, len(params))
	for _, p := range params {
		parts = append(parts, fmt.Sprintf("%s %s", g.PrintType(p.Type), p.Name))
	}
	return strings.Join(parts, ", ")
}

var builtinSpellings = map[string]string{
	"void":               "void",
	"bool":               "bool",
	"char":               "sbyte",
	"unsigned char":      "byte",
	"short":              "short",
	"unsigned short":     "ushort",
	"int":                "int",
	"unsigned int":       "uint",
	"long":               "long",
	"unsigned long":      "ulong",
	"long long":          "long",
	"unsigned long long": "ulong",
	"float":              "float",
	"double":             "double",
}

// PrintType spells an AST type in C#. Registered as the global fallback
// formatter while this backend's generator is live.
func (g *Generator) PrintType(t ast.Type) string {
	switch tt := t.(type) {
	case ast.BuiltinType:
		if spelling, ok := builtinSpellings[tt.Name]; ok {
			return spelling
		}
		return tt.Name
	case ast.PointerType:
		if b, ok := tt.Pointee.(ast.BuiltinType); ok && b.Name == "char" {
			return "string"
		}
		return "IntPtr"
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
