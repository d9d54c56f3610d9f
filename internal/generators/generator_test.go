package generators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barukai/CppSharp/internal/ast"
	"github.com/barukai/CppSharp/internal/generators/writer"
)

// mockBackend is a scriptable backend for orchestration tests.
type mockBackend struct {
	kind             Kind
	templatesPerCall int
	emptyFor         map[string]bool
	spelling         string
	calls            [][]string
}

func newMockBackend() *mockBackend {
	return &mockBackend{
		kind:             KindCSharp,
		templatesPerCall: 1,
		emptyFor:         map[string]bool{},
		spelling:         "mock",
	}
}

func (m *mockBackend) Kind() Kind { return m.kind }

func (m *mockBackend) FileExtension() string { return ".cs" }

func (m *mockBackend) SetupPasses(ctx *ast.Context) bool { return true }

func (m *mockBackend) Process() {}

func (m *mockBackend) PrintType(t ast.Type) string { return m.spelling }

func (m *mockBackend) Generate(gctx *GenContext, units []*ast.TranslationUnit) ([]*Template, error) {
	paths := make([]string, 0, len(units))
	for _, u := range units {
		paths = append(paths, u.FilePath)
	}
	m.calls = append(m.calls, paths)

	if m.emptyFor[units[0].FilePath] {
		return nil, nil
	}

	templates := make([]*Template, 0, m.templatesPerCall)
	for i := 0; i < m.templatesPerCall; i++ {
		name := units[0].FileNameWithoutExtension() + m.FileExtension()
		templates = append(templates, NewTemplate(name, "\t", func(w *writer.Writer) error {
			w.Line("// generated")
			return nil
		}))
	}
	return templates, nil
}

// newUnit builds an eligible unit with one declaration inside the module.
func newUnit(path string, module *ast.Module) *ast.TranslationUnit {
	unit := &ast.TranslationUnit{
		FilePath:       path,
		GenerationKind: ast.GenerationGenerate,
		IsValid:        true,
		Declarations: []*ast.Declaration{
			{Kind: ast.DeclClass, Name: "Thing"},
		},
	}
	module.AddUnit(unit)
	return unit
}

func newTestContext(units ...*ast.TranslationUnit) *ast.Context {
	ctx := ast.NewContext()
	for _, u := range units {
		ctx.AddUnit(u)
	}
	return ctx
}

func TestGenerator_PerUnit_OneOutputPerUnit(t *testing.T) {
	// Test: One output per eligible unit, in input order, callback fired
	// once per output in the same order.
	module := &ast.Module{LibraryName: "sample", OutputNamespace: "Sample"}
	a := newUnit("include/a.h", module)
	b := newUnit("include/b.h", module)
	c := newUnit("include/c.h", module)

	backend := newMockBackend()
	gen := New(newTestContext(a, b, c), Options{Strategy: StrategyPerUnit}, backend)
	defer gen.Close()

	var callbackOrder []string
	gen.OnUnitGenerated = func(out *Output) {
		callbackOrder = append(callbackOrder, out.Unit.FilePath)
	}

	outputs, err := gen.Generate()
	require.NoError(t, err)
	require.Len(t, outputs, 3)

	assert.Equal(t, a, outputs[0].Unit)
	assert.Equal(t, b, outputs[1].Unit)
	assert.Equal(t, c, outputs[2].Unit)
	assert.Equal(t, []string{"include/a.h", "include/b.h", "include/c.h"}, callbackOrder)

	for _, out := range outputs {
		require.Len(t, out.Templates, 1)
		assert.True(t, out.Templates[0].Finalized())
	}
}

func TestGenerator_PerUnit_EmptyTemplatesStopsBatch(t *testing.T) {
	// Test: A unit producing zero templates stops the entire remaining
	// batch; earlier outputs survive and the failure is reported.
	module := &ast.Module{LibraryName: "sample", OutputNamespace: "Sample"}
	a := newUnit("include/a.h", module)
	newUnit("include/b.h", module)
	newUnit("include/c.h", module)

	backend := newMockBackend()
	backend.emptyFor["include/b.h"] = true

	gen := New(newTestContext(module.Units...), Options{Strategy: StrategyPerUnit}, backend)
	defer gen.Close()

	callbacks := 0
	gen.OnUnitGenerated = func(out *Output) { callbacks++ }

	outputs, err := gen.Generate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoTemplates)

	require.Len(t, outputs, 1)
	assert.Equal(t, a, outputs[0].Unit)
	assert.Equal(t, 1, callbacks)

	// c.h was never reached
	assert.Len(t, backend.calls, 2)
}

func TestGenerator_PerUnit_IncludeDirAndNamespace(t *testing.T) {
	// Test: The per-call context carries the unit's include dir and its
	// module's namespace.
	module := &ast.Module{LibraryName: "sample", OutputNamespace: "Sample"}
	unit := newUnit("include/nested/a.h", module)

	var seen *GenContext
	backend := newMockBackend()
	gen := New(newTestContext(unit), Options{Strategy: StrategyPerUnit}, &contextRecorder{mockBackend: backend, seen: &seen})
	defer gen.Close()

	_, err := gen.Generate()
	require.NoError(t, err)
	require.NotNil(t, seen)
	assert.Equal(t, "Sample", seen.OutputNamespace)
	assert.Equal(t, "include/nested", seen.IncludeDir)
}

// contextRecorder captures the GenContext handed to the backend.
type contextRecorder struct {
	*mockBackend
	seen **GenContext
}

func (c *contextRecorder) Generate(gctx *GenContext, units []*ast.TranslationUnit) ([]*Template, error) {
	*c.seen = gctx
	return c.mockBackend.Generate(gctx, units)
}

func TestGenerator_FiltersIneligibleUnits(t *testing.T) {
	// Test: Units failing any eligibility flag never appear in outputs.
	module := &ast.Module{LibraryName: "sample", OutputNamespace: "Sample"}

	eligible := newUnit("include/ok.h", module)

	notGenerated := newUnit("include/skip.h", module)
	notGenerated.GenerationKind = ast.GenerationNone

	noDecls := newUnit("include/empty.h", module)
	noDecls.Declarations = nil

	system := newUnit("include/sys.h", module)
	system.IsSystemHeader = true

	invalid := newUnit("include/broken.h", module)
	invalid.IsValid = false

	backend := newMockBackend()
	gen := New(newTestContext(module.Units...), Options{Strategy: StrategyPerUnit}, backend)
	defer gen.Close()

	outputs, err := gen.Generate()
	require.NoError(t, err)
	require.Len(t, outputs, 1)
	assert.Equal(t, eligible, outputs[0].Unit)
}

func TestGenerator_SingleFile_OneOutputPerModule(t *testing.T) {
	// Test: Single-file mode produces exactly one output per configured
	// module, named from the namespace with the backend extension.
	first := &ast.Module{LibraryName: "alpha", OutputNamespace: "Alpha"}
	newUnit("a1.h", first)
	newUnit("a2.h", first)

	second := &ast.Module{LibraryName: "beta"} // no namespace: library name fallback
	newUnit("b1.h", second)

	backend := newMockBackend()
	ctx := newTestContext(append(first.Units, second.Units...)...)
	gen := New(ctx, Options{
		Modules:  []*ast.Module{first, second},
		Strategy: StrategySingleFile,
	}, backend)
	defer gen.Close()

	callbacks := 0
	gen.OnUnitGenerated = func(out *Output) { callbacks++ }

	outputs, err := gen.Generate()
	require.NoError(t, err)
	require.Len(t, outputs, 2)
	assert.Equal(t, 2, callbacks)

	assert.Equal(t, "Alpha.cs", outputs[0].Templates[0].FileName)
	assert.Equal(t, "Alpha.cs", outputs[0].Unit.FilePath)
	assert.Equal(t, first, outputs[0].Unit.Module)

	assert.Equal(t, "beta.cs", outputs[1].Templates[0].FileName)

	// The backend saw each module's whole eligible unit set at once.
	require.Len(t, backend.calls, 2)
	assert.Equal(t, []string{"a1.h", "a2.h"}, backend.calls[0])
	assert.Equal(t, []string{"b1.h"}, backend.calls[1])
}

func TestGenerator_SingleFile_EmptyTemplatesIsContractViolation(t *testing.T) {
	// Test: A backend returning no templates for a module is reported as
	// an error instead of crashing.
	module := &ast.Module{LibraryName: "alpha", OutputNamespace: "Alpha"}
	newUnit("a.h", module)

	backend := newMockBackend()
	backend.emptyFor["a.h"] = true

	gen := New(newTestContext(module.Units...), Options{
		Modules:  []*ast.Module{module},
		Strategy: StrategySingleFile,
	}, backend)
	defer gen.Close()

	outputs, err := gen.Generate()
	assert.ErrorIs(t, err, ErrNoTemplates)
	assert.Empty(t, outputs)
}

func TestGenerator_SingleFile_SkipsModulesWithoutEligibleUnits(t *testing.T) {
	// Test: A module whose units are all filtered out produces no output.
	module := &ast.Module{LibraryName: "alpha", OutputNamespace: "Alpha"}
	unit := newUnit("a.h", module)
	unit.IsSystemHeader = true

	backend := newMockBackend()
	gen := New(newTestContext(unit), Options{
		Modules:  []*ast.Module{module},
		Strategy: StrategySingleFile,
	}, backend)
	defer gen.Close()

	outputs, err := gen.Generate()
	require.NoError(t, err)
	assert.Empty(t, outputs)
	assert.Empty(t, backend.calls)
}

func TestGenerator_TypePrinterSubscription(t *testing.T) {
	// Test: Closing a generator and constructing a new one leaves the
	// global hook pointing only at the new backend's formatter.
	ctx := newTestContext()

	first := newMockBackend()
	first.spelling = "first"
	gen1 := New(ctx, Options{}, first)
	assert.Equal(t, "first", ast.PrintType(ast.BuiltinType{Name: "int"}))

	gen1.Close()
	gen1.Close() // safe to call twice

	second := newMockBackend()
	second.spelling = "second"
	gen2 := New(ctx, Options{}, second)
	defer gen2.Close()

	assert.Equal(t, "second", ast.PrintType(ast.BuiltinType{Name: "int"}))
}

func TestGeneratedIdentifier(t *testing.T) {
	// Test: Deterministic, reserved two-character prefix.
	assert.Equal(t, "__foo", GeneratedIdentifier("foo"))
	assert.Equal(t, "__foo", GeneratedIdentifier("foo"))
	assert.Equal(t, "__", GeneratedIdentifier(""))
}
