package ast

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPass struct {
	name string
	log  *[]string
	fail bool
}

func (p *recordingPass) Name() string { return p.name }

func (p *recordingPass) Run(ctx *Context) error {
	*p.log = append(*p.log, p.name)
	if p.fail {
		return fmt.Errorf("boom")
	}
	return nil
}

func TestContext_RunPassesInOrder(t *testing.T) {
	// Test: Passes run in registration order
	ctx := NewContext()
	var log []string
	ctx.AddPass(&recordingPass{name: "first", log: &log})
	ctx.AddPass(&recordingPass{name: "second", log: &log})

	require.NoError(t, ctx.RunPasses())
	assert.Equal(t, []string{"first", "second"}, log)
}

func TestContext_RunPassesStopsOnFailure(t *testing.T) {
	// Test: The first failing pass stops the chain and names itself
	ctx := NewContext()
	var log []string
	ctx.AddPass(&recordingPass{name: "first", log: &log, fail: true})
	ctx.AddPass(&recordingPass{name: "second", log: &log})

	err := ctx.RunPasses()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pass first")
	assert.Equal(t, []string{"first"}, log)
}

func TestTranslationUnit_Flags(t *testing.T) {
	// Test: Eligibility helpers reflect the unit's state
	unit := &TranslationUnit{
		FilePath:       "include/widget.h",
		GenerationKind: GenerationGenerate,
		IsValid:        true,
	}
	assert.True(t, unit.IsGenerated())
	assert.False(t, unit.HasDeclarations())

	unit.Declarations = append(unit.Declarations, &Declaration{Kind: DeclClass, Name: "Widget"})
	assert.True(t, unit.HasDeclarations())

	unit.GenerationKind = GenerationInternal
	assert.False(t, unit.IsGenerated())

	assert.Equal(t, "widget.h", unit.FileName())
	assert.Equal(t, "widget", unit.FileNameWithoutExtension())
}

func TestModule_AddUnit(t *testing.T) {
	// Test: AddUnit wires the back-reference
	module := &Module{LibraryName: "std", OutputNamespace: "Std"}
	unit := &TranslationUnit{FilePath: "a.h"}
	module.AddUnit(unit)

	assert.Equal(t, module, unit.Module)
	require.Len(t, module.Units, 1)
}
