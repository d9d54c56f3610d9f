// Package ast holds the parsed-program model consumed by the binding
// generators: translation units grouped into modules, their declarations,
// and the type nodes referenced by those declarations.
package ast

import "path/filepath"

// GenerationKind controls whether a translation unit participates in output
// generation.
type GenerationKind int

const (
	// GenerationNone excludes the unit from generation entirely.
	GenerationNone GenerationKind = iota

	// GenerationInternal makes the unit's declarations available to other
	// units without producing output for the unit itself.
	GenerationInternal

	// GenerationGenerate marks the unit as eligible for output generation.
	GenerationGenerate
)

// Module is a named grouping of translation units that share an output
// namespace and a native library identity.
type Module struct {
	LibraryName     string
	OutputNamespace string
	Units           []*TranslationUnit
}

// AddUnit appends a unit to the module and sets its back-reference.
func (m *Module) AddUnit(unit *TranslationUnit) {
	unit.Module = m
	m.Units = append(m.Units, unit)
}

// TranslationUnit is one parsed source file plus its declarations. Units are
// owned by the Context; generators only read them.
type TranslationUnit struct {
	FilePath       string
	GenerationKind GenerationKind
	IsSystemHeader bool
	IsValid        bool
	Module         *Module
	Declarations   []*Declaration
}

// IsGenerated reports whether the unit is eligible for output generation.
func (u *TranslationUnit) IsGenerated() bool {
	return u.GenerationKind == GenerationGenerate
}

// HasDeclarations reports whether the unit carries at least one declaration.
func (u *TranslationUnit) HasDeclarations() bool {
	return len(u.Declarations) > 0
}

// FileName returns the base name of the unit's file path.
func (u *TranslationUnit) FileName() string {
	return filepath.Base(u.FilePath)
}

// FileNameWithoutExtension returns the base name with its extension stripped,
// used by backends to derive output file names.
func (u *TranslationUnit) FileNameWithoutExtension() string {
	name := u.FileName()
	ext := filepath.Ext(name)
	return name[:len(name)-len(ext)]
}
