package ast

import (
	"encoding/json"
	"fmt"
	"os"
)

// The manifest is the JSON AST dump produced by the upstream parser. Loading
// it is the only way a context enters this tool; parsing C/C++ itself happens
// upstream.

type manifest struct {
	Modules []manifestModule `json:"modules"`
	Units   []manifestUnit   `json:"units"`
}

type manifestModule struct {
	Library   string `json:"library"`
	Namespace string `json:"namespace"`
}

type manifestUnit struct {
	Path         string         `json:"path"`
	Module       string         `json:"module"`
	System       bool           `json:"system"`
	Invalid      bool           `json:"invalid"`
	Generate     *bool          `json:"generate"`
	Declarations []manifestDecl `json:"declarations"`
}

type manifestDecl struct {
	Kind       string             `json:"kind"`
	Name       string             `json:"name"`
	Doc        string             `json:"doc"`
	Fields     []manifestField    `json:"fields"`
	Methods    []manifestMethod   `json:"methods"`
	Items      []manifestEnumItem `json:"items"`
	ReturnType *manifestType      `json:"returnType"`
	Params     []manifestParam    `json:"params"`
}

type manifestField struct {
	Name string        `json:"name"`
	Type *manifestType `json:"type"`
	Doc  string        `json:"doc"`
}

type manifestMethod struct {
	Name       string          `json:"name"`
	Doc        string          `json:"doc"`
	ReturnType *manifestType   `json:"returnType"`
	Params     []manifestParam `json:"params"`
	Static     bool            `json:"static"`
}

type manifestParam struct {
	Name string        `json:"name"`
	Type *manifestType `json:"type"`
}

type manifestEnumItem struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
	Doc   string `json:"doc"`
}

type manifestType struct {
	Kind    string        `json:"kind"`
	Name    string        `json:"name"`
	Pointee *manifestType `json:"pointee"`
}

// LoadContext reads an AST manifest file and materializes the context and the
// modules it declares. Module order and unit order follow the manifest.
func LoadContext(path string) (*Context, []*Module, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read AST manifest: %w", err)
	}

	var m manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, nil, fmt.Errorf("failed to parse AST manifest %s: %w", path, err)
	}

	modules := make([]*Module, 0, len(m.Modules))
	byLibrary := make(map[string]*Module, len(m.Modules))
	for _, mm := range m.Modules {
		if mm.Library == "" {
			return nil, nil, fmt.Errorf("module in %s is missing a library name", path)
		}
		mod := &Module{LibraryName: mm.Library, OutputNamespace: mm.Namespace}
		modules = append(modules, mod)
		byLibrary[mm.Library] = mod
	}

	ctx := NewContext()
	for _, mu := range m.Units {
		mod, ok := byLibrary[mu.Module]
		if !ok {
			return nil, nil, fmt.Errorf("unit %s references unknown module %q", mu.Path, mu.Module)
		}

		unit := &TranslationUnit{
			FilePath:       mu.Path,
			GenerationKind: GenerationGenerate,
			IsSystemHeader: mu.System,
			IsValid:        !mu.Invalid,
		}
		if mu.Generate != nil && !*mu.Generate {
			unit.GenerationKind = GenerationNone
		}

		for _, md := range mu.Declarations {
			decl, err := md.toDecl()
			if err != nil {
				return nil, nil, fmt.Errorf("unit %s: %w", mu.Path, err)
			}
			unit.Declarations = append(unit.Declarations, decl)
		}

		mod.AddUnit(unit)
		ctx.AddUnit(unit)
	}

	return ctx, modules, nil
}

func (md manifestDecl) toDecl() (*Declaration, error) {
	decl := &Declaration{Name: md.Name, Doc: md.Doc}

	switch DeclKind(md.Kind) {
	case DeclClass:
		decl.Kind = DeclClass
		for _, f := range md.Fields {
			decl.Fields = append(decl.Fields, Field{Name: f.Name, Type: f.Type.toType(), Doc: f.Doc})
		}
		for _, m := range md.Methods {
			decl.Methods = append(decl.Methods, Method{
				Name:       m.Name,
				Doc:        m.Doc,
				ReturnType: m.ReturnType.toType(),
				Params:     toParams(m.Params),
				IsStatic:   m.Static,
			})
		}
	case DeclEnum:
		decl.Kind = DeclEnum
		for _, it := range md.Items {
			decl.Items = append(decl.Items, EnumItem{Name: it.Name, Value: it.Value, Doc: it.Doc})
		}
	case DeclFunction:
		decl.Kind = DeclFunction
		decl.ReturnType = md.ReturnType.toType()
		decl.Params = toParams(md.Params)
	default:
		return nil, fmt.Errorf("declaration %s has unknown kind %q", md.Name, md.Kind)
	}

	return decl, nil
}

func toParams(mps []manifestParam) []Param {
	params := make([]Param, 0, len(mps))
	for _, p := range mps {
		params = append(params, Param{Name: p.Name, Type: p.Type.toType()})
	}
	return params
}

// toType converts a manifest type node; a missing node means void.
func (mt *manifestType) toType() Type {
	if mt == nil {
		return BuiltinType{Name: "void"}
	}
	switch mt.Kind {
	case "pointer":
		return PointerType{Pointee: mt.Pointee.toType()}
	case "tag":
		return TagType{Name: mt.Name}
	default:
		return BuiltinType{Name: mt.Name}
	}
}
