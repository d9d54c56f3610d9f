package ast

// DeclKind distinguishes the declaration shapes carried by a translation unit.
type DeclKind string

const (
	DeclClass    DeclKind = "class"
	DeclEnum     DeclKind = "enum"
	DeclFunction DeclKind = "function"
)

// Declaration is a single top-level declaration inside a translation unit.
// The populated fields depend on Kind: classes carry Fields and Methods,
// enums carry Items, free functions carry ReturnType and Params.
type Declaration struct {
	Kind       DeclKind
	Name       string
	Doc        string
	Fields     []Field
	Methods    []Method
	Items      []EnumItem
	ReturnType Type
	Params     []Param
}

// Field is a data member of a class declaration.
type Field struct {
	Name string
	Type Type
	Doc  string
}

// Method is a callable member of a class declaration.
type Method struct {
	Name       string
	Doc        string
	ReturnType Type
	Params     []Param
	IsStatic   bool
}

// Param is one formal parameter of a method or function.
type Param struct {
	Name string
	Type Type
}

// EnumItem is a single enumerator inside an enum declaration.
type EnumItem struct {
	Name  string
	Value int64
	Doc   string
}
