package ast

// Type is an AST type node referenced from declarations. The concrete shapes
// are deliberately small: builtins, pointers, and references to declared tags
// cover everything the binding backends need to spell.
type Type interface {
	typeNode()
}

// BuiltinType is a primitive C type such as "int" or "bool".
type BuiltinType struct {
	Name string
}

// PointerType is a pointer to another type.
type PointerType struct {
	Pointee Type
}

// TagType references a class or enum declared elsewhere by name.
type TagType struct {
	Name string
}

func (BuiltinType) typeNode() {}
func (PointerType) typeNode() {}
func (TagType) typeNode()     {}
