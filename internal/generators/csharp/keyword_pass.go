package csharp

import "github.com/barukai/CppSharp/internal/ast"

// csharpKeywords lists the C# keywords that native identifiers may collide
// with. Colliding names are escaped with the verbatim identifier prefix.
var csharpKeywords = map[string]bool{
	"abstract": true, "base": true, "bool": true, "byte": true,
	"checked": true, "class": true, "decimal": true, "delegate": true,
	"event": true, "fixed": true, "internal": true, "is": true,
	"lock": true, "namespace": true, "object": true, "operator": true,
	"out": true, "override": true, "params": true, "readonly": true,
	"ref": true, "sealed": true, "string": true, "uint": true,
	"ulong": true, "unchecked": true, "ushort": true, "virtual": true,
}

// keywordPass escapes declaration, member, and parameter names that collide
// with C# keywords.
type keywordPass struct{}

func (p *keywordPass) Name() string {
	return "csharp-escape-keywords"
}

func (p *keywordPass) Run(ctx *ast.Context) error {
	for _, unit := range ctx.TranslationUnits {
		for _, decl := range unit.Declarations {
			decl.Name = escapeKeyword(decl.Name)
			for i := range decl.Fields {
				decl.Fields[i].Name = escapeKeyword(decl.Fields[i].Name)
			}
			for i := range decl.Items {
				decl.Items[i].Name = escapeKeyword(decl.Items[i].Name)
			}
			for i := range decl.Methods {
				decl.Methods[i].Name = escapeKeyword(decl.Methods[i].Name)
				escapeParams(decl.Methods[i].Params)
			}
			escapeParams(decl.Params)
		}
	}
	return nil
}

func escapeParams(params []ast.Param) {
	for i := range params {
		params[i].Name = escapeKeyword(params[i].Name)
	}
}

func escapeKeyword(name string) string {
	if csharpKeywords[name] {
		return "@" + name
	}
	return name
}
