package generators

import "fmt"

// Kind identifies a backend variant. The set is closed: configuration and
// the registry select among these values, they are never extended at
// runtime.
type Kind int

const (
	// KindCLI is the header-style C++/CLI backend.
	KindCLI Kind = iota

	// KindCSharp is the managed-binding C# backend.
	KindCSharp
)

// String returns the configuration spelling of the kind.
func (k Kind) String() string {
	switch k {
	case KindCLI:
		return "cli"
	case KindCSharp:
		return "csharp"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind converts a configuration spelling into a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "cli":
		return KindCLI, nil
	case "csharp", "cs":
		return KindCSharp, nil
	default:
		return 0, fmt.Errorf("unsupported generator kind: %s", s)
	}
}

// IsManaged reports whether the kind produces managed bindings, the only
// family that supports single-file aggregation.
func (k Kind) IsManaged() bool {
	return k == KindCSharp
}
