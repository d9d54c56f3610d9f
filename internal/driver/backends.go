package driver

import (
	"sort"

	"github.com/barukai/CppSharp/internal/generators"
	"github.com/barukai/CppSharp/internal/generators/cli"
	"github.com/barukai/CppSharp/internal/generators/csharp"
)

// defaultRegistry holds the built-in backends.
var defaultRegistry = generators.NewRegistry()

func init() {
	defaultRegistry.Register(generators.KindCSharp, func() generators.Backend {
		return csharp.New()
	})
	defaultRegistry.Register(generators.KindCLI, func() generators.Backend {
		return cli.New()
	})
}

// NewBackend constructs a built-in backend of the given kind.
func NewBackend(kind generators.Kind) (generators.Backend, error) {
	return defaultRegistry.Get(kind)
}

// SupportedKinds returns the built-in backend kinds in stable order.
func SupportedKinds() []generators.Kind {
	kinds := defaultRegistry.Kinds()
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}
