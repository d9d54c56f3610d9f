package ast

import "fmt"

// Pass is one AST transformation run over the whole context before
// generation. Backends register the passes appropriate to their target
// language.
type Pass interface {
	// Name identifies the pass in logs and errors.
	Name() string

	// Run applies the transformation to the context.
	Run(ctx *Context) error
}

// Context owns the translation units of one parse and the transformation
// passes scheduled against them.
type Context struct {
	TranslationUnits []*TranslationUnit

	passes []Pass
}

// NewContext creates an empty AST context.
func NewContext() *Context {
	return &Context{}
}

// AddUnit appends a translation unit to the context.
func (c *Context) AddUnit(unit *TranslationUnit) {
	c.TranslationUnits = append(c.TranslationUnits, unit)
}

// AddPass schedules a transformation pass. Passes run in registration order.
func (c *Context) AddPass(p Pass) {
	c.passes = append(c.passes, p)
}

// Passes returns the scheduled passes in registration order.
func (c *Context) Passes() []Pass {
	return c.passes
}

// RunPasses executes every scheduled pass in order, stopping at the first
// failure.
func (c *Context) RunPasses() error {
	for _, p := range c.passes {
		if err := p.Run(c); err != nil {
			return fmt.Errorf("pass %s: %w", p.Name(), err)
		}
	}
	return nil
}
