package generators

import (
	"errors"
	"fmt"

	"github.com/barukai/CppSharp/internal/generators/writer"
)

// ErrAlreadyFinalized is returned when Finalize is called twice on the same
// template.
var ErrAlreadyFinalized = errors.New("template already finalized")

// ErrNotFinalized is returned when template content is read before
// finalization.
var ErrNotFinalized = errors.New("template not finalized")

// RenderFunc produces a template's text into the given writer. It runs
// exactly once, during finalization.
type RenderFunc func(w *writer.Writer) error

// Template is the renderable intermediate representation of one generated
// output file. Backends construct templates with a deferred render function;
// the orchestrator finalizes each template exactly once, after which the
// content is consumable.
type Template struct {
	// FileName is the output file name relative to the output directory.
	// In single-file mode the aggregation strategy overwrites it with the
	// synthesized module file name.
	FileName string

	render    RenderFunc
	indent    string
	content   []byte
	finalized bool
}

// NewTemplate creates a template that renders with the given function using
// the backend's indentation unit.
func NewTemplate(fileName, indent string, render RenderFunc) *Template {
	return &Template{FileName: fileName, indent: indent, render: render}
}

// Finalize renders the template content. A second call is an error.
func (t *Template) Finalize() error {
	if t.finalized {
		return fmt.Errorf("%s: %w", t.FileName, ErrAlreadyFinalized)
	}
	t.finalized = true

	w := writer.New(t.indent)
	if err := t.render(w); err != nil {
		return fmt.Errorf("failed to render %s: %w", t.FileName, err)
	}
	t.content = w.Bytes()
	return nil
}

// Finalized reports whether the template has been rendered.
func (t *Template) Finalized() bool {
	return t.finalized
}

// Content returns the rendered text; it errors if the template has not been
// finalized yet.
func (t *Template) Content() ([]byte, error) {
	if !t.finalized {
		return nil, fmt.Errorf("%s: %w", t.FileName, ErrNotFinalized)
	}
	return t.content, nil
}
