package render

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/goliatone/go-formstrap/pkg/model"
)

// Component adapts the rendering of element into a templ.Component so forms
// can be embedded in templ views. Rendering happens when the component is
// rendered, using the context configuration at that time.
func (c *Context) Component(element model.Element) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		html, err := c.Render(element)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, string(html))
		return err
	})
}
