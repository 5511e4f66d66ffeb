package render

import (
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formstrap/pkg/options"
)

// ApplyTheme selects a theme variant through selector and applies the
// formstrap tokens it carries (see options.FromSelection).
func (c *Context) ApplyTheme(selector theme.ThemeSelector, name, variant string) (*Context, error) {
	if selector == nil {
		return c, fmt.Errorf("render: theme selector is nil")
	}
	selection, err := selector.Select(strings.TrimSpace(name), strings.TrimSpace(variant))
	if err != nil {
		return c, fmt.Errorf("render: select theme %q: %w", name, err)
	}
	preset, err := options.FromSelection(selection)
	if err != nil {
		return c, fmt.Errorf("render: apply theme %q: %w", name, err)
	}
	c.logger.Debug("applied theme", "theme", name, "variant", variant)
	return c.ApplyPreset(preset), nil
}
