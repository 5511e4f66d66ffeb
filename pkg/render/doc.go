// Package render provides the rendering Context: it resolves the renderer
// registered for an element's kind, hands it the configuration for that
// element and returns the produced markup. Renderers recurse through the
// same Context for child elements, so a form renderer and its field
// renderers are resolved independently.
package render
