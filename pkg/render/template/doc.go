// Package template exposes rendering contexts to pongo2 based view layers
// (pongo2 itself and engines built on it, such as go-template) as a filter:
//
//	{{ form|formstrap }}
//	{{ form|formstrap:"email" }}
//
// The filter output is marked safe so the engine does not escape it again.
package template
