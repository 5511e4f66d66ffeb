package testsupport

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ParseFragment parses markup as the content of a <body> element and
// returns the top-level nodes.
func ParseFragment(t *testing.T, markup string) []*html.Node {
	t.Helper()

	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(markup), body)
	if err != nil {
		t.Fatalf("parse fragment: %v", err)
	}
	return nodes
}

// Elements returns the element nodes among nodes, skipping text.
func Elements(nodes []*html.Node) []*html.Node {
	var out []*html.Node
	for _, node := range nodes {
		if node.Type == html.ElementNode {
			out = append(out, node)
		}
	}
	return out
}

// Children returns the element children of node.
func Children(node *html.Node) []*html.Node {
	var out []*html.Node
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.ElementNode {
			out = append(out, child)
		}
	}
	return out
}

// FindAll returns every element named tag within nodes, depth first.
func FindAll(nodes []*html.Node, tag string) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.ElementNode && node.Data == tag {
			out = append(out, node)
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	for _, node := range nodes {
		walk(node)
	}
	return out
}

// Attr returns the value of attribute key and whether it is present.
func Attr(node *html.Node, key string) (string, bool) {
	for _, attr := range node.Attr {
		if attr.Key == key {
			return attr.Val, true
		}
	}
	return "", false
}

// HasClass reports whether node's class list contains class.
func HasClass(node *html.Node, class string) bool {
	value, _ := Attr(node, "class")
	for _, token := range strings.Fields(value) {
		if token == class {
			return true
		}
	}
	return false
}

// Text returns the concatenated text content of node.
func Text(node *html.Node) string {
	var builder strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			builder.WriteString(n.Data)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(node)
	return builder.String()
}
