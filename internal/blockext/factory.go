package blockext

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/yuin/goldmark/ast"
)

// DefaultFactory creates goldmark nodes. Attributes are copied onto the node
// in key order so rendering is deterministic.
type DefaultFactory struct{}

// CreateBlock satisfies [NodeFactory].
func (DefaultFactory) CreateBlock(_ ast.Node, kind, content string, attrs Attributes) (ast.Node, error) {
	switch kind {
	case KindParagraph:
		node := ast.NewParagraph()
		if content != "" {
			text := ast.NewString([]byte(content))
			text.SetRaw(true)
			node.AppendChild(node, text)
		}
		for _, key := range slices.Sorted(maps.Keys(attrs)) {
			node.SetAttributeString(key, attrs[key])
		}
		return node, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedKind, kind)
	}
}

// AttributesOf returns the attributes attached to a node. The result is never
// nil.
func AttributesOf(node ast.Node) Attributes {
	attrs := Attributes{}
	for _, attr := range node.Attributes() {
		attrs[string(attr.Name)] = attr.Value
	}
	return attrs
}

// TextOf returns the concatenated string content of a node's children.
func TextOf(node ast.Node) string {
	var buf strings.Builder
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		if str, ok := child.(*ast.String); ok {
			buf.Write(str.Value)
		}
	}
	return buf.String()
}
