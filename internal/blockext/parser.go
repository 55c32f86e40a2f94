package blockext

import (
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// blockParser opens a [Block] on an attribute line naming a registered
// processor. The following non-blank lines are captured as the block body.
type blockParser struct {
	registry *Registry
}

func (b *blockParser) Trigger() []byte { return []byte{'['} }

func (b *blockParser) Open(_ ast.Node, reader text.Reader, _ parser.Context) (ast.Node, parser.State) {
	line, segment := reader.PeekLine()
	name, attrs, ok := parseAttributeLine(string(util.TrimRightSpace(util.TrimLeftSpace(line))))
	if !ok {
		return nil, parser.NoChildren
	}
	if _, registered := b.registry.Lookup(name); !registered {
		return nil, parser.NoChildren
	}
	reader.Advance(segment.Len() - 1)
	return NewBlock(name, attrs), parser.NoChildren
}

func (b *blockParser) Continue(node ast.Node, reader text.Reader, _ parser.Context) parser.State {
	line, segment := reader.PeekLine()
	if util.IsBlank(line) {
		return parser.Close
	}
	node.Lines().Append(segment.TrimLeftSpace(reader.Source()))
	reader.Advance(segment.Len() - 1)
	return parser.Continue | parser.NoChildren
}

func (b *blockParser) Close(ast.Node, text.Reader, parser.Context) {}

func (b *blockParser) CanInterruptParagraph() bool { return false }

func (b *blockParser) CanAcceptIndentedLine() bool { return false }

// parseAttributeLine parses a line of the form
//
//	[name, key=value, key="quoted, value", flag]
//
// Flags without a value map to the empty string. ok is false when the line is
// not an attribute line or the name is malformed.
func parseAttributeLine(line string) (name string, attrs Attributes, ok bool) {
	if len(line) < 2 || line[0] != '[' || line[len(line)-1] != ']' {
		return "", nil, false
	}
	entries := splitAttributeList(line[1 : len(line)-1])
	if len(entries) == 0 || !namePattern.MatchString(entries[0]) {
		return "", nil, false
	}

	attrs = Attributes{}
	for _, entry := range entries[1:] {
		key, value, hasValue := strings.Cut(entry, "=")
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		if !hasValue {
			attrs[key] = ""
			continue
		}
		attrs[key] = unquote(strings.TrimSpace(value))
	}
	return entries[0], attrs, true
}

// splitAttributeList splits on commas outside of quotes and trims each entry.
// Empty entries are dropped, except for the leading name.
func splitAttributeList(list string) []string {
	var (
		entries []string
		current strings.Builder
		quote   rune
	)
	flush := func() {
		entry := strings.TrimSpace(current.String())
		current.Reset()
		if entry != "" || len(entries) == 0 {
			entries = append(entries, entry)
		}
	}
	for _, r := range list {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '"' || r == '\'':
			quote = r
		case r == ',':
			flush()
			continue
		}
		current.WriteRune(r)
	}
	flush()
	return entries
}

func unquote(value string) string {
	if len(value) >= 2 {
		first, last := value[0], value[len(value)-1]
		if first == last && (first == '"' || first == '\'') {
			return value[1 : len(value)-1]
		}
	}
	return value
}
