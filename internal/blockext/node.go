package blockext

import (
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// KindBlock is a NodeKind of the Block node.
var KindBlock = ast.NewNodeKind("ExtensionBlock")

// Block holds the raw lines of a named block until its processor runs.
type Block struct {
	ast.BaseBlock

	Name  string
	Attrs Attributes

	err error
}

// NewBlock returns a new Block node.
func NewBlock(name string, attrs Attributes) *Block {
	return &Block{
		Name:  name,
		Attrs: attrs,
	}
}

// Kind implements Node.Kind.
func (n *Block) Kind() ast.NodeKind { return KindBlock }

// IsRaw implements Node.IsRaw.
func (n *Block) IsRaw() bool { return true }

// Dump implements Node.Dump.
func (n *Block) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{"Name": n.Name}, nil)
}

// Err returns the processing error recorded for the block, if any.
func (n *Block) Err() error { return n.err }

// linesReader reads the captured lines of a block from the source.
type linesReader struct {
	source []byte
	lines  *text.Segments
	done   bool
}

func newLinesReader(source []byte, lines *text.Segments) *linesReader {
	return &linesReader{source: source, lines: lines}
}

// Read satisfies [Reader]. The final line terminator is dropped; inner line
// breaks are kept verbatim. Subsequent calls return an empty string.
func (r *linesReader) Read() (string, error) {
	if r.done {
		return "", nil
	}
	r.done = true

	var buf strings.Builder
	for i := range r.lines.Len() {
		segment := r.lines.At(i)
		buf.Write(segment.Value(r.source))
	}
	out := strings.TrimSuffix(buf.String(), "\n")
	return strings.TrimSuffix(out, "\r"), nil
}
