// Package blockext binds named block processors into goldmark. A block is
// introduced by an attribute line such as
//
//	[yell, class=loud]
//	some paragraph text
//
// and the registered processor for the name receives the raw paragraph text
// and the attributes, returning the node that replaces the block.
package blockext

import (
	"regexp"

	"github.com/yuin/goldmark/ast"
)

const (
	// ErrDuplicateBlock is returned when a block name is registered twice.
	ErrDuplicateBlock = Error("block already registered")
	// ErrInvalidDeclaration is returned for malformed or unsupported declarations.
	ErrInvalidDeclaration = Error("invalid block declaration")
	// ErrUnsupportedKind is returned by a [NodeFactory] for unknown node kinds.
	ErrUnsupportedKind = Error("unsupported node kind")
	// ErrUnknownBlock is returned when a parsed block has no processor.
	ErrUnknownBlock = Error("unknown block")
)

// Error is an error type for block extension failures.
type Error string

// Error satisfies [error].
func (e Error) Error() string { return string(e) }

// Context is the structural context a block processor applies to.
type Context string

// ContextParagraph applies a processor to paragraph-like blocks.
const ContextParagraph Context = "paragraph"

// ContentModel describes how the body of a block is interpreted.
type ContentModel string

// ContentModelSimple treats the block body as raw, uninterpreted text.
const ContentModelSimple ContentModel = "simple"

// KindParagraph is the node kind for plain rendered text.
const KindParagraph = "paragraph"

var namePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)

// Attributes are the pass-through key/value pairs associated with a block.
type Attributes map[string]any

// Reader exposes the body of a block.
type Reader interface {
	// Read consumes and returns all remaining text of the block.
	Read() (string, error)
}

// NodeFactory creates the nodes returned by processors, so the host can
// attach rendering metadata.
type NodeFactory interface {
	CreateBlock(parent ast.Node, kind, content string, attrs Attributes) (ast.Node, error)
}

// Processor handles blocks of a registered name. A nil node with a nil error
// drops the block from the document.
type Processor interface {
	Process(parent ast.Node, reader Reader, attrs Attributes) (ast.Node, error)
}

// ProcessorFunc is a [Processor] that can be represented just by the
// [Processor.Process] method.
type ProcessorFunc func(parent ast.Node, reader Reader, attrs Attributes) (ast.Node, error)

// Process satisfies [Processor].
func (fn ProcessorFunc) Process(parent ast.Node, reader Reader, attrs Attributes) (ast.Node, error) {
	return fn(parent, reader, attrs)
}

// Declaration names a block type and describes where it applies.
type Declaration struct {
	Name         string
	Contexts     []Context
	ContentModel ContentModel
}
