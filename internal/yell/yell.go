// Package yell provides the "yell" block: the raw text of the block is
// uppercased and re-emitted as a paragraph with the block's attributes.
package yell

import (
	"fmt"
	"unicode/utf8"

	"github.com/yuin/goldmark/ast"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/stolasapp/yell/internal/blockext"
)

// Name is the block keyword routed to the [Transformer].
const Name = "yell"

// ErrInvalidInput is returned for content that is not valid UTF-8 text.
const ErrInvalidInput = Error("invalid input")

// Error is an error type for yell failures.
type Error string

// Error satisfies [error].
func (e Error) Error() string { return string(e) }

// Declaration describes the yell block to a [blockext.Registry].
func Declaration() blockext.Declaration {
	return blockext.Declaration{
		Name:         Name,
		Contexts:     []blockext.Context{blockext.ContextParagraph},
		ContentModel: blockext.ContentModelSimple,
	}
}

// Transformer uppercases block content. It holds no mutable state and is safe
// for concurrent use.
type Transformer struct {
	factory blockext.NodeFactory
	tag     language.Tag
}

// Option configures a [Transformer].
type Option func(*Transformer)

// WithLanguage selects language-specific case mapping, e.g. Turkish dotted
// capital I. The default is the locale-independent mapping.
func WithLanguage(tag language.Tag) Option {
	return func(t *Transformer) { t.tag = tag }
}

// New creates a Transformer that builds its output nodes with factory. A nil
// factory falls back to [blockext.DefaultFactory].
func New(factory blockext.NodeFactory, opts ...Option) *Transformer {
	if factory == nil {
		factory = blockext.DefaultFactory{}
	}
	transformer := &Transformer{
		factory: factory,
		tag:     language.Und,
	}
	for _, opt := range opts {
		opt(transformer)
	}
	return transformer
}

// Register binds a new [Transformer] into registry under [Name], using the
// registry's node factory.
func Register(registry *blockext.Registry, opts ...Option) error {
	return registry.Register(Declaration(), New(registry.Factory(), opts...))
}

// Transform uppercases content with the locale-independent mapping.
func Transform(content string) (string, error) {
	return New(nil).Transform(content)
}

// Transform uppercases content. Characters without an uppercase form are
// unchanged, line breaks included.
func (t *Transformer) Transform(content string) (string, error) {
	if !utf8.ValidString(content) {
		return "", fmt.Errorf("%w: content is not valid UTF-8", ErrInvalidInput)
	}
	// Casers are stateful, so one is created per call.
	return cases.Upper(t.tag).String(content), nil
}

// Process satisfies [blockext.Processor]. The attributes are passed through
// to the paragraph unchanged; nil attributes are treated as empty.
func (t *Transformer) Process(parent ast.Node, reader blockext.Reader, attrs blockext.Attributes) (ast.Node, error) {
	if reader == nil {
		return nil, fmt.Errorf("%w: no block reader", ErrInvalidInput)
	}
	content, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read block content: %w", err)
	}
	upper, err := t.Transform(content)
	if err != nil {
		return nil, err
	}
	if attrs == nil {
		attrs = blockext.Attributes{}
	}
	return t.factory.CreateBlock(parent, blockext.KindParagraph, upper, attrs)
}
