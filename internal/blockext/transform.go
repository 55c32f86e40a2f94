package blockext

import (
	"fmt"
	"log/slog"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// blockTransformer hands every parsed [Block] to its processor and replaces
// the block with the returned node.
type blockTransformer struct {
	registry *Registry
}

func (t *blockTransformer) Transform(doc *ast.Document, reader text.Reader, _ parser.Context) {
	// Collect first; the tree must not be mutated mid-walk.
	var blocks []*Block
	_ = ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if block, ok := node.(*Block); ok {
			blocks = append(blocks, block)
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})

	for _, block := range blocks {
		t.registry.process(block, reader.Source())
	}
}

// process runs the processor for block. Failures are recorded on the block so
// that rendering stops with the error.
func (r *Registry) process(block *Block, source []byte) {
	processor, ok := r.Lookup(block.Name)
	if !ok {
		block.err = fmt.Errorf("%w: %q", ErrUnknownBlock, block.Name)
		return
	}

	attrs := block.Attrs
	if attrs == nil {
		attrs = Attributes{}
	}
	parent := block.Parent()
	node, err := processor.Process(parent, newLinesReader(source, block.Lines()), attrs)
	if err != nil {
		block.err = fmt.Errorf("failed to process %q block: %w", block.Name, err)
		r.logger.Debug("block processor failed",
			slog.String("name", block.Name),
			slog.Any("error", err))
		return
	}

	if node == nil {
		parent.RemoveChild(parent, block)
		return
	}
	parent.ReplaceChild(parent, block, node)
	r.logger.Debug("processed block",
		slog.String("name", block.Name),
		slog.String("kind", node.Kind().String()))
}

// blockRenderer only sees blocks whose processor failed.
type blockRenderer struct{}

func (blockRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindBlock, renderBlock)
}

func renderBlock(_ util.BufWriter, _ []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	block, ok := node.(*Block)
	if !ok {
		return ast.WalkStop, fmt.Errorf("unexpected node type %T", node)
	}
	if err := block.Err(); err != nil {
		return ast.WalkStop, err
	}
	return ast.WalkStop, fmt.Errorf("%w: %q was never processed", ErrUnknownBlock, block.Name)
}
