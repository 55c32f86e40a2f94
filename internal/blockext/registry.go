package blockext

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

// Priorities relative to the goldmark defaults. The block parser must run
// ahead of the paragraph parser (1000).
const (
	priorityBlockParser      = 150
	priorityBlockTransformer = 100
	priorityBlockRenderer    = 500
)

// Registry maps block names to processors. It is populated at startup and
// satisfies [goldmark.Extender] so it can be passed to [goldmark.New].
type Registry struct {
	mu         sync.RWMutex
	processors map[string]Processor

	factory NodeFactory
	logger  *slog.Logger
}

// RegistryOption configures a [Registry].
type RegistryOption func(*Registry)

// WithFactory overrides the [NodeFactory] handed to processors.
func WithFactory(factory NodeFactory) RegistryOption {
	return func(r *Registry) { r.factory = factory }
}

// WithLogger sets the logger used for block dispatch.
func WithLogger(logger *slog.Logger) RegistryOption {
	return func(r *Registry) { r.logger = logger }
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	registry := &Registry{
		processors: map[string]Processor{},
		factory:    DefaultFactory{},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(registry)
	}
	return registry
}

// Register binds a processor to the declared block name.
func (r *Registry) Register(decl Declaration, processor Processor) error {
	if err := decl.Validate(); err != nil {
		return err
	}
	if processor == nil {
		return fmt.Errorf("%w: %q has no processor", ErrInvalidDeclaration, decl.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.processors[decl.Name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateBlock, decl.Name)
	}
	r.processors[decl.Name] = processor
	r.logger.Debug("registered block processor",
		slog.String("name", decl.Name),
		slog.String("content_model", string(decl.ContentModel)))
	return nil
}

// Lookup returns the processor registered for name.
func (r *Registry) Lookup(name string) (Processor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	processor, ok := r.processors[name]
	return processor, ok
}

// Names returns the registered block names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.processors))
}

// Factory returns the node factory processors should create nodes with.
func (r *Registry) Factory() NodeFactory { return r.factory }

// Extend satisfies [goldmark.Extender].
func (r *Registry) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(
		parser.WithBlockParsers(
			util.Prioritized(&blockParser{registry: r}, priorityBlockParser),
		),
		parser.WithASTTransformers(
			util.Prioritized(&blockTransformer{registry: r}, priorityBlockTransformer),
		),
	)
	m.Renderer().AddOptions(
		renderer.WithNodeRenderers(
			util.Prioritized(blockRenderer{}, priorityBlockRenderer),
		),
	)
}
