// Package content contains the transformers that render Markdown documents
// carrying registered block extensions.
package content

import (
	"fmt"
	"mime"

	"github.com/stolasapp/yell/internal/blockext"
)

// Format is an output format of a rendering pipeline.
type Format string

// Supported output formats.
const (
	FormatHTML     Format = "html"
	FormatMarkdown Format = "markdown"
)

// Pipeline composes the transformers converting Markdown with the blocks in
// registry into the requested format. Sanitization applies to the
// intermediate HTML, so it also constrains Markdown output.
func Pipeline(registry *blockext.Registry, format Format, sanitize bool) (TransformerFunc, error) {
	stages := []Transformer{MarkdownToHTML(registry)}
	if sanitize {
		stages = append(stages, SanitizeHTML())
	}
	switch format {
	case FormatHTML:
	case FormatMarkdown:
		stages = append(stages, HTMLToMarkdown())
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}
	return Chain(stages...), nil
}

// Render converts input of the given content type to UTF-8 and runs it
// through pipeline.
func Render(inputContentType string, pipeline Transformer, input []byte) ([]byte, error) {
	if _, _, err := mime.ParseMediaType(inputContentType); err != nil {
		return nil, fmt.Errorf("failed to parse content mime type %q: %w", inputContentType, err)
	}

	input, err := UTF8Transformer(inputContentType)(input)
	if err != nil {
		return nil, err
	}
	return pipeline.Transform(input)
}
