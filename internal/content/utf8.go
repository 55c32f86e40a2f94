package content

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
)

// utf8BOM is the UTF-8 byte order mark that some editors add to files.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// minChardetConfidence is the minimum confidence level required to trust
// chardet's detection over the default Windows-1252 fallback.
const minChardetConfidence = 50

// UTF8Transformer converts document input to UTF-8 based on the content type
// charset, stripping the UTF-8 BOM if present.
//
// An explicit charset parameter or a BOM wins. Otherwise valid UTF-8 is
// passed through, and anything else is handed to chardet for statistical
// detection before falling back to Windows-1252.
func UTF8Transformer(contentType string) TransformerFunc {
	markup := strings.Contains(contentType, "html")

	return func(input []byte) ([]byte, error) {
		enc, name, certain := charset.DetermineEncoding(input, contentType)

		if !certain && !markup {
			enc, name = detectPlainText(input, enc, name)
		}

		if !certain {
			slog.Debug("encoding detection uncertain",
				slog.String("encoding", name),
				slog.String("content_type", contentType))
		}

		output, err := decodeToUTF8(input, enc)
		if err != nil {
			return nil, err
		}
		return bytes.TrimPrefix(output, utf8BOM), nil
	}
}

// detectPlainText refines an uncertain guess for non-HTML documents, which
// carry no meta tags for charset.DetermineEncoding to inspect.
func detectPlainText(input []byte, fallback encoding.Encoding, fallbackName string) (encoding.Encoding, string) {
	if utf8.Valid(input) {
		return unicode.UTF8, "utf-8"
	}
	if detected, detectedName := detectWithChardet(input); detected != nil {
		return detected, detectedName
	}
	return fallback, fallbackName
}

// detectWithChardet uses ICU-based statistical detection.
// Returns nil if detection fails or confidence is too low.
func detectWithChardet(input []byte) (encoding.Encoding, string) {
	result, err := chardet.NewTextDetector().DetectBest(input)
	if err != nil || result.Confidence < minChardetConfidence {
		return nil, ""
	}

	// chardet sometimes returns names not in the HTML index
	enc, err := htmlindex.Get(result.Charset)
	if err != nil {
		return nil, ""
	}

	slog.Debug("chardet detection",
		slog.String("charset", result.Charset),
		slog.Int("confidence", result.Confidence))

	return enc, result.Charset
}

// decodeToUTF8 converts input bytes to UTF-8 using the given encoding.
func decodeToUTF8(input []byte, enc encoding.Encoding) ([]byte, error) {
	if enc == encoding.Nop || enc == unicode.UTF8 {
		return input, nil
	}

	output, err := io.ReadAll(enc.NewDecoder().Reader(bytes.NewReader(input)))
	if err != nil {
		return nil, fmt.Errorf("failed to decode to UTF-8: %w", err)
	}
	return output, nil
}
