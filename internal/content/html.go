package content

import (
	"regexp"

	"github.com/microcosm-cc/bluemonday"
)

// classAttr matches space separated CSS class names.
var classAttr = regexp.MustCompile(`^[A-Za-z0-9_ -]+$`)

// SanitizeHTML applies sanitization rules to HTML input, stripping unsupported
// tags and attributes.
func SanitizeHTML() TransformerFunc {
	htmlSanitizer := sanitizer()
	return func(input []byte) ([]byte, error) {
		return htmlSanitizer.SanitizeBytes(input), nil
	}
}

// sanitizer is a modification of [bluemonday.UGCPolicy].
// Differences:
//
//   - Target _blank and noreferrer for links
//   - Class attributes kept on all elements so block roles survive
//   - No figure/image elements (to avoid hot-linking)
func sanitizer() *bluemonday.Policy {
	policy := bluemonday.NewPolicy()

	policy.AllowStandardAttributes()
	policy.AllowAttrs("class").
		Matching(classAttr).
		Globally()

	policy.AllowStandardURLs()
	policy.RequireNoReferrerOnLinks(true)
	policy.AddTargetBlankToFullyQualifiedLinks(true)

	policy.AllowElements(
		"abbr",
		"b",
		"blockquote",
		"br",
		"cite",
		"code",
		"del",
		"div",
		"em",
		"h1", "h2", "h3", "h4", "h5", "h6",
		"hr",
		"i",
		"mark",
		"p",
		"pre",
		"s",
		"section",
		"small",
		"strong",
		"sub",
		"sup",
		"u",
	)

	policy.AllowAttrs("href").
		OnElements("a")

	policy.AllowLists()
	policy.AllowTables()

	return policy
}
