package blockext

import (
	"errors"
	"fmt"
)

// Validate reports whether the declaration can be served by the goldmark
// binding. Only paragraph contexts with a simple content model are supported.
func (d Declaration) Validate() error {
	var errs []error
	if !namePattern.MatchString(d.Name) {
		errs = append(errs, fmt.Errorf("%w: name %q does not match pattern `%s`",
			ErrInvalidDeclaration, d.Name, namePattern.String()))
	}
	if len(d.Contexts) == 0 {
		errs = append(errs, fmt.Errorf("%w: %q declares no contexts", ErrInvalidDeclaration, d.Name))
	}
	for _, ctx := range d.Contexts {
		if ctx != ContextParagraph {
			errs = append(errs, fmt.Errorf("%w: %q declares unsupported context %q",
				ErrInvalidDeclaration, d.Name, ctx))
		}
	}
	if d.ContentModel != ContentModelSimple {
		errs = append(errs, fmt.Errorf("%w: %q declares unsupported content model %q",
			ErrInvalidDeclaration, d.Name, d.ContentModel))
	}
	return errors.Join(errs...)
}
