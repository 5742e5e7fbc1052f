package graphfile

import (
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// specValidate is shared; validator.Validate caches struct metadata and is
// safe for concurrent use.
var specValidate *validator.Validate

func init() {
	specValidate = validator.New(validator.WithRequiredStructEnabled())
	specValidate.RegisterStructValidation(validateBounds, Spec{})
}

// validateBounds checks that edge endpoints and the start vertex fall inside
// [0, Vertices), which field tags cannot express.
func validateBounds(sl validator.StructLevel) {
	s := sl.Current().Interface().(Spec)
	limit := strconv.Itoa(s.Vertices)
	if s.Start >= s.Vertices {
		sl.ReportError(s.Start, "Start", "Start", "ltvertices", limit)
	}
	for i, e := range s.Edges {
		if e.From >= s.Vertices {
			sl.ReportError(e.From, fmt.Sprintf("Edges[%d].From", i), "From", "ltvertices", limit)
		}
		if e.To >= s.Vertices {
			sl.ReportError(e.To, fmt.Sprintf("Edges[%d].To", i), "To", "ltvertices", limit)
		}
	}
}

// Validate checks the document without building a graph.
// Failures wrap ErrInvalidSpec and the underlying validator.ValidationErrors.
func (s *Spec) Validate() error {
	if s == nil {
		return fmt.Errorf("%w: nil document", ErrInvalidSpec)
	}
	if err := specValidate.Struct(s); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSpec, err)
	}

	return nil
}
