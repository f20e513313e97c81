package engine

import (
	"fmt"

	"github.com/roach88/rbin/internal/algebra"
)

// RejectionCode categorizes why a raw model was not catalogued.
type RejectionCode string

const (
	// RejectMalformed indicates tables that break the carrier contract.
	RejectMalformed RejectionCode = "MALFORMED"

	// RejectAxiom indicates a law of the classified variant does not hold.
	RejectAxiom RejectionCode = "AXIOM_VIOLATION"

	// RejectTooLarge indicates a carrier above the engine's cardinality limit.
	RejectTooLarge RejectionCode = "TOO_LARGE"
)

// Rejection describes one raw model that did not make it into the catalogue.
// Rejections are reported, never returned as errors: one bad model does not
// abort the batch.
type Rejection struct {
	Label   string        `json:"label"`
	Code    RejectionCode `json:"code"`
	Variant string        `json:"variant,omitempty"`
	Law     string        `json:"law,omitempty"`
	Message string        `json:"message"`
}

// Error implements the error interface so a rejection can be logged or
// wrapped like any other error.
func (r Rejection) Error() string {
	return fmt.Sprintf("%s: %s: %s", r.Label, r.Code, r.Message)
}

// reject converts a construction error into a Rejection.
func reject(label string, variant algebra.Variant, err error) Rejection {
	if ae, ok := algebra.IsAxiomError(err); ok {
		return Rejection{
			Label:   label,
			Code:    RejectAxiom,
			Variant: ae.Variant.String(),
			Law:     ae.Law,
			Message: ae.Message,
		}
	}
	return Rejection{
		Label:   label,
		Code:    RejectMalformed,
		Variant: variant.String(),
		Message: err.Error(),
	}
}
