package algebra

import (
	"errors"
	"fmt"
)

var (
	// ErrAxiomViolation indicates a required structural law does not hold.
	ErrAxiomViolation = errors.New("algebra: axiom violation")
	// ErrMalformed indicates incomplete or inconsistent operation tables.
	ErrMalformed = errors.New("algebra: malformed operation tables")
	// ErrNotBijection indicates a symbol map is not a bijection over the carrier.
	ErrNotBijection = errors.New("algebra: symbol map is not a bijection")
	// ErrUnknownVariant indicates a variant name that is not recognised.
	ErrUnknownVariant = errors.New("algebra: unknown variant")
)

// AxiomError reports the first law of a variant's pipeline that failed.
type AxiomError struct {
	// Variant is the variant whose pipeline was running.
	Variant Variant

	// Law is the stable identifier of the failed law, e.g. "join_commutative".
	Law string

	// Message is the human-readable description, e.g. "join is not commutative".
	Message string
}

// Error implements the error interface.
func (e *AxiomError) Error() string {
	return e.Message
}

// Is makes errors.Is(err, ErrAxiomViolation) match.
func (e *AxiomError) Is(target error) bool {
	return target == ErrAxiomViolation
}

// InputError reports operation tables that violate the carrier contract.
type InputError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *InputError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("malformed input: %s", e.Message)
	}
	return fmt.Sprintf("malformed input: %s: %s", e.Field, e.Message)
}

// Unwrap returns ErrMalformed.
func (e *InputError) Unwrap() error {
	return ErrMalformed
}

// IsAxiomError reports whether err carries an AxiomError and returns it.
func IsAxiomError(err error) (*AxiomError, bool) {
	var ae *AxiomError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}
