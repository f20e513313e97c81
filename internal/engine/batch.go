package engine

import "github.com/google/uuid"

// BatchTokenGenerator names the batch that groups one Ingest call's
// sightings.
type BatchTokenGenerator interface {
	Generate() string
}

// UUIDv7Generator is the default generator. UUIDv7 tokens sort by creation
// time, so batches list in import order.
type UUIDv7Generator struct{}

// Generate panics if the system random source fails.
func (UUIDv7Generator) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}

// BatchFunc adapts a plain function to BatchTokenGenerator.
type BatchFunc func() string

func (f BatchFunc) Generate() string { return f() }
