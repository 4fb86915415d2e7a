package utils

import "github.com/google/uuid"

// UUIDGenerator produces identifiers for stored media blobs. Version 7
// UUIDs are time-ordered, which keeps freshly uploaded blobs adjacent when
// the file store lists them.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a new UUIDv7 string, falling back to a random v4 when
// the monotonic source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
