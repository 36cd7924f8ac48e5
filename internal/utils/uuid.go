package utils

import "github.com/google/uuid"

// UUIDGenerator issues identifiers for server-side entities: users,
// verifications, rentals. Prefers UUIDv7 so ids of entities created later
// sort after earlier ones.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a new UUIDv7 string, falling back to a random UUIDv4
// when the system clock cannot produce a v7 value.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
