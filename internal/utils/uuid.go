package utils

import "github.com/google/uuid"

// UUIDGenerator produces request identifiers. UUIDv7 combines a millisecond
// timestamp with a random suffix, which keeps request IDs sortable in logs.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
