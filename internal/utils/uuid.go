package utils

import "github.com/google/uuid"

// UUIDGenerator hands out user identifiers. Version 7 keeps identifiers
// time-sortable, which matches the directory's creation-ordered listing;
// the random v4 fallback covers the rare entropy failure.
type UUIDGenerator struct{}

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
