package utils

import "github.com/google/uuid"

// UUIDGenerator produces UUIDv4 strings for project and task identifiers.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	return uuid.NewString()
}
