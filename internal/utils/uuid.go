package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered identifiers used as relay message
// sequence numbers and request trace ids.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7 string, falling back to a random UUIDv4 if the
// clock source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// GenerateBytes returns the 16 raw bytes of a new UUIDv7.
func (g *UUIDGenerator) GenerateBytes() []byte {
	v7, err := uuid.NewV7()
	if err != nil {
		v7 = uuid.New()
	}

	b := v7[:]
	return b
}
