// Package uuid hands out identifiers behind an interface so tests can pin them
package uuid

//go:generate mockgen -destination=mock/mock_generator.go -package=mockuuid -source=uuid.go

import (
	"github.com/google/uuid"
)

// Generator hands out transaction IDs
type Generator interface {
	New() string
}

// V7Generator returns time-ordered UUIDv7 strings, so applied transaction
// IDs sort in the order they were issued
type V7Generator struct{}

func (V7Generator) New() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// NewGenerator returns the default generator
func NewGenerator() Generator {
	return V7Generator{}
}
