package dnd5e

//go:generate mockgen -destination=mock/mock_client.go -package=mockdnd5e . Client

import (
	"github.com/KirkDiggler/dnd-levelup/internal/domain/rulebook"
)

// Client is the slice of the D&D 5e API level-up reads
type Client interface {
	GetClassFeatures(classKey string, level int) ([]*rulebook.Feature, error)
	GetSpell(key string) (*rulebook.Spell, error)
}
