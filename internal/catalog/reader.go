package catalog

//go:generate mockgen -destination=mock/mock_reader.go -package=mockcatalog -source=reader.go

import (
	"github.com/KirkDiggler/dnd-levelup/internal/domain/rulebook"
)

// Reader is read-only, versioned ruleset data. Implementations must be safe
// for concurrent use.
type Reader interface {
	RulesetVersion() string

	GetClass(key string) (*rulebook.Class, error)
	GetSubclass(key string) (*rulebook.Subclass, error)

	// GetClassFeatures returns the features gained at exactly level
	GetClassFeatures(classKey string, level int) ([]*rulebook.Feature, error)
	GetSubclassFeatures(subclassKey string, level int) ([]*rulebook.Feature, error)

	// GetChoicePools returns the pools owned by a class or subclass key
	GetChoicePools(ownerKey string) ([]*rulebook.ChoicePool, error)
	GetChoicePool(poolKey string) (*rulebook.ChoicePool, error)

	// GetOptionalFeatures returns the opt-in features of a class
	GetOptionalFeatures(classKey string) ([]*rulebook.OptionalFeature, error)

	// GetSpellTable returns the progression of a class or subclass key
	GetSpellTable(key string) (*rulebook.SpellcastingProgression, error)

	GetFeat(key string) (*rulebook.Feat, error)
	ListFeats() ([]*rulebook.Feat, error)
	GetSpell(key string) (*rulebook.Spell, error)
}
