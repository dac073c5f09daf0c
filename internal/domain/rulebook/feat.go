package rulebook

import (
	"github.com/KirkDiggler/dnd-levelup/internal/domain/prerequisite"
	"github.com/KirkDiggler/dnd-levelup/internal/domain/shared"
)

type Feat struct {
	Key            string                  `json:"key"`
	Name           string                  `json:"name"`
	Prerequisite   prerequisite.Expression `json:"-"`
	GrantsFeatures []*Feature              `json:"grants_features,omitempty"`
	AbilityBonus   *FeatBonus              `json:"ability_bonus,omitempty"`
}

// FeatBonus is either a fixed increase or Amount to one ability picked from Choices
type FeatBonus struct {
	Fixed   map[shared.Attribute]int `json:"fixed,omitempty"`
	Choices []shared.Attribute       `json:"choices,omitempty"`
	Amount  int                      `json:"amount,omitempty"`
}

// NeedsPick reports whether the player has to choose the ability
func (b *FeatBonus) NeedsPick() bool {
	return b != nil && len(b.Choices) > 0
}

// Allows reports whether a is one of the pickable abilities
func (b *FeatBonus) Allows(a shared.Attribute) bool {
	for _, c := range b.Choices {
		if c == a {
			return true
		}
	}
	return false
}
