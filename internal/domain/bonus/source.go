package bonus

import "github.com/KirkDiggler/dnd-levelup/internal/domain/shared"

// Mode selects which half of a source applies. A source never applies both.
type Mode string

const (
	ModeFixed    Mode = "fixed"
	ModeFlexible Mode = "flexible"
)

// Common source labels
const (
	LabelRace    = "race"
	LabelSubrace = "subrace"
	LabelFeat    = "feat"
	LabelASI     = "asi"
)

// FlexibleGroup offers ChoiceCount picks of Value among Members (any ability when empty)
type FlexibleGroup struct {
	Name         string             `json:"name"`
	Value        int                `json:"value"`
	ChoiceCount  int                `json:"choice_count"`
	Members      []shared.Attribute `json:"members,omitempty"`
	AllowRepeats bool               `json:"allow_repeats,omitempty"`
}

func (g *FlexibleGroup) allows(a shared.Attribute) bool {
	if len(g.Members) == 0 {
		return true
	}
	for _, m := range g.Members {
		if m == a {
			return true
		}
	}
	return false
}

// Source is one entity contributing ability bonuses (a race, a feat, an ASI)
type Source struct {
	// Label is the breakdown line the source contributes to
	Label     string `json:"label"`
	EntityKey string `json:"entity_key"`
	Mode      Mode   `json:"mode"`

	Fixed  map[shared.Attribute]int `json:"fixed,omitempty"`
	Groups []FlexibleGroup          `json:"groups,omitempty"`

	// Picks are keyed by group name
	Picks map[string][]shared.Attribute `json:"picks,omitempty"`
}

// FixedSource builds a fixed-mode source
func FixedSource(label, entityKey string, amounts map[shared.Attribute]int) Source {
	return Source{
		Label:     label,
		EntityKey: entityKey,
		Mode:      ModeFixed,
		Fixed:     amounts,
	}
}
