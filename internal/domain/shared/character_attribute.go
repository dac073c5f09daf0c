package shared

import "fmt"

type Attribute string

var Attributes = []Attribute{AttributeStrength, AttributeDexterity, AttributeConstitution, AttributeIntelligence, AttributeWisdom, AttributeCharisma}

const (
	AttributeNone         Attribute = ""
	AttributeStrength     Attribute = "STR"
	AttributeDexterity    Attribute = "DEX"
	AttributeConstitution Attribute = "CON"
	AttributeIntelligence Attribute = "INT"
	AttributeWisdom       Attribute = "WIS"
	AttributeCharisma     Attribute = "CHA"
)

// ParseAttribute accepts the short upper-case form used by the catalog and the API
func ParseAttribute(s string) (Attribute, error) {
	for _, a := range Attributes {
		if string(a) == s {
			return a, nil
		}
	}
	return AttributeNone, fmt.Errorf("unknown attribute %q", s)
}

// Modifier is floor((score-10)/2). Go integer division truncates, so negative
// odd values are adjusted.
func Modifier(score int) int {
	d := score - 10
	if d < 0 && d%2 != 0 {
		return d/2 - 1
	}
	return d / 2
}

// AbilityScores is a full set of scores keyed by attribute
type AbilityScores map[Attribute]int

// Clone returns an independent copy
func (s AbilityScores) Clone() AbilityScores {
	out := make(AbilityScores, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Modifier returns the modifier for one attribute, 0 scores count as 10
func (s AbilityScores) Modifier(a Attribute) int {
	score, ok := s[a]
	if !ok {
		return 0
	}
	return Modifier(score)
}
