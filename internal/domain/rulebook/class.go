package rulebook

import "sort"

// Class is the per-level progression of one class under a ruleset
type Class struct {
	Key           string `json:"key"`
	Name          string `json:"name"`
	HitDie        int    `json:"hit_die"`
	SubclassLevel int    `json:"subclass_level"`
	ASILevels     []int  `json:"asi_levels"`

	// Subclasses lists the subclass keys that belong to this class
	Subclasses []string `json:"subclasses"`

	Features     map[int][]*Feature       `json:"features"`
	Spellcasting *SpellcastingProgression `json:"spellcasting,omitempty"`
}

// IsASILevel reports whether the class grants an ability score improvement at level
func (c *Class) IsASILevel(level int) bool {
	for _, l := range c.ASILevels {
		if l == level {
			return true
		}
	}
	return false
}

// HasSubclass reports whether key is one of the class's subclasses
func (c *Class) HasSubclass(key string) bool {
	for _, s := range c.Subclasses {
		if s == key {
			return true
		}
	}
	return false
}

// FeaturesAt returns the features gained at exactly level
func (c *Class) FeaturesAt(level int) []*Feature {
	return c.Features[level]
}

// AverageHitPointGain is the fixed hit point increase per level
func (c *Class) AverageHitPointGain(conModifier int) int {
	gain := c.HitDie/2 + 1 + conModifier
	if gain < 1 {
		return 1
	}
	return gain
}

// Subclass carries its own feature table, keyed by the parent class level
type Subclass struct {
	Key      string             `json:"key"`
	Name     string             `json:"name"`
	ClassKey string             `json:"class_key"`
	Features map[int][]*Feature `json:"features"`

	// Spellcasting is set for third casters such as the Eldritch Knight
	Spellcasting *SpellcastingProgression `json:"spellcasting,omitempty"`
}

// FeaturesThrough returns every subclass feature with level <= classLevel,
// ordered by level then key
func (s *Subclass) FeaturesThrough(classLevel int) []*Feature {
	levels := make([]int, 0, len(s.Features))
	for l := range s.Features {
		if l <= classLevel {
			levels = append(levels, l)
		}
	}
	sort.Ints(levels)

	var out []*Feature
	for _, l := range levels {
		fs := append([]*Feature(nil), s.Features[l]...)
		sort.Slice(fs, func(i, j int) bool { return fs[i].Key < fs[j].Key })
		out = append(out, fs...)
	}
	return out
}
