package rulebook

import "github.com/KirkDiggler/dnd-levelup/internal/domain/shared"

// CasterType decides how a class contributes to multiclass caster level
type CasterType string

const (
	CasterFull      CasterType = "full"
	CasterHalf      CasterType = "half"
	CasterThird     CasterType = "third"
	CasterArtificer CasterType = "artificer"
	CasterPact      CasterType = "pact"
)

// KnownStrategy is how the spells-known count is obtained
type KnownStrategy string

const (
	KnownFixed    KnownStrategy = "fixed_known"
	KnownPrepared KnownStrategy = "formula_prepared"
)

// PreparedFormula is max(Minimum, floor(level/Divisor) + modifier), zero below MinLevel
type PreparedFormula struct {
	Divisor  int `json:"divisor"`
	MinLevel int `json:"min_level"`
	Minimum  int `json:"minimum"`
}

// Count evaluates the formula for a class level and ability modifier
func (f *PreparedFormula) Count(level, modifier int) int {
	if level < f.MinLevel {
		return 0
	}
	n := level/f.Divisor + modifier
	if n < f.Minimum {
		return f.Minimum
	}
	return n
}

// SpellcastingProgression is a class or subclass spellcasting table. Tables
// are indexed by the owning class level, index 0 is level 1.
type SpellcastingProgression struct {
	Caster  CasterType       `json:"caster"`
	Ability shared.Attribute `json:"ability"`

	// SpellList is the class list spells are learned from
	SpellList string `json:"spell_list"`

	Cantrips    []int            `json:"cantrips"`
	Known       KnownStrategy    `json:"known"`
	SpellsKnown []int            `json:"spells_known,omitempty"`
	Prepared    *PreparedFormula `json:"prepared,omitempty"`

	// SpellbookPerLevel is the number of spells copied into a spellbook each level
	SpellbookPerLevel int `json:"spellbook_per_level,omitempty"`
}

func tableAt(table []int, level int) int {
	if level < 1 || len(table) == 0 {
		return 0
	}
	if level > len(table) {
		level = len(table)
	}
	return table[level-1]
}

// CantripsAt is the cantrips-known count at classLevel
func (p *SpellcastingProgression) CantripsAt(classLevel int) int {
	return tableAt(p.Cantrips, classLevel)
}

// KnownAt is the fixed spells-known count at classLevel; zero for prepared casters
func (p *SpellcastingProgression) KnownAt(classLevel int) int {
	if p.Known != KnownFixed {
		return 0
	}
	return tableAt(p.SpellsKnown, classLevel)
}

// MaxSpellLevel is the highest spell level the class alone can learn at classLevel
func (p *SpellcastingProgression) MaxSpellLevel(classLevel int) int {
	if classLevel < 1 {
		return 0
	}
	switch p.Caster {
	case CasterFull:
		return min(9, (classLevel+1)/2)
	case CasterHalf:
		if classLevel < 2 {
			return 0
		}
		return min(5, (classLevel+3)/4)
	case CasterArtificer:
		return min(5, (classLevel+3)/4)
	case CasterThird:
		switch {
		case classLevel >= 19:
			return 4
		case classLevel >= 13:
			return 3
		case classLevel >= 7:
			return 2
		case classLevel >= 3:
			return 1
		}
		return 0
	case CasterPact:
		return min(5, (classLevel+1)/2)
	}
	return 0
}
