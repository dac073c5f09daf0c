package catalog

import (
	"github.com/KirkDiggler/dnd-levelup/internal/domain/rulebook"
	"github.com/KirkDiggler/dnd-levelup/internal/domain/shared"
)

// Spellcasting tables indexed by class level, index 0 is level 1

var (
	bardCantrips      = []int{2, 2, 2, 3, 3, 3, 3, 3, 3, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4}
	bardKnown         = []int{4, 5, 6, 7, 8, 9, 10, 11, 12, 14, 15, 15, 16, 18, 19, 19, 20, 22, 22, 22}
	sorcererCantrips  = []int{4, 4, 4, 5, 5, 5, 5, 5, 5, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6}
	sorcererKnown     = []int{2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 12, 13, 13, 14, 14, 15, 15, 15, 15}
	warlockCantrips   = bardCantrips
	warlockKnown      = sorcererKnown
	rangerCantrips    = make([]int, 20)
	rangerKnown       = []int{0, 2, 3, 3, 4, 4, 5, 5, 6, 6, 7, 7, 8, 8, 9, 9, 10, 10, 11, 11}
	clericCantrips    = []int{3, 3, 3, 4, 4, 4, 4, 4, 4, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5}
	druidCantrips     = []int{2, 2, 2, 3, 3, 3, 3, 3, 3, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4}
	wizardCantrips    = clericCantrips
	paladinCantrips   = make([]int, 20)
	artificerCantrips = []int{2, 2, 2, 2, 2, 2, 2, 2, 2, 3, 3, 3, 3, 3, 3, 3, 4, 4, 4, 4}
	thirdCantrips     = []int{0, 0, 2, 2, 2, 2, 2, 2, 2, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3}
	thirdKnown        = []int{0, 0, 3, 4, 4, 4, 5, 6, 6, 7, 8, 8, 9, 10, 10, 11, 11, 11, 12, 13}
)

func fixedKnown(caster rulebook.CasterType, ability shared.Attribute, list string, cantrips, known []int) *rulebook.SpellcastingProgression {
	return &rulebook.SpellcastingProgression{
		Caster:      caster,
		Ability:     ability,
		SpellList:   list,
		Cantrips:    cantrips,
		Known:       rulebook.KnownFixed,
		SpellsKnown: known,
	}
}

func prepared(caster rulebook.CasterType, ability shared.Attribute, list string, cantrips []int, divisor, minLevel int) *rulebook.SpellcastingProgression {
	return &rulebook.SpellcastingProgression{
		Caster:    caster,
		Ability:   ability,
		SpellList: list,
		Cantrips:  cantrips,
		Known:     rulebook.KnownPrepared,
		Prepared: &rulebook.PreparedFormula{
			Divisor:  divisor,
			MinLevel: minLevel,
			Minimum:  1,
		},
	}
}

func wizardProgression() *rulebook.SpellcastingProgression {
	p := prepared(rulebook.CasterFull, shared.AttributeIntelligence, "wizard", wizardCantrips, 1, 1)
	p.SpellbookPerLevel = 2
	return p
}

func thirdCaster() *rulebook.SpellcastingProgression {
	return fixedKnown(rulebook.CasterThird, shared.AttributeIntelligence, "wizard", thirdCantrips, thirdKnown)
}
