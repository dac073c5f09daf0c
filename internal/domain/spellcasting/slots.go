package spellcasting

import (
	"github.com/KirkDiggler/dnd-levelup/internal/domain/character"
	"github.com/KirkDiggler/dnd-levelup/internal/domain/rulebook"
)

// multiclassSlots is the shared spell slot table indexed by caster level
var multiclassSlots = [21][9]int{
	{},
	{2},
	{3},
	{4, 2},
	{4, 3},
	{4, 3, 2},
	{4, 3, 3},
	{4, 3, 3, 1},
	{4, 3, 3, 2},
	{4, 3, 3, 3, 1},
	{4, 3, 3, 3, 2},
	{4, 3, 3, 3, 2, 1},
	{4, 3, 3, 3, 2, 1},
	{4, 3, 3, 3, 2, 1, 1},
	{4, 3, 3, 3, 2, 1, 1},
	{4, 3, 3, 3, 2, 1, 1, 1},
	{4, 3, 3, 3, 2, 1, 1, 1},
	{4, 3, 3, 3, 2, 1, 1, 1, 1},
	{4, 3, 3, 3, 3, 1, 1, 1, 1},
	{4, 3, 3, 3, 3, 2, 1, 1, 1},
	{4, 3, 3, 3, 3, 2, 2, 1, 1},
}

// SlotTable is the derived slot state of a character
type SlotTable struct {
	CasterLevel int                 `json:"caster_level"`
	Slots       []int               `json:"slots"`
	Pact        character.PactSlots `json:"pact"`
	PactLevel   int                 `json:"pact_level"`
}

type casterContribution struct {
	caster rulebook.CasterType
	level  int
}

// Slots computes the shared slot table and pact slots for the given classes
func (c *Calculator) Slots(entries []character.ClassEntry) (*SlotTable, error) {
	var contributions []casterContribution
	table := &SlotTable{}

	for _, entry := range entries {
		prog, err := c.progressionFor(entry)
		if err != nil {
			return nil, err
		}
		if prog == nil {
			continue
		}
		if prog.Caster == rulebook.CasterPact {
			table.PactLevel += entry.Level
			continue
		}
		contributions = append(contributions, casterContribution{caster: prog.Caster, level: entry.Level})
	}

	table.CasterLevel = casterLevel(contributions)
	table.Slots = slotsFor(table.CasterLevel)
	table.Pact = pactSlots(table.PactLevel)

	return table, nil
}

func casterLevel(contributions []casterContribution) int {
	if len(contributions) == 1 {
		return singleClassCasterLevel(contributions[0])
	}

	var full, half, third, artificer int
	for _, cc := range contributions {
		switch cc.caster {
		case rulebook.CasterFull:
			full += cc.level
		case rulebook.CasterHalf:
			half += cc.level
		case rulebook.CasterThird:
			third += cc.level
		case rulebook.CasterArtificer:
			artificer += cc.level
		}
	}
	return full + half/2 + third/3 + (artificer+1)/2
}

func singleClassCasterLevel(cc casterContribution) int {
	switch cc.caster {
	case rulebook.CasterFull:
		return cc.level
	case rulebook.CasterHalf:
		if cc.level < 2 {
			return 0
		}
		return (cc.level + 1) / 2
	case rulebook.CasterArtificer:
		return (cc.level + 1) / 2
	case rulebook.CasterThird:
		if cc.level < 3 {
			return 0
		}
		return (cc.level + 2) / 3
	}
	return 0
}

func slotsFor(casterLevel int) []int {
	if casterLevel <= 0 {
		return nil
	}
	if casterLevel > 20 {
		casterLevel = 20
	}
	row := multiclassSlots[casterLevel]
	n := len(row)
	for n > 0 && row[n-1] == 0 {
		n--
	}
	return append([]int(nil), row[:n]...)
}

func pactSlots(level int) character.PactSlots {
	if level <= 0 {
		return character.PactSlots{}
	}
	count := 2
	switch {
	case level == 1:
		count = 1
	case level >= 17:
		count = 4
	case level >= 11:
		count = 3
	}
	return character.PactSlots{
		Count:     count,
		SlotLevel: min(5, (level+1)/2),
	}
}
