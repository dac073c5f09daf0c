package spellcasting

import (
	"fmt"

	"github.com/KirkDiggler/dnd-levelup/internal/domain/character"
	"github.com/KirkDiggler/dnd-levelup/internal/domain/rulebook"
	"github.com/KirkDiggler/dnd-levelup/internal/domain/shared"
)

// ClassSource is the catalog slice the calculator reads
type ClassSource interface {
	GetClass(key string) (*rulebook.Class, error)
	GetSubclass(key string) (*rulebook.Subclass, error)
}

type Calculator struct {
	classes ClassSource
}

type CalculatorConfig struct {
	Classes ClassSource
}

func NewCalculator(cfg *CalculatorConfig) *Calculator {
	if cfg == nil {
		panic("config cannot be nil")
	}
	if cfg.Classes == nil {
		panic("class source is required")
	}
	return &Calculator{classes: cfg.Classes}
}

// SpellCount is the spells-known or prepared figure of one line
type SpellCount struct {
	Kind  rulebook.KnownStrategy `json:"kind"`
	Value int                    `json:"value"`

	// Formula is set for prepared casters, e.g. "floor(5/1) + 3"
	Formula string `json:"formula,omitempty"`
}

// CountsLine is the spellcasting summary of one class or subclass
type CountsLine struct {
	Key         string     `json:"key"`
	Name        string     `json:"name"`
	ClassKey    string     `json:"class_key"`
	SubclassKey string     `json:"subclass_key,omitempty"`
	Level       int        `json:"level"`
	Cantrips    int        `json:"cantrips"`
	Spells      SpellCount `json:"spells"`

	// Spellbook is the number of spells a wizard has copied at this level
	Spellbook int `json:"spellbook,omitempty"`
}

// CountsFor returns one line per spellcasting class or subclass, in entry
// order, indexed by that class's own level. Lines sharing a key are kept once.
func (c *Calculator) CountsFor(entries []character.ClassEntry, scores shared.AbilityScores) ([]*CountsLine, error) {
	var lines []*CountsLine
	seen := make(map[string]bool)

	add := func(line *CountsLine) {
		if line == nil || seen[line.Key] {
			return
		}
		seen[line.Key] = true
		lines = append(lines, line)
	}

	for _, entry := range entries {
		class, err := c.classes.GetClass(entry.ClassKey)
		if err != nil {
			return nil, err
		}
		if class.Spellcasting != nil {
			add(classLine(class, entry.Level, scores))
		}

		if entry.SubclassKey == "" {
			continue
		}
		sub, err := c.classes.GetSubclass(entry.SubclassKey)
		if err != nil {
			return nil, err
		}
		if sub.Spellcasting != nil {
			add(subclassLine(sub, entry.Level, scores))
		}
	}

	return lines, nil
}

func classLine(class *rulebook.Class, level int, scores shared.AbilityScores) *CountsLine {
	prog := class.Spellcasting
	line := &CountsLine{
		Key:      fmt.Sprintf("class:%s:%d", class.Key, level),
		Name:     class.Name,
		ClassKey: class.Key,
		Level:    level,
		Cantrips: prog.CantripsAt(level),
		Spells:   spellCount(prog, level, scores),
	}
	if prog.Known == rulebook.KnownPrepared {
		line.Key = fmt.Sprintf("class:%s:prepared:%d", class.Key, level)
	}
	if prog.SpellbookPerLevel > 0 {
		// six at first level, then SpellbookPerLevel per level after
		line.Spellbook = 6 + (level-1)*prog.SpellbookPerLevel
	}
	return line
}

func subclassLine(sub *rulebook.Subclass, level int, scores shared.AbilityScores) *CountsLine {
	prog := sub.Spellcasting
	return &CountsLine{
		Key:         fmt.Sprintf("subclass:%s:%d", sub.Key, level),
		Name:        sub.Name,
		ClassKey:    sub.ClassKey,
		SubclassKey: sub.Key,
		Level:       level,
		Cantrips:    prog.CantripsAt(level),
		Spells:      spellCount(prog, level, scores),
	}
}

func spellCount(prog *rulebook.SpellcastingProgression, level int, scores shared.AbilityScores) SpellCount {
	if prog.Known == rulebook.KnownPrepared && prog.Prepared != nil {
		mod := scores.Modifier(prog.Ability)
		return SpellCount{
			Kind:    rulebook.KnownPrepared,
			Value:   prog.Prepared.Count(level, mod),
			Formula: fmt.Sprintf("floor(%d/%d) + %d", level, prog.Prepared.Divisor, mod),
		}
	}
	return SpellCount{
		Kind:  rulebook.KnownFixed,
		Value: prog.KnownAt(level),
	}
}

// progressionFor returns the class or subclass progression of an entry, nil for non-casters
func (c *Calculator) progressionFor(entry character.ClassEntry) (*rulebook.SpellcastingProgression, error) {
	class, err := c.classes.GetClass(entry.ClassKey)
	if err != nil {
		return nil, err
	}
	if class.Spellcasting != nil {
		return class.Spellcasting, nil
	}
	if entry.SubclassKey == "" {
		return nil, nil
	}
	sub, err := c.classes.GetSubclass(entry.SubclassKey)
	if err != nil {
		return nil, err
	}
	return sub.Spellcasting, nil
}

// HasSpellcasting reports whether any entry can cast spells at its current level
func (c *Calculator) HasSpellcasting(entries []character.ClassEntry) (bool, error) {
	for _, entry := range entries {
		prog, err := c.progressionFor(entry)
		if err != nil {
			return false, err
		}
		if prog != nil && (prog.MaxSpellLevel(entry.Level) > 0 || prog.CantripsAt(entry.Level) > 0) {
			return true, nil
		}
	}
	return false, nil
}
