package bonus

import (
	"fmt"
	"sort"

	"github.com/KirkDiggler/dnd-levelup/internal/domain/shared"
	dnderr "github.com/KirkDiggler/dnd-levelup/internal/errors"
)

// Entry is one labeled contribution to an ability
type Entry struct {
	Ability shared.Attribute `json:"ability"`
	Amount  int              `json:"amount"`
	Source  string           `json:"source"`
}

type AbilityBreakdown struct {
	Ability shared.Attribute `json:"ability"`
	Base    int              `json:"base"`
	Bonus   int              `json:"bonus"`
	Total   int              `json:"total"`
	Entries []Entry          `json:"entries"`
}

// Modifier is derived from Total on every call
func (a *AbilityBreakdown) Modifier() int {
	return shared.Modifier(a.Total)
}

// Breakdown is the per-ability result of Compute
type Breakdown struct {
	Abilities map[shared.Attribute]*AbilityBreakdown `json:"abilities"`
}

// Scores returns the final totals
func (b *Breakdown) Scores() shared.AbilityScores {
	out := make(shared.AbilityScores, len(b.Abilities))
	for a, ab := range b.Abilities {
		out[a] = ab.Total
	}
	return out
}

// Get returns the breakdown for one ability, never nil
func (b *Breakdown) Get(a shared.Attribute) *AbilityBreakdown {
	if ab, ok := b.Abilities[a]; ok {
		return ab
	}
	return &AbilityBreakdown{Ability: a}
}

// defaultScore stands in for an ability missing from the base scores
const defaultScore = 10

// Compute collects raw entries from every source in order, then merges
// entries sharing a label per ability. Every ability in base or touched by a
// source is present in the result. An ability only touched by a source
// starts from defaultScore.
func Compute(base shared.AbilityScores, sources []Source) (*Breakdown, error) {
	if err := checkModes(sources); err != nil {
		return nil, err
	}

	raw := make(map[shared.Attribute][]Entry)

	for i := range sources {
		entries, err := sourceEntries(&sources[i])
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			raw[e.Ability] = append(raw[e.Ability], e)
		}
	}

	result := &Breakdown{Abilities: make(map[shared.Attribute]*AbilityBreakdown)}
	for _, a := range shared.Attributes {
		score, inBase := base[a]
		if !inBase {
			if len(raw[a]) == 0 {
				continue
			}
			score = defaultScore
		}
		merged := mergeByLabel(raw[a])
		ab := &AbilityBreakdown{
			Ability: a,
			Base:    score,
			Entries: merged,
		}
		for _, e := range merged {
			ab.Bonus += e.Amount
		}
		ab.Total = ab.Base + ab.Bonus
		result.Abilities[a] = ab
	}

	return result, nil
}

// checkModes rejects an entity contributing through both its fixed and its
// flexible half, even when split across two sources
func checkModes(sources []Source) error {
	type entity struct{ label, key string }
	seen := make(map[entity]Mode)

	var reasons []string
	for i := range sources {
		src := &sources[i]
		mode := src.Mode
		if mode == "" {
			mode = ModeFixed
		}
		id := entity{label: src.Label, key: src.EntityKey}
		prev, ok := seen[id]
		if !ok {
			seen[id] = mode
			continue
		}
		if prev != mode {
			reasons = append(reasons, fmt.Sprintf("%s %s applies both fixed and flexible bonuses", src.Label, src.EntityKey))
		}
	}

	if len(reasons) > 0 {
		return dnderr.Validation(dnderr.ReasonInvalidBonusPick, reasons...)
	}
	return nil
}

func sourceEntries(src *Source) ([]Entry, error) {
	switch src.Mode {
	case ModeFlexible:
		return flexibleEntries(src)
	case ModeFixed, "":
		keys := make([]shared.Attribute, 0, len(src.Fixed))
		for a := range src.Fixed {
			keys = append(keys, a)
		}
		sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

		entries := make([]Entry, 0, len(keys))
		for _, a := range keys {
			entries = append(entries, Entry{Ability: a, Amount: src.Fixed[a], Source: src.Label})
		}
		return entries, nil
	default:
		return nil, dnderr.InvalidArgumentf("bonus source %s has unknown mode %q", src.EntityKey, src.Mode)
	}
}

func flexibleEntries(src *Source) ([]Entry, error) {
	var reasons []string
	var entries []Entry
	duplicates := 0
	pickedBy := make(map[shared.Attribute]string)

	for gi := range src.Groups {
		group := &src.Groups[gi]
		picks := src.Picks[group.Name]

		if len(picks) > group.ChoiceCount {
			reasons = append(reasons, fmt.Sprintf("%s %s allows %d picks, got %d",
				src.EntityKey, group.Name, group.ChoiceCount, len(picks)))
		}

		for _, a := range picks {
			if !group.allows(a) {
				reasons = append(reasons, fmt.Sprintf("%s %s cannot target %s", src.EntityKey, group.Name, a))
				continue
			}
			if other, ok := pickedBy[a]; ok && !group.AllowRepeats {
				duplicates++
				if other == group.Name {
					reasons = append(reasons, fmt.Sprintf("%s %s picks %s more than once", src.EntityKey, group.Name, a))
				} else {
					reasons = append(reasons, fmt.Sprintf("%s picks %s in both %s and %s", src.EntityKey, a, other, group.Name))
				}
				continue
			}
			pickedBy[a] = group.Name
			entries = append(entries, Entry{Ability: a, Amount: group.Value, Source: src.Label})
		}
	}

	for name := range src.Picks {
		if !hasGroup(src.Groups, name) {
			reasons = append(reasons, fmt.Sprintf("%s has no bonus group %s", src.EntityKey, name))
		}
	}

	if len(reasons) > 0 {
		sort.Strings(reasons)
		reason := dnderr.ReasonInvalidBonusPick
		if duplicates == len(reasons) {
			reason = dnderr.ReasonDuplicateOption
		}
		return nil, dnderr.Validation(reason, reasons...)
	}
	return entries, nil
}

func hasGroup(groups []FlexibleGroup, name string) bool {
	for _, g := range groups {
		if g.Name == name {
			return true
		}
	}
	return false
}

// mergeByLabel sums entries sharing a label, keeping first-seen order
func mergeByLabel(entries []Entry) []Entry {
	index := make(map[string]int)
	var merged []Entry
	for _, e := range entries {
		if i, ok := index[e.Source]; ok {
			merged[i].Amount += e.Amount
			continue
		}
		index[e.Source] = len(merged)
		merged = append(merged, e)
	}
	return merged
}
