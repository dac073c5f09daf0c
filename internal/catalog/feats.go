package catalog

import (
	"github.com/KirkDiggler/dnd-levelup/internal/domain/prerequisite"
	"github.com/KirkDiggler/dnd-levelup/internal/domain/rulebook"
	"github.com/KirkDiggler/dnd-levelup/internal/domain/shared"
)

var (
	allAbilities = shared.Attributes
	str          = shared.AttributeStrength
	dex          = shared.AttributeDexterity
	con          = shared.AttributeConstitution
	intl         = shared.AttributeIntelligence
	wis          = shared.AttributeWisdom
	cha          = shared.AttributeCharisma
)

func feat(name, prereq string) *rulebook.Feat {
	return &rulebook.Feat{
		Key:            slug(name),
		Name:           name,
		Prerequisite:   prerequisite.MustParse(prereq),
		GrantsFeatures: featFeature(name),
	}
}

func halfFeat(name, prereq string, choices ...shared.Attribute) *rulebook.Feat {
	ft := feat(name, prereq)
	if len(choices) == 1 {
		ft.AbilityBonus = &rulebook.FeatBonus{Fixed: map[shared.Attribute]int{choices[0]: 1}}
		return ft
	}
	ft.AbilityBonus = &rulebook.FeatBonus{Choices: choices, Amount: 1}
	return ft
}

func phbFeats() []*rulebook.Feat {
	return []*rulebook.Feat{
		feat("Alert", ""),
		halfFeat("Actor", "", cha),
		halfFeat("Athlete", "", str, dex),
		feat("Charger", ""),
		feat("Crossbow Expert", ""),
		feat("Defensive Duelist", `{"abilityScore":{"DEX":13}}`),
		feat("Dual Wielder", ""),
		feat("Dungeon Delver", ""),
		halfFeat("Durable", "", con),
		feat("Elemental Adept", `{"spellcasting":true}`),
		halfFeat("Elven Accuracy", `{"raceRestriction":["elf","half-elf"]}`, dex, intl, wis, cha),
		feat("Grappler", `{"abilityScore":{"STR":13}}`),
		feat("Great Weapon Master", ""),
		feat("Healer", ""),
		halfFeat("Heavily Armored", `{"proficiency":"medium-armor"}`, str),
		halfFeat("Heavy Armor Master", `{"proficiency":"heavy-armor"}`, str),
		feat("Inspiring Leader", `{"abilityScore":{"CHA":13}}`),
		halfFeat("Keen Mind", "", intl),
		feat("Lucky", ""),
		feat("Mage Slayer", ""),
		feat("Magic Initiate", ""),
		feat("Mobile", ""),
		halfFeat("Observant", "", intl, wis),
		feat("Polearm Master", ""),
		halfFeat("Resilient", "", allAbilities...),
		feat("Ritual Caster", `{"abilityScore":{"INT":13}}`),
		feat("Sentinel", ""),
		feat("Sharpshooter", ""),
		feat("Skilled", ""),
		feat("Skulker", `{"abilityScore":{"DEX":13}}`),
		feat("Spell Sniper", `{"spellcasting":true}`),
		halfFeat("Tavern Brawler", "", str, con),
		feat("Tough", ""),
		feat("War Caster", `{"spellcasting":true}`),
		halfFeat("Dwarven Fortitude", `{"raceRestriction":["dwarf"]}`, con),
	}
}
