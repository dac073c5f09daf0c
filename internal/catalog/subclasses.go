package catalog

import (
	"github.com/KirkDiggler/dnd-levelup/internal/domain/rulebook"
)

func subclass(key, name, classKey string, levels map[int][]featureSpec) *rulebook.Subclass {
	return &rulebook.Subclass{
		Key:      key,
		Name:     name,
		ClassKey: classKey,
		Features: table(rulebook.FeatureSourceSubclass, levels),
	}
}

func phbSubclasses() []*rulebook.Subclass {
	eldritchKnight := subclass("eldritch-knight", "Eldritch Knight", "fighter", map[int][]featureSpec{
		3:  {f("Eldritch Knight Spellcasting"), f("Weapon Bond")},
		7:  {f("War Magic")},
		10: {f("Eldritch Strike")},
		15: {f("Arcane Charge")},
		18: {f("Improved War Magic")},
	})
	eldritchKnight.Spellcasting = thirdCaster()

	arcaneTrickster := subclass("arcane-trickster", "Arcane Trickster", "rogue", map[int][]featureSpec{
		3:  {f("Arcane Trickster Spellcasting"), f("Mage Hand Legerdemain")},
		9:  {f("Magical Ambush")},
		13: {f("Versatile Trickster")},
		17: {uses("Spell Thief", 1)},
	})
	arcaneTrickster.Spellcasting = thirdCaster()

	return []*rulebook.Subclass{
		subclass("berserker", "Path of the Berserker", "barbarian", map[int][]featureSpec{
			3:  {f("Frenzy")},
			6:  {f("Mindless Rage")},
			10: {f("Intimidating Presence")},
			14: {f("Retaliation")},
		}),
		subclass("totem-warrior", "Path of the Totem Warrior", "barbarian", map[int][]featureSpec{
			3:  {f("Spirit Seeker"), f("Totem Spirit")},
			6:  {f("Aspect of the Beast")},
			10: {f("Spirit Walker")},
			14: {f("Totemic Attunement")},
		}),
		subclass("lore", "College of Lore", "bard", map[int][]featureSpec{
			3:  {f("Bonus Proficiencies"), f("Cutting Words")},
			6:  {f("Additional Magical Secrets")},
			14: {f("Peerless Skill")},
		}),
		subclass("valor", "College of Valor", "bard", map[int][]featureSpec{
			3:  {f("Bonus Proficiencies"), f("Combat Inspiration")},
			6:  {f("Extra Attack")},
			14: {f("Battle Magic")},
		}),
		subclass("life", "Life Domain", "cleric", map[int][]featureSpec{
			1:  {f("Bonus Proficiency"), f("Disciple of Life")},
			2:  {f("Channel Divinity: Preserve Life")},
			6:  {f("Blessed Healer")},
			8:  {f("Divine Strike")},
			17: {f("Supreme Healing")},
		}),
		subclass("light", "Light Domain", "cleric", map[int][]featureSpec{
			1:  {f("Bonus Cantrip"), uses("Warding Flare", 1)},
			2:  {f("Channel Divinity: Radiance of the Dawn")},
			6:  {f("Improved Flare")},
			8:  {f("Potent Spellcasting")},
			17: {f("Corona of Light")},
		}),
		subclass("land", "Circle of the Land", "druid", map[int][]featureSpec{
			2:  {f("Bonus Cantrip"), uses("Natural Recovery", 1)},
			6:  {f("Land's Stride")},
			10: {f("Nature's Ward")},
			14: {f("Nature's Sanctuary")},
		}),
		subclass("moon", "Circle of the Moon", "druid", map[int][]featureSpec{
			2:  {f("Combat Wild Shape"), f("Circle Forms")},
			6:  {f("Primal Strike")},
			10: {f("Elemental Wild Shape")},
			14: {f("Thousand Forms")},
		}),
		subclass("champion", "Champion", "fighter", map[int][]featureSpec{
			3:  {f("Improved Critical")},
			7:  {f("Remarkable Athlete")},
			10: {f("Additional Fighting Style")},
			15: {f("Superior Critical")},
			18: {f("Survivor")},
		}),
		subclass("battle-master", "Battle Master", "fighter", map[int][]featureSpec{
			3:  {f("Combat Superiority"), f("Student of War")},
			7:  {f("Know Your Enemy")},
			10: {stacks("Improved Combat Superiority")},
			15: {f("Relentless")},
			18: {stacks("Improved Combat Superiority")},
		}),
		eldritchKnight,
		subclass("arcane-archer", "Arcane Archer", "fighter", map[int][]featureSpec{
			3:  {f("Arcane Archer Lore"), uses("Arcane Shot", 2)},
			7:  {f("Magic Arrow"), f("Curving Shot")},
			15: {f("Ever-Ready Shot")},
		}),
		subclass("rune-knight", "Rune Knight", "fighter", map[int][]featureSpec{
			3:  {f("Bonus Proficiencies"), f("Rune Carver"), uses("Giant's Might", 2)},
			7:  {f("Runic Shield")},
			10: {f("Great Stature")},
			15: {f("Master of Runes")},
			18: {f("Runic Juggernaut")},
		}),
		subclass("open-hand", "Way of the Open Hand", "monk", map[int][]featureSpec{
			3:  {f("Open Hand Technique")},
			6:  {uses("Wholeness of Body", 1)},
			11: {f("Tranquility")},
			17: {f("Quivering Palm")},
		}),
		subclass("four-elements", "Way of the Four Elements", "monk", map[int][]featureSpec{
			3: {f("Disciple of the Elements"), f("Elemental Attunement")},
		}),
		subclass("devotion", "Oath of Devotion", "paladin", map[int][]featureSpec{
			3:  {f("Channel Divinity: Sacred Weapon"), f("Channel Divinity: Turn the Unholy")},
			7:  {f("Aura of Devotion")},
			15: {f("Purity of Spirit")},
			20: {uses("Holy Nimbus", 1)},
		}),
		subclass("vengeance", "Oath of Vengeance", "paladin", map[int][]featureSpec{
			3:  {f("Channel Divinity: Abjure Enemy"), f("Channel Divinity: Vow of Enmity")},
			7:  {f("Relentless Avenger")},
			15: {f("Soul of Vengeance")},
			20: {uses("Avenging Angel", 1)},
		}),
		subclass("hunter", "Hunter", "ranger", map[int][]featureSpec{
			3:  {f("Hunter's Prey")},
			7:  {f("Defensive Tactics")},
			11: {f("Multiattack")},
			15: {f("Superior Hunter's Defense")},
		}),
		subclass("beast-master", "Beast Master", "ranger", map[int][]featureSpec{
			3:  {f("Ranger's Companion")},
			7:  {f("Exceptional Training")},
			11: {f("Bestial Fury")},
			15: {f("Share Spells")},
		}),
		subclass("thief", "Thief", "rogue", map[int][]featureSpec{
			3:  {f("Fast Hands"), f("Second-Story Work")},
			9:  {f("Supreme Sneak")},
			13: {f("Use Magic Device")},
			17: {f("Thief's Reflexes")},
		}),
		arcaneTrickster,
		subclass("draconic", "Draconic Bloodline", "sorcerer", map[int][]featureSpec{
			1:  {f("Dragon Ancestor"), f("Draconic Resilience")},
			6:  {f("Elemental Affinity")},
			14: {f("Dragon Wings")},
			18: {f("Draconic Presence")},
		}),
		subclass("wild-magic", "Wild Magic", "sorcerer", map[int][]featureSpec{
			1:  {f("Wild Magic Surge"), uses("Tides of Chaos", 1)},
			6:  {f("Bend Luck")},
			14: {f("Controlled Chaos")},
			18: {f("Spell Bombardment")},
		}),
		subclass("fiend", "The Fiend", "warlock", map[int][]featureSpec{
			1:  {f("Dark One's Blessing")},
			6:  {uses("Dark One's Own Luck", 1)},
			10: {f("Fiendish Resilience")},
			14: {uses("Hurl Through Hell", 1)},
		}),
		subclass("archfey", "The Archfey", "warlock", map[int][]featureSpec{
			1:  {uses("Fey Presence", 1)},
			6:  {uses("Misty Escape", 1)},
			10: {f("Beguiling Defenses")},
			14: {uses("Dark Delirium", 1)},
		}),
		subclass("evocation", "School of Evocation", "wizard", map[int][]featureSpec{
			2:  {f("Evocation Savant"), f("Sculpt Spells")},
			6:  {f("Potent Cantrip")},
			10: {f("Empowered Evocation")},
			14: {f("Overchannel")},
		}),
		subclass("abjuration", "School of Abjuration", "wizard", map[int][]featureSpec{
			2:  {f("Abjuration Savant"), f("Arcane Ward")},
			6:  {f("Projected Ward")},
			10: {f("Improved Abjuration")},
			14: {f("Spell Resistance")},
		}),
		subclass("alchemist", "Alchemist", "artificer", map[int][]featureSpec{
			3:  {f("Tool Proficiency"), f("Alchemist Spells"), uses("Experimental Elixir", 1)},
			5:  {f("Alchemical Savant")},
			9:  {f("Restorative Reagents")},
			15: {f("Chemical Mastery")},
		}),
		subclass("artillerist", "Artillerist", "artificer", map[int][]featureSpec{
			3:  {f("Tool Proficiency"), f("Artillerist Spells"), uses("Eldritch Cannon", 1)},
			5:  {f("Arcane Firearm")},
			9:  {f("Explosive Cannon")},
			15: {f("Fortified Position")},
		}),
	}
}
