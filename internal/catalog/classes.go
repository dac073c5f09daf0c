package catalog

import (
	"github.com/KirkDiggler/dnd-levelup/internal/domain/rulebook"
	"github.com/KirkDiggler/dnd-levelup/internal/domain/shared"
)

var (
	standardASILevels = []int{4, 8, 12, 16, 19}
	fighterASILevels  = []int{4, 6, 8, 12, 14, 16, 19}
	rogueASILevels    = []int{4, 8, 10, 12, 16, 19}
)

func phbClasses() []*rulebook.Class {
	cls := rulebook.FeatureSourceClass
	return []*rulebook.Class{
		{
			Key: "barbarian", Name: "Barbarian", HitDie: 12, SubclassLevel: 3, ASILevels: standardASILevels,
			Features: table(cls, map[int][]featureSpec{
				1:  {uses("Rage", 2), f("Unarmored Defense")},
				2:  {f("Reckless Attack"), f("Danger Sense")},
				3:  {f("Primal Path")},
				5:  {f("Extra Attack"), f("Fast Movement")},
				7:  {f("Feral Instinct")},
				9:  {stacks("Brutal Critical")},
				11: {f("Relentless Rage")},
				13: {stacks("Brutal Critical")},
				15: {f("Persistent Rage")},
				17: {stacks("Brutal Critical")},
				18: {f("Indomitable Might")},
				20: {f("Primal Champion")},
			}),
		},
		{
			Key: "bard", Name: "Bard", HitDie: 8, SubclassLevel: 3, ASILevels: standardASILevels,
			Features: table(cls, map[int][]featureSpec{
				1:  {f("Spellcasting"), f("Bardic Inspiration")},
				2:  {f("Jack of All Trades"), stacks("Song of Rest")},
				3:  {f("Bard College"), stacks("Expertise")},
				5:  {f("Font of Inspiration")},
				6:  {f("Countercharm")},
				9:  {stacks("Song of Rest")},
				10: {stacks("Expertise"), stacks("Magical Secrets")},
				13: {stacks("Song of Rest")},
				14: {stacks("Magical Secrets")},
				17: {stacks("Song of Rest")},
				18: {stacks("Magical Secrets")},
				20: {f("Superior Inspiration")},
			}),
			Spellcasting: fixedKnown(rulebook.CasterFull, shared.AttributeCharisma, "bard", bardCantrips, bardKnown),
		},
		{
			Key: "cleric", Name: "Cleric", HitDie: 8, SubclassLevel: 1, ASILevels: standardASILevels,
			Features: table(cls, map[int][]featureSpec{
				1:  {f("Spellcasting"), f("Divine Domain")},
				2:  {uses("Channel Divinity", 1)},
				5:  {stacks("Destroy Undead")},
				6:  {stacks("Channel Divinity Uses")},
				8:  {stacks("Destroy Undead")},
				10: {f("Divine Intervention")},
				11: {stacks("Destroy Undead")},
				14: {stacks("Destroy Undead")},
				17: {stacks("Destroy Undead")},
				18: {stacks("Channel Divinity Uses")},
				20: {f("Divine Intervention Improvement")},
			}),
			Spellcasting: prepared(rulebook.CasterFull, shared.AttributeWisdom, "cleric", clericCantrips, 1, 1),
		},
		{
			Key: "druid", Name: "Druid", HitDie: 8, SubclassLevel: 2, ASILevels: standardASILevels,
			Features: table(cls, map[int][]featureSpec{
				1:  {f("Druidic"), f("Spellcasting")},
				2:  {uses("Wild Shape", 2), f("Druid Circle")},
				18: {f("Timeless Body"), f("Beast Spells")},
				20: {f("Archdruid")},
			}),
			Spellcasting: prepared(rulebook.CasterFull, shared.AttributeWisdom, "druid", druidCantrips, 1, 1),
		},
		{
			Key: "fighter", Name: "Fighter", HitDie: 10, SubclassLevel: 3, ASILevels: fighterASILevels,
			Features: table(cls, map[int][]featureSpec{
				1:  {f("Fighting Style"), uses("Second Wind", 1)},
				2:  {{name: "Action Surge", maxUses: 1, stacking: true}},
				3:  {f("Martial Archetype")},
				5:  {stacks("Extra Attack")},
				9:  {{name: "Indomitable", maxUses: 1, stacking: true}},
				11: {stacks("Extra Attack")},
				13: {{name: "Indomitable", maxUses: 1, stacking: true}},
				17: {{name: "Action Surge", maxUses: 1, stacking: true}, {name: "Indomitable", maxUses: 1, stacking: true}},
				20: {stacks("Extra Attack")},
			}),
		},
		{
			Key: "monk", Name: "Monk", HitDie: 8, SubclassLevel: 3, ASILevels: standardASILevels,
			Features: table(cls, map[int][]featureSpec{
				1:  {f("Unarmored Defense"), f("Martial Arts")},
				2:  {f("Ki"), f("Unarmored Movement")},
				3:  {f("Monastic Tradition"), f("Deflect Missiles")},
				4:  {f("Slow Fall")},
				5:  {f("Extra Attack"), f("Stunning Strike")},
				6:  {f("Ki-Empowered Strikes")},
				7:  {f("Evasion"), f("Stillness of Mind")},
				10: {f("Purity of Body")},
				13: {f("Tongue of the Sun and Moon")},
				14: {f("Diamond Soul")},
				15: {f("Timeless Body")},
				18: {f("Empty Body")},
				20: {f("Perfect Self")},
			}),
		},
		{
			Key: "paladin", Name: "Paladin", HitDie: 10, SubclassLevel: 3, ASILevels: standardASILevels,
			Features: table(cls, map[int][]featureSpec{
				1:  {f("Divine Sense"), f("Lay on Hands")},
				2:  {f("Fighting Style"), f("Spellcasting"), f("Divine Smite")},
				3:  {f("Divine Health"), f("Sacred Oath")},
				5:  {f("Extra Attack")},
				6:  {f("Aura of Protection")},
				10: {f("Aura of Courage")},
				11: {f("Improved Divine Smite")},
				14: {f("Cleansing Touch")},
				18: {f("Aura Improvements")},
			}),
			Spellcasting: prepared(rulebook.CasterHalf, shared.AttributeCharisma, "paladin", paladinCantrips, 2, 2),
		},
		{
			Key: "ranger", Name: "Ranger", HitDie: 10, SubclassLevel: 3, ASILevels: standardASILevels,
			Features: table(cls, map[int][]featureSpec{
				1:  {f("Favored Enemy"), f("Natural Explorer")},
				2:  {f("Fighting Style"), f("Spellcasting")},
				3:  {f("Ranger Archetype"), f("Primeval Awareness")},
				5:  {f("Extra Attack")},
				6:  {stacks("Favored Enemy Improvement")},
				8:  {f("Land's Stride")},
				10: {f("Hide in Plain Sight")},
				14: {f("Vanish"), stacks("Favored Enemy Improvement")},
				18: {f("Feral Senses")},
				20: {f("Foe Slayer")},
			}),
			Spellcasting: fixedKnown(rulebook.CasterHalf, shared.AttributeWisdom, "ranger", rangerCantrips, rangerKnown),
		},
		{
			Key: "rogue", Name: "Rogue", HitDie: 8, SubclassLevel: 3, ASILevels: rogueASILevels,
			Features: table(cls, map[int][]featureSpec{
				1:  {stacks("Expertise"), f("Sneak Attack"), f("Thieves' Cant")},
				2:  {f("Cunning Action")},
				3:  {f("Roguish Archetype")},
				5:  {f("Uncanny Dodge")},
				6:  {stacks("Expertise")},
				7:  {f("Evasion")},
				11: {f("Reliable Talent")},
				14: {f("Blindsense")},
				15: {f("Slippery Mind")},
				18: {f("Elusive")},
				20: {uses("Stroke of Luck", 1)},
			}),
		},
		{
			Key: "sorcerer", Name: "Sorcerer", HitDie: 6, SubclassLevel: 1, ASILevels: standardASILevels,
			Features: table(cls, map[int][]featureSpec{
				1:  {f("Spellcasting"), f("Sorcerous Origin")},
				2:  {f("Font of Magic")},
				3:  {f("Metamagic")},
				20: {f("Sorcerous Restoration")},
			}),
			Spellcasting: fixedKnown(rulebook.CasterFull, shared.AttributeCharisma, "sorcerer", sorcererCantrips, sorcererKnown),
		},
		{
			Key: "warlock", Name: "Warlock", HitDie: 8, SubclassLevel: 1, ASILevels: standardASILevels,
			Features: table(cls, map[int][]featureSpec{
				1:  {f("Otherworldly Patron"), f("Pact Magic")},
				2:  {f("Eldritch Invocations")},
				3:  {f("Pact Boon")},
				11: {stacks("Mystic Arcanum")},
				13: {stacks("Mystic Arcanum")},
				15: {stacks("Mystic Arcanum")},
				17: {stacks("Mystic Arcanum")},
				20: {uses("Eldritch Master", 1)},
			}),
			Spellcasting: fixedKnown(rulebook.CasterPact, shared.AttributeCharisma, "warlock", warlockCantrips, warlockKnown),
		},
		{
			Key: "wizard", Name: "Wizard", HitDie: 6, SubclassLevel: 2, ASILevels: standardASILevels,
			Features: table(cls, map[int][]featureSpec{
				1:  {f("Spellcasting"), uses("Arcane Recovery", 1)},
				2:  {f("Arcane Tradition")},
				18: {f("Spell Mastery")},
				20: {f("Signature Spells")},
			}),
			Spellcasting: wizardProgression(),
		},
		{
			Key: "artificer", Name: "Artificer", HitDie: 8, SubclassLevel: 3, ASILevels: standardASILevels,
			Features: table(cls, map[int][]featureSpec{
				1:  {f("Magical Tinkering"), f("Spellcasting")},
				2:  {f("Infuse Item")},
				3:  {f("Artificer Specialist"), f("The Right Tool for the Job")},
				6:  {f("Tool Expertise")},
				7:  {f("Flash of Genius")},
				10: {f("Magic Item Adept")},
				11: {f("Spell-Storing Item")},
				14: {f("Magic Item Savant")},
				18: {f("Magic Item Master")},
				20: {f("Soul of Artifice")},
			}),
			Spellcasting: prepared(rulebook.CasterArtificer, shared.AttributeIntelligence, "artificer", artificerCantrips, 2, 1),
		},
	}
}
