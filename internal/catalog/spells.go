package catalog

import (
	"github.com/KirkDiggler/dnd-levelup/internal/domain/rulebook"
)

func spell(name string, level int, classes ...string) *rulebook.Spell {
	return &rulebook.Spell{Key: slug(name), Name: name, Level: level, Classes: classes}
}

// phbSpells is the subset of the spell list level-up validates against
func phbSpells() []*rulebook.Spell {
	return []*rulebook.Spell{
		// Cantrips
		spell("Acid Splash", 0, "sorcerer", "wizard", "artificer"),
		spell("Chill Touch", 0, "sorcerer", "warlock", "wizard"),
		spell("Dancing Lights", 0, "bard", "sorcerer", "wizard", "artificer"),
		spell("Druidcraft", 0, "druid"),
		spell("Eldritch Blast", 0, "warlock"),
		spell("Fire Bolt", 0, "sorcerer", "wizard", "artificer"),
		spell("Guidance", 0, "cleric", "druid", "artificer"),
		spell("Light", 0, "bard", "cleric", "sorcerer", "wizard", "artificer"),
		spell("Mage Hand", 0, "bard", "sorcerer", "warlock", "wizard", "artificer"),
		spell("Mending", 0, "bard", "cleric", "druid", "sorcerer", "wizard", "artificer"),
		spell("Message", 0, "bard", "sorcerer", "wizard", "artificer"),
		spell("Minor Illusion", 0, "bard", "sorcerer", "warlock", "wizard"),
		spell("Poison Spray", 0, "druid", "sorcerer", "warlock", "wizard", "artificer"),
		spell("Prestidigitation", 0, "bard", "sorcerer", "warlock", "wizard", "artificer"),
		spell("Produce Flame", 0, "druid"),
		spell("Ray of Frost", 0, "sorcerer", "wizard", "artificer"),
		spell("Resistance", 0, "cleric", "druid", "artificer"),
		spell("Sacred Flame", 0, "cleric"),
		spell("Shillelagh", 0, "druid"),
		spell("Shocking Grasp", 0, "sorcerer", "wizard", "artificer"),
		spell("Spare the Dying", 0, "cleric", "artificer"),
		spell("Thaumaturgy", 0, "cleric"),
		spell("Thorn Whip", 0, "druid", "artificer"),
		spell("True Strike", 0, "bard", "sorcerer", "warlock", "wizard"),
		spell("Vicious Mockery", 0, "bard"),

		// 1st level
		spell("Bless", 1, "cleric", "paladin"),
		spell("Burning Hands", 1, "sorcerer", "wizard"),
		spell("Charm Person", 1, "bard", "druid", "sorcerer", "warlock", "wizard"),
		spell("Cure Wounds", 1, "bard", "cleric", "druid", "paladin", "ranger", "artificer"),
		spell("Detect Magic", 1, "bard", "cleric", "druid", "paladin", "ranger", "sorcerer", "wizard", "artificer"),
		spell("Disguise Self", 1, "bard", "sorcerer", "wizard", "artificer"),
		spell("Divine Favor", 1, "paladin"),
		spell("Faerie Fire", 1, "bard", "druid", "artificer"),
		spell("Feather Fall", 1, "bard", "sorcerer", "wizard", "artificer"),
		spell("Find Familiar", 1, "wizard"),
		spell("Guiding Bolt", 1, "cleric"),
		spell("Healing Word", 1, "bard", "cleric", "druid"),
		spell("Hellish Rebuke", 1, "warlock"),
		spell("Hex", 1, "warlock"),
		spell("Hunter's Mark", 1, "ranger"),
		spell("Mage Armor", 1, "sorcerer", "wizard"),
		spell("Magic Missile", 1, "sorcerer", "wizard"),
		spell("Shield", 1, "sorcerer", "wizard"),
		spell("Sleep", 1, "bard", "sorcerer", "wizard"),
		spell("Thunderwave", 1, "bard", "druid", "sorcerer", "wizard"),

		// 2nd level
		spell("Aid", 2, "cleric", "paladin", "artificer"),
		spell("Darkness", 2, "sorcerer", "warlock", "wizard"),
		spell("Hold Person", 2, "bard", "cleric", "druid", "sorcerer", "warlock", "wizard"),
		spell("Invisibility", 2, "bard", "sorcerer", "warlock", "wizard", "artificer"),
		spell("Misty Step", 2, "sorcerer", "warlock", "wizard"),
		spell("Pass without Trace", 2, "druid", "ranger"),
		spell("Scorching Ray", 2, "sorcerer", "wizard"),
		spell("Shatter", 2, "bard", "sorcerer", "warlock", "wizard"),
		spell("Spiritual Weapon", 2, "cleric"),

		// 3rd level
		spell("Counterspell", 3, "sorcerer", "warlock", "wizard"),
		spell("Dispel Magic", 3, "bard", "cleric", "druid", "paladin", "sorcerer", "warlock", "wizard", "artificer"),
		spell("Fireball", 3, "sorcerer", "wizard"),
		spell("Fly", 3, "sorcerer", "warlock", "wizard", "artificer"),
		spell("Hypnotic Pattern", 3, "bard", "sorcerer", "warlock", "wizard"),
		spell("Lightning Bolt", 3, "sorcerer", "wizard"),
		spell("Revivify", 3, "cleric", "paladin", "artificer"),
		spell("Spirit Guardians", 3, "cleric"),

		// 4th and 5th level
		spell("Banishment", 4, "cleric", "paladin", "sorcerer", "warlock", "wizard"),
		spell("Polymorph", 4, "bard", "druid", "sorcerer", "wizard"),
		spell("Cone of Cold", 5, "sorcerer", "wizard"),
		spell("Hold Monster", 5, "bard", "sorcerer", "warlock", "wizard"),
	}
}
