package catalog

import (
	"github.com/KirkDiggler/dnd-levelup/internal/domain/prerequisite"
	"github.com/KirkDiggler/dnd-levelup/internal/domain/rulebook"
)

// Pool keys referenced outside the catalog
const (
	PoolFighterFightingStyle = "fighter-fighting-style"
	PoolPaladinFightingStyle = "paladin-fighting-style"
	PoolRangerFightingStyle  = "ranger-fighting-style"
	PoolEldritchInvocations  = "eldritch-invocations"
	PoolPactBoon             = "pact-boon"
	PoolMetamagic            = "metamagic"
	PoolManeuvers            = "maneuvers"
	PoolArcaneShots          = "arcane-shots"
	PoolRunes                = "runes"
	PoolElementalDisciplines = "elemental-disciplines"
)

func opt(name string) *rulebook.PoolOption {
	return &rulebook.PoolOption{Key: slug(name), Name: name}
}

func optReq(name, payload string) *rulebook.PoolOption {
	o := opt(name)
	o.Prerequisite = prerequisite.MustParse(payload)
	return o
}

func fightingStyle(name string) *rulebook.PoolOption {
	o := opt(name)
	o.GrantsFeatures = optionFeature("Fighting Style: " + name)
	return o
}

func phbChoicePools() []*rulebook.ChoicePool {
	return []*rulebook.ChoicePool{
		{
			Key: PoolFighterFightingStyle, Name: "Fighting Style", Scope: rulebook.PoolScopeClass, OwnerKey: "fighter",
			Quota: rulebook.QuotaTable{{Level: 1, Total: 1}},
			Options: []*rulebook.PoolOption{
				fightingStyle("Archery"),
				fightingStyle("Defense"),
				fightingStyle("Dueling"),
				fightingStyle("Great Weapon Fighting"),
				fightingStyle("Protection"),
				fightingStyle("Two-Weapon Fighting"),
			},
			Swap: rulebook.SwapRule{Levels: fighterASILevels},
		},
		{
			Key: PoolPaladinFightingStyle, Name: "Fighting Style", Scope: rulebook.PoolScopeClass, OwnerKey: "paladin",
			Quota: rulebook.QuotaTable{{Level: 2, Total: 1}},
			Options: []*rulebook.PoolOption{
				fightingStyle("Defense"),
				fightingStyle("Dueling"),
				fightingStyle("Great Weapon Fighting"),
				fightingStyle("Protection"),
			},
			Swap: rulebook.SwapRule{Levels: standardASILevels},
		},
		{
			Key: PoolRangerFightingStyle, Name: "Fighting Style", Scope: rulebook.PoolScopeClass, OwnerKey: "ranger",
			Quota: rulebook.QuotaTable{{Level: 2, Total: 1}},
			Options: []*rulebook.PoolOption{
				fightingStyle("Archery"),
				fightingStyle("Defense"),
				fightingStyle("Dueling"),
				fightingStyle("Two-Weapon Fighting"),
			},
			Swap: rulebook.SwapRule{Levels: standardASILevels},
		},
		{
			Key: PoolPactBoon, Name: "Pact Boon", Scope: rulebook.PoolScopeClass, OwnerKey: "warlock",
			Quota: rulebook.QuotaTable{{Level: 3, Total: 1}},
			Options: []*rulebook.PoolOption{
				opt("Pact of the Chain"),
				opt("Pact of the Blade"),
				opt("Pact of the Tome"),
			},
		},
		{
			Key: PoolEldritchInvocations, Name: "Eldritch Invocations", Scope: rulebook.PoolScopeClass, OwnerKey: "warlock",
			Quota: rulebook.QuotaTable{
				{Level: 2, Total: 2}, {Level: 5, Total: 3}, {Level: 7, Total: 4}, {Level: 9, Total: 5},
				{Level: 12, Total: 6}, {Level: 15, Total: 7}, {Level: 18, Total: 8},
			},
			Options: []*rulebook.PoolOption{
				optReq("Agonizing Blast", `{"spell":"eldritch-blast"}`),
				opt("Armor of Shadows"),
				opt("Beast Speech"),
				opt("Beguiling Influence"),
				opt("Devil's Sight"),
				opt("Eldritch Sight"),
				optReq("Eldritch Spear", `{"spell":"eldritch-blast"}`),
				opt("Eyes of the Rune Keeper"),
				opt("Fiendish Vigor"),
				opt("Mask of Many Faces"),
				opt("Misty Visions"),
				optReq("Repelling Blast", `{"spell":"eldritch-blast"}`),
				opt("Thief of Five Fates"),
				optReq("Book of Ancient Secrets", `{"pact":"pact-of-the-tome"}`),
				optReq("Voice of the Chain Master", `{"pact":"pact-of-the-chain"}`),
				optReq("Thirsting Blade", `{"level":5,"pact":"pact-of-the-blade"}`),
				optReq("Mire the Mind", `{"level":5}`),
				optReq("One with Shadows", `{"level":5}`),
				optReq("Sign of Ill Omen", `{"level":5}`),
				optReq("Sculptor of Flesh", `{"level":7}`),
				optReq("Ascendant Step", `{"level":9}`),
				optReq("Whispers of the Grave", `{"level":9}`),
				optReq("Lifedrinker", `{"level":12,"pact":"pact-of-the-blade"}`),
				optReq("Master of Myriad Forms", `{"level":15}`),
				optReq("Witch Sight", `{"level":15}`),
			},
			Swap: rulebook.SwapRule{EveryLevel: true},
		},
		{
			Key: PoolMetamagic, Name: "Metamagic", Scope: rulebook.PoolScopeClass, OwnerKey: "sorcerer",
			Quota: rulebook.QuotaTable{{Level: 3, Total: 2}, {Level: 10, Total: 3}, {Level: 17, Total: 4}},
			Options: []*rulebook.PoolOption{
				opt("Careful Spell"),
				opt("Distant Spell"),
				opt("Empowered Spell"),
				opt("Extended Spell"),
				opt("Heightened Spell"),
				opt("Quickened Spell"),
				opt("Subtle Spell"),
				opt("Twinned Spell"),
			},
			Swap: rulebook.SwapRule{Levels: standardASILevels},
		},
		{
			Key: PoolManeuvers, Name: "Maneuvers", Scope: rulebook.PoolScopeSubclass, OwnerKey: "battle-master",
			Quota: rulebook.QuotaTable{{Level: 3, Total: 3}, {Level: 7, Total: 5}, {Level: 10, Total: 7}, {Level: 15, Total: 9}},
			Options: []*rulebook.PoolOption{
				opt("Commander's Strike"),
				opt("Disarming Attack"),
				opt("Distracting Strike"),
				opt("Evasive Footwork"),
				opt("Feinting Attack"),
				opt("Goading Attack"),
				opt("Lunging Attack"),
				opt("Maneuvering Attack"),
				opt("Menacing Attack"),
				opt("Parry"),
				opt("Precision Attack"),
				opt("Pushing Attack"),
				opt("Rally"),
				opt("Riposte"),
				opt("Sweeping Attack"),
				opt("Trip Attack"),
			},
			Swap: rulebook.SwapRule{Levels: []int{3, 7, 10, 15}},
		},
		{
			Key: PoolArcaneShots, Name: "Arcane Shot Options", Scope: rulebook.PoolScopeSubclass, OwnerKey: "arcane-archer",
			Quota: rulebook.QuotaTable{{Level: 3, Total: 2}, {Level: 7, Total: 3}, {Level: 10, Total: 4}, {Level: 15, Total: 5}},
			Options: []*rulebook.PoolOption{
				opt("Banishing Arrow"),
				opt("Beguiling Arrow"),
				opt("Bursting Arrow"),
				opt("Enfeebling Arrow"),
				opt("Grasping Arrow"),
				opt("Piercing Arrow"),
				opt("Seeking Arrow"),
				opt("Shadow Arrow"),
			},
			Swap: rulebook.SwapRule{Levels: []int{7, 10, 15}},
		},
		{
			Key: PoolRunes, Name: "Runes", Scope: rulebook.PoolScopeSubclass, OwnerKey: "rune-knight",
			Quota: rulebook.QuotaTable{{Level: 3, Total: 2}, {Level: 7, Total: 3}, {Level: 10, Total: 4}, {Level: 15, Total: 5}},
			Options: []*rulebook.PoolOption{
				opt("Cloud Rune"),
				opt("Fire Rune"),
				opt("Frost Rune"),
				opt("Stone Rune"),
				optReq("Hill Rune", `{"level":7}`),
				optReq("Storm Rune", `{"level":7}`),
			},
			Swap: rulebook.SwapRule{EveryLevel: true},
		},
		{
			Key: PoolElementalDisciplines, Name: "Elemental Disciplines", Scope: rulebook.PoolScopeSubclass, OwnerKey: "four-elements",
			Quota: rulebook.QuotaTable{{Level: 3, Total: 2}, {Level: 6, Total: 3}, {Level: 11, Total: 4}, {Level: 17, Total: 5}},
			Options: []*rulebook.PoolOption{
				opt("Fangs of the Fire Snake"),
				opt("Fist of Four Thunders"),
				opt("Fist of Unbroken Air"),
				opt("Rush of the Gale Spirits"),
				opt("Shape the Flowing River"),
				opt("Sweeping Cinder Strike"),
				opt("Water Whip"),
				optReq("Clench of the North Wind", `{"level":6}`),
				optReq("Gong of the Summit", `{"level":6}`),
				optReq("Flames of the Phoenix", `{"level":11}`),
				optReq("Mist Stance", `{"level":11}`),
				optReq("Ride the Wind", `{"level":11}`),
				optReq("Breath of Winter", `{"level":17}`),
				optReq("Eternal Mountain Defense", `{"level":17}`),
				optReq("River of Hungry Flame", `{"level":17}`),
				optReq("Wave of Rolling Earth", `{"level":17}`),
			},
			Swap: rulebook.SwapRule{EveryLevel: true},
		},
	}
}
