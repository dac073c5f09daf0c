package catalog

import (
	"github.com/KirkDiggler/dnd-levelup/internal/domain/prerequisite"
	"github.com/KirkDiggler/dnd-levelup/internal/domain/rulebook"
)

// Feature keys referenced outside the catalog
const (
	FeatureDeftExplorerCanny = "deft-explorer-canny"
	FeatureNaturalExplorer   = "natural-explorer"
)

func optional(classKey, name string, levels ...int) *rulebook.OptionalFeature {
	return &rulebook.OptionalFeature{
		Key:      slug(name),
		Name:     name,
		ClassKey: classKey,
		Levels:   levels,
		Feature: &rulebook.Feature{
			Key:      slug(name),
			Name:     name,
			Level:    levels[0],
			Source:   rulebook.FeatureSourceOptional,
			Stacking: len(levels) > 1,
		},
	}
}

func optionalReq(classKey, name, payload string, levels ...int) *rulebook.OptionalFeature {
	o := optional(classKey, name, levels...)
	o.Prerequisite = prerequisite.MustParse(payload)
	return o
}

// tceOptionalFeatures are the opt-in class features from Tasha's Cauldron.
// Features offered at more than one level stack, one grant per level taken.
func tceOptionalFeatures() []*rulebook.OptionalFeature {
	canny := optional("ranger", "Deft Explorer - Canny", 1)
	canny.Replaces = FeatureNaturalExplorer

	return []*rulebook.OptionalFeature{
		optional("barbarian", "Primal Knowledge", 3, 10),
		optional("barbarian", "Instinctive Pounce", 7),

		optional("monk", "Dedicated Weapon", 2),
		optional("monk", "Ki-Fueled Attack", 3),
		optional("monk", "Quickened Healing", 4),
		optional("monk", "Focused Aim", 5),

		optional("paladin", "Harness Divine Power", 3, 7, 15),

		canny,
		optionalReq("ranger", "Deft Explorer - Roving", `{"feature":"`+FeatureDeftExplorerCanny+`"}`, 6),
		optionalReq("ranger", "Deft Explorer - Tireless", `{"feature":"`+FeatureDeftExplorerCanny+`"}`, 10),
		optional("ranger", "Spellcasting Focus", 2),

		optional("rogue", "Steady Aim", 3),
	}
}
