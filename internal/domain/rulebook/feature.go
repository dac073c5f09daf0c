package rulebook

// FeatureSource is where a granted feature came from
type FeatureSource string

const (
	FeatureSourceClass    FeatureSource = "class"
	FeatureSourceSubclass FeatureSource = "subclass"
	FeatureSourceFeat     FeatureSource = "feat"
	FeatureSourceOption   FeatureSource = "option"
	FeatureSourceOptional FeatureSource = "optional"
)

// Feature is granted by a class level, subclass, feat, pool option or
// optional class feature
type Feature struct {
	Key    string        `json:"key"`
	Name   string        `json:"name"`
	Level  int           `json:"level"`
	Source FeatureSource `json:"source"`

	// Stacking features may be granted more than once (e.g. Extra Attack tiers tracked by count)
	Stacking bool `json:"stacking,omitempty"`

	// MaxUses > 0 gives the grant a bounded use counter
	MaxUses int `json:"max_uses,omitempty"`
}
