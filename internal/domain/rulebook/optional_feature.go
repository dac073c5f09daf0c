package rulebook

import (
	"github.com/KirkDiggler/dnd-levelup/internal/domain/prerequisite"
)

// OptionalFeature is an opt-in class feature offered on reaching one of
// Levels in ClassKey. Taking it grants Feature and, when Replaces is set,
// gives up that class feature.
type OptionalFeature struct {
	Key      string   `json:"key"`
	Name     string   `json:"name"`
	ClassKey string   `json:"class_key"`
	Levels   []int    `json:"levels"`
	Feature  *Feature `json:"feature"`

	// Replaces is the key of the class feature this one stands in for
	Replaces string `json:"replaces,omitempty"`

	Prerequisite prerequisite.Expression `json:"-"`
}

// OfferedAt reports whether reaching classLevel offers the feature
func (o *OptionalFeature) OfferedAt(classLevel int) bool {
	for _, l := range o.Levels {
		if l == classLevel {
			return true
		}
	}
	return false
}
