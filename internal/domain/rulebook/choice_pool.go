package rulebook

import "github.com/KirkDiggler/dnd-levelup/internal/domain/prerequisite"

// PoolScope tells whether a pool is owned by a class or a subclass
type PoolScope string

const (
	PoolScopeClass    PoolScope = "class"
	PoolScopeSubclass PoolScope = "subclass"
)

// Breakpoint is the cumulative number of picks held from Level on
type Breakpoint struct {
	Level int `json:"level"`
	Total int `json:"total"`
}

// QuotaTable is ordered by ascending level
type QuotaTable []Breakpoint

// ChoicePool is a level-gated, quota-bounded set of options such as
// invocations or maneuvers
type ChoicePool struct {
	Key      string        `json:"key"`
	Name     string        `json:"name"`
	Scope    PoolScope     `json:"scope"`
	OwnerKey string        `json:"owner_key"`
	Quota    QuotaTable    `json:"quota"`
	Options  []*PoolOption `json:"options"`
	Swap     SwapRule      `json:"swap"`
}

// Option looks up an option by key
func (p *ChoicePool) Option(key string) (*PoolOption, bool) {
	for _, o := range p.Options {
		if o.Key == key {
			return o, true
		}
	}
	return nil, false
}

type PoolOption struct {
	Key            string                  `json:"key"`
	Name           string                  `json:"name"`
	Prerequisite   prerequisite.Expression `json:"-"`
	GrantsFeatures []*Feature              `json:"grants_features,omitempty"`
}

// SwapRule describes when one held option may be exchanged for another
type SwapRule struct {
	Levels     []int `json:"levels,omitempty"`
	EveryLevel bool  `json:"every_level,omitempty"`
}

// AllowsAt reports whether a swap is offered when reaching classLevel
func (r SwapRule) AllowsAt(classLevel int) bool {
	if r.EveryLevel {
		return true
	}
	for _, l := range r.Levels {
		if l == classLevel {
			return true
		}
	}
	return false
}
