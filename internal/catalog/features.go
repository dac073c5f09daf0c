package catalog

import (
	"strings"

	"github.com/KirkDiggler/dnd-levelup/internal/domain/rulebook"
)

type featureSpec struct {
	name     string
	maxUses  int
	stacking bool
}

func f(name string) featureSpec {
	return featureSpec{name: name}
}

func uses(name string, n int) featureSpec {
	return featureSpec{name: name, maxUses: n}
}

// stacks marks a feature whose repeated grants count up (e.g. Indomitable)
func stacks(name string) featureSpec {
	return featureSpec{name: name, stacking: true}
}

func table(source rulebook.FeatureSource, levels map[int][]featureSpec) map[int][]*rulebook.Feature {
	out := make(map[int][]*rulebook.Feature, len(levels))
	for level, specs := range levels {
		for _, spec := range specs {
			out[level] = append(out[level], &rulebook.Feature{
				Key:      slug(spec.name),
				Name:     spec.name,
				Level:    level,
				Source:   source,
				Stacking: spec.stacking,
				MaxUses:  spec.maxUses,
			})
		}
	}
	return out
}

func slug(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case r == '\'':
		default:
			if !dash && b.Len() > 0 {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

func optionFeature(name string) []*rulebook.Feature {
	return []*rulebook.Feature{{
		Key:    slug(name),
		Name:   name,
		Source: rulebook.FeatureSourceOption,
	}}
}

func featFeature(name string) []*rulebook.Feature {
	return []*rulebook.Feature{{
		Key:    slug(name),
		Name:   name,
		Source: rulebook.FeatureSourceFeat,
	}}
}
