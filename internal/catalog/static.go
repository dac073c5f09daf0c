package catalog

import (
	"log"
	"sort"
	"sync"

	"github.com/KirkDiggler/dnd-levelup/internal/domain/rulebook"
	dnderr "github.com/KirkDiggler/dnd-levelup/internal/errors"
)

// RulesetPHB2014 is the only ruleset shipped with the static catalog
const RulesetPHB2014 = "phb-2014"

// FeatureSource supplies class features from somewhere other than the static tables
type FeatureSource interface {
	ClassFeatures(classKey string, level int) ([]*rulebook.Feature, error)
}

// SpellSource looks up spells missing from the static spell list
type SpellSource interface {
	GetSpell(key string) (*rulebook.Spell, error)
}

type StaticConfig struct {
	// FeatureSource overrides the static class feature tables when set
	FeatureSource FeatureSource

	// SpellSource backs GetSpell when the static list has no entry
	SpellSource SpellSource
}

// Static serves the built-in ruleset. Its maps are built once and never
// written after construction; spells fetched from the SpellSource are
// cached in remoteSpells.
type Static struct {
	classes    map[string]*rulebook.Class
	subclasses map[string]*rulebook.Subclass
	pools      map[string]*rulebook.ChoicePool
	poolsByOwn map[string][]*rulebook.ChoicePool
	feats      map[string]*rulebook.Feat
	spells     map[string]*rulebook.Spell
	optional   map[string][]*rulebook.OptionalFeature

	featureSource FeatureSource
	spellSource   SpellSource
	remoteSpells  sync.Map
}

func NewStatic(cfg *StaticConfig) *Static {
	if cfg == nil {
		cfg = &StaticConfig{}
	}

	s := &Static{
		classes:       make(map[string]*rulebook.Class),
		subclasses:    make(map[string]*rulebook.Subclass),
		pools:         make(map[string]*rulebook.ChoicePool),
		poolsByOwn:    make(map[string][]*rulebook.ChoicePool),
		feats:         make(map[string]*rulebook.Feat),
		spells:        make(map[string]*rulebook.Spell),
		optional:      make(map[string][]*rulebook.OptionalFeature),
		featureSource: cfg.FeatureSource,
		spellSource:   cfg.SpellSource,
	}

	for _, c := range phbClasses() {
		s.classes[c.Key] = c
	}
	for _, sub := range phbSubclasses() {
		s.subclasses[sub.Key] = sub
		if class, ok := s.classes[sub.ClassKey]; ok {
			class.Subclasses = append(class.Subclasses, sub.Key)
		}
	}
	for _, p := range phbChoicePools() {
		s.pools[p.Key] = p
		s.poolsByOwn[p.OwnerKey] = append(s.poolsByOwn[p.OwnerKey], p)
	}
	for _, f := range phbFeats() {
		s.feats[f.Key] = f
	}
	for _, sp := range phbSpells() {
		s.spells[sp.Key] = sp
	}
	for _, o := range tceOptionalFeatures() {
		s.optional[o.ClassKey] = append(s.optional[o.ClassKey], o)
	}

	return s
}

func (s *Static) RulesetVersion() string {
	return RulesetPHB2014
}

func (s *Static) GetClass(key string) (*rulebook.Class, error) {
	c, ok := s.classes[key]
	if !ok {
		return nil, dnderr.NotFoundf("class %s not found", key).WithMeta("class", key)
	}
	return c, nil
}

func (s *Static) GetSubclass(key string) (*rulebook.Subclass, error) {
	sub, ok := s.subclasses[key]
	if !ok {
		return nil, dnderr.NotFoundf("subclass %s not found", key).WithMeta("subclass", key)
	}
	return sub, nil
}

func (s *Static) GetClassFeatures(classKey string, level int) ([]*rulebook.Feature, error) {
	class, err := s.GetClass(classKey)
	if err != nil {
		return nil, err
	}

	if s.featureSource != nil {
		features, err := s.featureSource.ClassFeatures(classKey, level)
		if err == nil {
			return features, nil
		}
		log.Printf("Feature source failed for %s level %d, using static table: %v", classKey, level, err)
	}

	return class.FeaturesAt(level), nil
}

func (s *Static) GetSubclassFeatures(subclassKey string, level int) ([]*rulebook.Feature, error) {
	sub, err := s.GetSubclass(subclassKey)
	if err != nil {
		return nil, err
	}
	return sub.Features[level], nil
}

func (s *Static) GetChoicePools(ownerKey string) ([]*rulebook.ChoicePool, error) {
	if _, isClass := s.classes[ownerKey]; !isClass {
		if _, isSub := s.subclasses[ownerKey]; !isSub {
			return nil, dnderr.NotFoundf("pool owner %s not found", ownerKey)
		}
	}
	return s.poolsByOwn[ownerKey], nil
}

func (s *Static) GetChoicePool(poolKey string) (*rulebook.ChoicePool, error) {
	p, ok := s.pools[poolKey]
	if !ok {
		return nil, dnderr.NotFoundf("choice pool %s not found", poolKey)
	}
	return p, nil
}

// GetOptionalFeatures returns nil without error for classes that have none
func (s *Static) GetOptionalFeatures(classKey string) ([]*rulebook.OptionalFeature, error) {
	if _, err := s.GetClass(classKey); err != nil {
		return nil, err
	}
	return s.optional[classKey], nil
}

// GetSpellTable returns nil without error for non-casters
func (s *Static) GetSpellTable(key string) (*rulebook.SpellcastingProgression, error) {
	if c, ok := s.classes[key]; ok {
		return c.Spellcasting, nil
	}
	if sub, ok := s.subclasses[key]; ok {
		return sub.Spellcasting, nil
	}
	return nil, dnderr.NotFoundf("spell table owner %s not found", key)
}

func (s *Static) GetFeat(key string) (*rulebook.Feat, error) {
	f, ok := s.feats[key]
	if !ok {
		return nil, dnderr.NotFoundf("feat %s not found", key)
	}
	return f, nil
}

func (s *Static) ListFeats() ([]*rulebook.Feat, error) {
	out := make([]*rulebook.Feat, 0, len(s.feats))
	for _, f := range s.feats {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}

func (s *Static) GetSpell(key string) (*rulebook.Spell, error) {
	if sp, ok := s.spells[key]; ok {
		return sp, nil
	}
	if s.spellSource == nil {
		return nil, dnderr.NotFoundf("spell %s not found", key)
	}
	if cached, ok := s.remoteSpells.Load(key); ok {
		return cached.(*rulebook.Spell), nil
	}

	sp, err := s.spellSource.GetSpell(key)
	if err != nil {
		log.Printf("Spell source failed for %s: %v", key, err)
		return nil, dnderr.WrapWithCode(err, dnderr.CodeNotFound, "spell "+key+" not found")
	}
	if sp == nil {
		return nil, dnderr.NotFoundf("spell %s not found", key)
	}
	s.remoteSpells.Store(key, sp)
	return sp, nil
}

// ListClasses returns every class key, sorted
func (s *Static) ListClasses() []string {
	keys := make([]string, 0, len(s.classes))
	for k := range s.classes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ListChoicePools returns every pool, sorted by key
func (s *Static) ListChoicePools() []*rulebook.ChoicePool {
	out := make([]*rulebook.ChoicePool, 0, len(s.pools))
	for _, p := range s.pools {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
