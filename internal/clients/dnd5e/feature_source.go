package dnd5e

import (
	"log"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/dnd-levelup/internal/domain/rulebook"
)

const maxClassLevel = 20

// FeatureSource serves class features from the API. The first lookup for a
// class fetches all twenty levels concurrently; later lookups hit the cache.
type FeatureSource struct {
	client Client

	// cache holds map[int][]*rulebook.Feature per class key
	cache sync.Map

	// fetching serializes the first load of each class
	mu       sync.Mutex
	inflight map[string]*sync.Mutex
}

type FeatureSourceConfig struct {
	Client Client
}

func NewFeatureSource(cfg *FeatureSourceConfig) *FeatureSource {
	if cfg == nil {
		panic("config cannot be nil")
	}
	if cfg.Client == nil {
		panic("dnd5e client is required")
	}
	return &FeatureSource{
		client:   cfg.Client,
		inflight: make(map[string]*sync.Mutex),
	}
}

// ClassFeatures returns the features gained at exactly level
func (s *FeatureSource) ClassFeatures(classKey string, level int) ([]*rulebook.Feature, error) {
	byLevel, err := s.load(classKey)
	if err != nil {
		return nil, err
	}
	return byLevel[level], nil
}

func (s *FeatureSource) load(classKey string) (map[int][]*rulebook.Feature, error) {
	if cached, ok := s.cache.Load(classKey); ok {
		return cached.(map[int][]*rulebook.Feature), nil
	}

	s.mu.Lock()
	lock, ok := s.inflight[classKey]
	if !ok {
		lock = &sync.Mutex{}
		s.inflight[classKey] = lock
	}
	s.mu.Unlock()

	lock.Lock()
	defer lock.Unlock()

	if cached, ok := s.cache.Load(classKey); ok {
		return cached.(map[int][]*rulebook.Feature), nil
	}

	levels := make([][]*rulebook.Feature, maxClassLevel)
	g := new(errgroup.Group)
	for i := 0; i < maxClassLevel; i++ {
		level := i + 1
		g.Go(func() error {
			features, err := s.client.GetClassFeatures(classKey, level)
			if err != nil {
				return err
			}
			levels[level-1] = features
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Printf("Failed to prefetch %s features: %v", classKey, err)
		return nil, err
	}

	byLevel := make(map[int][]*rulebook.Feature, maxClassLevel)
	for i, features := range levels {
		if len(features) > 0 {
			byLevel[i+1] = features
		}
	}
	s.cache.Store(classKey, byLevel)

	return byLevel, nil
}
