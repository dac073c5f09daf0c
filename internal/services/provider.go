package services

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/dnd-levelup/internal/catalog"
	"github.com/KirkDiggler/dnd-levelup/internal/clients/dnd5e"
	"github.com/KirkDiggler/dnd-levelup/internal/config"
	"github.com/KirkDiggler/dnd-levelup/internal/dice"
	"github.com/KirkDiggler/dnd-levelup/internal/repositories/characters"
	"github.com/KirkDiggler/dnd-levelup/internal/services/levelup"
	"github.com/KirkDiggler/dnd-levelup/internal/uuid"
)

// Provider holds all service instances
type Provider struct {
	Catalog             catalog.Reader
	CharacterRepository characters.Repository
	LevelUpService      levelup.Service
	Roller              dice.Roller

	closers []func() error
}

// ProviderConfig holds configuration for creating services. Anything left
// nil is built from Config.
type ProviderConfig struct {
	Config *config.Config

	DNDClient           dnd5e.Client
	Catalog             catalog.Reader
	CharacterRepository characters.Repository
	UUIDGenerator       uuid.Generator
	Roller              dice.Roller
}

// NewProvider wires the catalog, repository and level-up service
func NewProvider(ctx context.Context, cfg *ProviderConfig) (*Provider, error) {
	if cfg == nil || cfg.Config == nil {
		panic("provider config is required")
	}

	p := &Provider{Roller: cfg.Roller}
	if p.Roller == nil {
		p.Roller = dice.NewRandomRoller()
	}

	p.Catalog = cfg.Catalog
	if p.Catalog == nil {
		reader, err := newCatalog(cfg)
		if err != nil {
			return nil, err
		}
		p.Catalog = reader
	}
	if want := cfg.Config.Catalog.RulesetVersion; want != p.Catalog.RulesetVersion() {
		return nil, fmt.Errorf("catalog serves ruleset %s, configured for %s", p.Catalog.RulesetVersion(), want)
	}

	p.CharacterRepository = cfg.CharacterRepository
	if p.CharacterRepository == nil {
		repo, err := p.newRepository(ctx, cfg.Config.Redis)
		if err != nil {
			return nil, err
		}
		p.CharacterRepository = repo
	}

	p.LevelUpService = levelup.NewService(&levelup.ServiceConfig{
		Catalog:       p.Catalog,
		Repository:    p.CharacterRepository,
		UUIDGenerator: cfg.UUIDGenerator,
	})

	return p, nil
}

// Close releases connections opened by the provider
func (p *Provider) Close() error {
	var first error
	for _, c := range p.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func newCatalog(cfg *ProviderConfig) (catalog.Reader, error) {
	if cfg.Config.Catalog.FeatureSource != config.FeatureSourceDND5E {
		return catalog.NewStatic(nil), nil
	}

	client := cfg.DNDClient
	if client == nil {
		var err error
		client, err = dnd5e.New(&dnd5e.Config{
			HttpClient: &http.Client{
				Timeout: cfg.Config.DND5E.Timeout,
			},
			BaseURL: cfg.Config.DND5E.BaseURL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create D&D 5e client: %w", err)
		}
	}

	log.Printf("Class features and extra spells served by the D&D 5e API at %s", cfg.Config.DND5E.BaseURL)
	return catalog.NewStatic(&catalog.StaticConfig{
		FeatureSource: dnd5e.NewFeatureSource(&dnd5e.FeatureSourceConfig{Client: client}),
		SpellSource:   client,
	}), nil
}

func (p *Provider) newRepository(ctx context.Context, cfg config.RedisConfig) (characters.Repository, error) {
	if cfg.URL == "" {
		log.Println("No REDIS_URL found, using in-memory repository")
		return characters.NewInMemoryRepository(), nil
	}

	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	log.Printf("Using Redis at %s for persistence", opts.Addr)
	p.closers = append(p.closers, client.Close)
	return characters.NewRedis(client, cfg.KeyPrefix), nil
}
