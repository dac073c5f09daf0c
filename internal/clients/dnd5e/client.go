package dnd5e

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	apiEntities "github.com/fadedpez/dnd5e-api/entities"

	"github.com/KirkDiggler/dnd-levelup/internal/domain/rulebook"
	dnderr "github.com/KirkDiggler/dnd-levelup/internal/errors"
)

// TODO: add context to functions once the upstream client accepts one
type client struct {
	client dnd5e.Interface
}

type Config struct {
	HttpClient *http.Client

	// BaseURL points requests at a mirror of the API; empty keeps the library default
	BaseURL string
}

func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, dnderr.InvalidArgument("dnd5e client config is required")
	}

	httpClient := cfg.HttpClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	if cfg.BaseURL != "" {
		base, err := url.Parse(cfg.BaseURL)
		if err != nil {
			return nil, dnderr.Wrapf(err, "invalid dnd5e base url %q", cfg.BaseURL)
		}
		rewritten := *httpClient
		rewritten.Transport = &baseURLTransport{base: base, next: httpClient.Transport}
		httpClient = &rewritten
	}

	dndClient, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client: httpClient,
	})
	if err != nil {
		return nil, err
	}

	return &client{
		client: dndClient,
	}, nil
}

// GetClassFeatures returns the features a class gains at exactly level
func (c *client) GetClassFeatures(classKey string, level int) ([]*rulebook.Feature, error) {
	if classKey == "" {
		return nil, dnderr.InvalidArgument("GetClassFeatures.classKey is required")
	}

	classLevel, err := c.client.GetClassLevel(classKey, level)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s level %d: %w", classKey, level, err)
	}

	features := make([]*rulebook.Feature, 0, len(classLevel.Features))
	for _, ref := range classLevel.Features {
		if ref.Key == "" {
			continue
		}
		features = append(features, &rulebook.Feature{
			Key:    ref.Key,
			Name:   ref.Name,
			Level:  level,
			Source: rulebook.FeatureSourceClass,
		})
	}

	return features, nil
}

// GetSpell retrieves a spell by key
func (c *client) GetSpell(key string) (*rulebook.Spell, error) {
	apiSpell, err := c.client.GetSpell(key)
	if err != nil {
		return nil, fmt.Errorf("failed to get spell %s: %w", key, err)
	}

	return apiSpellToSpell(apiSpell), nil
}

func apiSpellToSpell(input *apiEntities.Spell) *rulebook.Spell {
	classes := make([]string, 0, len(input.SpellClasses))
	for _, ref := range input.SpellClasses {
		classes = append(classes, ref.Key)
	}

	return &rulebook.Spell{
		Key:     input.Key,
		Name:    input.Name,
		Level:   input.SpellLevel,
		Classes: classes,
	}
}

// baseURLTransport sends every request to base, keeping the path
type baseURLTransport struct {
	base *url.URL
	next http.RoundTripper
}

func (t *baseURLTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	out := req.Clone(req.Context())
	out.URL.Scheme = t.base.Scheme
	out.URL.Host = t.base.Host
	out.Host = t.base.Host

	next := t.next
	if next == nil {
		next = http.DefaultTransport
	}
	return next.RoundTrip(out)
}
