// Package external provides the reference catalog of races, classes,
// backgrounds and subclasses used by character creation.
package external

//go:generate mockgen -destination=mock/mock_client.go -package=externalmock github.com/KirkDiggler/charforge/internal/clients/external Client

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	"github.com/fadedpez/dnd5e-api/entities"
	"golang.org/x/sync/errgroup"

	internalDnd5e "github.com/KirkDiggler/charforge/internal/entities/dnd5e"
	"github.com/KirkDiggler/charforge/internal/errors"
)

// slugPattern matches characters that should be replaced in slugs
var slugPattern = regexp.MustCompile(`[^a-z0-9-]+`)

var repeatedHyphens = regexp.MustCompile(`-+`)

// generateSlug creates a URL-safe slug from a string
func generateSlug(s string) string {
	slug := internalDnd5e.NormalizeName(s)
	slug = strings.ReplaceAll(slug, " ", "-")
	slug = slugPattern.ReplaceAllString(slug, "-")
	slug = repeatedHyphens.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// Client is the reference data source read by the wizard
type Client interface {
	ListRaces(ctx context.Context) ([]*internalDnd5e.Race, error)
	GetRace(ctx context.Context, raceID string) (*internalDnd5e.Race, error)

	ListClasses(ctx context.Context) ([]*internalDnd5e.Class, error)
	GetClass(ctx context.Context, classID string) (*internalDnd5e.Class, error)

	ListBackgrounds(ctx context.Context) ([]*internalDnd5e.Background, error)
	GetBackground(ctx context.Context, backgroundID string) (*internalDnd5e.Background, error)

	// ListSubclasses returns the subclasses of classID, or all of them when classID is empty
	ListSubclasses(ctx context.Context, classID string) ([]*internalDnd5e.Subclass, error)

	ListSkills(ctx context.Context) ([]*internalDnd5e.Skill, error)
}

// Config contains configuration options for the dnd5e-api backed client.
type Config struct {
	// BaseURL for the D&D 5e API (optional, defaults to https://www.dnd5eapi.co/api/2014/)
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// CacheTTL for the cached client (optional, defaults to 24 hours)
	CacheTTL time.Duration
	// DND5eClient overrides the API client, mostly for tests
	DND5eClient dnd5e.Interface
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://www.dnd5eapi.co/api/2014/"
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = 24 * time.Hour
	}
	if cfg.HTTPTimeout < 0 || cfg.CacheTTL < 0 {
		return errors.InvalidArgument("timeouts must not be negative")
	}
	return nil
}

// client serves races and classes from the D&D 5e API and everything the API
// does not carry from the embedded tables.
type client struct {
	dnd5eClient dnd5e.Interface
	static      *catalog
}

// New creates a client backed by the D&D 5e API.
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	static, err := loadCatalog()
	if err != nil {
		return nil, err
	}

	api := cfg.DND5eClient
	if api == nil {
		baseClient, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
			Client:  &http.Client{Timeout: cfg.HTTPTimeout},
			BaseURL: cfg.BaseURL,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to create D&D 5e API client")
		}
		api = dnd5e.NewCachedClient(baseClient, cfg.CacheTTL)
	}

	return &client{dnd5eClient: api, static: static}, nil
}

func (c *client) ListRaces(ctx context.Context) ([]*internalDnd5e.Race, error) {
	slog.Debug("Calling D&D 5e API to list races")
	refs, err := c.dnd5eClient.ListRaces()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to list races from D&D 5e API")
	}

	races := make([]*internalDnd5e.Race, len(refs))
	g, _ := errgroup.WithContext(ctx)
	for i, ref := range refs {
		if ref == nil {
			continue
		}
		g.Go(func() error {
			race, err := c.dnd5eClient.GetRace(ref.Key)
			if err != nil {
				slog.Error("Failed to get race details", "race", ref.Key, "error", err)
				return fmt.Errorf("failed to get race %s: %w", ref.Key, err)
			}
			races[i] = convertRace(race)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to load race details")
	}

	return compact(races), nil
}

func (c *client) GetRace(_ context.Context, raceID string) (*internalDnd5e.Race, error) {
	apiID := generateSlug(raceID)
	if apiID == "" {
		return nil, errors.InvalidArgument("race id is required")
	}

	race, err := c.dnd5eClient.GetRace(apiID)
	if err != nil || race == nil {
		return nil, errors.WrapWithCode(errOrMissing(err), errors.CodeNotFound, fmt.Sprintf("race %q not found", raceID))
	}
	return convertRace(race), nil
}

func (c *client) ListClasses(ctx context.Context) ([]*internalDnd5e.Class, error) {
	slog.Debug("Calling D&D 5e API to list classes")
	refs, err := c.dnd5eClient.ListClasses()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to list classes from D&D 5e API")
	}

	classes := make([]*internalDnd5e.Class, len(refs))
	g, _ := errgroup.WithContext(ctx)
	for i, ref := range refs {
		if ref == nil {
			continue
		}
		g.Go(func() error {
			class, err := c.loadClass(ref.Key)
			if err != nil {
				slog.Error("Failed to get class details", "class", ref.Key, "error", err)
				return err
			}
			classes[i] = class
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to load class details")
	}

	return compact(classes), nil
}

func (c *client) GetClass(_ context.Context, classID string) (*internalDnd5e.Class, error) {
	apiID := generateSlug(classID)
	if apiID == "" {
		return nil, errors.InvalidArgument("class id is required")
	}

	class, err := c.loadClass(apiID)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeNotFound, fmt.Sprintf("class %q not found", classID))
	}
	return class, nil
}

// loadClass fetches a class and its level one features
func (c *client) loadClass(key string) (*internalDnd5e.Class, error) {
	class, err := c.dnd5eClient.GetClass(key)
	if err != nil || class == nil {
		return nil, fmt.Errorf("failed to get class %s: %w", key, errOrMissing(err))
	}

	level1, err := c.dnd5eClient.GetClassLevel(key, 1)
	if err != nil {
		// features are cosmetic here; keep the class usable
		slog.Warn("Failed to get class level 1", "class", key, "error", err)
		level1 = nil
	}

	return convertClass(class, level1), nil
}

func (c *client) ListBackgrounds(ctx context.Context) ([]*internalDnd5e.Background, error) {
	return c.static.ListBackgrounds(ctx)
}

func (c *client) GetBackground(ctx context.Context, backgroundID string) (*internalDnd5e.Background, error) {
	return c.static.GetBackground(ctx, backgroundID)
}

func (c *client) ListSubclasses(ctx context.Context, classID string) ([]*internalDnd5e.Subclass, error) {
	return c.static.ListSubclasses(ctx, classID)
}

func (c *client) ListSkills(ctx context.Context) ([]*internalDnd5e.Skill, error) {
	return c.static.ListSkills(ctx)
}

func convertRace(race *entities.Race) *internalDnd5e.Race {
	if race == nil {
		return nil
	}

	out := &internalDnd5e.Race{
		ID:                   race.Key,
		Name:                 race.Name,
		Speed:                race.Speed,
		Size:                 race.Size,
		AbilityScoreIncrease: make(map[internalDnd5e.Ability]int),
	}

	for _, bonus := range race.AbilityBonuses {
		if bonus == nil || bonus.AbilityScore == nil {
			continue
		}
		if ability, ok := internalDnd5e.ParseAbility(bonus.AbilityScore.Key); ok {
			out.AbilityScoreIncrease[ability] += bonus.Bonus
		}
	}
	out.Languages = referenceNames(race.Languages, "")
	out.Proficiencies = referenceNames(race.StartingProficiencies, "Skill:")
	out.Traits = referenceNames(race.Traits, "")

	return out
}

func convertClass(class *entities.Class, level1 *entities.Level) *internalDnd5e.Class {
	if class == nil {
		return nil
	}

	out := &internalDnd5e.Class{
		ID:     class.Key,
		Name:   class.Name,
		HitDie: class.HitDie,
	}

	for _, st := range class.SavingThrows {
		if st == nil {
			continue
		}
		if ability, ok := internalDnd5e.ParseAbility(st.Key); ok {
			out.SavingThrows = append(out.SavingThrows, ability)
		}
	}
	for _, pa := range class.PrimaryAbilities {
		if pa == nil {
			continue
		}
		if ability, ok := internalDnd5e.ParseAbility(pa.Key); ok {
			out.PrimaryAbilities = append(out.PrimaryAbilities, ability)
		}
	}

	for _, choice := range class.ProficiencyChoices {
		if choice == nil || choice.ChoiceType != "skills" {
			continue
		}
		out.SkillsToChoose = choice.ChoiceCount
		if choice.OptionList != nil {
			for _, option := range choice.OptionList.Options {
				if refOpt, ok := option.(*entities.ReferenceOption); ok && refOpt.Reference != nil {
					out.AvailableSkills = append(out.AvailableSkills,
						strings.TrimSpace(strings.TrimPrefix(refOpt.Reference.Name, "Skill:")))
				}
			}
		}
		break
	}

	for _, eq := range class.StartingEquipment {
		if eq == nil || eq.Equipment == nil {
			continue
		}
		name := eq.Equipment.Name
		if eq.Quantity > 1 {
			name = fmt.Sprintf("%d x %s", eq.Quantity, name)
		}
		out.Equipment = append(out.Equipment, name)
	}

	if level1 != nil {
		out.Features = referenceNames(level1.Features, "")
	}

	return out
}

func referenceNames(refs []*entities.ReferenceItem, trimPrefix string) []string {
	out := make([]string, 0, len(refs))
	for _, ref := range refs {
		if ref == nil {
			continue
		}
		name := ref.Name
		if trimPrefix != "" {
			name = strings.TrimSpace(strings.TrimPrefix(name, trimPrefix))
		}
		out = append(out, name)
	}
	return out
}

func compact[T any](items []*T) []*T {
	out := make([]*T, 0, len(items))
	for _, item := range items {
		if item != nil {
			out = append(out, item)
		}
	}
	return out
}

func errOrMissing(err error) error {
	if err != nil {
		return err
	}
	return fmt.Errorf("empty response")
}
