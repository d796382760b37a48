// Package character implements the character creation wizard orchestrator
package character

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"
	"go.opentelemetry.io/otel"

	"github.com/KirkDiggler/charforge/internal/clients/external"
	"github.com/KirkDiggler/charforge/internal/engine"
	"github.com/KirkDiggler/charforge/internal/entities/dnd5e"
	"github.com/KirkDiggler/charforge/internal/errors"
	"github.com/KirkDiggler/charforge/internal/orchestrators/dice"
	"github.com/KirkDiggler/charforge/internal/pkg/clock"
	"github.com/KirkDiggler/charforge/internal/pkg/idgen"
	characterrepo "github.com/KirkDiggler/charforge/internal/repositories/character"
	draftrepo "github.com/KirkDiggler/charforge/internal/repositories/character_draft"
)

const (
	defaultDraftTTL = 24 * time.Hour
	tracerName      = "github.com/KirkDiggler/charforge/internal/orchestrators/character"
)

var tracer = otel.Tracer(tracerName)

// Config holds the dependencies for the character orchestrator
type Config struct {
	CharacterRepo        characterrepo.Repository
	CharacterDraftRepo   draftrepo.Repository
	Engine               engine.Engine
	ExternalClient       external.Client
	DiceService          dice.Service
	DraftIDGenerator     idgen.Generator
	CharacterIDGenerator idgen.Generator
	Clock                clock.Clock
	// EventBus receives lifecycle events. A private bus is created when nil.
	EventBus events.EventBus
	// DraftTTL is how long an idle draft lives (defaults to 24h)
	DraftTTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.CharacterDraftRepo == nil {
		vb.RequiredField("CharacterDraftRepo")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.ExternalClient == nil {
		vb.RequiredField("ExternalClient")
	}
	if c.DiceService == nil {
		vb.RequiredField("DiceService")
	}
	if c.DraftIDGenerator == nil {
		vb.RequiredField("DraftIDGenerator")
	}
	if c.CharacterIDGenerator == nil {
		vb.RequiredField("CharacterIDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.DraftTTL < 0 {
		vb.InvalidField("DraftTTL", "must not be negative")
	}

	return vb.Build()
}

// Orchestrator implements the Service interface
type Orchestrator struct {
	characterRepo      characterrepo.Repository
	characterDraftRepo draftrepo.Repository
	engine             engine.Engine
	externalClient     external.Client
	diceService        dice.Service
	draftIDGen         idgen.Generator
	characterIDGen     idgen.Generator
	clock              clock.Clock
	eventBus           events.EventBus
	draftTTL           time.Duration
}

// New creates a new character orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	bus := cfg.EventBus
	if bus == nil {
		bus = events.NewBus()
	}
	ttl := cfg.DraftTTL
	if ttl == 0 {
		ttl = defaultDraftTTL
	}

	return &Orchestrator{
		characterRepo:      cfg.CharacterRepo,
		characterDraftRepo: cfg.CharacterDraftRepo,
		engine:             cfg.Engine,
		externalClient:     cfg.ExternalClient,
		diceService:        cfg.DiceService,
		draftIDGen:         cfg.DraftIDGenerator,
		characterIDGen:     cfg.CharacterIDGenerator,
		clock:              cfg.Clock,
		eventBus:           bus,
		draftTTL:           ttl,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ Service = (*Orchestrator)(nil)

// Draft lifecycle methods

// CreateDraft starts a new draft at the race step. A player holds one draft
// at a time, so any previous draft is replaced.
func (o *Orchestrator) CreateDraft(ctx context.Context, input *CreateDraftInput) (*CreateDraftOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("player_id", input.PlayerID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	now := o.clock.Now()
	draft := &dnd5e.CharacterDraft{
		ID:        o.draftIDGen.Generate(),
		PlayerID:  input.PlayerID,
		Name:      strings.TrimSpace(input.Name),
		Step:      dnd5e.StepRace,
		CreatedAt: now.Unix(),
		UpdatedAt: now.Unix(),
		ExpiresAt: now.Add(o.draftTTL).Unix(),
	}

	if _, err := o.characterDraftRepo.Create(ctx, draftrepo.CreateInput{Draft: draft}); err != nil {
		return nil, errors.Wrapf(err, "failed to create draft")
	}

	o.publish(ctx, EventDraftCreated, draft, draft.PlayerID, draft.ID)

	slog.InfoContext(ctx, "draft created", "draft_id", draft.ID, "player_id", draft.PlayerID)

	return &CreateDraftOutput{Draft: draft}, nil
}

// GetDraft returns a draft by ID, or the player's current draft
func (o *Orchestrator) GetDraft(ctx context.Context, input *GetDraftInput) (*GetDraftOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if input.DraftID == "" {
		if input.PlayerID == "" {
			return nil, errors.InvalidArgument("draft_id or player_id is required")
		}
		out, err := o.characterDraftRepo.GetByPlayerID(ctx, draftrepo.GetByPlayerIDInput{PlayerID: input.PlayerID})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to get draft for player")
		}
		return &GetDraftOutput{Draft: out.Draft}, nil
	}

	draft, err := o.loadDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}
	return &GetDraftOutput{Draft: draft}, nil
}

// DeleteDraft discards a draft and its dice pool
func (o *Orchestrator) DeleteDraft(ctx context.Context, input *DeleteDraftInput) (*DeleteDraftOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("draft_id", input.DraftID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	out, err := o.characterDraftRepo.Delete(ctx, draftrepo.DeleteInput{ID: input.DraftID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete draft")
	}

	o.clearDicePool(ctx, input.DraftID)
	o.publish(ctx, EventDraftDeleted, &dnd5e.CharacterDraft{ID: input.DraftID, PlayerID: out.PlayerID},
		out.PlayerID, input.DraftID)

	return &DeleteDraftOutput{Message: "draft deleted"}, nil
}

// UpdateName sets the character name. An empty name is allowed while the
// draft is in progress; finalization requires one.
func (o *Orchestrator) UpdateName(ctx context.Context, input *UpdateNameInput) (*UpdateNameOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	draft, err := o.loadDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	draft.Name = strings.TrimSpace(input.Name)

	if err := o.saveDraft(ctx, draft); err != nil {
		return nil, err
	}
	return &UpdateNameOutput{Draft: draft}, nil
}

// loadDraft validates the ID and fetches the draft
func (o *Orchestrator) loadDraft(ctx context.Context, draftID string) (*dnd5e.CharacterDraft, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("draft_id", draftID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	out, err := o.characterDraftRepo.Get(ctx, draftrepo.GetInput{ID: draftID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get draft")
	}
	if out.Draft.Step == "" {
		out.Draft.Step = dnd5e.StepRace
	}
	return out.Draft, nil
}

// saveDraft stamps the draft and slides its expiry forward
func (o *Orchestrator) saveDraft(ctx context.Context, draft *dnd5e.CharacterDraft) error {
	now := o.clock.Now()
	draft.UpdatedAt = now.Unix()
	draft.ExpiresAt = now.Add(o.draftTTL).Unix()

	if _, err := o.characterDraftRepo.Update(ctx, draftrepo.UpdateInput{Draft: draft}); err != nil {
		return errors.Wrapf(err, "failed to update draft")
	}
	return nil
}

// clearDicePool drops the draft's stored rolls. Failures only get logged.
func (o *Orchestrator) clearDicePool(ctx context.Context, draftID string) {
	_, err := o.diceService.ClearRollSession(ctx, &dice.ClearRollSessionInput{EntityID: draftID})
	if err != nil && !errors.IsNotFound(err) {
		slog.WarnContext(ctx, "failed to clear dice session", "draft_id", draftID, "error", err)
	}
}

// publish sends a lifecycle event. Subscribers cannot fail the operation.
func (o *Orchestrator) publish(ctx context.Context, eventType string, source core.Entity, playerID, draftID string) {
	event := events.NewGameEvent(eventType, source, nil)
	event.Context().Set(EventKeyPlayerID, playerID)
	event.Context().Set(EventKeyDraftID, draftID)

	if err := o.eventBus.Publish(ctx, event); err != nil {
		slog.WarnContext(ctx, "failed to publish event", "event", eventType, "error", err)
	}
}
