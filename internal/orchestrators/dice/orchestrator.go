// Package dice implements the dice orchestrator for ability score roll sessions
package dice

//go:generate mockgen -destination=mock/mock_service.go -package=dicemock github.com/KirkDiggler/charforge/internal/orchestrators/dice Service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/charforge/internal/engine"
	"github.com/KirkDiggler/charforge/internal/errors"
	"github.com/KirkDiggler/charforge/internal/pkg/idgen"
	dicesession "github.com/KirkDiggler/charforge/internal/repositories/dice_session"
)

const (
	// AbilityScoreNotation is the notation recorded for each pool roll
	AbilityScoreNotation = "4d6"
)

// Service defines the interface for dice operations
type Service interface {
	// RollAbilityScores rolls a fresh pool of six 4d6 drop lowest scores,
	// replacing any stored pool for the entity
	RollAbilityScores(ctx context.Context, input *RollAbilityScoresInput) (*RollAbilityScoresOutput, error)
	GetRollSession(ctx context.Context, input *GetRollSessionInput) (*GetRollSessionOutput, error)
	ClearRollSession(ctx context.Context, input *ClearRollSessionInput) (*ClearRollSessionOutput, error)
}

// Config holds the dependencies for the dice orchestrator
type Config struct {
	DiceSessionRepo dicesession.Repository
	Engine          engine.Engine
	IDGenerator     idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.DiceSessionRepo == nil {
		vb.RequiredField("DiceSessionRepo")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	diceSessionRepo dicesession.Repository
	engine          engine.Engine
	idGen           idgen.Generator
}

// NewOrchestrator creates a new dice orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		diceSessionRepo: cfg.DiceSessionRepo,
		engine:          cfg.Engine,
		idGen:           cfg.IDGenerator,
	}, nil
}

func sessionContext(c string) string {
	if c == "" {
		return dicesession.ContextAbilityScores
	}
	return c
}

// RollAbilityScores handles ability pool rolling for character creation
func (o *orchestrator) RollAbilityScores(ctx context.Context, input *RollAbilityScoresInput) (*RollAbilityScoresOutput, error) {
	if input == nil || input.EntityID == "" {
		return nil, errors.InvalidArgument("entity ID is required")
	}

	rolled, err := o.engine.RollAbilityScores(ctx, &engine.RollAbilityScoresInput{Count: engine.PoolSize})
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll ability scores")
	}

	rolls := make([]dicesession.DiceRoll, len(rolled.Rolls))
	for i, r := range rolled.Rolls {
		rolls[i] = dicesession.DiceRoll{
			RollID:      o.idGen.Generate(),
			Notation:    AbilityScoreNotation,
			Dice:        append([]int(nil), r.Kept...),
			Dropped:     []int{r.Dropped},
			Total:       r.Total,
			Description: fmt.Sprintf("Ability score %d (4d6 drop lowest)", i+1),
		}
	}

	createOutput, err := o.diceSessionRepo.Create(ctx, dicesession.CreateInput{
		EntityID: input.EntityID,
		Context:  dicesession.ContextAbilityScores,
		Rolls:    rolls,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create ability score session")
	}

	slog.InfoContext(ctx, "Ability scores rolled",
		"entity_id", input.EntityID,
		"totals", createOutput.Session.Totals(),
	)

	return &RollAbilityScoresOutput{
		Rolls:   rolled.Rolls,
		Session: createOutput.Session,
	}, nil
}

// GetRollSession retrieves an existing dice roll session
func (o *orchestrator) GetRollSession(ctx context.Context, input *GetRollSessionInput) (*GetRollSessionOutput, error) {
	if input == nil || input.EntityID == "" {
		return nil, errors.InvalidArgument("entity ID is required")
	}

	getOutput, err := o.diceSessionRepo.Get(ctx, dicesession.GetInput{
		EntityID: input.EntityID,
		Context:  sessionContext(input.Context),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get dice session")
	}

	return &GetRollSessionOutput{Session: getOutput.Session}, nil
}

// ClearRollSession removes a dice roll session
func (o *orchestrator) ClearRollSession(ctx context.Context, input *ClearRollSessionInput) (*ClearRollSessionOutput, error) {
	if input == nil || input.EntityID == "" {
		return nil, errors.InvalidArgument("entity ID is required")
	}

	deleteOutput, err := o.diceSessionRepo.Delete(ctx, dicesession.DeleteInput{
		EntityID: input.EntityID,
		Context:  sessionContext(input.Context),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete dice session")
	}

	slog.InfoContext(ctx, "Dice session cleared",
		"entity_id", input.EntityID,
		"rolls_deleted", deleteOutput.RollsDeleted,
	)

	return &ClearRollSessionOutput{RollsDeleted: deleteOutput.RollsDeleted}, nil
}
