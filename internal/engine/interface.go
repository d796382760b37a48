// Package engine resolves ability scores and derived statistics for
// character creation: score generation, point buy validation and the stat
// derivation pipeline.
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/charforge/internal/engine Engine

import (
	"context"
)

// Engine provides the character-creation rules
type Engine interface {
	// Score generation
	StartGeneration(ctx context.Context, input *StartGenerationInput) (*StartGenerationOutput, error)
	SetPointBuyScore(ctx context.Context, input *SetPointBuyScoreInput) (*SetPointBuyScoreOutput, error)
	AssignSlot(ctx context.Context, input *AssignSlotInput) (*AssignSlotOutput, error)
	Reroll(ctx context.Context, input *RerollInput) (*RerollOutput, error)
	EvaluateGeneration(ctx context.Context, input *EvaluateGenerationInput) (*EvaluateGenerationOutput, error)
	RollAbilityScores(ctx context.Context, input *RollAbilityScoresInput) (*RollAbilityScoresOutput, error)

	// Point buy validation
	ValidatePointBuy(ctx context.Context, input *ValidatePointBuyInput) (*ValidatePointBuyOutput, error)

	// Derivation
	DeriveCharacter(ctx context.Context, input *DeriveCharacterInput) (*DeriveCharacterOutput, error)
}
