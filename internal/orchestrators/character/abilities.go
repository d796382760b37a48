package character

import (
	"context"

	"github.com/KirkDiggler/charforge/internal/engine"
	"github.com/KirkDiggler/charforge/internal/entities/dnd5e"
	"github.com/KirkDiggler/charforge/internal/errors"
	"github.com/KirkDiggler/charforge/internal/orchestrators/dice"
)

// SetGenerationMethod replaces the draft's ability score state with a fresh
// one for method. Choosing dice rolls a new pool.
func (o *Orchestrator) SetGenerationMethod(
	ctx context.Context,
	input *SetGenerationMethodInput,
) (*SetGenerationMethodOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	draft, err := o.loadDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	var rolls []dnd5e.AbilityRoll
	if input.Method == dnd5e.MethodDiceRoll {
		rolls, err = o.rollPool(ctx, draft.ID)
		if err != nil {
			return nil, err
		}
	} else if draft.Generation != nil && draft.Generation.Kind() == dnd5e.MethodDiceRoll {
		o.clearDicePool(ctx, draft.ID)
	}

	started, err := o.engine.StartGeneration(ctx, &engine.StartGenerationInput{
		Method: input.Method,
		Rolls:  rolls,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to start generation")
	}
	draft.Generation = started.Generation

	eval, err := o.engine.EvaluateGeneration(ctx, &engine.EvaluateGenerationInput{Generation: draft.Generation})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to evaluate generation")
	}

	if err := o.saveDraft(ctx, draft); err != nil {
		return nil, err
	}
	return &SetGenerationMethodOutput{Draft: draft, Evaluation: eval}, nil
}

// SetPointBuyScore sets one ability of a point buy draft. Over-budget
// allocations are stored and reported through Validation.
func (o *Orchestrator) SetPointBuyScore(ctx context.Context, input *SetPointBuyScoreInput) (*SetPointBuyScoreOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	ability, ok := dnd5e.ParseAbility(input.Ability)
	if !ok {
		return nil, errors.InvalidArgumentf("unknown ability %q", input.Ability)
	}

	draft, err := o.loadDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	out, err := o.engine.SetPointBuyScore(ctx, &engine.SetPointBuyScoreInput{
		Generation: draft.Generation,
		Ability:    ability,
		Score:      input.Score,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to set point buy score")
	}
	draft.Generation = out.Generation

	if err := o.saveDraft(ctx, draft); err != nil {
		return nil, err
	}
	return &SetPointBuyScoreOutput{Draft: draft, Validation: out.Validation}, nil
}

// AssignAbilitySlot assigns a standard array or dice pool slot to an ability.
// Slot engine.NoSlot clears the ability instead.
func (o *Orchestrator) AssignAbilitySlot(ctx context.Context, input *AssignAbilitySlotInput) (*AssignAbilitySlotOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	ability, ok := dnd5e.ParseAbility(input.Ability)
	if !ok {
		return nil, errors.InvalidArgumentf("unknown ability %q", input.Ability)
	}

	draft, err := o.loadDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	out, err := o.engine.AssignSlot(ctx, &engine.AssignSlotInput{
		Generation: draft.Generation,
		Ability:    ability,
		Slot:       input.Slot,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to assign slot")
	}
	draft.Generation = out.Generation

	eval, err := o.engine.EvaluateGeneration(ctx, &engine.EvaluateGenerationInput{Generation: draft.Generation})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to evaluate generation")
	}

	if err := o.saveDraft(ctx, draft); err != nil {
		return nil, err
	}
	return &AssignAbilitySlotOutput{Draft: draft, Evaluation: eval}, nil
}

// RerollAbilityScores discards the dice pool and its assignments
func (o *Orchestrator) RerollAbilityScores(
	ctx context.Context,
	input *RerollAbilityScoresInput,
) (*RerollAbilityScoresOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	draft, err := o.loadDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}
	if draft.Generation == nil || draft.Generation.Kind() != dnd5e.MethodDiceRoll {
		return nil, errors.FailedPrecondition("dice roll is not the active generation method")
	}

	rolls, err := o.rollPool(ctx, draft.ID)
	if err != nil {
		return nil, err
	}

	out, err := o.engine.Reroll(ctx, &engine.RerollInput{
		Generation: draft.Generation,
		Rolls:      rolls,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to reroll")
	}
	draft.Generation = out.Generation

	if err := o.saveDraft(ctx, draft); err != nil {
		return nil, err
	}
	return &RerollAbilityScoresOutput{Draft: draft, Rolls: rolls}, nil
}

func (o *Orchestrator) rollPool(ctx context.Context, draftID string) ([]dnd5e.AbilityRoll, error) {
	out, err := o.diceService.RollAbilityScores(ctx, &dice.RollAbilityScoresInput{EntityID: draftID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to roll ability scores")
	}
	return out.Rolls, nil
}
