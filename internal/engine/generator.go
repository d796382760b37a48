package engine

import (
	"context"
	"sort"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/charforge/internal/entities/dnd5e"
	"github.com/KirkDiggler/charforge/internal/errors"
)

const (
	// PointBuyFloor is the starting value of every point buy ability
	PointBuyFloor = 8

	// PoolSize is the number of slots in an assignment pool
	PoolSize = 6

	// ReasonIncomplete is reported while an assignment lacks abilities
	ReasonIncomplete = "incomplete"

	// NoSlot as an assigned slot clears the ability's assignment
	NoSlot = -1

	abilityDiceCount = 4
	abilityDieSize   = 6
)

var standardArray = []int{15, 14, 13, 12, 10, 8}

// StandardArrayValues returns a copy of the standard array
func StandardArrayValues() []int {
	out := make([]int, len(standardArray))
	copy(out, standardArray)
	return out
}

// RollAbilityScore rolls 4d6, sorts descending and keeps the highest three
func RollAbilityScore(roller dice.Roller) (dnd5e.AbilityRoll, error) {
	rolls, err := roller.RollN(abilityDiceCount, abilityDieSize)
	if err != nil {
		return dnd5e.AbilityRoll{}, errors.Wrap(err, "failed to roll ability score")
	}
	if len(rolls) != abilityDiceCount {
		return dnd5e.AbilityRoll{}, errors.Internalf("roller returned %d dice, expected %d", len(rolls), abilityDiceCount)
	}

	sorted := make([]int, len(rolls))
	copy(sorted, rolls)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	kept := sorted[:abilityDiceCount-1]
	total := 0
	for _, d := range kept {
		total += d
	}

	return dnd5e.AbilityRoll{
		Kept:    kept,
		Dropped: sorted[abilityDiceCount-1],
		Total:   total,
	}, nil
}

func (e *engine) RollAbilityScores(
	_ context.Context,
	input *RollAbilityScoresInput,
) (*RollAbilityScoresOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	count := input.Count
	if count == 0 {
		count = PoolSize
	}
	if count < 0 {
		return nil, errors.InvalidArgumentf("count must be positive, got %d", count)
	}

	rolls, err := e.rollPool(count)
	if err != nil {
		return nil, err
	}
	return &RollAbilityScoresOutput{Rolls: rolls}, nil
}

func (e *engine) rollPool(count int) ([]dnd5e.AbilityRoll, error) {
	rolls := make([]dnd5e.AbilityRoll, 0, count)
	for i := 0; i < count; i++ {
		roll, err := RollAbilityScore(e.roller)
		if err != nil {
			return nil, err
		}
		rolls = append(rolls, roll)
	}
	return rolls, nil
}

func (e *engine) newDiceRoll(rolls []dnd5e.AbilityRoll) (*dnd5e.DiceRoll, error) {
	if len(rolls) == 0 {
		var err error
		rolls, err = e.rollPool(PoolSize)
		if err != nil {
			return nil, err
		}
	}
	if len(rolls) != PoolSize {
		return nil, errors.InvalidArgumentf("dice pool must hold %d rolls, got %d", PoolSize, len(rolls))
	}

	pool := make([]int, len(rolls))
	for i, r := range rolls {
		pool[i] = r.Total
	}
	return &dnd5e.DiceRoll{
		Pool:       pool,
		Rolls:      rolls,
		Assignment: dnd5e.Assignment{},
	}, nil
}

func (e *engine) StartGeneration(
	_ context.Context,
	input *StartGenerationInput,
) (*StartGenerationOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	switch input.Method {
	case dnd5e.MethodPointBuy:
		return &StartGenerationOutput{
			Generation: &dnd5e.PointBuy{Scores: dnd5e.NewAbilityScores(PointBuyFloor)},
		}, nil
	case dnd5e.MethodStandardArray:
		return &StartGenerationOutput{
			Generation: &dnd5e.StandardArray{Assignment: dnd5e.Assignment{}},
		}, nil
	case dnd5e.MethodDiceRoll:
		roll, err := e.newDiceRoll(input.Rolls)
		if err != nil {
			return nil, err
		}
		return &StartGenerationOutput{Generation: roll}, nil
	default:
		return nil, errors.InvalidArgumentf("unknown generation method %q", input.Method)
	}
}

func (e *engine) SetPointBuyScore(
	ctx context.Context,
	input *SetPointBuyScoreInput,
) (*SetPointBuyScoreOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	pb, ok := input.Generation.(*dnd5e.PointBuy)
	if !ok {
		return nil, errors.FailedPrecondition("point buy is not the active generation method")
	}
	if !input.Ability.Valid() {
		return nil, errors.InvalidArgumentf("unknown ability %q", input.Ability)
	}

	scores := pb.Scores.Clone()
	if scores == nil {
		scores = dnd5e.NewAbilityScores(PointBuyFloor)
	}
	scores[input.Ability] = input.Score
	updated := &dnd5e.PointBuy{Scores: scores}

	validation, err := e.ValidatePointBuy(ctx, &ValidatePointBuyInput{Scores: scores})
	if err != nil {
		return nil, err
	}

	return &SetPointBuyScoreOutput{Generation: updated, Validation: validation}, nil
}

func (e *engine) AssignSlot(
	_ context.Context,
	input *AssignSlotInput,
) (*AssignSlotOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !input.Ability.Valid() {
		return nil, errors.InvalidArgumentf("unknown ability %q", input.Ability)
	}

	switch gen := input.Generation.(type) {
	case *dnd5e.StandardArray:
		if err := validateSlot(input.Slot, len(standardArray)); err != nil {
			return nil, err
		}
		assignment := assign(gen.Assignment, input.Ability, input.Slot)
		return &AssignSlotOutput{Generation: &dnd5e.StandardArray{Assignment: assignment}}, nil

	case *dnd5e.DiceRoll:
		if err := validateSlot(input.Slot, len(gen.Pool)); err != nil {
			return nil, err
		}
		assignment := assign(gen.Assignment, input.Ability, input.Slot)
		return &AssignSlotOutput{Generation: &dnd5e.DiceRoll{
			Pool:       gen.Pool,
			Rolls:      gen.Rolls,
			Assignment: assignment,
		}}, nil

	default:
		return nil, errors.FailedPrecondition("active generation method does not use slot assignment")
	}
}

func assign(current dnd5e.Assignment, ability dnd5e.Ability, slot int) dnd5e.Assignment {
	assignment := current.Clone()
	if slot == NoSlot {
		assignment.Unassign(ability)
		return assignment
	}
	assignment.Assign(ability, slot)
	return assignment
}

func validateSlot(slot, size int) error {
	if slot == NoSlot {
		return nil
	}
	if slot < 0 || slot >= size {
		return errors.InvalidArgumentf("slot %d out of range [0, %d)", slot, size)
	}
	return nil
}

func (e *engine) Reroll(
	_ context.Context,
	input *RerollInput,
) (*RerollOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if _, ok := input.Generation.(*dnd5e.DiceRoll); !ok {
		return nil, errors.FailedPrecondition("dice roll is not the active generation method")
	}

	roll, err := e.newDiceRoll(input.Rolls)
	if err != nil {
		return nil, err
	}
	return &RerollOutput{Generation: roll}, nil
}

func (e *engine) EvaluateGeneration(
	ctx context.Context,
	input *EvaluateGenerationInput,
) (*EvaluateGenerationOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	switch gen := input.Generation.(type) {
	case *dnd5e.PointBuy:
		validation, err := e.ValidatePointBuy(ctx, &ValidatePointBuyInput{Scores: gen.Scores})
		if err != nil {
			return nil, err
		}
		return &EvaluateGenerationOutput{
			BaseScores: gen.Scores.Clone(),
			Complete:   validation.Valid,
			Reasons:    validation.Reasons(),
			PointBuy:   validation,
		}, nil

	case *dnd5e.StandardArray:
		return evaluateAssignment(gen.Assignment, standardArray), nil

	case *dnd5e.DiceRoll:
		return evaluateAssignment(gen.Assignment, gen.Pool), nil

	default:
		return &EvaluateGenerationOutput{
			BaseScores: dnd5e.AbilityScores{},
			Reasons:    []string{ReasonIncomplete},
		}, nil
	}
}

func evaluateAssignment(assignment dnd5e.Assignment, pool []int) *EvaluateGenerationOutput {
	out := &EvaluateGenerationOutput{
		BaseScores: assignment.Scores(pool),
		Complete:   assignment.Complete(),
	}
	if !out.Complete {
		out.Reasons = []string{ReasonIncomplete}
	}
	return out
}
