package engine

import (
	"context"

	"github.com/KirkDiggler/charforge/internal/entities/dnd5e"
	"github.com/KirkDiggler/charforge/internal/errors"
)

// Point buy limits
const (
	PointBuyBudget = 27
	PointBuyMin    = 8
	PointBuyMax    = 15
)

// Point buy violation reasons
const (
	ReasonBelowMinimum = "ability below minimum"
	ReasonAboveMaximum = "ability above maximum"
	ReasonOverBudget   = "too many points used"
)

// pointCosts[v-PointBuyMin] is the cost of score v
var pointCosts = [...]int{0, 1, 2, 3, 4, 5, 7, 9}

// PointCost returns the point buy cost of score. Scores outside [8,15] have
// no cost; they are reported as violations instead.
func PointCost(score int) (int, bool) {
	if score < PointBuyMin || score > PointBuyMax {
		return 0, false
	}
	return pointCosts[score-PointBuyMin], true
}

func (e *engine) ValidatePointBuy(
	_ context.Context,
	input *ValidatePointBuyInput,
) (*ValidatePointBuyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return validatePointBuy(input), nil
}

func validatePointBuy(input *ValidatePointBuyInput) *ValidatePointBuyOutput {
	out := &ValidatePointBuyOutput{}

	for _, ability := range dnd5e.Abilities {
		score, ok := input.Scores[ability]
		if !ok {
			score = PointBuyFloor
		}
		switch {
		case score < PointBuyMin:
			out.Violations = append(out.Violations, Violation{Ability: ability, Reason: ReasonBelowMinimum})
		case score > PointBuyMax:
			out.Violations = append(out.Violations, Violation{Ability: ability, Reason: ReasonAboveMaximum})
		default:
			cost, _ := PointCost(score)
			out.PointsUsed += cost
		}
	}

	if out.PointsUsed > PointBuyBudget {
		out.Violations = append(out.Violations, Violation{Reason: ReasonOverBudget})
	}

	out.PointsRemaining = PointBuyBudget - out.PointsUsed
	out.Valid = len(out.Violations) == 0
	return out
}
