package dice

import (
	"github.com/KirkDiggler/charforge/internal/entities/dnd5e"
	dicesession "github.com/KirkDiggler/charforge/internal/repositories/dice_session"
)

// GetRollSessionInput defines the request for getting a roll session
type GetRollSessionInput struct {
	EntityID string
	// Context defaults to the ability score context
	Context string
}

// GetRollSessionOutput defines the response for getting a roll session
type GetRollSessionOutput struct {
	Session *dicesession.DiceSession
}

// ClearRollSessionInput defines the request for clearing a roll session
type ClearRollSessionInput struct {
	EntityID string
	// Context defaults to the ability score context
	Context string
}

// ClearRollSessionOutput defines the response for clearing a roll session
type ClearRollSessionOutput struct {
	RollsDeleted int
}

// RollAbilityScoresInput defines the request for rolling a draft's ability pool
type RollAbilityScoresInput struct {
	EntityID string
}

// RollAbilityScoresOutput carries the six rolls in slot order
type RollAbilityScoresOutput struct {
	Rolls   []dnd5e.AbilityRoll
	Session *dicesession.DiceSession
}
