// Package dicesession stores short-lived dice roll sessions, such as the six
// rolled ability scores a draft assigns from
package dicesession

import (
	"context"
	"time"

	"github.com/KirkDiggler/charforge/internal/entities/dnd5e"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=dicesessionmock github.com/KirkDiggler/charforge/internal/repositories/dice_session Repository

// ContextAbilityScores groups the rolls for a draft's ability pool
const ContextAbilityScores = "ability_scores"

// DiceSession is a collection of rolls grouped by entity and context
type DiceSession struct {
	// Entity that owns these rolls (e.g. a draft ID)
	EntityID string `json:"entity_id"`

	// Context for grouping related rolls (e.g. "ability_scores")
	Context string `json:"context"`

	Rolls []DiceRoll `json:"rolls"`

	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// DiceRoll is a single stored roll
type DiceRoll struct {
	RollID string `json:"roll_id"`

	// Dice notation that was rolled (e.g. "4d6")
	Notation string `json:"notation"`

	// Kept dice, highest first
	Dice []int `json:"dice"`

	// Dice discarded by drop-lowest
	Dropped []int `json:"dropped,omitempty"`

	Total int `json:"total"`

	Description string `json:"description,omitempty"`
}

// AbilityRoll converts the stored roll back to its engine form
func (d DiceRoll) AbilityRoll() dnd5e.AbilityRoll {
	roll := dnd5e.AbilityRoll{
		Kept:  append([]int(nil), d.Dice...),
		Total: d.Total,
	}
	if len(d.Dropped) > 0 {
		roll.Dropped = d.Dropped[0]
	}
	return roll
}

// Totals returns the total of each roll in order
func (s *DiceSession) Totals() []int {
	out := make([]int, len(s.Rolls))
	for i, r := range s.Rolls {
		out[i] = r.Total
	}
	return out
}

// AbilityRolls returns the rolls in engine form
func (s *DiceSession) AbilityRolls() []dnd5e.AbilityRoll {
	out := make([]dnd5e.AbilityRoll, len(s.Rolls))
	for i, r := range s.Rolls {
		out[i] = r.AbilityRoll()
	}
	return out
}

// CreateInput contains parameters for creating a dice session
type CreateInput struct {
	EntityID string
	Context  string
	Rolls    []DiceRoll
	// TTL overrides the repository default when non-zero
	TTL time.Duration
}

// CreateOutput contains the result of creating a dice session
type CreateOutput struct {
	Session *DiceSession
}

// GetInput contains parameters for retrieving a dice session
type GetInput struct {
	EntityID string
	Context  string
}

// GetOutput contains the result of retrieving a dice session
type GetOutput struct {
	Session *DiceSession
}

// DeleteInput contains parameters for deleting a dice session
type DeleteInput struct {
	EntityID string
	Context  string
}

// DeleteOutput contains the result of deleting a dice session
type DeleteOutput struct {
	RollsDeleted int
}

// Repository defines the interface for dice session storage operations
type Repository interface {
	// Create stores a new dice session, replacing any session for the same key
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a dice session by entity ID and context
	// Returns errors.NotFound when missing or expired
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete removes a dice session. Deleting a missing session is not an error.
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// Update replaces an existing dice session, keeping its expiry
	Update(ctx context.Context, session *DiceSession) error
}
