// Package character provides the interface for finalized character persistence
package character

//go:generate mockgen -destination=mock/mock_repository.go -package=charactermock github.com/KirkDiggler/charforge/internal/repositories/character Repository

import (
	"context"

	"github.com/KirkDiggler/charforge/internal/entities/dnd5e"
	"github.com/KirkDiggler/charforge/internal/errors"
)

// Repository defines the interface for character persistence
type Repository interface {
	// Create stores a new character
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if character with same ID exists
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a character by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if character doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete deletes a character by ID
	// Returns errors.NotFound if character doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// ListByPlayerID retrieves all characters for a player, oldest first
	// Returns errors.InvalidArgument for empty player IDs
	ListByPlayerID(ctx context.Context, input ListByPlayerIDInput) (*ListByPlayerIDOutput, error)
}

// CreateInput defines the input for creating a character
type CreateInput struct {
	Character *dnd5e.Character
}

// CreateOutput defines the output for creating a character
type CreateOutput struct {
	Character *dnd5e.Character
}

// GetInput defines the input for getting a character
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a character
type GetOutput struct {
	Character *dnd5e.Character
}

// DeleteInput defines the input for deleting a character
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a character
type DeleteOutput struct{}

// ListByPlayerIDInput defines the input for listing a player's characters
type ListByPlayerIDInput struct {
	PlayerID string
}

// ListByPlayerIDOutput defines the output for listing a player's characters
type ListByPlayerIDOutput struct {
	Characters []*dnd5e.Character
}

const (
	errCharacterNil     = "character cannot be nil"
	errCharacterIDEmpty = "character ID cannot be empty"
	errPlayerIDEmpty    = "player ID cannot be empty"
)

func validateCharacter(c *dnd5e.Character) error {
	if c == nil {
		return errors.InvalidArgument(errCharacterNil)
	}
	if c.ID == "" {
		return errors.InvalidArgument(errCharacterIDEmpty)
	}
	if c.PlayerID == "" {
		return errors.InvalidArgument(errPlayerIDEmpty)
	}
	return nil
}
