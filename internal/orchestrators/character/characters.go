package character

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/charforge/internal/entities/dnd5e"
	"github.com/KirkDiggler/charforge/internal/errors"
	characterrepo "github.com/KirkDiggler/charforge/internal/repositories/character"
	"github.com/KirkDiggler/charforge/internal/sheet"
)

// Character operations

// GetCharacter retrieves a finalized character
func (o *Orchestrator) GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	char, err := o.loadCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}
	return &GetCharacterOutput{Character: char}, nil
}

// ListCharacters lists a player's characters, oldest first
func (o *Orchestrator) ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("player_id", input.PlayerID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	out, err := o.characterRepo.ListByPlayerID(ctx, characterrepo.ListByPlayerIDInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list characters")
	}
	return &ListCharactersOutput{Characters: out.Characters}, nil
}

// DeleteCharacter deletes a finalized character
func (o *Orchestrator) DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("character_id", input.CharacterID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	if _, err := o.characterRepo.Delete(ctx, characterrepo.DeleteInput{ID: input.CharacterID}); err != nil {
		return nil, errors.Wrapf(err, "failed to delete character")
	}
	return &DeleteCharacterOutput{Message: "character deleted"}, nil
}

// ExportCharacterSheet renders a character as a PDF sheet
func (o *Orchestrator) ExportCharacterSheet(
	ctx context.Context,
	input *ExportCharacterSheetInput,
) (*ExportCharacterSheetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	char, err := o.loadCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	pdf, err := sheet.Render(char)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to render character sheet")
	}

	return &ExportCharacterSheetOutput{
		Filename: sheetFilename(char),
		PDF:      pdf,
	}, nil
}

func (o *Orchestrator) loadCharacter(ctx context.Context, characterID string) (*dnd5e.Character, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("character_id", characterID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	out, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: characterID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get character")
	}
	return out.Character, nil
}

// sheetFilename slugs the character name, e.g. "Thorin Oakenshield" -> "thorin-oakenshield.pdf"
func sheetFilename(char *dnd5e.Character) string {
	slug := strings.Join(strings.Fields(dnd5e.NormalizeName(char.Name)), "-")
	if slug == "" {
		slug = char.ID
	}
	return slug + ".pdf"
}

// Data loading for UI

// ListRaces returns the race catalog
func (o *Orchestrator) ListRaces(ctx context.Context, input *ListRacesInput) (*ListRacesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	races, err := o.externalClient.ListRaces(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list races")
	}
	return &ListRacesOutput{Races: races}, nil
}

// ListClasses returns the class catalog with each class's subclasses
func (o *Orchestrator) ListClasses(ctx context.Context, input *ListClassesInput) (*ListClassesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	classes, err := o.externalClient.ListClasses(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list classes")
	}

	result := make([]*ClassWithSubclasses, len(classes))
	g, gctx := errgroup.WithContext(ctx)
	for i, class := range classes {
		g.Go(func() error {
			subclasses, err := o.externalClient.ListSubclasses(gctx, class.ID)
			if err != nil {
				return errors.Wrapf(err, "failed to list subclasses for %s", class.ID)
			}
			result[i] = &ClassWithSubclasses{Class: class, Subclasses: subclasses}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &ListClassesOutput{Classes: result}, nil
}

// ListBackgrounds returns the background catalog
func (o *Orchestrator) ListBackgrounds(ctx context.Context, input *ListBackgroundsInput) (*ListBackgroundsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	backgrounds, err := o.externalClient.ListBackgrounds(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list backgrounds")
	}
	return &ListBackgroundsOutput{Backgrounds: backgrounds}, nil
}
