package v1alpha1

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/charforge/internal/entities/dnd5e"
	"github.com/KirkDiggler/charforge/internal/errors"
	"github.com/KirkDiggler/charforge/internal/orchestrators/character"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	CharacterService character.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c.CharacterService == nil {
		return errors.InvalidArgument("character service is required")
	}
	return nil
}

// Handler implements the CharacterCreation gRPC service
type Handler struct {
	characterService character.Service
}

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		characterService: cfg.CharacterService,
	}, nil
}

var _ CharacterCreationServer = (*Handler)(nil)

// CreateDraft starts a new draft for a player
func (h *Handler) CreateDraft(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return serve(ctx, req, func(ctx context.Context, r *CreateDraftRequest) (*DraftResponse, error) {
		out, err := h.characterService.CreateDraft(ctx, &character.CreateDraftInput{
			PlayerID: r.PlayerID,
			Name:     r.Name,
		})
		if err != nil {
			return nil, err
		}
		return &DraftResponse{Draft: out.Draft}, nil
	})
}

// GetDraft returns a draft by ID or the player's current draft
func (h *Handler) GetDraft(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return serve(ctx, req, func(ctx context.Context, r *GetDraftRequest) (*DraftResponse, error) {
		out, err := h.characterService.GetDraft(ctx, &character.GetDraftInput{
			DraftID:  r.DraftID,
			PlayerID: r.PlayerID,
		})
		if err != nil {
			return nil, err
		}
		return &DraftResponse{Draft: out.Draft}, nil
	})
}

// DeleteDraft discards a draft
func (h *Handler) DeleteDraft(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return serve(ctx, req, func(ctx context.Context, r *DraftRequest) (*MessageResponse, error) {
		out, err := h.characterService.DeleteDraft(ctx, &character.DeleteDraftInput{DraftID: r.DraftID})
		if err != nil {
			return nil, err
		}
		return &MessageResponse{Message: out.Message}, nil
	})
}

// UpdateName renames the draft
func (h *Handler) UpdateName(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return serve(ctx, req, func(ctx context.Context, r *UpdateNameRequest) (*DraftResponse, error) {
		out, err := h.characterService.UpdateName(ctx, &character.UpdateNameInput{
			DraftID: r.DraftID,
			Name:    r.Name,
		})
		if err != nil {
			return nil, err
		}
		return &DraftResponse{Draft: out.Draft}, nil
	})
}

// SelectRace records the draft's race
func (h *Handler) SelectRace(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return serve(ctx, req, func(ctx context.Context, r *SelectRaceRequest) (*SelectRaceResponse, error) {
		out, err := h.characterService.SelectRace(ctx, &character.SelectRaceInput{
			DraftID: r.DraftID,
			RaceID:  r.RaceID,
		})
		if err != nil {
			return nil, err
		}
		return &SelectRaceResponse{Draft: out.Draft, Race: out.Race}, nil
	})
}

// SelectClass records the draft's class
func (h *Handler) SelectClass(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return serve(ctx, req, func(ctx context.Context, r *SelectClassRequest) (*SelectClassResponse, error) {
		out, err := h.characterService.SelectClass(ctx, &character.SelectClassInput{
			DraftID: r.DraftID,
			ClassID: r.ClassID,
		})
		if err != nil {
			return nil, err
		}
		return &SelectClassResponse{Draft: out.Draft, Class: out.Class, SkillsReset: out.SkillsReset}, nil
	})
}

// SelectClassSkills replaces the chosen class skills
func (h *Handler) SelectClassSkills(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return serve(ctx, req, func(ctx context.Context, r *SelectClassSkillsRequest) (*DraftResponse, error) {
		out, err := h.characterService.SelectClassSkills(ctx, &character.SelectClassSkillsInput{
			DraftID: r.DraftID,
			Skills:  r.Skills,
		})
		if err != nil {
			return nil, err
		}
		return &DraftResponse{Draft: out.Draft}, nil
	})
}

// SelectBackground records the draft's background
func (h *Handler) SelectBackground(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return serve(ctx, req, func(ctx context.Context, r *SelectBackgroundRequest) (*SelectBackgroundResponse, error) {
		out, err := h.characterService.SelectBackground(ctx, &character.SelectBackgroundInput{
			DraftID:      r.DraftID,
			BackgroundID: r.BackgroundID,
		})
		if err != nil {
			return nil, err
		}
		return &SelectBackgroundResponse{
			Draft:       out.Draft,
			Background:  out.Background,
			OptionReset: out.OptionReset,
		}, nil
	})
}

// SelectEquipmentOption picks background equipment A or B
func (h *Handler) SelectEquipmentOption(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return serve(ctx, req, func(ctx context.Context, r *SelectEquipmentOptionRequest) (*SelectEquipmentOptionResponse, error) {
		out, err := h.characterService.SelectEquipmentOption(ctx, &character.SelectEquipmentOptionInput{
			DraftID: r.DraftID,
			Option:  dnd5e.EquipmentOption(r.Option),
		})
		if err != nil {
			return nil, err
		}
		return &SelectEquipmentOptionResponse{Draft: out.Draft, Items: out.Items}, nil
	})
}

// SetGenerationMethod switches the ability score method
func (h *Handler) SetGenerationMethod(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return serve(ctx, req, func(ctx context.Context, r *SetGenerationMethodRequest) (*GenerationResponse, error) {
		out, err := h.characterService.SetGenerationMethod(ctx, &character.SetGenerationMethodInput{
			DraftID: r.DraftID,
			Method:  dnd5e.MethodKind(r.Method),
		})
		if err != nil {
			return nil, err
		}
		return &GenerationResponse{Draft: out.Draft, Evaluation: toEvaluation(out.Evaluation)}, nil
	})
}

// SetPointBuyScore sets one point buy score
func (h *Handler) SetPointBuyScore(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return serve(ctx, req, func(ctx context.Context, r *SetPointBuyScoreRequest) (*SetPointBuyScoreResponse, error) {
		out, err := h.characterService.SetPointBuyScore(ctx, &character.SetPointBuyScoreInput{
			DraftID: r.DraftID,
			Ability: r.Ability,
			Score:   r.Score,
		})
		if err != nil {
			return nil, err
		}
		return &SetPointBuyScoreResponse{Draft: out.Draft, Validation: toPointBuy(out.Validation)}, nil
	})
}

// AssignAbilitySlot assigns a pool slot to an ability
func (h *Handler) AssignAbilitySlot(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return serve(ctx, req, func(ctx context.Context, r *AssignAbilitySlotRequest) (*GenerationResponse, error) {
		out, err := h.characterService.AssignAbilitySlot(ctx, &character.AssignAbilitySlotInput{
			DraftID: r.DraftID,
			Ability: r.Ability,
			Slot:    r.Slot,
		})
		if err != nil {
			return nil, err
		}
		return &GenerationResponse{Draft: out.Draft, Evaluation: toEvaluation(out.Evaluation)}, nil
	})
}

// RerollAbilityScores rolls a fresh dice pool
func (h *Handler) RerollAbilityScores(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return serve(ctx, req, func(ctx context.Context, r *DraftRequest) (*RerollAbilityScoresResponse, error) {
		out, err := h.characterService.RerollAbilityScores(ctx, &character.RerollAbilityScoresInput{DraftID: r.DraftID})
		if err != nil {
			return nil, err
		}
		return &RerollAbilityScoresResponse{Draft: out.Draft, Rolls: out.Rolls}, nil
	})
}

// AdvanceStep moves the wizard forward
func (h *Handler) AdvanceStep(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return serve(ctx, req, func(ctx context.Context, r *DraftRequest) (*DraftResponse, error) {
		out, err := h.characterService.AdvanceStep(ctx, &character.AdvanceStepInput{DraftID: r.DraftID})
		if err != nil {
			return nil, err
		}
		return &DraftResponse{Draft: out.Draft}, nil
	})
}

// RetreatStep moves the wizard back
func (h *Handler) RetreatStep(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return serve(ctx, req, func(ctx context.Context, r *DraftRequest) (*DraftResponse, error) {
		out, err := h.characterService.RetreatStep(ctx, &character.RetreatStepInput{DraftID: r.DraftID})
		if err != nil {
			return nil, err
		}
		return &DraftResponse{Draft: out.Draft}, nil
	})
}

// PreviewCharacter returns provisional statistics for a draft
func (h *Handler) PreviewCharacter(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return serve(ctx, req, func(ctx context.Context, r *DraftRequest) (*PreviewCharacterResponse, error) {
		out, err := h.characterService.PreviewCharacter(ctx, &character.PreviewCharacterInput{DraftID: r.DraftID})
		if err != nil {
			return nil, err
		}
		return &PreviewCharacterResponse{
			Draft:       out.Draft,
			Race:        out.Race,
			Class:       out.Class,
			Background:  out.Background,
			Generation:  toEvaluation(out.Generation),
			Derived:     toDerived(out.Derived),
			StepReasons: toStepReasons(out.StepReasons),
		}, nil
	})
}

// FinalizeDraft turns the draft into a character
func (h *Handler) FinalizeDraft(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return serve(ctx, req, func(ctx context.Context, r *DraftRequest) (*FinalizeDraftResponse, error) {
		out, err := h.characterService.FinalizeDraft(ctx, &character.FinalizeDraftInput{DraftID: r.DraftID})
		if err != nil {
			return nil, err
		}
		return &FinalizeDraftResponse{Character: out.Character, DraftDeleted: out.DraftDeleted}, nil
	})
}

// GetCharacter returns a finalized character
func (h *Handler) GetCharacter(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return serve(ctx, req, func(ctx context.Context, r *CharacterRequest) (*CharacterResponse, error) {
		out, err := h.characterService.GetCharacter(ctx, &character.GetCharacterInput{CharacterID: r.CharacterID})
		if err != nil {
			return nil, err
		}
		return &CharacterResponse{Character: out.Character}, nil
	})
}

// ListCharacters returns a player's characters
func (h *Handler) ListCharacters(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return serve(ctx, req, func(ctx context.Context, r *ListCharactersRequest) (*ListCharactersResponse, error) {
		out, err := h.characterService.ListCharacters(ctx, &character.ListCharactersInput{PlayerID: r.PlayerID})
		if err != nil {
			return nil, err
		}
		return &ListCharactersResponse{Characters: out.Characters}, nil
	})
}

// DeleteCharacter deletes a character
func (h *Handler) DeleteCharacter(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return serve(ctx, req, func(ctx context.Context, r *CharacterRequest) (*MessageResponse, error) {
		out, err := h.characterService.DeleteCharacter(ctx, &character.DeleteCharacterInput{CharacterID: r.CharacterID})
		if err != nil {
			return nil, err
		}
		return &MessageResponse{Message: out.Message}, nil
	})
}

// ExportCharacterSheet renders a character sheet PDF
func (h *Handler) ExportCharacterSheet(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return serve(ctx, req, func(ctx context.Context, r *CharacterRequest) (*ExportCharacterSheetResponse, error) {
		out, err := h.characterService.ExportCharacterSheet(ctx, &character.ExportCharacterSheetInput{
			CharacterID: r.CharacterID,
		})
		if err != nil {
			return nil, err
		}
		return &ExportCharacterSheetResponse{Filename: out.Filename, PDF: out.PDF}, nil
	})
}

// ListRaces returns the race catalog
func (h *Handler) ListRaces(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return serve(ctx, req, func(ctx context.Context, _ *EmptyRequest) (*ListRacesResponse, error) {
		out, err := h.characterService.ListRaces(ctx, &character.ListRacesInput{})
		if err != nil {
			return nil, err
		}
		return &ListRacesResponse{Races: out.Races}, nil
	})
}

// ListClasses returns the class catalog with subclasses
func (h *Handler) ListClasses(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return serve(ctx, req, func(ctx context.Context, _ *EmptyRequest) (*ListClassesResponse, error) {
		out, err := h.characterService.ListClasses(ctx, &character.ListClassesInput{})
		if err != nil {
			return nil, err
		}
		classes := make([]*ClassEntry, 0, len(out.Classes))
		for _, c := range out.Classes {
			classes = append(classes, &ClassEntry{Class: c.Class, Subclasses: c.Subclasses})
		}
		return &ListClassesResponse{Classes: classes}, nil
	})
}

// ListBackgrounds returns the background catalog
func (h *Handler) ListBackgrounds(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return serve(ctx, req, func(ctx context.Context, _ *EmptyRequest) (*ListBackgroundsResponse, error) {
		out, err := h.characterService.ListBackgrounds(ctx, &character.ListBackgroundsInput{})
		if err != nil {
			return nil, err
		}
		return &ListBackgroundsResponse{Backgrounds: out.Backgrounds}, nil
	})
}
