package v1alpha1

import (
	"github.com/KirkDiggler/charforge/internal/engine"
	"github.com/KirkDiggler/charforge/internal/entities/dnd5e"
	dicesession "github.com/KirkDiggler/charforge/internal/repositories/dice_session"
)

// Requests

// CreateDraftRequest starts a draft
type CreateDraftRequest struct {
	PlayerID string `json:"player_id"`
	Name     string `json:"name,omitempty"`
}

// GetDraftRequest looks a draft up by ID or by player
type GetDraftRequest struct {
	DraftID  string `json:"draft_id,omitempty"`
	PlayerID string `json:"player_id,omitempty"`
}

// DraftRequest addresses a draft
type DraftRequest struct {
	DraftID string `json:"draft_id"`
}

// UpdateNameRequest renames a draft
type UpdateNameRequest struct {
	DraftID string `json:"draft_id"`
	Name    string `json:"name"`
}

// SelectRaceRequest picks a race
type SelectRaceRequest struct {
	DraftID string `json:"draft_id"`
	RaceID  string `json:"race_id"`
}

// SelectClassRequest picks a class
type SelectClassRequest struct {
	DraftID string `json:"draft_id"`
	ClassID string `json:"class_id"`
}

// SelectClassSkillsRequest replaces the chosen class skills
type SelectClassSkillsRequest struct {
	DraftID string   `json:"draft_id"`
	Skills  []string `json:"skills"`
}

// SelectBackgroundRequest picks a background
type SelectBackgroundRequest struct {
	DraftID      string `json:"draft_id"`
	BackgroundID string `json:"background_id"`
}

// SelectEquipmentOptionRequest picks background equipment A or B
type SelectEquipmentOptionRequest struct {
	DraftID string `json:"draft_id"`
	Option  string `json:"option"`
}

// SetGenerationMethodRequest switches the ability score method
type SetGenerationMethodRequest struct {
	DraftID string `json:"draft_id"`
	Method  string `json:"method"`
}

// SetPointBuyScoreRequest sets one point buy score
type SetPointBuyScoreRequest struct {
	DraftID string `json:"draft_id"`
	Ability string `json:"ability"`
	Score   int    `json:"score"`
}

// AssignAbilitySlotRequest assigns a pool slot
type AssignAbilitySlotRequest struct {
	DraftID string `json:"draft_id"`
	Ability string `json:"ability"`
	Slot    int    `json:"slot"`
}

// CharacterRequest addresses a character
type CharacterRequest struct {
	CharacterID string `json:"character_id"`
}

// ListCharactersRequest lists a player's characters
type ListCharactersRequest struct {
	PlayerID string `json:"player_id"`
}

// EmptyRequest carries no fields
type EmptyRequest struct{}

// RollSessionRequest addresses a dice roll session
type RollSessionRequest struct {
	EntityID string `json:"entity_id"`
	Context  string `json:"context,omitempty"`
}

// Responses

// DraftResponse carries a draft
type DraftResponse struct {
	Draft *dnd5e.CharacterDraft `json:"draft"`
}

// SelectRaceResponse carries the draft and chosen race
type SelectRaceResponse struct {
	Draft *dnd5e.CharacterDraft `json:"draft"`
	Race  *dnd5e.Race           `json:"race"`
}

// SelectClassResponse carries the draft and chosen class
type SelectClassResponse struct {
	Draft       *dnd5e.CharacterDraft `json:"draft"`
	Class       *dnd5e.Class          `json:"class"`
	SkillsReset bool                  `json:"skills_reset"`
}

// SelectBackgroundResponse carries the draft and chosen background
type SelectBackgroundResponse struct {
	Draft       *dnd5e.CharacterDraft `json:"draft"`
	Background  *dnd5e.Background     `json:"background"`
	OptionReset bool                  `json:"option_reset"`
}

// SelectEquipmentOptionResponse carries the draft and the option's items
type SelectEquipmentOptionResponse struct {
	Draft *dnd5e.CharacterDraft `json:"draft"`
	Items []string              `json:"items"`
}

// PointBuy is the budget state of a point buy allocation
type PointBuy struct {
	PointsUsed      int                `json:"points_used"`
	PointsRemaining int                `json:"points_remaining"`
	Valid           bool               `json:"valid"`
	Violations      []engine.Violation `json:"violations"`
}

// Evaluation is the state of the draft's generation method
type Evaluation struct {
	BaseScores dnd5e.AbilityScores `json:"base_scores"`
	Complete   bool                `json:"complete"`
	Reasons    []string            `json:"reasons"`
	PointBuy   *PointBuy           `json:"point_buy,omitempty"`
}

// GenerationResponse carries the draft and its generation state
type GenerationResponse struct {
	Draft      *dnd5e.CharacterDraft `json:"draft"`
	Evaluation *Evaluation           `json:"evaluation"`
}

// SetPointBuyScoreResponse carries the draft and its point buy validation
type SetPointBuyScoreResponse struct {
	Draft      *dnd5e.CharacterDraft `json:"draft"`
	Validation *PointBuy             `json:"validation"`
}

// RerollAbilityScoresResponse carries the draft and its fresh pool
type RerollAbilityScoresResponse struct {
	Draft *dnd5e.CharacterDraft `json:"draft"`
	Rolls []dnd5e.AbilityRoll   `json:"rolls"`
}

// Derived is the stat pipeline output
type Derived struct {
	EffectiveScores     dnd5e.AbilityScores   `json:"effective_scores"`
	FinalScores         dnd5e.AbilityScores   `json:"final_scores"`
	Modifiers           map[dnd5e.Ability]int `json:"modifiers"`
	Stats               engine.CombatStats    `json:"stats"`
	SavingThrows        map[dnd5e.Ability]int `json:"saving_throws"`
	SkillProficiencies  []string              `json:"skill_proficiencies"`
	SkillBonuses        []engine.SkillBonus   `json:"skill_bonuses"`
	ClassEquipment      []string              `json:"class_equipment"`
	BackgroundEquipment []string              `json:"background_equipment"`
	Equipment           []string              `json:"equipment"`
}

// PreviewCharacterResponse carries provisional statistics
type PreviewCharacterResponse struct {
	Draft       *dnd5e.CharacterDraft `json:"draft"`
	Race        *dnd5e.Race           `json:"race,omitempty"`
	Class       *dnd5e.Class          `json:"class,omitempty"`
	Background  *dnd5e.Background     `json:"background,omitempty"`
	Generation  *Evaluation           `json:"generation"`
	Derived     *Derived              `json:"derived"`
	StepReasons map[string][]string   `json:"step_reasons"`
}

// FinalizeDraftResponse carries the new character
type FinalizeDraftResponse struct {
	Character    *dnd5e.Character `json:"character"`
	DraftDeleted bool             `json:"draft_deleted"`
}

// CharacterResponse carries a character
type CharacterResponse struct {
	Character *dnd5e.Character `json:"character"`
}

// ListCharactersResponse carries a player's characters
type ListCharactersResponse struct {
	Characters []*dnd5e.Character `json:"characters"`
}

// MessageResponse acknowledges a deletion
type MessageResponse struct {
	Message string `json:"message"`
}

// ExportCharacterSheetResponse carries the PDF, base64 encoded on the wire
type ExportCharacterSheetResponse struct {
	Filename string `json:"filename"`
	PDF      []byte `json:"pdf"`
}

// ListRacesResponse carries the races
type ListRacesResponse struct {
	Races []*dnd5e.Race `json:"races"`
}

// ClassEntry is a class with its subclasses
type ClassEntry struct {
	*dnd5e.Class
	Subclasses []*dnd5e.Subclass `json:"subclasses"`
}

// ListClassesResponse carries the classes
type ListClassesResponse struct {
	Classes []*ClassEntry `json:"classes"`
}

// ListBackgroundsResponse carries the backgrounds
type ListBackgroundsResponse struct {
	Backgrounds []*dnd5e.Background `json:"backgrounds"`
}

// RollSessionResponse carries a dice roll session
type RollSessionResponse struct {
	Session *dicesession.DiceSession `json:"session"`
}

// ClearRollSessionResponse reports the cleared rolls
type ClearRollSessionResponse struct {
	Message      string `json:"message"`
	RollsCleared int    `json:"rolls_cleared"`
}

func toEvaluation(out *engine.EvaluateGenerationOutput) *Evaluation {
	if out == nil {
		return nil
	}
	return &Evaluation{
		BaseScores: out.BaseScores,
		Complete:   out.Complete,
		Reasons:    out.Reasons,
		PointBuy:   toPointBuy(out.PointBuy),
	}
}

func toPointBuy(out *engine.ValidatePointBuyOutput) *PointBuy {
	if out == nil {
		return nil
	}
	return &PointBuy{
		PointsUsed:      out.PointsUsed,
		PointsRemaining: out.PointsRemaining,
		Valid:           out.Valid,
		Violations:      out.Violations,
	}
}

func toDerived(out *engine.DeriveCharacterOutput) *Derived {
	if out == nil {
		return nil
	}
	return &Derived{
		EffectiveScores:     out.EffectiveScores,
		FinalScores:         out.FinalScores,
		Modifiers:           out.Modifiers,
		Stats:               out.Stats,
		SavingThrows:        out.SavingThrows,
		SkillProficiencies:  out.SkillProficiencies,
		SkillBonuses:        out.SkillBonuses,
		ClassEquipment:      out.ClassEquipment,
		BackgroundEquipment: out.BackgroundEquipment,
		Equipment:           out.Equipment,
	}
}

func toStepReasons(in map[dnd5e.WizardStep][]string) map[string][]string {
	out := make(map[string][]string, len(in))
	for step, reasons := range in {
		out[string(step)] = reasons
	}
	return out
}
