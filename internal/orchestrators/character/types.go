package character

import (
	"context"

	"github.com/KirkDiggler/charforge/internal/engine"
	"github.com/KirkDiggler/charforge/internal/entities/dnd5e"
)

//go:generate mockgen -destination=mock/mock_service.go -package=charactermock github.com/KirkDiggler/charforge/internal/orchestrators/character Service

// Service defines the character creation wizard
type Service interface {
	// Draft lifecycle
	CreateDraft(ctx context.Context, input *CreateDraftInput) (*CreateDraftOutput, error)
	GetDraft(ctx context.Context, input *GetDraftInput) (*GetDraftOutput, error)
	DeleteDraft(ctx context.Context, input *DeleteDraftInput) (*DeleteDraftOutput, error)
	UpdateName(ctx context.Context, input *UpdateNameInput) (*UpdateNameOutput, error)

	// Selections
	SelectRace(ctx context.Context, input *SelectRaceInput) (*SelectRaceOutput, error)
	SelectClass(ctx context.Context, input *SelectClassInput) (*SelectClassOutput, error)
	SelectClassSkills(ctx context.Context, input *SelectClassSkillsInput) (*SelectClassSkillsOutput, error)
	SelectBackground(ctx context.Context, input *SelectBackgroundInput) (*SelectBackgroundOutput, error)
	SelectEquipmentOption(ctx context.Context, input *SelectEquipmentOptionInput) (*SelectEquipmentOptionOutput, error)

	// Ability scores
	SetGenerationMethod(ctx context.Context, input *SetGenerationMethodInput) (*SetGenerationMethodOutput, error)
	SetPointBuyScore(ctx context.Context, input *SetPointBuyScoreInput) (*SetPointBuyScoreOutput, error)
	AssignAbilitySlot(ctx context.Context, input *AssignAbilitySlotInput) (*AssignAbilitySlotOutput, error)
	RerollAbilityScores(ctx context.Context, input *RerollAbilityScoresInput) (*RerollAbilityScoresOutput, error)

	// Navigation
	AdvanceStep(ctx context.Context, input *AdvanceStepInput) (*AdvanceStepOutput, error)
	RetreatStep(ctx context.Context, input *RetreatStepInput) (*RetreatStepOutput, error)

	// Preview and finalization
	PreviewCharacter(ctx context.Context, input *PreviewCharacterInput) (*PreviewCharacterOutput, error)
	FinalizeDraft(ctx context.Context, input *FinalizeDraftInput) (*FinalizeDraftOutput, error)

	// Character operations
	GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error)
	ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error)
	DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error)
	ExportCharacterSheet(ctx context.Context, input *ExportCharacterSheetInput) (*ExportCharacterSheetOutput, error)

	// Data loading for UI
	ListRaces(ctx context.Context, input *ListRacesInput) (*ListRacesOutput, error)
	ListClasses(ctx context.Context, input *ListClassesInput) (*ListClassesOutput, error)
	ListBackgrounds(ctx context.Context, input *ListBackgroundsInput) (*ListBackgroundsOutput, error)
}

// Event types published on the event bus
const (
	EventDraftCreated       = "draft.created"
	EventDraftDeleted       = "draft.deleted"
	EventCharacterFinalized = "character.finalized"
)

// Event context keys
const (
	EventKeyPlayerID = "player_id"
	EventKeyDraftID  = "draft_id"
)

// CreateDraftInput starts a new draft, replacing the player's previous one
type CreateDraftInput struct {
	PlayerID string
	Name     string
}

// CreateDraftOutput carries the new draft
type CreateDraftOutput struct {
	Draft *dnd5e.CharacterDraft
}

// GetDraftInput looks a draft up by ID, or by player when DraftID is empty
type GetDraftInput struct {
	DraftID  string
	PlayerID string
}

// GetDraftOutput carries the draft
type GetDraftOutput struct {
	Draft *dnd5e.CharacterDraft
}

// DeleteDraftInput discards a draft
type DeleteDraftInput struct {
	DraftID string
}

// DeleteDraftOutput reports the discard
type DeleteDraftOutput struct {
	Message string
}

// UpdateNameInput sets the character name
type UpdateNameInput struct {
	DraftID string
	Name    string
}

// UpdateNameOutput carries the updated draft
type UpdateNameOutput struct {
	Draft *dnd5e.CharacterDraft
}

// SelectRaceInput selects a race by ID or display name
type SelectRaceInput struct {
	DraftID string
	RaceID  string
}

// SelectRaceOutput carries the updated draft and the resolved race
type SelectRaceOutput struct {
	Draft *dnd5e.CharacterDraft
	Race  *dnd5e.Race
}

// SelectClassInput selects a class by ID or display name
type SelectClassInput struct {
	DraftID string
	ClassID string
}

// SelectClassOutput carries the updated draft and the resolved class
type SelectClassOutput struct {
	Draft *dnd5e.CharacterDraft
	Class *dnd5e.Class
	// SkillsReset is set when a class change cleared chosen skills
	SkillsReset bool
}

// SelectClassSkillsInput replaces the chosen class skills
type SelectClassSkillsInput struct {
	DraftID string
	Skills  []string
}

// SelectClassSkillsOutput carries the updated draft
type SelectClassSkillsOutput struct {
	Draft *dnd5e.CharacterDraft
}

// SelectBackgroundInput selects a background by ID or display name
type SelectBackgroundInput struct {
	DraftID      string
	BackgroundID string
}

// SelectBackgroundOutput carries the updated draft and the resolved background
type SelectBackgroundOutput struct {
	Draft      *dnd5e.CharacterDraft
	Background *dnd5e.Background
	// OptionReset is set when a background change cleared the equipment option
	OptionReset bool
}

// SelectEquipmentOptionInput picks background equipment option A or B
type SelectEquipmentOptionInput struct {
	DraftID string
	Option  dnd5e.EquipmentOption
}

// SelectEquipmentOptionOutput carries the updated draft and the option's items
type SelectEquipmentOptionOutput struct {
	Draft *dnd5e.CharacterDraft
	Items []string
}

// SetGenerationMethodInput switches the ability score method
type SetGenerationMethodInput struct {
	DraftID string
	Method  dnd5e.MethodKind
}

// SetGenerationMethodOutput carries the reset generation state
type SetGenerationMethodOutput struct {
	Draft      *dnd5e.CharacterDraft
	Evaluation *engine.EvaluateGenerationOutput
}

// SetPointBuyScoreInput sets one point buy score
type SetPointBuyScoreInput struct {
	DraftID string
	Ability string
	Score   int
}

// SetPointBuyScoreOutput carries the allocation and its validation
type SetPointBuyScoreOutput struct {
	Draft      *dnd5e.CharacterDraft
	Validation *engine.ValidatePointBuyOutput
}

// AssignAbilitySlotInput assigns a pool slot to an ability
type AssignAbilitySlotInput struct {
	DraftID string
	Ability string
	Slot    int
}

// AssignAbilitySlotOutput carries the assignment state
type AssignAbilitySlotOutput struct {
	Draft      *dnd5e.CharacterDraft
	Evaluation *engine.EvaluateGenerationOutput
}

// RerollAbilityScoresInput rolls a fresh dice pool
type RerollAbilityScoresInput struct {
	DraftID string
}

// RerollAbilityScoresOutput carries the new pool
type RerollAbilityScoresOutput struct {
	Draft *dnd5e.CharacterDraft
	Rolls []dnd5e.AbilityRoll
}

// AdvanceStepInput moves the wizard forward
type AdvanceStepInput struct {
	DraftID string
}

// AdvanceStepOutput carries the draft at its new step
type AdvanceStepOutput struct {
	Draft *dnd5e.CharacterDraft
}

// RetreatStepInput moves the wizard back
type RetreatStepInput struct {
	DraftID string
}

// RetreatStepOutput carries the draft at its new step
type RetreatStepOutput struct {
	Draft *dnd5e.CharacterDraft
}

// PreviewCharacterInput asks for provisional stats of a draft
type PreviewCharacterInput struct {
	DraftID string
}

// PreviewCharacterOutput is the provisional derivation. Race, Class and
// Background are nil when the selection is missing or unresolved.
type PreviewCharacterOutput struct {
	Draft      *dnd5e.CharacterDraft
	Race       *dnd5e.Race
	Class      *dnd5e.Class
	Background *dnd5e.Background
	Generation *engine.EvaluateGenerationOutput
	Derived    *engine.DeriveCharacterOutput
	// StepReasons lists what blocks each incomplete step
	StepReasons map[dnd5e.WizardStep][]string
}

// FinalizeDraftInput submits a draft
type FinalizeDraftInput struct {
	DraftID string
}

// FinalizeDraftOutput carries the persisted character
type FinalizeDraftOutput struct {
	Character    *dnd5e.Character
	DraftDeleted bool
}

// GetCharacterInput looks a character up
type GetCharacterInput struct {
	CharacterID string
}

// GetCharacterOutput carries the character
type GetCharacterOutput struct {
	Character *dnd5e.Character
}

// ListCharactersInput lists a player's characters
type ListCharactersInput struct {
	PlayerID string
}

// ListCharactersOutput carries the characters, oldest first
type ListCharactersOutput struct {
	Characters []*dnd5e.Character
}

// DeleteCharacterInput deletes a character
type DeleteCharacterInput struct {
	CharacterID string
}

// DeleteCharacterOutput reports the deletion
type DeleteCharacterOutput struct {
	Message string
}

// ExportCharacterSheetInput renders a character sheet
type ExportCharacterSheetInput struct {
	CharacterID string
}

// ExportCharacterSheetOutput carries the PDF
type ExportCharacterSheetOutput struct {
	Filename string
	PDF      []byte
}

// ListRacesInput lists the race catalog
type ListRacesInput struct{}

// ListRacesOutput carries the races
type ListRacesOutput struct {
	Races []*dnd5e.Race
}

// ListClassesInput lists the class catalog
type ListClassesInput struct{}

// ClassWithSubclasses pairs a class with its subclasses
type ClassWithSubclasses struct {
	Class      *dnd5e.Class
	Subclasses []*dnd5e.Subclass
}

// ListClassesOutput carries the classes
type ListClassesOutput struct {
	Classes []*ClassWithSubclasses
}

// ListBackgroundsInput lists the background catalog
type ListBackgroundsInput struct{}

// ListBackgroundsOutput carries the backgrounds
type ListBackgroundsOutput struct {
	Backgrounds []*dnd5e.Background
}
