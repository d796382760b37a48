package testutils

import (
	"time"

	"github.com/KirkDiggler/charforge/internal/entities/dnd5e"
)

// Draft progress stages for testing
const (
	StageRaceComplete       = "race_complete"
	StageClassComplete      = "class_complete"
	StageBackgroundComplete = "background_complete"
	StageNearlyComplete     = "nearly_complete"

	// TestCharacterName is the default character name for test fixtures
	TestCharacterName = "Thorin Oakenshield"

	// TestCreatedAt is a fixed creation timestamp (2024-01-01T00:00:00Z)
	TestCreatedAt int64 = 1704067200
)

// CreateTestCharacterDraft creates a test character draft with sensible defaults
func CreateTestCharacterDraft(playerID string) *dnd5e.CharacterDraft {
	return &dnd5e.CharacterDraft{
		ID:        "draft-test-001",
		PlayerID:  playerID,
		Name:      "Test Character",
		Step:      dnd5e.StepRace,
		CreatedAt: TestCreatedAt,
		UpdatedAt: TestCreatedAt,
	}
}

// CreateTestCharacterDraftWithProgress creates a test draft at various stages of completion
func CreateTestCharacterDraftWithProgress(playerID string, stage string) *dnd5e.CharacterDraft {
	draft := CreateTestCharacterDraft(playerID)
	draft.Name = TestCharacterName

	switch stage {
	case StageRaceComplete:
		draft.RaceID = "dwarf"
		draft.Step = dnd5e.StepClass

	case StageClassComplete:
		draft.RaceID = "dwarf"
		draft.ClassID = "fighter"
		draft.ClassSkills = []string{"athletics", "intimidation"}
		draft.Step = dnd5e.StepBackground

	case StageBackgroundComplete:
		draft.RaceID = "dwarf"
		draft.ClassID = "fighter"
		draft.ClassSkills = []string{"athletics", "intimidation"}
		draft.BackgroundID = "soldier"
		draft.Step = dnd5e.StepAbilityScores

	case StageNearlyComplete:
		draft.RaceID = "dwarf"
		draft.ClassID = "fighter"
		draft.ClassSkills = []string{"athletics", "intimidation"}
		draft.BackgroundID = "soldier"
		draft.Generation = CreateTestStandardArray()
		draft.Step = dnd5e.StepSummary
	}

	return draft
}

// CreateTestStandardArray returns a fully assigned standard array:
// STR 15, CON 14, DEX 13, WIS 12, CHA 10, INT 8
func CreateTestStandardArray() *dnd5e.StandardArray {
	return &dnd5e.StandardArray{
		Assignment: dnd5e.Assignment{
			dnd5e.AbilityStrength:     0,
			dnd5e.AbilityConstitution: 1,
			dnd5e.AbilityDexterity:    2,
			dnd5e.AbilityWisdom:       3,
			dnd5e.AbilityCharisma:     4,
			dnd5e.AbilityIntelligence: 5,
		},
	}
}

// CreateTestCharacter creates a finalized level-1 dwarf fighter
func CreateTestCharacter(id, playerID string) *dnd5e.Character {
	return &dnd5e.Character{
		ID:        id,
		PlayerID:  playerID,
		Name:      TestCharacterName,
		Level:     dnd5e.StartingLevel,
		CurrentHP: 12,
		MaxHP:     12,
		Class:     "Guerrier",
		Stats: dnd5e.CharacterStats{
			ArmorClass:       11,
			Initiative:       1,
			Speed:            25,
			ProficiencyBonus: dnd5e.StartingProficiencyBonus,
		},
		Abilities: dnd5e.AbilityBlock{
			Strength:     17,
			Dexterity:    13,
			Constitution: 16,
			Intelligence: 8,
			Wisdom:       12,
			Charisma:     10,
		},
		Equipment: dnd5e.CharacterEquipment{
			Race:                     "Nain",
			Background:               "Soldat",
			StartingEquipment:        []string{"Cotte de mailles"},
			BackgroundEquipmentItems: []string{"Insigne de grade"},
		},
		Skills:    []string{"athletics", "intimidation"},
		CreatedAt: time.Unix(TestCreatedAt, 0).UTC(),
	}
}
