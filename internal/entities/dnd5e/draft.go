package dnd5e

import "encoding/json"

// WizardStep is one screen of the creation wizard
type WizardStep string

// Wizard steps in order
const (
	StepRace          WizardStep = "race"
	StepClass         WizardStep = "class"
	StepBackground    WizardStep = "background"
	StepAbilityScores WizardStep = "ability_scores"
	StepSummary       WizardStep = "summary"
)

// WizardSteps lists the steps in navigation order
var WizardSteps = []WizardStep{
	StepRace,
	StepClass,
	StepBackground,
	StepAbilityScores,
	StepSummary,
}

// Index returns the position of s in WizardSteps, or -1
func (s WizardStep) Index() int {
	for i, step := range WizardSteps {
		if step == s {
			return i
		}
	}
	return -1
}

// Next returns the following step, or s when it is the last one
func (s WizardStep) Next() WizardStep {
	i := s.Index()
	if i < 0 || i == len(WizardSteps)-1 {
		return s
	}
	return WizardSteps[i+1]
}

// Previous returns the preceding step, or s when it is the first one
func (s WizardStep) Previous() WizardStep {
	i := s.Index()
	if i <= 0 {
		return s
	}
	return WizardSteps[i-1]
}

// CharacterDraft is the session state of one character being built
type CharacterDraft struct {
	ID              string           `json:"id"`
	PlayerID        string           `json:"player_id"`
	Name            string           `json:"name"`
	RaceID          string           `json:"race_id,omitempty"`
	ClassID         string           `json:"class_id,omitempty"`
	BackgroundID    string           `json:"background_id,omitempty"`
	ClassSkills     []string         `json:"class_skills,omitempty"`
	EquipmentOption EquipmentOption  `json:"equipment_option,omitempty"`
	Generation      GenerationMethod `json:"-"`
	Step            WizardStep       `json:"step"`
	CreatedAt       int64            `json:"created_at"`
	UpdatedAt       int64            `json:"updated_at"`
	ExpiresAt       int64            `json:"expires_at"`
}

type draftAlias CharacterDraft

type draftJSON struct {
	*draftAlias
	Generation json.RawMessage `json:"generation,omitempty"`
}

// MarshalJSON encodes the draft with its generation state as a tagged envelope
func (d *CharacterDraft) MarshalJSON() ([]byte, error) {
	gen, err := MarshalGeneration(d.Generation)
	if err != nil {
		return nil, err
	}
	return json.Marshal(draftJSON{draftAlias: (*draftAlias)(d), Generation: gen})
}

// UnmarshalJSON decodes a draft written by MarshalJSON
func (d *CharacterDraft) UnmarshalJSON(data []byte) error {
	aux := draftJSON{draftAlias: (*draftAlias)(d)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	gen, err := UnmarshalGeneration(aux.Generation)
	if err != nil {
		return err
	}
	d.Generation = gen
	return nil
}
