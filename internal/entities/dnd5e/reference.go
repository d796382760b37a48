package dnd5e

// Race is a playable race record
type Race struct {
	ID                   string          `json:"id" yaml:"id"`
	Name                 string          `json:"name" yaml:"name"`
	Description          string          `json:"description,omitempty" yaml:"description"`
	AbilityScoreIncrease map[Ability]int `json:"ability_score_increase,omitempty" yaml:"ability_score_increase"`
	Speed                int             `json:"speed" yaml:"speed"`
	Size                 string          `json:"size" yaml:"size"`
	Languages            []string        `json:"languages,omitempty" yaml:"languages"`
	Proficiencies        []string        `json:"proficiencies,omitempty" yaml:"proficiencies"`
	Traits               []string        `json:"traits,omitempty" yaml:"traits"`
}

// Class is a character class record
type Class struct {
	ID               string    `json:"id" yaml:"id"`
	Name             string    `json:"name" yaml:"name"`
	Description      string    `json:"description,omitempty" yaml:"description"`
	HitDie           int       `json:"hit_die" yaml:"hit_die"`
	PrimaryAbilities []Ability `json:"primary_abilities,omitempty" yaml:"primary_abilities"`
	SavingThrows     []Ability `json:"saving_throws,omitempty" yaml:"saving_throws"`
	SkillsToChoose   int       `json:"skills_to_choose" yaml:"skills_to_choose"`
	AvailableSkills  []string  `json:"available_skills,omitempty" yaml:"available_skills"`
	Equipment        []string  `json:"equipment,omitempty" yaml:"equipment"`
	Features         []string  `json:"features,omitempty" yaml:"features"`
}

// EquipmentOption selects one of a background's equipment packages
type EquipmentOption string

// Equipment options
const (
	EquipmentOptionNone EquipmentOption = ""
	EquipmentOptionA    EquipmentOption = "A"
	EquipmentOptionB    EquipmentOption = "B"
)

// EquipmentOptions are the two alternative packages a background may offer
type EquipmentOptions struct {
	OptionA []string `json:"option_a" yaml:"option_a"`
	OptionB []string `json:"option_b" yaml:"option_b"`
}

// Background is a character background record
type Background struct {
	ID                 string            `json:"id" yaml:"id"`
	Name               string            `json:"name" yaml:"name"`
	Description        string            `json:"description,omitempty" yaml:"description"`
	SkillProficiencies []string          `json:"skill_proficiencies,omitempty" yaml:"skill_proficiencies"`
	ToolProficiencies  []string          `json:"tool_proficiencies,omitempty" yaml:"tool_proficiencies"`
	Languages          int               `json:"languages" yaml:"languages"`
	Equipment          []string          `json:"equipment,omitempty" yaml:"equipment"`
	EquipmentOptions   *EquipmentOptions `json:"equipment_options,omitempty" yaml:"equipment_options"`
	AbilityAdjustments map[Ability]int   `json:"ability_adjustments,omitempty" yaml:"ability_adjustments"`
	Feature            string            `json:"feature" yaml:"feature"`
}

// HasEquipmentOptions reports whether the background offers an A/B choice
func (b *Background) HasEquipmentOptions() bool {
	return b != nil && b.EquipmentOptions != nil
}

// EquipmentFor returns the background items for option. Backgrounds without
// options ignore option and return their single list.
func (b *Background) EquipmentFor(option EquipmentOption) []string {
	if b == nil {
		return nil
	}
	if !b.HasEquipmentOptions() {
		return b.Equipment
	}
	switch option {
	case EquipmentOptionA:
		return b.EquipmentOptions.OptionA
	case EquipmentOptionB:
		return b.EquipmentOptions.OptionB
	}
	return nil
}

// Subclass is a class specialization available from a later level
type Subclass struct {
	ID          string `json:"id" yaml:"id"`
	ClassID     string `json:"class_id" yaml:"class_id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description"`
}
