package dnd5e

import "time"

// Level one constants
const (
	StartingLevel            = 1
	StartingProficiencyBonus = 2
	DefaultSpeed             = 30
	DefaultAbilityScore      = 10
)

// Character is a finalized level one character as persisted in the players store
type Character struct {
	ID        string             `json:"id"`
	PlayerID  string             `json:"user_id"`
	Name      string             `json:"name"`
	Level     int                `json:"level"`
	CurrentHP int                `json:"current_hp"`
	MaxHP     int                `json:"max_hp"`
	Class     string             `json:"class"`
	Subclass  *string            `json:"subclass"`
	Stats     CharacterStats     `json:"stats"`
	Abilities AbilityBlock       `json:"abilities"`
	Equipment CharacterEquipment `json:"equipment"`
	Skills    []string           `json:"skills"`
	CreatedAt time.Time          `json:"created_at"`
}

// CharacterStats is the derived combat block
type CharacterStats struct {
	ArmorClass       int `json:"armor_class"`
	Initiative       int `json:"initiative"`
	Speed            int `json:"speed"`
	ProficiencyBonus int `json:"proficiency_bonus"`
	Inspirations     int `json:"inspirations"`
}

// AbilityBlock stores final scores by canonical ability name
type AbilityBlock struct {
	Strength     int `json:"strength"`
	Dexterity    int `json:"dexterity"`
	Constitution int `json:"constitution"`
	Intelligence int `json:"intelligence"`
	Wisdom       int `json:"wisdom"`
	Charisma     int `json:"charisma"`
}

// CharacterEquipment records the selections that produced the inventory
type CharacterEquipment struct {
	Race                      string          `json:"race"`
	Background                string          `json:"background"`
	StartingEquipment         []string        `json:"starting_equipment"`
	BackgroundEquipmentOption EquipmentOption `json:"background_equipment_option,omitempty"`
	BackgroundEquipmentItems  []string        `json:"background_equipment_items"`
}

// NewAbilityBlock builds the stored block from scores. Missing abilities
// default to 10.
func NewAbilityBlock(scores AbilityScores) AbilityBlock {
	get := func(a Ability) int {
		if v, ok := scores[a]; ok {
			return v
		}
		return DefaultAbilityScore
	}
	return AbilityBlock{
		Strength:     get(AbilityStrength),
		Dexterity:    get(AbilityDexterity),
		Constitution: get(AbilityConstitution),
		Intelligence: get(AbilityIntelligence),
		Wisdom:       get(AbilityWisdom),
		Charisma:     get(AbilityCharisma),
	}
}

// Scores returns the block as an AbilityScores map
func (b AbilityBlock) Scores() AbilityScores {
	return AbilityScores{
		AbilityStrength:     b.Strength,
		AbilityDexterity:    b.Dexterity,
		AbilityConstitution: b.Constitution,
		AbilityIntelligence: b.Intelligence,
		AbilityWisdom:       b.Wisdom,
		AbilityCharisma:     b.Charisma,
	}
}

// GetID implements core.Entity
func (c *Character) GetID() string { return c.ID }

// GetType implements core.Entity
func (c *Character) GetType() string { return "character" }

// GetID implements core.Entity
func (d *CharacterDraft) GetID() string { return d.ID }

// GetType implements core.Entity
func (d *CharacterDraft) GetType() string { return "character_draft" }
