package engine

import (
	"github.com/KirkDiggler/charforge/internal/entities/dnd5e"
)

// StartGenerationInput selects a generation method. Rolls optionally seeds the
// dice pool; when empty the engine rolls it.
type StartGenerationInput struct {
	Method dnd5e.MethodKind
	Rolls  []dnd5e.AbilityRoll
}

// StartGenerationOutput carries the method's initial state
type StartGenerationOutput struct {
	Generation dnd5e.GenerationMethod
}

// SetPointBuyScoreInput sets one ability of a point buy allocation
type SetPointBuyScoreInput struct {
	Generation dnd5e.GenerationMethod
	Ability    dnd5e.Ability
	Score      int
}

// SetPointBuyScoreOutput carries the updated allocation and its validation
type SetPointBuyScoreOutput struct {
	Generation dnd5e.GenerationMethod
	Validation *ValidatePointBuyOutput
}

// AssignSlotInput assigns a pool slot to an ability. NoSlot clears it.
type AssignSlotInput struct {
	Generation dnd5e.GenerationMethod
	Ability    dnd5e.Ability
	Slot       int
}

// AssignSlotOutput carries the updated assignment
type AssignSlotOutput struct {
	Generation dnd5e.GenerationMethod
}

// RerollInput replaces a dice pool. Rolls optionally supplies the new pool.
type RerollInput struct {
	Generation dnd5e.GenerationMethod
	Rolls      []dnd5e.AbilityRoll
}

// RerollOutput carries the fresh pool with no assignments
type RerollOutput struct {
	Generation dnd5e.GenerationMethod
}

// EvaluateGenerationInput asks for the scores a method currently produces
type EvaluateGenerationInput struct {
	Generation dnd5e.GenerationMethod
}

// EvaluateGenerationOutput reports base scores and whether the wizard may
// move past the ability score step.
type EvaluateGenerationOutput struct {
	BaseScores dnd5e.AbilityScores
	Complete   bool
	Reasons    []string
	PointBuy   *ValidatePointBuyOutput
}

// RollAbilityScoresInput asks for count 4d6 drop lowest rolls
type RollAbilityScoresInput struct {
	Count int
}

// RollAbilityScoresOutput carries the rolls in slot order
type RollAbilityScoresOutput struct {
	Rolls []dnd5e.AbilityRoll
}

// ValidatePointBuyInput is a point buy allocation to check
type ValidatePointBuyInput struct {
	Scores dnd5e.AbilityScores
}

// Violation is one failed point buy rule. Ability is empty for budget violations.
type Violation struct {
	Ability dnd5e.Ability `json:"ability,omitempty"`
	Reason  string        `json:"reason"`
}

// ValidatePointBuyOutput is the budget state of an allocation
type ValidatePointBuyOutput struct {
	PointsUsed      int
	PointsRemaining int
	Valid           bool
	Violations      []Violation
}

// Reasons returns the violation messages in order
func (o *ValidatePointBuyOutput) Reasons() []string {
	if o == nil {
		return nil
	}
	reasons := make([]string, len(o.Violations))
	for i, v := range o.Violations {
		reasons[i] = v.Reason
	}
	return reasons
}

// DeriveCharacterInput is everything the stat pipeline reads. Race, Class and
// Background may be nil when the selection does not resolve.
type DeriveCharacterInput struct {
	BaseScores      dnd5e.AbilityScores
	Race            *dnd5e.Race
	Class           *dnd5e.Class
	Background      *dnd5e.Background
	ClassSkills     []string
	EquipmentOption dnd5e.EquipmentOption
}

// CombatStats are the level one derived statistics
type CombatStats struct {
	HitPoints        int `json:"hit_points"`
	ArmorClass       int `json:"armor_class"`
	Initiative       int `json:"initiative"`
	Speed            int `json:"speed"`
	ProficiencyBonus int `json:"proficiency_bonus"`
}

// SkillBonus is the check bonus for one skill
type SkillBonus struct {
	Skill      string        `json:"skill"`
	Name       string        `json:"name"`
	Ability    dnd5e.Ability `json:"ability"`
	Modifier   int           `json:"modifier"`
	Proficient bool          `json:"proficient"`
	Bonus      int           `json:"bonus"`
}

// DeriveCharacterOutput is the result of the stat pipeline
type DeriveCharacterOutput struct {
	EffectiveScores     dnd5e.AbilityScores
	FinalScores         dnd5e.AbilityScores
	Modifiers           map[dnd5e.Ability]int
	Stats               CombatStats
	SavingThrows        map[dnd5e.Ability]int
	SkillProficiencies  []string
	SkillBonuses        []SkillBonus
	ClassEquipment      []string
	BackgroundEquipment []string
	Equipment           []string
}
