package dnd5e

import (
	"encoding/json"
	"fmt"
)

// MethodKind names an ability score generation method
type MethodKind string

// Generation method kinds
const (
	MethodPointBuy      MethodKind = "point_buy"
	MethodStandardArray MethodKind = "standard_array"
	MethodDiceRoll      MethodKind = "dice_roll"
)

// Valid reports whether k is a known method
func (k MethodKind) Valid() bool {
	switch k {
	case MethodPointBuy, MethodStandardArray, MethodDiceRoll:
		return true
	}
	return false
}

// GenerationMethod is the in-progress state of one generation method.
// Implementations are *PointBuy, *StandardArray and *DiceRoll.
type GenerationMethod interface {
	Kind() MethodKind
	isGenerationMethod()
}

// PointBuy holds budgeted allocation scores
type PointBuy struct {
	Scores AbilityScores `json:"scores"`
}

// StandardArray holds assignments into the fixed standard array
type StandardArray struct {
	Assignment Assignment `json:"assignment"`
}

// DiceRoll holds a rolled pool and assignments into it
type DiceRoll struct {
	Pool       []int         `json:"pool"`
	Rolls      []AbilityRoll `json:"rolls,omitempty"`
	Assignment Assignment    `json:"assignment"`
}

// AbilityRoll is the detail of one 4d6 drop lowest roll
type AbilityRoll struct {
	Kept    []int `json:"kept"`
	Dropped int   `json:"dropped"`
	Total   int   `json:"total"`
}

func (*PointBuy) Kind() MethodKind      { return MethodPointBuy }
func (*StandardArray) Kind() MethodKind { return MethodStandardArray }
func (*DiceRoll) Kind() MethodKind      { return MethodDiceRoll }

func (*PointBuy) isGenerationMethod()      {}
func (*StandardArray) isGenerationMethod() {}
func (*DiceRoll) isGenerationMethod()      {}

// Assignment maps an ability to a pool slot index
type Assignment map[Ability]int

// Clone returns an independent copy
func (a Assignment) Clone() Assignment {
	out := make(Assignment, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Assign maps ability to slot, first evicting any other ability holding the
// slot and any other slot held by the ability.
func (a Assignment) Assign(ability Ability, slot int) {
	if current, ok := a[ability]; ok && current == slot {
		return
	}
	if owner, ok := a.SlotOwner(slot); ok {
		delete(a, owner)
	}
	a[ability] = slot
}

// Unassign clears the slot held by ability
func (a Assignment) Unassign(ability Ability) {
	delete(a, ability)
}

// SlotOwner returns the ability currently holding slot
func (a Assignment) SlotOwner(slot int) (Ability, bool) {
	for ability, s := range a {
		if s == slot {
			return ability, true
		}
	}
	return "", false
}

// Complete reports whether every ability holds a slot
func (a Assignment) Complete() bool {
	for _, ability := range Abilities {
		if _, ok := a[ability]; !ok {
			return false
		}
	}
	return true
}

// Scores resolves the assignment against pool. Slots outside the pool are skipped.
func (a Assignment) Scores(pool []int) AbilityScores {
	scores := make(AbilityScores, len(a))
	for ability, slot := range a {
		if slot >= 0 && slot < len(pool) {
			scores[ability] = pool[slot]
		}
	}
	return scores
}

type generationEnvelope struct {
	Kind          MethodKind     `json:"kind"`
	PointBuy      *PointBuy      `json:"point_buy,omitempty"`
	StandardArray *StandardArray `json:"standard_array,omitempty"`
	DiceRoll      *DiceRoll      `json:"dice_roll,omitempty"`
}

// MarshalGeneration encodes a method as a tagged envelope
func MarshalGeneration(m GenerationMethod) ([]byte, error) {
	if m == nil {
		return []byte("null"), nil
	}

	env := generationEnvelope{Kind: m.Kind()}
	switch v := m.(type) {
	case *PointBuy:
		env.PointBuy = v
	case *StandardArray:
		env.StandardArray = v
	case *DiceRoll:
		env.DiceRoll = v
	}
	return json.Marshal(env)
}

// UnmarshalGeneration decodes a tagged envelope
func UnmarshalGeneration(data []byte) (GenerationMethod, error) {
	if len(data) == 0 || string(data) == "null" {
		return nil, nil
	}

	var env generationEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}

	switch env.Kind {
	case MethodPointBuy:
		if env.PointBuy == nil {
			return &PointBuy{Scores: AbilityScores{}}, nil
		}
		return env.PointBuy, nil
	case MethodStandardArray:
		if env.StandardArray == nil {
			return &StandardArray{Assignment: Assignment{}}, nil
		}
		if env.StandardArray.Assignment == nil {
			env.StandardArray.Assignment = Assignment{}
		}
		return env.StandardArray, nil
	case MethodDiceRoll:
		if env.DiceRoll == nil {
			return &DiceRoll{Assignment: Assignment{}}, nil
		}
		if env.DiceRoll.Assignment == nil {
			env.DiceRoll.Assignment = Assignment{}
		}
		return env.DiceRoll, nil
	default:
		return nil, fmt.Errorf("unknown generation method %q", env.Kind)
	}
}
