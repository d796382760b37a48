package engine

import (
	"context"
	"sort"

	"github.com/KirkDiggler/charforge/internal/entities/dnd5e"
	"github.com/KirkDiggler/charforge/internal/errors"
)

const (
	baseArmorClass = 10
)

// Modifier returns floor((score-10)/2), rounding toward negative infinity
func Modifier(score int) int {
	d := score - 10
	if d < 0 {
		return (d - 1) / 2
	}
	return d / 2
}

// ProficiencyBonus returns the proficiency bonus for level
func ProficiencyBonus(level int) int {
	if level < 1 {
		level = 1
	}
	return 2 + (level-1)/4
}

// ApplyBackgroundAdjustments is the first derivation pass
func ApplyBackgroundAdjustments(base dnd5e.AbilityScores, background *dnd5e.Background) dnd5e.AbilityScores {
	if background == nil {
		return base.Clone()
	}
	return base.Add(background.AbilityAdjustments)
}

// ApplyRacialIncrease is the second derivation pass
func ApplyRacialIncrease(effective dnd5e.AbilityScores, race *dnd5e.Race) dnd5e.AbilityScores {
	if race == nil {
		return effective.Clone()
	}
	return effective.Add(race.AbilityScoreIncrease)
}

// SkillProficiencies returns the normalized union of class and background
// skills, sorted.
func SkillProficiencies(classSkills, backgroundSkills []string) []string {
	seen := make(map[string]struct{}, len(classSkills)+len(backgroundSkills))
	out := make([]string, 0, len(classSkills)+len(backgroundSkills))
	for _, list := range [][]string{classSkills, backgroundSkills} {
		for _, name := range list {
			key := dnd5e.CanonicalSkill(name)
			if key == "" {
				continue
			}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, key)
		}
	}
	sort.Strings(out)
	return out
}

func (e *engine) DeriveCharacter(
	_ context.Context,
	input *DeriveCharacterInput,
) (*DeriveCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	base := fillMissing(input.BaseScores)
	effective := ApplyBackgroundAdjustments(base, input.Background)
	final := ApplyRacialIncrease(effective, input.Race)

	modifiers := make(map[dnd5e.Ability]int, len(dnd5e.Abilities))
	for _, a := range dnd5e.Abilities {
		modifiers[a] = Modifier(final[a])
	}

	proficiency := ProficiencyBonus(dnd5e.StartingLevel)

	hitDie := 0
	if input.Class != nil {
		hitDie = input.Class.HitDie
	}
	speed := dnd5e.DefaultSpeed
	if input.Race != nil && input.Race.Speed > 0 {
		speed = input.Race.Speed
	}

	out := &DeriveCharacterOutput{
		EffectiveScores: effective,
		FinalScores:     final,
		Modifiers:       modifiers,
		Stats: CombatStats{
			HitPoints:        hitDie + modifiers[dnd5e.AbilityConstitution],
			ArmorClass:       baseArmorClass + modifiers[dnd5e.AbilityDexterity],
			Initiative:       modifiers[dnd5e.AbilityDexterity],
			Speed:            speed,
			ProficiencyBonus: proficiency,
		},
		SavingThrows: savingThrows(modifiers, input.Class, proficiency),
	}

	var backgroundSkills []string
	if input.Background != nil {
		backgroundSkills = input.Background.SkillProficiencies
	}
	out.SkillProficiencies = SkillProficiencies(input.ClassSkills, backgroundSkills)
	out.SkillBonuses = skillBonuses(modifiers, out.SkillProficiencies, proficiency)

	if input.Class != nil {
		out.ClassEquipment = append([]string(nil), input.Class.Equipment...)
	}
	out.BackgroundEquipment = append([]string(nil), input.Background.EquipmentFor(input.EquipmentOption)...)
	out.Equipment = make([]string, 0, len(out.ClassEquipment)+len(out.BackgroundEquipment))
	out.Equipment = append(out.Equipment, out.ClassEquipment...)
	out.Equipment = append(out.Equipment, out.BackgroundEquipment...)

	return out, nil
}

// fillMissing gives abilities without a score the neutral value 10 so a
// partial draft still derives.
func fillMissing(scores dnd5e.AbilityScores) dnd5e.AbilityScores {
	out := scores.Clone()
	if out == nil {
		out = make(dnd5e.AbilityScores, len(dnd5e.Abilities))
	}
	for _, a := range dnd5e.Abilities {
		if _, ok := out[a]; !ok {
			out[a] = dnd5e.DefaultAbilityScore
		}
	}
	return out
}

func savingThrows(modifiers map[dnd5e.Ability]int, class *dnd5e.Class, proficiency int) map[dnd5e.Ability]int {
	out := make(map[dnd5e.Ability]int, len(modifiers))
	for a, m := range modifiers {
		out[a] = m
	}
	if class == nil {
		return out
	}
	for _, a := range class.SavingThrows {
		if _, ok := out[a]; ok {
			out[a] += proficiency
		}
	}
	return out
}

func skillBonuses(modifiers map[dnd5e.Ability]int, proficient []string, proficiency int) []SkillBonus {
	set := make(map[string]struct{}, len(proficient))
	for _, p := range proficient {
		set[p] = struct{}{}
	}

	out := make([]SkillBonus, 0, len(dnd5e.Skills))
	for _, skill := range dnd5e.Skills {
		_, isProficient := set[skill.Key]
		out = append(out, SkillBonusFor(skill, modifiers[skill.Ability], isProficient, proficiency))
	}
	return out
}

// SkillBonusFor composes a skill check bonus
func SkillBonusFor(skill dnd5e.Skill, modifier int, proficient bool, proficiency int) SkillBonus {
	bonus := modifier
	if proficient {
		bonus += proficiency
	}
	return SkillBonus{
		Skill:      skill.Key,
		Name:       skill.Name,
		Ability:    skill.Ability,
		Modifier:   modifier,
		Proficient: proficient,
		Bonus:      bonus,
	}
}
