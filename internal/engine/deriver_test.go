package engine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/charforge/internal/engine"
	"github.com/KirkDiggler/charforge/internal/entities/dnd5e"
)

type DeriverTestSuite struct {
	suite.Suite
	engine engine.Engine
	ctx    context.Context

	elf      *dnd5e.Race
	fighter  *dnd5e.Class
	acolyte  *dnd5e.Background
	folkHero *dnd5e.Background
}

func TestDeriverTestSuite(t *testing.T) {
	suite.Run(t, new(DeriverTestSuite))
}

func (s *DeriverTestSuite) SetupTest() {
	eng, err := engine.New(nil)
	s.Require().NoError(err)
	s.engine = eng
	s.ctx = context.Background()

	s.elf = &dnd5e.Race{
		ID:                   "elf",
		Name:                 "Elfe",
		AbilityScoreIncrease: map[dnd5e.Ability]int{dnd5e.AbilityDexterity: 2},
		Speed:                30,
	}
	s.fighter = &dnd5e.Class{
		ID:              "fighter",
		Name:            "Guerrier",
		HitDie:          10,
		SavingThrows:    []dnd5e.Ability{dnd5e.AbilityStrength, dnd5e.AbilityConstitution},
		SkillsToChoose:  2,
		AvailableSkills: []string{"Acrobaties", "Athlétisme", "Intimidation", "Perception"},
		Equipment:       []string{"Cotte de mailles", "Épée longue"},
	}
	s.acolyte = &dnd5e.Background{
		ID:                 "acolyte",
		Name:               "Acolyte",
		SkillProficiencies: []string{"Intuition", "Religion"},
		Equipment:          []string{"Symbole sacré", "Livre de prières"},
	}
	s.folkHero = &dnd5e.Background{
		ID:                 "folk-hero",
		Name:               "Héros du peuple",
		SkillProficiencies: []string{"Dressage", "Survie"},
		EquipmentOptions: &dnd5e.EquipmentOptions{
			OptionA: []string{"Outils d'artisan", "Pelle"},
			OptionB: []string{"Véhicule terrestre", "Bourse"},
		},
	}
}

func (s *DeriverTestSuite) TestModifier() {
	cases := map[int]int{1: -5, 3: -4, 7: -2, 8: -1, 9: -1, 10: 0, 11: 0, 12: 1, 13: 1, 20: 5, 30: 10}
	for score, want := range cases {
		s.Equal(want, engine.Modifier(score), "score %d", score)
	}
}

func (s *DeriverTestSuite) TestRacialBonusFlowsIntoCombatStats() {
	base := dnd5e.NewAbilityScores(10)
	base[dnd5e.AbilityDexterity] = 14

	out, err := s.engine.DeriveCharacter(s.ctx, &engine.DeriveCharacterInput{
		BaseScores: base,
		Race:       s.elf,
		Class:      s.fighter,
		Background: s.acolyte,
	})
	s.Require().NoError(err)

	s.Equal(14, out.EffectiveScores[dnd5e.AbilityDexterity])
	s.Equal(16, out.FinalScores[dnd5e.AbilityDexterity])
	s.Equal(3, out.Modifiers[dnd5e.AbilityDexterity])
	s.Equal(13, out.Stats.ArmorClass)
	s.Equal(3, out.Stats.Initiative)
	s.Equal(30, out.Stats.Speed)
	s.Equal(2, out.Stats.ProficiencyBonus)
}

func (s *DeriverTestSuite) TestHitPoints() {
	base := dnd5e.NewAbilityScores(10)
	base[dnd5e.AbilityConstitution] = 14

	out, err := s.engine.DeriveCharacter(s.ctx, &engine.DeriveCharacterInput{
		BaseScores: base,
		Class:      s.fighter,
	})
	s.Require().NoError(err)
	s.Equal(12, out.Stats.HitPoints)
}

func (s *DeriverTestSuite) TestBackgroundAdjustmentsApplyBeforeRace() {
	bg := &dnd5e.Background{
		ID:                 "custom",
		AbilityAdjustments: map[dnd5e.Ability]int{dnd5e.AbilityDexterity: 1},
	}
	base := dnd5e.NewAbilityScores(10)

	effective := engine.ApplyBackgroundAdjustments(base, bg)
	s.Equal(11, effective[dnd5e.AbilityDexterity])

	final := engine.ApplyRacialIncrease(effective, s.elf)
	s.Equal(13, final[dnd5e.AbilityDexterity])
	s.Equal(10, final[dnd5e.AbilityStrength])
	s.Equal(10, base[dnd5e.AbilityDexterity])
}

func (s *DeriverTestSuite) TestSkillsUnionIsNormalized() {
	out, err := s.engine.DeriveCharacter(s.ctx, &engine.DeriveCharacterInput{
		BaseScores:  dnd5e.NewAbilityScores(10),
		Class:       s.fighter,
		Background:  s.acolyte,
		ClassSkills: []string{"athletisme", "Insight"},
	})
	s.Require().NoError(err)

	s.Equal([]string{"athletics", "insight", "religion"}, out.SkillProficiencies)
}

func (s *DeriverTestSuite) TestSkillBonus() {
	base := dnd5e.NewAbilityScores(10)
	base[dnd5e.AbilityStrength] = 14

	out, err := s.engine.DeriveCharacter(s.ctx, &engine.DeriveCharacterInput{
		BaseScores:  base,
		ClassSkills: []string{"Athlétisme"},
	})
	s.Require().NoError(err)

	bonuses := map[string]engine.SkillBonus{}
	for _, b := range out.SkillBonuses {
		bonuses[b.Skill] = b
	}
	s.Len(bonuses, len(dnd5e.Skills))
	s.Equal(4, bonuses["athletics"].Bonus)
	s.True(bonuses["athletics"].Proficient)

	notProficient := engine.SkillBonusFor(dnd5e.Skills[3], 2, false, 2)
	s.Equal(2, notProficient.Bonus)
}

func (s *DeriverTestSuite) TestSavingThrowsAddProficiency() {
	out, err := s.engine.DeriveCharacter(s.ctx, &engine.DeriveCharacterInput{
		BaseScores: dnd5e.NewAbilityScores(12),
		Class:      s.fighter,
	})
	s.Require().NoError(err)

	s.Equal(3, out.SavingThrows[dnd5e.AbilityStrength])
	s.Equal(1, out.SavingThrows[dnd5e.AbilityDexterity])
}

func (s *DeriverTestSuite) TestEquipmentWithoutOptions() {
	out, err := s.engine.DeriveCharacter(s.ctx, &engine.DeriveCharacterInput{
		BaseScores:      dnd5e.NewAbilityScores(10),
		Class:           s.fighter,
		Background:      s.acolyte,
		EquipmentOption: dnd5e.EquipmentOptionB,
	})
	s.Require().NoError(err)

	s.Equal([]string{"Cotte de mailles", "Épée longue", "Symbole sacré", "Livre de prières"}, out.Equipment)
}

func (s *DeriverTestSuite) TestEquipmentWithOptions() {
	out, err := s.engine.DeriveCharacter(s.ctx, &engine.DeriveCharacterInput{
		BaseScores:      dnd5e.NewAbilityScores(10),
		Class:           s.fighter,
		Background:      s.folkHero,
		EquipmentOption: dnd5e.EquipmentOptionB,
	})
	s.Require().NoError(err)

	s.Equal([]string{"Véhicule terrestre", "Bourse"}, out.BackgroundEquipment)
	s.Equal([]string{"Cotte de mailles", "Épée longue", "Véhicule terrestre", "Bourse"}, out.Equipment)

	out, err = s.engine.DeriveCharacter(s.ctx, &engine.DeriveCharacterInput{
		BaseScores: dnd5e.NewAbilityScores(10),
		Background: s.folkHero,
	})
	s.Require().NoError(err)
	s.Empty(out.Equipment)
}

func (s *DeriverTestSuite) TestUnresolvedReferencesDegrade() {
	base := dnd5e.NewAbilityScores(10)
	base[dnd5e.AbilityConstitution] = 14

	out, err := s.engine.DeriveCharacter(s.ctx, &engine.DeriveCharacterInput{BaseScores: base})
	s.Require().NoError(err)

	s.Equal(2, out.Stats.HitPoints)
	s.Equal(10, out.Stats.ArmorClass)
	s.Equal(dnd5e.DefaultSpeed, out.Stats.Speed)
	s.Empty(out.SkillProficiencies)
	s.Empty(out.Equipment)
	s.Equal(base, out.FinalScores)
}

func (s *DeriverTestSuite) TestPartialScoresDefaultToTen() {
	out, err := s.engine.DeriveCharacter(s.ctx, &engine.DeriveCharacterInput{
		BaseScores: dnd5e.AbilityScores{dnd5e.AbilityStrength: 15},
		Race:       s.elf,
	})
	s.Require().NoError(err)

	s.Equal(15, out.FinalScores[dnd5e.AbilityStrength])
	s.Equal(12, out.FinalScores[dnd5e.AbilityDexterity])
	s.Equal(10, out.FinalScores[dnd5e.AbilityWisdom])
}
