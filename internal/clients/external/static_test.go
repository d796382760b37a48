package external_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/charforge/internal/clients/external"
	"github.com/KirkDiggler/charforge/internal/entities/dnd5e"
	"github.com/KirkDiggler/charforge/internal/errors"
)

type StaticCatalogTestSuite struct {
	suite.Suite
	client external.Client
	ctx    context.Context
}

func TestStaticCatalogTestSuite(t *testing.T) {
	suite.Run(t, new(StaticCatalogTestSuite))
}

func (s *StaticCatalogTestSuite) SetupTest() {
	c, err := external.NewStatic()
	s.Require().NoError(err)
	s.client = c
	s.ctx = context.Background()
}

func (s *StaticCatalogTestSuite) TestBackgrounds() {
	backgrounds, err := s.client.ListBackgrounds(s.ctx)
	s.Require().NoError(err)
	s.Len(backgrounds, 10)

	acolyte, err := s.client.GetBackground(s.ctx, "acolyte")
	s.Require().NoError(err)
	s.Equal([]string{"Intuition", "Religion"}, acolyte.SkillProficiencies)
	s.Equal(2, acolyte.Languages)
	s.Equal("Abri du fidèle", acolyte.Feature)
	s.False(acolyte.HasEquipmentOptions())

	folkHero, err := s.client.GetBackground(s.ctx, "heros du peuple")
	s.Require().NoError(err)
	s.True(folkHero.HasEquipmentOptions())
	s.Contains(folkHero.EquipmentFor(dnd5e.EquipmentOptionA), "Pelle")
}

func (s *StaticCatalogTestSuite) TestBackgroundSkillsResolve() {
	backgrounds, err := s.client.ListBackgrounds(s.ctx)
	s.Require().NoError(err)

	for _, bg := range backgrounds {
		for _, skill := range bg.SkillProficiencies {
			_, ok := dnd5e.LookupSkill(skill)
			s.True(ok, "%s: unknown skill %q", bg.ID, skill)
		}
	}
}

func (s *StaticCatalogTestSuite) TestClasses() {
	classes, err := s.client.ListClasses(s.ctx)
	s.Require().NoError(err)
	s.Len(classes, 12)

	for _, class := range classes {
		s.Positive(class.HitDie, class.ID)
		s.LessOrEqual(class.SkillsToChoose, len(class.AvailableSkills), class.ID)
		for _, skill := range class.AvailableSkills {
			_, ok := dnd5e.LookupSkill(skill)
			s.True(ok, "%s: unknown skill %q", class.ID, skill)
		}
	}

	fighter, err := s.client.GetClass(s.ctx, "Guerrier")
	s.Require().NoError(err)
	s.Equal("fighter", fighter.ID)
	s.Equal(10, fighter.HitDie)
}

func (s *StaticCatalogTestSuite) TestRaces() {
	elf, err := s.client.GetRace(s.ctx, "elf")
	s.Require().NoError(err)
	s.Equal(2, elf.AbilityScoreIncrease[dnd5e.AbilityDexterity])

	dwarf, err := s.client.GetRace(s.ctx, "Nain")
	s.Require().NoError(err)
	s.Equal(25, dwarf.Speed)
}

func (s *StaticCatalogTestSuite) TestSubclasses() {
	all, err := s.client.ListSubclasses(s.ctx, "")
	s.Require().NoError(err)
	s.Len(all, 48)

	rogue, err := s.client.ListSubclasses(s.ctx, "Roublard")
	s.Require().NoError(err)
	s.Len(rogue, 4)
	for _, sc := range rogue {
		s.Equal("rogue", sc.ClassID)
	}

	_, err = s.client.ListSubclasses(s.ctx, "necromancer")
	s.True(errors.IsNotFound(err))
}

func (s *StaticCatalogTestSuite) TestUnknownReferences() {
	_, err := s.client.GetRace(s.ctx, "warforged")
	s.True(errors.IsNotFound(err))

	_, err = s.client.GetClass(s.ctx, "")
	s.True(errors.IsInvalidArgument(err))
}

func (s *StaticCatalogTestSuite) TestSkills() {
	skills, err := s.client.ListSkills(s.ctx)
	s.Require().NoError(err)
	s.Len(skills, 18)
}
