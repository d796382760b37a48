package character_test

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/charforge/internal/clients/external"
	"github.com/KirkDiggler/charforge/internal/engine"
	"github.com/KirkDiggler/charforge/internal/entities/dnd5e"
	"github.com/KirkDiggler/charforge/internal/errors"
	"github.com/KirkDiggler/charforge/internal/orchestrators/character"
	"github.com/KirkDiggler/charforge/internal/orchestrators/dice"
	dicemock "github.com/KirkDiggler/charforge/internal/orchestrators/dice/mock"
	clockmock "github.com/KirkDiggler/charforge/internal/pkg/clock/mock"
	"github.com/KirkDiggler/charforge/internal/pkg/idgen"
	characterrepo "github.com/KirkDiggler/charforge/internal/repositories/character"
	charrepomock "github.com/KirkDiggler/charforge/internal/repositories/character/mock"
	draftrepo "github.com/KirkDiggler/charforge/internal/repositories/character_draft"
	"github.com/KirkDiggler/charforge/internal/testutils"
)

const testPlayerID = "player-123"

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockCharRepo *charrepomock.MockRepository
	mockDice     *dicemock.MockService
	mockClock    *clockmock.MockClock
	draftRepo    draftrepo.Repository
	bus          *events.Bus
	orchestrator *character.Orchestrator
	ctx          context.Context
	now          time.Time
	published    map[string][]events.Event
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockCharRepo = charrepomock.NewMockRepository(s.ctrl)
	s.mockDice = dicemock.NewMockService(s.ctrl)
	s.mockClock = clockmock.NewMockClock(s.ctrl)
	s.ctx = context.Background()

	s.now = time.Now().UTC().Truncate(time.Second)
	s.mockClock.EXPECT().Now().DoAndReturn(func() time.Time { return s.now }).AnyTimes()

	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.T().Cleanup(cleanup)

	var err error
	s.draftRepo, err = draftrepo.NewRedisRepository(&draftrepo.Config{Client: client})
	s.Require().NoError(err)

	eng, err := engine.New(nil)
	s.Require().NoError(err)

	catalog, err := external.NewStatic()
	s.Require().NoError(err)

	s.bus = events.NewBus()
	s.published = make(map[string][]events.Event)
	for _, eventType := range []string{
		character.EventDraftCreated,
		character.EventDraftDeleted,
		character.EventCharacterFinalized,
	} {
		s.bus.SubscribeFunc(eventType, 0, func(_ context.Context, e events.Event) error {
			s.published[eventType] = append(s.published[eventType], e)
			return nil
		})
	}

	s.orchestrator, err = character.New(&character.Config{
		CharacterRepo:        s.mockCharRepo,
		CharacterDraftRepo:   s.draftRepo,
		Engine:               eng,
		ExternalClient:       catalog,
		DiceService:          s.mockDice,
		DraftIDGenerator:     idgen.NewSequential("draft"),
		CharacterIDGenerator: idgen.NewSequential("char"),
		Clock:                s.mockClock,
		EventBus:             s.bus,
	})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func sixRolls() []dnd5e.AbilityRoll {
	return []dnd5e.AbilityRoll{
		{Kept: []int{6, 6, 5}, Dropped: 1, Total: 17},
		{Kept: []int{5, 5, 4}, Dropped: 2, Total: 14},
		{Kept: []int{5, 4, 4}, Dropped: 1, Total: 13},
		{Kept: []int{4, 4, 4}, Dropped: 3, Total: 12},
		{Kept: []int{4, 3, 3}, Dropped: 2, Total: 10},
		{Kept: []int{3, 2, 2}, Dropped: 1, Total: 7},
	}
}

func (s *OrchestratorTestSuite) createDraft(name string) *dnd5e.CharacterDraft {
	out, err := s.orchestrator.CreateDraft(s.ctx, &character.CreateDraftInput{PlayerID: testPlayerID, Name: name})
	s.Require().NoError(err)
	return out.Draft
}

// completeDraft builds a named dwarf fighter soldier with a full standard array
func (s *OrchestratorTestSuite) completeDraft() *dnd5e.CharacterDraft {
	draft := s.createDraft("Thorin Oakenshield")

	_, err := s.orchestrator.SelectRace(s.ctx, &character.SelectRaceInput{DraftID: draft.ID, RaceID: "dwarf"})
	s.Require().NoError(err)
	_, err = s.orchestrator.SelectClass(s.ctx, &character.SelectClassInput{DraftID: draft.ID, ClassID: "fighter"})
	s.Require().NoError(err)
	_, err = s.orchestrator.SelectClassSkills(s.ctx, &character.SelectClassSkillsInput{
		DraftID: draft.ID,
		Skills:  []string{"Athlétisme", "perception"},
	})
	s.Require().NoError(err)
	_, err = s.orchestrator.SelectBackground(s.ctx, &character.SelectBackgroundInput{DraftID: draft.ID, BackgroundID: "soldier"})
	s.Require().NoError(err)
	_, err = s.orchestrator.SelectEquipmentOption(s.ctx, &character.SelectEquipmentOptionInput{
		DraftID: draft.ID,
		Option:  dnd5e.EquipmentOptionA,
	})
	s.Require().NoError(err)
	_, err = s.orchestrator.SetGenerationMethod(s.ctx, &character.SetGenerationMethodInput{
		DraftID: draft.ID,
		Method:  dnd5e.MethodStandardArray,
	})
	s.Require().NoError(err)

	var last *character.AssignAbilitySlotOutput
	for ability, slot := range testutils.CreateTestStandardArray().Assignment {
		last, err = s.orchestrator.AssignAbilitySlot(s.ctx, &character.AssignAbilitySlotInput{
			DraftID: draft.ID,
			Ability: string(ability),
			Slot:    slot,
		})
		s.Require().NoError(err)
	}
	s.Require().True(last.Evaluation.Complete)

	return last.Draft
}

func (s *OrchestratorTestSuite) TestNewRequiresDependencies() {
	_, err := character.New(&character.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = character.New(nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestCreateDraft() {
	draft := s.createDraft("  Thorin  ")

	s.Equal("draft_1", draft.ID)
	s.Equal(testPlayerID, draft.PlayerID)
	s.Equal("Thorin", draft.Name)
	s.Equal(dnd5e.StepRace, draft.Step)
	s.Equal(s.now.Unix(), draft.CreatedAt)
	s.Equal(s.now.Add(24*time.Hour).Unix(), draft.ExpiresAt)

	s.Require().Len(s.published[character.EventDraftCreated], 1)
	event := s.published[character.EventDraftCreated][0]
	s.Equal("draft_1", event.Source().GetID())
	playerID, ok := event.Context().Get(character.EventKeyPlayerID)
	s.True(ok)
	s.Equal(testPlayerID, playerID)
}

func (s *OrchestratorTestSuite) TestCreateDraftRequiresPlayer() {
	_, err := s.orchestrator.CreateDraft(s.ctx, &character.CreateDraftInput{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Empty(s.published[character.EventDraftCreated])
}

func (s *OrchestratorTestSuite) TestCreateDraftReplacesPrevious() {
	first := s.createDraft("First")
	second := s.createDraft("Second")

	_, err := s.orchestrator.GetDraft(s.ctx, &character.GetDraftInput{DraftID: first.ID})
	s.True(errors.IsNotFound(err))

	out, err := s.orchestrator.GetDraft(s.ctx, &character.GetDraftInput{PlayerID: testPlayerID})
	s.Require().NoError(err)
	s.Equal(second.ID, out.Draft.ID)
}

func (s *OrchestratorTestSuite) TestGetDraft() {
	draft := s.createDraft("Thorin")

	out, err := s.orchestrator.GetDraft(s.ctx, &character.GetDraftInput{DraftID: draft.ID})
	s.Require().NoError(err)
	s.Equal("Thorin", out.Draft.Name)

	_, err = s.orchestrator.GetDraft(s.ctx, &character.GetDraftInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.GetDraft(s.ctx, &character.GetDraftInput{DraftID: "draft_missing"})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestDeleteDraft() {
	draft := s.createDraft("Thorin")

	s.mockDice.EXPECT().
		ClearRollSession(gomock.Any(), &dice.ClearRollSessionInput{EntityID: draft.ID}).
		Return(&dice.ClearRollSessionOutput{}, nil)

	_, err := s.orchestrator.DeleteDraft(s.ctx, &character.DeleteDraftInput{DraftID: draft.ID})
	s.Require().NoError(err)

	_, err = s.orchestrator.GetDraft(s.ctx, &character.GetDraftInput{DraftID: draft.ID})
	s.True(errors.IsNotFound(err))
	s.Len(s.published[character.EventDraftDeleted], 1)
}

func (s *OrchestratorTestSuite) TestUpdateName() {
	draft := s.createDraft("")
	s.now = s.now.Add(time.Minute)

	out, err := s.orchestrator.UpdateName(s.ctx, &character.UpdateNameInput{DraftID: draft.ID, Name: " Gimli "})
	s.Require().NoError(err)
	s.Equal("Gimli", out.Draft.Name)
	s.Equal(s.now.Unix(), out.Draft.UpdatedAt)
	s.Equal(s.now.Add(24*time.Hour).Unix(), out.Draft.ExpiresAt)
}

func (s *OrchestratorTestSuite) TestSelectRaceByName() {
	draft := s.createDraft("Thorin")

	out, err := s.orchestrator.SelectRace(s.ctx, &character.SelectRaceInput{DraftID: draft.ID, RaceID: "Nain"})
	s.Require().NoError(err)
	s.Equal("dwarf", out.Draft.RaceID)
	s.Equal(25, out.Race.Speed)
}

func (s *OrchestratorTestSuite) TestSelectRaceUnknown() {
	draft := s.createDraft("Thorin")

	_, err := s.orchestrator.SelectRace(s.ctx, &character.SelectRaceInput{DraftID: draft.ID, RaceID: "kender"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))

	_, err = s.orchestrator.SelectRace(s.ctx, &character.SelectRaceInput{DraftID: draft.ID})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestSelectClassResetsSkills() {
	draft := s.createDraft("Thorin")

	_, err := s.orchestrator.SelectClass(s.ctx, &character.SelectClassInput{DraftID: draft.ID, ClassID: "fighter"})
	s.Require().NoError(err)
	_, err = s.orchestrator.SelectClassSkills(s.ctx, &character.SelectClassSkillsInput{
		DraftID: draft.ID,
		Skills:  []string{"athletics"},
	})
	s.Require().NoError(err)

	same, err := s.orchestrator.SelectClass(s.ctx, &character.SelectClassInput{DraftID: draft.ID, ClassID: "fighter"})
	s.Require().NoError(err)
	s.False(same.SkillsReset)
	s.Equal([]string{"athletics"}, same.Draft.ClassSkills)

	changed, err := s.orchestrator.SelectClass(s.ctx, &character.SelectClassInput{DraftID: draft.ID, ClassID: "wizard"})
	s.Require().NoError(err)
	s.True(changed.SkillsReset)
	s.Empty(changed.Draft.ClassSkills)
}

func (s *OrchestratorTestSuite) TestSelectClassSkills() {
	draft := s.createDraft("Thorin")

	_, err := s.orchestrator.SelectClassSkills(s.ctx, &character.SelectClassSkillsInput{
		DraftID: draft.ID,
		Skills:  []string{"athletics"},
	})
	s.True(errors.IsFailedPrecondition(err), "class must be chosen first")

	_, err = s.orchestrator.SelectClass(s.ctx, &character.SelectClassInput{DraftID: draft.ID, ClassID: "fighter"})
	s.Require().NoError(err)

	testCases := []struct {
		name   string
		skills []string
		want   []string
		errMsg string
	}{
		{
			name:   "accent and case insensitive",
			skills: []string{"ATHLETISME", "Survie"},
			want:   []string{"athletics", "survival"},
		},
		{
			name:   "duplicates collapse",
			skills: []string{"perception", "Perception"},
			want:   []string{"perception"},
		},
		{
			name:   "skill not on class list",
			skills: []string{"arcana"},
			errMsg: "arcana",
		},
		{
			name:   "unknown skill",
			skills: []string{"basket weaving"},
			errMsg: "unknown skill",
		},
		{
			name:   "too many skills",
			skills: []string{"athletics", "perception", "survival"},
			errMsg: "at most 2",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			out, err := s.orchestrator.SelectClassSkills(s.ctx, &character.SelectClassSkillsInput{
				DraftID: draft.ID,
				Skills:  tc.skills,
			})
			if tc.errMsg != "" {
				s.Require().Error(err)
				s.True(errors.IsInvalidArgument(err))
				s.Contains(err.Error(), tc.errMsg)
				return
			}
			s.Require().NoError(err)
			s.Equal(tc.want, out.Draft.ClassSkills)
		})
	}
}

func (s *OrchestratorTestSuite) TestSelectEquipmentOption() {
	draft := s.createDraft("Thorin")

	_, err := s.orchestrator.SelectEquipmentOption(s.ctx, &character.SelectEquipmentOptionInput{
		DraftID: draft.ID,
		Option:  dnd5e.EquipmentOptionA,
	})
	s.True(errors.IsFailedPrecondition(err), "background must be chosen first")

	_, err = s.orchestrator.SelectBackground(s.ctx, &character.SelectBackgroundInput{DraftID: draft.ID, BackgroundID: "soldier"})
	s.Require().NoError(err)

	_, err = s.orchestrator.SelectEquipmentOption(s.ctx, &character.SelectEquipmentOptionInput{
		DraftID: draft.ID,
		Option:  "C",
	})
	s.True(errors.IsInvalidArgument(err))

	out, err := s.orchestrator.SelectEquipmentOption(s.ctx, &character.SelectEquipmentOptionInput{
		DraftID: draft.ID,
		Option:  dnd5e.EquipmentOptionB,
	})
	s.Require().NoError(err)
	s.Equal(dnd5e.EquipmentOptionB, out.Draft.EquipmentOption)
	s.Contains(out.Items, "Dés en os")

	changed, err := s.orchestrator.SelectBackground(s.ctx, &character.SelectBackgroundInput{DraftID: draft.ID, BackgroundID: "sage"})
	s.Require().NoError(err)
	s.True(changed.OptionReset)
	s.Equal(dnd5e.EquipmentOptionNone, changed.Draft.EquipmentOption)

	_, err = s.orchestrator.SelectEquipmentOption(s.ctx, &character.SelectEquipmentOptionInput{
		DraftID: draft.ID,
		Option:  dnd5e.EquipmentOptionA,
	})
	s.True(errors.IsFailedPrecondition(err), "sage has a single equipment list")
}

func (s *OrchestratorTestSuite) TestPointBuy() {
	draft := s.createDraft("Thorin")

	started, err := s.orchestrator.SetGenerationMethod(s.ctx, &character.SetGenerationMethodInput{
		DraftID: draft.ID,
		Method:  dnd5e.MethodPointBuy,
	})
	s.Require().NoError(err)
	s.True(started.Evaluation.Complete)
	s.Equal(27, started.Evaluation.PointBuy.PointsRemaining)

	out, err := s.orchestrator.SetPointBuyScore(s.ctx, &character.SetPointBuyScoreInput{
		DraftID: draft.ID,
		Ability: "Force",
		Score:   15,
	})
	s.Require().NoError(err)
	s.Equal(9, out.Validation.PointsUsed)
	s.True(out.Validation.Valid)

	stored, err := s.orchestrator.GetDraft(s.ctx, &character.GetDraftInput{DraftID: draft.ID})
	s.Require().NoError(err)
	pb, ok := stored.Draft.Generation.(*dnd5e.PointBuy)
	s.Require().True(ok)
	s.Equal(15, pb.Scores[dnd5e.AbilityStrength])

	_, err = s.orchestrator.SetPointBuyScore(s.ctx, &character.SetPointBuyScoreInput{
		DraftID: draft.ID,
		Ability: "luck",
		Score:   10,
	})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestSetPointBuyScoreWrongMethod() {
	draft := s.createDraft("Thorin")

	_, err := s.orchestrator.SetGenerationMethod(s.ctx, &character.SetGenerationMethodInput{
		DraftID: draft.ID,
		Method:  dnd5e.MethodStandardArray,
	})
	s.Require().NoError(err)

	_, err = s.orchestrator.SetPointBuyScore(s.ctx, &character.SetPointBuyScoreInput{
		DraftID: draft.ID,
		Ability: "strength",
		Score:   15,
	})
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestUnknownGenerationMethod() {
	draft := s.createDraft("Thorin")

	_, err := s.orchestrator.SetGenerationMethod(s.ctx, &character.SetGenerationMethodInput{
		DraftID: draft.ID,
		Method:  "heroic",
	})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestDiceRollFlow() {
	draft := s.createDraft("Thorin")

	s.mockDice.EXPECT().
		RollAbilityScores(gomock.Any(), &dice.RollAbilityScoresInput{EntityID: draft.ID}).
		Return(&dice.RollAbilityScoresOutput{Rolls: sixRolls()}, nil).
		Times(2)

	started, err := s.orchestrator.SetGenerationMethod(s.ctx, &character.SetGenerationMethodInput{
		DraftID: draft.ID,
		Method:  dnd5e.MethodDiceRoll,
	})
	s.Require().NoError(err)
	s.False(started.Evaluation.Complete)

	assigned, err := s.orchestrator.AssignAbilitySlot(s.ctx, &character.AssignAbilitySlotInput{
		DraftID: draft.ID,
		Ability: "strength",
		Slot:    0,
	})
	s.Require().NoError(err)
	s.Equal(17, assigned.Evaluation.BaseScores[dnd5e.AbilityStrength])

	rerolled, err := s.orchestrator.RerollAbilityScores(s.ctx, &character.RerollAbilityScoresInput{DraftID: draft.ID})
	s.Require().NoError(err)
	s.Len(rerolled.Rolls, engine.PoolSize)
	roll, ok := rerolled.Draft.Generation.(*dnd5e.DiceRoll)
	s.Require().True(ok)
	s.Empty(roll.Assignment, "reroll discards assignments")

	s.mockDice.EXPECT().
		ClearRollSession(gomock.Any(), &dice.ClearRollSessionInput{EntityID: draft.ID}).
		Return(&dice.ClearRollSessionOutput{RollsDeleted: engine.PoolSize}, nil)

	switched, err := s.orchestrator.SetGenerationMethod(s.ctx, &character.SetGenerationMethodInput{
		DraftID: draft.ID,
		Method:  dnd5e.MethodPointBuy,
	})
	s.Require().NoError(err)
	pb, ok := switched.Draft.Generation.(*dnd5e.PointBuy)
	s.Require().True(ok)
	s.Equal(dnd5e.NewAbilityScores(8), pb.Scores)
	s.Equal(0, switched.Evaluation.PointBuy.PointsUsed)
}

func (s *OrchestratorTestSuite) TestSwitchingMethodResetsState() {
	draft := s.createDraft("Thorin")

	_, err := s.orchestrator.SetGenerationMethod(s.ctx, &character.SetGenerationMethodInput{
		DraftID: draft.ID,
		Method:  dnd5e.MethodStandardArray,
	})
	s.Require().NoError(err)
	for slot, ability := range []string{"strength", "dexterity"} {
		_, err = s.orchestrator.AssignAbilitySlot(s.ctx, &character.AssignAbilitySlotInput{
			DraftID: draft.ID,
			Ability: ability,
			Slot:    slot,
		})
		s.Require().NoError(err)
	}

	same, err := s.orchestrator.SetGenerationMethod(s.ctx, &character.SetGenerationMethodInput{
		DraftID: draft.ID,
		Method:  dnd5e.MethodStandardArray,
	})
	s.Require().NoError(err)
	sa, ok := same.Draft.Generation.(*dnd5e.StandardArray)
	s.Require().True(ok)
	s.Empty(sa.Assignment, "choosing the same method starts over")
	s.Equal([]string{engine.ReasonIncomplete}, same.Evaluation.Reasons)

	_, err = s.orchestrator.SetGenerationMethod(s.ctx, &character.SetGenerationMethodInput{
		DraftID: draft.ID,
		Method:  dnd5e.MethodPointBuy,
	})
	s.Require().NoError(err)
	_, err = s.orchestrator.SetPointBuyScore(s.ctx, &character.SetPointBuyScoreInput{
		DraftID: draft.ID,
		Ability: "str",
		Score:   15,
	})
	s.Require().NoError(err)

	reset, err := s.orchestrator.SetGenerationMethod(s.ctx, &character.SetGenerationMethodInput{
		DraftID: draft.ID,
		Method:  dnd5e.MethodPointBuy,
	})
	s.Require().NoError(err)
	s.Equal(dnd5e.NewAbilityScores(8), reset.Draft.Generation.(*dnd5e.PointBuy).Scores)
	s.Equal(0, reset.Evaluation.PointBuy.PointsUsed)

	stored, err := s.orchestrator.GetDraft(s.ctx, &character.GetDraftInput{DraftID: draft.ID})
	s.Require().NoError(err)
	s.Equal(dnd5e.NewAbilityScores(8), stored.Draft.Generation.(*dnd5e.PointBuy).Scores)
}

func (s *OrchestratorTestSuite) TestAssignAbilitySlotClears() {
	draft := s.completeDraft()

	out, err := s.orchestrator.AssignAbilitySlot(s.ctx, &character.AssignAbilitySlotInput{
		DraftID: draft.ID,
		Ability: "wis",
		Slot:    engine.NoSlot,
	})
	s.Require().NoError(err)
	s.False(out.Evaluation.Complete)
	s.NotContains(out.Draft.Generation.(*dnd5e.StandardArray).Assignment, dnd5e.AbilityWisdom)
	s.Len(out.Draft.Generation.(*dnd5e.StandardArray).Assignment, 5)

	preview, err := s.orchestrator.PreviewCharacter(s.ctx, &character.PreviewCharacterInput{DraftID: draft.ID})
	s.Require().NoError(err)
	s.Equal([]string{engine.ReasonIncomplete}, preview.StepReasons[dnd5e.StepAbilityScores])
}

func (s *OrchestratorTestSuite) TestRerollRequiresDiceMethod() {
	draft := s.createDraft("Thorin")

	_, err := s.orchestrator.RerollAbilityScores(s.ctx, &character.RerollAbilityScoresInput{DraftID: draft.ID})
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestAssignAbilitySlotOutOfRange() {
	draft := s.createDraft("Thorin")

	_, err := s.orchestrator.SetGenerationMethod(s.ctx, &character.SetGenerationMethodInput{
		DraftID: draft.ID,
		Method:  dnd5e.MethodStandardArray,
	})
	s.Require().NoError(err)

	_, err = s.orchestrator.AssignAbilitySlot(s.ctx, &character.AssignAbilitySlotInput{
		DraftID: draft.ID,
		Ability: "strength",
		Slot:    6,
	})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestAdvanceStepBlockedUntilComplete() {
	draft := s.createDraft("Thorin")

	_, err := s.orchestrator.AdvanceStep(s.ctx, &character.AdvanceStepInput{DraftID: draft.ID})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
	s.Equal([]string{"no race selected"}, errors.GetMeta(err)["reasons"])

	_, err = s.orchestrator.SelectRace(s.ctx, &character.SelectRaceInput{DraftID: draft.ID, RaceID: "dwarf"})
	s.Require().NoError(err)

	out, err := s.orchestrator.AdvanceStep(s.ctx, &character.AdvanceStepInput{DraftID: draft.ID})
	s.Require().NoError(err)
	s.Equal(dnd5e.StepClass, out.Draft.Step)

	_, err = s.orchestrator.SelectClass(s.ctx, &character.SelectClassInput{DraftID: draft.ID, ClassID: "fighter"})
	s.Require().NoError(err)

	_, err = s.orchestrator.AdvanceStep(s.ctx, &character.AdvanceStepInput{DraftID: draft.ID})
	s.True(errors.IsFailedPrecondition(err), "fighter skills not chosen")
}

func (s *OrchestratorTestSuite) TestWalkAllSteps() {
	draft := s.completeDraft()

	for _, want := range dnd5e.WizardSteps[1:] {
		out, err := s.orchestrator.AdvanceStep(s.ctx, &character.AdvanceStepInput{DraftID: draft.ID})
		s.Require().NoError(err)
		s.Equal(want, out.Draft.Step)
	}

	_, err := s.orchestrator.AdvanceStep(s.ctx, &character.AdvanceStepInput{DraftID: draft.ID})
	s.True(errors.IsFailedPrecondition(err))

	back, err := s.orchestrator.RetreatStep(s.ctx, &character.RetreatStepInput{DraftID: draft.ID})
	s.Require().NoError(err)
	s.Equal(dnd5e.StepAbilityScores, back.Draft.Step)
	s.Equal("dwarf", back.Draft.RaceID, "retreating keeps selections")
}

func (s *OrchestratorTestSuite) TestRetreatFromFirstStep() {
	draft := s.createDraft("Thorin")

	_, err := s.orchestrator.RetreatStep(s.ctx, &character.RetreatStepInput{DraftID: draft.ID})
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestPreviewPartialDraft() {
	draft := s.createDraft("Thorin")
	_, err := s.orchestrator.SelectRace(s.ctx, &character.SelectRaceInput{DraftID: draft.ID, RaceID: "dwarf"})
	s.Require().NoError(err)

	out, err := s.orchestrator.PreviewCharacter(s.ctx, &character.PreviewCharacterInput{DraftID: draft.ID})
	s.Require().NoError(err)

	s.NotNil(out.Race)
	s.Nil(out.Class)
	s.Nil(out.Background)
	s.False(out.Generation.Complete)
	s.Equal(25, out.Derived.Stats.Speed)
	// Unset abilities derive from 10; dwarf adds two constitution
	s.Equal(12, out.Derived.FinalScores[dnd5e.AbilityConstitution])

	s.NotContains(out.StepReasons, dnd5e.StepRace)
	s.Equal([]string{"no class selected"}, out.StepReasons[dnd5e.StepClass])
	s.Equal([]string{"no background selected"}, out.StepReasons[dnd5e.StepBackground])
	s.Equal([]string{"no generation method selected"}, out.StepReasons[dnd5e.StepAbilityScores])
}

func (s *OrchestratorTestSuite) TestPreviewCompleteDraft() {
	draft := s.completeDraft()

	out, err := s.orchestrator.PreviewCharacter(s.ctx, &character.PreviewCharacterInput{DraftID: draft.ID})
	s.Require().NoError(err)

	s.Empty(out.StepReasons)
	s.Equal(16, out.Derived.FinalScores[dnd5e.AbilityConstitution])
	s.Equal(13, out.Derived.Stats.HitPoints)
	s.Equal(11, out.Derived.Stats.ArmorClass)
	s.Equal([]string{"athletics", "intimidation", "perception"}, out.Derived.SkillProficiencies)
}

func (s *OrchestratorTestSuite) TestFinalizeDraft() {
	draft := s.completeDraft()

	s.mockCharRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input characterrepo.CreateInput) (*characterrepo.CreateOutput, error) {
			return &characterrepo.CreateOutput{Character: input.Character}, nil
		})
	s.mockDice.EXPECT().
		ClearRollSession(gomock.Any(), &dice.ClearRollSessionInput{EntityID: draft.ID}).
		Return(nil, errors.NotFound("no session"))

	out, err := s.orchestrator.FinalizeDraft(s.ctx, &character.FinalizeDraftInput{DraftID: draft.ID})
	s.Require().NoError(err)
	s.True(out.DraftDeleted)

	char := out.Character
	s.Equal("char_1", char.ID)
	s.Equal(testPlayerID, char.PlayerID)
	s.Equal("Thorin Oakenshield", char.Name)
	s.Equal(1, char.Level)
	s.Equal(13, char.MaxHP)
	s.Equal(13, char.CurrentHP)
	s.Equal("Guerrier", char.Class)
	s.Nil(char.Subclass)
	s.Equal(dnd5e.CharacterStats{ArmorClass: 11, Initiative: 1, Speed: 25, ProficiencyBonus: 2}, char.Stats)
	s.Equal(dnd5e.AbilityBlock{
		Strength: 15, Dexterity: 13, Constitution: 16, Intelligence: 8, Wisdom: 12, Charisma: 10,
	}, char.Abilities)
	s.Equal("Nain", char.Equipment.Race)
	s.Equal("Soldat", char.Equipment.Background)
	s.Equal(dnd5e.EquipmentOptionA, char.Equipment.BackgroundEquipmentOption)
	s.Contains(char.Equipment.BackgroundEquipmentItems, "Trophée d'ennemi")
	s.Contains(char.Equipment.StartingEquipment, "Cotte de mailles")
	s.Equal([]string{"athletics", "intimidation", "perception"}, char.Skills)
	s.Equal(s.now, char.CreatedAt)

	_, err = s.orchestrator.GetDraft(s.ctx, &character.GetDraftInput{DraftID: draft.ID})
	s.True(errors.IsNotFound(err), "finalized drafts are discarded")

	s.Require().Len(s.published[character.EventCharacterFinalized], 1)
	event := s.published[character.EventCharacterFinalized][0]
	s.Equal("char_1", event.Source().GetID())
	draftID, _ := event.Context().Get(character.EventKeyDraftID)
	s.Equal(draft.ID, draftID)
}

func (s *OrchestratorTestSuite) TestFinalizeRequiresName() {
	draft := s.completeDraft()
	_, err := s.orchestrator.UpdateName(s.ctx, &character.UpdateNameInput{DraftID: draft.ID, Name: "   "})
	s.Require().NoError(err)

	_, err = s.orchestrator.FinalizeDraft(s.ctx, &character.FinalizeDraftInput{DraftID: draft.ID})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Require().Len(errors.FieldViolations(err), 1)
	s.Equal("name", errors.FieldViolations(err)[0].Field)
}

func (s *OrchestratorTestSuite) TestFinalizeRequiresCompleteScores() {
	draft := s.createDraft("Thorin")
	_, err := s.orchestrator.SetGenerationMethod(s.ctx, &character.SetGenerationMethodInput{
		DraftID: draft.ID,
		Method:  dnd5e.MethodStandardArray,
	})
	s.Require().NoError(err)

	_, err = s.orchestrator.FinalizeDraft(s.ctx, &character.FinalizeDraftInput{DraftID: draft.ID})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
	s.Equal([]string{engine.ReasonIncomplete}, errors.GetMeta(err)["reasons"])
}

func (s *OrchestratorTestSuite) TestFinalizeRequiresCompletedSteps() {
	draft := s.createDraft("Nobody")
	_, err := s.orchestrator.SetGenerationMethod(s.ctx, &character.SetGenerationMethodInput{
		DraftID: draft.ID,
		Method:  dnd5e.MethodPointBuy,
	})
	s.Require().NoError(err)

	_, err = s.orchestrator.FinalizeDraft(s.ctx, &character.FinalizeDraftInput{DraftID: draft.ID})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
	s.Equal([]string{
		"race: no race selected",
		"class: no class selected",
		"background: no background selected",
	}, errors.GetMeta(err)["reasons"])

	stored, err := s.orchestrator.GetDraft(s.ctx, &character.GetDraftInput{DraftID: draft.ID})
	s.Require().NoError(err)
	s.Equal(dnd5e.StepRace, stored.Draft.Step)
	s.Empty(s.published[character.EventCharacterFinalized])
}

func (s *OrchestratorTestSuite) TestFinalizeRequiresClassSkills() {
	draft := s.completeDraft()
	_, err := s.orchestrator.SelectClassSkills(s.ctx, &character.SelectClassSkillsInput{
		DraftID: draft.ID,
		Skills:  []string{"athletics"},
	})
	s.Require().NoError(err)

	_, err = s.orchestrator.FinalizeDraft(s.ctx, &character.FinalizeDraftInput{DraftID: draft.ID})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
	s.Equal([]string{"class: choose 2 class skills, 1 chosen"}, errors.GetMeta(err)["reasons"])
}

func (s *OrchestratorTestSuite) TestFinalizeStorageFailureKeepsDraft() {
	draft := s.completeDraft()

	s.mockCharRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil, errors.Unavailable("database down"))

	_, err := s.orchestrator.FinalizeDraft(s.ctx, &character.FinalizeDraftInput{DraftID: draft.ID})
	s.Require().Error(err)
	s.Equal(errors.CodeUnavailable, errors.GetCode(err))

	_, err = s.orchestrator.GetDraft(s.ctx, &character.GetDraftInput{DraftID: draft.ID})
	s.NoError(err)
	s.Empty(s.published[character.EventCharacterFinalized])
}

func (s *OrchestratorTestSuite) TestCharacterOperations() {
	char := testutils.CreateTestCharacter("char_1", testPlayerID)

	s.mockCharRepo.EXPECT().
		Get(gomock.Any(), characterrepo.GetInput{ID: "char_1"}).
		Return(&characterrepo.GetOutput{Character: char}, nil).
		Times(2)
	s.mockCharRepo.EXPECT().
		ListByPlayerID(gomock.Any(), characterrepo.ListByPlayerIDInput{PlayerID: testPlayerID}).
		Return(&characterrepo.ListByPlayerIDOutput{Characters: []*dnd5e.Character{char}}, nil)
	s.mockCharRepo.EXPECT().
		Delete(gomock.Any(), characterrepo.DeleteInput{ID: "char_1"}).
		Return(&characterrepo.DeleteOutput{}, nil)

	got, err := s.orchestrator.GetCharacter(s.ctx, &character.GetCharacterInput{CharacterID: "char_1"})
	s.Require().NoError(err)
	s.Equal(char, got.Character)

	list, err := s.orchestrator.ListCharacters(s.ctx, &character.ListCharactersInput{PlayerID: testPlayerID})
	s.Require().NoError(err)
	s.Len(list.Characters, 1)

	sheet, err := s.orchestrator.ExportCharacterSheet(s.ctx, &character.ExportCharacterSheetInput{CharacterID: "char_1"})
	s.Require().NoError(err)
	s.Equal("thorin-oakenshield.pdf", sheet.Filename)
	s.Equal("%PDF", string(sheet.PDF[:4]))

	_, err = s.orchestrator.DeleteCharacter(s.ctx, &character.DeleteCharacterInput{CharacterID: "char_1"})
	s.Require().NoError(err)

	_, err = s.orchestrator.GetCharacter(s.ctx, &character.GetCharacterInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestListCatalog() {
	races, err := s.orchestrator.ListRaces(s.ctx, &character.ListRacesInput{})
	s.Require().NoError(err)
	s.NotEmpty(races.Races)

	backgrounds, err := s.orchestrator.ListBackgrounds(s.ctx, &character.ListBackgroundsInput{})
	s.Require().NoError(err)
	s.NotEmpty(backgrounds.Backgrounds)

	classes, err := s.orchestrator.ListClasses(s.ctx, &character.ListClassesInput{})
	s.Require().NoError(err)
	s.Require().NotEmpty(classes.Classes)
	for _, c := range classes.Classes {
		s.NotNil(c.Class)
		for _, sub := range c.Subclasses {
			s.Equal(c.Class.ID, sub.ClassID)
		}
	}
}
