package v1alpha1_test

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/charforge/internal/engine"
	"github.com/KirkDiggler/charforge/internal/entities/dnd5e"
	"github.com/KirkDiggler/charforge/internal/errors"
	"github.com/KirkDiggler/charforge/internal/handlers/charforge/v1alpha1"
	"github.com/KirkDiggler/charforge/internal/orchestrators/character"
	charactermock "github.com/KirkDiggler/charforge/internal/orchestrators/character/mock"
	"github.com/KirkDiggler/charforge/internal/orchestrators/dice"
	dicemock "github.com/KirkDiggler/charforge/internal/orchestrators/dice/mock"
	dicesession "github.com/KirkDiggler/charforge/internal/repositories/dice_session"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockCharacter *charactermock.MockService
	mockDice      *dicemock.MockService
	server        *grpc.Server
	client        *v1alpha1.Client
	ctx           context.Context
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockCharacter = charactermock.NewMockService(s.ctrl)
	s.mockDice = dicemock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{CharacterService: s.mockCharacter})
	s.Require().NoError(err)
	diceHandler, err := v1alpha1.NewDiceHandler(&v1alpha1.DiceHandlerConfig{DiceService: s.mockDice})
	s.Require().NoError(err)

	lis := bufconn.Listen(1 << 20)
	server := grpc.NewServer()
	v1alpha1.RegisterCharacterCreationServer(server, handler)
	v1alpha1.RegisterDiceServer(server, diceHandler)
	s.server = server
	go func() {
		_ = server.Serve(lis)
	}()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)
	s.client = v1alpha1.NewClient(conn)

	s.T().Cleanup(func() {
		_ = conn.Close()
		server.Stop()
	})
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) TestNewHandler_RequiresService() {
	_, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{})
	s.True(errors.IsInvalidArgument(err))

	_, err = v1alpha1.NewHandler(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = v1alpha1.NewDiceHandler(&v1alpha1.DiceHandlerConfig{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *HandlerTestSuite) TestServicesRegisterWithoutDescriptorFiles() {
	info := s.server.GetServiceInfo()

	creation, ok := info[v1alpha1.CharacterCreationServiceName]
	s.Require().True(ok)
	s.Len(creation.Methods, len(v1alpha1.CharacterCreationServiceDesc.Methods))
	s.Nil(creation.Metadata)

	diceInfo, ok := info[v1alpha1.DiceServiceName]
	s.Require().True(ok)
	s.Len(diceInfo.Methods, 2)
	s.Nil(diceInfo.Metadata)
}

func (s *HandlerTestSuite) TestCreateDraft() {
	draft := &dnd5e.CharacterDraft{
		ID:        "draft-1",
		PlayerID:  "player-1",
		Name:      "Thorin",
		Step:      dnd5e.StepRace,
		CreatedAt: 1700000000,
		UpdatedAt: 1700000000,
		ExpiresAt: 1700086400,
	}
	s.mockCharacter.EXPECT().
		CreateDraft(gomock.Any(), &character.CreateDraftInput{PlayerID: "player-1", Name: "Thorin"}).
		Return(&character.CreateDraftOutput{Draft: draft}, nil)

	var resp v1alpha1.DraftResponse
	err := s.client.Character(s.ctx, v1alpha1.MethodCreateDraft,
		&v1alpha1.CreateDraftRequest{PlayerID: "player-1", Name: "Thorin"}, &resp)
	s.Require().NoError(err)
	s.Equal(draft, resp.Draft)
}

func (s *HandlerTestSuite) TestDraftGenerationSurvivesTheWire() {
	draft := &dnd5e.CharacterDraft{
		ID:       "draft-1",
		PlayerID: "player-1",
		Step:     dnd5e.StepAbilityScores,
		Generation: &dnd5e.StandardArray{
			Assignment: dnd5e.Assignment{dnd5e.AbilityStrength: 0, dnd5e.AbilityDexterity: 1},
		},
	}
	s.mockCharacter.EXPECT().
		SetGenerationMethod(gomock.Any(), &character.SetGenerationMethodInput{
			DraftID: "draft-1",
			Method:  dnd5e.MethodStandardArray,
		}).
		Return(&character.SetGenerationMethodOutput{
			Draft: draft,
			Evaluation: &engine.EvaluateGenerationOutput{
				BaseScores: dnd5e.AbilityScores{dnd5e.AbilityStrength: 15, dnd5e.AbilityDexterity: 14},
				Reasons:    []string{engine.ReasonIncomplete},
			},
		}, nil)

	var resp v1alpha1.GenerationResponse
	err := s.client.Character(s.ctx, v1alpha1.MethodSetGenerationMethod,
		&v1alpha1.SetGenerationMethodRequest{DraftID: "draft-1", Method: "standard_array"}, &resp)
	s.Require().NoError(err)

	s.Require().NotNil(resp.Draft)
	s.Equal(draft.Generation, resp.Draft.Generation)
	s.Require().NotNil(resp.Evaluation)
	s.False(resp.Evaluation.Complete)
	s.Equal([]string{engine.ReasonIncomplete}, resp.Evaluation.Reasons)
	s.Equal(15, resp.Evaluation.BaseScores[dnd5e.AbilityStrength])
	s.Nil(resp.Evaluation.PointBuy)
}

func (s *HandlerTestSuite) TestSetPointBuyScore() {
	s.mockCharacter.EXPECT().
		SetPointBuyScore(gomock.Any(), &character.SetPointBuyScoreInput{
			DraftID: "draft-1",
			Ability: "STR",
			Score:   15,
		}).
		Return(&character.SetPointBuyScoreOutput{
			Draft: &dnd5e.CharacterDraft{ID: "draft-1"},
			Validation: &engine.ValidatePointBuyOutput{
				PointsUsed:      9,
				PointsRemaining: 18,
				Valid:           true,
				Violations:      []engine.Violation{},
			},
		}, nil)

	var resp v1alpha1.SetPointBuyScoreResponse
	err := s.client.Character(s.ctx, v1alpha1.MethodSetPointBuyScore,
		&v1alpha1.SetPointBuyScoreRequest{DraftID: "draft-1", Ability: "STR", Score: 15}, &resp)
	s.Require().NoError(err)
	s.Require().NotNil(resp.Validation)
	s.Equal(9, resp.Validation.PointsUsed)
	s.Equal(18, resp.Validation.PointsRemaining)
	s.True(resp.Validation.Valid)
}

func (s *HandlerTestSuite) TestSelectEquipmentOption_ConvertsOption() {
	s.mockCharacter.EXPECT().
		SelectEquipmentOption(gomock.Any(), &character.SelectEquipmentOptionInput{
			DraftID: "draft-1",
			Option:  dnd5e.EquipmentOptionB,
		}).
		Return(&character.SelectEquipmentOptionOutput{
			Draft: &dnd5e.CharacterDraft{ID: "draft-1", EquipmentOption: dnd5e.EquipmentOptionB},
			Items: []string{"Dés en os"},
		}, nil)

	var resp v1alpha1.SelectEquipmentOptionResponse
	err := s.client.Character(s.ctx, v1alpha1.MethodSelectEquipmentOption,
		&v1alpha1.SelectEquipmentOptionRequest{DraftID: "draft-1", Option: "B"}, &resp)
	s.Require().NoError(err)
	s.Equal([]string{"Dés en os"}, resp.Items)
	s.Equal(dnd5e.EquipmentOptionB, resp.Draft.EquipmentOption)
}

func (s *HandlerTestSuite) TestPreviewCharacter_StepReasons() {
	s.mockCharacter.EXPECT().
		PreviewCharacter(gomock.Any(), &character.PreviewCharacterInput{DraftID: "draft-1"}).
		Return(&character.PreviewCharacterOutput{
			Draft: &dnd5e.CharacterDraft{ID: "draft-1"},
			Generation: &engine.EvaluateGenerationOutput{
				Reasons: []string{engine.ReasonIncomplete},
			},
			Derived: &engine.DeriveCharacterOutput{
				Stats: engine.CombatStats{HitPoints: 10, ArmorClass: 10, Speed: 30},
			},
			StepReasons: map[dnd5e.WizardStep][]string{
				dnd5e.StepRace: {"no race selected"},
			},
		}, nil)

	var resp v1alpha1.PreviewCharacterResponse
	err := s.client.Character(s.ctx, v1alpha1.MethodPreviewCharacter,
		&v1alpha1.DraftRequest{DraftID: "draft-1"}, &resp)
	s.Require().NoError(err)
	s.Equal(map[string][]string{string(dnd5e.StepRace): {"no race selected"}}, resp.StepReasons)
	s.Require().NotNil(resp.Derived)
	s.Equal(10, resp.Derived.Stats.HitPoints)
	s.Equal(30, resp.Derived.Stats.Speed)
	s.Nil(resp.Race)
}

func (s *HandlerTestSuite) TestExportCharacterSheet_BytesRoundTrip() {
	pdf := []byte("%PDF-1.3 test")
	s.mockCharacter.EXPECT().
		ExportCharacterSheet(gomock.Any(), &character.ExportCharacterSheetInput{CharacterID: "char-1"}).
		Return(&character.ExportCharacterSheetOutput{Filename: "thorin.pdf", PDF: pdf}, nil)

	var resp v1alpha1.ExportCharacterSheetResponse
	err := s.client.Character(s.ctx, v1alpha1.MethodExportCharacterSheet,
		&v1alpha1.CharacterRequest{CharacterID: "char-1"}, &resp)
	s.Require().NoError(err)
	s.Equal("thorin.pdf", resp.Filename)
	s.Equal(pdf, resp.PDF)
}

func (s *HandlerTestSuite) TestListClasses_FlattensClass() {
	s.mockCharacter.EXPECT().
		ListClasses(gomock.Any(), &character.ListClassesInput{}).
		Return(&character.ListClassesOutput{
			Classes: []*character.ClassWithSubclasses{{
				Class:      &dnd5e.Class{ID: "fighter", Name: "Guerrier", HitDie: 10},
				Subclasses: []*dnd5e.Subclass{},
			}},
		}, nil)

	var resp v1alpha1.ListClassesResponse
	err := s.client.Character(s.ctx, v1alpha1.MethodListClasses, &v1alpha1.EmptyRequest{}, &resp)
	s.Require().NoError(err)
	s.Require().Len(resp.Classes, 1)
	s.Require().NotNil(resp.Classes[0].Class)
	s.Equal("fighter", resp.Classes[0].ID)
	s.Equal(10, resp.Classes[0].HitDie)
	s.Empty(resp.Classes[0].Subclasses)
}

func (s *HandlerTestSuite) TestErrors_KeepCodeAndViolations() {
	s.mockCharacter.EXPECT().
		SelectClassSkills(gomock.Any(), gomock.Any()).
		Return(nil, errors.NewValidationBuilder().
			Fieldf("skills", "unknown skill %q", "Arcanes").
			Build())

	err := s.client.Character(s.ctx, v1alpha1.MethodSelectClassSkills,
		&v1alpha1.SelectClassSkillsRequest{DraftID: "draft-1", Skills: []string{"Arcanes"}}, nil)
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Equal([]errors.FieldViolation{{Field: "skills", Description: `unknown skill "Arcanes"`}},
		errors.FieldViolations(err))
}

func (s *HandlerTestSuite) TestErrors_FailedPrecondition() {
	s.mockCharacter.EXPECT().
		AdvanceStep(gomock.Any(), &character.AdvanceStepInput{DraftID: "draft-1"}).
		Return(nil, errors.FailedPrecondition("step race is incomplete: no race selected"))

	err := s.client.Character(s.ctx, v1alpha1.MethodAdvanceStep, &v1alpha1.DraftRequest{DraftID: "draft-1"}, nil)
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
	s.Equal("step race is incomplete: no race selected", errors.GetMessage(err))
}

func (s *HandlerTestSuite) TestMalformedRequest() {
	in, err := structpb.NewStruct(map[string]any{"score": "fifteen"})
	s.Require().NoError(err)

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{CharacterService: s.mockCharacter})
	s.Require().NoError(err)

	_, err = handler.SetPointBuyScore(s.ctx, in)
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(errors.FromGRPCError(err)))
}

func (s *HandlerTestSuite) TestGetRollSession() {
	now := time.Unix(1700000000, 0).UTC()
	session := &dicesession.DiceSession{
		EntityID: "draft-1",
		Context:  dicesession.ContextAbilityScores,
		Rolls: []dicesession.DiceRoll{{
			RollID:   "roll-1",
			Notation: "4d6",
			Dice:     []int{6, 5, 4},
			Dropped:  []int{2},
			Total:    15,
		}},
		CreatedAt: now,
		ExpiresAt: now.Add(15 * time.Minute),
	}
	s.mockDice.EXPECT().
		GetRollSession(gomock.Any(), &dice.GetRollSessionInput{EntityID: "draft-1"}).
		Return(&dice.GetRollSessionOutput{Session: session}, nil)

	var resp v1alpha1.RollSessionResponse
	err := s.client.Dice(s.ctx, v1alpha1.MethodGetRollSession, &v1alpha1.RollSessionRequest{EntityID: "draft-1"}, &resp)
	s.Require().NoError(err)
	s.Require().NotNil(resp.Session)
	s.Equal(15, resp.Session.Rolls[0].Total)
	s.True(now.Equal(resp.Session.CreatedAt))
}

func (s *HandlerTestSuite) TestGetRollSession_RequiresEntity() {
	err := s.client.Dice(s.ctx, v1alpha1.MethodGetRollSession, &v1alpha1.RollSessionRequest{}, nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *HandlerTestSuite) TestClearRollSession() {
	s.mockDice.EXPECT().
		ClearRollSession(gomock.Any(), &dice.ClearRollSessionInput{EntityID: "draft-1", Context: "ability_scores"}).
		Return(&dice.ClearRollSessionOutput{RollsDeleted: 6}, nil)

	var resp v1alpha1.ClearRollSessionResponse
	err := s.client.Dice(s.ctx, v1alpha1.MethodClearRollSession,
		&v1alpha1.RollSessionRequest{EntityID: "draft-1", Context: "ability_scores"}, &resp)
	s.Require().NoError(err)
	s.Equal(6, resp.RollsCleared)
}
