package character_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/charforge/internal/entities/dnd5e"
	"github.com/KirkDiggler/charforge/internal/errors"
	redisclient "github.com/KirkDiggler/charforge/internal/redis"
	"github.com/KirkDiggler/charforge/internal/repositories/character"
	"github.com/KirkDiggler/charforge/internal/testutils"
)

// RepositoryTestSuite runs the same behavior checks against every store
type RepositoryTestSuite struct {
	suite.Suite
	newRepo func() character.Repository
	repo    character.Repository
	ctx     context.Context
}

func TestRedisRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{newRepo: func() character.Repository {
		mr := testutils.StartMiniredis(t, nil)
		client, err := redisclient.NewClient(mr.Addr(), nil)
		if err != nil {
			t.Fatal(err)
		}
		repo, err := character.NewRedis(&character.RedisConfig{Client: client})
		if err != nil {
			t.Fatal(err)
		}
		return repo
	}})
}

func TestSQLiteRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{newRepo: func() character.Repository {
		repo, err := character.NewSQLite(&character.SQLiteConfig{DB: testutils.CreateTestSQLiteDB(t)})
		if err != nil {
			t.Fatal(err)
		}
		return repo
	}})
}

func (s *RepositoryTestSuite) SetupTest() {
	s.repo = s.newRepo()
	s.ctx = context.Background()
}

func (s *RepositoryTestSuite) TestCreateAndGet() {
	char := testutils.CreateTestCharacter("char_1", "player_1")

	out, err := s.repo.Create(s.ctx, character.CreateInput{Character: char})
	s.Require().NoError(err)
	s.Equal(char, out.Character)

	got, err := s.repo.Get(s.ctx, character.GetInput{ID: "char_1"})
	s.Require().NoError(err)
	s.Equal(char.Name, got.Character.Name)
	s.Equal(char.Abilities, got.Character.Abilities)
	s.Equal(char.Stats, got.Character.Stats)
	s.Equal(char.Equipment, got.Character.Equipment)
	s.Equal(char.Skills, got.Character.Skills)
	s.Nil(got.Character.Subclass)
	s.True(char.CreatedAt.Equal(got.Character.CreatedAt))
}

func (s *RepositoryTestSuite) TestCreateDuplicate() {
	char := testutils.CreateTestCharacter("char_1", "player_1")
	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: char})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, character.CreateInput{Character: char})
	s.True(errors.IsAlreadyExists(err))
}

func (s *RepositoryTestSuite) TestCreateValidation() {
	_, err := s.repo.Create(s.ctx, character.CreateInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Create(s.ctx, character.CreateInput{Character: testutils.CreateTestCharacter("", "player_1")})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Create(s.ctx, character.CreateInput{Character: testutils.CreateTestCharacter("char_1", "")})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RepositoryTestSuite) TestSubclassRoundTrip() {
	char := testutils.CreateTestCharacter("char_1", "player_1")
	subclass := "Champion"
	char.Subclass = &subclass

	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: char})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, character.GetInput{ID: "char_1"})
	s.Require().NoError(err)
	s.Require().NotNil(got.Character.Subclass)
	s.Equal("Champion", *got.Character.Subclass)
}

func (s *RepositoryTestSuite) TestGetNotFound() {
	_, err := s.repo.Get(s.ctx, character.GetInput{ID: "missing"})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Get(s.ctx, character.GetInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RepositoryTestSuite) TestListByPlayerID() {
	older := testutils.CreateTestCharacter("char_b", "player_1")
	newer := testutils.CreateTestCharacter("char_a", "player_1")
	newer.CreatedAt = older.CreatedAt.Add(time.Hour)
	other := testutils.CreateTestCharacter("char_c", "player_2")

	for _, c := range []*dnd5e.Character{newer, older, other} {
		_, err := s.repo.Create(s.ctx, character.CreateInput{Character: c})
		s.Require().NoError(err)
	}

	out, err := s.repo.ListByPlayerID(s.ctx, character.ListByPlayerIDInput{PlayerID: "player_1"})
	s.Require().NoError(err)
	s.Require().Len(out.Characters, 2)
	s.Equal("char_b", out.Characters[0].ID)
	s.Equal("char_a", out.Characters[1].ID)

	out, err = s.repo.ListByPlayerID(s.ctx, character.ListByPlayerIDInput{PlayerID: "nobody"})
	s.Require().NoError(err)
	s.Empty(out.Characters)

	_, err = s.repo.ListByPlayerID(s.ctx, character.ListByPlayerIDInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RepositoryTestSuite) TestDelete() {
	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: testutils.CreateTestCharacter("char_1", "player_1")})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, character.DeleteInput{ID: "char_1"})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, character.GetInput{ID: "char_1"})
	s.True(errors.IsNotFound(err))

	out, err := s.repo.ListByPlayerID(s.ctx, character.ListByPlayerIDInput{PlayerID: "player_1"})
	s.Require().NoError(err)
	s.Empty(out.Characters)

	_, err = s.repo.Delete(s.ctx, character.DeleteInput{ID: "char_1"})
	s.True(errors.IsNotFound(err))
}

func TestRedisListCleansDanglingIndex(t *testing.T) {
	mr := testutils.StartMiniredis(t, func(mr *miniredis.Miniredis) {
		_, _ = mr.SAdd("character:player:player_1", "char_gone")
	})
	client, err := redisclient.NewClient(mr.Addr(), nil)
	if err != nil {
		t.Fatal(err)
	}
	repo, err := character.NewRedis(&character.RedisConfig{Client: client})
	if err != nil {
		t.Fatal(err)
	}

	out, err := repo.ListByPlayerID(context.Background(), character.ListByPlayerIDInput{PlayerID: "player_1"})
	if err != nil {
		t.Fatal(err)
	}
	if len(out.Characters) != 0 {
		t.Fatalf("expected no characters, got %d", len(out.Characters))
	}
	if ok, _ := mr.SIsMember("character:player:player_1", "char_gone"); ok {
		t.Fatal("dangling id was not removed from the index")
	}
}
