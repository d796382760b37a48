package config_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/charforge/internal/config"
	"github.com/KirkDiggler/charforge/internal/errors"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) TestLoadDefaults() {
	cfg, err := config.Load()
	s.Require().NoError(err)

	s.Equal(50051, cfg.GRPCPort)
	s.Equal(24*time.Hour, cfg.DraftTTL)
	s.Equal(15*time.Minute, cfg.DiceSessionTTL)
	s.Equal(config.StoreSQLite, cfg.CharacterStore)
	s.Equal(config.CatalogStatic, cfg.CatalogSource)
	s.Empty(cfg.OTLPEndpoint)
	s.Equal(slog.LevelInfo, cfg.SlogLevel())
}

func (s *ConfigTestSuite) TestLoadFromEnvironment() {
	s.T().Setenv("GRPC_PORT", "6000")
	s.T().Setenv("CHARACTER_STORE", "redis")
	s.T().Setenv("DRAFT_TTL", "1h")
	s.T().Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := config.Load()
	s.Require().NoError(err)

	s.Equal(6000, cfg.GRPCPort)
	s.Equal(config.StoreRedis, cfg.CharacterStore)
	s.Equal(time.Hour, cfg.DraftTTL)
	s.Equal(slog.LevelDebug, cfg.SlogLevel())
}

func (s *ConfigTestSuite) TestLoadRejectsBadValues() {
	s.T().Setenv("CHARACTER_STORE", "postgres")
	s.T().Setenv("GRPC_PORT", "0")

	_, err := config.Load()
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	fields := make([]string, 0)
	for _, v := range errors.FieldViolations(err) {
		fields = append(fields, v.Field)
	}
	s.ElementsMatch([]string{"GRPC_PORT", "CHARACTER_STORE"}, fields)
}

func (s *ConfigTestSuite) TestLoadRejectsUnparsableDuration() {
	s.T().Setenv("DICE_SESSION_TTL", "soon")

	_, err := config.Load()
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}
