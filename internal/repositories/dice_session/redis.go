package dicesession

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/charforge/internal/errors"
	"github.com/KirkDiggler/charforge/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/charforge/internal/redis"
)

const (
	// Key pattern: dice_session:{entity_id}:{context}
	sessionKeyPrefix = "dice_session:"
	defaultTTL       = 15 * time.Minute

	// Error messages
	errSessionNil     = "session cannot be nil"
	errEntityIDEmpty  = "entity ID cannot be empty"
	errContextEmpty   = "context cannot be empty"
	errSessionExpired = "session has already expired"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
	// TTL is the default session lifetime (defaults to 15m)
	TTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("client")
	}
	if c.Clock == nil {
		vb.RequiredField("clock")
	}
	if c.TTL < 0 {
		vb.InvalidField("ttl", "must not be negative")
	}
	if c.TTL == 0 {
		c.TTL = defaultTTL
	}
	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	ttl    time.Duration
}

// NewRedisRepository creates a new Redis repository for dice sessions
func NewRedisRepository(cfg *Config) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
		ttl:    cfg.TTL,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

func validateKey(entityID, sessionContext string) error {
	if entityID == "" {
		return errors.InvalidArgument(errEntityIDEmpty)
	}
	if sessionContext == "" {
		return errors.InvalidArgument(errContextEmpty)
	}
	return nil
}

// Create stores a new dice session with the specified TTL
func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateKey(input.EntityID, input.Context); err != nil {
		return nil, err
	}

	now := r.clock.Now()
	ttl := input.TTL
	if ttl <= 0 {
		ttl = r.ttl
	}

	session := &DiceSession{
		EntityID:  input.EntityID,
		Context:   input.Context,
		Rolls:     input.Rolls,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}

	sessionJSON, err := json.Marshal(session)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal session")
	}

	key := buildKey(input.EntityID, input.Context)
	if err := r.client.Set(ctx, key, sessionJSON, ttl).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store session in Redis")
	}

	return &CreateOutput{Session: session}, nil
}

// Get retrieves a dice session by entity ID and context
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if err := validateKey(input.EntityID, input.Context); err != nil {
		return nil, err
	}

	key := buildKey(input.EntityID, input.Context)

	sessionJSON, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("dice session %s not found", key)
		}
		return nil, errors.Wrapf(err, "failed to get session from Redis")
	}

	var session DiceSession
	if err := json.Unmarshal([]byte(sessionJSON), &session); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal session")
	}

	// The stored expiry wins over the key TTL when the clock is ahead
	if r.clock.Now().After(session.ExpiresAt) {
		_ = r.client.Del(ctx, key)
		return nil, errors.NotFound("dice session has expired")
	}

	return &GetOutput{Session: &session}, nil
}

// Delete removes a dice session
func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if err := validateKey(input.EntityID, input.Context); err != nil {
		return nil, err
	}

	key := buildKey(input.EntityID, input.Context)

	var rollsDeleted int
	getOutput, err := r.Get(ctx, GetInput(input))
	switch {
	case err == nil:
		rollsDeleted = len(getOutput.Session.Rolls)
	case errors.IsNotFound(err):
	default:
		return nil, err
	}

	if err := r.client.Del(ctx, key).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to delete session from Redis")
	}

	return &DeleteOutput{RollsDeleted: rollsDeleted}, nil
}

// Update replaces an existing dice session
func (r *redisRepository) Update(ctx context.Context, session *DiceSession) error {
	if session == nil {
		return errors.InvalidArgument(errSessionNil)
	}
	if err := validateKey(session.EntityID, session.Context); err != nil {
		return err
	}

	now := r.clock.Now()
	if !now.Before(session.ExpiresAt) {
		return errors.FailedPrecondition(errSessionExpired)
	}
	remainingTTL := session.ExpiresAt.Sub(now)

	sessionJSON, err := json.Marshal(session)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal session")
	}

	key := buildKey(session.EntityID, session.Context)
	if err := r.client.Set(ctx, key, sessionJSON, remainingTTL).Err(); err != nil {
		return errors.Wrapf(err, "failed to update session in Redis")
	}

	return nil
}

func buildKey(entityID, sessionContext string) string {
	return fmt.Sprintf("%s%s:%s", sessionKeyPrefix, entityID, sessionContext)
}
