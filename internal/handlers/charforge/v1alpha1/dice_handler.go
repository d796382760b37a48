package v1alpha1

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/charforge/internal/errors"
	"github.com/KirkDiggler/charforge/internal/orchestrators/dice"
)

// DiceHandlerConfig holds dependencies for the dice handler
type DiceHandlerConfig struct {
	DiceService dice.Service
}

// Validate ensures all required dependencies are present
func (c *DiceHandlerConfig) Validate() error {
	if c.DiceService == nil {
		return errors.InvalidArgument("dice service is required")
	}
	return nil
}

// DiceHandler implements the DiceService gRPC service
type DiceHandler struct {
	diceService dice.Service
}

// NewDiceHandler creates a new dice handler with the given configuration
func NewDiceHandler(cfg *DiceHandlerConfig) (*DiceHandler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &DiceHandler{
		diceService: cfg.DiceService,
	}, nil
}

var _ DiceServer = (*DiceHandler)(nil)

// GetRollSession retrieves an existing dice roll session
func (h *DiceHandler) GetRollSession(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return serve(ctx, req, func(ctx context.Context, r *RollSessionRequest) (*RollSessionResponse, error) {
		if r.EntityID == "" {
			return nil, errors.InvalidArgument("entity_id is required")
		}

		out, err := h.diceService.GetRollSession(ctx, &dice.GetRollSessionInput{
			EntityID: r.EntityID,
			Context:  r.Context,
		})
		if err != nil {
			return nil, err
		}
		return &RollSessionResponse{Session: out.Session}, nil
	})
}

// ClearRollSession removes a dice roll session
func (h *DiceHandler) ClearRollSession(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return serve(ctx, req, func(ctx context.Context, r *RollSessionRequest) (*ClearRollSessionResponse, error) {
		if r.EntityID == "" {
			return nil, errors.InvalidArgument("entity_id is required")
		}

		out, err := h.diceService.ClearRollSession(ctx, &dice.ClearRollSessionInput{
			EntityID: r.EntityID,
			Context:  r.Context,
		})
		if err != nil {
			return nil, err
		}
		return &ClearRollSessionResponse{
			Message:      "roll session cleared",
			RollsCleared: out.RollsDeleted,
		}, nil
	})
}
