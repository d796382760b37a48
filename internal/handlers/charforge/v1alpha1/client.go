package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/charforge/internal/errors"
)

// Client calls the charforge services over a gRPC connection
type Client struct {
	conn grpc.ClientConnInterface
}

// NewClient wraps conn
func NewClient(conn grpc.ClientConnInterface) *Client {
	return &Client{conn: conn}
}

// Call invokes service/method with req and decodes the reply into resp.
// Status errors come back as *errors.Error.
func (c *Client) Call(ctx context.Context, service, method string, req, resp any) error {
	in, err := Encode(req)
	if err != nil {
		return err
	}

	out := &structpb.Struct{}
	if err := c.conn.Invoke(ctx, "/"+service+"/"+method, in, out); err != nil {
		return errors.FromGRPCError(err)
	}

	if resp == nil {
		return nil
	}
	return Decode(out, resp)
}

// Character calls a CharacterCreation method
func (c *Client) Character(ctx context.Context, method string, req, resp any) error {
	return c.Call(ctx, CharacterCreationServiceName, method, req, resp)
}

// Dice calls a DiceService method
func (c *Client) Dice(ctx context.Context, method string, req, resp any) error {
	return c.Call(ctx, DiceServiceName, method, req, resp)
}
