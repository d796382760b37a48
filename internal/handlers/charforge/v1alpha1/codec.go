package v1alpha1

import (
	"context"
	"encoding/json"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/charforge/internal/errors"
)

// Decode reads a Struct message into out through its JSON form
func Decode(in *structpb.Struct, out any) error {
	if in == nil {
		in = &structpb.Struct{}
	}
	data, err := protojson.Marshal(in)
	if err != nil {
		return errors.Wrap(err, "failed to read message")
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errors.InvalidArgumentf("malformed message: %v", err)
	}
	return nil
}

// Encode turns v into a Struct message through its JSON form
func Encode(v any) (*structpb.Struct, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode message")
	}
	out := &structpb.Struct{}
	if err := protojson.Unmarshal(data, out); err != nil {
		return nil, errors.Wrap(err, "failed to encode message")
	}
	return out, nil
}

// serve decodes the request, runs fn and encodes its response. Errors leave
// as gRPC statuses.
func serve[Req, Resp any](
	ctx context.Context,
	in *structpb.Struct,
	fn func(context.Context, *Req) (*Resp, error),
) (*structpb.Struct, error) {
	req := new(Req)
	if err := Decode(in, req); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp, err := fn(ctx, req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := Encode(resp)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return out, nil
}
