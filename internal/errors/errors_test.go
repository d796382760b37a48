package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/charforge/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestErrorString() {
	err := errors.NotFound("draft not found")
	s.Equal("NOT_FOUND: draft not found", err.Error())

	wrapped := errors.Wrap(fmt.Errorf("connection refused"), "failed to load draft")
	s.Equal("INTERNAL: failed to load draft: connection refused", wrapped.Error())
}

func (s *ErrorsTestSuite) TestWrapPreservesCodeAndMeta() {
	base := errors.NotFound("draft not found").WithMeta("draft_id", "draft_1")

	wrapped := errors.Wrap(base, "failed to get draft")

	s.Equal(errors.CodeNotFound, wrapped.Code)
	s.Equal("draft_1", wrapped.Meta["draft_id"])
	s.True(errors.IsNotFound(wrapped))
	s.ErrorIs(wrapped, errors.NotFound("anything"))

	wrapped.WithMeta("extra", true)
	s.NotContains(base.Meta, "extra")
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Nil(errors.Wrap(nil, "nothing"))
	s.Nil(errors.WrapWithCode(nil, errors.CodeInternal, "nothing"))
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	wrapped := errors.WrapWithCode(errors.NotFound("missing"), errors.CodeFailedPrecondition, "draft not ready")
	s.True(errors.IsFailedPrecondition(wrapped))
}

func (s *ErrorsTestSuite) TestGetters() {
	s.Equal(errors.CodeOK, errors.GetCode(nil))
	s.Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("plain")))
	s.Equal("plain", errors.GetMessage(fmt.Errorf("plain")))
	s.Equal("bad", errors.GetMessage(errors.InvalidArgument("bad")))
	s.Nil(errors.GetMeta(fmt.Errorf("plain")))
}

func (s *ErrorsTestSuite) TestToGRPCError() {
	testCases := []struct {
		name     string
		err      error
		wantCode codes.Code
	}{
		{name: "not found", err: errors.NotFound("missing"), wantCode: codes.NotFound},
		{name: "invalid argument", err: errors.InvalidArgument("bad"), wantCode: codes.InvalidArgument},
		{name: "failed precondition", err: errors.FailedPrecondition("not ready"), wantCode: codes.FailedPrecondition},
		{name: "plain error", err: fmt.Errorf("boom"), wantCode: codes.Internal},
		{name: "status passthrough", err: status.Error(codes.Unavailable, "down"), wantCode: codes.Unavailable},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			st, ok := status.FromError(errors.ToGRPCError(tc.err))
			s.Require().True(ok)
			s.Equal(tc.wantCode, st.Code())
		})
	}

	s.Nil(errors.ToGRPCError(nil))
}

func (s *ErrorsTestSuite) TestGRPCRoundTripKeepsFieldViolations() {
	err := errors.NewValidationBuilder().
		RequiredField("name").
		Field("skills", "too many skills selected").
		Build()

	back := errors.FromGRPCError(errors.ToGRPCError(err))

	s.True(errors.IsInvalidArgument(back))
	s.Equal([]errors.FieldViolation{
		{Field: "name", Description: "is required"},
		{Field: "skills", Description: "too many skills selected"},
	}, errors.FieldViolations(back))
}

func (s *ErrorsTestSuite) TestFromGRPCErrorPlain() {
	plain := fmt.Errorf("not a status")
	s.Equal(plain, errors.FromGRPCError(plain))
	s.True(errors.IsNotFound(errors.FromGRPCError(status.Error(codes.NotFound, "gone"))))
}
