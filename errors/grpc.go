package errors

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// MapToGRPCError translates core errors into gRPC status codes at the
// transport edge. The core itself never depends on gRPC types.
func MapToGRPCError(err error) error {
	if err == nil {
		return nil
	}

	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return status.Error(codes.InvalidArgument, validationErr.Error())
	}

	switch {
	case errors.Is(err, ErrRecipientNotFound),
		errors.Is(err, ErrLetterNotFound),
		errors.Is(err, ErrParticipantNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, ErrUnauthorizedTransition):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, ErrSelfAddressed), errors.Is(err, ErrUnknownRole):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, ErrParticipantExists):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, ErrStoreUnavailable):
		return status.Error(codes.Unavailable, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
