package service

import (
	"errors"
	"net/http"

	"github.com/katalvlaran/csrgraph/csrerr"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// toGRPCStatus maps a csrerr sentinel to the gRPC status spec §7 calls
// for: InvalidArgument for malformed actions, NotFound for an unknown
// graph name, AlreadyExists for a duplicate name, FailedPrecondition for
// layout violations and out-of-range node ids, ResourceExhausted for id
// overflow and allocation failure.
func toGRPCStatus(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, csrerr.ErrInvalidArgument):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, csrerr.ErrUnknownGraph):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, csrerr.ErrGraphExists):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, csrerr.ErrLayoutViolation):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, csrerr.ErrOutOfRange):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, csrerr.ErrIdOverflow), errors.Is(err, csrerr.ErrAllocFailure):
		return status.Error(codes.ResourceExhausted, err.Error())
	default:
		return status.Error(codes.Internal, "JsonError: "+err.Error())
	}
}

// toHTTPStatus mirrors toGRPCStatus for the JSON gateway.
func toHTTPStatus(err error) int {
	switch {
	case errors.Is(err, csrerr.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, csrerr.ErrUnknownGraph):
		return http.StatusNotFound
	case errors.Is(err, csrerr.ErrGraphExists):
		return http.StatusConflict
	case errors.Is(err, csrerr.ErrLayoutViolation), errors.Is(err, csrerr.ErrOutOfRange):
		return http.StatusPreconditionFailed
	case errors.Is(err, csrerr.ErrIdOverflow), errors.Is(err, csrerr.ErrAllocFailure):
		return http.StatusInsufficientStorage
	default:
		return http.StatusInternalServerError
	}
}
