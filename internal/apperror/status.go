package apperror

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Localizer renders a message ID for the caller's languages.
type Localizer interface {
	Localize(messageID string, params map[string]interface{}, fallback string, langs ...string) string
}

func (k Kind) Code() codes.Code {
	switch k {
	case KindInvalidArgument:
		return codes.InvalidArgument
	case KindInvalidOperation:
		return codes.FailedPrecondition
	case KindNotFound:
		return codes.NotFound
	case KindConflict:
		return codes.AlreadyExists
	default:
		return codes.Internal
	}
}

// ToStatus converts err into a gRPC status with a localised message. Errors that
// are not *Error become codes.Internal without leaking their text.
func ToStatus(err error, tr Localizer, langs ...string) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	if errors.Is(err, context.Canceled) {
		return status.Error(codes.Canceled, err.Error())
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return status.Error(codes.DeadlineExceeded, err.Error())
	}

	var e *Error
	if !errors.As(err, &e) {
		msg := "internal error"
		if tr != nil {
			msg = tr.Localize("internal", nil, msg, langs...)
		}
		return status.Error(codes.Internal, msg)
	}

	msg := err.Error()
	if tr != nil {
		msg = tr.Localize(e.MessageID, e.Params, msg, langs...)
	}
	return status.Error(e.Kind.Code(), msg)
}
