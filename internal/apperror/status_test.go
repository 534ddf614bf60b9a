package apperror

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type upperLocalizer struct{}

func (upperLocalizer) Localize(id string, _ map[string]interface{}, fallback string, langs ...string) string {
	if len(langs) > 0 && langs[0] == "fr" {
		return "fr:" + id
	}
	return fallback
}

func TestToStatusCodes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want codes.Code
	}{
		{"invalid argument", InvalidArgument("x", nil, "bad"), codes.InvalidArgument},
		{"invalid operation", InvalidOperation("x", nil, "no"), codes.FailedPrecondition},
		{"not found", NotFound("x", nil, "gone"), codes.NotFound},
		{"conflict", Conflict("x", nil, "dup"), codes.AlreadyExists},
		{"wrapped", fmt.Errorf("entry 1: %w", NotFound("x", nil, "gone")), codes.NotFound},
		{"plain", errors.New("boom"), codes.Internal},
		{"canceled", context.Canceled, codes.Canceled},
		{"status passthrough", status.Error(codes.Unauthenticated, "who"), codes.Unauthenticated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, status.Code(ToStatus(tt.err, nil)))
		})
	}
	assert.NoError(t, ToStatus(nil, nil))
}

func TestToStatusMessages(t *testing.T) {
	err := NotFound("node.not_found", nil, "node n1 not found")

	st, _ := status.FromError(ToStatus(err, upperLocalizer{}, "fr"))
	assert.Equal(t, "fr:node.not_found", st.Message())

	st, _ = status.FromError(ToStatus(err, upperLocalizer{}, "en"))
	assert.Equal(t, "node n1 not found", st.Message())

	st, _ = status.FromError(ToStatus(errors.New("pq: secret detail"), nil))
	assert.Equal(t, "internal error", st.Message())
}
