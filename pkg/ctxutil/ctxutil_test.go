package ctxutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithRequestID_And_RequestIDFromCtx(t *testing.T) {
	t.Parallel()

	ctx := WithRequestID(context.Background(), "req-123")

	assert.Equal(t, "req-123", RequestIDFromCtx(ctx))
}

func TestRequestIDFromCtx_EmptyContext(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", RequestIDFromCtx(context.Background()))
}

func TestRequestIDFromCtx_WrongType(t *testing.T) {
	t.Parallel()

	ctx := context.WithValue(context.Background(), ctxKey("request_id"), 42)

	assert.Equal(t, "", RequestIDFromCtx(ctx))
}
