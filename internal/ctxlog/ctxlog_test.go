package ctxlog_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/katalvlaran/netcore/internal/ctxlog"
	"github.com/stretchr/testify/assert"
)

func TestFromContext(t *testing.T) {
	l := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := ctxlog.WithLogger(context.Background(), l)
	assert.Same(t, l, ctxlog.FromContext(ctx))
	assert.Same(t, slog.Default(), ctxlog.FromContext(context.Background()))
}
