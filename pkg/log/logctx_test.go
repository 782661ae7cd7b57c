package log

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInto_From_RoundTrip(t *testing.T) {
	t.Parallel()

	base := slog.New(slog.NewTextHandler(os.Stdout, nil))
	ctx := Into(context.Background(), base)

	got := From(ctx)
	require.Same(t, base, got)
}

func TestFrom_EmptyContext_ReturnsDefault(t *testing.T) {
	t.Parallel()

	got := From(context.Background())
	require.NotNil(t, got)
	require.Same(t, slog.Default(), got)
}

func TestFrom_NilLoggerInContext_ReturnsDefault(t *testing.T) {
	t.Parallel()

	var l *slog.Logger
	ctx := Into(context.Background(), l)

	got := From(ctx)
	require.NotNil(t, got)
	require.Same(t, slog.Default(), got)
}
