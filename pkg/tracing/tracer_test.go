package tracing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitTracerDisabledInstallsNoop(t *testing.T) {
	tp, err := InitTracer(Config{ServiceName: "shopfront-test"})
	require.NoError(t, err)

	_, span := tp.Tracer("test").Start(context.Background(), "op")
	defer span.End()
	assert.False(t, span.SpanContext().IsValid())

	assert.NoError(t, Shutdown(context.Background(), tp))
}
