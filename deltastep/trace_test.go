package deltastep_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/katalvlaran/deltastep/deltastep"
	"github.com/katalvlaran/deltastep/parallel"
)

func recordingTracer(t *testing.T) (*tracetest.SpanRecorder, *sdktrace.TracerProvider) {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	return sr, tp
}

func attrs(kvs []attribute.KeyValue) map[attribute.Key]attribute.Value {
	m := make(map[attribute.Key]attribute.Value, len(kvs))
	for _, kv := range kvs {
		m[kv.Key] = kv.Value
	}

	return m
}

func TestRun_Span(t *testing.T) {
	sr, tp := recordingTracer(t)

	ctx, parent := tp.Tracer("test").Start(context.Background(), "parent")
	_, err := deltastep.Run(chain(t),
		deltastep.WithDelta(1),
		deltastep.WithWorkers(2),
		deltastep.WithTracer(tp.Tracer("deltastep")),
		deltastep.WithSpanContext(ctx),
	)
	parent.End()
	require.NoError(t, err)

	ended := sr.Ended()
	require.Len(t, ended, 2)
	span := ended[0]
	assert.Equal(t, "deltastep.Run", span.Name())
	assert.Equal(t, parent.SpanContext().SpanID(), span.Parent().SpanID())
	assert.Equal(t, codes.Unset, span.Status().Code)

	a := attrs(span.Attributes())
	assert.Equal(t, int64(5), a["deltastep.nodes"].AsInt64())
	assert.Equal(t, int64(4), a["deltastep.edges"].AsInt64())
	assert.Equal(t, 1.0, a["deltastep.delta"].AsFloat64())
	assert.Equal(t, int64(5), a["deltastep.buckets"].AsInt64())
	assert.Equal(t, int64(2), a["deltastep.workers"].AsInt64())
	assert.Equal(t, int64(4), a["deltastep.outer_iterations"].AsInt64())
	assert.Equal(t, int64(5), a["deltastep.relaxations"].AsInt64())
}

func TestRun_SpanRecordsExecutorError(t *testing.T) {
	sr, tp := recordingTracer(t)

	pool := parallel.NewPool(2)
	pool.Close()

	_, err := deltastep.Run(chain(t),
		deltastep.WithDelta(1),
		deltastep.WithExecutor(pool),
		deltastep.WithTracer(tp.Tracer("deltastep")),
	)
	require.ErrorIs(t, err, parallel.ErrPoolClosed)

	ended := sr.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, codes.Error, ended[0].Status().Code)
	assert.NotEmpty(t, ended[0].Events(), "error recorded as an event")
}
