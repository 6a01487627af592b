package tracer

import (
	"context"
	"strings"
	"testing"

	"storyhub/pkg/core/consts"

	"github.com/openzipkin/zipkin-go/propagation/b3"
	"github.com/openzipkin/zipkin-go/reporter/recorder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func headers(m map[string]string) func(string) string {
	return func(key string) string { return m[key] }
}

func TestSimpleTracer(t *testing.T) {
	tr := NewSimpleTracer()

	ctx, traceID, finish := tr.StartTrace(context.Background(), "GET /api/tracks", headers(nil))
	defer finish()
	assert.NotEmpty(t, traceID)
	assert.Equal(t, traceID, ctx.Value(consts.TraceKey))

	_, traceID, _ = tr.StartTrace(context.Background(), "GET /api/tracks", headers(map[string]string{
		consts.TraceHeaderName: "upstream-id",
	}))
	assert.Equal(t, "upstream-id", traceID)
}

func TestZipkinTracerRecordsSpan(t *testing.T) {
	rep := recorder.NewReporter()
	tr, err := newZipkinTracer(rep, 1, "storyhub", "127.0.0.1:8080")
	require.NoError(t, err)
	defer tr.Close()

	ctx, traceID, finish := tr.StartTrace(context.Background(), "GET /stream/*", headers(nil))
	finish()

	assert.Equal(t, traceID, ctx.Value(consts.TraceKey))
	spans := rep.Flush()
	require.Len(t, spans, 1)
	assert.True(t, strings.EqualFold("storyhub.GET /stream/*", spans[0].Name), spans[0].Name)
	assert.Equal(t, traceID, spans[0].TraceID.String())
}

func TestZipkinTracerJoinsB3Parent(t *testing.T) {
	rep := recorder.NewReporter()
	tr, err := newZipkinTracer(rep, 1, "storyhub", "127.0.0.1:8080")
	require.NoError(t, err)
	defer tr.Close()

	parentTrace := "463ac35c9f6413ad48485a3953bb6124"
	_, traceID, finish := tr.StartTrace(context.Background(), "POST /api/tracks/1/like", headers(map[string]string{
		b3.TraceID: parentTrace,
		b3.SpanID:  "a2fb4a1d1a96d312",
		b3.Sampled: "1",
	}))
	finish()

	assert.Equal(t, parentTrace, traceID)
	spans := rep.Flush()
	require.Len(t, spans, 1)
	require.NotNil(t, spans[0].ParentID)
	assert.Equal(t, "a2fb4a1d1a96d312", spans[0].ParentID.String())
}
