package otel_test

import (
	"context"
	"errors"
	"marketplace/infras/otel"
	"marketplace/shared/failure"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func record(t *testing.T, fn func(scope otel.Scope)) tracetest.SpanStub {
	t.Helper()

	recorder := tracetest.NewSpanRecorder()
	provider := trace.NewTracerProvider(trace.WithSpanProcessor(recorder))

	_, span := provider.Tracer("test").Start(context.Background(), "op")
	scope := otel.NewScope(span)

	fn(scope)
	scope.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)

	return tracetest.SpanStubFromReadOnlySpan(spans[0])
}

func TestScope_TraceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus codes.Code
	}{
		{name: "server error", err: errors.New("database down"), wantStatus: codes.Error},
		{name: "internal failure", err: failure.InternalError(errors.New("boom")), wantStatus: codes.Error},
		{name: "client failure", err: failure.Conflict("already accepted"), wantStatus: codes.Unset},
		{name: "nil", err: nil, wantStatus: codes.Unset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := record(t, func(scope otel.Scope) {
				scope.TraceIfError(tt.err)
			})

			assert.Equal(t, tt.wantStatus, stub.Status.Code)

			if tt.err == nil {
				assert.Empty(t, stub.Events)
			} else {
				assert.Len(t, stub.Events, 1)
			}
		})
	}
}

func TestScope_SetAttributes(t *testing.T) {
	stub := record(t, func(scope otel.Scope) {
		scope.SetAttributes(map[string]any{
			"flag":     true,
			"name":     "BK-1",
			"count":    3,
			"amount":   int64(150000),
			"ratio":    0.5,
			"timeout":  30 * time.Minute,
			"statuses": []string{"pending", "confirmed"},
		})
	})

	attrs := map[attribute.Key]attribute.Value{}
	for _, kv := range stub.Attributes {
		attrs[kv.Key] = kv.Value
	}

	assert.True(t, attrs["flag"].AsBool())
	assert.Equal(t, "BK-1", attrs["name"].AsString())
	assert.Equal(t, int64(3), attrs["count"].AsInt64())
	assert.Equal(t, int64(150000), attrs["amount"].AsInt64())
	assert.InDelta(t, 0.5, attrs["ratio"].AsFloat64(), 0.0001)
	assert.Equal(t, "30m0s", attrs["timeout"].AsString())
	assert.Equal(t, []string{"pending", "confirmed"}, attrs["statuses"].AsStringSlice())
}
