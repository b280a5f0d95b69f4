package otel

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"foodorder/pkg/logger"
)

func TestAddSpanWithoutTracer(t *testing.T) {
	ctx, span := AddSpan(context.Background(), "noop")
	defer span.End()
	if GetTraceID(ctx) != "" {
		t.Fatalf("expected no trace id, got %q", GetTraceID(ctx))
	}
}

func TestAddSpanWithTracer(t *testing.T) {
	tp := sdktrace.NewTracerProvider()
	defer tp.Shutdown(context.Background())

	ctx := InjectTracing(context.Background(), tp.Tracer("test"))
	ctx, span := AddSpan(ctx, "handler", attribute.String("session", "s1"))
	defer span.End()

	id := GetTraceID(ctx)
	if len(id) != 32 {
		t.Fatalf("expected 32 hex chars, got %q", id)
	}
}

func TestInitTracingDisabled(t *testing.T) {
	tp, shutdown, err := InitTracing(logger.NewNop(), Config{ServiceName: "foodorder"})
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	if tp == nil {
		t.Fatal("expected a tracer provider")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}
