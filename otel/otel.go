package otel

import (
	"context"
	"sync"

	eventbus "github.com/graphguard/graphguard/internal/eventbus"
	events "github.com/graphguard/graphguard/internal/events"
	passid "github.com/graphguard/graphguard/internal/passid"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/semconv/v1.17.0"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"
)

// Setup configures OpenTelemetry and subscribes validation events so every
// validation pass is reported as a span. If endpoint is empty, no telemetry
// is configured.
func Setup(endpoint, service string) (func(context.Context) error, error) {
	if endpoint == "" {
		return func(context.Context) error { return nil }, nil
	}
	exp, err := otlptracegrpc.New(context.Background(),
		otlptracegrpc.WithEndpoint(endpoint),
		otlptracegrpc.WithDialOption(grpc.WithInsecure()))
	if err != nil {
		return nil, err
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(service),
		)),
	)
	otel.SetTracerProvider(tp)

	eventbus.Enable()
	sub := &subscriber{tracer: otel.Tracer("graphguard")}
	sub.register()

	return tp.Shutdown, nil
}

type subscriber struct {
	tracer trace.Tracer
	spans  sync.Map // pass id -> trace.Span
}

func (s *subscriber) register() {
	eventbus.Subscribe(func(ctx context.Context, e events.ValidationStart) {
		pid, _ := passid.FromContext(ctx)
		_, span := s.tracer.Start(ctx, "validation.pass")
		span.SetAttributes(
			attribute.String("graphql.input.type", e.InputType),
		)
		s.spans.Store(pid, span)
	})

	eventbus.Subscribe(func(ctx context.Context, e events.ValidationFinish) {
		pid, _ := passid.FromContext(ctx)
		v, ok := s.spans.LoadAndDelete(pid)
		if !ok {
			return
		}
		span := v.(trace.Span)
		span.SetAttributes(
			attribute.Int("validation.field_tasks", e.FieldTasks),
			attribute.Int("validation.subtree_tasks", e.SubtreeTasks),
			attribute.Int("validation.violations", e.Violations),
		)
		span.End()
	})
}
