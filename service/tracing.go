package service

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// tracer instruments the two actions expensive enough to be worth a
// span: building a graph from a file (Create) and dispatching a kernel
// (Compute). Relabel and List stay untraced; Relabel reports its duration
// in its relabel_millis field.
var tracer = otel.Tracer("github.com/katalvlaran/csrgraph/service")

func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return tracer.Start(ctx, name)
}
