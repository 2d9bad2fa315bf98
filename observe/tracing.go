// SPDX-License-Identifier: MIT

package observe

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TracerName is the instrumentation scope of every span this module starts.
const TracerName = "pathsearch"

// StartSpan opens a "pathsearch.<algorithm>" span on the global tracer
// provider, tagged with the algorithm and the start vertex.
func StartSpan(ctx context.Context, algorithm string, start any, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	attrs = append([]attribute.KeyValue{
		attribute.String("search.algorithm", algorithm),
		attribute.String("search.start", fmt.Sprint(start)),
	}, attrs...)

	return otel.Tracer(TracerName).Start(ctx, "pathsearch."+algorithm, trace.WithAttributes(attrs...))
}

// EndSpan records s on span and ends it.
func EndSpan(span trace.Span, s Search) {
	span.SetAttributes(
		attribute.String("search.outcome", Outcome(s.Err)),
		attribute.Int64("search.lookups", s.Lookups),
		attribute.Int("search.results", len(s.Lengths)),
	)
	if s.Err != nil {
		span.RecordError(s.Err)
		span.SetStatus(codes.Error, Outcome(s.Err))
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
