/*
Package tracing provides lightweight request tracing.

# Overview

Every HTTP request gets a span. The trace id is taken from the X-Trace-ID
request header when the client sends a sane one, otherwise a new ULID-based
id is generated. Both ids are echoed back in the response headers and the
finished span is logged through zap by a background collector.

# Usage

	tracer := tracing.New("nexus-api", logger)
	defer tracer.Close()

	router.Use(tracing.HTTPMiddleware(tracer))

	span, ctx := tracer.StartSpan(ctx, "operation")
	defer func() {
		span.Finish()
		tracer.Submit(span)
	}()

# Trace Format

  - X-Trace-ID: Unique identifier for entire request flow
  - X-Span-ID: Identifier for current operation

Spans are buffered (1000) and dropped with a warning when the buffer is full.
*/
package tracing
