package tracing

import (
	"github.com/gin-gonic/gin"

	"github.com/ip-solutions-lab/nexus-repository-api/internal/shared/id"
)

// HTTPMiddleware creates Gin middleware for HTTP tracing
func HTTPMiddleware(tracer *Tracer) gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := TraceID(sanitizeInbound(c.GetHeader(TraceHeader), id.RequestPrefix))
		parentID := SpanID(sanitizeInbound(c.GetHeader(SpanHeader), id.SpanPrefix))

		ctx := WithTrace(c.Request.Context(), traceID, parentID)

		name := c.FullPath()
		if name == "" {
			name = c.Request.URL.Path
		}
		span, ctx := tracer.StartSpan(ctx, c.Request.Method+" "+name)
		span.SetTag("http.method", c.Request.Method)
		span.SetTag("http.url", c.Request.URL.String())
		span.SetTag("http.host", c.Request.Host)

		c.Request = c.Request.WithContext(ctx)
		c.Set(string(traceIDKey), string(span.TraceID))

		c.Header(TraceHeader, string(span.TraceID))
		c.Header(SpanHeader, string(span.SpanID))

		c.Next()

		span.SetStatus(c.Writer.Status())
		if len(c.Errors) > 0 {
			span.SetError(c.Errors.Last())
		}

		span.Finish()
		tracer.Submit(span)
	}
}

// TraceIDFromGin returns the trace id assigned to the request, if any
func TraceIDFromGin(c *gin.Context) string {
	return c.GetString(string(traceIDKey))
}
