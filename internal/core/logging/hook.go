package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// ContextHook extracts the request ID from context and adds it to log
// events, so every log line of an external service call is traceable.
type ContextHook struct{}

// Run adds contextual fields to the zerolog event.
func (h ContextHook) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	ctx := e.GetCtx()
	if ctx == context.Background() || ctx == nil {
		return
	}

	if requestID := GetRequestID(ctx); requestID != "" {
		e.Str("request_id", requestID)
	}
}
