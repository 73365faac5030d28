package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestContextHook_Run(t *testing.T) {
	tests := []struct {
		name     string
		setupCtx func() context.Context
		want     string
	}{
		{
			name: "request id present",
			setupCtx: func() context.Context {
				return WithRequestID(context.Background(), "req-123")
			},
			want: "req-123",
		},
		{
			name:     "no context values",
			setupCtx: context.Background,
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := zerolog.New(&buf).Hook(ContextHook{})

			logger.Info().Ctx(tt.setupCtx()).Msg("test")

			var entry map[string]any
			if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
				t.Fatalf("failed to parse log: %v", err)
			}

			got, _ := entry["request_id"].(string)
			if got != tt.want {
				t.Errorf("request_id = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGetRequestIDMissing(t *testing.T) {
	if got := GetRequestID(context.Background()); got != "" {
		t.Errorf("GetRequestID on empty context = %q, want empty", got)
	}
}
