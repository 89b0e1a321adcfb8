package tracing

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		exporter string
		enabled  bool
		wantErr  bool
	}{
		{"", false, false},
		{"none", false, false},
		{"stdout", true, false},
		{"OTLP", true, false},
		{"grpc", true, false},
		{"http", true, false},
		{"otlphttp", true, false},
		{"zipkin", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.exporter, func(t *testing.T) {
			cfg := Config{Exporter: tt.exporter}
			assert.Equal(t, tt.enabled, cfg.Enabled())
			if tt.wantErr {
				assert.Error(t, cfg.Validate())
			} else {
				assert.NoError(t, cfg.Validate())
			}
		})
	}
}

func TestSetup_Disabled(t *testing.T) {
	tp, shutdown, err := Setup(context.Background(), Config{}, "hordectl", "test", nil)

	require.NoError(t, err)
	_, span := tp.Tracer("test").Start(context.Background(), "noop")
	span.End()
	assert.False(t, span.SpanContext().IsValid())
	assert.NoError(t, shutdown(context.Background()))
}

func TestSetup_Stdout(t *testing.T) {
	var buf bytes.Buffer
	tp, shutdown, err := Setup(context.Background(), Config{Exporter: ExporterStdout}, "hordectl", "1.2.3", &buf)
	require.NoError(t, err)

	_, span := tp.Tracer("test").Start(context.Background(), "aihorde.Heartbeat")
	span.End()
	require.NoError(t, shutdown(context.Background()))

	assert.Contains(t, buf.String(), "aihorde.Heartbeat")
	assert.Contains(t, buf.String(), "hordectl")
}

// TestSetup_OTLP verifies exporter construction. Nothing is exported, so no
// collector is needed.
func TestSetup_OTLP(t *testing.T) {
	for _, exporter := range []string{ExporterOTLPGRPC, ExporterOTLPHTTP} {
		t.Run(exporter, func(t *testing.T) {
			cfg := Config{
				Exporter: exporter,
				Insecure: true,
				Headers:  map[string]string{"x-team": "horde"},
			}

			_, shutdown, err := Setup(context.Background(), cfg, "hordectl", "test", nil)

			require.NoError(t, err)
			assert.NoError(t, shutdown(context.Background()))
		})
	}
}

func TestSetup_Unknown(t *testing.T) {
	_, _, err := Setup(context.Background(), Config{Exporter: "zipkin"}, "hordectl", "test", nil)

	assert.Error(t, err)
}
