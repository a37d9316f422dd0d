package logs

import (
	"bytes"
	"log/slog"
	"testing"

	"agadev/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_RedactsSensitiveAttributes(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "agadev-backend"
	cfg.Env.Log.Level = "debug"

	var buf bytes.Buffer
	logger, err := newLogger(cfg, &buf)
	require.NoError(t, err)

	logger.Info("login attempt", slog.String("username", "admin"), slog.String("password", "hunter22"), slog.String("token", "abc.def.ghi"))

	out := buf.String()
	assert.Contains(t, out, `"username":"admin"`)
	assert.Contains(t, out, `"service":"agadev-backend"`)
	assert.NotContains(t, out, "hunter22")
	assert.NotContains(t, out, "abc.def.ghi")
	assert.Contains(t, out, redacted)
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{input: "debug", want: slog.LevelDebug},
		{input: "INFO", want: slog.LevelInfo},
		{input: "", want: slog.LevelInfo},
		{input: "warn", want: slog.LevelWarn},
		{input: "error", want: slog.LevelError},
		{input: "verbose", want: slog.LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseLogLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
