package logger_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	logpkg "github.com/AbdulAleem24/STT-Library-management-system-sub002/internal/logger"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name        string
		config      *logpkg.LoggerConfig
		expectError bool
		wantLevel   zerolog.Level
	}{
		{
			name: "valid production config",
			config: &logpkg.LoggerConfig{
				ServiceName:    "test-service",
				ServiceVersion: "1.0.0",
				Env:            "prod",
				Level:          "info",
			},
			expectError: false,
			wantLevel:   zerolog.InfoLevel,
		},
		{
			name: "dev console with caller",
			config: &logpkg.LoggerConfig{
				Env:        "dev",
				Level:      "debug",
				WithCaller: true,
				Fields:     map[string]any{"key": "value"},
			},
			expectError: false,
			wantLevel:   zerolog.DebugLevel,
		},
		{
			name:        "defaults fill an empty config",
			config:      &logpkg.LoggerConfig{},
			expectError: false,
			wantLevel:   zerolog.InfoLevel,
		},
		{
			name: "invalid env rejected",
			config: &logpkg.LoggerConfig{
				Env:   "wrong-env",
				Level: "debug",
			},
			expectError: true,
		},
		{
			name: "invalid level rejected",
			config: &logpkg.LoggerConfig{
				Env:   "prod",
				Level: "whisper",
			},
			expectError: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := logpkg.New(tc.config)
			if tc.expectError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.wantLevel, zerolog.GlobalLevel())
		})
	}
}
