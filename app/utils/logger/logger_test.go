package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		wantErr bool
	}{
		{name: "debug", level: "debug"},
		{name: "info", level: "info"},
		{name: "warn", level: "warn"},
		{name: "warning alias", level: "warning"},
		{name: "error", level: "error"},
		{name: "empty defaults to info", level: ""},
		{name: "uppercase accepted", level: "INFO"},
		{name: "unknown level rejected", level: "verbose", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.level)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, logger)
		})
	}
}

func TestNewWithWriter_EmitsServiceField(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWithWriter("info", &buf)
	require.NoError(t, err)

	logger.Info("hello", "key", "value")

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "auth-gateway", record["service"])
	assert.Equal(t, "value", record["key"])
}

func TestNewWithWriter_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWithWriter("error", &buf)
	require.NoError(t, err)

	logger.Info("should not appear")
	assert.Zero(t, buf.Len())

	logger.Error("should appear")
	assert.NotZero(t, buf.Len())
}
