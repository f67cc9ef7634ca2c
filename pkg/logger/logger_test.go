package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Facturation-api/pkg/logger"
)

func TestNewWithWriter_JSONConCampos(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewWithWriter(logger.Config{Env: "production", Level: "info", App: "facturation-api"}, &buf)

	l.Component("billing").Info().Str("number", "FAC-2025-001").Msg("factura creada")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "facturation-api", entry["app"])
	assert.Equal(t, "billing", entry["component"])
	assert.Equal(t, "FAC-2025-001", entry["number"])
	assert.Equal(t, "info", entry["level"])
}

func TestNewWithWriter_NivelFiltra(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewWithWriter(logger.Config{Env: "production", Level: "WARN"}, &buf)

	l.Info().Msg("no debe salir")
	assert.Zero(t, buf.Len())

	l.Warn().Msg("sí")
	assert.NotZero(t, buf.Len())
}
