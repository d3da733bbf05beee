package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Empleados-api/pkg/logger"
)

func TestNew_JSONFueraDeDevelopment(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "info", Output: &buf})

	log.Info().Str("key", "employees_data").Msg("guardado")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "info", line["level"])
	assert.Equal(t, "employees_data", line["key"])
	assert.Equal(t, "guardado", line["message"])
}

func TestNew_NivelFiltra(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "WARN", Output: &buf})

	log.Info().Msg("no debe salir")
	assert.Empty(t, buf.String())

	log.Warn().Msg("sí")
	assert.Contains(t, buf.String(), `"level":"warn"`)
}

func TestNew_NivelDesconocidoEsInfo(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "verbose", Output: &buf})

	log.Debug().Msg("oculto")
	log.Info().Msg("visible")
	assert.NotContains(t, buf.String(), "oculto")
	assert.Contains(t, buf.String(), "visible")
}

func TestComponent(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Output: &buf})

	c := log.Component("storage")
	c.Error().Msg("fallo")
	assert.Contains(t, buf.String(), `"component":"storage"`)
}

func TestNew_ConsolaEnDevelopment(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "development", Output: &buf})

	log.Info().Msg("hola")
	assert.Contains(t, buf.String(), "hola")
	assert.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())), "la consola no es JSON")
}
