package logger_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/southgenetics/inventario/pkg/logger"
)

func TestNew_NivelPorDefectoEsInfo(t *testing.T) {
	l := logger.New(logger.Config{Env: "production", Level: "no-es-un-nivel"})
	require.NotNil(t, l)
	assert.Equal(t, zerolog.InfoLevel, l.Zerolog().GetLevel())
}

func TestNew_RespetaNivelConfigurado(t *testing.T) {
	cases := map[string]zerolog.Level{
		"debug": zerolog.DebugLevel,
		"info":  zerolog.InfoLevel,
		"warn":  zerolog.WarnLevel,
		"error": zerolog.ErrorLevel,
	}
	for level, want := range cases {
		l := logger.New(logger.Config{Env: "production", Level: level})
		assert.Equal(t, want, l.Zerolog().GetLevel(), "nivel %s", level)
	}
}

func TestWith_CreaSubloggerConCampos(t *testing.T) {
	l := logger.New(logger.Config{Env: "production", Level: "info"})
	sub := l.With().Str("component", "ledger").Logger()

	assert.Equal(t, zerolog.InfoLevel, sub.GetLevel())
}
