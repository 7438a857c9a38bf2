package logger

import (
	"bytes"
	"testing"

	"github.com/raywall/cattable/pkg/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestConfigure(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	t.Run("Default Level Info", func(t *testing.T) {
		cfg := config.LoggingConf{Enabled: true}
		_ = Configure(cfg)

		assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
	})

	t.Run("Custom Level Debug", func(t *testing.T) {
		cfg := config.LoggingConf{Enabled: true, Level: "DEBUG"}
		_ = Configure(cfg)

		assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
	})

	t.Run("JSON Output", func(t *testing.T) {
		var buf bytes.Buffer
		log := ConfigureWriter(config.LoggingConf{Enabled: true, Level: "info", Format: "json"}, &buf)
		log.Info().Str("path", "age").Msg("teste")

		assert.Contains(t, buf.String(), `"path":"age"`)
		assert.Contains(t, buf.String(), `"message":"teste"`)
		assert.Contains(t, buf.String(), `"app":"cattable"`)
	})

	t.Run("Disabled Logger", func(t *testing.T) {
		var buf bytes.Buffer
		log := ConfigureWriter(config.LoggingConf{Enabled: false}, &buf)
		log.Info().Msg("teste")

		assert.Empty(t, buf.String())
	})
}
