package config

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(vars map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestLoadEnv_Settings(t *testing.T) {
	t.Run("Valores padrão", func(t *testing.T) {
		var s Settings
		require.NoError(t, LoadEnv(&s, envMap(nil)))

		assert.Empty(t, s.LogLevel)
		assert.Empty(t, s.LogFormat)
		assert.Equal(t, "text", s.OutputFormat)
		assert.Empty(t, s.ConfigFile)
		assert.Nil(t, s.Hidden)
	})

	t.Run("Valores do ambiente", func(t *testing.T) {
		var s Settings
		err := LoadEnv(&s, envMap(map[string]string{
			"CATTABLE_CONFIG_FILE": "configs/page.yaml",
			"CATTABLE_LOG_LEVEL":   "debug",
			"CATTABLE_HIDDEN":      "age, name,,",
		}))
		require.NoError(t, err)

		assert.Equal(t, "configs/page.yaml", s.ConfigFile)
		assert.Equal(t, "debug", s.LogLevel)
		assert.Equal(t, []string{"age", "name"}, s.Hidden)
	})
}

func TestLoadEnv_Tipos(t *testing.T) {
	type inner struct {
		Ratio float64 `env:"RATIO"`
	}
	type cfg struct {
		Port    int  `env:"PORT" envDefault:"8080"`
		Debug   bool `env:"DEBUG"`
		Inner   inner
		Ptr     *inner
		private string `env:"PRIVATE"`
	}

	var c cfg
	err := LoadEnv(&c, envMap(map[string]string{"DEBUG": "TRUE", "RATIO": "0.5"}))
	require.NoError(t, err)

	assert.Equal(t, 8080, c.Port)
	assert.True(t, c.Debug)
	assert.Equal(t, 0.5, c.Inner.Ratio)
	require.NotNil(t, c.Ptr)
	assert.Equal(t, 0.5, c.Ptr.Ratio)
	assert.Empty(t, c.private)
}

func TestLoadEnv_Erros(t *testing.T) {
	t.Run("Destino inválido", func(t *testing.T) {
		var s Settings
		err := LoadEnv(s, nil)

		var invalid *InvalidSettingsError
		assert.True(t, errors.As(err, &invalid))
		assert.Error(t, LoadEnv(nil, nil))
	})

	t.Run("Conversão inválida", func(t *testing.T) {
		var c struct {
			Port int `env:"PORT"`
		}
		err := LoadEnv(&c, envMap(map[string]string{"PORT": "abc"}))

		var fieldErr *FieldError
		require.True(t, errors.As(err, &fieldErr))
		assert.Equal(t, "Port", fieldErr.FieldName)

		var numErr *strconv.NumError
		assert.True(t, errors.As(err, &numErr))
	})

	t.Run("Tipo não suportado", func(t *testing.T) {
		var c struct {
			Ports []int `env:"PORTS"`
		}
		err := LoadEnv(&c, envMap(map[string]string{"PORTS": "1,2"}))

		var unsupported *UnsupportedTypeError
		assert.True(t, errors.As(err, &unsupported))
	})
}

func TestInterpolate(t *testing.T) {
	cfg := Default()
	cfg.Page.Title = "Gatos de ${env.OWNER}"
	cfg.Page.Hidden = []string{"${env.HIDE}"}
	cfg.Labels = map[string]string{"age": "${env.AGE_LABEL}", "name": "Name"}

	Interpolate(cfg, envMap(map[string]string{"OWNER": "Ana", "HIDE": "age", "AGE_LABEL": "Idade"}))

	assert.Equal(t, "Gatos de Ana", cfg.Page.Title)
	assert.Equal(t, []string{"age"}, cfg.Page.Hidden)
	assert.Equal(t, "Idade", cfg.Labels["age"])
	assert.Equal(t, "Invite ${row.name} | Delete", cfg.Page.Columns[2].Render, "interpolação CEL deve ser preservada")

	assert.NotPanics(t, func() { Interpolate(nil, nil) })
}
