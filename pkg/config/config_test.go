package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_ValoresPorDefecto(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "validador-ec", cfg.App.Name)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, 512*1024, cfg.HTTP.BodyLimit())
	assert.False(t, cfg.JWT.Enabled())
	assert.Equal(t, 500, cfg.SRI.BatchLimit)
	assert.Equal(t, "./docs/swagger.json", cfg.SRI.SwaggerPath)
}

func TestFromViper_VariablesDeEntorno(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("JWT_SECRET", "secreto")
	t.Setenv("SRI_BATCH_LIMIT", "25")

	v := viper.New()
	v.AutomaticEnv()
	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.True(t, cfg.JWT.Enabled())
	assert.Equal(t, 25, cfg.SRI.BatchLimit)
}

func TestFromViper_EnteroInvalidoUsaDefecto(t *testing.T) {
	v := viper.New()
	v.Set("HTTP_PORT", "no-es-numero")
	cfg, err := fromViper(v)
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.HTTP.Port)
}

func TestFromViper_RechazaValoresFueraDeRango(t *testing.T) {
	v := viper.New()
	v.Set("SRI_BATCH_LIMIT", 0)
	_, err := fromViper(v)
	assert.Error(t, err)

	v = viper.New()
	v.Set("HTTP_PORT", 70000)
	_, err = fromViper(v)
	assert.Error(t, err)
}
