package config_test

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/marketplace-admin-api/pkg/config"
)

func TestFromViper_Defaults(t *testing.T) {
	v := viper.New()
	v.Set("JWT_SECRET", "s3cret")

	cfg, err := config.FromViper(v)
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, config.StorageMongo, cfg.Storage.Driver)
	assert.Equal(t, "marketplace_admin", cfg.Mongo.Database)
	assert.Equal(t, 10*time.Second, cfg.Mongo.Timeout)
	assert.Equal(t, 60, cfg.JWT.Expiration)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Empty(t, cfg.Auth.OpenRoutes)
	assert.Equal(t, 10, cfg.RateLimit.LoginMax)
	assert.Equal(t, time.Minute, cfg.RateLimit.LoginWindow)
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("JWT_SECRET", "s3cret")
	v.Set("STORAGE_DRIVER", "MEMORY")
	v.Set("HTTP_PORT", "9090")
	v.Set("AUTH_OPEN_ROUTES", " Stats, orders ,,")
	v.Set("LOGIN_RATE_WINDOW_SECONDS", 30)

	cfg, err := config.FromViper(v)
	require.NoError(t, err)

	assert.Equal(t, config.StorageMemory, cfg.Storage.Driver)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, []string{"stats", "orders"}, cfg.Auth.OpenRoutes)
	assert.True(t, cfg.Auth.IsOpen("orders"))
	assert.True(t, cfg.Auth.IsOpen("STATS"))
	assert.False(t, cfg.Auth.IsOpen("users"))
	assert.Equal(t, 30*time.Second, cfg.RateLimit.LoginWindow)
}

func TestFromViper_SinSecret_Falla(t *testing.T) {
	_, err := config.FromViper(viper.New())
	assert.Error(t, err)
}

func TestFromViper_DriverInvalido_Falla(t *testing.T) {
	v := viper.New()
	v.Set("JWT_SECRET", "s3cret")
	v.Set("STORAGE_DRIVER", "postgres")

	_, err := config.FromViper(v)
	assert.Error(t, err)
}
