package config_test

import (
	"os"
	"testing"

	"roomio/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	_, hasPort := os.LookupEnv("PORT")
	_, hasServerPort := os.LookupEnv("SERVER_PORT")

	if !hasPort && !hasServerPort {
		assert.Equal(t, "3000", cfg.Server.Port)
	}

	assert.Equal(t, config.DriverMemory, cfg.DB.Driver)
	assert.Equal(t, 60, cfg.Cache.TTL)
	assert.False(t, cfg.App.Booking.AllowUnknownRoom)
}

func TestLoad_Port(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{
			name: "plain PORT",
			env:  map[string]string{"PORT": "8080"},
			want: "8080",
		},
		{
			name: "prefixed SERVER_PORT wins",
			env:  map[string]string{"PORT": "8080", "SERVER_PORT": "9090"},
			want: "9090",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			cfg, err := config.Load()
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Server.Port)
		})
	}
}

func TestLoad_BareVariablesStayScoped(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("ENABLE", "true")
	t.Setenv("HOST", "example.internal")
	t.Setenv("USER", "shell-user")
	t.Setenv("PASSWORD", "leaked")
	t.Setenv("NAME", "leaked")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)

	assert.Equal(t, "6379", cfg.Cache.Redis.Primary.Port)
	assert.Equal(t, "localhost", cfg.Cache.Redis.Primary.Host)
	assert.Empty(t, cfg.Cache.Redis.Primary.Password)

	for _, db := range []struct {
		port, host, username, password, name string
	}{
		{cfg.DB.Postgres.Read.Port, cfg.DB.Postgres.Read.Host, cfg.DB.Postgres.Read.Username, cfg.DB.Postgres.Read.Password, cfg.DB.Postgres.Read.Name},
		{cfg.DB.Postgres.Write.Port, cfg.DB.Postgres.Write.Host, cfg.DB.Postgres.Write.Username, cfg.DB.Postgres.Write.Password, cfg.DB.Postgres.Write.Name},
	} {
		assert.Equal(t, "5432", db.port)
		assert.Empty(t, db.host)
		assert.Empty(t, db.username)
		assert.Empty(t, db.password)
		assert.Empty(t, db.name)
	}

	assert.False(t, cfg.Cache.Enable)
	assert.False(t, cfg.Kafka.Enable)
	assert.False(t, cfg.App.CORS.Enable)
	assert.False(t, cfg.App.RateLimiter.Enable)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "roomio", cfg.App.Name)
}

func TestLoad_PrefixedVariables(t *testing.T) {
	t.Setenv("SERVER_LOG_LEVEL", "debug")
	t.Setenv("SERVER_SHUTDOWN_GRACE_PERIOD_SECONDS", "1")
	t.Setenv("APP_BOOKING_ALLOW_UNKNOWN_ROOM", "true")
	t.Setenv("APP_RATE_LIMITER_MAX_REQUESTS", "7")
	t.Setenv("CACHE_REDIS_PRIMARY_PORT", "6380")
	t.Setenv("DB_POSTGRES_WRITE_USERNAME", "roomio")
	t.Setenv("DB_POSTGRES_WRITE_SSL_MODE", "require")
	t.Setenv("KAFKA_ENABLE", "true")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, int64(1), cfg.Server.Shutdown.GracePeriodSeconds)
	assert.True(t, cfg.App.Booking.AllowUnknownRoom)
	assert.Equal(t, 7, cfg.App.RateLimiter.MaxRequests)
	assert.Equal(t, "6380", cfg.Cache.Redis.Primary.Port)
	assert.Equal(t, "roomio", cfg.DB.Postgres.Write.Username)
	assert.Equal(t, "require", cfg.DB.Postgres.Write.SSLMode)
	assert.True(t, cfg.Kafka.Enable)
}

func TestLoad_UnsupportedDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")

	_, err := config.Load()
	assert.Error(t, err)
}
