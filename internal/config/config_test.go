package config

import (
	"testing"

	"drugdash/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"DATA_FILE", "STORE_DRIVER", "DATABASE_URL", "PORT", "BCRYPT_COST", "SESSION_COOKIE", "PROFILING_ENABLED", "PROFILING_PORT"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultDataFile, cfg.Data.File)
	assert.Equal(t, "sqlite3", cfg.Store.Driver)
	assert.Equal(t, DefaultStoreURL, cfg.Store.URL)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "drugdash_session", cfg.Auth.SessionCookie)
	assert.False(t, cfg.Profiling.Enabled)
	assert.Equal(t, "6060", cfg.Profiling.Port)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DATA_FILE", "other.csv")
	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "postgres://localhost/drugs")
	t.Setenv("BCRYPT_COST", "4")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "other.csv", cfg.Data.File)
	assert.Equal(t, "postgres", cfg.Store.Driver)
	assert.Equal(t, 4, cfg.Auth.BcryptCost)
	assert.Equal(t, "3s", cfg.Server.ShutdownTimeout.String())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "unknown driver", key: "STORE_DRIVER", val: "mysql"},
		{name: "bcrypt cost too high", key: "BCRYPT_COST", val: "99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := Load()
			require.Error(t, err)
			assert.True(t, errors.HasCode(err, errors.CodeConfigInvalid))
		})
	}
}
