package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "JWT_SECRET=from-file\nDB_DRIVER=memory\nPORT=9090\nCORS_ALLOWED_ORIGINS=http://a.test, http://b.test\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "from-file", config.JWT.Secret)
	assert.Equal(t, DriverMemory, config.Database.Driver)
	assert.Equal(t, "9090", config.App.Port)
	assert.Equal(t, 24, config.JWT.ExpiryHours)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, config.CORS.AllowedOrigins)
}

func TestLoadConfig_MissingFileUsesEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("DB_DRIVER", "POSTGRES")

	config, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "from-env", config.JWT.Secret)
	assert.Equal(t, DriverPostgres, config.Database.Driver)
	assert.Equal(t, "5000", config.App.Port)
	assert.Equal(t, []string{"*"}, config.CORS.AllowedOrigins)
}

func TestConfig_Validate(t *testing.T) {
	base := Config{
		Database: DatabaseConfig{Driver: DriverMongo},
		JWT:      JWTConfig{Secret: "s", ExpiryHours: 1},
	}
	require.NoError(t, base.Validate())

	noSecret := base
	noSecret.JWT.Secret = ""
	assert.Error(t, noSecret.Validate())

	badDriver := base
	badDriver.Database.Driver = "redis"
	assert.Error(t, badDriver.Validate())
}
