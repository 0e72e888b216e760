package database

import (
	"testing"

	"movie-review/pkg/utils"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDSN(t *testing.T) {
	tests := []struct {
		name     string
		config   utils.DatabaseConfig
		user     string
		password string
		host     string
	}{
		{
			name:     "empty password",
			config:   utils.DatabaseConfig{Host: "localhost", Port: "5432", Name: "movieReviewDB", User: "postgres"},
			user:     "postgres",
			password: "",
			host:     "localhost",
		},
		{
			name:     "password with reserved characters",
			config:   utils.DatabaseConfig{Host: "localhost", Port: "5432", Name: "movieReviewDB", User: "reviewer", Password: "p@ss word/:?#"},
			user:     "reviewer",
			password: "p@ss word/:?#",
			host:     "localhost",
		},
		{
			name:     "ipv6 host",
			config:   utils.DatabaseConfig{Host: "::1", Port: "5432", Name: "movieReviewDB", User: "postgres", Password: "secret"},
			user:     "postgres",
			password: "secret",
			host:     "::1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := pgxpool.ParseConfig(buildDSN(tt.config))
			require.NoError(t, err)

			assert.Equal(t, tt.user, cfg.ConnConfig.User)
			assert.Equal(t, tt.password, cfg.ConnConfig.Password)
			assert.Equal(t, "movieReviewDB", cfg.ConnConfig.Database)
			assert.Equal(t, tt.host, cfg.ConnConfig.Host)
			assert.Equal(t, uint16(5432), cfg.ConnConfig.Port)
		})
	}
}
