package postgres

import (
	"testing"
	"time"

	"loyalty-rewards/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDBConfig() config.DatabaseConfig {
	return config.DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "testuser",
		Password: "testpass",
		DBName:   "loyalty",
		SSLMode:  "disable",
	}
}

func TestPoolConfig_AppliesLimits(t *testing.T) {
	cfg := testDBConfig()
	cfg.MaxConns = 8
	cfg.MinConns = 2
	cfg.ConnMaxLifetime = 10 * time.Minute

	pc, err := poolConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, int32(8), pc.MaxConns)
	assert.Equal(t, int32(2), pc.MinConns)
	assert.Equal(t, 10*time.Minute, pc.MaxConnLifetime)
	assert.Equal(t, "loyalty", pc.ConnConfig.Database)
	assert.Equal(t, uint16(5432), pc.ConnConfig.Port)
}

func TestPoolConfig_MinAboveMaxIgnored(t *testing.T) {
	cfg := testDBConfig()
	cfg.MaxConns = 2
	cfg.MinConns = 5

	pc, err := poolConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, int32(2), pc.MaxConns)
	assert.LessOrEqual(t, pc.MinConns, pc.MaxConns)
}

func TestPoolConfig_BadDSN(t *testing.T) {
	cfg := testDBConfig()
	cfg.Port = -1
	cfg.SSLMode = "bogus"

	_, err := poolConfig(cfg)
	assert.Error(t, err)
}
