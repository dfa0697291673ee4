package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/epc-inventory-api/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Upload.MaxSizeMB)
	assert.Equal(t, 10*1024*1024, cfg.Upload.MaxBytes())
	assert.Equal(t, "epc", cfg.Upload.EPCColumn)
	assert.Equal(t, "epcNumber", cfg.Upload.ProductEPCColumn)
	assert.Equal(t, 10, cfg.Pagination.DefaultLimit)
	assert.Equal(t, 100, cfg.Pagination.MaxLimit)
	assert.Equal(t, "desc", cfg.Pagination.DefaultSort)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("UPLOAD_CHARSET", "Latin1")
	t.Setenv("UPLOAD_MAX_SIZE_MB", "2")
	t.Setenv("PAGE_MAX_LIMIT", "50")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "latin1", cfg.Upload.Charset)
	assert.Equal(t, 2, cfg.Upload.MaxSizeMB)
	assert.Equal(t, 50, cfg.Pagination.MaxLimit)
	assert.Equal(t, "0.0.0.0:9090", cfg.HTTP.Addr())
}

func TestLoad_RejectsUnknownCharset(t *testing.T) {
	t.Setenv("UPLOAD_CHARSET", "ebcdic")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_DSNEscapesPassword(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss/word", DBName: "inv", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%2Fword@db:5432/inv?sslmode=disable", c.DSN())
	assert.Equal(t, c.DSN(), c.ConnectionString())
}

func TestLoad_PoolDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, int32(25), cfg.DB.Pool.MaxConns)
	assert.Equal(t, int32(2), cfg.DB.Pool.MinConns)
	assert.Equal(t, time.Hour, cfg.DB.Pool.MaxConnLifetime)
	assert.Equal(t, time.Minute, cfg.DB.Pool.HealthCheckPeriod)
	assert.True(t, cfg.DB.ForceIPv4)
}

func TestLoad_PoolFromEnv(t *testing.T) {
	t.Setenv("DB_POOL_MAX_CONNS", "5")
	t.Setenv("DB_POOL_MIN_CONNS", "0")
	t.Setenv("DB_POOL_HEALTH_CHECK_PERIOD", "30s")
	t.Setenv("DB_CONNECT_TIMEOUT", "4")
	t.Setenv("DB_FORCE_IPV4", "false")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, int32(5), cfg.DB.Pool.MaxConns)
	assert.Equal(t, int32(0), cfg.DB.Pool.MinConns)
	assert.Equal(t, 30*time.Second, cfg.DB.Pool.HealthCheckPeriod)
	assert.Equal(t, 4*time.Second, cfg.DB.Pool.ConnectTimeout)
	assert.False(t, cfg.DB.ForceIPv4)
}

func TestLoad_RejectsInvalidPool(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"mínimo mayor que máximo", "DB_POOL_MIN_CONNS", "40"},
		{"máximo en cero", "DB_POOL_MAX_CONNS", "0"},
		{"duración ilegible", "DB_POOL_MAX_CONN_LIFETIME", "una hora"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := config.Load()
			assert.Error(t, err)
		})
	}
}
