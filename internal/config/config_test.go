package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/emrgen/wikt/internal/entry"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "wikt.db", cfg.Database.DSN)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, "lz4", cfg.Cache.Compression)
	assert.Equal(t, time.Hour, cfg.Cache.TTL)
	assert.Equal(t, entry.DefaultReserve(), cfg.Reserve)
	assert.Equal(t, "@every 10m", cfg.Jobs.DriftCheck)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("WIKT_DATABASE_DRIVER", "postgres")
	t.Setenv("WIKT_DATABASE_DSN", "host=localhost user=wikt")
	t.Setenv("WIKT_REDIS_ENABLED", "true")
	t.Setenv("WIKT_RESERVE_TRANSLATION", "100")
	t.Setenv("WIKT_CACHE_TTL", "5m")

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "host=localhost user=wikt", cfg.Database.DSN)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 100, cfg.Reserve.Translation)
	assert.Equal(t, 42, cfg.Reserve.Definition)
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
}

func TestLoad_NegativeReserve(t *testing.T) {
	t.Setenv("WIKT_RESERVE_DEFINITION", "-5")

	_, err := Load(viper.New())
	assert.ErrorIs(t, err, entry.ErrNegativeReserve)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wikt.yml")
	content := `
database:
  driver: sqlite
  dsn: /var/lib/wikt/enwikt.db
cache:
  compression: brotli
reserve:
  definition: 7
log:
  level: debug
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	v := viper.New()
	v.SetConfigFile(path)
	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/wikt/enwikt.db", cfg.Database.DSN)
	assert.Equal(t, "brotli", cfg.Cache.Compression)
	assert.Equal(t, 7, cfg.Reserve.Definition)
	assert.Equal(t, 512, cfg.Reserve.SemanticRelation)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestOpenDb(t *testing.T) {
	cfg, err := Load(viper.New())
	require.NoError(t, err)

	cfg.Database.Driver = "mysql"
	_, err = OpenDb(cfg)
	assert.ErrorIs(t, err, ErrUnknownDriver)

	cfg.Database.Driver = "sqlite"
	cfg.Database.DSN = filepath.Join(t.TempDir(), "wikt.db")
	db, err := OpenDb(cfg)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.NoError(t, sqlDB.Ping())
	assert.NoError(t, sqlDB.Close())
}
