package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/emrgen/wikt/internal/entry"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	configFileName = "wikt"
	envPrefix      = "WIKT"
)

var ErrUnknownDriver = errors.New("unknown database driver")

// Config of the wikt tool, read from wikt.yml and WIKT_* environment variables.
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Reserve  entry.Reserve  `mapstructure:"reserve"`
	Jobs     JobsConfig     `mapstructure:"jobs"`
	Log      LogConfig      `mapstructure:"log"`
}

type DatabaseConfig struct {
	// Driver is "sqlite" or "postgres".
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type CacheConfig struct {
	// Compression of cached pages: none, gzip, lz4 or brotli.
	Compression string        `mapstructure:"compression"`
	TTL         time.Duration `mapstructure:"ttl"`
}

type JobsConfig struct {
	DriftCheck string `mapstructure:"drift_check"` // cron spec, empty disables the job
}

type LogConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"` // text or json
	File       string `mapstructure:"file"`
	MaxSize    int    `mapstructure:"max_size"` // MB
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"` // days
}

func setDefaults(v *viper.Viper) {
	reserve := entry.DefaultReserve()

	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "wikt.db")
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("cache.compression", "lz4")
	v.SetDefault("cache.ttl", time.Hour)
	v.SetDefault("reserve.definition", reserve.Definition)
	v.SetDefault("reserve.semantic_relation", reserve.SemanticRelation)
	v.SetDefault("reserve.source_language", reserve.SourceLanguage)
	v.SetDefault("reserve.translation", reserve.Translation)
	v.SetDefault("jobs.drift_check", "@every 10m")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.max_size", 100)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age", 28)
}

// Load reads the configuration from the given viper instance: defaults first,
// then the optional config file, then the environment.
func Load(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	// an explicit config file wins over the search paths
	if v.ConfigFileUsed() == "" {
		v.SetConfigName(configFileName)
		v.AddConfigPath(".")
		v.AddConfigPath("./.tmp")
	}
	v.SetConfigType("yml")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Reserve.Validate(); err != nil {
		return nil, fmt.Errorf("reserve: %w", err)
	}

	return cfg, nil
}

// LoadConfig loads .env into the environment and reads the configuration.
// It exits the process when the configuration is unreadable.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Debugf("no .env file loaded: %v", err)
	}

	cfg, err := Load(viper.GetViper())
	if err != nil {
		logrus.Fatalf("error loading config: %v", err)
	}

	return cfg
}

// OpenDb opens the configured database.
func OpenDb(cfg *Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Database.Driver {
	case "sqlite":
		dialector = sqlite.Open(cfg.Database.DSN)
	case "postgres":
		dialector = postgres.Open(cfg.Database.DSN)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Database.Driver)
	}

	level := logger.Warn
	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		level = logger.Info
	}

	return gorm.Open(dialector, &gorm.Config{
		Logger: logger.New(logrus.StandardLogger(), logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
		}),
	})
}

// GetDb opens the configured database and exits the process on failure.
func GetDb(cfg *Config) *gorm.DB {
	db, err := OpenDb(cfg)
	if err != nil {
		logrus.Fatalf("error opening database: %v", err)
	}

	return db
}
