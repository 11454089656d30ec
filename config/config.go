package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Slider   SliderConfig   `mapstructure:"slider"`
	Seed     SeedConfig     `mapstructure:"seed"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

// SliderConfig describes the slide-to-confirm track geometry and spring-back timing.
type SliderConfig struct {
	MaxTravel      float64       `mapstructure:"max_travel"`    // track width minus knob width
	ConfirmRatio   float64       `mapstructure:"confirm_ratio"` // fraction of MaxTravel that confirms on release
	SpringDuration time.Duration `mapstructure:"spring_duration"`
}

// Cutoff returns the offset at or past which a release confirms.
func (s SliderConfig) Cutoff() float64 {
	return s.MaxTravel * s.ConfirmRatio
}

// Validate rejects geometry the controller cannot work with.
func (s SliderConfig) Validate() error {
	if s.MaxTravel <= 0 {
		return fmt.Errorf("slider.max_travel must be positive, got %v", s.MaxTravel)
	}
	if s.ConfirmRatio <= 0 || s.ConfirmRatio > 1 {
		return fmt.Errorf("slider.confirm_ratio must be in (0, 1], got %v", s.ConfirmRatio)
	}
	if s.SpringDuration < 0 {
		return fmt.Errorf("slider.spring_duration must not be negative, got %v", s.SpringDuration)
	}
	return nil
}

// Seed sources.
const (
	SeedSourceBuiltin  = "builtin"
	SeedSourceFile     = "file"
	SeedSourcePostgres = "postgres"
)

type SeedConfig struct {
	Source string `mapstructure:"source"` // builtin, file, postgres
	File   string `mapstructure:"file"`
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: LRW_ (Loyalty ReWards).
// Nested keys use underscore: LRW_SLIDER_MAX_TRAVEL, LRW_JWT_SECRET, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("slider.max_travel", 220.0)
	v.SetDefault("slider.confirm_ratio", 0.9)
	v.SetDefault("slider.spring_duration", "300ms")
	v.SetDefault("seed.source", SeedSourceBuiltin)
	v.SetDefault("seed.file", "")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "loyalty")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 4)
	v.SetDefault("database.min_conns", 1)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "24h")
	v.SetDefault("jwt.issuer", "loyalty-rewards")
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: LRW_SLIDER_MAX_TRAVEL -> slider.max_travel
	v.SetEnvPrefix("LRW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Slider.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
