package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// EnvPrefix prefixes every environment override, e.g. KRISHA_DATABASE_URL.
const EnvPrefix = "KRISHA"

// Duration accepts "5s" style values from YAML and the environment.
type Duration time.Duration

func (d Duration) Std() time.Duration { return time.Duration(d) }

func (d *Duration) Decode(value string) error {
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

func (d *Duration) UnmarshalYAML(unmarshal func(any) error) error {
	var raw string
	if err := unmarshal(&raw); err != nil {
		return err
	}
	return d.Decode(raw)
}

type ServerConfig struct {
	Address      string   `yaml:"address" envconfig:"ADDRESS"`
	ReadTimeout  Duration `yaml:"read_timeout" envconfig:"READ_TIMEOUT"`
	WriteTimeout Duration `yaml:"write_timeout" envconfig:"WRITE_TIMEOUT"`
	IdleTimeout  Duration `yaml:"idle_timeout" envconfig:"IDLE_TIMEOUT"`
}

type DatabaseConfig struct {
	Driver          string   `yaml:"driver" envconfig:"DRIVER"`
	URL             string   `yaml:"url" envconfig:"URL"`
	MaxOpenConns    int      `yaml:"max_open_conns" envconfig:"MAX_OPEN_CONNS"`
	MaxIdleConns    int      `yaml:"max_idle_conns" envconfig:"MAX_IDLE_CONNS"`
	ConnMaxLifetime Duration `yaml:"conn_max_lifetime" envconfig:"CONN_MAX_LIFETIME"`
}

type S3Config struct {
	Bucket    string `yaml:"bucket" envconfig:"BUCKET"`
	Region    string `yaml:"region" envconfig:"REGION"`
	Endpoint  string `yaml:"endpoint" envconfig:"ENDPOINT"`
	Prefix    string `yaml:"prefix" envconfig:"PREFIX"`
	AccessKey string `yaml:"access_key" envconfig:"ACCESS_KEY"`
	SecretKey string `yaml:"secret_key" envconfig:"SECRET_KEY"`
}

type PhotosConfig struct {
	Dir         string   `yaml:"dir" envconfig:"DIR"`
	Backend     string   `yaml:"backend" envconfig:"BACKEND"`
	MaxUploadMB int64    `yaml:"max_upload_mb" envconfig:"MAX_UPLOAD_MB"`
	S3          S3Config `yaml:"s3" envconfig:"S3"`
}

// MaxUploadBytes is the request body limit for photo uploads.
func (p PhotosConfig) MaxUploadBytes() int64 {
	return p.MaxUploadMB << 20
}

type RedisConfig struct {
	Addr     string `yaml:"addr" envconfig:"ADDR"`
	Password string `yaml:"password" envconfig:"PASSWORD"`
	DB       int    `yaml:"db" envconfig:"DB"`
	Channel  string `yaml:"channel" envconfig:"CHANNEL"`
}

func (r RedisConfig) Enabled() bool { return r.Addr != "" }

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins" envconfig:"ALLOWED_ORIGINS"`
}

type LogConfig struct {
	Level  string `yaml:"level" envconfig:"LEVEL"`
	Format string `yaml:"format" envconfig:"FORMAT"`
}

type Config struct {
	Server   ServerConfig   `yaml:"server" envconfig:"SERVER"`
	Database DatabaseConfig `yaml:"database" envconfig:"DATABASE"`
	Photos   PhotosConfig   `yaml:"photos" envconfig:"PHOTOS"`
	Redis    RedisConfig    `yaml:"redis" envconfig:"REDIS"`
	CORS     CORSConfig     `yaml:"cors" envconfig:"CORS"`
	Log      LogConfig      `yaml:"log" envconfig:"LOG"`
}

func Default() Config {
	return Config{
		Server: ServerConfig{
			Address:      ":5000",
			ReadTimeout:  Duration(5 * time.Second),
			WriteTimeout: Duration(10 * time.Second),
			IdleTimeout:  Duration(time.Minute),
		},
		Database: DatabaseConfig{
			Driver:          "pgx",
			MaxOpenConns:    25,
			MaxIdleConns:    25,
			ConnMaxLifetime: Duration(5 * time.Minute),
		},
		Photos: PhotosConfig{
			Dir:         "static/photos",
			Backend:     "local",
			MaxUploadMB: 32,
		},
		Redis: RedisConfig{Channel: "krisha:messages"},
		CORS:  CORSConfig{AllowedOrigins: []string{"*"}},
		Log:   LogConfig{Level: "info", Format: "json"},
	}
}

// Load builds the configuration from defaults, then the optional YAML file at
// path, then KRISHA_* environment variables.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("unmarshal config file: %w", err)
		}
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Database.URL) == "" {
		errs = append(errs, errors.New("database.url is required"))
	}
	switch c.Database.Driver {
	case "pgx", "mysql":
	default:
		errs = append(errs, fmt.Errorf("unsupported database.driver %q", c.Database.Driver))
	}
	switch c.Photos.Backend {
	case "local":
		if c.Photos.Dir == "" {
			errs = append(errs, errors.New("photos.dir is required for the local backend"))
		}
	case "s3":
		if c.Photos.S3.Bucket == "" {
			errs = append(errs, errors.New("photos.s3.bucket is required for the s3 backend"))
		}
	default:
		errs = append(errs, fmt.Errorf("unsupported photos.backend %q", c.Photos.Backend))
	}
	if c.Photos.MaxUploadMB <= 0 {
		errs = append(errs, errors.New("photos.max_upload_mb must be positive"))
	}
	return errors.Join(errs...)
}
