// Package config loads the HCL configuration for the anythink service.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/spf13/afero"

	"github.com/Wilcolab/Anythink-Market-1po63owv/pkg/database"
	"github.com/Wilcolab/Anythink-Market-1po63owv/pkg/events"
)

const (
	DefaultAddr         = "127.0.0.1:3000"
	DefaultSQLitePath   = "anythink.db"
	DefaultKafkaTopic   = "anythink.comments"
	DefaultDatadogName  = "anythink"
	DefaultLogLevel     = "info"
	defaultPostgresPort = 5432

	KafkaBrokersEnvVar = "ANYTHINK_KAFKA_BROKERS"
	KafkaTopicEnvVar   = "ANYTHINK_KAFKA_TOPIC"
)

// Config is the top-level service configuration.
type Config struct {
	LogLevel string `hcl:"log_level,optional"`

	Server   *Server   `hcl:"server,block"`
	Database *Database `hcl:"database,block"`
	Kafka    *Kafka    `hcl:"kafka,block"`
	Datadog  *Datadog  `hcl:"datadog,block"`
}

// Server configures the HTTP listener.
type Server struct {
	Addr string `hcl:"addr,optional"`
}

// Database configures comment storage.
type Database struct {
	Driver   string `hcl:"driver,optional"`
	Path     string `hcl:"path,optional"`
	Host     string `hcl:"host,optional"`
	Port     int    `hcl:"port,optional"`
	User     string `hcl:"user,optional"`
	Password string `hcl:"password,optional"`
	DBName   string `hcl:"dbname,optional"`
	SSLMode  string `hcl:"sslmode,optional"`
}

// Kafka configures the comment event publisher. Events are only published
// when this block is present.
type Kafka struct {
	Brokers []string `hcl:"brokers,optional"`
	Topic   string   `hcl:"topic,optional"`
}

// Datadog configures APM tracing.
type Datadog struct {
	Enabled bool   `hcl:"enabled,optional"`
	Service string `hcl:"service,optional"`
	Env     string `hcl:"env,optional"`
}

// NewDefault returns a configuration with every default applied.
func NewDefault() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load reads and decodes the HCL file at path from fs, fills in defaults and
// validates the result.
func Load(fs afero.Fs, path string) (*Config, error) {
	var cfg Config
	if path != "" {
		src, err := afero.ReadFile(fs, path)
		if err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}

		// hclsimple picks the syntax from the file extension.
		if err := hclsimple.Decode(filepath.Base(path), src, nil, &cfg); err != nil {
			return nil, fmt.Errorf("error decoding config file %s: %w", path, err)
		}
	}

	applyEnv(&cfg)
	applyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyEnv overrides Kafka settings from the environment. Setting
// ANYTHINK_KAFKA_BROKERS enables publishing even without a kafka block.
func applyEnv(cfg *Config) {
	if brokers := os.Getenv(KafkaBrokersEnvVar); brokers != "" {
		if cfg.Kafka == nil {
			cfg.Kafka = &Kafka{}
		}
		cfg.Kafka.Brokers = nil
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.Kafka.Brokers = append(cfg.Kafka.Brokers, b)
			}
		}
	}

	if topic := os.Getenv(KafkaTopicEnvVar); topic != "" && cfg.Kafka != nil {
		cfg.Kafka.Topic = topic
	}
}

func applyDefaults(cfg *Config) {
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}

	if cfg.Server == nil {
		cfg.Server = &Server{}
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = DefaultAddr
	}

	if cfg.Database == nil {
		cfg.Database = &Database{}
	}
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = database.DriverSQLite
	}
	switch cfg.Database.Driver {
	case database.DriverSQLite:
		if cfg.Database.Path == "" {
			cfg.Database.Path = DefaultSQLitePath
		}
	case database.DriverPostgres:
		if cfg.Database.Port == 0 {
			cfg.Database.Port = defaultPostgresPort
		}
		if cfg.Database.SSLMode == "" {
			cfg.Database.SSLMode = "disable"
		}
	}

	if cfg.Kafka != nil && cfg.Kafka.Topic == "" {
		cfg.Kafka.Topic = DefaultKafkaTopic
	}

	if cfg.Datadog == nil {
		cfg.Datadog = &Datadog{}
	}
	if cfg.Datadog.Service == "" {
		cfg.Datadog.Service = DefaultDatadogName
	}
}

// Validate checks every block and returns all problems found.
func (cfg *Config) Validate() error {
	var result *multierror.Error

	if hclog.LevelFromString(cfg.LogLevel) == hclog.NoLevel {
		result = multierror.Append(result,
			fmt.Errorf("log_level: invalid value %q", cfg.LogLevel))
	}

	if cfg.Server != nil {
		if err := validation.ValidateStruct(cfg.Server,
			validation.Field(&cfg.Server.Addr, validation.Required),
		); err != nil {
			result = multierror.Append(result, fmt.Errorf("server: %w", err))
		}
	}

	if d := cfg.Database; d != nil {
		isSQLite := d.Driver == database.DriverSQLite
		isPostgres := d.Driver == database.DriverPostgres
		if err := validation.ValidateStruct(d,
			validation.Field(&d.Driver,
				validation.Required,
				validation.In(database.DriverPostgres, database.DriverSQLite),
			),
			validation.Field(&d.Path, validation.When(isSQLite, validation.Required)),
			validation.Field(&d.Host, validation.When(isPostgres, validation.Required)),
			validation.Field(&d.DBName, validation.When(isPostgres, validation.Required)),
			validation.Field(&d.Port, validation.When(isPostgres, validation.Min(1), validation.Max(65535))),
		); err != nil {
			result = multierror.Append(result, fmt.Errorf("database: %w", err))
		}
	}

	if k := cfg.Kafka; k != nil {
		if err := validation.ValidateStruct(k,
			validation.Field(&k.Brokers, validation.Required, validation.Each(validation.Required)),
			validation.Field(&k.Topic, validation.Required),
		); err != nil {
			result = multierror.Append(result, fmt.Errorf("kafka: %w", err))
		}
	}

	return result.ErrorOrNil()
}

// DatabaseConfig returns the connection settings for pkg/database.
func (cfg *Config) DatabaseConfig() database.Config {
	d := cfg.Database
	if d == nil {
		return database.Config{Driver: database.DriverSQLite, Path: DefaultSQLitePath}
	}
	return database.Config{
		Driver:   d.Driver,
		Path:     d.Path,
		Host:     d.Host,
		Port:     d.Port,
		User:     d.User,
		Password: d.Password,
		DBName:   d.DBName,
		SSLMode:  d.SSLMode,
	}
}

// KafkaConfig returns the publisher settings and whether publishing is
// enabled.
func (cfg *Config) KafkaConfig() (events.KafkaConfig, bool) {
	if cfg.Kafka == nil {
		return events.KafkaConfig{}, false
	}
	return events.KafkaConfig{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.Topic,
	}, true
}
