package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Storage backends.
const (
	StorageMySQL  = "mysql"
	StorageMemory = "memory"
)

// Config holds all configuration for the birthday service.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Storage  string         `yaml:"storage"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port           int           `yaml:"port"`
	RequestLogging bool          `yaml:"request_logging"`
	ReadTimeout    time.Duration `yaml:"read_timeout"`
	WriteTimeout   time.Duration `yaml:"write_timeout"`
}

// DatabaseConfig holds MySQL connection settings. Host includes the port.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	Migrate  bool   `yaml:"migrate"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when neither a file nor the
// environment say otherwise.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Port:           8080,
			RequestLogging: true,
			ReadTimeout:    15 * time.Second,
			WriteTimeout:   15 * time.Second,
		},
		Database: DatabaseConfig{
			Host: "localhost:3306",
			Name: "birthdays",
		},
		Storage: StorageMySQL,
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load builds the configuration from the defaults, the optional YAML file at
// path and finally the environment. An empty path skips the file.
//
// Usage example:
// > PORT=8080 DBHOST=localhost:3306 DBUSER=dirk DBPWD=bullo92 GIN_LOGGING=off go run main.go
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config file: %w", err)
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyEnv overrides settings with the environment variables that are set.
func applyEnv(cfg *Config) error {
	if port, ok := os.LookupEnv("PORT"); ok {
		p, err := strconv.Atoi(port)
		if err != nil {
			return fmt.Errorf("could not parse PORT env variable: %w", err)
		}
		cfg.Server.Port = p
	}
	if logging, ok := os.LookupEnv("GIN_LOGGING"); ok {
		cfg.Server.RequestLogging = !strings.EqualFold(logging, "off")
	}
	setString(&cfg.Database.Host, "DBHOST")
	setString(&cfg.Database.User, "DBUSER")
	setString(&cfg.Database.Password, "DBPWD")
	setString(&cfg.Database.Name, "DBNAME")
	setString(&cfg.Storage, "STORAGE")
	setString(&cfg.Log.Level, "LOG_LEVEL")
	setString(&cfg.Log.Format, "LOG_FORMAT")
	return nil
}

func setString(target *string, key string) {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		*target = value
	}
}

// Validate checks that the settings can be used to start the service.
func (c Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	switch c.Storage {
	case StorageMySQL, StorageMemory:
	default:
		return fmt.Errorf("invalid storage %q, expected %s or %s", c.Storage, StorageMySQL, StorageMemory)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("invalid log format %q", c.Log.Format)
	}
	return nil
}

// Addr returns the listen address of the HTTP server.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}
