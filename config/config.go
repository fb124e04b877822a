// Package config resolves runtime settings from defaults, an optional TOML file, a .env file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
)

// Score backends
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Defaults
const (
	DefaultConfigFile = "snake.toml"
	DefaultEnvFile    = ".env"
	DefaultScoresFile = "scores.json"
	DefaultScoresDB   = "scores.db"
	DefaultLogFile    = "logs/snake.log"
	DefaultLogLevel   = "info"
)

// Environment variables
const (
	EnvConfig       = "SNAKE_CONFIG"
	EnvScoresFile   = "SNAKE_SCORES_FILE"
	EnvScoreBackend = "SNAKE_SCORE_BACKEND"
	EnvScoresDB     = "SNAKE_SCORES_DB"
	EnvLogFile      = "SNAKE_LOG_FILE"
	EnvLogLevel     = "SNAKE_LOG_LEVEL"
	EnvLog          = "SNAKE_LOG"
)

// Config holds every runtime setting
type Config struct {
	ScoresFile   string `toml:"scores_file"`
	ScoreBackend string `toml:"score_backend"`
	ScoresDB     string `toml:"scores_db"`
	LogFile      string `toml:"log_file"`
	LogLevel     string `toml:"log_level"`
	LogEnabled   bool   `toml:"log_enabled"`
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		ScoresFile:   DefaultScoresFile,
		ScoreBackend: BackendJSON,
		ScoresDB:     DefaultScoresDB,
		LogFile:      DefaultLogFile,
		LogLevel:     DefaultLogLevel,
		LogEnabled:   true,
	}
}

// Load resolves settings from the working directory: snake.toml (or $SNAKE_CONFIG) and .env
func Load() (Config, error) {
	path := os.Getenv(EnvConfig)
	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}
	return LoadFrom(path, DefaultEnvFile, explicit)
}

// LoadFrom layers defaults, the TOML file at tomlPath, the dotenv file at envPath and the process
// environment, later layers winning. Missing files are skipped unless required is set for the TOML file.
// The process environment is never modified.
func LoadFrom(tomlPath, envPath string, required bool) (Config, error) {
	cfg := Default()

	if tomlPath != "" {
		data, err := os.ReadFile(tomlPath)
		switch {
		case err == nil:
			if err := toml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse %s: %w", tomlPath, err)
			}
		case errors.Is(err, os.ErrNotExist) && !required:
		default:
			return Config{}, fmt.Errorf("read %s: %w", tomlPath, err)
		}
	}

	dotenv := map[string]string{}
	if envPath != "" {
		vars, err := godotenv.Read(envPath)
		switch {
		case err == nil:
			dotenv = vars
		case errors.Is(err, os.ErrNotExist):
		default:
			return Config{}, fmt.Errorf("read %s: %w", envPath, err)
		}
	}

	lookup := func(key string) (string, bool) {
		if v := os.Getenv(key); v != "" {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok && v != ""
	}

	if v, ok := lookup(EnvScoresFile); ok {
		cfg.ScoresFile = v
	}
	if v, ok := lookup(EnvScoreBackend); ok {
		cfg.ScoreBackend = strings.ToLower(v)
	}
	if v, ok := lookup(EnvScoresDB); ok {
		cfg.ScoresDB = v
	}
	if v, ok := lookup(EnvLogFile); ok {
		cfg.LogFile = v
	}
	if v, ok := lookup(EnvLogLevel); ok {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v, ok := lookup(EnvLog); ok {
		cfg.LogEnabled = !strings.EqualFold(v, "off")
	}

	return cfg, nil
}

// Validate rejects settings the program cannot run with
func (c Config) Validate() error {
	switch c.ScoreBackend {
	case BackendJSON:
		if c.ScoresFile == "" {
			return errors.New("scores file is empty")
		}
	case BackendSQLite:
		if c.ScoresDB == "" {
			return errors.New("scores database is empty")
		}
	default:
		return fmt.Errorf("unknown score backend %q", c.ScoreBackend)
	}

	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	if c.LogEnabled && c.LogFile == "" {
		return errors.New("log file is empty")
	}
	return nil
}

// Level returns the parsed log level, info when unparsable
func (c Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}
