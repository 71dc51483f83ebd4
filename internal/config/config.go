package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/alexanderramin/learnpath/internal/domain"
	"github.com/alexanderramin/learnpath/internal/quiz"
)

const (
	EnvConfig        = "LEARNPATH_CONFIG"
	EnvDB            = "LEARNPATH_DB"
	EnvQuizTimeLimit = "LEARNPATH_QUIZ_TIME_LIMIT"
	EnvLogUseCases   = "LEARNPATH_LOG_USE_CASES"
)

// Config holds the resolved application settings.
type Config struct {
	DBPath            string
	QuizTimeLimit     int // seconds
	DefaultDifficulty domain.Difficulty
	LogUseCases       bool
}

// FileConfig represents the TOML configuration file. Pointer fields
// distinguish "unset" from zero values.
type FileConfig struct {
	DBPath *string       `toml:"db_path"`
	Quiz   QuizConfig    `toml:"quiz"`
	Plan   PlanConfig    `toml:"plan"`
	Log    LogFileConfig `toml:"log"`
}

type QuizConfig struct {
	TimeLimit *int `toml:"time_limit"`
}

type PlanConfig struct {
	DefaultDifficulty *string `toml:"default_difficulty"`
}

type LogFileConfig struct {
	UseCases *bool `toml:"use_cases"`
}

// DefaultConfig returns the settings used when nothing overrides them.
func DefaultConfig() Config {
	return Config{
		DBPath:            DefaultDBPath(),
		QuizTimeLimit:     quiz.DefaultTimeLimit,
		DefaultDifficulty: domain.DifficultyBeginner,
	}
}

// Load resolves configuration: defaults, then the TOML file at
// $LEARNPATH_CONFIG (or the XDG default), then environment variables.
func Load() (Config, error) {
	cfg := DefaultConfig()

	path := os.Getenv(EnvConfig)
	if path == "" {
		path = DefaultConfigPath()
	}
	fc, err := LoadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.apply(fc); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	cfg.applyEnv()
	return cfg, nil
}

// LoadFile reads a TOML config from path. A missing file is not an error.
func LoadFile(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var fc FileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return fc, nil
}

func (c *Config) apply(fc FileConfig) error {
	if fc.DBPath != nil && *fc.DBPath != "" {
		c.DBPath = *fc.DBPath
	}
	if fc.Quiz.TimeLimit != nil {
		if *fc.Quiz.TimeLimit <= 0 {
			return fmt.Errorf("quiz.time_limit must be positive, got %d", *fc.Quiz.TimeLimit)
		}
		c.QuizTimeLimit = *fc.Quiz.TimeLimit
	}
	if fc.Plan.DefaultDifficulty != nil {
		d := domain.Difficulty(*fc.Plan.DefaultDifficulty)
		if !d.Valid() {
			return fmt.Errorf("plan.default_difficulty: unknown difficulty %q", d)
		}
		c.DefaultDifficulty = d
	}
	if fc.Log.UseCases != nil {
		c.LogUseCases = *fc.Log.UseCases
	}
	return nil
}

// applyEnv overrides settings from the environment. Unparseable values are
// ignored.
func (c *Config) applyEnv() {
	if v := os.Getenv(EnvDB); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv(EnvQuizTimeLimit); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.QuizTimeLimit = n
		}
	}
	if v := os.Getenv(EnvLogUseCases); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.LogUseCases = b
		}
	}
}
