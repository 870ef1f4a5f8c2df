package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// FileEnv names the environment variable holding an optional YAML config path.
const FileEnv = "KINSHIP_CONFIG"

// Config aggregates application configuration values.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Graph   GraphConfig   `yaml:"graph"`
	Stats   StatsConfig   `yaml:"stats"`
}

// GraphConfig describes connectivity to the Neo4j database used for export.
type GraphConfig struct {
	URI            string `yaml:"uri"`
	Database       string `yaml:"database"`
	Username       string `yaml:"username"`
	Password       string `yaml:"password"`
	MaxConnections int    `yaml:"max_connections"`
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level         string `yaml:"level"`
	Format        string `yaml:"format"` // text|json
	IncludeCaller bool   `yaml:"include_caller"`
}

// StatsConfig holds the defaults for the separation statistics harness.
type StatsConfig struct {
	Trials         int   `yaml:"trials"`
	Users          int   `yaml:"users"`
	AvgFriendships int   `yaml:"avg_friendships"`
	Seed           int64 `yaml:"seed"`
	Workers        int   `yaml:"workers"`
}

const (
	defaultLoggingLevel     = "info"
	defaultLoggingFormat    = "text"
	defaultGraphMaxSessions = 10
	defaultStatsTrials      = 1
	defaultStatsUsers       = 1000
	defaultStatsAvg         = 5
	defaultStatsWorkers     = 4
)

// Default returns the configuration used when neither a file nor the
// environment sets a value.
func Default() Config {
	return Config{
		Logging: LoggingConfig{
			Level:  defaultLoggingLevel,
			Format: defaultLoggingFormat,
		},
		Graph: GraphConfig{
			MaxConnections: defaultGraphMaxSessions,
		},
		Stats: StatsConfig{
			Trials:         defaultStatsTrials,
			Users:          defaultStatsUsers,
			AvgFriendships: defaultStatsAvg,
			Workers:        defaultStatsWorkers,
		},
	}
}

// Load starts from Default, overlays the YAML file named by KINSHIP_CONFIG
// when set, then applies environment variables.
func Load() (Config, error) {
	cfg := Default()

	if path := os.Getenv(FileEnv); path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	cfg.Logging.Level = valueOrDefault("LOG_LEVEL", cfg.Logging.Level)
	cfg.Logging.Format = valueOrDefault("LOG_FORMAT", cfg.Logging.Format)
	cfg.Logging.IncludeCaller = parseBoolWithDefault("LOG_INCLUDE_CALLER", cfg.Logging.IncludeCaller)

	cfg.Graph.URI = valueOrDefault("GRAPH_URI", cfg.Graph.URI)
	cfg.Graph.Database = valueOrDefault("GRAPH_DATABASE", cfg.Graph.Database)
	cfg.Graph.Username = valueOrDefault("GRAPH_USERNAME", cfg.Graph.Username)
	cfg.Graph.Password = valueOrDefault("GRAPH_PASSWORD", cfg.Graph.Password)
	cfg.Graph.MaxConnections = parseIntWithDefault("GRAPH_MAX_CONNECTIONS", cfg.Graph.MaxConnections)

	cfg.Stats.Trials = parseIntWithDefault("STATS_TRIALS", cfg.Stats.Trials)
	cfg.Stats.Users = parseIntWithDefault("STATS_USERS", cfg.Stats.Users)
	cfg.Stats.AvgFriendships = parseIntWithDefault("STATS_AVG_FRIENDSHIPS", cfg.Stats.AvgFriendships)
	cfg.Stats.Workers = parseIntWithDefault("STATS_WORKERS", cfg.Stats.Workers)

	seed, err := parseInt64("STATS_SEED", cfg.Stats.Seed)
	if err != nil {
		return Config{}, err
	}
	cfg.Stats.Seed = seed

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values no command can run with.
func (c Config) Validate() error {
	var errs []error
	if c.Stats.Trials < 1 {
		errs = append(errs, fmt.Errorf("stats trials must be at least 1, got %d", c.Stats.Trials))
	}
	if c.Stats.Users < 0 {
		errs = append(errs, fmt.Errorf("stats users must not be negative, got %d", c.Stats.Users))
	}
	if c.Stats.AvgFriendships < 0 {
		errs = append(errs, fmt.Errorf("stats avg friendships must not be negative, got %d", c.Stats.AvgFriendships))
	}
	if c.Graph.MaxConnections < 0 {
		errs = append(errs, fmt.Errorf("graph max connections must not be negative, got %d", c.Graph.MaxConnections))
	}
	return errors.Join(errs...)
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func valueOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseBoolWithDefault(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		val, err := strconv.ParseBool(v)
		if err != nil {
			return fallback
		}
		return val
	}
	return fallback
}

func parseIntWithDefault(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if val, err := strconv.Atoi(v); err == nil {
			return val
		}
	}
	return fallback
}

func parseInt64(key string, fallback int64) (int64, error) {
	if v := os.Getenv(key); v != "" {
		val, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s value %q: %w", key, v, err)
		}
		return val, nil
	}
	return fallback, nil
}
