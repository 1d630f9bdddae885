// Package config loads tabsweep settings from ~/.tabsweep/config.toml and TABSWEEP_* variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/tabsweep/internal/domain"
	"github.com/spf13/viper"
)

const (
	EnvPrefix  = "TABSWEEP"
	DirName    = ".tabsweep"
	configName = "config"
	configType = "toml"
)

const (
	KeyStatePath         = "state.path"
	KeyArchiveBackend    = "archive.backend"
	KeyArchiveSQLitePath = "archive.sqlite_path"
	KeyArchiveRetention  = "archive.retention"
	KeyEvictInterval     = "schedule.evict_interval"
	KeyCleanupInterval   = "schedule.cleanup_interval"
	KeyDefaultLimit      = "defaults.inactivity_limit"
	KeyDefaultMaxTabs    = "defaults.max_tabs"
	KeyNotifyBackend     = "notify.backend"
	KeyLogLevel          = "log.level"
	KeyLogFormat         = "log.format"
	KeyMetricsAddr       = "metrics.addr"
)

const (
	ArchiveBackendTOML   = "toml"
	ArchiveBackendSQLite = "sqlite"

	NotifyBackendStream  = "stream"
	NotifyBackendDesktop = "desktop"
)

type Config struct {
	State    StateConfig    `mapstructure:"state"`
	Archive  ArchiveConfig  `mapstructure:"archive"`
	Schedule ScheduleConfig `mapstructure:"schedule"`
	Defaults DefaultsConfig `mapstructure:"defaults"`
	Notify   NotifyConfig   `mapstructure:"notify"`
	Log      LogConfig      `mapstructure:"log"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
}

type StateConfig struct {
	Path string `mapstructure:"path"`
}

type ArchiveConfig struct {
	Backend    string        `mapstructure:"backend"`
	SQLitePath string        `mapstructure:"sqlite_path"`
	Retention  time.Duration `mapstructure:"retention"`
}

type ScheduleConfig struct {
	EvictInterval   time.Duration `mapstructure:"evict_interval"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
}

type DefaultsConfig struct {
	InactivityLimit time.Duration `mapstructure:"inactivity_limit"`
	MaxTabs         int           `mapstructure:"max_tabs"`
}

type NotifyConfig struct {
	Backend string `mapstructure:"backend"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type MetricsConfig struct {
	Addr string `mapstructure:"addr"`
}

// Settings returns the defaults the scheduler uses until the store holds settings.
func (c *Config) Settings() domain.Settings {
	return domain.Settings{
		InactivityLimit: c.Defaults.InactivityLimit,
		MaxTabs:         c.Defaults.MaxTabs,
	}
}

// NewViper returns a viper instance reading config.toml from dir and TABSWEEP_* variables.
func NewViper(dir string) *viper.Viper {
	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(dir)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v, dir)
	return v
}

// DefaultDir returns ~/.tabsweep.
func DefaultDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(homeDir, DirName), nil
}

func setDefaults(v *viper.Viper, dir string) {
	v.SetDefault(KeyStatePath, filepath.Join(dir, "state.toml"))
	v.SetDefault(KeyArchiveBackend, ArchiveBackendTOML)
	v.SetDefault(KeyArchiveSQLitePath, filepath.Join(dir, "archive.db"))
	v.SetDefault(KeyArchiveRetention, domain.DefaultRetention.String())
	v.SetDefault(KeyEvictInterval, time.Minute.String())
	v.SetDefault(KeyCleanupInterval, (24 * time.Hour).String())
	v.SetDefault(KeyDefaultLimit, domain.DefaultInactivityLimit.String())
	v.SetDefault(KeyDefaultMaxTabs, domain.DefaultMaxTabs)
	v.SetDefault(KeyNotifyBackend, NotifyBackendStream)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")
	v.SetDefault(KeyMetricsAddr, "")
}

// Load reads the config file when present, applies the environment and validates the result.
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	normalize(cfg)

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func normalize(cfg *Config) {
	cfg.State.Path = expandHome(strings.TrimSpace(cfg.State.Path))
	cfg.Archive.SQLitePath = expandHome(strings.TrimSpace(cfg.Archive.SQLitePath))
	cfg.Archive.Backend = strings.ToLower(strings.TrimSpace(cfg.Archive.Backend))
	cfg.Notify.Backend = strings.ToLower(strings.TrimSpace(cfg.Notify.Backend))
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	cfg.Log.Format = strings.ToLower(strings.TrimSpace(cfg.Log.Format))
	cfg.Metrics.Addr = strings.TrimSpace(cfg.Metrics.Addr)
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(homeDir, strings.TrimPrefix(path, "~"))
}

func validate(cfg *Config) error {
	var problems []string

	if cfg.State.Path == "" {
		problems = append(problems, "state.path must not be empty")
	}

	switch cfg.Archive.Backend {
	case ArchiveBackendTOML:
	case ArchiveBackendSQLite:
		if cfg.Archive.SQLitePath == "" {
			problems = append(problems, "archive.sqlite_path must not be empty for the sqlite backend")
		}
	default:
		problems = append(problems, fmt.Sprintf("archive.backend must be %q or %q", ArchiveBackendTOML, ArchiveBackendSQLite))
	}
	if cfg.Archive.Retention <= 0 {
		problems = append(problems, "archive.retention must be positive")
	}

	if cfg.Schedule.EvictInterval <= 0 {
		problems = append(problems, "schedule.evict_interval must be positive")
	}
	if cfg.Schedule.CleanupInterval <= 0 {
		problems = append(problems, "schedule.cleanup_interval must be positive")
	}

	if err := cfg.Settings().Validate(); err != nil {
		problems = append(problems, "defaults: "+err.Error())
	}

	switch cfg.Notify.Backend {
	case NotifyBackendStream, NotifyBackendDesktop:
	default:
		problems = append(problems, fmt.Sprintf("notify.backend must be %q or %q", NotifyBackendStream, NotifyBackendDesktop))
	}

	switch cfg.Log.Format {
	case "console", "json":
	default:
		problems = append(problems, `log.format must be "console" or "json"`)
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration:\n  - %s", strings.Join(problems, "\n  - "))
	}
	return nil
}
