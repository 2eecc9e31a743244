package app

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/openbindings/appbuilder/internal/codegen"
	"github.com/openbindings/appbuilder/internal/design"
)

// Config holds the builder settings. Values come from defaults, then the
// optional config file, then environment variables, then command flags.
type Config struct {
	IDStrategy  string `yaml:"idStrategy"`
	Target      string `yaml:"target"`
	ExportDir   string `yaml:"exportDir"`
	LogLevel    string `yaml:"logLevel"`
	LogFile     string `yaml:"logFile"`
	HistoryFile string `yaml:"historyFile"`
	NoColor     bool   `yaml:"-"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		IDStrategy: design.IDStrategyCounter,
		Target:     string(codegen.TargetReact),
		ExportDir:  ".",
		LogLevel:   "info",
	}
}

// LoadConfig resolves the configuration from the config file and environment.
// A missing config file is not an error.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	path := os.Getenv(EnvConfigFile)
	if path == "" {
		dir, err := GlobalConfigPath()
		if err == nil {
			path = filepath.Join(dir, ConfigFile)
		}
	}
	if path != "" {
		if err := loadConfigFile(path, &cfg); err != nil {
			return cfg, err
		}
	}

	cfg.applyEnv(os.Getenv)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv(getenv func(string) string) {
	set := func(dst *string, key string) {
		if v := getenv(key); v != "" {
			*dst = v
		}
	}
	set(&c.IDStrategy, EnvIDStrategy)
	set(&c.Target, EnvTarget)
	set(&c.ExportDir, EnvExportDir)
	set(&c.LogLevel, EnvLogLevel)
	set(&c.LogFile, EnvLogFile)
	set(&c.HistoryFile, EnvHistoryFile)
	// https://no-color.org/
	if getenv(EnvNoColor) != "" {
		c.NoColor = true
	}
}

// Validate checks the enumerated settings.
func (c Config) Validate() error {
	if _, err := design.NewIDGenerator(c.IDStrategy); err != nil {
		return err
	}
	if _, err := codegen.LookupTarget(c.Target); err != nil {
		return fmt.Errorf("invalid default target: %w", err)
	}
	if _, err := parseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// HistoryPath returns the shell history file, defaulting to the config dir.
func (c Config) HistoryPath() string {
	if c.HistoryFile != "" {
		return c.HistoryFile
	}
	dir, err := GlobalConfigPath()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, HistoryFile)
}

// NewStore builds a design store using the configured id strategy.
func (c Config) NewStore(logger *slog.Logger) (*design.Store, error) {
	ids, err := design.NewIDGenerator(c.IDStrategy)
	if err != nil {
		return nil, err
	}
	return design.NewStore(design.WithIDGenerator(ids), design.WithLogger(logger)), nil
}
