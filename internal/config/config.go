// Package config loads settings from a YAML file, a .env file and the
// process environment, in that order of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/Makepad-fr/tada/internal/state"
	"github.com/Makepad-fr/tada/internal/store"
)

const (
	DefaultFile  = "tada.yaml"
	DefaultEnv   = ".env"
	LogFileName  = "tada.log"
	IDPolicyLen  = "length"
	IDPolicyMono = "monotonic"
	dataDirName  = ".tada"
	defaultLevel = "info"
	defaultTheme = "classic"
)

// Config represents the application configuration
type Config struct {
	DataDir  string `yaml:"data_dir" env:"TADA_DATA_DIR"`
	Backend  string `yaml:"backend" env:"TADA_BACKEND"`
	Theme    string `yaml:"theme" env:"TADA_THEME"`
	LogLevel string `yaml:"log_level" env:"TADA_LOG_LEVEL"`
	LogFile  string `yaml:"log_file" env:"TADA_LOG_FILE"`
	IDPolicy string `yaml:"id_policy" env:"TADA_ID_POLICY"`
}

// Default returns the built-in settings.
func Default() Config {
	dir := dataDirName
	if home, err := os.UserHomeDir(); err == nil {
		dir = filepath.Join(home, dataDirName)
	}
	return Config{
		DataDir:  dir,
		Backend:  store.BackendJSON,
		Theme:    defaultTheme,
		LogLevel: defaultLevel,
		IDPolicy: IDPolicyLen,
	}
}

// Load builds the configuration. A missing YAML or .env file is skipped;
// an unreadable or malformed one is an error. envFiles defaults to ".env".
// Values are not validated here so that command-line flags can still
// replace them; call Validate once every source has been applied.
func Load(path string, envFiles ...string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config file: %w", err)
		default:
			// Expand environment variables in the YAML content
			expanded := os.ExpandEnv(string(data))
			if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
				return nil, fmt.Errorf("unmarshal config: %w", err)
			}
		}
	}

	if len(envFiles) == 0 {
		envFiles = []string{DefaultEnv}
	}
	for _, f := range envFiles {
		// godotenv never overrides variables already set in the process.
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

// Validate checks the enumerated settings.
func (c Config) Validate() error {
	switch c.Backend {
	case store.BackendJSON, store.BackendSQLite, store.BackendMemory:
	default:
		return &store.UnknownBackendError{Name: c.Backend}
	}
	if _, err := c.StateIDPolicy(); err != nil {
		return err
	}
	if strings.TrimSpace(c.DataDir) == "" && c.Backend != store.BackendMemory {
		return errors.New("data_dir is empty")
	}
	return nil
}

// StateIDPolicy maps id_policy to the manager's policy.
func (c Config) StateIDPolicy() (state.IDPolicy, error) {
	switch strings.ToLower(c.IDPolicy) {
	case "", IDPolicyLen:
		return state.IDLength, nil
	case IDPolicyMono:
		return state.IDMonotonic, nil
	}
	return 0, fmt.Errorf("unknown id_policy %q (want %s or %s)", c.IDPolicy, IDPolicyLen, IDPolicyMono)
}

// LogPath is where interactive commands write their log.
func (c Config) LogPath() string {
	if c.LogFile != "" {
		return c.LogFile
	}
	return filepath.Join(c.DataDir, LogFileName)
}
