// Package config resolves runtime settings from defaults, a TOML file, a
// .env file and the environment, in that order of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvConfig          = "PLANNERHUB_CONFIG"
	EnvDB              = "PLANNERHUB_DB"
	EnvDefaultDocument = "PLANNERHUB_DEFAULT_DOCUMENT"
	EnvBackupDir       = "PLANNERHUB_BACKUP_DIR"
	EnvLogUseCases     = "PLANNERHUB_LOG_USECASES"
)

// Config holds everything the binary needs to wire itself.
type Config struct {
	// DBPath is the SQLite file standing in for device-local storage.
	DBPath string `toml:"db_path"`
	// DefaultDocument overrides the bundled default document when set.
	DefaultDocument string `toml:"default_document"`
	// BackupDir is where exports are written.
	BackupDir   string `toml:"backup_dir"`
	LogUseCases bool   `toml:"log_usecases"`

	// File is the config file that was read, empty when none was.
	File string `toml:"-"`
}

// Options locate the optional files. Zero values use the standard locations.
type Options struct {
	Home       string
	ConfigFile string
	EnvFile    string
}

// DefaultConfig returns the configuration used when nothing overrides it.
func DefaultConfig(home string) Config {
	return Config{
		DBPath:    filepath.Join(home, ".plannerhub", "plannerhub.db"),
		BackupDir: ".",
	}
}

// Load resolves the configuration for the current user.
func Load() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("finding home directory: %w", err)
	}
	return LoadWith(Options{Home: home})
}

// LoadWith resolves the configuration using explicit file locations.
func LoadWith(opts Options) (Config, error) {
	cfg := DefaultConfig(opts.Home)

	envFile := opts.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	// .env only fills variables the environment does not already set.
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("loading env file %s: %w", envFile, err)
	}

	path := opts.ConfigFile
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	explicit := path != ""
	if path == "" {
		path = filepath.Join(opts.Home, ".plannerhub", "config.toml")
	}
	if err := loadConfigFile(&cfg, path); err != nil {
		if !errors.Is(err, fs.ErrNotExist) || explicit {
			return Config{}, fmt.Errorf("loading config file %s: %w", path, err)
		}
	} else {
		cfg.File = path
	}

	loadFromEnv(&cfg)
	return cfg, nil
}

func loadConfigFile(cfg *Config, path string) error {
	_, err := toml.DecodeFile(path, cfg)
	return err
}

func loadFromEnv(cfg *Config) {
	if v := os.Getenv(EnvDB); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv(EnvDefaultDocument); v != "" {
		cfg.DefaultDocument = v
	}
	if v := os.Getenv(EnvBackupDir); v != "" {
		cfg.BackupDir = v
	}
	if v := os.Getenv(EnvLogUseCases); v != "" {
		cfg.LogUseCases, _ = strconv.ParseBool(v)
	}
}
