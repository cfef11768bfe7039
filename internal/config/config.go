// Package config resolves runtime settings from ~/.prep/config.toml and
// PREP_* environment variables. Environment values win over the file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/viper"
)

const (
	DirName      = ".prep"
	FileName     = "config.toml"
	dataDirName  = "data"
	databaseName = "prep.db"

	DefaultLogLevel = "warn"
)

type Backend string

const (
	BackendFile   Backend = "file"
	BackendSQLite Backend = "sqlite"
	BackendMemory Backend = "memory"
)

var ErrUnknownBackend = errors.New("unknown storage backend")

type Config struct {
	Storage StorageConfig `mapstructure:"storage"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Log     LogConfig     `mapstructure:"log"`
}

type StorageConfig struct {
	Backend Backend `mapstructure:"backend" env:"PREP_STORAGE_BACKEND"`
	// Path is a directory for the file backend and a database file for
	// sqlite. Unused by the memory backend.
	Path string `mapstructure:"path" env:"PREP_STORAGE_PATH"`
}

type CatalogConfig struct {
	// Path is empty for the embedded catalog.
	Path string `mapstructure:"path" env:"PREP_CATALOG_PATH"`
}

type LogConfig struct {
	Level string `mapstructure:"level" env:"PREP_LOG_LEVEL"`
}

// Load reads the config file at path, or home/.prep/config.toml when path
// is empty. Only an explicit path has to exist.
func Load(path, home string) (Config, error) {
	v := viper.New()
	v.SetConfigType("toml")
	v.SetDefault("storage.backend", string(BackendFile))
	v.SetDefault("storage.path", "")
	v.SetDefault("catalog.path", "")
	v.SetDefault("log.level", DefaultLogLevel)

	explicit := path != ""
	if !explicit {
		path = filepath.Join(home, DirName, FileName)
	}

	if err := readFile(v, path, explicit); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config %s: %w", path, err)
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	return cfg.normalize(home)
}

func readFile(v *viper.Viper, path string, required bool) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return nil
		}
		return fmt.Errorf("stat config %s: %w", path, err)
	}

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	return nil
}

func (c Config) normalize(home string) (Config, error) {
	c.Storage.Backend = Backend(strings.ToLower(strings.TrimSpace(string(c.Storage.Backend))))
	if c.Storage.Backend == "" {
		c.Storage.Backend = BackendFile
	}

	switch c.Storage.Backend {
	case BackendFile:
		if c.Storage.Path == "" {
			c.Storage.Path = DataDir(home)
		}
	case BackendSQLite:
		if c.Storage.Path == "" {
			c.Storage.Path = filepath.Join(home, DirName, databaseName)
		}
	case BackendMemory:
	default:
		return Config{}, fmt.Errorf("storage backend %q: %w", c.Storage.Backend, ErrUnknownBackend)
	}

	c.Storage.Path = expandHome(c.Storage.Path, home)
	c.Catalog.Path = expandHome(strings.TrimSpace(c.Catalog.Path), home)
	if strings.TrimSpace(c.Log.Level) == "" {
		c.Log.Level = DefaultLogLevel
	}

	return c, nil
}

// DataDir is the file backend directory, also the sqlite fallback.
func DataDir(home string) string {
	return filepath.Join(home, DirName, dataDirName)
}

func expandHome(path, home string) string {
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}

	return path
}
