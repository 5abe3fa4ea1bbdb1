// Package config loads the server configuration: built-in defaults, then
// an optional YAML file, then HOMEPAGE_* environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "HOMEPAGE_"

type Config struct {
	Port      int    `koanf:"port"`
	Mode      string `koanf:"mode"`
	LogLevel  string `koanf:"log_level"`
	LogFormat string `koanf:"log_format"`

	DBPath    string `koanf:"db_path"`
	OutputDir string `koanf:"output_dir"`
	ImagesDir string `koanf:"images_dir"`

	AdminUsername string `koanf:"admin_username"`
	AdminPassword string `koanf:"admin_password"`

	Tracking         bool          `koanf:"tracking"`
	Retention        time.Duration `koanf:"retention"`
	SessionTTL       time.Duration `koanf:"session_ttl"`
	AutoplayInterval time.Duration `koanf:"autoplay_interval"`
}

func Default() *Config {
	return &Config{
		Port:             8080,
		Mode:             "debug",
		LogLevel:         "info",
		LogFormat:        "text",
		DBPath:           "data/homepage.db",
		OutputDir:        "public",
		ImagesDir:        "images",
		AdminUsername:    "admin",
		Tracking:         true,
		Retention:        365 * 24 * time.Hour,
		SessionTTL:       30 * time.Minute,
		AutoplayInterval: 5 * time.Second,
	}
}

// Load reads the YAML file at path when it exists and overlays the
// environment. A bare PORT variable is honoured when HOMEPAGE_PORT is not
// set, for hosts that inject it.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if _, ok := os.LookupEnv(envPrefix + "PORT"); !ok {
		if p := os.Getenv("PORT"); p != "" {
			port, err := strconv.Atoi(p)
			if err != nil {
				return nil, fmt.Errorf("invalid PORT %q: %w", p, err)
			}
			cfg.Port = port
		}
	}

	return cfg, nil
}

var validModes = map[string]bool{"debug": true, "release": true, "test": true}

func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if !validModes[c.Mode] {
		return fmt.Errorf("invalid mode %q: must be one of debug, release, test", c.Mode)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("invalid log_format %q: must be text or json", c.LogFormat)
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("session_ttl must be positive")
	}
	if c.AutoplayInterval <= 0 {
		return fmt.Errorf("autoplay_interval must be positive")
	}
	if c.Tracking && c.DBPath == "" {
		return fmt.Errorf("db_path is required when tracking is enabled")
	}
	if c.Retention < 0 {
		return fmt.Errorf("retention must be non-negative")
	}
	return nil
}

// AdminCredentials returns the admin login, falling back to a development
// password outside release mode. ok is false when the admin area should
// stay disabled.
func (c *Config) AdminCredentials() (user, pass string, ok bool) {
	user, pass = c.AdminUsername, c.AdminPassword
	if user == "" {
		user = "admin"
	}
	if pass == "" {
		if c.Mode == "release" {
			return "", "", false
		}
		pass = "admin123"
	}
	return user, pass, true
}
