// Package config loads modelgen CLI settings from modelgen.yaml, MODELGEN_*
// environment variables and command flags, in increasing precedence.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"github.com/goliatone/go-modelgen/internal/logging"
)

// EnvPrefix namespaces environment overrides, e.g. MODELGEN_LOG_FORMAT.
const EnvPrefix = "MODELGEN"

// FileName is the config file base name searched for when no path is given.
const FileName = "modelgen"

// Config holds CLI settings.
type Config struct {
	// Output is the directory generated files are written to. Empty prints
	// to stdout.
	Output string `mapstructure:"output"`
	// Targets lists adapter names used when --target is not given.
	Targets []string `mapstructure:"targets"`
	// Templates points at a directory of template adapter definitions.
	Templates string `mapstructure:"templates"`
	Log       Log    `mapstructure:"log"`
}

// Log configures the CLI logger.
type Log struct {
	Format string `mapstructure:"format"`
	Level  string `mapstructure:"level"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("output", "")
	v.SetDefault("targets", []string{"typescript"})
	v.SetDefault("templates", "")
	v.SetDefault("log.format", logging.FormatConsole)
	v.SetDefault("log.level", "warn")
}

// NewViper prepares a viper instance with defaults and env binding. When path
// is empty the working directory and the user config dir are searched for
// modelgen.{yaml,yml,json}.
func NewViper(path string) *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)

	if path = strings.TrimSpace(path); path != "" {
		v.SetConfigFile(path)
		return v
	}

	v.SetConfigName(FileName)
	v.AddConfigPath(".")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, FileName))
	}
	return v
}

// Read loads the config file into v. A missing file is only an error when
// the path was given explicitly.
func Read(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return errors.Wrap(err, "config: read")
	}
	return nil
}

// Decode unmarshals v and validates the result.
func Decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "config: unmarshal")
	}
	cfg.normalise()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Load is NewViper, Read and Decode in one call.
func Load(path string) (*Config, error) {
	v := NewViper(path)
	if err := Read(v); err != nil {
		return nil, err
	}
	return Decode(v)
}

// Validate checks enumerated values.
func (c *Config) Validate() error {
	switch c.Log.Format {
	case logging.FormatConsole, logging.FormatJSON:
	default:
		return errors.WithHint(
			errors.Newf("config: unknown log.format %q", c.Log.Format),
			"use console or json",
		)
	}
	return nil
}

func (c *Config) normalise() {
	c.Output = strings.TrimSpace(c.Output)
	c.Templates = strings.TrimSpace(c.Templates)
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
	c.Log.Level = strings.TrimSpace(c.Log.Level)

	targets := c.Targets[:0]
	for _, target := range c.Targets {
		if target = strings.TrimSpace(target); target != "" {
			targets = append(targets, target)
		}
	}
	c.Targets = targets
}
