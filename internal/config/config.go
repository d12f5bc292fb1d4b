package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const dirName = ".bodyfat"

// Output formats accepted by output_format and --format.
var Formats = []string{"text", "markdown", "json", "csv"}

// Global configuration structure.
type Global struct {
	DefaultGender string `mapstructure:"default_gender" yaml:"default_gender"`
	Precision     int    `mapstructure:"precision" yaml:"precision"`
	OutputFormat  string `mapstructure:"output_format" yaml:"output_format"`
	Color         bool   `mapstructure:"color" yaml:"color"`
	ProfilesDir   string `mapstructure:"profiles_dir" yaml:"profiles_dir"`

	// Logging
	LogLevel  string `mapstructure:"log_level" yaml:"log_level"`
	LogFormat string `mapstructure:"log_format" yaml:"log_format"`
}

// Keys lists the settable configuration keys in display order.
var Keys = []string{"default_gender", "precision", "output_format", "color", "profiles_dir", "log_level", "log_format"}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.bodyfat/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		dir, err := homeDir()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("BODYFAT")
	v.AutomaticEnv()

	v.SetDefault("default_gender", "male")
	v.SetDefault("precision", 1)
	v.SetDefault("output_format", "text")
	v.SetDefault("color", true)
	v.SetDefault("profiles_dir", "")
	v.SetDefault("log_level", "warn")
	v.SetDefault("log_format", "console")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		dir, err := homeDir()
		if err != nil {
			return nil, err
		}
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil {
		// A missing file is fine; a broken one is not.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.ProfilesDir == "" {
		dir, err := homeDir()
		if err != nil {
			return nil, err
		}
		c.ProfilesDir = filepath.Join(dir, "profiles")
	}
	return &c, nil
}

// Set validates and applies one key=value pair.
func (c *Global) Set(key, val string) error {
	switch key {
	case "default_gender":
		switch strings.ToLower(val) {
		case "male", "m":
			c.DefaultGender = "male"
		case "female", "f":
			c.DefaultGender = "female"
		default:
			return fmt.Errorf("invalid default_gender: %s (use male or female)", val)
		}
	case "precision":
		i, err := strconv.Atoi(val)
		if err != nil || i < 0 || i > 4 {
			return fmt.Errorf("invalid int for precision: %v (use 0-4)", val)
		}
		c.Precision = i
	case "output_format":
		f := strings.ToLower(val)
		if !ValidFormat(f) {
			return fmt.Errorf("invalid output_format: %s (use %s)", val, strings.Join(Formats, ", "))
		}
		c.OutputFormat = f
	case "color":
		b, err := strconv.ParseBool(val)
		if err != nil {
			return fmt.Errorf("invalid bool for color: %w", err)
		}
		c.Color = b
	case "profiles_dir":
		c.ProfilesDir = val
	case "log_level":
		switch strings.ToLower(val) {
		case "debug", "info", "warn", "error":
			c.LogLevel = strings.ToLower(val)
		default:
			return fmt.Errorf("invalid log_level: %s (use debug, info, warn or error)", val)
		}
	case "log_format":
		switch strings.ToLower(val) {
		case "console", "json":
			c.LogFormat = strings.ToLower(val)
		default:
			return fmt.Errorf("invalid log_format: %s (use console or json)", val)
		}
	default:
		return fmt.Errorf("unknown key: %s", key)
	}
	return nil
}

// Get returns the display value for a key.
func (c *Global) Get(key string) (string, error) {
	switch key {
	case "default_gender":
		return c.DefaultGender, nil
	case "precision":
		return strconv.Itoa(c.Precision), nil
	case "output_format":
		return c.OutputFormat, nil
	case "color":
		return strconv.FormatBool(c.Color), nil
	case "profiles_dir":
		return c.ProfilesDir, nil
	case "log_level":
		return c.LogLevel, nil
	case "log_format":
		return c.LogFormat, nil
	}
	return "", fmt.Errorf("unknown key: %s", key)
}

// ValidFormat reports whether f is a supported output format.
func ValidFormat(f string) bool {
	for _, x := range Formats {
		if x == f {
			return true
		}
	}
	return false
}

func homeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, dirName), nil
}
