package config

import (
	"fmt"
	"log/slog"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	// External MediaInfo CLI used for media files that are not saved JSON.
	MediaInfoBin string        `mapstructure:"MENUINFO_MEDIAINFO_BIN" validate:"required"`
	ProbeTimeout time.Duration `mapstructure:"MENUINFO_PROBE_TIMEOUT" validate:"gte=0"`
	ParseSpeed   float64       `mapstructure:"MENUINFO_PARSE_SPEED" validate:"gte=0,lte=1"`

	Output   string `mapstructure:"MENUINFO_OUTPUT" validate:"oneof=text json yaml"`
	LogLevel string `mapstructure:"MENUINFO_LOG_LEVEL" validate:"oneof=debug info warn error"`
}

// bind environment variables based on mapstructure tags
func bindEnv(v *viper.Viper, c Config) {
	typ := reflect.TypeOf(c)
	for i := 0; i < typ.NumField(); i++ {
		if tag := typ.Field(i).Tag.Get("mapstructure"); tag != "" {
			_ = v.BindEnv(tag)
		}
	}
}

// Defaults is the configuration used when the environment sets nothing.
func Defaults() Config {
	return Config{
		MediaInfoBin: "mediainfo",
		ProbeTimeout: 30 * time.Second,
		ParseSpeed:   0.5,
		Output:       "text",
		LogLevel:     "warn",
	}
}

func setDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("MENUINFO_MEDIAINFO_BIN", d.MediaInfoBin)
	v.SetDefault("MENUINFO_PROBE_TIMEOUT", d.ProbeTimeout)
	v.SetDefault("MENUINFO_PARSE_SPEED", d.ParseSpeed)
	v.SetDefault("MENUINFO_OUTPUT", d.Output)
	v.SetDefault("MENUINFO_LOG_LEVEL", d.LogLevel)
}

// Load reads configuration from the environment, applies defaults and
// validates the result.
func Load() (*Config, error) {
	return LoadWith(viper.New())
}

func LoadWith(v *viper.Viper) (*Config, error) {
	cfg, err := ReadWith(v)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	slog.Debug("Loaded configuration", "config", cfg)
	return cfg, nil
}

// Read is Load without validation, for callers that override values first.
func Read() (*Config, error) {
	return ReadWith(viper.New())
}

// ReadWith decodes the environment over the defaults. When decoding fails
// the defaults are returned together with the error.
func ReadWith(v *viper.Viper) (*Config, error) {
	bindEnv(v, Config{})
	v.AutomaticEnv()
	setDefaults(v)

	cfg := Config{}
	if err := v.Unmarshal(&cfg); err != nil {
		defaults := Defaults()
		return &defaults, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.Output = strings.ToLower(cfg.Output)
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	return &cfg, nil
}

func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}
	return nil
}

// SlogLevel maps LogLevel to a slog level, defaulting to warn.
func (c Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	}
	return slog.LevelWarn
}
