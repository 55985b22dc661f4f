package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/Andreeduardopp/stockquery/pkg/stockquery/preset"
)

// EnvPrefix scopes environment overrides, e.g. STOCKQUERY_FORMAT=json.
const EnvPrefix = "STOCKQUERY"

// Config holds the settings shared by every command.
type Config struct {
	Preset      preset.Preset
	Format      string
	Columns     []string
	Color       bool
	Pretty      bool
	MaxColWidth int
}

// New returns a viper instance with defaults and env overrides wired.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("preset", string(preset.OneMonth))
	v.SetDefault("format", "table")
	v.SetDefault("columns", []string{})
	v.SetDefault("color", true)
	v.SetDefault("pretty", false)
	v.SetDefault("max_col_width", 0)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the optional config file at path into v and decodes the
// result. A missing file is only an error when path was given explicitly.
func Load(v *viper.Viper, path string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("stockquery")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var nf viper.ConfigFileNotFoundError
			if !errors.As(err, &nf) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	p, err := preset.Parse(v.GetString("preset"))
	if err != nil {
		return Config{}, fmt.Errorf("config preset: %w", err)
	}
	cfg := Config{
		Preset:      p,
		Format:      strings.ToLower(strings.TrimSpace(v.GetString("format"))),
		Columns:     v.GetStringSlice("columns"),
		Color:       v.GetBool("color"),
		Pretty:      v.GetBool("pretty"),
		MaxColWidth: v.GetInt("max_col_width"),
	}
	if cfg.MaxColWidth < 0 {
		return Config{}, fmt.Errorf("max_col_width must not be negative")
	}
	return cfg, nil
}
