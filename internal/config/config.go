package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. WEBXML_THEME_NAME.
const EnvPrefix = "WEBXML"

// Config holds CLI configuration.
type Config struct {
	Theme  ThemeConfig  `mapstructure:"theme"`
	Page   PageConfig   `mapstructure:"page"`
	Render RenderConfig `mapstructure:"render"`
	Log    LogConfig    `mapstructure:"log"`
}

// ThemeConfig selects the client theme referenced by page envelopes.
type ThemeConfig struct {
	Name        string `mapstructure:"name"`
	Variant     string `mapstructure:"variant"`
	AssetPrefix string `mapstructure:"asset_prefix"`
	// Stylesheet pins the XSLT URL and bypasses the asset prefix.
	Stylesheet string `mapstructure:"stylesheet"`
}

// PageConfig controls the page envelope.
type PageConfig struct {
	Title        string `mapstructure:"title"`
	TemplatesDir string `mapstructure:"templates_dir"`
}

// RenderConfig controls rendering.
type RenderConfig struct {
	Locale string `mapstructure:"locale"`
	// Messages translates component text keys for Locale.
	Messages map[string]string `mapstructure:"messages"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Load reads configuration from path, or from WEBXML_CONFIG, or from
// webxml.{yaml,toml,json} in the working directory or ~/.config/webxml.
// Environment variables override file values. A missing file is not an error
// unless it was named explicitly.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("theme.name", "")
	v.SetDefault("theme.variant", "")
	v.SetDefault("theme.asset_prefix", "/theme")
	v.SetDefault("theme.stylesheet", "")
	v.SetDefault("page.title", "")
	v.SetDefault("page.templates_dir", "")
	v.SetDefault("render.locale", "en")
	v.SetDefault("log.level", "info")

	explicit := strings.TrimSpace(path)
	if explicit == "" {
		explicit = strings.TrimSpace(os.Getenv(EnvPrefix + "_CONFIG"))
	}
	if explicit != "" {
		v.SetConfigFile(explicit)
	} else {
		v.SetConfigName("webxml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "webxml"))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: read: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	return c, nil
}

// LogLevel parses Log.Level, defaulting to info.
func (c Config) LogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.Log.Level))); err != nil {
		return slog.LevelInfo
	}
	return level
}

// StylesheetURL returns the pinned stylesheet or the one under AssetPrefix.
func (c Config) StylesheetURL() string {
	if s := strings.TrimSpace(c.Theme.Stylesheet); s != "" {
		return s
	}
	prefix := strings.TrimRight(strings.TrimSpace(c.Theme.AssetPrefix), "/")
	return prefix + "/xslt/all.xsl"
}
