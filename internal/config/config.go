package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI  UIConfig  `toml:"ui"`
	Log LogConfig `toml:"log"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	PanelWidth int  `mapstructure:"panel_width" toml:"panel_width"`
	TextRows   int  `mapstructure:"text_rows" toml:"text_rows"`
	ShowFooter bool `mapstructure:"show_footer" toml:"show_footer"`
	AltScreen  bool `mapstructure:"alt_screen" toml:"alt_screen"`
}

// LogConfig points the debug log at a file. An empty File discards it.
type LogConfig struct {
	File   string `mapstructure:"file" toml:"file"`
	Prefix string `mapstructure:"prefix" toml:"prefix"`
}

// Options are the command-line switches that are not configuration keys.
type Options struct {
	PrintConfig bool
}

const (
	minPanelWidth = 24
	maxPanelWidth = 80
	minTextRows   = 3
	maxTextRows   = 20
)

func Default() Config {
	return Config{
		UI: UIConfig{
			PanelWidth: 36,
			TextRows:   8,
			ShowFooter: true,
			AltScreen:  true,
		},
		Log: LogConfig{Prefix: "pagebuilder "},
	}
}

// Load reads configuration from flags, env and file, in that order of
// precedence. Env var overrides use prefix PAGEBUILDER_.
func Load(args []string) (Config, Options, error) {
	var opts Options
	def := Default()

	fs := pflag.NewFlagSet("pagebuilder", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfgFlag := fs.String("config", "", "path to config.toml")
	fs.String("log-file", "", "write debug log to this file")
	fs.Int("panel-width", def.UI.PanelWidth, "width of the property panel")
	fs.BoolVar(&opts.PrintConfig, "print-config", false, "print the effective config as TOML and exit")
	if err := fs.Parse(args); err != nil {
		return Config{}, opts, fmt.Errorf("parse flags: %w", err)
	}

	v := viper.New()

	// default values
	v.SetDefault("ui.panel_width", def.UI.PanelWidth)
	v.SetDefault("ui.text_rows", def.UI.TextRows)
	v.SetDefault("ui.show_footer", def.UI.ShowFooter)
	v.SetDefault("ui.alt_screen", def.UI.AltScreen)
	v.SetDefault("log.file", def.Log.File)
	v.SetDefault("log.prefix", def.Log.Prefix)

	v.SetConfigType("toml")

	cfgPath := *cfgFlag
	if cfgPath == "" {
		cfgPath = os.Getenv("PAGEBUILDER_CONFIG")
	}
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "pagebuilder"))
		}
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("PAGEBUILDER")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.BindPFlag("log.file", fs.Lookup("log-file")); err != nil {
		return Config{}, opts, fmt.Errorf("bind log-file: %w", err)
	}
	if err := v.BindPFlag("ui.panel_width", fs.Lookup("panel-width")); err != nil {
		return Config{}, opts, fmt.Errorf("bind panel-width: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		// a missing default file is fine; an explicit path must exist
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, opts, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, opts, fmt.Errorf("unmarshal config: %w", err)
	}
	return Normalize(c), opts, nil
}

// Normalize clamps out-of-range values back to usable ones.
func Normalize(c Config) Config {
	def := Default()
	if c.UI.PanelWidth < minPanelWidth || c.UI.PanelWidth > maxPanelWidth {
		c.UI.PanelWidth = def.UI.PanelWidth
	}
	if c.UI.TextRows < minTextRows || c.UI.TextRows > maxTextRows {
		c.UI.TextRows = def.UI.TextRows
	}
	c.Log.File = strings.TrimSpace(c.Log.File)
	return c
}

// Encode writes cfg as TOML.
func Encode(w io.Writer, cfg Config) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}
