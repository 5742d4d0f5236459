// Package config loads application configuration and owns the global logger.
package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Data    DataConfig    `yaml:"data" mapstructure:"data"`
	Geocode GeocodeConfig `yaml:"geocode" mapstructure:"geocode"`
	Server  ServerConfig  `yaml:"server" mapstructure:"server"`
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
}

// DataConfig locates the film-location export.
type DataConfig struct {
	Path      string `yaml:"path" mapstructure:"path"`
	Worksheet string `yaml:"worksheet" mapstructure:"worksheet"`
}

// GeocodeConfig configures the lookup client.
type GeocodeConfig struct {
	BaseURL     string   `yaml:"base_url" mapstructure:"base_url"`
	UserAgent   string   `yaml:"user_agent" mapstructure:"user_agent"`
	MinDelayMS  int      `yaml:"min_delay_ms" mapstructure:"min_delay_ms"`
	TimeoutSecs int      `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	WarmQueries []string `yaml:"warm_queries" mapstructure:"warm_queries"`
}

// ServerConfig configures the HTTP boundary.
type ServerConfig struct {
	Port           int      `yaml:"port" mapstructure:"port"`
	AllowedOrigins []string `yaml:"allowed_origins" mapstructure:"allowed_origins"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Default returns the built-in configuration, also used by `filmmap init`.
func Default() *Config {
	return &Config{
		Data: DataConfig{
			Path:      "Interactive_Map_Data.xml",
			Worksheet: "Full Map List",
		},
		Geocode: GeocodeConfig{
			BaseURL:     "https://nominatim.openstreetmap.org",
			UserAgent:   "filmmap/1.0",
			MinDelayMS:  1000,
			TimeoutSecs: 10,
		},
		Server: ServerConfig{
			Port:           8080,
			AllowedOrigins: []string{"*"},
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("FILMMAP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	def := Default()
	v.SetDefault("data.path", def.Data.Path)
	v.SetDefault("data.worksheet", def.Data.Worksheet)
	v.SetDefault("geocode.base_url", def.Geocode.BaseURL)
	v.SetDefault("geocode.user_agent", def.Geocode.UserAgent)
	v.SetDefault("geocode.min_delay_ms", def.Geocode.MinDelayMS)
	v.SetDefault("geocode.timeout_secs", def.Geocode.TimeoutSecs)
	v.SetDefault("server.port", def.Server.Port)
	v.SetDefault("server.allowed_origins", def.Server.AllowedOrigins)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.format", def.Log.Format)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
