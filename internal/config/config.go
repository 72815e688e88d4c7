// =================================
// File: internal/config/config.go
// =================================
package config

import (
	"errors"
	"strings"
	"time"

	"github.com/rovshanmuradov/inbeef/internal/simulation"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. INBEEF_SERVER_ADDR.
const EnvPrefix = "INBEEF"

type Config struct {
	DebugLogging   bool             `mapstructure:"debug_logging"`
	LogFile        string           `mapstructure:"log_file"`
	LogMaxSize     int              `mapstructure:"log_max_size"`
	LogMaxBackups  int              `mapstructure:"log_max_backups"`
	LogMaxAge      int              `mapstructure:"log_max_age"`
	LogCompress    bool             `mapstructure:"log_compress"`
	OutputDir      string           `mapstructure:"output_dir"`
	StylesheetPath string           `mapstructure:"stylesheet_path"`
	LogoPath       string           `mapstructure:"logo_path"`
	Server         ServerConfig     `mapstructure:"server"`
	Report         ReportConfig     `mapstructure:"report"`
	Defaults       simulation.Input `mapstructure:"defaults"`
}

type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type ReportConfig struct {
	Compress bool `mapstructure:"compress"`
}

const (
	DefaultAddr            = ":8080"
	DefaultReadTimeout     = 10 * time.Second
	DefaultWriteTimeout    = 30 * time.Second
	DefaultShutdownTimeout = 5 * time.Second
	DefaultOutputDir       = "reports"
	DefaultStylesheetPath  = "assets/style.css"
	DefaultLogoPath        = "assets/logo.png"
	DefaultLogMaxSize      = 10
	DefaultLogMaxBackups   = 3
	DefaultLogMaxAge       = 7
)

func defaults() map[string]interface{} {
	in := simulation.DefaultInput()
	return map[string]interface{}{
		"debug_logging":                   false,
		"log_file":                        "",
		"log_max_size":                    DefaultLogMaxSize,
		"log_max_backups":                 DefaultLogMaxBackups,
		"log_max_age":                     DefaultLogMaxAge,
		"log_compress":                    false,
		"output_dir":                      DefaultOutputDir,
		"stylesheet_path":                 DefaultStylesheetPath,
		"logo_path":                       DefaultLogoPath,
		"server.addr":                     DefaultAddr,
		"server.read_timeout":             DefaultReadTimeout,
		"server.write_timeout":            DefaultWriteTimeout,
		"server.shutdown_timeout":         DefaultShutdownTimeout,
		"report.compress":                 true,
		"defaults.days":                   in.Days,
		"defaults.live_price_per_kg":      in.LivePricePerKg,
		"defaults.animal_count":           in.AnimalCount,
		"defaults.standard_price_per_kg":  in.StandardPricePerKg,
		"defaults.standard_consumption_g": in.StandardConsumptionG,
		"defaults.inbeef_price_per_kg":    in.InbeefPricePerKg,
		"defaults.inbeef_consumption_g":   in.InbeefConsumptionG,
		"defaults.standard_daily_gain_g":  in.StandardDailyGainG,
		"defaults.extra_daily_gain_g":     in.ExtraDailyGainG,
	}
}

// LoadConfig reads path (json, yaml or toml by extension) over the built-in
// defaults, then applies INBEEF_* environment overrides. An empty path skips
// the file.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	for key, value := range defaults() {
		v.SetDefault(key, value)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	loadEnvironmentVariables(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, validateConfig(&cfg)
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg, err := LoadConfig("")
	if err != nil {
		panic("config: built-in defaults are invalid: " + err.Error())
	}
	return cfg
}

func validateConfig(cfg *Config) error {
	if strings.TrimSpace(cfg.Server.Addr) == "" {
		return errors.New("server.addr is empty")
	}
	if cfg.Server.ReadTimeout <= 0 {
		return errors.New("invalid server.read_timeout")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return errors.New("invalid server.write_timeout")
	}
	if cfg.Server.ShutdownTimeout <= 0 {
		return errors.New("invalid server.shutdown_timeout")
	}
	if cfg.LogMaxSize < 0 || cfg.LogMaxBackups < 0 || cfg.LogMaxAge < 0 {
		return errors.New("invalid log rotation settings")
	}
	if err := cfg.Defaults.Validate(); err != nil {
		return errors.Join(errors.New("invalid defaults"), err)
	}
	return nil
}

func loadEnvironmentVariables(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}
