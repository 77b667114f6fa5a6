// Package config defines the runtime settings of the portfolio commands.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. PORTFOLIO_LOG_LEVEL.
const EnvPrefix = "PORTFOLIO"

// Config holds every setting a command may read.
type Config struct {
	Addr       string        `mapstructure:"addr"`
	Mode       string        `mapstructure:"mode"`
	LogLevel   string        `mapstructure:"log_level"`
	LogFormat  string        `mapstructure:"log_format"`
	PublicDir  string        `mapstructure:"public_dir"`
	ResumePath string        `mapstructure:"resume_path"`
	SessionTTL time.Duration `mapstructure:"session_ttl"`

	ReferenceLine float64 `mapstructure:"reference_line"`
	JumpAdjust    float64 `mapstructure:"jump_adjust"`

	OTLPEndpoint string `mapstructure:"otlp_endpoint"`
	ServiceName  string `mapstructure:"service_name"`
}

// SetDefaults registers defaults and environment bindings on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("addr", defaultAddr())
	v.SetDefault("mode", "release")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")
	v.SetDefault("public_dir", "./public")
	v.SetDefault("resume_path", "/files/Pranjal_Resume_DE_1.pdf")
	v.SetDefault("session_ttl", 30*time.Minute)
	v.SetDefault("reference_line", 100)
	v.SetDefault("jump_adjust", -20)
	v.SetDefault("otlp_endpoint", "")
	v.SetDefault("service_name", "portfolio")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("otlp_endpoint", EnvPrefix+"_OTLP_ENDPOINT", "OTEL_EXPORTER_OTLP_ENDPOINT")
	_ = v.BindEnv("service_name", EnvPrefix+"_SERVICE_NAME", "OTEL_SERVICE_NAME")
}

// defaultAddr honors the PORT variable most hosting platforms set.
func defaultAddr() string {
	if port := os.Getenv("PORT"); port != "" {
		return ":" + port
	}
	return ":8080"
}

// Load decodes v into a Config and validates it.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings no command can run with.
func (c Config) Validate() error {
	switch c.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("config: mode must be debug, release or test, got %q", c.Mode)
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("config: log_format must be console or json, got %q", c.LogFormat)
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("config: session_ttl must be positive, got %s", c.SessionTTL)
	}
	if !strings.HasPrefix(c.ResumePath, "/") && !strings.Contains(c.ResumePath, "://") {
		return fmt.Errorf("config: resume_path must be absolute, got %q", c.ResumePath)
	}
	return nil
}
