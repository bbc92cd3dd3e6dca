package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var envKeyReplacer = strings.NewReplacer(".", "_")

// Settings is the typed form of the configuration tree.
type Settings struct {
	Server  ServerSettings  `mapstructure:"server"`
	Log     LogSettings     `mapstructure:"log"`
	Catalog CatalogSettings `mapstructure:"catalog"`
}

// ServerSettings configures the HTTP listener.
type ServerSettings struct {
	Host         string            `mapstructure:"host"`
	Port         int               `mapstructure:"port" validate:"min=1,max=65535"`
	ReadTimeout  time.Duration     `mapstructure:"read_timeout" validate:"gt=0"`
	WriteTimeout time.Duration     `mapstructure:"write_timeout" validate:"gt=0"`
	RateLimit    RateLimitSettings `mapstructure:"rate_limit"`
}

// RateLimitSettings configures the global request limiter. RPS <= 0
// disables it.
type RateLimitSettings struct {
	RPS   float64 `mapstructure:"rps"`
	Burst int     `mapstructure:"burst" validate:"gte=0"`
}

// LogSettings selects the zap level and encoder.
type LogSettings struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=json console"`
}

// CatalogSettings points at an external catalogue file; empty means the
// embedded default.
type CatalogSettings struct {
	Path string `mapstructure:"path"`
}

// Addr returns host:port for the listener.
func (s ServerSettings) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

var settingsValidator = validator.New(validator.WithRequiredStructEnabled())

// Decode unmarshals cfg into Settings and validates it.
func Decode(cfg Config) (Settings, error) {
	var s Settings
	if err := cfg.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("decode settings: %w", err)
	}
	s.Log.Level = strings.ToLower(strings.TrimSpace(s.Log.Level))
	s.Log.Format = strings.ToLower(strings.TrimSpace(s.Log.Format))
	if err := settingsValidator.Struct(s); err != nil {
		return Settings{}, fmt.Errorf("invalid settings: %w", err)
	}
	return s, nil
}
