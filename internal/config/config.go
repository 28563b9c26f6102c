package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config agrupa toda la configuración por env vars.
// Sin GOOGLE_CLIENT_ID ni JWT_SECRET el servicio arranca en modo dev:
// auth por header X-Debug-User-ID y storage in-memory salvo DB_DSN.
type Config struct {
	Port    int    `env:"PORT" envDefault:"8080"`
	AppName string `env:"APP_NAME" envDefault:"barkly-backend"`

	DBDSN string `env:"DB_DSN"`

	GoogleClientID string        `env:"GOOGLE_CLIENT_ID"`
	JWTSecret      string        `env:"JWT_SECRET"`
	JWTTTL         time.Duration `env:"JWT_TTL" envDefault:"24h"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:8080,http://localhost:8083"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
}

// DevMode indica que no hay identidad real configurada.
func (c Config) DevMode() bool {
	return c.GoogleClientID == "" || c.JWTSecret == ""
}

func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}

	// Secreto corto = token falsificable. Mejor cortar en el arranque.
	if s := strings.TrimSpace(cfg.JWTSecret); s != "" && len(s) < 32 {
		return Config{}, fmt.Errorf("JWT_SECRET must be at least 32 bytes long, got %d", len(s))
	}

	return cfg, nil
}
