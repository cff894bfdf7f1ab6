package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the knobs for both binaries. Each service reads only the
// fields it needs.
type Config struct {
	UserSvcAddr   string `env:"USER_SERVICE_ADDR" envDefault:":50051"`
	OrderSvcAddr  string `env:"ORDER_SERVICE_ADDR" envDefault:":50052"`
	UserSvcTarget string `env:"USER_SERVICE_TARGET" envDefault:"localhost:50051"`

	UserHTTPAddr  string `env:"USER_HTTP_ADDR" envDefault:":8081"`
	OrderHTTPAddr string `env:"ORDER_HTTP_ADDR" envDefault:":8082"`

	// UserCallTimeout bounds each order→user lookup so a stalled user
	// service cannot pin an order worker past it.
	UserCallTimeout time.Duration `env:"USER_CALL_TIMEOUT" envDefault:"5s"`
	ShutdownGrace   time.Duration `env:"SHUTDOWN_GRACE" envDefault:"5s"`
	MaxConcurrent   int           `env:"GRPC_MAX_CONCURRENT" envDefault:"10"`
}

// Load reads .env if present, then the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.MaxConcurrent <= 0 {
		return nil, fmt.Errorf("GRPC_MAX_CONCURRENT must be positive, got %d", cfg.MaxConcurrent)
	}
	return cfg, nil
}
