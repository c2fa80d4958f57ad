package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type App struct {
	// Network
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":8080"`
	GinMode  string `envconfig:"GIN_MODE" default:"release"`

	// Logging
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// Marketplace
	InitialBalance  float64       `envconfig:"INITIAL_BALANCE" default:"0"`
	TopBiddersLimit int           `envconfig:"TOP_BIDDERS_LIMIT" default:"5"`
	SweepInterval   time.Duration `envconfig:"SWEEP_INTERVAL" default:"30s"`
	EventBuffer     int           `envconfig:"EVENT_BUFFER" default:"64"`
	SeedDemoData    bool          `envconfig:"SEED_DEMO_DATA" default:"false"`
}

func Load() (App, error) {
	var c App
	if err := envconfig.Process("", &c); err != nil {
		return App{}, fmt.Errorf("config: %w", err)
	}
	if err := c.validate(); err != nil {
		return App{}, fmt.Errorf("config: %w", err)
	}
	return c, nil
}

func (c App) validate() error {
	if c.InitialBalance < 0 {
		return fmt.Errorf("INITIAL_BALANCE must not be negative, got %v", c.InitialBalance)
	}
	if c.TopBiddersLimit <= 0 {
		return fmt.Errorf("TOP_BIDDERS_LIMIT must be positive, got %d", c.TopBiddersLimit)
	}
	if c.SweepInterval < 0 {
		return fmt.Errorf("SWEEP_INTERVAL must not be negative, got %s", c.SweepInterval)
	}
	return nil
}
