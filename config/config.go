package config

import (
	"github.com/SenneDW/authkit/broker"
	"github.com/SenneDW/authkit/logger"
	"github.com/SenneDW/authkit/observability"
	"github.com/SenneDW/authkit/validation"
)

// Config is the full SDK configuration a host can load from file and
// environment.
type Config struct {
	// Client is the provider configuration passed to the broker's setup
	// handshake.
	Client broker.Config `yaml:"client" mapstructure:"client"`
	// Broker names the registered broker binding to resolve. Defaults to
	// "memory" so examples and tests run without platform linking.
	Broker string `yaml:"broker" mapstructure:"broker"`
	// Logging configures SDK logging.
	Logging logger.Config `yaml:"logging" mapstructure:"logging"`
	// Tracing configures the optional OTLP tracer.
	Tracing observability.TracerConfig `yaml:"tracing" mapstructure:"tracing"`
	// Metrics configures the optional OTLP meter.
	Metrics observability.MeterConfig `yaml:"metrics" mapstructure:"metrics"`
}

// ApplyDefaults applies default values to the configuration.
func (c *Config) ApplyDefaults() {
	if c.Broker == "" {
		c.Broker = "memory"
	}
	c.Logging.ApplyDefaults()
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := validation.Validate(c.Client); err != nil {
		return err
	}
	return c.Logging.Validate()
}
