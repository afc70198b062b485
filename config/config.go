package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port      int    `env:"PORT" envDefault:"3000"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Credentials are not validated here: a missing pair surfaces as a token error on the first call.
	PayPalClientID     string `env:"CLIENT_ID"`
	PayPalClientSecret string `env:"SECRET"`

	// Defaults to the PayPal sandbox REST API.
	PayPalBaseURL           string        `env:"PAYPAL_BASE_URL" envDefault:"https://api-m.sandbox.paypal.com"`
	HTTPPayPalClientTimeout time.Duration `env:"HTTP_PAYPAL_CLIENT_TIMEOUT" envDefault:"20s"`
}

func New() (Config, error) {
	c, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
