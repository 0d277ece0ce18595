// README: Config loader backed by viper (.env file + environment).
package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	ServerPort         string `mapstructure:"SERVER_PORT"`
	GoogleMapsAPIKey   string `mapstructure:"GOOGLE_MAPS_API_KEY"`
	StripeSecretKey    string `mapstructure:"STRIPE_SECRET_KEY"`
	PayPalClientID     string `mapstructure:"PAYPAL_CLIENT_ID"`
	PayPalClientSecret string `mapstructure:"PAYPAL_CLIENT_SECRET"`
	PayPalBaseURL      string `mapstructure:"PAYPAL_BASE_URL"`
}

// Load reads .env from path and the process environment. Missing provider
// keys are not an error: the corresponding collaborator is disabled and the
// service keeps quoting with fallback estimation.
func Load(path string) (*Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		log.Println("no .env file found, using environment only")
	}

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("PAYPAL_BASE_URL", "https://api-m.sandbox.paypal.com")

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
