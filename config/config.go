package config

import (
	"fmt"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"time"
)

type Config struct {
	ServiceName   string
	ServerAddress string

	LogLevel    string
	HTTPTimeout int32

	WeatherAPIKey  string
	ExchangeAPIKey string

	WeatherBaseURL   string
	CountriesBaseURL string
	ExchangeBaseURL  string
	NBPBaseURL       string

	HomeCountry  string
	HomeCurrency string

	// Extractor selects how fields are read from response bodies: "path" or "pattern".
	Extractor string
}

func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("SERVICE_NAME", "travel-info-service")

	v.SetDefault("SERVER_ADDRESS", "127.0.0.1:3000")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("HTTP_TIMEOUT", 30)
	v.SetDefault("WEATHER_BASE_URL", "http://api.openweathermap.org")
	v.SetDefault("COUNTRIES_BASE_URL", "https://restcountries.com")
	v.SetDefault("EXCHANGE_BASE_URL", "https://v6.exchangerate-api.com")
	v.SetDefault("NBP_BASE_URL", "http://api.nbp.pl")
	v.SetDefault("HOME_COUNTRY", "Poland")
	v.SetDefault("HOME_CURRENCY", "PLN")
	v.SetDefault("EXTRACTOR", "path")

	v.AutomaticEnv()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Warn().Msg("No .env file found, using environment variables only")
		} else {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Info().Str("file", v.ConfigFileUsed()).Msg("Config file loaded")
	}

	config := &Config{
		ServiceName:      v.GetString("SERVICE_NAME"),
		ServerAddress:    v.GetString("SERVER_ADDRESS"),
		LogLevel:         v.GetString("LOG_LEVEL"),
		HTTPTimeout:      v.GetInt32("HTTP_TIMEOUT"),
		WeatherAPIKey:    v.GetString("API_KEY_WEATHER"),
		ExchangeAPIKey:   v.GetString("API_KEY_EXCHANGE"),
		WeatherBaseURL:   v.GetString("WEATHER_BASE_URL"),
		CountriesBaseURL: v.GetString("COUNTRIES_BASE_URL"),
		ExchangeBaseURL:  v.GetString("EXCHANGE_BASE_URL"),
		NBPBaseURL:       v.GetString("NBP_BASE_URL"),
		HomeCountry:      v.GetString("HOME_COUNTRY"),
		HomeCurrency:     v.GetString("HOME_CURRENCY"),
		Extractor:        v.GetString("EXTRACTOR"),
	}

	if config.Extractor != "path" && config.Extractor != "pattern" {
		return nil, fmt.Errorf("unsupported EXTRACTOR %q: expected path or pattern", config.Extractor)
	}

	if config.HTTPTimeout <= 0 {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT %d: expected a positive number of seconds", config.HTTPTimeout)
	}

	if config.WeatherAPIKey == "" {
		log.Warn().Msg("API_KEY_WEATHER is not set, weather lookups will be rejected upstream")
	}
	if config.ExchangeAPIKey == "" {
		log.Warn().Msg("API_KEY_EXCHANGE is not set, exchange rate lookups will be rejected upstream")
	}

	return config, nil
}

func (c *Config) HTTPTimeoutDuration() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}
