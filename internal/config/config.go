package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	ServerAddress string        `mapstructure:"SERVER_ADDRESS"`
	DataHubURL    string        `mapstructure:"DATAHUB_URL"`
	ServiceMapURL string        `mapstructure:"SERVICEMAP_URL"`
	FetchTimeout  time.Duration `mapstructure:"FETCH_TIMEOUT"`
	LogLevel      string        `mapstructure:"LOG_LEVEL"`
	LogFormat     string        `mapstructure:"LOG_FORMAT"`
	GinMode       string        `mapstructure:"GIN_MODE"`
}

// LoadConfig reads configuration from app.env in path, then lets environment
// variables override it. A missing file is not an error.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:8080")
	v.SetDefault("DATAHUB_URL", "http://localhost:5143/api/DataHub")
	v.SetDefault("SERVICEMAP_URL", "https://www.hel.fi/palvelukarttaws/rest/v4/unit/?ontologyword=473")
	v.SetDefault("FETCH_TIMEOUT", "15s")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("GIN_MODE", "release")

	v.AutomaticEnv()

	if err = v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
		err = nil
	}

	err = v.Unmarshal(&config)
	return
}
