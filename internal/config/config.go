package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	PublicBaseURL     string `mapstructure:"PUBLIC_BASE_URL"`
	RankingServiceURL string `mapstructure:"RANKING_SERVICE_URL"`
	TeamServiceURL    string `mapstructure:"TEAM_SERVICE_URL"`
	RedisAddr         string `mapstructure:"REDIS_ADDR"`
	RedisPassword     string `mapstructure:"REDIS_PASSWORD"`
	RedisDB           int    `mapstructure:"REDIS_DB"`
	ScheduleTTLMin    int    `mapstructure:"SCHEDULE_TTL_MINUTES"`
	GmailCredentials  string `mapstructure:"GMAIL_CREDENTIALS"`
	GmailToken        string `mapstructure:"GMAIL_TOKEN"`
	MailFrom          string `mapstructure:"MAIL_FROM"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
}

// Load initializes Viper to read config values from env, an optional
// config.yaml, or defaults
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.AutomaticEnv()

	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("PUBLIC_BASE_URL", "")
	v.SetDefault("RANKING_SERVICE_URL", "")
	v.SetDefault("TEAM_SERVICE_URL", "")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("SCHEDULE_TTL_MINUTES", 24*60)
	v.SetDefault("GMAIL_CREDENTIALS", "")
	v.SetDefault("GMAIL_TOKEN", "token.json")
	v.SetDefault("MAIL_FROM", "")
	v.SetDefault("MAX_REQUESTS_PER_MIN", 100)

	// A config file is optional; environment variables are enough.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return cfg, nil
}

// IsProduction checks if the environment is production
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
