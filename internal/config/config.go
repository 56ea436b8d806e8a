package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// Server
	Port int    `mapstructure:"PORT"`
	Env  string `mapstructure:"APP_ENV"` // development | production

	// Storage
	StorageDriver         string `mapstructure:"STORAGE_DRIVER"` // memory | dynamodb
	AWSRegion             string `mapstructure:"AWS_REGION"`
	AWSAccessKeyID        string `mapstructure:"AWS_ACCESS_KEY_ID"`
	AWSSecretAccessKey    string `mapstructure:"AWS_SECRET_ACCESS_KEY"`
	DynamoDBEndpoint      string `mapstructure:"DYNAMODB_ENDPOINT"`
	LotsTable             string `mapstructure:"LOTS_TABLE"`
	HistoryTable          string `mapstructure:"HISTORY_TABLE"`
	DirectRecordsTable    string `mapstructure:"DIRECT_RECORDS_TABLE"`
	ConvertedRecordsTable string `mapstructure:"CONVERTED_RECORDS_TABLE"`
	ObligationsTable      string `mapstructure:"OBLIGATIONS_TABLE"`
	StationsTable         string `mapstructure:"STATIONS_TABLE"`

	// Shop floor
	StationCount            int `mapstructure:"STATION_COUNT"`
	SettlementPromptSeconds int `mapstructure:"SETTLEMENT_PROMPT_SECONDS"`

	// Realtime
	RedisURL        string `mapstructure:"REDIS_URL"` // empty disables cross-replica fan-out
	RealtimeChannel string `mapstructure:"REALTIME_CHANNEL"`

	// Payments
	MercadoPagoAccessToken string `mapstructure:"MERCADOPAGO_ACCESS_TOKEN"`
	PaymentGatewayMock     bool   `mapstructure:"PAYMENT_GATEWAY_MOCK"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AutomaticEnv()
	setDefaults(v)

	// Optional .env file for local development, does not fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	cfg.StorageDriver = strings.ToLower(strings.TrimSpace(cfg.StorageDriver))
	if cfg.StationCount < 1 {
		cfg.StationCount = 1
	}
	return cfg, nil
}

// Every key needs a default, otherwise Unmarshal never looks at the environment for it.
func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", 8080)
	v.SetDefault("APP_ENV", "development")

	v.SetDefault("STORAGE_DRIVER", "memory")
	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("AWS_ACCESS_KEY_ID", "local")
	v.SetDefault("AWS_SECRET_ACCESS_KEY", "local")
	v.SetDefault("DYNAMODB_ENDPOINT", "")
	v.SetDefault("LOTS_TABLE", "lots")
	v.SetDefault("HISTORY_TABLE", "lot_history")
	v.SetDefault("DIRECT_RECORDS_TABLE", "direct_records")
	v.SetDefault("CONVERTED_RECORDS_TABLE", "converted_records")
	v.SetDefault("OBLIGATIONS_TABLE", "pending_obligations")
	v.SetDefault("STATIONS_TABLE", "paint_stations")

	v.SetDefault("STATION_COUNT", 4)
	v.SetDefault("SETTLEMENT_PROMPT_SECONDS", 8)

	v.SetDefault("REDIS_URL", "")
	v.SetDefault("REALTIME_CHANNEL", "paintshop:changes")

	v.SetDefault("MERCADOPAGO_ACCESS_TOKEN", "")
	v.SetDefault("PAYMENT_GATEWAY_MOCK", false)
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func (c *Config) SettlementPromptTimeout() time.Duration {
	return time.Duration(c.SettlementPromptSeconds) * time.Second
}
