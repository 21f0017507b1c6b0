package config

import (
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type OperationsConfig struct {
	Env          string `yaml:"env" env:"ALMA_ENV" env-default:"local"`
	HTTPServer   `yaml:"http_server"`
	OperationsDB `yaml:"operations_db"`
	Redis        `yaml:"redis"`
	KafkaService `yaml:"kafka-service"`
	LogConfig    `yaml:"log_config"`
	Security     `yaml:"security"`
	Integrations `yaml:"integrations"`
}

type HTTPServer struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
}

type OperationsDB struct {
	// Empty DSN switches the service to the in-memory store with sample
	// data, so the core runs without any database configured.
	Dsn            string `yaml:"dsn" env:"DATABASE_URL"`
	MigrationsPath string `yaml:"migrations_path" env:"MIGRATIONS_PATH"`
}

type Redis struct {
	Addr     string `yaml:"addr" env:"REDIS_ADDR"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

type KafkaService struct {
	Brokers    []string `yaml:"brokers" env:"KAFKA_BROKERS"`
	EventTopic string   `yaml:"event_topic" env:"KAFKA_EVENT_TOPIC" env-default:"operation-events"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`
	LogFormat string `yaml:"log_format" env:"LOG_FORMAT" env-default:"text"`
}

type Security struct {
	SecretKey string `yaml:"secret_key" env:"SECRET_KEY" env-default:"dev-secret-key-change-in-production"`
}

// Integrations are credential placeholders for future wiring. None of them
// gate core behavior.
type Integrations struct {
	TelegramBotToken string `yaml:"telegram_bot_token" env:"TELEGRAM_BOT_TOKEN"`
	BinanceAPIKey    string `yaml:"binance_api_key" env:"BINANCE_API_KEY"`
	BinanceSecretKey string `yaml:"binance_secret_key" env:"BINANCE_SECRET_KEY"`
}

func MustLoad() *OperationsConfig {
	var cfg OperationsConfig

	// Config file is optional: without one the service reads the
	// environment and falls back to defaults.
	configPath := os.Getenv("ALMA_CONFIG_PATH")
	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			log.Fatalf("failed to read env config: %v", err)
		}
		return &cfg
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
