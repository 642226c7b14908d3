package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Log        Logger         `mapstructure:"logger"`
	API        API            `mapstructure:"api"`
	CoinGecko  CoinGecko      `mapstructure:"coingecko"`
	Classifier Classifier     `mapstructure:"classifier"`
	Scheduler  Scheduler      `mapstructure:"scheduler"`
	Telegram   TelegramConfig `mapstructure:"telegram"`
}

type Logger struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"`
}

type API struct {
	Port int `mapstructure:"port" validate:"required,min=1,max=65535"`
}

type CoinGecko struct {
	BaseURL             string        `mapstructure:"base_url" validate:"required,url"`
	AssetID             string        `mapstructure:"asset_id" validate:"required"`
	VsCurrency          string        `mapstructure:"vs_currency" validate:"required"`
	Timeout             time.Duration `mapstructure:"timeout"`
	MaxRequestPerMinute int           `mapstructure:"max_request_per_minute" validate:"required,min=1"`
}

type Classifier struct {
	Provider    string            `mapstructure:"provider" validate:"required,oneof=gemini huggingface"`
	Gemini      GeminiConfig      `mapstructure:"gemini"`
	HuggingFace HuggingFaceConfig `mapstructure:"huggingface"`
}

type GeminiConfig struct {
	APIKey              string        `mapstructure:"api_key"`
	BaseURL             string        `mapstructure:"base_url"`
	BaseModel           string        `mapstructure:"base_model"`
	Timeout             time.Duration `mapstructure:"timeout"`
	MaxRequestPerMinute int           `mapstructure:"max_request_per_minute"`
	MaxTokenPerMinute   int           `mapstructure:"max_token_per_minute"`
}

type HuggingFaceConfig struct {
	APIKey              string        `mapstructure:"api_key"`
	BaseURL             string        `mapstructure:"base_url"`
	Model               string        `mapstructure:"model"`
	Timeout             time.Duration `mapstructure:"timeout"`
	MaxRequestPerMinute int           `mapstructure:"max_request_per_minute"`
}

type Scheduler struct {
	CronExpression  string        `mapstructure:"cron_expression"`
	TimeoutDuration time.Duration `mapstructure:"timeout_duration"`
}

type TelegramConfig struct {
	BotToken                  string `mapstructure:"bot_token"`
	ChatID                    int64  `mapstructure:"chat_id"`
	MaxGlobalRequestPerSecond int    `mapstructure:"max_global_request_per_second"`
}

func Load() (*Config, error) {
	viper.SetConfigType("yaml")
	viper.SetConfigName("config")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		fmt.Println("No config file loaded:", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults() {
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("api.port", 8080)

	viper.SetDefault("coingecko.base_url", "https://api.coingecko.com/api/v3")
	viper.SetDefault("coingecko.asset_id", "cardano")
	viper.SetDefault("coingecko.vs_currency", "usd")
	viper.SetDefault("coingecko.timeout", "10s")
	viper.SetDefault("coingecko.max_request_per_minute", 30)

	viper.SetDefault("classifier.provider", "huggingface")
	viper.SetDefault("classifier.gemini.base_url", "https://generativelanguage.googleapis.com/v1beta/models")
	viper.SetDefault("classifier.gemini.base_model", "gemini-2.0-flash")
	viper.SetDefault("classifier.gemini.timeout", "30s")
	viper.SetDefault("classifier.gemini.max_request_per_minute", 15)
	viper.SetDefault("classifier.gemini.max_token_per_minute", 1000000)
	viper.SetDefault("classifier.huggingface.base_url", "https://api-inference.huggingface.co")
	viper.SetDefault("classifier.huggingface.model", "distilbert-base-uncased-finetuned-sst-2-english")
	viper.SetDefault("classifier.huggingface.timeout", "30s")
	viper.SetDefault("classifier.huggingface.max_request_per_minute", 30)

	viper.SetDefault("scheduler.cron_expression", "0 * * * *")
	viper.SetDefault("scheduler.timeout_duration", "2m")

	viper.SetDefault("telegram.max_global_request_per_second", 30)
}
