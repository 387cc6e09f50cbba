package config

import (
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type TranslateConfig struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url"`
	DryRun  bool   `yaml:"dry_run"`
}

type TelegramConfig struct {
	BotToken       string `yaml:"bot_token"`
	DispatchChatID int64  `yaml:"dispatch_chat_id"`
}

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`
	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUser     string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
	} `yaml:"email"`
	JWTSecret string          `yaml:"jwt_secret"`
	Translate TranslateConfig `yaml:"translate"`
	Telegram  TelegramConfig  `yaml:"telegram"`
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	f, err := os.Open("config/config.yaml")
	if err != nil {
		panic("Failed to open config.yaml: " + err.Error())
	}
	defer f.Close()

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		panic("Failed to parse config.yaml: " + err.Error())
	}

	// env overrides for values that should not live in the file
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		cfg.Database.DSN = dsn
	}
	if key := os.Getenv("TRANSLATE_API_KEY"); key != "" {
		cfg.Translate.APIKey = key
	}
	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		cfg.Telegram.BotToken = token
	}
	if cfg.Translate.BaseURL == "" {
		cfg.Translate.BaseURL = "https://translation.googleapis.com/language/translate/v2"
	}
	return &cfg
}
