package config

import "github.com/caarlos0/env/v6"

type Config struct {
	// Port the HTTP API listens on
	Port string `env:"PORT" envDefault:"5250"`

	// Path to the sqlite database file
	DBPath string `env:"DB_PATH" envDefault:"database/imoveis.db"`

	// Directory listing images are stored under
	StorageDir string `env:"STORAGE_DIR" envDefault:"storage"`

	// Base URL used to build public image URLs
	PublicBaseURL string `env:"PUBLIC_BASE_URL" envDefault:"http://localhost:5250"`

	// Privileged key required on admin routes. Server-side only; it is
	// never echoed in any response.
	ServiceKey string `env:"SERVICE_KEY,required"`

	// Origins allowed by CORS, comma separated. Empty allows all.
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`

	// Telegram lead notifications. Leaving either empty disables them.
	TelegramBotToken string `env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID   string `env:"TELEGRAM_CHAT_ID"`
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
