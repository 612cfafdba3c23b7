package config

import (
	"flag"
	"regexp"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseDSN       string `env:"DATABASE_URI"`
	AuthSecret        string `env:"AUTH_SECRET"`
	EncryptionKeyFile string `env:"ENCRYPTION_KEY_FILE"`

	BaseURL     string `env:"BASE_URL"`
	EnableHTTPS bool   `env:"ENABLE_HTTPS"`

	TOTPIssuer   string `env:"TOTP_ISSUER"`
	BreachAPIURL string `env:"BREACH_API_URL"`
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// флаги работают ТОЛЬКО если переменные из env не заданы
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "строка подключения к БД")
	flag.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "секрет для подписи JWT")
	flag.StringVar(&cfg.EncryptionKeyFile, "key-file", cfg.EncryptionKeyFile, "путь к файлу ключа шифрования")
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "адрес сервера (host:port)")
	flag.BoolVar(&cfg.EnableHTTPS, "https", cfg.EnableHTTPS, "включить HTTPS")
	flag.StringVar(&cfg.TOTPIssuer, "totp-issuer", cfg.TOTPIssuer, "имя issuer в otpauth-ссылке")
	flag.StringVar(&cfg.BreachAPIURL, "breach-api", cfg.BreachAPIURL, "range-эндпоинт сервиса утечек")

	flag.Parse()

	// Defaults
	if cfg.AuthSecret == "" {
		cfg.AuthSecret = "dev-secret-key"
	}
	if cfg.EncryptionKeyFile == "" {
		cfg.EncryptionKeyFile = "encryption.key"
	}
	if cfg.TOTPIssuer == "" {
		cfg.TOTPIssuer = "WindKey"
	}
	// validate BaseURL: должен быть вида "address:port" (без схемы и пути)
	hostPortRe := regexp.MustCompile(`^[A-Za-z0-9\.\-]+:\d{1,5}$`)
	if !hostPortRe.MatchString(cfg.BaseURL) {
		cfg.BaseURL = "localhost:8081"
	}

	return cfg
}
