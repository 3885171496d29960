package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPServer HTTPServer
	Upstream   Upstream
}

type HTTPServer struct {
	Port        string        `env:"HTTP_PORT" env-default:"8080"`
	Timeout     time.Duration `env:"HTTP_TIMEOUT" env-default:"2m"`
	IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
}

type Upstream struct {
	DailyURL      string        `env:"CBR_DAILY_URL" env-default:"https://www.cbr.ru/eng/currency_base/daily/"`
	IndicatorsURL string        `env:"CBR_INDICATORS_URL" env-default:"https://www.cbr.ru/eng/key-indicators/"`
	Timeout       time.Duration `env:"CBR_TIMEOUT" env-default:"10s"`
}

func NewConfig() *Config {
	cfg := &Config{}

	_ = godotenv.Load(".env")

	err := cleanenv.ReadEnv(cfg)
	if err != nil {
		log.Fatal("Error reading env")
	}

	return cfg
}
