package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Addr        string `yaml:"addr"`
	RedisAddr   string `yaml:"redis_addr"`
	GeminiModel string `yaml:"gemini_model"`
	RateLimit   struct {
		Requests      int `yaml:"requests"`
		WindowSeconds int `yaml:"window_seconds"`
	} `yaml:"rate_limit"`
}

func (c Config) RateWindow() time.Duration {
	return time.Duration(c.RateLimit.WindowSeconds) * time.Second
}

// Load reads defaults, an optional YAML file and finally the
// environment (which wins). A missing file is not an error.
func Load(path string) (Config, error) {
	godotenv.Load()

	cfg := Config{
		Addr:        ":8080",
		GeminiModel: "gemini-2.0-flash",
	}
	cfg.RateLimit.Requests = 5
	cfg.RateLimit.WindowSeconds = 60

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			log.Printf("Config file %s not found, using defaults", path)
		case err != nil:
			return cfg, fmt.Errorf("leyendo %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parseando %s: %w", path, err)
			}
		}
	}

	if v := os.Getenv("ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.RedisAddr = v
	}
	if v := os.Getenv("GEMINI_MODEL"); v != "" {
		cfg.GeminiModel = v
	}
	return cfg, nil
}
