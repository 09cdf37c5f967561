package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr          string
	Codec         string
	MatchDuration time.Duration
	DebugSecret   string
	AllowedOrigin string
}

func defaults() Config {
	return Config{
		Addr:          ":3000",
		Codec:         "json",
		MatchDuration: 2 * time.Minute,
	}
}

// Load reads settings from the process environment, after merging a .env
// file from the working directory when one exists.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("config: no .env file, using process environment")
	} else {
		log.Println("Successfully loaded environment variables")
	}

	cfg := defaults()
	if v, err := GetEnvVariable("TAG_ADDR"); err == nil {
		cfg.Addr = v
	}
	if v, err := GetEnvVariable("TAG_CODEC"); err == nil {
		cfg.Codec = v
	}
	if v, err := GetEnvVariable("TAG_MATCH_DURATION"); err == nil {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("TAG_MATCH_DURATION: %w", err)
		}
		if d < 0 {
			return Config{}, fmt.Errorf("TAG_MATCH_DURATION must not be negative, got %s", d)
		}
		cfg.MatchDuration = d
	}
	if v, err := GetEnvVariable("TAG_DEBUG_SECRET"); err == nil {
		cfg.DebugSecret = v
	}
	if v, err := GetEnvVariable("TAG_ALLOWED_ORIGIN"); err == nil {
		cfg.AllowedOrigin = v
	}
	return cfg, nil
}

func GetEnvVariable(v string) (string, error) {
	if v == "" {
		return "", fmt.Errorf("input param empty")
	}
	b := os.Getenv(v)
	if b == "" {
		return "", fmt.Errorf("failed to get variable for %s", v)
	}

	return b, nil
}
