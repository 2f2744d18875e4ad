package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort string

	// Empty RedisAddr means run an embedded in-process instance.
	RedisAddr string
	RedisDB   int

	IdempTTLSecs int

	JWTSecret string
	JWTTTL    time.Duration

	SettleDelay time.Duration
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getenvInt(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return d
}

func Load() *Config {
	// .env is optional; real env always wins.
	_ = godotenv.Load()

	return &Config{
		AppPort:      getenv("APP_PORT", "8080"),
		RedisAddr:    getenv("REDIS_ADDR", ""),
		RedisDB:      getenvInt("REDIS_DB", 0),
		IdempTTLSecs: getenvInt("IDEMPOTENCY_TTL_SECONDS", 300),
		JWTSecret:    getenv("JWT_SECRET", "loanledger-demo-secret"),
		JWTTTL:       time.Duration(getenvInt("JWT_TTL_MINUTES", 480)) * time.Minute,
		SettleDelay:  time.Duration(getenvInt("SETTLE_DELAY_MS", 1500)) * time.Millisecond,
	}
}

func (c *Config) Validate() error {
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	if c.JWTSecret == "" {
		return errors.New("missing JWT_SECRET")
	}
	return nil
}
