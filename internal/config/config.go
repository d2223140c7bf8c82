package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/text/currency"
)

type Config struct {
	Currency            currency.Unit
	PaymentDelay        time.Duration
	QueueInitialMinutes int
	QueuePollInterval   time.Duration
	QueueMaxIncrement   int
}

// Load reads an optional .env file, then the environment, falling back to
// defaults for anything unset.
func Load() (Config, error) {
	// A missing .env file is fine; the environment still applies.
	_ = godotenv.Load()

	cfg := Config{
		Currency:            currency.HKD,
		PaymentDelay:        3 * time.Second,
		QueueInitialMinutes: 5,
		QueuePollInterval:   5 * time.Second,
		QueueMaxIncrement:   3,
	}

	if v := os.Getenv("TUCKSHOP_CURRENCY"); v != "" {
		unit, err := currency.ParseISO(v)
		if err != nil {
			return Config{}, fmt.Errorf("TUCKSHOP_CURRENCY[%s]: %w", v, err)
		}
		cfg.Currency = unit
	}

	if v := os.Getenv("TUCKSHOP_PAYMENT_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("TUCKSHOP_PAYMENT_DELAY[%s]: %w", v, err)
		}
		cfg.PaymentDelay = d
	}

	if v := os.Getenv("TUCKSHOP_QUEUE_INITIAL_MINUTES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("TUCKSHOP_QUEUE_INITIAL_MINUTES[%s]: %w", v, err)
		}
		cfg.QueueInitialMinutes = n
	}

	if v := os.Getenv("TUCKSHOP_QUEUE_POLL_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("TUCKSHOP_QUEUE_POLL_INTERVAL[%s]: %w", v, err)
		}
		cfg.QueuePollInterval = d
	}

	if v := os.Getenv("TUCKSHOP_QUEUE_MAX_INCREMENT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("TUCKSHOP_QUEUE_MAX_INCREMENT[%s]: %w", v, err)
		}
		cfg.QueueMaxIncrement = n
	}

	return cfg, nil
}
