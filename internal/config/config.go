package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"opaltrack/internal/core"
)

type Config struct {
	// Opal site session
	LoginURL         string
	Username         string
	Password         string
	CardName         string
	ChromeProfileDir string
	Headless         bool
	WaitTimeout      time.Duration

	// Weekly business rule
	TargetFloorCents int64

	// Reporting sinks (each optional; empty disables it)
	WebhookURL string

	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string

	GoogleSpreadsheetID string
	GoogleSheetName     string

	// Worker
	ScrapeInterval time.Duration
}

func Load() *Config {
	return &Config{
		LoginURL:         getEnv("OPAL_LOGIN_URL", ""),
		Username:         getEnv("OPAL_USERNAME", ""),
		Password:         getEnv("OPAL_PASSWORD", ""),
		CardName:         getEnv("OPAL_CARD_NAME", ""),
		ChromeProfileDir: getEnv("CHROME_PROFILE_DIR", ""),
		Headless:         getEnvBool("HEADLESS", true),
		WaitTimeout:      getEnvDuration("WAIT_TIMEOUT", 20*time.Second),

		TargetFloorCents: getEnvCents("TARGET_FLOOR", core.DefaultTargetFloorCents),

		WebhookURL: getEnv("WEBHOOK_URL", ""),

		AMQPURL:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "opaltrack"),
		AMQPQueue:    getEnv("AMQP_QUEUE", "weekly_summary"),

		GoogleSpreadsheetID: getEnv("GOOGLE_SPREADSHEET_ID", ""),
		GoogleSheetName:     getEnv("GOOGLE_SHEET_NAME", ""),

		ScrapeInterval: getEnvDuration("SCRAPE_INTERVAL", 6*time.Hour),
	}
}

// TargetFloor returns the floor as an amount.
func (c *Config) TargetFloor() core.Money {
	return core.Money{Cents: c.TargetFloorCents}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if c.LoginURL == "" {
		errors = append(errors, "OPAL_LOGIN_URL is required")
	} else if parsed, err := url.Parse(c.LoginURL); err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		errors = append(errors, fmt.Sprintf("invalid login URL '%s': must be http or https", c.LoginURL))
	}
	if c.Username == "" {
		errors = append(errors, "OPAL_USERNAME is required")
	}
	if c.Password == "" {
		errors = append(errors, "OPAL_PASSWORD is required")
	}
	if c.CardName == "" {
		errors = append(errors, "OPAL_CARD_NAME is required")
	}

	if c.WaitTimeout < time.Second {
		errors = append(errors, fmt.Sprintf("invalid wait timeout %v: must be at least 1 second", c.WaitTimeout))
	}
	if c.TargetFloorCents <= 0 {
		errors = append(errors, fmt.Sprintf("invalid target floor %d cents: must be positive", c.TargetFloorCents))
	}

	if c.WebhookURL != "" {
		if parsed, err := url.Parse(c.WebhookURL); err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
			errors = append(errors, fmt.Sprintf("invalid webhook URL '%s': must be http or https", c.WebhookURL))
		}
	}

	if c.AMQPURL != "" {
		if parsed, err := url.Parse(c.AMQPURL); err != nil {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQPURL, err))
		} else if parsed.Scheme != "amqp" && parsed.Scheme != "amqps" {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsed.Scheme))
		}
		if c.AMQPExchange == "" {
			errors = append(errors, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
		if c.AMQPQueue == "" {
			errors = append(errors, "AMQP queue name cannot be empty when AMQP URL is provided")
		}
	}

	if c.ScrapeInterval < time.Minute {
		errors = append(errors, fmt.Sprintf("invalid scrape interval %v: must be at least 1 minute", c.ScrapeInterval))
	} else if c.ScrapeInterval > 7*24*time.Hour {
		errors = append(errors, fmt.Sprintf("invalid scrape interval %v: must be at most 7 days", c.ScrapeInterval))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvCents(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if cents, err := core.ParseAmountToCents(value); err == nil {
			return cents
		}
	}
	return defaultValue
}
