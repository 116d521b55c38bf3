package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/iamasit07/4-in-a-row/connect4/internal/domain"
)

const (
	ModeText = "text"
	ModeTUI  = "tui"
)

type Config struct {
	Rows                     int
	Columns                  int
	Player1Name              string
	Player2Name              string
	Mode                     string
	NoColor                  bool
	LogLevel                 string
	LogFormat                string
	SessionIdleTimeout       time.Duration
	FinishedSessionRetention time.Duration
	CleanupInterval          time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Rows:                     GetEnvAsInt("BOARD_ROWS", domain.DefaultRows),
		Columns:                  GetEnvAsInt("BOARD_COLUMNS", domain.DefaultColumns),
		Player1Name:              GetEnv("PLAYER1_NAME", "Player 1"),
		Player2Name:              GetEnv("PLAYER2_NAME", "Player 2"),
		Mode:                     strings.ToLower(GetEnv("UI_MODE", ModeText)),
		NoColor:                  GetEnvAsBool("NO_COLOR", false),
		LogLevel:                 GetEnv("LOG_LEVEL", "info"),
		LogFormat:                GetEnv("LOG_FORMAT", "console"),
		SessionIdleTimeout:       GetEnvAsDuration("SESSION_IDLE_TIMEOUT", 30*time.Minute),
		FinishedSessionRetention: GetEnvAsDuration("FINISHED_SESSION_RETENTION", 5*time.Minute),
		CleanupInterval:          GetEnvAsDuration("CLEANUP_INTERVAL", time.Minute),
	}
}

// Validate catches settings the game cannot start with
func (c *Config) Validate() error {
	if c.Rows < 1 || c.Columns < 1 {
		return fmt.Errorf("board must be at least 1x1, got %dx%d", c.Rows, c.Columns)
	}
	if c.Mode != ModeText && c.Mode != ModeTUI {
		return fmt.Errorf("unknown ui mode %q (want %s or %s)", c.Mode, ModeText, ModeTUI)
	}
	if c.CleanupInterval <= 0 {
		return fmt.Errorf("cleanup interval must be positive, got %s", c.CleanupInterval)
	}
	return nil
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Warn().Str("key", key).Str("value", valueStr).Int("default", defaultValue).Msg("invalid integer value, using default")
		return defaultValue
	}
	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Warn().Str("key", key).Str("value", valueStr).Bool("default", defaultValue).Msg("invalid boolean value, using default")
		return defaultValue
	}
	return value
}

// GetEnvAsDuration accepts Go durations ("90s", "5m") or a bare number of seconds
func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	if secs, err := strconv.Atoi(valueStr); err == nil {
		return time.Duration(secs) * time.Second
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Warn().Str("key", key).Str("value", valueStr).Dur("default", defaultValue).Msg("invalid duration value, using default")
		return defaultValue
	}
	return value
}
