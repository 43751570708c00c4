// apps/solver/internal/config/config.go
//
// Process configuration read from the environment.
// main loads .env (github.com/joho/godotenv) before calling Load.

package config

import (
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/robalobadob/wordle/apps/solver/internal/pattern"
)

// Config holds every tunable of the server and CLI.
type Config struct {
	Port         string        // PORT
	LogLevel     string        // LOG_LEVEL
	WordLength   int           // WORD_LENGTH
	AnswersFile  string        // WORDS_ANSWERS_FILE
	AllowedFile  string        // WORDS_ALLOWED_FILE
	DBPath       string        // DB_PATH
	JWTSecret    string        // JWT_SECRET
	SessionTTL   time.Duration // SESSION_TTL_HOURS
	DailySalt    string        // DAILY_SALT
	AdminKeyHash string        // ADMIN_KEY_HASH (bcrypt)
	Workers      int           // SOLVER_WORKERS
	EvalTimeout  time.Duration // SOLVER_TIMEOUT_SECONDS
	ClientOrigin string        // CLIENT_ORIGIN
}

// Load reads the environment, applying defaults for unset values.
func Load() Config {
	return Config{
		Port:         getEnv("PORT", "5175"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		WordLength:   getInt("WORD_LENGTH", pattern.DefaultLength),
		AnswersFile:  os.Getenv("WORDS_ANSWERS_FILE"),
		AllowedFile:  os.Getenv("WORDS_ALLOWED_FILE"),
		DBPath:       getEnv("DB_PATH", ":memory:"),
		JWTSecret:    getEnv("JWT_SECRET", "dev_secret_change_me"),
		SessionTTL:   time.Duration(getInt("SESSION_TTL_HOURS", 24)) * time.Hour,
		DailySalt:    getEnv("DAILY_SALT", "local_dev_salt"),
		AdminKeyHash: os.Getenv("ADMIN_KEY_HASH"),
		Workers:      getInt("SOLVER_WORKERS", runtime.NumCPU()),
		EvalTimeout:  time.Duration(getInt("SOLVER_TIMEOUT_SECONDS", 30)) * time.Second,
		ClientOrigin: getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
	}
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// getInt parses k as a positive integer, falling back to def.
func getInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}
