package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds application configuration
type Config struct {
	Port     string
	Env      string
	LogLevel string

	// Gemini
	GoogleAPIKey  string
	GeminiModelID string
	LLMMaxTokens  int
	HistoryLimit  int

	// Upload limits
	MaxUploadBytes int64

	// Appointment persistence: "memory" or "csv"
	AppointmentsBackend string
	AppointmentsCSVPath string

	// Booking session storage: "memory" or "redis"
	SessionBackend string
	RedisAddr      string
	RedisPassword  string
	RedisTLS       bool

	CORSAllowedOrigins []string
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:     getEnv("PORT", "8080"),
		Env:      getEnv("ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		GoogleAPIKey:  getEnv("GOOGLE_API_KEY", ""),
		GeminiModelID: getEnv("GEMINI_MODEL_ID", "gemini-2.5-flash"),
		LLMMaxTokens:  getEnvAsInt("LLM_MAX_OUTPUT_TOKENS", 1800),
		HistoryLimit:  getEnvAsInt("CHAT_HISTORY_LIMIT", 20),

		MaxUploadBytes: getEnvAsInt64("MAX_UPLOAD_BYTES", 10*1024*1024),

		AppointmentsBackend: strings.ToLower(strings.TrimSpace(getEnv("APPOINTMENTS_BACKEND", "memory"))),
		AppointmentsCSVPath: getEnv("APPOINTMENTS_CSV_PATH", "appointments.csv"),

		SessionBackend: strings.ToLower(strings.TrimSpace(getEnv("SESSION_BACKEND", "memory"))),
		RedisAddr:      getEnv("REDIS_ADDR", "redis:6379"),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		RedisTLS:       getEnvAsBool("REDIS_TLS", false),

		CORSAllowedOrigins: splitAndTrim(getEnv("CORS_ALLOWED_ORIGINS", "")),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func splitAndTrim(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
