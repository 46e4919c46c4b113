package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Settings struct {
	Port          string
	AllowedOrigin string

	DBDriver string
	DSN      string

	StorageDriver string
	RedisAddr     string
	RedisPassword string
	MongoURI      string
	MongoDatabase string

	DataDir     string
	DataBaseURL string
	DataTimeout time.Duration

	ResultsTTL      time.Duration
	SessionIdleTTL  time.Duration
	JanitorSchedule string
}

// Load reads .env (if any) and the process environment.
func Load() *Settings {
	if err := godotenv.Load(); err != nil {
		Logger.Warn("Arquivo .env não encontrado, usando variáveis de ambiente do sistema")
	}

	return &Settings{
		Port:          getEnv("PORT", "8080"),
		AllowedOrigin: getEnv("CORS_ALLOWED_ORIGIN", "*"),

		DBDriver: getEnv("DB_DRIVER", "sqlite"),
		DSN:      getEnv("DATABASE_DSN", "quiz.db"),

		StorageDriver: getEnv("STORAGE_DRIVER", "database"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		MongoURI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnv("MONGO_DATABASE", "lifeinuk"),

		DataDir:     getEnv("DATA_DIR", "public"),
		DataBaseURL: getEnv("DATA_BASE_URL", ""),
		DataTimeout: getEnvDuration("DATA_TIMEOUT", 15*time.Second),

		ResultsTTL:      getEnvDuration("RESULTS_TTL", time.Hour),
		SessionIdleTTL:  getEnvDuration("SESSION_IDLE_TTL", 2*time.Hour),
		JanitorSchedule: getEnv("JANITOR_SCHEDULE", "@every 5m"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		Logger.WithError(err).Warnf("Valor inteiro inválido para %s, usando padrão", key)
		return defaultValue
	}
	return intValue
}

// getEnvDuration accepts Go durations ("90s", "1h") or a bare number of seconds.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	return time.Duration(getEnvInt(key, int(defaultValue/time.Second))) * time.Second
}
