package config

import (
	"os"
	"strings"
	"time"
)

type Config struct {
	Port string

	MongoURI    string
	MongoDBName string

	RedisAddr     string
	RedisPassword string

	JWTSecret string
	TokenTTL  time.Duration

	// Kafka is optional; order events are skipped when no brokers are set.
	KafkaBrokers []string
	KafkaTopic   string

	UploadDir string

	CORSAllowOrigins []string

	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

func Load() Config {
	return Config{
		Port: getenv("PORT", "8080"),

		MongoURI:    getenv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDBName: getenv("MONGO_DB_NAME", "tfawe"),

		RedisAddr:     getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getenv("REDIS_PASSWORD", ""),

		JWTSecret: getenv("JWT_SECRET", "secret"),
		TokenTTL:  parseDuration(getenv("TOKEN_TTL", "24h"), 24*time.Hour),

		KafkaBrokers: splitCSV(os.Getenv("KAFKA_BROKERS")),
		KafkaTopic:   getenv("KAFKA_TOPIC", "order-events"),

		UploadDir: getenv("UPLOAD_DIR", "public/uploads"),

		CORSAllowOrigins: splitCSV(getenv("CORS_ALLOW_ORIGINS", "*")),

		RequestTimeout:  parseDuration(getenv("REQUEST_TIMEOUT", "30s"), 30*time.Second),
		ShutdownTimeout: parseDuration(getenv("SHUTDOWN_TIMEOUT", "10s"), 10*time.Second),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); strings.TrimSpace(v) != "" {
		return v
	}
	return def
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseDuration(v string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
