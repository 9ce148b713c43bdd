package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort string
	APIURL     string
	DBUrl      string
	RedisURL   string

	JWTSecret         string
	AdminPasswordHash string

	CarouselInterval time.Duration
	CatalogCacheTTL  time.Duration
	CatalogRefresh   string

	StaticCatalogBucket   string
	StaticCatalogKey      string
	StaticCatalogRegion   string
	StaticCatalogEndpoint string
	AWSAccessKeyID        string
	AWSSecretAccessKey    string

	TwilioAccountSID   string
	TwilioAuthToken    string
	TwilioWhatsAppFrom string
	TwilioNotifyTo     string

	AppointmentRatePerMin int
	CORSOrigins           []string

	LogLevel    string
	Development bool
	Timezone    string
	ProfileFile string
	Version     string
}

// Load lê o .env (se existir) e depois as variáveis de ambiente.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		APIURL:     getEnv("API_URL", ""),
		DBUrl:      getEnv("DATABASE_URL", ""),
		RedisURL:   getEnv("REDIS_URL", ""),

		JWTSecret:         getEnv("JWT_SECRET", "changeme"),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),

		CarouselInterval: time.Duration(getEnvInt("CAROUSEL_INTERVAL_MS", 5000)) * time.Millisecond,
		CatalogCacheTTL:  getEnvDuration("CATALOG_CACHE_TTL", 10*time.Minute),
		CatalogRefresh:   getEnv("CATALOG_REFRESH_SPEC", "@every 5m"),

		StaticCatalogBucket:   getEnv("STATIC_CATALOG_S3_BUCKET", ""),
		StaticCatalogKey:      getEnv("STATIC_CATALOG_S3_KEY", "services.json"),
		StaticCatalogRegion:   getEnv("STATIC_CATALOG_S3_REGION", "us-east-1"),
		StaticCatalogEndpoint: getEnv("STATIC_CATALOG_S3_ENDPOINT", ""),
		AWSAccessKeyID:        getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretAccessKey:    getEnv("AWS_SECRET_ACCESS_KEY", ""),

		TwilioAccountSID:   getEnv("TWILIO_ACCOUNT_SID", ""),
		TwilioAuthToken:    getEnv("TWILIO_AUTH_TOKEN", ""),
		TwilioWhatsAppFrom: getEnv("TWILIO_WHATSAPP_FROM", ""),
		TwilioNotifyTo:     getEnv("TWILIO_NOTIFY_TO", ""),

		AppointmentRatePerMin: getEnvInt("APPOINTMENT_RATE_PER_MIN", 6),
		CORSOrigins:           splitList(getEnv("CORS_ORIGINS", "")),

		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Development: getEnv("APP_ENV", "production") == "development",
		Timezone:    getEnv("TIMEZONE", "America/Fortaleza"),
		ProfileFile: getEnv("PROFILE_FILE", ""),
		Version:     getEnv("APP_VERSION", "dev"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

// StaticMode indica que não há backend configurado.
func (c *Config) StaticMode() bool {
	return strings.TrimSpace(c.APIURL) == ""
}

func (c *Config) TwilioEnabled() bool {
	return c.TwilioAccountSID != "" && c.TwilioAuthToken != "" &&
		c.TwilioWhatsAppFrom != "" && c.TwilioNotifyTo != ""
}
