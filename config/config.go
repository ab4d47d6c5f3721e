package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost string
	DBPort string
	DBUser string
	DBPass string
	DBName string

	ServerPort string

	// Nomor WhatsApp warung yang menjadi tujuan hand-off pesanan.
	WarungPhone string
	// Token Fonnte opsional; kosong berarti relay push dimatikan.
	FonnteToken string

	AdminUsername string
	AdminPassword string
	AdminFullName string

	// RedisURL opsional; kosong berarti session disimpan ke file.
	RedisURL    string
	SessionFile string

	RateLimit         int
	RateLimitInterval int
}

// Load membaca konfigurasi dari environment (dengan .env jika ada).
// Konfigurasi database wajib ada; tanpa itu aplikasi tidak bisa jalan.
func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{
		DBHost: os.Getenv("DB_HOST"),
		DBPort: getEnv("DB_PORT", "3306"),
		DBUser: os.Getenv("DB_USER"),
		DBPass: os.Getenv("DB_PASS"),
		DBName: os.Getenv("DB_NAME"),

		ServerPort: getEnv("PORT", "8080"),

		WarungPhone: getEnv("WARUNG_PHONE", "6281234567890"),
		FonnteToken: os.Getenv("FONNTE_TOKEN"),

		AdminUsername: getEnv("ADMIN_USERNAME", "tehimas"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "tehimas123"),
		AdminFullName: getEnv("ADMIN_FULL_NAME", "Teh Imas"),

		RedisURL:    os.Getenv("REDIS_URL"),
		SessionFile: getEnv("SESSION_FILE", "admin_session.json"),

		RateLimit:         getEnvAsInt("RATE_LIMIT", 50),
		RateLimitInterval: getEnvAsInt("RATE_LIMIT_INTERVAL", 1),
	}

	// Endpoint backend adalah konfigurasi fatal, bukan sesuatu yang
	// bisa di-default diam-diam.
	for key, val := range map[string]string{
		"DB_HOST": cfg.DBHost,
		"DB_USER": cfg.DBUser,
		"DB_NAME": cfg.DBName,
	} {
		if val == "" {
			return nil, fmt.Errorf("required environment variable %s is not set", key)
		}
	}

	return cfg, nil
}

func (c *Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.DBUser, c.DBPass, c.DBHost, c.DBPort, c.DBName)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
