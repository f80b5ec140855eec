package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds everything the server reads from the environment.
type Config struct {
	ServerPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	CMSBaseURL string
	CMSToken   string

	AssetsDir string

	SMTPHost      string
	SMTPPort      string
	SMTPUser      string
	SMTPPassword  string
	SMTPFromName  string
	SMTPFromEmail string

	ContactNotifyEmail string

	S3BucketName string
	AWSRegion    string

	AllowOrigins string

	CacheTTL        time.Duration
	RefreshInterval time.Duration
}

// LoadConfig reads the environment (after loading .env files) into a Config.
// Only the CMS base URL is hard-required; everything else has a local
// default or degrades (email, S3).
func LoadConfig() (*Config, error) {
	LoadDotEnv()

	cfg := &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "rudhirsetu"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		CMSBaseURL: os.Getenv("CMS_BASE_URL"),
		CMSToken:   os.Getenv("CMS_API_TOKEN"),

		AssetsDir: getEnv("OG_ASSETS_DIR", "assets/og"),

		SMTPHost:      os.Getenv("SMTP_HOST"),
		SMTPPort:      getEnv("SMTP_PORT", "587"),
		SMTPUser:      os.Getenv("SMTP_USER"),
		SMTPPassword:  os.Getenv("SMTP_PASSWORD"),
		SMTPFromName:  getEnv("SMTP_FROM_NAME", "Rudhirsetu Seva Sanstha"),
		SMTPFromEmail: os.Getenv("SMTP_FROM_EMAIL"),

		ContactNotifyEmail: os.Getenv("CONTACT_NOTIFY_EMAIL"),

		S3BucketName: os.Getenv("S3_BUCKET_NAME"),
		AWSRegion:    getEnv("AWS_REGION", "ap-south-1"),

		AllowOrigins: getEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000"),

		CacheTTL:        getEnvDuration("CACHE_TTL", 10*time.Minute),
		RefreshInterval: getEnvDuration("CONTENT_REFRESH_INTERVAL", time.Hour),
	}

	if cfg.CMSBaseURL == "" {
		return nil, fmt.Errorf("CMS_BASE_URL is required")
	}

	return cfg, nil
}

// GetDBConnString builds the lib/pq connection string.
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}
