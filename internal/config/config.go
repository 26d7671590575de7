package config

import (
	"os"
	"strconv"
	"time"
)

type S3Config struct {
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string // boş ise standart AWS endpoint kullanılır
	PublicURL       string // boş ise https://<bucket>.s3.<region>.amazonaws.com
}

type EmailConfig struct {
	ResendAPIKey string
	FromAddress  string
	FromName     string
}

type RateLimitConfig struct {
	Max    int
	Window time.Duration
}

type Config struct {
	Port          string
	PublicBaseURL string
	AllowOrigins  string
	MaxUploadSize int64
	RateLimit     RateLimitConfig
	S3            S3Config
	Email         EmailConfig
}

func LoadConfig() *Config {
	cfg := &Config{}

	cfg.Port = getEnv("PORT", "8080")
	cfg.PublicBaseURL = getEnv("PUBLIC_BASE_URL", "http://localhost:"+cfg.Port)
	cfg.AllowOrigins = getEnv("CORS_ALLOW_ORIGINS", "*")
	cfg.MaxUploadSize = getEnvInt64("MAX_UPLOAD_SIZE", 10*1024*1024)

	// Rate limit config
	cfg.RateLimit.Max = int(getEnvInt64("RATE_LIMIT_MAX", 60))
	cfg.RateLimit.Window = time.Duration(getEnvInt64("RATE_LIMIT_WINDOW_SECONDS", 60)) * time.Second

	// S3 config
	cfg.S3.Region = getEnv("AWS_S3_REGION", "eu-central-1")
	cfg.S3.Bucket = os.Getenv("AWS_STORAGE_BUCKET")
	cfg.S3.AccessKeyID = os.Getenv("AWS_ACCESS_KEY_ID")
	cfg.S3.SecretAccessKey = os.Getenv("AWS_SECRET_ACCESS_KEY")
	cfg.S3.Endpoint = os.Getenv("AWS_S3_ENDPOINT")
	cfg.S3.PublicURL = os.Getenv("AWS_S3_PUBLIC_URL")

	// Email config
	cfg.Email.ResendAPIKey = os.Getenv("RESEND_API_KEY")
	cfg.Email.FromAddress = getEnv("EMAIL_FROM_ADDRESS", "no-reply@photobooth.local")
	cfg.Email.FromName = getEnv("EMAIL_FROM_NAME", "Photobooth")

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}
