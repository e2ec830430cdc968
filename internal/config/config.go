package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBUrl      string
	JWTSecret  string
	ServerPort string
	Env        string

	RedisURL string

	SMTPHost     string
	SMTPPort     string
	SMTPUser     string
	SMTPPassword string
	MailFrom     string
	MailTo       string

	S3Bucket    string
	S3Region    string
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	S3PublicURL string

	StaticDir string
}

// Load reads the environment. DATABASE_URL and JWT_SECRET have no
// fallback: the server must not start without them.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBUrl:      os.Getenv("DATABASE_URL"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		ServerPort: getEnv("SERVER_PORT", "8080"),
		Env:        getEnv("APP_ENV", "development"),

		RedisURL: os.Getenv("REDIS_URL"),

		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     getEnv("SMTP_PORT", "587"),
		SMTPUser:     os.Getenv("SMTP_USER"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		MailFrom:     os.Getenv("MAIL_FROM"),
		MailTo:       os.Getenv("MAIL_TO"),

		S3Bucket:    os.Getenv("S3_BUCKET"),
		S3Region:    getEnv("S3_REGION", "us-east-1"),
		S3Endpoint:  os.Getenv("S3_ENDPOINT"),
		S3AccessKey: os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey: os.Getenv("S3_SECRET_KEY"),
		S3PublicURL: os.Getenv("S3_PUBLIC_URL"),

		StaticDir: getEnv("STATIC_DIR", "./web/dist"),
	}

	if cfg.DBUrl == "" {
		log.Fatal("DATABASE_URL is not set")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
