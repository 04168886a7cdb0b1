package config

import "os"

type Config struct {
	DBHost       string
	DBPort       string
	DBUser       string
	DBPassword   string
	DBName       string
	JWTSecret    string
	ServerPort   string
	AWSRegion    string
	AWSAccessKey string
	AWSSecretKey string
	S3Bucket     string
	S3BaseURL    string
}

func Load() *Config {
	return &Config{
		DBHost:       getEnv("DB_HOST", "localhost"),
		DBPort:       getEnv("DB_PORT", "5432"),
		DBUser:       getEnv("DB_USER", "postgres"),
		DBPassword:   getEnv("DB_PASSWORD", "postgres"),
		DBName:       getEnv("DB_NAME", "presentingit"),
		JWTSecret:    getEnv("JWT_SECRET", "super-secret-key-change-me"),
		ServerPort:   getEnv("SERVER_PORT", "8080"),
		AWSRegion:    getEnv("AWS_REGION", "ap-south-1"),
		AWSAccessKey: getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
		S3Bucket:     getEnv("S3_BUCKET", "presenting-it-uploads"),
		S3BaseURL:    getEnv("S3_BASE_URL", ""),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
