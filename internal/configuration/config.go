package configuration

import (
	"fmt"
	"os"
)

type Config struct {
	Database       DatabaseConfig
	Gemini         GeminiConfig
	Uploads        UploadConfig
	MinIO          MinIOConfig
	Server         ServerConfig
	NATSURL        string
	ClamAVURL      string
	TracingEnabled bool
}

type DatabaseConfig struct {
	URL string
}

type GeminiConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type UploadConfig struct {
	Dir       string
	PublicDir string
}

type MinIOConfig struct {
	Endpoint   string
	AccessKey  string
	SecretKey  string
	BucketName string
	UseSSL     bool
}

type ServerConfig struct {
	Port string
}

// Load reads configuration from the environment. The Gemini API key and the
// database connection string have no defaults; startup fails without them.
func Load() (*Config, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is not set")
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}

	return &Config{
		Database: DatabaseConfig{
			URL: dbURL,
		},
		Gemini: GeminiConfig{
			APIKey:  apiKey,
			Model:   getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
			BaseURL: getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com"),
		},
		Uploads: UploadConfig{
			Dir:       getEnv("UPLOAD_DIR", "uploads"),
			PublicDir: getEnv("PUBLIC_DIR", "web/static"),
		},
		MinIO: MinIOConfig{
			Endpoint:   os.Getenv("MINIO_ENDPOINT"),
			AccessKey:  getEnv("MINIO_ACCESS_KEY", "minioadmin"),
			SecretKey:  getEnv("MINIO_SECRET_KEY", "minioadmin"),
			BucketName: getEnv("MINIO_BUCKET", "found-items"),
			UseSSL:     getEnv("MINIO_USE_SSL", "false") == "true",
		},
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "3000"),
		},
		NATSURL:        os.Getenv("NATS_URL"),
		ClamAVURL:      os.Getenv("CLAMAV_URL"),
		TracingEnabled: getEnv("DD_TRACE_ENABLED", "false") == "true",
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
