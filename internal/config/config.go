package config

import "github.com/spf13/viper"

// Config holds everything the service reads from the environment.
// It is built once at startup and passed down explicitly; nothing else
// in the codebase touches viper.
type Config struct {
	AppPort       string // listen address, e.g. ":5000"
	DatabaseDSN   string // PostgreSQL DSN for the submissions store
	AllowedOrigin string // CORS origin allowed to call the form endpoint
	UploadDir     string // directory where ID proof files are written
	RabbitMQURL   string // optional; empty disables event publishing
}

// Load reads the configuration from environment variables, applying
// defaults suitable for local development.
func Load() Config {
	v := viper.New()
	v.SetDefault("APP_PORT", ":5000")
	v.SetDefault("DATABASE_DSN", "host=127.0.0.1 user=postgres password=postgres dbname=regform port=5432 sslmode=disable")
	v.SetDefault("ALLOWED_ORIGIN", "*")
	v.SetDefault("UPLOAD_DIR", "./uploads")
	v.SetDefault("RABBITMQ_URL", "")
	v.AutomaticEnv()

	return Config{
		AppPort:       v.GetString("APP_PORT"),
		DatabaseDSN:   v.GetString("DATABASE_DSN"),
		AllowedOrigin: v.GetString("ALLOWED_ORIGIN"),
		UploadDir:     v.GetString("UPLOAD_DIR"),
		RabbitMQURL:   v.GetString("RABBITMQ_URL"),
	}
}
