package config

import "github.com/spf13/viper"

// Config holds the environment-supplied settings of the server.
type Config struct {
	Port  int
	Store string

	DBHost     string
	DBPort     int
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string
}

// Load reads the configuration from the environment, falling back to the
// defaults of the ephemeral deployment variant (in-memory store, port 3001).
func Load() Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", 3001)
	v.SetDefault("STORE", "memory")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_SSLMODE", "disable")

	return Config{
		Port:       v.GetInt("PORT"),
		Store:      v.GetString("STORE"),
		DBHost:     v.GetString("DB_HOST"),
		DBPort:     v.GetInt("DB_PORT"),
		DBName:     v.GetString("DB_NAME"),
		DBUser:     v.GetString("DB_USER"),
		DBPassword: v.GetString("DB_PASSWORD"),
		DBSSLMode:  v.GetString("DB_SSLMODE"),
	}
}
