package config

import "os"

type Config struct {
	Port        string
	APIKey      string // empty disables the API key guard
	CatalogPath string // empty means built-in reference tables
}

func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		APIKey:      os.Getenv("API_KEY"),
		CatalogPath: os.Getenv("CATALOG_PATH"),
	}
}

func getEnv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}
