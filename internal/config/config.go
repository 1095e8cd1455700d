package config

import "os"

type Config struct {
	Port          string
	DBPath        string
	OllamaBaseURL string
	OllamaModel   string
}

func Load() Config {
	return Config{
		Port:          getenv("PORT", "3000"),
		DBPath:        getenv("DB_PATH", "./data.sqlite"),
		OllamaBaseURL: getenv("OLLAMA_BASE_URL", "http://localhost:11434"),
		OllamaModel:   getenv("OLLAMA_MODEL", "llama3"),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
