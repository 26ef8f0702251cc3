package config

import "os"

// parseEnv overlays environment variables last, so deployment secrets win
// over file and flag values.
func parseEnv(config *Config) {
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("SESSION_SECRET"); v != "" {
		config.SessionSecret = v
	}
	if v := os.Getenv("BAD_WORDS_API_KEY"); v != "" {
		config.BadWordsAPIKey = v
	}
}
