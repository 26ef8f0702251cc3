package config

import (
	"encoding/json"
	"os"
	"time"

	"qanda-service/internal/flagx"
	"qanda-service/internal/timex"
)

// JsonConfig is an intermediate DTO used only for reading JSON
// configuration files. It uses timex.Duration for interval fields, which
// allows parsing both string values such as "24h" and integer nanoseconds.
// After unmarshalling, its fields are copied into the runtime Config.
type JsonConfig struct {
	EndpointAddr            string         `json:"endpoint_addr"`
	DatabaseDSN             string         `json:"database_dsn"`
	SessionSecret           string         `json:"session_secret"`
	SessionValidityDuration timex.Duration `json:"session_validity_duration"`
	BadWordsAPIKey          string         `json:"bad_words_api_key"`
	BadWordsEndpoint        string         `json:"bad_words_endpoint"`
	CensorChar              string         `json:"censor_char"`
}

// parseJson loads configuration values from the JSON file named by the
// -c/-config flags into the provided Config. Without the flag nothing is
// loaded. An unreadable or invalid file panics: a half-applied config file
// is worse than no startup.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddr != "" {
		config.EndpointAddr = c.EndpointAddr
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SessionSecret != "" {
		config.SessionSecret = c.SessionSecret
	}
	if c.SessionValidityDuration.Duration != 0 {
		config.SessionValidityDuration = time.Duration(c.SessionValidityDuration.Duration)
	}
	if c.BadWordsAPIKey != "" {
		config.BadWordsAPIKey = c.BadWordsAPIKey
	}
	if c.BadWordsEndpoint != "" {
		config.BadWordsEndpoint = c.BadWordsEndpoint
	}
	if c.CensorChar != "" {
		config.CensorChar = c.CensorChar
	}
}
