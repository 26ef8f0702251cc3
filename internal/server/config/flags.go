package config

import (
	"flag"
	"os"
	"time"

	"qanda-service/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line
// flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-d string   PostgreSQL DSN
//	-s string   session token secret
//	-t int      session token validity, hours
//	-m string   moderation endpoint URL
//	-k string   moderation API key
//
// os.Args is first filtered to only the flags handled here using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-t", "-m", "-k"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SessionSecret, "s", config.SessionSecret, "session token secret")
	fs.StringVar(&config.BadWordsEndpoint, "m", config.BadWordsEndpoint, "moderation endpoint URL")
	fs.StringVar(&config.BadWordsAPIKey, "k", config.BadWordsAPIKey, "moderation API key")

	sessionValidity := fs.Int("t", int(config.SessionValidityDuration.Hours()), "session validity (in hours)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.SessionValidityDuration = time.Duration(*sessionValidity) * time.Hour
}
