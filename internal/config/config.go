// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strings"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["*"] — the API serves a public single-page client.
	// Set CORS_ORIGINS to a comma-separated list to restrict.
	CORSOrigins []string

	// ItineraryTable is the DynamoDB table holding itinerary items,
	// keyed by date. Required.
	ItineraryTable string

	// PlacesTable is the DynamoDB table holding places, keyed by id,
	// with the CityIndex GSI. Required.
	PlacesTable string

	// NotesTable is the DynamoDB table holding notes, keyed by id,
	// with the DateIndex GSI. Required.
	NotesTable string

	// AWSEndpoint overrides the DynamoDB endpoint when set.
	// Point it at DynamoDB Local for development; leave empty in
	// production to use the region's real endpoint.
	AWSEndpoint string
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing any required variables that are not set.
func Load() (Config, error) {
	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CORSOrigins: splitCSV(getEnv("CORS_ORIGINS", "*")),
		AWSEndpoint: os.Getenv("AWS_ENDPOINT_URL"),
	}

	var missing []string

	for _, v := range []struct {
		key  string
		dest *string
	}{
		{"ITINERARY_TABLE", &cfg.ItineraryTable},
		{"PLACES_TABLE", &cfg.PlacesTable},
		{"NOTES_TABLE", &cfg.NotesTable},
	} {
		*v.dest = os.Getenv(v.key)
		if *v.dest == "" {
			missing = append(missing, v.key)
		}
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
