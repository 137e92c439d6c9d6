// Package worldtime provides a client for the WorldTimeAPI timezone endpoint.
package worldtime

import "time"

// DefaultBaseURL is the public WorldTimeAPI timezone endpoint.
const DefaultBaseURL = "http://worldtimeapi.org/api/timezone"

// Config holds configuration for the WorldTimeAPI client.
type Config struct {
	BaseURL     string        // Base URL, e.g. "http://worldtimeapi.org/api/timezone"
	Timeout     time.Duration // HTTP request timeout per attempt
	MaxAttempts int           // Total attempts including the first one
	RetryWait   time.Duration // Fixed wait between attempts
}

// DefaultConfig returns the settings used in production: 3 attempts, 2 seconds apart.
func DefaultConfig(baseURL string) Config {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return Config{
		BaseURL:     baseURL,
		Timeout:     10 * time.Second,
		MaxAttempts: 3,
		RetryWait:   2 * time.Second,
	}
}
