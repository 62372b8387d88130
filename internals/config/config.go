// Package config reads the connector endpoints from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/radonc-qa/aria-connector-go/aria/models"
)

const (
	defaultLocalAETitle  = "QATRACK"
	defaultLocalHost     = "127.0.0.1"
	defaultLocalPort     = 9999
	defaultRemoteAETitle = "ESAPI"
	defaultRemotePort    = 51402
)

type Config struct {
	Local  models.Endpoint
	Remote models.Endpoint
	Debug  bool
}

// Load builds the configuration from the ARIA_* environment variables.
// ARIA_REMOTE_HOST is required, everything else has a default.
func Load() (*Config, error) {
	remoteHost := os.Getenv("ARIA_REMOTE_HOST")
	if remoteHost == "" {
		return nil, errors.New("ARIA_REMOTE_HOST is not set")
	}
	localPort, err := getEnvInt("ARIA_LOCAL_PORT", defaultLocalPort)
	if err != nil {
		return nil, err
	}
	remotePort, err := getEnvInt("ARIA_REMOTE_PORT", defaultRemotePort)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Local:  models.NewEndpoint(getEnv("ARIA_LOCAL_AET", defaultLocalAETitle), getEnv("ARIA_LOCAL_HOST", defaultLocalHost), localPort),
		Remote: models.NewEndpoint(getEnv("ARIA_REMOTE_AET", defaultRemoteAETitle), remoteHost, remotePort),
		Debug:  os.Getenv("ARIA_DEBUG") != "",
	}
	if err := cfg.Local.Validate(); err != nil {
		return nil, fmt.Errorf("local endpoint: %w", err)
	}
	if err := cfg.Remote.Validate(); err != nil {
		return nil, fmt.Errorf("remote endpoint: %w", err)
	}
	return cfg, nil
}

func getEnv(key string, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}
