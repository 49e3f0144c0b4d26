package config

import (
	"os"
	"path/filepath"
)

const defaultAPIURL = "http://localhost:8080"
const tokenFileName = ".market_token"

// APIURL returns the base URL for the marketplace API.
// It can be overridden with the MARKET_API_URL environment variable.
func APIURL() string {
	if v := os.Getenv("MARKET_API_URL"); v != "" {
		return v
	}
	return defaultAPIURL
}

// SaveToken stores the bearer token for later commands, readable only by the owner.
func SaveToken(token string) error {
	return os.WriteFile(tokenPath(), []byte(token), 0600)
}

func LoadToken() (string, error) {
	data, err := os.ReadFile(tokenPath())
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func ClearToken() error {
	return os.Remove(tokenPath())
}

func TokenExists() bool {
	_, err := os.Stat(tokenPath())
	return err == nil
}

func tokenPath() string {
	dir, _ := os.UserHomeDir()
	return filepath.Join(dir, tokenFileName)
}
