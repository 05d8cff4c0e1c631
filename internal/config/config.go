// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// AppConfig holds all application-wide configurations.
type AppConfig struct {
	ServerPort         string
	FreeTodoLimit      int      // Max todos a non-pro user may hold before creation is refused
	CORSAllowedOrigins []string // Origins allowed by the CORS layer
}

// LoadConfig loads configuration from environment variables.
// It returns an AppConfig instance or an error if any variable is invalid.
func LoadConfig() (*AppConfig, error) {
	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080" // Default port
	}

	freeTodoLimit := 10 // Default free-tier quota
	if limitStr := os.Getenv("FREE_TODO_LIMIT"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 0 {
			return nil, fmt.Errorf("invalid FREE_TODO_LIMIT: %q", limitStr)
		}
		freeTodoLimit = limit
	}

	allowedOrigins := []string{"*"} // Permissive by default, matching a public demo API
	if originsStr := os.Getenv("CORS_ALLOWED_ORIGINS"); originsStr != "" {
		allowedOrigins = nil
		for _, origin := range strings.Split(originsStr, ",") {
			allowedOrigins = append(allowedOrigins, strings.TrimSpace(origin))
		}
	}

	return &AppConfig{
		ServerPort:         serverPort,
		FreeTodoLimit:      freeTodoLimit,
		CORSAllowedOrigins: allowedOrigins,
	}, nil
}
