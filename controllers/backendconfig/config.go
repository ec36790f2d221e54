// Package backendconfig resolves the browser-facing Supabase connection
// parameters: explicit env vars first, otherwise the project reference is
// extracted from the Postgres connection string.
package backendconfig

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"regexp"

	"github.com/gin-gonic/gin"
)

type Config struct {
	URL     string `json:"url"`
	AnonKey string `json:"anonKey"`
}

// The known shapes a Supabase Postgres URL embeds the project ref in.
var projectRefPatterns = []*regexp.Regexp{
	regexp.MustCompile(`postgres\.([a-z0-9-]+)\.supabase\.(?:co|com)`),
	regexp.MustCompile(`db\.([a-z0-9-]+)\.supabase\.(?:co|com)`),
	regexp.MustCompile(`@([a-z0-9-]+)\.supabase\.(?:co|com)`),
	regexp.MustCompile(`//postgres\.([a-z0-9-]+):`),
}

// ExtractProjectRef pulls the project reference out of a Supabase
// Postgres connection string.
func ExtractProjectRef(postgresURL string) (string, bool) {
	for _, pattern := range projectRefPatterns {
		if m := pattern.FindStringSubmatch(postgresURL); len(m) > 1 && m[1] != "" {
			return m[1], true
		}
	}
	return "", false
}

// Resolve determines the backend URL and anon key from the environment.
func Resolve() (Config, error) {
	anonKey := os.Getenv("SUPABASE_ANON_KEY")
	if anonKey == "" {
		return Config{}, errors.New("SUPABASE_ANON_KEY is not set")
	}

	if url := os.Getenv("SUPABASE_URL"); url != "" {
		return Config{URL: url, AnonKey: anonKey}, nil
	}

	postgresURL := os.Getenv("SUPABASE_POSTGRES_URL")
	if postgresURL == "" {
		return Config{}, errors.New("could not find Supabase configuration: set SUPABASE_URL")
	}

	ref, ok := ExtractProjectRef(postgresURL)
	if !ok {
		return Config{}, errors.New("could not extract Supabase project reference: set SUPABASE_URL")
	}

	return Config{
		URL:     fmt.Sprintf("https://%s.supabase.co", ref),
		AnonKey: anonKey,
	}, nil
}

// GetConfig serves the resolved connection parameters for browser-side use.
func GetConfig() gin.HandlerFunc {
	return func(c *gin.Context) {
		config, err := Resolve()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get Supabase configuration"})
			return
		}
		c.JSON(http.StatusOK, config)
	}
}
