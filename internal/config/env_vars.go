package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

const (
	baseURLVar     = "HEMOGLOBIN_BASE_URL"
	timeoutVar     = "HEMOGLOBIN_TIMEOUT_MS"
	sessionFileVar = "HEMOGLOBIN_SESSION_FILE"
	appNameVar     = "APP_NAME"
)

type EnvVars struct{}

var _ EnvConfig = EnvVars{}

// GetBaseURL returns the API base URL of the Hemoglobin backend,
// including the /api prefix (e.g. "https://hemoglobin-nil.com/api").
func (EnvVars) GetBaseURL() string {
	return GetEnv(baseURLVar, "https://hemoglobin-nil.com/api")
}

// GetTimeout returns the per-request timeout. Calls that exceed it fail
// like any other network error rather than hanging.
func (EnvVars) GetTimeout() time.Duration {
	ms, err := strconv.Atoi(GetEnv(timeoutVar, "10000"))
	if err != nil || ms <= 0 {
		ms = 10000
	}
	return time.Duration(ms) * time.Millisecond
}

func (EnvVars) GetAppName() string {
	return GetEnv(appNameVar, "Hemoglobin")
}

// GetSessionFile returns the path of the persisted session blob.
func (EnvVars) GetSessionFile() string {
	if v := os.Getenv(sessionFileVar); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".hemoglobin", "session.json")
	}
	return filepath.Join(home, ".hemoglobin", "session.json")
}

func (EnvVars) GetEnv() string {
	env := os.Getenv("ENV")
	if env == "" {
		return "DEV"
	}
	return env
}

func GetEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}
