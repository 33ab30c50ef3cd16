package cli

import (
	"os"
	"path/filepath"
	"strings"
)

// Config holds CLI configuration
type Config struct {
	ServerURL   string
	ProfileID   string
	ProfileFile string
	Output      string
	Verbose     bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL:   getEnvOrDefault("MINDCARE_SERVER", "http://localhost:8080"),
		ProfileID:   os.Getenv("MINDCARE_PROFILE"),
		ProfileFile: getEnvOrDefault("MINDCARE_PROFILE_FILE", defaultProfileFile()),
		Output:      "text",
		Verbose:     false,
	}
}

// LoadProfile loads the profile ID from file if not already set
func (c *Config) LoadProfile() error {
	if c.ProfileID != "" {
		return nil
	}

	data, err := os.ReadFile(c.ProfileFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // No profile yet is fine
		}
		return err
	}

	c.ProfileID = strings.TrimSpace(string(data))
	return nil
}

// SaveProfile saves the profile ID to the profile file
func (c *Config) SaveProfile(id string) error {
	c.ProfileID = id

	dir := filepath.Dir(c.ProfileFile)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	return os.WriteFile(c.ProfileFile, []byte(id), 0600)
}

func defaultProfileFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".mindcare/profile"
	}
	return filepath.Join(home, ".mindcare", "profile")
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
