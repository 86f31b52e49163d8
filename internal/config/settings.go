package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// DefaultAPIBaseURL is the public Metropolitan Museum of Art collection API.
const DefaultAPIBaseURL = "https://collectionapi.metmuseum.org/public/collection/v1"

// Settings holds the persistent configuration options.
//
// Settings are read from a JSON file and then overridden by command line
// flags. Everything that varies per run lives in Options instead.
type Settings struct {
	// API settings
	APIBaseURL            string `json:"api_base_url"`
	UserAgent             string `json:"user_agent"`
	RequestTimeoutSeconds int    `json:"request_timeout_seconds"`

	// Output settings
	DownloadsPath  string `json:"downloads_path"`
	ReportFileName string `json:"report_file_name"`
	MaxImageSize   int    `json:"max_image_size"` // 0 keeps the original bytes

	// Response cache settings
	CachePath     string `json:"cache_path"` // empty disables the cache
	CacheTTLHours int    `json:"cache_ttl_hours"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	homeDir, _ := os.UserHomeDir()
	return &Settings{
		APIBaseURL:            DefaultAPIBaseURL,
		UserAgent:             "MetDownloader",
		RequestTimeoutSeconds: 60,

		DownloadsPath:  filepath.Join(homeDir, "Pictures", "Met"),
		ReportFileName: "report.json",
		MaxImageSize:   0,

		CachePath:     "",
		CacheTTLHours: 24,
	}
}

// Load reads settings from a JSON file.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// RequestTimeout returns the per-request timeout as a duration.
func (s *Settings) RequestTimeout() time.Duration {
	if s.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(s.RequestTimeoutSeconds) * time.Second
}

// CacheTTL returns how long cached API responses stay valid.
func (s *Settings) CacheTTL() time.Duration {
	if s.CacheTTLHours <= 0 {
		return 24 * time.Hour
	}
	return time.Duration(s.CacheTTLHours) * time.Hour
}
