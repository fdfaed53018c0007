// config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

type ServerConfig struct {
	Port string `yaml:"port"`
	Host string `yaml:"host"` // defaults to localhost; the dashboard is not meant to be exposed
}

type DataFilesConfig struct {
	Flares   string `yaml:"flares"`   // solar_flare_data_cleaned.csv
	Sunspots string `yaml:"sunspots"` // sunspot_activity_cleaned.csv
}

type DataSourceURLsConfig struct {
	FlaresCSV   string `yaml:"flares_csv"`
	SunspotsCSV string `yaml:"sunspots_csv"`
	// InfoPage is the upstream page carrying a "last updated" notice,
	// checked before re-downloading.
	InfoPage string `yaml:"info_page"`
}

type ScraperSelectorsConfig struct {
	// LastUpdated is the CSS selector for the element containing the
	// publication date on the upstream info page.
	LastUpdated string `yaml:"last_updated"`
}

type DataConfig struct {
	// CutoffYear drops observations after this year at load time.
	// Zero disables the cutoff.
	CutoffYear int `yaml:"cutoff_year"`

	HTTPTimeoutStr string        `yaml:"http_timeout"`
	HTTPTimeout    time.Duration `yaml:"-"` // parsed from HTTPTimeoutStr
}

type Config struct {
	Server           ServerConfig           `yaml:"server"`
	DataFiles        DataFilesConfig        `yaml:"data_files"`
	DataSourceURLs   DataSourceURLsConfig   `yaml:"data_source_urls"`
	ScraperSelectors ScraperSelectorsConfig `yaml:"scraper_selectors"`
	Data             DataConfig             `yaml:"data"`
}

var AppConfig Config

// LoadConfig reads configuration from a YAML file, then applies
// SOLAR_DASH_* environment variable overrides (a .env file loaded by
// main also ends up here). A missing file falls back to defaults so the
// dashboard runs with just the two CSVs next to the binary.
func LoadConfig(configPath string) error {
	AppConfig = defaultConfig()

	if configPath == "" {
		// Try common locations relative to the working directory.
		potentialPaths := []string{
			"config.yaml",
			"config/config.yaml",
		}
		for _, p := range potentialPaths {
			if _, err := os.Stat(p); err == nil {
				configPath = p
				break
			}
		}
	}

	if configPath != "" {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
		if err := yaml.Unmarshal(file, &AppConfig); err != nil {
			return fmt.Errorf("failed to unmarshal config %s: %w", configPath, err)
		}
	}

	applyEnvOverrides(&AppConfig)

	// Parse durations
	if AppConfig.Data.HTTPTimeoutStr != "" {
		d, err := time.ParseDuration(AppConfig.Data.HTTPTimeoutStr)
		if err != nil {
			return fmt.Errorf("failed to parse data.http_timeout: %w", err)
		}
		AppConfig.Data.HTTPTimeout = d
	} else {
		AppConfig.Data.HTTPTimeout = 30 * time.Second
	}

	// Ensure the directory for downloaded CSVs exists.
	for _, p := range []string{AppConfig.DataFiles.Flares, AppConfig.DataFiles.Sunspots} {
		if dir := filepath.Dir(p); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("failed to create data directory %s: %w", dir, err)
			}
		}
	}

	return nil
}

func defaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8050",
			Host: "localhost",
		},
		DataFiles: DataFilesConfig{
			Flares:   "solar_flare_data_cleaned.csv",
			Sunspots: "sunspot_activity_cleaned.csv",
		},
		Data: DataConfig{
			CutoffYear: 2024,
		},
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("SOLAR_DASH_PORT"); v != "" {
		cfg.Server.Port = v
	}
	if v := os.Getenv("SOLAR_DASH_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("SOLAR_DASH_FLARES_CSV"); v != "" {
		cfg.DataFiles.Flares = v
	}
	if v := os.Getenv("SOLAR_DASH_SUNSPOTS_CSV"); v != "" {
		cfg.DataFiles.Sunspots = v
	}
}

// ListenAddr returns the host:port the HTTP server binds to.
func (c ServerConfig) ListenAddr() string {
	host := c.Host
	if host == "" {
		host = "localhost"
	}
	return host + ":" + c.Port
}
