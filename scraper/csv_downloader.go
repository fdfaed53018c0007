// scraper/csv_downloader.go
package scraper

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/MUKILAN0608/Solar-Activity-Dashboard/config"
)

// DownloadFile is a utility function to download a file from a URL and save
// it to a local path. It returns an error if any step fails.
func DownloadFile(url string, localSavePath string) error {
	log.Printf("Attempting to download file from URL: %s to local path: %s\n", url, localSavePath)

	timeout := config.AppConfig.Data.HTTPTimeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	client := http.Client{Timeout: timeout}

	resp, err := client.Get(url)
	if err != nil {
		return fmt.Errorf("failed to make GET request to %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to download file from %s: received status code %d", url, resp.StatusCode)
	}

	// Ensure the directory for the local save path exists
	dir := filepath.Dir(localSavePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	// Write to a temp file first so a failed download never clobbers the
	// dataset the running dashboard was loaded from.
	tmpFile, err := os.CreateTemp(dir, filepath.Base(localSavePath)+".download-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file in %s: %w", dir, err)
	}
	tmpPath := tmpFile.Name()

	if _, err := io.Copy(tmpFile, resp.Body); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to copy downloaded content to %s: %w", tmpPath, err)
	}
	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file %s: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, localSavePath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to move downloaded file into place at %s: %w", localSavePath, err)
	}

	log.Printf("Successfully downloaded %s to %s\n", url, localSavePath)
	return nil
}

// DownloadFlareCsv downloads the flare observation CSV from the URL
// specified in the config and saves it to the configured local path.
// It returns the local path of the downloaded file or an error.
func DownloadFlareCsv() (string, error) {
	flareURL := config.AppConfig.DataSourceURLs.FlaresCSV
	localPath := config.AppConfig.DataFiles.Flares

	if flareURL == "" {
		return "", fmt.Errorf("flare CSV URL is not configured")
	}
	if localPath == "" {
		return "", fmt.Errorf("local save path for flare CSV is not configured")
	}

	if err := DownloadFile(flareURL, localPath); err != nil {
		return "", fmt.Errorf("failed to download flare CSV: %w", err)
	}
	return localPath, nil
}

// DownloadSunspotCsv downloads the monthly sunspot CSV from the URL
// specified in the config and saves it to the configured local path.
// It returns the local path of the downloaded file or an error.
func DownloadSunspotCsv() (string, error) {
	sunspotURL := config.AppConfig.DataSourceURLs.SunspotsCSV
	localPath := config.AppConfig.DataFiles.Sunspots

	if sunspotURL == "" {
		return "", fmt.Errorf("sunspot CSV URL is not configured")
	}
	if localPath == "" {
		return "", fmt.Errorf("local save path for sunspot CSV is not configured")
	}

	if err := DownloadFile(sunspotURL, localPath); err != nil {
		return "", fmt.Errorf("failed to download sunspot CSV: %w", err)
	}
	return localPath, nil
}
