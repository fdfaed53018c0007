// services/data_update_service.go
package services

import (
	"fmt"
	"log"
	"time"

	"github.com/MUKILAN0608/Solar-Activity-Dashboard/dataset"
	"github.com/MUKILAN0608/Solar-Activity-Dashboard/models"
	"github.com/MUKILAN0608/Solar-Activity-Dashboard/scraper"
)

const (
	SourceFlares   = "flares"
	SourceSunspots = "sunspots"
)

// lastKnownSiteUpdates remembers the newest upstream publication date seen
// per dataset. In-memory only: the CSVs themselves are the only persisted
// state, so a restart just re-checks the site.
var lastKnownSiteUpdates = make(map[string]time.Time)

// RefreshDatasetIfNeeded scrapes the data-source info page for an update
// notice and refreshes the dataset only when the upstream publication date
// moved past what we last saw. A scrape failure is logged and treated as
// "refresh anyway": stale data is worse than a redundant download.
func RefreshDatasetIfNeeded(sourceName string) (*models.RefreshResponse, error) {
	log.Printf("Service: Checking if refresh is needed for %s dataset...\n", sourceName)

	status, err := scraper.CheckLastUpdatedOnSite(sourceName)
	if err != nil {
		log.Printf("WARN Service: Could not check update notice for %s: %v. Refreshing anyway.", sourceName, err)
		return ForceRefreshDataset(sourceName)
	}

	if status.LastUpdatedOnSite != nil {
		lastSeen, found := lastKnownSiteUpdates[sourceName]
		if found && !status.LastUpdatedOnSite.After(lastSeen) {
			log.Printf("Service: %s dataset unchanged upstream (published %s). Skipping refresh.\n",
				sourceName, status.LastUpdatedOnSite.Format("2006-01-02"))
			return &models.RefreshResponse{
				Dataset:     sourceName,
				RefreshedAt: time.Now(),
				Message:     fmt.Sprintf("upstream unchanged since %s; not refreshed", status.LastUpdatedOnSite.Format("2006-01-02")),
			}, nil
		}
	}

	resp, err := ForceRefreshDataset(sourceName)
	if err != nil {
		return nil, err
	}
	if status.LastUpdatedOnSite != nil {
		lastKnownSiteUpdates[sourceName] = *status.LastUpdatedOnSite
	}
	return resp, nil
}

// ForceRefreshDataset downloads the configured CSV for the given dataset,
// re-parses it, and swaps the in-memory table. The previous table keeps
// serving requests until the swap happens, and stays in place if any step
// fails.
func ForceRefreshDataset(sourceName string) (*models.RefreshResponse, error) {
	log.Printf("Service: Forcing refresh of %s dataset...\n", sourceName)

	var downloadFunc func() (string, error)
	var reloadFunc func(string) (int, error)

	switch sourceName {
	case SourceFlares:
		downloadFunc = scraper.DownloadFlareCsv
		reloadFunc = dataset.ReloadFlares
	case SourceSunspots:
		downloadFunc = scraper.DownloadSunspotCsv
		reloadFunc = dataset.ReloadSunspots
	default:
		return nil, fmt.Errorf("unknown dataset name for refresh: %s", sourceName)
	}

	localPath, err := downloadFunc()
	if err != nil {
		return nil, fmt.Errorf("failed to download %s CSV: %w", sourceName, err)
	}
	log.Printf("Service: Downloaded %s dataset to %s\n", sourceName, localPath)

	records, err := reloadFunc(localPath)
	if err != nil {
		return nil, fmt.Errorf("failed to reload %s dataset from %s: %w", sourceName, localPath, err)
	}

	log.Printf("Service: Successfully refreshed %s dataset (%d records).\n", sourceName, records)
	return &models.RefreshResponse{
		Dataset:     sourceName,
		Records:     records,
		RefreshedAt: time.Now(),
		Message:     "dataset refreshed",
	}, nil
}
