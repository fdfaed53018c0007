// models/meta.go
package models

import "time"

// DataSourceStatus tracks the freshness of a downloaded CSV dataset.
// Held in memory only; the two CSV files are the sole persisted state.
type DataSourceStatus struct {
	SourceName           string     `json:"source_name"` // "flares" or "sunspots"
	SourceFileURL        string     `json:"source_file_url"`
	LocalPath            string     `json:"local_path"`
	LastCheckedOnSite    *time.Time `json:"last_checked_on_site,omitempty"` // when the source page was scraped for an update notice
	LastUpdatedOnSite    *time.Time `json:"last_updated_on_site,omitempty"` // publication date scraped from the source page
	LastDownloadedAt     *time.Time `json:"last_downloaded_at,omitempty"`
	RecordsLoaded        int        `json:"records_loaded"`
}
