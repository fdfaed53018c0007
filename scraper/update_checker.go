// scraper/update_checker.go
package scraper

import (
	"fmt"
	"log"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/MUKILAN0608/Solar-Activity-Dashboard/config"
	"github.com/MUKILAN0608/Solar-Activity-Dashboard/models"
)

// Regex to find dates in the form "Last update: 01 June 2024" used by the
// SILSO/NOAA data pages.
var lastUpdatedRegex = regexp.MustCompile(`[Ll]ast updated?\s*:?\s+(\d{1,2}\s+\w+\s+\d{4}|\d{4}-\d{2}-\d{2})`)

// Date layouts the update notice has been observed in.
var noticeDateLayouts = []string{"2 January 2006", "2006-01-02"}

// parseLastUpdatedString extracts the publication date from a scraped text
// block using lastUpdatedRegex.
func parseLastUpdatedString(textToSearch string) (updated time.Time, rawMatch string, err error) {
	matches := lastUpdatedRegex.FindStringSubmatch(textToSearch)
	if len(matches) < 2 {
		err = fmt.Errorf("could not find 'last update' notice in provided text block. Text searched: %s", textToSearch)
		return
	}

	rawMatch = matches[0]
	dateString := strings.TrimSpace(matches[1])

	for _, layout := range noticeDateLayouts {
		if updated, err = time.Parse(layout, dateString); err == nil {
			return updated, rawMatch, nil
		}
	}
	err = fmt.Errorf("failed to parse 'last update' date %q", dateString)
	return
}

// CheckLastUpdatedOnSite scrapes the configured data-source info page,
// looks inside the configured container selector, and extracts the
// publication date of the datasets. The refresh service uses it to skip
// a re-download when the upstream data has not moved.
func CheckLastUpdatedOnSite(sourceName string) (*models.DataSourceStatus, error) {
	pageURL := config.AppConfig.DataSourceURLs.InfoPage
	containerSelector := config.AppConfig.ScraperSelectors.LastUpdated

	if pageURL == "" {
		return nil, fmt.Errorf("data source info page URL is not configured")
	}
	if containerSelector == "" {
		containerSelector = "body"
	}

	log.Printf("Scraper: Checking last update for %s from %s (container: '%s')\n", sourceName, pageURL, containerSelector)

	client := http.Client{Timeout: config.AppConfig.Data.HTTPTimeout}
	res, err := client.Get(pageURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch info page %s: %w", pageURL, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("info page %s returned status code %d", pageURL, res.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse info page HTML: %w", err)
	}

	containerText := strings.TrimSpace(doc.Find(containerSelector).Text())
	if containerText == "" {
		return nil, fmt.Errorf("selector '%s' matched no text on %s. QC: verify the CSS selector", containerSelector, pageURL)
	}

	updated, rawMatch, err := parseLastUpdatedString(containerText)
	if err != nil {
		return nil, fmt.Errorf("failed to extract update notice for %s: %w", sourceName, err)
	}

	now := time.Now()
	log.Printf("Scraper: %s source page says %q (parsed as %s)\n", sourceName, rawMatch, updated.Format("2006-01-02"))

	return &models.DataSourceStatus{
		SourceName:        sourceName,
		SourceFileURL:     pageURL,
		LastCheckedOnSite: &now,
		LastUpdatedOnSite: &updated,
	}, nil
}
