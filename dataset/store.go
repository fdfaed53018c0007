// dataset/store.go
package dataset

import (
	"fmt"
	"log"
	"os"
	"sort"
	"sync"

	"github.com/MUKILAN0608/Solar-Activity-Dashboard/config"
	"github.com/MUKILAN0608/Solar-Activity-Dashboard/models"
	"github.com/MUKILAN0608/Solar-Activity-Dashboard/scraper"
)

// Store holds the two loaded tables. They are read-only after load; the
// admin refresh flow is the only writer and swaps a whole table at once
// under the mutex, so request handlers never observe a partial reload.
type Store struct {
	mu       sync.RWMutex
	flares   []models.FlareRecord
	sunspots []models.SunspotRecord
	meta     models.DatasetMeta
}

var store = &Store{}

// Init loads both CSV datasets from the configured paths. A missing or
// unreadable file is fatal to the caller: the dashboard cannot serve
// without its data.
func Init(cfg config.DataFilesConfig) error {
	flares, err := loadFlares(cfg.Flares)
	if err != nil {
		return fmt.Errorf("failed to load flare dataset: %w", err)
	}
	sunspots, err := loadSunspots(cfg.Sunspots)
	if err != nil {
		return fmt.Errorf("failed to load sunspot dataset: %w", err)
	}

	store.mu.Lock()
	store.flares = flares
	store.sunspots = sunspots
	store.meta = buildMeta(flares, sunspots)
	store.mu.Unlock()

	log.Printf("Dataset: Loaded %d flare records and %d sunspot records.\n", len(flares), len(sunspots))
	return nil
}

// Flares returns the loaded flare table. Callers must treat the returned
// slice as read-only.
func Flares() []models.FlareRecord {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return store.flares
}

// Sunspots returns the loaded sunspot table. Callers must treat the
// returned slice as read-only.
func Sunspots() []models.SunspotRecord {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return store.sunspots
}

// Meta returns the data bounds and category lists computed at load time.
func Meta() models.DatasetMeta {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return store.meta
}

// ReloadFlares re-parses the flare CSV at the given path and swaps it in.
// Returns the number of records loaded.
func ReloadFlares(path string) (int, error) {
	flares, err := loadFlares(path)
	if err != nil {
		return 0, err
	}
	store.mu.Lock()
	store.flares = flares
	store.meta = buildMeta(store.flares, store.sunspots)
	store.mu.Unlock()
	log.Printf("Dataset: Reloaded flare table, now %d records.\n", len(flares))
	return len(flares), nil
}

// ReloadSunspots re-parses the sunspot CSV at the given path and swaps it in.
// Returns the number of records loaded.
func ReloadSunspots(path string) (int, error) {
	sunspots, err := loadSunspots(path)
	if err != nil {
		return 0, err
	}
	store.mu.Lock()
	store.sunspots = sunspots
	store.meta = buildMeta(store.flares, store.sunspots)
	store.mu.Unlock()
	log.Printf("Dataset: Reloaded sunspot table, now %d records.\n", len(sunspots))
	return len(sunspots), nil
}

func loadFlares(path string) ([]models.FlareRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open flare CSV %s: %w", path, err)
	}
	defer file.Close()

	records, err := scraper.ParseFlareCsv(file)
	if err != nil {
		return nil, err
	}

	records = applyFlareCutoff(records, config.AppConfig.Data.CutoffYear)
	sort.Slice(records, func(i, j int) bool {
		return records[i].ObservationDate.Before(records[j].ObservationDate)
	})
	if len(records) == 0 {
		return nil, fmt.Errorf("flare CSV %s has no rows on or before the cutoff year", path)
	}
	return records, nil
}

func loadSunspots(path string) ([]models.SunspotRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sunspot CSV %s: %w", path, err)
	}
	defer file.Close()

	records, err := scraper.ParseSunspotCsv(file)
	if err != nil {
		return nil, err
	}

	records = applySunspotCutoff(records, config.AppConfig.Data.CutoffYear)
	sort.Slice(records, func(i, j int) bool {
		return records[i].Date.Before(records[j].Date)
	})
	if len(records) == 0 {
		return nil, fmt.Errorf("sunspot CSV %s has no rows on or before the cutoff year", path)
	}
	return records, nil
}

// applyFlareCutoff drops observations after the configured cutoff year.
// The upstream datasets carry provisional rows past it.
func applyFlareCutoff(records []models.FlareRecord, cutoffYear int) []models.FlareRecord {
	if cutoffYear == 0 {
		return records
	}
	kept := records[:0]
	for _, r := range records {
		if r.ObservationDate.Year() <= cutoffYear {
			kept = append(kept, r)
		}
	}
	return kept
}

func applySunspotCutoff(records []models.SunspotRecord, cutoffYear int) []models.SunspotRecord {
	if cutoffYear == 0 {
		return records
	}
	kept := records[:0]
	for _, r := range records {
		if r.Year <= cutoffYear {
			kept = append(kept, r)
		}
	}
	return kept
}

func buildMeta(flares []models.FlareRecord, sunspots []models.SunspotRecord) models.DatasetMeta {
	meta := models.DatasetMeta{
		FlareClasses:   models.AllFlareClasses,
		CyclePhases:    models.AllCyclePhases,
		MagneticTypes:  models.AllMagneticTypes,
		FlareRecords:   len(flares),
		SunspotRecords: len(sunspots),
	}
	if len(flares) == 0 {
		return meta
	}

	minDate := flares[0].ObservationDate
	maxDate := flares[0].ObservationDate
	minSunspots := flares[0].SunspotCount
	maxSunspots := flares[0].SunspotCount
	for _, r := range flares[1:] {
		if r.ObservationDate.Before(minDate) {
			minDate = r.ObservationDate
		}
		if r.ObservationDate.After(maxDate) {
			maxDate = r.ObservationDate
		}
		if r.SunspotCount < minSunspots {
			minSunspots = r.SunspotCount
		}
		if r.SunspotCount > maxSunspots {
			maxSunspots = r.SunspotCount
		}
	}

	meta.MinDate = minDate.Format(models.CSVDateLayout)
	meta.MaxDate = maxDate.Format(models.CSVDateLayout)
	meta.SunspotMin = minSunspots
	meta.SunspotMax = maxSunspots
	return meta
}
