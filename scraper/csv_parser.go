// scraper/csv_parser.go
package scraper

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/jszwec/csvutil"

	"github.com/MUKILAN0608/Solar-Activity-Dashboard/models"
)

// ParseFlareCsv takes an io.Reader containing CSV data for daily flare
// observations and returns a slice of FlareRecord structs.
//
// csvutil assumes the first line is a header and maps it to struct fields
// via the `csv:"..."` tags on models.FlareRecord. Rows whose
// observation_date fails to parse are skipped with a warning; they are a
// data-quality problem in the upstream file, not a reason to refuse the
// whole dataset. A file that yields zero usable rows is an error.
func ParseFlareCsv(reader io.Reader) ([]models.FlareRecord, error) {
	decoder, err := csvutil.NewDecoder(csv.NewReader(reader))
	if err != nil {
		return nil, fmt.Errorf("failed to create CSV decoder for flare data: %w", err)
	}

	var records []models.FlareRecord
	skipped := 0
	for {
		var rec models.FlareRecord
		if err := decoder.Decode(&rec); err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("failed to decode flare CSV row: %w", err)
		}

		date, err := time.Parse(models.CSVDateLayout, rec.RawObservationDate)
		if err != nil {
			log.Printf("WARN Scraper: Skipping flare row with bad observation_date %q: %v", rec.RawObservationDate, err)
			skipped++
			continue
		}
		rec.ObservationDate = date
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("flare CSV contained no usable rows (%d skipped)", skipped)
	}
	if skipped > 0 {
		log.Printf("Scraper: Skipped %d flare rows with unparseable dates.", skipped)
	}
	log.Printf("Successfully parsed %d flare records from CSV.\n", len(records))
	return records, nil
}

// ParseSunspotCsv takes an io.Reader containing CSV data for monthly
// sunspot numbers and returns a slice of SunspotRecord structs. The
// record Date is derived as the first day of (year, month), matching
// how the monthly series is plotted.
func ParseSunspotCsv(reader io.Reader) ([]models.SunspotRecord, error) {
	decoder, err := csvutil.NewDecoder(csv.NewReader(reader))
	if err != nil {
		return nil, fmt.Errorf("failed to create CSV decoder for sunspot data: %w", err)
	}

	var records []models.SunspotRecord
	skipped := 0
	for {
		var rec models.SunspotRecord
		if err := decoder.Decode(&rec); err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("failed to decode sunspot CSV row: %w", err)
		}

		if rec.Month < 1 || rec.Month > 12 || rec.Year == 0 {
			log.Printf("WARN Scraper: Skipping sunspot row with bad year/month %d/%d", rec.Year, rec.Month)
			skipped++
			continue
		}
		rec.Date = time.Date(rec.Year, time.Month(rec.Month), 1, 0, 0, 0, 0, time.UTC)
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("sunspot CSV contained no usable rows (%d skipped)", skipped)
	}
	if skipped > 0 {
		log.Printf("Scraper: Skipped %d sunspot rows with bad year/month values.", skipped)
	}
	log.Printf("Successfully parsed %d sunspot records from CSV.\n", len(records))
	return records, nil
}
