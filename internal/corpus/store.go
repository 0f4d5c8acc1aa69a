// Package corpus loads the per-city hotel data files and serves the
// plain listing operations that do not go through an index.
package corpus

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	apperrors "github.com/Sumandeep-Kaur/Hotel-Hunt/internal/errors"
	"github.com/Sumandeep-Kaur/Hotel-Hunt/internal/logger"
	"github.com/Sumandeep-Kaur/Hotel-Hunt/model"
)

// City is one loaded data file: the city name (the file's base name)
// and the hotels parsed from it.
type City struct {
	Name   string
	File   string
	Hotels []model.Hotel
}

// Store holds the loaded corpus. It is immutable after Load and safe
// for concurrent use.
type Store struct {
	dir    string
	cities []City
	hotels []model.Hotel
	logger *log.Logger
}

// Empty returns a Store with no data, used when the corpus directory
// is unavailable.
func Empty() *Store {
	return &Store{logger: logger.New("corpus")}
}

// Load reads every CSV file in dir. The first row of each file is the
// header; rows whose column count does not match the header are
// skipped with a warning, and unreadable files are skipped rather than
// failing the whole load. Load fails only when the directory itself
// cannot be read.
func Load(dir string) (*Store, error) {
	lg := logger.New("corpus")

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, apperrors.NewCorpusError(dir, err)
	}

	s := &Store{dir: dir, logger: lg}
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".csv") {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		hotels, err := loadFile(path, lg)
		if err != nil {
			lg.Warn("skipping unreadable data file", "file", entry.Name(), "error", err)
			continue
		}

		name := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		s.cities = append(s.cities, City{Name: name, File: entry.Name(), Hotels: hotels})
		s.hotels = append(s.hotels, hotels...)
	}

	lg.Info("corpus loaded", "dir", dir, "cities", len(s.cities), "hotels", len(s.hotels))
	return s, nil
}

func loadFile(path string, lg *log.Logger) ([]model.Hotel, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	header := rows[0]
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	hotels := make([]model.Hotel, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if len(row) != len(header) {
			lg.Warn("skipping malformed row", "file", filepath.Base(path), "row", i+2,
				"columns", len(row), "expected", len(header))
			continue
		}
		hotel := make(model.Hotel, len(header))
		for j, col := range header {
			hotel[col] = row[j]
		}
		hotels = append(hotels, hotel)
	}
	return hotels, nil
}

// Hotels returns every loaded hotel, in file order.
func (s *Store) Hotels() []model.Hotel {
	return s.hotels
}

// Cities returns the loaded city files in directory order.
func (s *Store) Cities() []City {
	return s.cities
}

// HotelsByCity returns the hotels of the named city, matched
// case-insensitively against the data file names. An unknown city
// yields an empty list, not an error.
func (s *Store) HotelsByCity(city string) ([]model.Hotel, error) {
	name := strings.TrimSpace(city)
	if name == "" {
		return nil, apperrors.NewValidationError("city", "city must not be empty")
	}

	for _, c := range s.cities {
		if strings.EqualFold(c.Name, name) {
			return c.Hotels, nil
		}
	}
	return []model.Hotel{}, nil
}

// HotelsSortedByRating returns every hotel ordered by descending
// rating. Hotels with a missing or unparsable rating sort last,
// keeping their relative load order.
func (s *Store) HotelsSortedByRating() ([]model.Hotel, error) {
	sorted := make([]model.Hotel, len(s.hotels))
	copy(sorted, s.hotels)

	sort.SliceStable(sorted, func(i, j int) bool {
		ri, oki := sorted[i].Rating()
		rj, okj := sorted[j].Rating()
		if oki != okj {
			return oki
		}
		return ri > rj
	})
	return sorted, nil
}
