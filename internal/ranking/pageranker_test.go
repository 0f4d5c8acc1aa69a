package ranking

import (
	"reflect"
	"testing"

	"github.com/Sumandeep-Kaur/Hotel-Hunt/internal/corpus"
	"github.com/Sumandeep-Kaur/Hotel-Hunt/model"
)

func TestRankedCities(t *testing.T) {
	cities := []corpus.City{
		{Name: "Paris", File: "Paris.csv"},
		{Name: "Rome", File: "Rome.csv"},
		{Name: "Berlin", File: "Berlin.csv"},
	}
	freqs := map[string]int{"paris": 12, "rome": 30, "berlin": 12}

	got := New(cities, freqs).RankedCities()
	want := []model.WordCount{
		{Word: "Rome", Count: 30},
		{Word: "Berlin", Count: 12},
		{Word: "Paris", Count: 12},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("RankedCities() = %v, want %v", got, want)
	}
}

func TestRankedCitiesMultiWordName(t *testing.T) {
	cities := []corpus.City{{Name: "New York", File: "New York.csv"}}
	freqs := map[string]int{"new": 4, "york": 6}

	got := New(cities, freqs).RankedCities()
	if got[0].Count != 10 {
		t.Errorf("New York score = %d, want 10", got[0].Count)
	}
}

func TestRankedCitiesUnknownNameScoresZero(t *testing.T) {
	cities := []corpus.City{{Name: "Atlantis", File: "Atlantis.csv"}}

	got := New(cities, map[string]int{}).RankedCities()
	if got[0].Count != 0 {
		t.Errorf("Atlantis score = %d, want 0", got[0].Count)
	}
}

func TestRankedCitiesEmpty(t *testing.T) {
	got := New(nil, nil).RankedCities()
	if len(got) != 0 {
		t.Errorf("expected empty ranking, got %v", got)
	}
}
