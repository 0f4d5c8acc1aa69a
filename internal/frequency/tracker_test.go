package frequency

import (
	"errors"
	"testing"

	apperrors "github.com/Sumandeep-Kaur/Hotel-Hunt/internal/errors"
	"github.com/Sumandeep-Kaur/Hotel-Hunt/model"
)

func TestSearchAndUpdateNewKeyword(t *testing.T) {
	tr := NewTracker(1, 50)

	got, err := tr.SearchAndUpdate("paris")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 1 {
		t.Errorf("first search = %d, want 1", got)
	}
}

func TestSearchAndUpdateIncrements(t *testing.T) {
	tr := NewTracker(1, 50)

	if _, err := tr.SearchAndUpdate("paris"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := tr.SearchAndUpdate("paris")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 2 {
		t.Errorf("second search = %d, want 2", got)
	}
}

func TestSearchAndUpdateProperPrefixUntouched(t *testing.T) {
	tr := NewTracker(1, 50)

	if _, err := tr.SearchAndUpdate("paris"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := tr.SearchAndUpdate("par")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0 {
		t.Errorf("proper prefix search = %d, want 0", got)
	}

	// The stored keyword must be unaffected.
	top, err := tr.TopSearches(5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(top) != 1 || top[0].Word != "paris" || top[0].Count != 1 {
		t.Errorf("TopSearches = %v, want [{paris 1}]", top)
	}
}

func TestSearchAndUpdateCleansKeyword(t *testing.T) {
	tr := NewTracker(1, 50)

	if _, err := tr.SearchAndUpdate("Par!s"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := tr.SearchAndUpdate("pars")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 2 {
		t.Errorf("cleaned keyword should match: got %d, want 2", got)
	}
}

func TestSearchAndUpdateValidation(t *testing.T) {
	tr := NewTracker(1, 50)

	for _, kw := range []string{"", "a", "1", "!!"} {
		if _, err := tr.SearchAndUpdate(kw); !errors.Is(err, apperrors.ErrInvalidInput) {
			t.Errorf("SearchAndUpdate(%q): got %v, want ErrInvalidInput", kw, err)
		}
	}
}

func TestSeedFromHotels(t *testing.T) {
	tr := NewTracker(5, 5) // fixed weight, no randomness
	tr.SeedFromHotels([]model.Hotel{
		{"Location": "Paris France"},
		{"location": "Rome"},
	}, "Location")

	top, err := tr.TopSearches(10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := map[string]int{"paris": 5, "france": 5, "rome": 5}
	if len(top) != len(want) {
		t.Fatalf("TopSearches = %v, want %d terms", top, len(want))
	}
	for _, wc := range top {
		if want[wc.Word] != wc.Count {
			t.Errorf("seeded %s = %d, want %d", wc.Word, wc.Count, want[wc.Word])
		}
	}
}

func TestSeedWeightsWithinRange(t *testing.T) {
	tr := NewTracker(1, 50)
	tr.Seed(42)
	tr.SeedFromHotels([]model.Hotel{{"Location": "Amsterdam"}}, "Location")

	top, err := tr.TopSearches(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(top) != 1 {
		t.Fatalf("TopSearches = %v, want one term", top)
	}
	if top[0].Count < 1 || top[0].Count > 50 {
		t.Errorf("seed weight %d outside [1, 50]", top[0].Count)
	}
}

func TestTopSearchesOrdering(t *testing.T) {
	tr := NewTracker(1, 50)
	for i := 0; i < 3; i++ {
		if _, err := tr.SearchAndUpdate("rome"); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := tr.SearchAndUpdate("paris"); err != nil {
		t.Fatal(err)
	}
	if _, err := tr.SearchAndUpdate("amsterdam"); err != nil {
		t.Fatal(err)
	}

	top, err := tr.TopSearches(10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("TopSearches = %v, want 3 terms", top)
	}
	if top[0].Word != "rome" || top[0].Count != 3 {
		t.Errorf("top term = %v, want {rome 3}", top[0])
	}
	// Equal counts come back alphabetically.
	if top[1].Word != "amsterdam" || top[2].Word != "paris" {
		t.Errorf("tie order = %s, %s; want amsterdam, paris", top[1].Word, top[2].Word)
	}
}

func TestTopSearchesValidation(t *testing.T) {
	tr := NewTracker(1, 50)
	if _, err := tr.TopSearches(-1); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Errorf("TopSearches(-1): got %v, want ErrInvalidInput", err)
	}
}
