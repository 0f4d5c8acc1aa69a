package trie

import (
	"reflect"
	"testing"
)

func TestInsertAndHasWord(t *testing.T) {
	tr := New()
	tr.Insert("hotel paris")
	tr.Insert("hotel")

	if !tr.HasWord("hotel") {
		t.Error("expected 'hotel' to be a stored word")
	}
	if !tr.HasWord("hotel paris") {
		t.Error("expected 'hotel paris' to be a stored word")
	}
	if tr.HasWord("hote") {
		t.Error("'hote' is only a prefix, not a stored word")
	}
	if tr.HasWord("paris") {
		t.Error("'paris' was never inserted")
	}
}

func TestInsertIgnoresInvalidCharacters(t *testing.T) {
	tr := New()
	tr.Insert("h0tel")
	tr.Insert("café")
	tr.Insert("Hotel")

	if tr.Len() != 0 {
		t.Errorf("expected no words stored, got %d", tr.Len())
	}
}

func TestInsertDuplicateCountsOnce(t *testing.T) {
	tr := New()
	tr.Insert("rome")
	tr.Insert("rome")

	if tr.Len() != 1 {
		t.Errorf("expected 1 word, got %d", tr.Len())
	}
}

func TestWordsWithPrefix(t *testing.T) {
	tr := New()
	for _, w := range []string{"paris", "park hyatt", "parma", "rome", "park"} {
		tr.Insert(w)
	}

	tests := []struct {
		name   string
		prefix string
		want   []string
	}{
		{"shared prefix", "par", []string{"paris", "park", "park hyatt", "parma"}},
		{"exact word is included", "rome", []string{"rome"}},
		{"no matches", "berlin", []string{}},
		{"empty prefix returns all", "", []string{"paris", "park", "park hyatt", "parma", "rome"}},
		{"invalid character", "par!s", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tr.WordsWithPrefix(tt.prefix)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("WordsWithPrefix(%q) = %v, want %v", tt.prefix, got, tt.want)
			}
		})
	}
}

func TestWordsWithPrefixOrderIsLetterThenSpace(t *testing.T) {
	tr := New()
	tr.Insert("park plaza")
	tr.Insert("parka")

	got := tr.WordsWithPrefix("park")
	want := []string{"parka", "park plaza"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("WordsWithPrefix(%q) = %v, want %v", "park", got, want)
	}
}

func TestEmptyTrie(t *testing.T) {
	tr := New()
	if got := tr.WordsWithPrefix("a"); len(got) != 0 {
		t.Errorf("expected no results, got %v", got)
	}
	if got := tr.WordsWithPrefix(""); len(got) != 0 {
		t.Errorf("expected no results for empty prefix, got %v", got)
	}
}
