package tokenizer

import (
	"reflect"
	"testing"
)

func TestWords(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty string", "", []string{}},
		{"simple lowercase", "hotel paris", []string{"hotel", "paris"}},
		{"with punctuation", "paris, france!", []string{"paris", "france"}},
		{"digits dropped", "room 101 deluxe", []string{"room", "deluxe"}},
		{"mixed case", "Grand HOTEL Palace", []string{"grand", "hotel", "palace"}},
		{"letters inside numbers", "4star9", []string{"star"}},
		{"only symbols", "!@#$%", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Words(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Words(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIndexTokens(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty string", "", []string{}},
		{"alphanumeric kept", "room 101", []string{"room", "101"}},
		{"punctuation split", "bed&breakfast", []string{"bed", "breakfast"}},
		{"lowercased", "Paris", []string{"paris"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IndexTokens(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("IndexTokens(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty string", "", ""},
		{"already clean", "grand hotel", "grand hotel"},
		{"trimmed and lowercased", "  Grand Hotel  ", "grand hotel"},
		{"symbols and digits removed", "H0tel-Par!s 2024", "htelpars "},
		{"inner spaces preserved", "le petit palais", "le petit palais"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCleanKeyword(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty string", "", ""},
		{"plain word", "paris", "paris"},
		{"uppercase", "PARIS", "paris"},
		{"digits and symbols removed", "par-1s!", "pars"},
		{"spaces removed", "new york", "newyork"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanKeyword(tt.input); got != tt.want {
				t.Errorf("CleanKeyword(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPrefixNGrams(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  []string
	}{
		{"empty token", "", []string{}},
		{"single character", "a", []string{"a"}},
		{"short token", "cat", []string{"c", "ca", "cat"}},
		{"longer token", "paris", []string{"p", "pa", "par", "pari", "paris"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PrefixNGrams(tt.token)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("PrefixNGrams(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}
