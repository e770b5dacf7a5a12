package speech

import (
	"strconv"
	"testing"
)

func TestTextFor(t *testing.T) {
	tests := []struct {
		category string
		slug     string
		want     string
	}{
		{"numbers", "1", "one"},
		{"numbers", "7", "seven"},
		{"numbers", "13", "thirteen"},
		{"numbers", "20", "twenty"},
		{"numbers", "0", "0"},    // below range, literal fallback
		{"numbers", "21", "21"},  // above range, literal fallback
		{"numbers", "-3", "-3"},  // negative, literal fallback
		{"numbers", "cat", "cat"}, // not numeric, literal fallback
		{"numbers", "", ""},
		{"letters", "b", "b"},
		{"letters", "z", "z"},
		{"colors", "red", "red"},
		{"vehicles", "fire-truck", "fire-truck"},
		{"", "7", "7"}, // unknown category, literal echo
	}

	for _, tt := range tests {
		if got := TextFor(tt.category, tt.slug); got != tt.want {
			t.Errorf("TextFor(%q, %q) = %q, want %q", tt.category, tt.slug, got, tt.want)
		}
	}
}

func TestTextFor_AllNumbersCovered(t *testing.T) {
	// Every slug in the 1..20 range must map to a word, not an echo.
	for n := 1; n <= 20; n++ {
		slug := strconv.Itoa(n)
		got := TextFor("numbers", slug)
		if got == slug || got == "" {
			t.Errorf("TextFor(numbers, %q) = %q, expected a cardinal word", slug, got)
		}
	}
}
