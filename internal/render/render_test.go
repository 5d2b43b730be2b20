package render

import (
	"iter"
	"slices"
	"testing"
)

func TestList(t *testing.T) {
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"empty", List(slices.Values([]int{})), "[]"},
		{"ints", List(slices.Values([]int{1, 2, 3})), "[1, 2, 3]"},
		{"strings", List(slices.Values([]string{"Venus", "Tierra"})), `["Venus", "Tierra"]`},
	}

	for _, tt := range tests {
		if tt.got != tt.expected {
			t.Errorf("%s: expected %s, got %s", tt.name, tt.expected, tt.got)
		}
	}
}

func TestSlots(t *testing.T) {
	slots := []string{"Venus", "", ""}
	got := Slots(slots, func(i int) bool { return i < 1 })
	expected := `["Venus", None, None]`
	if got != expected {
		t.Errorf("Expected %s, got %s", expected, got)
	}
}

func TestBuckets(t *testing.T) {
	chains := [][]string{{}, {"01", "10"}, {}}
	got := Buckets(len(chains), func(bucket int) iter.Seq2[string, int] {
		return func(yield func(string, int) bool) {
			for i, k := range chains[bucket] {
				if !yield(k, i) {
					return
				}
			}
		}
	})
	expected := `[[], [("01", 0), ("10", 1)], []]`
	if got != expected {
		t.Errorf("Expected %s, got %s", expected, got)
	}
}
