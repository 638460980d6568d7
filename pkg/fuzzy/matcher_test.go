package fuzzy

import (
	"math"
	"testing"
)

func TestLevenshteinDistance(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{"identical", "python", "python", 0},
		{"case insensitive", "Python", "pYTHON", 0},
		{"both empty", "", "", 0},
		{"one empty", "", "java", 4},
		{"single substitution", "piton", "pyton", 1},
		{"insertion", "pyton", "python", 1},
		{"unrelated", "kitten", "sitting", 3},
		{"unicode runes", "təlim", "telim", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LevenshteinDistance(tt.a, tt.b)
			if got != tt.want {
				t.Errorf("LevenshteinDistance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}

			// Distance is symmetric.
			if rev := LevenshteinDistance(tt.b, tt.a); rev != got {
				t.Errorf("distance not symmetric: %d vs %d", got, rev)
			}
		})
	}
}

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want float64
	}{
		{"identical", "python", "python", 1.0},
		{"both empty", "", "", 1.0},
		{"completely different length one", "a", "z", 0.0},
		{"one edit of six", "python", "python!", 1.0 - 1.0/7.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Similarity(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Similarity(%q, %q) = %f, want %f", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSimilarityBounds(t *testing.T) {
	pairs := [][2]string{
		{"python", "java"},
		{"", "anything"},
		{"data analitika", "data analitika kursu"},
	}
	for _, p := range pairs {
		got := Similarity(p[0], p[1])
		if got < 0.0 || got > 1.0 {
			t.Errorf("Similarity(%q, %q) = %f out of [0,1]", p[0], p[1], got)
		}
	}
}

func TestIsSimilar(t *testing.T) {
	if !IsSimilar("piton", "python", 0.6) {
		t.Error("piton/python should clear 0.6")
	}
	if IsSimilar("java", "python", 0.6) {
		t.Error("java/python should not clear 0.6")
	}
	// Threshold is inclusive.
	if !IsSimilar("abc", "abc", 1.0) {
		t.Error("identical strings should clear threshold 1.0")
	}
}

func TestFindBestMatch(t *testing.T) {
	candidates := []string{"Python Proqramlaşdırma", "Java Backend", "Data Analitika"}

	got := FindBestMatch("piton proqramlaşdırma", candidates, 0.6)
	if got != "Python Proqramlaşdırma" {
		t.Errorf("FindBestMatch = %q, want %q", got, "Python Proqramlaşdırma")
	}

	got = FindBestMatch("qqqqqqqq", candidates, 0.6)
	if got != "" {
		t.Errorf("FindBestMatch with no candidate above threshold = %q, want empty", got)
	}

	// A score exactly at the threshold is not a match.
	got = FindBestMatch("ab", []string{"ax"}, 0.5)
	if got != "" {
		t.Errorf("score equal to threshold should not match, got %q", got)
	}

	// Equal scores keep the first candidate.
	got = FindBestMatch("ab", []string{"ax", "ay"}, 0.4)
	if got != "ax" {
		t.Errorf("tie should keep first candidate, got %q", got)
	}
}

func TestCorrectCommonTypos(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"piton kursu", "python kursu"},
		{"Pyton Kursu", "python kursu"},
		{"maşın öyrənmə", "machine learning"},
		{"data analiz", "data analitika"},
		{"telim qiymətləri", "kurs qiymətləri"},
		{"python kursu", "python kursu"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := CorrectCommonTypos(tt.in)
			if got != tt.want {
				t.Errorf("CorrectCommonTypos(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
