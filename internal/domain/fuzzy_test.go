package domain

import "testing"

func TestScore(t *testing.T) {
	tests := []struct {
		name     string
		haystack string
		pattern  string
		want     int
	}{
		{
			name:     "substring match",
			haystack: "Deep Learning Course",
			pattern:  "deep",
			want:     ExactMatchScore,
		},
		{
			name:     "substring ignores case",
			haystack: "PROMPT ENGINEERING",
			pattern:  "Engine",
			want:     ExactMatchScore,
		},
		{
			name:     "empty pattern",
			haystack: "anything",
			pattern:  "",
			want:     ExactMatchScore,
		},
		{
			name:     "scattered subsequence",
			haystack: "axbxc",
			pattern:  "abc",
			want:     300,
		},
		{
			name:     "partly consecutive subsequence",
			haystack: "abxc",
			pattern:  "abc",
			want:     310, // 100 + (100+10) + 100
		},
		{
			name:     "skip resets bonus",
			haystack: "abc",
			pattern:  "ac",
			want:     200,
		},
		{
			name:     "case insensitive subsequence",
			haystack: "ABXC",
			pattern:  "abc",
			want:     310,
		},
		{
			name:     "out of order",
			haystack: "cba",
			pattern:  "abc",
			want:     0,
		},
		{
			name:     "no match",
			haystack: "Prompt Engineering Guide",
			pattern:  "zzzzz",
			want:     0,
		},
		{
			name:     "pattern longer than haystack",
			haystack: "ab",
			pattern:  "abc",
			want:     0,
		},
		{
			name:     "multibyte runes",
			haystack: "café crème",
			pattern:  "écè",
			want:     300,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.haystack, tt.pattern); got != tt.want {
				t.Errorf("Score(%q, %q) = %d, want %d", tt.haystack, tt.pattern, got, tt.want)
			}
		})
	}
}

func TestScore_MatchesSubsequencePredicate(t *testing.T) {
	haystacks := []string{"", "abc", "Machine Learning", "a-b-c", "Go Concurrency Patterns"}
	patterns := []string{"a", "abc", "ml", "cba", "gcp", "zz", "learning", "GO"}

	for _, h := range haystacks {
		for _, p := range patterns {
			scored := Score(h, p) > 0
			matched := IsSubsequenceMatch(h, p)
			if scored != matched {
				t.Errorf("haystack %q pattern %q: Score>0 = %v, IsSubsequenceMatch = %v", h, p, scored, matched)
			}
		}
	}
}

func TestScore_ContiguityOrdering(t *testing.T) {
	pattern := "learn"

	substring := Score("machine learning", pattern)
	tight := Score("l-earn", pattern)
	loose := Score("l-e-a-r-n", pattern)

	if substring != ExactMatchScore {
		t.Errorf("substring score = %d, want %d", substring, ExactMatchScore)
	}
	if tight <= loose {
		t.Errorf("tighter match should score higher: %d <= %d", tight, loose)
	}
	if substring <= tight {
		t.Errorf("substring should dominate subsequence: %d <= %d", substring, tight)
	}
}

func TestIsSubsequenceMatch(t *testing.T) {
	tests := []struct {
		haystack string
		pattern  string
		want     bool
	}{
		{"Prompt Engineering Guide", "peg", true},
		{"Prompt Engineering Guide", "PEG", true},
		{"Prompt Engineering Guide", "gep", false},
		{"abc", "", true},
		{"", "a", false},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.haystack+"/"+tt.pattern, func(t *testing.T) {
			if got := IsSubsequenceMatch(tt.haystack, tt.pattern); got != tt.want {
				t.Errorf("IsSubsequenceMatch(%q, %q) = %v, want %v", tt.haystack, tt.pattern, got, tt.want)
			}
		})
	}
}

func TestRank(t *testing.T) {
	records := []Record{
		{Name: "Random Notes", Description: "nothing here"},
		{Name: "Deep Learning Course", Category: "AI"},
		{Name: "D-e-e-p dive", Category: "Misc"},
		{Name: "Cooking", Description: "recipes"},
	}

	ranked := Rank(records, "deep")

	if len(ranked) != 2 {
		t.Fatalf("expected 2 ranked records, got %d", len(ranked))
	}
	if ranked[0].Record.Name != "Deep Learning Course" {
		t.Errorf("expected substring match first, got %q", ranked[0].Record.Name)
	}
	if ranked[0].Score != ExactMatchScore {
		t.Errorf("expected score %d, got %d", ExactMatchScore, ranked[0].Score)
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i].Score > ranked[i-1].Score {
			t.Errorf("results not sorted by score: %d > %d at index %d", ranked[i].Score, ranked[i-1].Score, i)
		}
	}
}

func TestRank_KeepsInputOrderOnTies(t *testing.T) {
	records := []Record{
		{Name: "Go A"},
		{Name: "Go B"},
		{Name: "Go C"},
	}

	ranked := Rank(records, "go")
	for i, want := range []string{"Go A", "Go B", "Go C"} {
		if ranked[i].Record.Name != want {
			t.Errorf("index %d: got %q, want %q", i, ranked[i].Record.Name, want)
		}
	}
}
