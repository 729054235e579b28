package source

import "testing"

func TestStaticFuzzyMatches(t *testing.T) {
	s := NewStatic([]string{"checkout", "cherry-pick", "commit", "rebase"})
	got := s.Complete("ch", 10)
	if len(got) < 2 {
		t.Fatalf("got %v, want checkout and cherry-pick matched", got)
	}
	words := map[string]bool{}
	for _, sug := range got {
		words[sug.Word] = true
	}
	if !words["checkout"] || !words["cherry-pick"] {
		t.Fatalf("matches %v missing expected candidates", got)
	}
}

func TestStaticFuzzySkipsNonMatches(t *testing.T) {
	s := NewStatic([]string{"commit", "rebase"})
	if got := s.Complete("zzz", 10); len(got) != 0 {
		t.Fatalf("got %v for non-matching term, want none", got)
	}
}

func TestStaticEmptyTerm(t *testing.T) {
	s := NewStatic([]string{"commit"})
	if got := s.Complete("", 10); got != nil {
		t.Fatalf("got %v for empty term, want nil", got)
	}
}

func TestStaticRespectsLimit(t *testing.T) {
	s := NewStatic([]string{"aa", "aab", "aac", "aad"})
	if got := s.Complete("aa", 2); len(got) != 2 {
		t.Fatalf("got %d matches with limit 2", len(got))
	}
}
