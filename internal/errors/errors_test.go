package errors

import (
	"strings"
	"testing"
)

// ── CheckError formatting ──

func TestFormatWithPosition(t *testing.T) {
	e := &CheckError{Code: "SR-8", Message: "bad target", File: "app.swan", Line: 4, Column: 3}
	got := e.Format()
	if !strings.Contains(got, "app.swan:4:3") {
		t.Errorf("expected file:line:col, got %q", got)
	}
	if !strings.Contains(got, "[SR-8]") {
		t.Errorf("expected rule code, got %q", got)
	}
}

func TestFormatWithoutPosition(t *testing.T) {
	e := &CheckError{Code: "SR-1", Message: "no app", File: "app.swan"}
	got := e.Format()
	if strings.Contains(got, ":0:0") {
		t.Errorf("zero position should not be printed: %q", got)
	}
}

// ── Collection ──

func TestCollectionAccumulates(t *testing.T) {
	ce := New("app.swan")
	if ce.HasErrors() {
		t.Error("new collection should be empty")
	}
	ce.AddError("SR-1", "no app")
	ce.AddErrorAt("SR-6", "duplicate page", 3, 1)
	ce.AddErrorWithSuggestion("SR-2", "bad entry", `Did you mean "Home"?`, 1, 1)
	if !ce.HasErrors() {
		t.Fatal("expected errors")
	}
	if len(ce.Errors()) != 3 {
		t.Fatalf("expected 3 errors, got %d", len(ce.Errors()))
	}
}

func TestCollectionInheritsFile(t *testing.T) {
	ce := New("app.swan")
	ce.AddError("SR-1", "no app")
	if ce.Errors()[0].File != "app.swan" {
		t.Errorf("expected inherited file, got %q", ce.Errors()[0].File)
	}
}

func TestCollectionFormatIncludesSuggestions(t *testing.T) {
	ce := New("app.swan")
	ce.AddErrorWithSuggestion("SR-2", "bad entry", `Did you mean "Home"?`, 1, 1)
	out := ce.Format()
	if !strings.Contains(out, "suggestion:") {
		t.Errorf("expected suggestion line, got %q", out)
	}
}

// ── Similarity ──

func TestEditDistanceBasics(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"abc", "abc", 0},
		{"abc", "abd", 1},
		{"abc", "ab", 1},
		{"Home", "Hom", 1},
	}
	for _, c := range cases {
		if got := editDistance(c.a, c.b); got != c.want {
			t.Errorf("editDistance(%q, %q) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestTranspositionCountsAsOneEdit(t *testing.T) {
	if got := editDistance("Hoem", "Home"); got != 1 {
		t.Errorf("expected transposition distance 1, got %d", got)
	}
}

func TestSimilarityIgnoresCase(t *testing.T) {
	if got := Similarity("home", "HOME"); got != 1.0 {
		t.Errorf("expected 1.0, got %f", got)
	}
}

func TestFindClosest(t *testing.T) {
	candidates := []string{"Home", "Catalog", "Orders"}
	if got := FindClosest("Hme", candidates, 0.6); got != "Home" {
		t.Errorf("expected 'Home', got %q", got)
	}
	if got := FindClosest("Catalgo", candidates, 0.6); got != "Catalog" {
		t.Errorf("expected 'Catalog', got %q", got)
	}
	if got := FindClosest("zzz", candidates, 0.6); got != "" {
		t.Errorf("expected no suggestion, got %q", got)
	}
}

func TestFindClosestEmptyCandidates(t *testing.T) {
	if got := FindClosest("anything", nil, 0.6); got != "" {
		t.Errorf("expected empty result, got %q", got)
	}
}
