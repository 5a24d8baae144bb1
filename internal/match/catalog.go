// Package match resolves free-text line descriptions against the product
// catalog using fuzzy string similarity.
package match

import (
	"regexp"
	"strings"

	"github.com/agext/levenshtein"
)

// Candidate is one catalog entry eligible for matching.
type Candidate struct {
	SKU  string
	Name string
}

// Result is a scored catalog hit.
type Result struct {
	SKU   string
	Name  string
	Score float64 // 0..1
}

// Matcher scores invoice descriptions against a fixed candidate set.
// Build one per catalog snapshot; it is safe for concurrent use.
type Matcher struct {
	threshold  float64
	candidates []Candidate
	normalized []string
}

const defaultThreshold = 0.75

var reMatchNoise = regexp.MustCompile(`[^a-z0-9 ]+`)

func NewMatcher(candidates []Candidate, threshold float64) *Matcher {
	if threshold <= 0 || threshold > 1 {
		threshold = defaultThreshold
	}
	m := &Matcher{
		threshold:  threshold,
		candidates: candidates,
		normalized: make([]string, len(candidates)),
	}
	for i, c := range candidates {
		m.normalized[i] = normalizeName(c.Name)
	}
	return m
}

// Best returns the highest-scoring candidate at or above the threshold,
// or ok=false when nothing in the catalog is close enough.
func (m *Matcher) Best(description string) (Result, bool) {
	query := normalizeName(description)
	if query == "" {
		return Result{}, false
	}

	best := Result{Score: -1}
	for i, norm := range m.normalized {
		if norm == "" {
			continue
		}
		score := levenshtein.Similarity(query, norm, nil)
		// Containment shortcut: a catalog name fully inside the description
		// (or vice versa) is a strong signal even when lengths differ a lot.
		if score < m.threshold && (strings.Contains(query, norm) || strings.Contains(norm, query)) {
			score = m.threshold
		}
		if score > best.Score {
			best = Result{SKU: m.candidates[i].SKU, Name: m.candidates[i].Name, Score: score}
		}
	}
	if best.Score < m.threshold {
		return Result{}, false
	}
	return best, true
}

func normalizeName(s string) string {
	s = strings.ToLower(s)
	s = reMatchNoise.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(s), " ")
}
