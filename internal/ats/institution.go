package ats

import (
	"strings"
	"unicode/utf8"

	"github.com/lahori-venkatesh/fixitcv-sub000/internal/ingestion"
	"github.com/lahori-venkatesh/fixitcv-sub000/internal/lexicon"
	"github.com/lahori-venkatesh/fixitcv-sub000/internal/types"
)

const (
	// MinInstitutionConfidence is the floor below which a match is discarded.
	MinInstitutionConfidence = 0.6

	exactMatchConfidence   = 1.0
	partialMatchScale      = 0.8
	keywordMatchConfidence = 0.6
)

// InstitutionMatch is the best institution found in the education entries.
type InstitutionMatch struct {
	Type       types.InstitutionType `json:"type"`
	Name       string                `json:"name"`
	Confidence float64               `json:"confidence"`
}

// detectInstitution scans every education entry against every known institution and
// returns the single highest-confidence match at or above the floor. Earlier entries
// win ties.
func detectInstitution(education []types.Education) *InstitutionMatch {
	var best *InstitutionMatch
	for _, edu := range education {
		name := strings.TrimSpace(edu.Institution)
		if name == "" {
			continue
		}
		for _, inst := range lexicon.Institutions() {
			conf := institutionConfidence(name, inst)
			if conf < MinInstitutionConfidence {
				continue
			}
			if best == nil || conf > best.Confidence {
				best = &InstitutionMatch{Type: inst.Type, Name: name, Confidence: conf}
			}
		}
	}
	return best
}

// institutionConfidence returns the best confidence that name refers to inst:
// exact canonical name, then substring overlap scaled by length ratio, then a
// whole-word keyword alias.
func institutionConfidence(name string, inst lexicon.Institution) float64 {
	lower := strings.ToLower(strings.TrimSpace(name))
	best := 0.0

	for _, canonical := range inst.Names {
		c := strings.ToLower(canonical)
		if lower == c {
			return exactMatchConfidence
		}
		if strings.Contains(lower, c) || strings.Contains(c, lower) {
			best = max(best, lengthRatio(lower, c)*partialMatchScale)
		}
	}

	words := ingestion.Words(lower)
	for _, kw := range inst.Keywords {
		if containsWord(words, kw) {
			best = max(best, keywordMatchConfidence)
		}
	}
	return best
}

func lengthRatio(a, b string) float64 {
	la, lb := utf8.RuneCountInString(a), utf8.RuneCountInString(b)
	if la == 0 || lb == 0 {
		return 0
	}
	if la > lb {
		la, lb = lb, la
	}
	return float64(la) / float64(lb)
}

func containsWord(words []string, word string) bool {
	for _, w := range words {
		if w == word {
			return true
		}
	}
	return false
}
