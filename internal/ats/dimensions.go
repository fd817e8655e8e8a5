package ats

import (
	"math"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/lahori-venkatesh/fixitcv-sub000/internal/ingestion"
	"github.com/lahori-venkatesh/fixitcv-sub000/internal/lexicon"
)

// Dimension floors and ceilings.
const (
	formattingBase  = 85
	formattingFloor = 70

	keywordsBase = 60

	readabilityBase  = 75
	readabilityFloor = 60

	atsBase  = 80
	atsFloor = 65

	maxScore = 100
)

var (
	emailRe      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe      = regexp.MustCompile(`^\+?[0-9\s().-]{7,20}$`)
	digitRe      = regexp.MustCompile(`[0-9]`)
	quantifiedRe = regexp.MustCompile(`(?i)\d+(\.\d+)?\s?%|\$\s?\d|\d+\+|\b(increased|decreased|improved|reduced)\b`)
)

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// scoreFormatting grades contact details.
func scoreFormatting(v *resumeView) int {
	score := formattingBase

	switch {
	case v.firstName != "" && v.lastName != "":
		score += 5
	case v.firstName != "" || v.lastName != "":
		score += 2
	default:
		score -= 10
	}

	if v.email != "" {
		score += 5
		if !emailRe.MatchString(v.email) {
			score -= 3
		}
	} else {
		score -= 15
	}

	if v.phone != "" {
		score += 3
		if !phoneRe.MatchString(v.phone) {
			score -= 2
		}
	} else {
		score -= 5
	}

	if v.location != "" {
		score += 2
	}

	return clamp(score, formattingFloor, maxScore)
}

// scoreKeywords grades industry keyword coverage and verb usage in bullets.
func scoreKeywords(v *resumeView, industryHits int, mode ScoringMode) int {
	score := float64(keywordsBase)

	switch {
	case industryHits >= 8:
		score += 25
	case industryHits >= 5:
		score += 20
	case industryHits >= 3:
		score += 15
	case industryHits >= 1:
		score += 10
	}

	switch ratio := fraction(v.lines, containsActionVerb); {
	case ratio >= 0.7:
		score += 15
	case ratio >= 0.5:
		score += 10
	case ratio >= 0.3:
		score += 5
	}

	if mode == ModePremium {
		score += math.Min(5, 0.5*float64(industryHits))
	}

	return clamp(int(math.Round(score)), 0, maxScore)
}

// scoreSections grades section completeness.
func scoreSections(v *resumeView) int {
	score := 0
	if v.hasNameAndEmail() {
		score += 20
	}
	if v.summaryLen() > 50 {
		score += 20
	}
	if v.experienceCount() > 0 {
		score += 25
		if anyLine(v.lines, hasDigit) {
			score += 10
		}
	}
	if v.educationCount() > 0 {
		score += 15
	}
	if v.skillCount() >= 5 {
		score += 10
	}
	if len(v.doc.Projects) > 0 {
		score += 5
	}
	if len(v.doc.Certifications) > 0 {
		score += 5
	}
	return min(score, maxScore)
}

// scoreReadability grades summary length and bullet quality.
func scoreReadability(v *resumeView) int {
	score := readabilityBase

	switch n := v.summaryLen(); {
	case n >= 50 && n <= 300:
		score += 15
	case n > 0:
		score += 5
	}

	for _, line := range v.lines {
		if startsWithActionVerb(line) {
			score += 2
		}
		if hasDigit(line) {
			score += 3
		}
	}

	switch ratio := fraction(v.lines, wellSized); {
	case ratio >= 0.8:
		score += 10
	case ratio >= 0.6:
		score += 5
	}

	return clamp(score, readabilityFloor, maxScore)
}

// scoreATSCompatibility grades how well the resume survives ATS parsing.
func scoreATSCompatibility(v *resumeView) int {
	score := atsBase
	if v.hasNameAndEmail() {
		score += 5
	}
	if v.experienceCount() > 0 {
		score += 10
	} else {
		score -= 15
	}
	if v.educationCount() > 0 {
		score += 5
	}
	if v.skillCount() >= 5 {
		score += 5
	}
	if anyLine(v.lines, isQuantified) {
		score += 10
	}
	if v.summaryLen() > 30 {
		score += 5
	}
	return clamp(score, atsFloor, maxScore)
}

func startsWithActionVerb(line string) bool {
	return lexicon.IsActionVerb(ingestion.FirstWord(line))
}

func containsActionVerb(line string) bool {
	for _, w := range ingestion.Words(line) {
		if lexicon.IsActionVerb(w) {
			return true
		}
	}
	return false
}

func hasDigit(line string) bool {
	return digitRe.MatchString(line)
}

func isQuantified(line string) bool {
	return quantifiedRe.MatchString(line)
}

func wellSized(line string) bool {
	n := utf8.RuneCountInString(line)
	return n >= 20 && n <= 250
}

func anyLine(lines []string, pred func(string) bool) bool {
	for _, l := range lines {
		if pred(l) {
			return true
		}
	}
	return false
}

// fraction returns the share of lines satisfying pred, or 0 for no lines.
func fraction(lines []string, pred func(string) bool) float64 {
	if len(lines) == 0 {
		return 0
	}
	n := 0
	for _, l := range lines {
		if pred(l) {
			n++
		}
	}
	return float64(n) / float64(len(lines))
}

func actionVerbPrefixRatio(v *resumeView) float64 {
	return fraction(v.lines, startsWithActionVerb)
}

// summaryTooShort reports a missing or thin summary.
func summaryTooShort(v *resumeView) bool {
	return strings.TrimSpace(v.summary) == "" || v.summaryLen() < 50
}
