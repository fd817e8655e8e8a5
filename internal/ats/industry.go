package ats

import (
	"strings"

	"github.com/lahori-venkatesh/fixitcv-sub000/internal/lexicon"
	"github.com/lahori-venkatesh/fixitcv-sub000/internal/types"
)

// detectIndustry returns the industry whose keyword list has the most hits in
// lowerText, with its hit count. Ties go to the earlier category; no hits at all
// yields software.
func detectIndustry(lowerText string) (types.IndustryCategory, int) {
	best := types.IndustrySoftware
	bestHits := 0
	for _, ind := range types.IndustryCategories() {
		hits := keywordHits(lowerText, ind)
		if hits > bestHits {
			best, bestHits = ind, hits
		}
	}
	return best, bestHits
}

// keywordHits counts how many of the industry's keywords occur in lowerText.
func keywordHits(lowerText string, industry types.IndustryCategory) int {
	found, _ := partitionKeywords(lowerText, industry)
	return len(found)
}

// partitionKeywords splits the industry keyword list into those present in lowerText
// and those missing, both in lexicon order.
func partitionKeywords(lowerText string, industry types.IndustryCategory) (found, missing []string) {
	for _, kw := range lexicon.IndustryKeywords(industry) {
		if strings.Contains(lowerText, kw) {
			found = append(found, kw)
		} else {
			missing = append(missing, kw)
		}
	}
	return found, missing
}
