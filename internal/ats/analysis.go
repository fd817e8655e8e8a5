package ats

import (
	"math"

	"github.com/lahori-venkatesh/fixitcv-sub000/internal/lexicon"
	"github.com/lahori-venkatesh/fixitcv-sub000/internal/types"
)

const maxListedKeywords = 10

// DetailedAnalysis returns the premium keyword report. It is nil in free mode and for
// documents that fail the minimum-content gate.
func (s *Scorer) DetailedAnalysis() *types.DetailedAnalysis {
	if s.mode != ModePremium {
		return nil
	}
	score := s.Score()
	if score == nil {
		return nil
	}

	industry := s.Industry()
	found, missing := partitionKeywords(s.view.lowerText, industry)
	total := len(found) + len(missing)

	coverage := 0
	if total > 0 {
		coverage = int(math.Round(float64(len(found)) / float64(total) * 100))
	}

	bench := lexicon.BenchmarkFor(industry)
	return &types.DetailedAnalysis{
		Industry:        industry,
		KeywordCoverage: coverage,
		FoundKeywords:   head(found, maxListedKeywords),
		MissingKeywords: head(missing, maxListedKeywords),
		Benchmarks: types.KeywordBenchmark{
			Industry:           industry,
			AverageScore:       bench.AverageScore,
			TopPercentileScore: bench.TopPercentileScore,
			Percentile:         lexicon.Percentile(industry, score.Overall),
		},
	}
}

// head returns at most n leading items, never nil.
func head(items []string, n int) []string {
	if len(items) > n {
		items = items[:n]
	}
	return append([]string{}, items...)
}
