package lexicon

import "github.com/lahori-venkatesh/fixitcv-sub000/internal/types"

// Benchmark is a hardcoded reference point for an industry. The numbers are product
// constants, not aggregates of real resumes.
type Benchmark struct {
	AverageScore       int
	TopPercentileScore int
}

//nolint:gochecknoglobals // static lexicon
var benchmarks = map[types.IndustryCategory]Benchmark{
	types.IndustrySoftware:    {AverageScore: 72, TopPercentileScore: 91},
	types.IndustryMarketing:   {AverageScore: 68, TopPercentileScore: 88},
	types.IndustryFinance:     {AverageScore: 70, TopPercentileScore: 90},
	types.IndustryConsulting:  {AverageScore: 71, TopPercentileScore: 92},
	types.IndustryData:        {AverageScore: 73, TopPercentileScore: 92},
	types.IndustryResearch:    {AverageScore: 66, TopPercentileScore: 87},
	types.IndustryEngineering: {AverageScore: 69, TopPercentileScore: 89},
	types.IndustryBusiness:    {AverageScore: 67, TopPercentileScore: 88},
}

// percentileSteps maps a minimum score delta over the industry average to a
// percentile rank. Checked top down.
//
//nolint:gochecknoglobals // static lexicon
var percentileSteps = []struct {
	delta      int
	percentile int
}{
	{delta: 20, percentile: 95},
	{delta: 15, percentile: 90},
	{delta: 10, percentile: 80},
	{delta: 5, percentile: 70},
	{delta: 0, percentile: 50},
	{delta: -10, percentile: 30},
}

// BenchmarkFor returns the benchmark for industry, falling back to software.
func BenchmarkFor(industry types.IndustryCategory) Benchmark {
	if b, ok := benchmarks[industry]; ok {
		return b
	}
	return benchmarks[types.IndustrySoftware]
}

// Percentile places score relative to the industry's average.
func Percentile(industry types.IndustryCategory, score int) int {
	delta := score - BenchmarkFor(industry).AverageScore
	for _, step := range percentileSteps {
		if delta >= step.delta {
			return step.percentile
		}
	}
	return 10
}
