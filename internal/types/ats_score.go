package types

import "time"

// IndustryCategory is the industry a resume is classified into.
type IndustryCategory string

// Declaration order is the classifier's tie-break order.
const (
	IndustrySoftware    IndustryCategory = "software"
	IndustryMarketing   IndustryCategory = "marketing"
	IndustryFinance     IndustryCategory = "finance"
	IndustryConsulting  IndustryCategory = "consulting"
	IndustryData        IndustryCategory = "data"
	IndustryResearch    IndustryCategory = "research"
	IndustryEngineering IndustryCategory = "engineering"
	IndustryBusiness    IndustryCategory = "business"
)

// IndustryCategories lists every category in tie-break order.
func IndustryCategories() []IndustryCategory {
	return []IndustryCategory{
		IndustrySoftware,
		IndustryMarketing,
		IndustryFinance,
		IndustryConsulting,
		IndustryData,
		IndustryResearch,
		IndustryEngineering,
		IndustryBusiness,
	}
}

// InstitutionType is a recognized institution brand.
type InstitutionType string

const (
	InstitutionIIT  InstitutionType = "iit"
	InstitutionIIM  InstitutionType = "iim"
	InstitutionNIT  InstitutionType = "nit"
	InstitutionBITS InstitutionType = "bits"
)

// SuggestionType is the severity of a suggestion.
type SuggestionType string

const (
	SuggestionCritical SuggestionType = "critical"
	SuggestionWarning  SuggestionType = "warning"
	SuggestionInfo     SuggestionType = "info"
)

// SuggestionCategory groups suggestions for display.
type SuggestionCategory string

const (
	CategoryFormatting SuggestionCategory = "formatting"
	CategoryContent    SuggestionCategory = "content"
	CategoryKeywords   SuggestionCategory = "keywords"
	CategoryStructure  SuggestionCategory = "structure"
)

// Impact estimates how much acting on a suggestion moves the score.
type Impact string

const (
	ImpactHigh   Impact = "high"
	ImpactMedium Impact = "medium"
	ImpactLow    Impact = "low"
)

// ScoreBreakdown holds the five dimension scores.
type ScoreBreakdown struct {
	Formatting       int `json:"formatting"`
	Keywords         int `json:"keywords"`
	Sections         int `json:"sections"`
	Readability      int `json:"readability"`
	ATSCompatibility int `json:"atsCompatibility"`
}

// Values returns the dimension scores in a fixed order.
func (b ScoreBreakdown) Values() []int {
	return []int{b.Formatting, b.Keywords, b.Sections, b.Readability, b.ATSCompatibility}
}

// Suggestion is one actionable recommendation.
type Suggestion struct {
	ID          string             `json:"id"`
	Type        SuggestionType     `json:"type"`
	Category    SuggestionCategory `json:"category"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Suggestion  string             `json:"suggestion"`
	Impact      Impact             `json:"impact"`
}

// ATSScore is the result of scoring one resume.
type ATSScore struct {
	Overall     int              `json:"overall"`
	Breakdown   ScoreBreakdown   `json:"breakdown"`
	Suggestions []Suggestion     `json:"suggestions"`
	Institution *InstitutionType `json:"institution"`
	Industry    IndustryCategory `json:"industry"`
	LastUpdated time.Time        `json:"lastUpdated"`
}

// KeywordBenchmark is the static reference data shown next to a detailed analysis.
type KeywordBenchmark struct {
	Industry           IndustryCategory `json:"industry"`
	AverageScore       int              `json:"averageScore"`
	TopPercentileScore int              `json:"topPercentileScore"`
	Percentile         int              `json:"percentile"`
}

// DetailedAnalysis is the premium keyword report.
type DetailedAnalysis struct {
	Industry        IndustryCategory `json:"industry"`
	KeywordCoverage int              `json:"keywordCoverage"`
	FoundKeywords   []string         `json:"foundKeywords"`
	MissingKeywords []string         `json:"missingKeywords"`
	Benchmarks      KeywordBenchmark `json:"benchmarks"`
}
