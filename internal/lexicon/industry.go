// Package lexicon holds the static keyword, action-verb, institution and benchmark
// tables used by the ATS scoring engine. The tables are read-only after package init.
package lexicon

import "github.com/lahori-venkatesh/fixitcv-sub000/internal/types"

// industryKeywords maps each industry to its ordered keyword list. Keywords are lower
// case and matched as substrings of the lower-cased resume text.
//
//nolint:gochecknoglobals // static lexicon
var industryKeywords = map[types.IndustryCategory][]string{
	types.IndustrySoftware: {
		"javascript", "python", "java", "react", "node.js", "typescript", "aws",
		"docker", "kubernetes", "microservices", "api", "git", "agile", "sql",
		"ci/cd", "cloud", "backend", "frontend", "full stack", "golang",
	},
	types.IndustryMarketing: {
		"seo", "sem", "content marketing", "social media", "google analytics",
		"campaign", "brand", "digital marketing", "email marketing", "conversion",
		"market research", "copywriting", "ppc", "engagement", "roi",
	},
	types.IndustryFinance: {
		"financial analysis", "financial modeling", "valuation", "excel", "budgeting",
		"forecasting", "accounting", "investment", "portfolio", "risk management",
		"equity", "audit", "gaap", "cfa", "banking",
	},
	types.IndustryConsulting: {
		"strategy", "stakeholder", "client", "consulting", "business transformation",
		"process improvement", "due diligence", "change management", "workshop",
		"problem solving", "deliverables", "engagement management", "benchmarking",
		"market entry", "operating model",
	},
	types.IndustryData: {
		"machine learning", "data analysis", "statistics", "pandas", "tensorflow",
		"data visualization", "tableau", "power bi", "deep learning", "nlp",
		"big data", "spark", "etl", "data pipeline", "predictive modeling",
	},
	types.IndustryResearch: {
		"research", "publication", "journal", "peer-reviewed", "thesis",
		"experiment", "hypothesis", "laboratory", "conference", "grant",
		"literature review", "methodology", "citation", "phd", "patent",
	},
	types.IndustryEngineering: {
		"autocad", "solidworks", "cad", "manufacturing", "mechanical", "electrical",
		"civil", "design", "prototype", "matlab", "simulation", "quality control",
		"six sigma", "lean", "plc",
	},
	types.IndustryBusiness: {
		"business development", "sales", "revenue", "operations", "management",
		"leadership", "negotiation", "crm", "b2b", "partnerships", "p&l",
		"market analysis", "growth", "customer acquisition", "mba",
	},
}

// IndustryKeywords returns a copy of the keyword list for an industry. Unknown
// industries yield nil.
func IndustryKeywords(industry types.IndustryCategory) []string {
	kws, ok := industryKeywords[industry]
	if !ok {
		return nil
	}
	return append([]string(nil), kws...)
}

// IsIndustry reports whether s names a known industry category.
func IsIndustry(s string) bool {
	_, ok := industryKeywords[types.IndustryCategory(s)]
	return ok
}
