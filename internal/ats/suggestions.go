package ats

import (
	"fmt"
	"strings"

	"github.com/lahori-venkatesh/fixitcv-sub000/internal/lexicon"
	"github.com/lahori-venkatesh/fixitcv-sub000/internal/types"
)

// Suggestion IDs are stable so that clients can key dismissals on them.
const (
	SuggestionAddPhone        = "add-phone"
	SuggestionAddLocation     = "add-location"
	SuggestionKeywords        = "increase-keywords"
	SuggestionAddSummary      = "add-summary"
	SuggestionAddSkills       = "add-skills"
	SuggestionMoreSkills      = "more-skills"
	SuggestionQuantify        = "quantify-achievements"
	SuggestionActionVerbs     = "action-verbs"
	SuggestionInstitutionEdge = "leverage-institution"
)

// suggestions runs every rule once, in order. Rules are independent.
func (s *Scorer) suggestions(b types.ScoreBreakdown) []types.Suggestion {
	v := s.view
	out := make([]types.Suggestion, 0, 8)

	if b.Formatting < 85 && v.phone == "" {
		out = append(out, types.Suggestion{
			ID:          SuggestionAddPhone,
			Type:        types.SuggestionWarning,
			Category:    types.CategoryFormatting,
			Title:       "Add Phone Number",
			Description: "Recruiters and ATS filters expect a phone number in the contact section.",
			Suggestion:  "Add a phone number with country code, for example +91 98765 43210.",
			Impact:      types.ImpactMedium,
		})
	}

	if b.Formatting < 85 && v.location == "" {
		out = append(out, types.Suggestion{
			ID:          SuggestionAddLocation,
			Type:        types.SuggestionInfo,
			Category:    types.CategoryFormatting,
			Title:       "Add Location",
			Description: "Many ATS searches filter candidates by city or region.",
			Suggestion:  "Add your city and country to the contact section.",
			Impact:      types.ImpactLow,
		})
	}

	if b.Keywords < 75 {
		industry := s.Industry()
		sugg := types.Suggestion{
			ID:          SuggestionKeywords,
			Type:        types.SuggestionWarning,
			Category:    types.CategoryKeywords,
			Title:       "Increase Relevant Keywords",
			Description: fmt.Sprintf("Your resume has few keywords typical of %s roles.", industry),
			Suggestion: fmt.Sprintf("Work relevant %s terms such as %s into your skills and experience.",
				industry, strings.Join(exampleMissingKeywords(v, industry, 3), ", ")),
			Impact: types.ImpactMedium,
		}
		if b.Keywords < 65 {
			sugg.Type = types.SuggestionCritical
			sugg.Impact = types.ImpactHigh
		}
		out = append(out, sugg)
	}

	if summaryTooShort(v) {
		out = append(out, types.Suggestion{
			ID:          SuggestionAddSummary,
			Type:        types.SuggestionCritical,
			Category:    types.CategoryContent,
			Title:       "Add Professional Summary",
			Description: "A summary of at least 50 characters helps both ATS parsers and recruiters place you quickly.",
			Suggestion:  "Write two or three sentences covering your role, years of experience and core skills.",
			Impact:      types.ImpactHigh,
		})
	}

	switch n := v.skillCount(); {
	case n < 3:
		out = append(out, types.Suggestion{
			ID:          SuggestionAddSkills,
			Type:        types.SuggestionCritical,
			Category:    types.CategoryStructure,
			Title:       "Add Skills Section",
			Description: "ATS filters match heavily on the skills section, and yours has fewer than three entries.",
			Suggestion:  "List at least five skills relevant to the roles you are targeting.",
			Impact:      types.ImpactHigh,
		})
	case n < 5:
		out = append(out, types.Suggestion{
			ID:          SuggestionMoreSkills,
			Type:        types.SuggestionInfo,
			Category:    types.CategoryStructure,
			Title:       "Consider Adding More Skills",
			Description: "Resumes with five or more skills match more job searches.",
			Suggestion:  "Add a few more tools, languages or domain skills you use regularly.",
			Impact:      types.ImpactLow,
		})
	}

	if v.experienceCount() > 0 && !anyLine(v.lines, hasDigit) {
		out = append(out, types.Suggestion{
			ID:          SuggestionQuantify,
			Type:        types.SuggestionInfo,
			Category:    types.CategoryContent,
			Title:       "Consider Quantifying Achievements",
			Description: "None of your experience bullets contain numbers.",
			Suggestion:  "Add metrics such as percentages, revenue or team size, for example \"Reduced load time by 40%\".",
			Impact:      types.ImpactMedium,
		})
	}

	if v.experienceCount() > 0 && actionVerbPrefixRatio(v) < 0.5 {
		out = append(out, types.Suggestion{
			ID:          SuggestionActionVerbs,
			Type:        types.SuggestionInfo,
			Category:    types.CategoryContent,
			Title:       "Consider Using More Action Verbs",
			Description: "Fewer than half of your experience bullets start with a strong action verb.",
			Suggestion:  "Start bullets with verbs such as Led, Built, Optimized or Delivered.",
			Impact:      types.ImpactLow,
		})
	}

	if s.mode == ModePremium {
		if inst := s.Institution(); inst != nil {
			if entry, ok := lexicon.LookupInstitution(inst.Type); ok {
				out = append(out, institutionSuggestion(entry))
			}
		}
	}

	return out
}

func institutionSuggestion(inst lexicon.Institution) types.Suggestion {
	industries := make([]string, len(inst.Industries))
	for i, ind := range inst.Industries {
		industries[i] = string(ind)
	}
	return types.Suggestion{
		ID:          SuggestionInstitutionEdge,
		Type:        types.SuggestionInfo,
		Category:    types.CategoryContent,
		Title:       fmt.Sprintf("Leverage Your %s Background", inst.DisplayName),
		Description: fmt.Sprintf("%s alumni are in demand for %s roles.", inst.DisplayName, strings.Join(industries, ", ")),
		Suggestion:  fmt.Sprintf("Mention your %s degree prominently in your summary and highlight campus projects.", inst.DisplayName),
		Impact:      types.ImpactMedium,
	}
}

// exampleMissingKeywords returns up to n industry keywords absent from the resume.
func exampleMissingKeywords(v *resumeView, industry types.IndustryCategory, n int) []string {
	_, missing := partitionKeywords(v.lowerText, industry)
	if len(missing) > n {
		missing = missing[:n]
	}
	return missing
}
