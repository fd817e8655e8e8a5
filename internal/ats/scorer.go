// Package ats implements the heuristic ATS scoring engine: a minimum-content gate,
// industry and institution classification, five dimension scorers, suggestions,
// auto-fixes and the premium detailed analysis.
//
// A Scorer is a short-lived session bound to one document. Classification results are
// memoized on the Scorer, so a Scorer must not be reused for a different document.
package ats

import (
	"math"
	"time"

	"github.com/lahori-venkatesh/fixitcv-sub000/internal/lexicon"
	"github.com/lahori-venkatesh/fixitcv-sub000/internal/types"
)

// ScoringMode selects free or premium scoring.
type ScoringMode int

const (
	// ModeFree is the default mode.
	ModeFree ScoringMode = iota
	// ModePremium enables the institution bonus, premium keyword credit,
	// institution suggestions and the detailed analysis.
	ModePremium
)

// String returns the mode name.
func (m ScoringMode) String() string {
	if m == ModePremium {
		return "premium"
	}
	return "free"
}

// ModeFromPremium maps a premium flag to a ScoringMode.
func ModeFromPremium(premium bool) ScoringMode {
	if premium {
		return ModePremium
	}
	return ModeFree
}

// Option configures a Scorer.
type Option func(*Scorer)

// WithClock sets the time source used for timestamps and experience durations.
func WithClock(now func() time.Time) Option {
	return func(s *Scorer) {
		if now != nil {
			s.now = now
		}
	}
}

// WithVerbPicker sets the strategy used to choose verbs when rewriting bullets.
func WithVerbPicker(p VerbPicker) Option {
	return func(s *Scorer) {
		if p != nil {
			s.verbs = p
		}
	}
}

// Scorer scores a single resume document.
type Scorer struct {
	doc   *types.ResumeDocument
	mode  ScoringMode
	now   func() time.Time
	verbs VerbPicker

	view *resumeView

	industryDone bool
	industry     types.IndustryCategory
	industryHits int

	institutionDone bool
	institution     *InstitutionMatch
}

// NewScorer creates a scoring session for doc. A nil doc is treated as empty.
func NewScorer(doc *types.ResumeDocument, mode ScoringMode, opts ...Option) *Scorer {
	if doc == nil {
		doc = &types.ResumeDocument{}
	}
	s := &Scorer{
		doc:   doc,
		mode:  mode,
		now:   time.Now,
		verbs: HashVerbPicker{},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.view = newResumeView(doc)
	return s
}

// Mode returns the scoring mode the session was created with.
func (s *Scorer) Mode() ScoringMode {
	return s.mode
}

// HasMinimumContent reports whether the document passes the minimum-content gate.
func (s *Scorer) HasMinimumContent() bool {
	return filledBuckets(s.view) >= minFilledBuckets
}

// Industry returns the detected industry. The result is computed once per session.
func (s *Scorer) Industry() types.IndustryCategory {
	s.classifyIndustry()
	return s.industry
}

// Institution returns the best institution match, or nil when nothing clears the
// confidence floor. The result is computed once per session.
func (s *Scorer) Institution() *InstitutionMatch {
	if !s.institutionDone {
		s.institution = detectInstitution(s.doc.Education)
		s.institutionDone = true
	}
	return s.institution
}

func (s *Scorer) classifyIndustry() {
	if s.industryDone {
		return
	}
	s.industry, s.industryHits = detectIndustry(s.view.lowerText)
	s.industryDone = true
}

// Breakdown computes the five dimension scores without applying the gate.
func (s *Scorer) Breakdown() types.ScoreBreakdown {
	s.classifyIndustry()
	return types.ScoreBreakdown{
		Formatting:       scoreFormatting(s.view),
		Keywords:         scoreKeywords(s.view, s.industryHits, s.mode),
		Sections:         scoreSections(s.view),
		Readability:      scoreReadability(s.view),
		ATSCompatibility: scoreATSCompatibility(s.view),
	}
}

// Score computes the ATS score, or returns nil when the document is too sparse to
// score meaningfully.
func (s *Scorer) Score() *types.ATSScore {
	if !s.HasMinimumContent() {
		return nil
	}

	breakdown := s.Breakdown()
	industry := s.Industry()
	inst := s.Institution()

	result := &types.ATSScore{
		Overall:     aggregate(breakdown, s.institutionBonus()),
		Breakdown:   breakdown,
		Industry:    industry,
		LastUpdated: s.now().UTC(),
	}
	if inst != nil {
		t := inst.Type
		result.Institution = &t
	}
	result.Suggestions = s.suggestions(breakdown)
	return result
}

// institutionBonus is non-zero only in premium mode when the detected institution
// applies to the detected industry.
func (s *Scorer) institutionBonus() int {
	if s.mode != ModePremium {
		return 0
	}
	inst := s.Institution()
	if inst == nil {
		return 0
	}
	entry, ok := lexicon.LookupInstitution(inst.Type)
	if !ok || !entry.AppliesTo(s.Industry()) {
		return 0
	}
	return entry.Bonus
}

// aggregate averages the dimensions, adds the bonus and caps the result at 100.
func aggregate(b types.ScoreBreakdown, bonus int) int {
	values := b.Values()
	sum := 0
	for _, v := range values {
		sum += v
	}
	overall := int(math.Round(float64(sum)/float64(len(values)))) + bonus
	return min(overall, 100)
}

// CalculateATSScore scores doc in a fresh session.
func CalculateATSScore(doc *types.ResumeDocument, mode ScoringMode, opts ...Option) *types.ATSScore {
	return NewScorer(doc, mode, opts...).Score()
}

// GetAutoFixes builds the auto-fix patch for doc in a fresh session.
func GetAutoFixes(doc *types.ResumeDocument, mode ScoringMode, opts ...Option) *types.AutoFixSet {
	return NewScorer(doc, mode, opts...).AutoFixes()
}

// GetDetailedAnalysis builds the premium analysis for doc in a fresh session.
func GetDetailedAnalysis(doc *types.ResumeDocument, mode ScoringMode, opts ...Option) *types.DetailedAnalysis {
	return NewScorer(doc, mode, opts...).DetailedAnalysis()
}
