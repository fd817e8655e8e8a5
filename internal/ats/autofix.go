package ats

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/lahori-venkatesh/fixitcv-sub000/internal/ingestion"
	"github.com/lahori-venkatesh/fixitcv-sub000/internal/lexicon"
	"github.com/lahori-venkatesh/fixitcv-sub000/internal/types"
)

// Placeholders are deliberately not real data; the user is expected to replace them.
const (
	PhonePlaceholder    = "[Your Phone Number]"
	LocationPlaceholder = "[City, Country]"

	summaryClosing     = "Committed to delivering measurable results and collaborating effectively with cross-functional teams."
	maxAutoFixSkills   = 8
	minSkillsForFix    = 5
	minRewriteLength   = 10
	topSkillsInSummary = 3
)

// VerbPicker chooses the action verb prepended to a bullet during auto-fix.
type VerbPicker interface {
	Pick(line string, verbs []string) string
}

// HashVerbPicker picks a verb from an FNV-1a hash of the bullet, so the same bullet
// always gets the same verb.
type HashVerbPicker struct{}

// Pick implements VerbPicker.
func (HashVerbPicker) Pick(line string, verbs []string) string {
	if len(verbs) == 0 {
		return ""
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(line))
	return verbs[h.Sum32()%uint32(len(verbs))]
}

// RandomVerbPicker picks a verb at random for stylistic variety. Repeated auto-fix
// runs produce different text.
type RandomVerbPicker struct{}

// Pick implements VerbPicker.
func (RandomVerbPicker) Pick(_ string, verbs []string) string {
	if len(verbs) == 0 {
		return ""
	}
	return verbs[rand.IntN(len(verbs))]
}

// NewVerbPicker maps a strategy name from configuration to a VerbPicker.
func NewVerbPicker(strategy string) (VerbPicker, error) {
	switch strings.ToLower(strings.TrimSpace(strategy)) {
	case "", "hash", "deterministic":
		return HashVerbPicker{}, nil
	case "random":
		return RandomVerbPicker{}, nil
	default:
		return nil, fmt.Errorf("unknown verb strategy: %q", strategy)
	}
}

// AutoFixes builds a sparse patch that would raise the score. The document is not
// modified. A document with no data at all yields an empty patch.
func (s *Scorer) AutoFixes() *types.AutoFixSet {
	v := s.view
	fixes := &types.AutoFixSet{}
	if !hasAnyData(v) {
		return fixes
	}

	if v.phone == "" {
		phone := PhonePlaceholder
		fixes.Phone = &phone
	}
	if v.location == "" {
		location := LocationPlaceholder
		fixes.Location = &location
	}

	if summaryTooShort(v) && v.jobTitle != "" && (v.experienceCount() > 0 || v.skillCount() >= 2) {
		summary := s.synthesizeSummary()
		fixes.Summary = &summary
	}

	if v.skillCount() < minSkillsForFix && (v.jobTitle != "" || v.experienceCount() > 0) {
		fixes.Skills = s.supplementSkills()
	}

	fixes.Experience = s.rewriteBullets()
	return fixes
}

func (s *Scorer) synthesizeSummary() string {
	v := s.view
	var sb strings.Builder
	sb.WriteString(v.jobTitle)

	years := experienceYears(v.doc.Experience, s.now())
	if years > 0 {
		fmt.Fprintf(&sb, " with %d+ years of experience", years)
	}

	top := v.skillNames
	if len(top) > topSkillsInSummary {
		top = top[:topSkillsInSummary]
	}
	if len(top) > 0 {
		if years > 0 {
			sb.WriteString(" in ")
		} else {
			sb.WriteString(" skilled in ")
		}
		sb.WriteString(joinWithAnd(top))
	}

	sb.WriteString(". ")
	sb.WriteString(summaryClosing)
	return sb.String()
}

// supplementSkills returns the existing skills followed by industry keywords the resume
// does not list yet, up to maxAutoFixSkills in total. Nil means nothing to add.
func (s *Scorer) supplementSkills() []types.Skill {
	have := make(map[string]bool, len(s.doc.Skills))
	for _, sk := range s.doc.Skills {
		have[ingestion.SkillKey(sk.Name)] = true
	}

	out := append([]types.Skill(nil), s.doc.Skills...)
	added := 0
	for _, kw := range lexicon.IndustryKeywords(s.Industry()) {
		if len(out) >= maxAutoFixSkills {
			break
		}
		name := ingestion.NormalizeSkillName(kw)
		key := ingestion.SkillKey(name)
		if have[key] {
			continue
		}
		have[key] = true
		out = append(out, types.Skill{
			ID:    "autofix-" + slugify(name),
			Name:  name,
			Level: types.SkillIntermediate,
		})
		added++
	}

	if added == 0 {
		return nil
	}
	return out
}

// rewriteBullets prefixes bullets lacking a leading action verb. It returns the full
// experience list with rewritten descriptions, or nil when no bullet changed. A
// rewritten description is plain text with one "• " line per bullet, so any markup in
// that entry is dropped.
func (s *Scorer) rewriteBullets() []types.Experience {
	verbs := lexicon.ActionVerbs()
	out := make([]types.Experience, len(s.doc.Experience))
	changed := false

	for i, exp := range s.doc.Experience {
		out[i] = exp
		lines := s.view.bullets[i]
		rewritten := make([]string, len(lines))
		entryChanged := false
		for j, line := range lines {
			rewritten[j] = line
			if utf8.RuneCountInString(line) <= minRewriteLength || startsWithActionVerb(line) {
				continue
			}
			verb := s.verbs.Pick(line, verbs)
			if verb == "" {
				continue
			}
			rewritten[j] = verb + " " + lowerFirst(line)
			entryChanged = true
		}
		if entryChanged {
			out[i].Description = formatBullets(rewritten)
			changed = true
		}
	}

	if !changed {
		return nil
	}
	return out
}

// experienceYears returns the whole years between the earliest start date and the
// latest end date. Current roles and open end dates run until now.
func experienceYears(experience []types.Experience, now time.Time) int {
	var earliest, latest time.Time
	for _, exp := range experience {
		start, ok := parseYearMonth(exp.StartDate)
		if !ok {
			continue
		}
		end, ok := parseYearMonth(exp.EndDate)
		if exp.Current || !ok {
			end = now
		}
		if end.Before(start) {
			continue
		}
		if earliest.IsZero() || start.Before(earliest) {
			earliest = start
		}
		if end.After(latest) {
			latest = end
		}
	}
	if earliest.IsZero() {
		return 0
	}
	months := (latest.Year()-earliest.Year())*12 + int(latest.Month()) - int(earliest.Month())
	return months / 12
}

func parseYearMonth(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if len(s) < len("2006-01") {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01", s[:len("2006-01")])
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// lowerFirst lower-cases the first letter unless the first word is an acronym.
func lowerFirst(line string) string {
	first := ingestion.FirstWord(line)
	if utf8.RuneCountInString(first) > 1 && strings.ToUpper(first) == first {
		return line
	}
	r, size := utf8.DecodeRuneInString(line)
	if r == utf8.RuneError {
		return line
	}
	return string(unicode.ToLower(r)) + line[size:]
}

func formatBullets(lines []string) string {
	var sb strings.Builder
	for i, l := range lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString("• ")
		sb.WriteString(l)
	}
	return sb.String()
}

func joinWithAnd(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	default:
		return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
	}
}

func slugify(s string) string {
	var sb strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
			dash = false
			continue
		}
		if !dash && sb.Len() > 0 {
			sb.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(sb.String(), "-")
}
