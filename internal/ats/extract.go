package ats

import (
	"strings"
	"unicode/utf8"

	"github.com/lahori-venkatesh/fixitcv-sub000/internal/ingestion"
	"github.com/lahori-venkatesh/fixitcv-sub000/internal/types"
)

// resumeView is the pre-digested form of a document shared by all scorers.
type resumeView struct {
	doc *types.ResumeDocument

	firstName string
	lastName  string
	email     string
	phone     string
	location  string
	jobTitle  string
	summary   string

	// bullets holds the cleaned description lines per experience entry.
	bullets [][]string
	// lines is bullets flattened in document order.
	lines []string

	skillNames []string

	text      string
	lowerText string
}

func newResumeView(doc *types.ResumeDocument) *resumeView {
	p := doc.PersonalInfo
	v := &resumeView{
		doc:       doc,
		firstName: strings.TrimSpace(p.FirstName),
		lastName:  strings.TrimSpace(p.LastName),
		email:     strings.TrimSpace(p.Email),
		phone:     strings.TrimSpace(p.Phone),
		location:  strings.TrimSpace(p.Location),
		jobTitle:  strings.TrimSpace(p.JobTitle),
		summary:   ingestion.CleanText(p.Summary),
	}

	v.bullets = make([][]string, len(doc.Experience))
	for i, exp := range doc.Experience {
		v.bullets[i] = ingestion.DescriptionLines(exp.Description)
		v.lines = append(v.lines, v.bullets[i]...)
	}

	for _, sk := range doc.Skills {
		if name := strings.TrimSpace(sk.Name); name != "" {
			v.skillNames = append(v.skillNames, name)
		}
	}

	v.text = extractText(v)
	v.lowerText = strings.ToLower(v.text)
	return v
}

// extractText flattens the document into one space-joined blob in a fixed order:
// summary, job title, experience, education, skills, custom sections.
func extractText(v *resumeView) string {
	parts := []string{v.summary, v.jobTitle}

	for i, exp := range v.doc.Experience {
		parts = append(parts, exp.Company, exp.Position)
		parts = append(parts, v.bullets[i]...)
	}

	for _, edu := range v.doc.Education {
		parts = append(parts, edu.Degree+" "+edu.Field+" "+edu.Institution)
	}

	parts = append(parts, v.skillNames...)

	for _, cs := range v.doc.CustomSections {
		parts = append(parts, customSectionText(cs.Content)...)
	}

	return strings.Join(parts, " ")
}

func customSectionText(c types.CustomSectionContent) []string {
	switch c.Kind {
	case types.ContentText:
		return []string{ingestion.CleanText(c.Text)}
	case types.ContentList:
		return c.Items
	case types.ContentAchievements:
		out := make([]string, 0, len(c.Achievements)*2)
		for _, a := range c.Achievements {
			out = append(out, a.Title, a.Description)
		}
		return out
	default:
		return nil
	}
}

func (v *resumeView) hasNameAndEmail() bool {
	return v.firstName != "" && v.email != ""
}

func (v *resumeView) summaryLen() int {
	return utf8.RuneCountInString(v.summary)
}

func (v *resumeView) skillCount() int {
	return len(v.skillNames)
}

func (v *resumeView) experienceCount() int {
	return len(v.doc.Experience)
}

func (v *resumeView) educationCount() int {
	return len(v.doc.Education)
}
