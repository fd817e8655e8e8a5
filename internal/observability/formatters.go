// Package observability provides formatted output for the CLI: score boxes, suggestion
// lists, auto-fix patches and the premium analysis.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/lahori-venkatesh/fixitcv-sub000/internal/db"
	"github.com/lahori-venkatesh/fixitcv-sub000/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
	// barWidth is the number of cells in a dimension bar
	barWidth = 20
)

// Printer handles formatted output for the CLI
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBanner(text string) {
	fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, text)
	fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
}

func bar(value int) string {
	filled := max(0, min(value, 100)) * barWidth / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
}

// PrintInsufficientData reports a document that did not pass the content gate.
func (p *Printer) PrintInsufficientData() {
	p.printBanner("⚠ NOT ENOUGH CONTENT TO SCORE (fill 3+ sections)")
}

// PrintATSScore outputs the overall score, the dimension bars and a header line for the
// detected industry and institution. Suggestions are printed separately.
func (p *Printer) PrintATSScore(score *types.ATSScore) {
	if score == nil {
		p.PrintInsufficientData()
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall:   %d/100\n", score.Overall))
	sb.WriteString(fmt.Sprintf("Industry:  %s\n", score.Industry))
	if score.Institution != nil {
		sb.WriteString(fmt.Sprintf("Institution: %s\n", strings.ToUpper(string(*score.Institution))))
	}
	sb.WriteString("\n")

	b := score.Breakdown
	rows := []struct {
		label string
		value int
	}{
		{"Formatting", b.Formatting},
		{"Keywords", b.Keywords},
		{"Sections", b.Sections},
		{"Readability", b.Readability},
		{"ATS compat.", b.ATSCompatibility},
	}
	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("%-12s %s %3d\n", r.label, bar(r.value), r.value))
	}

	p.printBox("ATS SCORE", strings.TrimSuffix(sb.String(), "\n"))
	p.PrintSuggestions(score.Suggestions)
}

// PrintSuggestions outputs the suggestion list, or a banner when there is none.
func (p *Printer) PrintSuggestions(suggestions []types.Suggestion) {
	if len(suggestions) == 0 {
		p.printBanner("✅ NO SUGGESTIONS")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d suggestions:\n\n", len(suggestions)))

	for i, s := range suggestions {
		icon := "ℹ"
		switch s.Type {
		case types.SuggestionCritical:
			icon = "✖"
		case types.SuggestionWarning:
			icon = "⚠"
		}
		sb.WriteString(fmt.Sprintf("%s %s [%s]\n", icon, s.Title, s.Impact))
		sb.WriteString(fmt.Sprintf("  %s\n", s.Suggestion))
		if i < len(suggestions)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("SUGGESTIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAutoFixes outputs the proposed patch field by field.
func (p *Printer) PrintAutoFixes(fixes *types.AutoFixSet) {
	if fixes == nil || fixes.IsEmpty() {
		p.printBanner("✅ NOTHING TO AUTO-FIX")
		return
	}

	var sb strings.Builder
	if fixes.Phone != nil {
		sb.WriteString(fmt.Sprintf("Phone:     %s\n", *fixes.Phone))
	}
	if fixes.Location != nil {
		sb.WriteString(fmt.Sprintf("Location:  %s\n", *fixes.Location))
	}
	if fixes.Summary != nil {
		sb.WriteString("Summary:\n")
		sb.WriteString(fmt.Sprintf("  %s\n", *fixes.Summary))
	}
	if len(fixes.Skills) > 0 {
		names := make([]string, len(fixes.Skills))
		for i, s := range fixes.Skills {
			names[i] = s.Name
		}
		sb.WriteString(fmt.Sprintf("Skills:    %d total\n", len(fixes.Skills)))
		sb.WriteString(fmt.Sprintf("  %s\n", strings.Join(names, ", ")))
	}
	if len(fixes.Experience) > 0 {
		sb.WriteString("Experience bullets:\n")
		count := min(len(fixes.Experience), maxItemsToShow)
		for i := 0; i < count; i++ {
			exp := fixes.Experience[i]
			sb.WriteString(fmt.Sprintf("  %s @ %s\n", exp.Position, exp.Company))
			for _, line := range strings.Split(exp.Description, "\n") {
				sb.WriteString(fmt.Sprintf("    %s\n", line))
			}
		}
		if len(fixes.Experience) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(fixes.Experience)-maxItemsToShow))
		}
	}

	p.printBox("AUTO-FIX PREVIEW", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAnalysis outputs the premium keyword report.
func (p *Printer) PrintAnalysis(analysis *types.DetailedAnalysis) {
	if analysis == nil {
		p.printBanner("🔒 DETAILED ANALYSIS REQUIRES PREMIUM")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Industry:  %s\n", analysis.Industry))
	sb.WriteString(fmt.Sprintf("Coverage:  %d%%\n\n", analysis.KeywordCoverage))

	if len(analysis.FoundKeywords) > 0 {
		sb.WriteString(fmt.Sprintf("Found:    %s\n", strings.Join(analysis.FoundKeywords, ", ")))
	}
	if len(analysis.MissingKeywords) > 0 {
		sb.WriteString(fmt.Sprintf("Missing:  %s\n", strings.Join(analysis.MissingKeywords, ", ")))
	}

	bm := analysis.Benchmarks
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Industry average:  %d\n", bm.AverageScore))
	sb.WriteString(fmt.Sprintf("Top percentile:    %d\n", bm.TopPercentileScore))
	sb.WriteString(fmt.Sprintf("Your percentile:   %d\n", bm.Percentile))

	p.printBox("DETAILED KEYWORD ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintScoreHistory outputs stored scores, newest first.
func (p *Printer) PrintScoreHistory(resumeID string, records []db.ScoreRecord) {
	if len(records) == 0 {
		p.printBanner(fmt.Sprintf("No stored scores for %s", resumeID))
		return
	}

	var sb strings.Builder
	for _, r := range records {
		mode := "free"
		if r.Premium {
			mode = "premium"
		}
		sb.WriteString(fmt.Sprintf("%s  %3d  %-11s %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.Overall, r.Industry, mode))
	}

	p.printBox("SCORE HISTORY: "+resumeID, strings.TrimSuffix(sb.String(), "\n"))
}
