// Package export writes batch scoring results to an Excel workbook.
package export

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/lahori-venkatesh/fixitcv-sub000/internal/types"
)

// Sheet names
const (
	ScoresSheet      = "Scores"
	SuggestionsSheet = "Suggestions"
)

// Status values written to the Scores sheet.
const (
	StatusScored       = "scored"
	StatusInsufficient = "insufficient data"
	StatusFailed       = "failed"
)

// BatchResult is one scored (or failed) document in a batch run.
type BatchResult struct {
	Source    string
	Candidate string
	Score     *types.ATSScore
	Err       error
}

// Status reports how the document fared.
func (r BatchResult) Status() string {
	switch {
	case r.Err != nil:
		return StatusFailed
	case r.Score == nil:
		return StatusInsufficient
	default:
		return StatusScored
	}
}

var scoreHeaders = []string{
	"File", "Candidate", "Status", "Overall", "Formatting", "Keywords",
	"Sections", "Readability", "ATS Compatibility", "Industry", "Institution", "Error",
}

var suggestionHeaders = []string{"File", "ID", "Type", "Category", "Title", "Suggestion", "Impact"}

var cellBorder = []excelize.Border{
	{Type: "left", Color: "000000", Style: 1},
	{Type: "right", Color: "000000", Style: 1},
	{Type: "top", Color: "000000", Style: 1},
	{Type: "bottom", Color: "000000", Style: 1},
}

// ExportBatchReport writes results to outputPath, appending .xlsx when missing, and
// returns the path written.
func ExportBatchReport(results []BatchResult, outputPath string) (string, error) {
	if !strings.HasSuffix(strings.ToLower(outputPath), ".xlsx") {
		outputPath = outputPath + ".xlsx"
	}
	outputPath = filepath.Clean(outputPath)

	f, err := buildWorkbook(results)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := f.SaveAs(outputPath); err != nil {
		return "", fmt.Errorf("failed to save Excel file: %w", err)
	}
	return outputPath, nil
}

// WriteBatchReport streams the workbook to w.
func WriteBatchReport(w io.Writer, results []BatchResult) error {
	f, err := buildWorkbook(results)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write Excel file: %w", err)
	}
	return nil
}

func buildWorkbook(results []BatchResult) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", ScoresSheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}
	if _, err := f.NewSheet(SuggestionsSheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create suggestions sheet: %w", err)
	}

	if err := createScoresSheet(f, results); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create scores sheet: %w", err)
	}
	if err := createSuggestionsSheet(f, results); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create suggestions sheet: %w", err)
	}
	return f, nil
}

func headerStyle(f *excelize.File) (int, error) {
	return f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    cellBorder,
	})
}

func writeHeaders(f *excelize.File, sheet string, headers []string, style int) error {
	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
			return err
		}
	}
	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

// bandColor maps an overall score to the fill used for its row.
func bandColor(overall int) string {
	switch {
	case overall >= 90:
		return "C6EFCE"
	case overall >= 70:
		return "FFEB9C"
	case overall >= 50:
		return "FFC7CE"
	default:
		return "FF9999"
	}
}

func createScoresSheet(f *excelize.File, results []BatchResult) error {
	sheet := ScoresSheet
	widths := []float64{30, 22, 16, 10, 12, 10, 10, 12, 18, 14, 12, 40}
	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, col, col, w); err != nil {
			return err
		}
	}

	hs, err := headerStyle(f)
	if err != nil {
		return err
	}
	if err := writeHeaders(f, sheet, scoreHeaders, hs); err != nil {
		return err
	}

	bandStyles := map[string]int{}
	plainStyle, err := f.NewStyle(&excelize.Style{Border: cellBorder})
	if err != nil {
		return err
	}

	for i, r := range results {
		row := i + 2
		values := []any{r.Source, r.Candidate, r.Status()}
		style := plainStyle
		if r.Score != nil {
			b := r.Score.Breakdown
			institution := ""
			if r.Score.Institution != nil {
				institution = strings.ToUpper(string(*r.Score.Institution))
			}
			values = append(values,
				r.Score.Overall, b.Formatting, b.Keywords, b.Sections, b.Readability,
				b.ATSCompatibility, string(r.Score.Industry), institution, "",
			)

			color := bandColor(r.Score.Overall)
			if _, ok := bandStyles[color]; !ok {
				id, err := f.NewStyle(&excelize.Style{
					Fill:   excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
					Border: cellBorder,
				})
				if err != nil {
					return err
				}
				bandStyles[color] = id
			}
			style = bandStyles[color]
		} else {
			errText := ""
			if r.Err != nil {
				errText = r.Err.Error()
			}
			values = append(values, "", "", "", "", "", "", "", "", errText)
		}

		start := fmt.Sprintf("A%d", row)
		if err := f.SetSheetRow(sheet, start, &values); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, start, fmt.Sprintf("L%d", row), style); err != nil {
			return err
		}
	}

	if len(results) > 0 {
		if err := f.AutoFilter(sheet, fmt.Sprintf("A1:L%d", len(results)+1), []excelize.AutoFilterOptions{}); err != nil {
			return err
		}
	}
	return nil
}

func createSuggestionsSheet(f *excelize.File, results []BatchResult) error {
	sheet := SuggestionsSheet
	for col, w := range map[string]float64{"A": 30, "B": 24, "C": 10, "D": 12, "E": 36, "F": 60, "G": 10} {
		if err := f.SetColWidth(sheet, col, col, w); err != nil {
			return err
		}
	}

	hs, err := headerStyle(f)
	if err != nil {
		return err
	}
	if err := writeHeaders(f, sheet, suggestionHeaders, hs); err != nil {
		return err
	}

	wrapStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
		Border:    cellBorder,
	})
	if err != nil {
		return err
	}

	row := 2
	for _, r := range results {
		if r.Score == nil {
			continue
		}
		for _, s := range r.Score.Suggestions {
			values := []any{r.Source, s.ID, string(s.Type), string(s.Category), s.Title, s.Suggestion, string(s.Impact)}
			start := fmt.Sprintf("A%d", row)
			if err := f.SetSheetRow(sheet, start, &values); err != nil {
				return err
			}
			if err := f.SetCellStyle(sheet, start, fmt.Sprintf("G%d", row), wrapStyle); err != nil {
				return err
			}
			row++
		}
	}
	return nil
}
