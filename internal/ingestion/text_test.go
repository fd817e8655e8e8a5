package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescriptionLines_PlainBullets(t *testing.T) {
	input := "• Built the billing service\n-  Reduced   latency by 30%\r\n\n* Mentored two interns"
	lines := DescriptionLines(input)

	assert.Equal(t, []string{
		"Built the billing service",
		"Reduced latency by 30%",
		"Mentored two interns",
	}, lines)
}

func TestDescriptionLines_RichText(t *testing.T) {
	input := "<ul><li>Designed the <b>search</b> API</li><li>Cut costs by $200K</li></ul>"
	lines := DescriptionLines(input)

	assert.Equal(t, []string{"Designed the search API", "Cut costs by $200K"}, lines)
}

func TestDescriptionLines_ParagraphsAndBreaks(t *testing.T) {
	input := "<p>First line<br>Second line</p><p>Third &amp; last</p>"
	lines := DescriptionLines(input)

	assert.Equal(t, []string{"First line", "Second line", "Third & last"}, lines)
}

func TestDescriptionLines_Empty(t *testing.T) {
	assert.Nil(t, DescriptionLines(""))
	assert.Nil(t, DescriptionLines("   \n  "))
}

func TestStripHTML_PlainTextUnchanged(t *testing.T) {
	input := "Improved throughput 3x < 5 minutes"
	assert.Equal(t, input, StripHTML(input))
}

func TestCleanText(t *testing.T) {
	assert.Equal(t, "Senior engineer with Go", CleanText("<p>Senior   engineer</p>\n<p>with Go</p>"))
	assert.Equal(t, "", CleanText(""))
}

func TestFirstWord(t *testing.T) {
	assert.Equal(t, "Led", FirstWord("Led, a team of five"))
	assert.Equal(t, "Built", FirstWord("  \"Built\" stuff"))
	assert.Equal(t, "", FirstWord("   "))
}

func TestWords(t *testing.T) {
	assert.Equal(t, []string{"nit", "trichy", "class", "of"}, Words("NIT-Trichy, Class of 2019"))
}

func TestNormalizeSkillName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"golang", "Go"},
		{"  k8s ", "Kubernetes"},
		{"machine learning", "Machine Learning"},
		{"PostgreSQL", "PostgreSQL"},
		{"power  bi", "Power BI"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeSkillName(tt.input))
		})
	}
}

func TestSkillKey_Dedupes(t *testing.T) {
	assert.Equal(t, SkillKey("Go"), SkillKey("golang"))
	assert.Equal(t, SkillKey("GO"), SkillKey(" go "))
	assert.NotEqual(t, SkillKey("Java"), SkillKey("JavaScript"))
}
