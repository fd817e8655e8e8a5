package ingestion

import (
	"strings"
	"unicode"
)

// skillNormalizations maps common skill name variants to canonical names.
var skillNormalizations = map[string]string{
	"golang":      "Go",
	"go lang":     "Go",
	"js":          "JavaScript",
	"javascript":  "JavaScript",
	"ts":          "TypeScript",
	"typescript":  "TypeScript",
	"k8s":         "Kubernetes",
	"kubernetes":  "Kubernetes",
	"reactjs":     "React",
	"react.js":    "React",
	"react":       "React",
	"nodejs":      "Node.js",
	"node.js":     "Node.js",
	"aws":         "AWS",
	"sql":         "SQL",
	"api":         "API",
	"ci/cd":       "CI/CD",
	"seo":         "SEO",
	"sem":         "SEM",
	"ppc":         "PPC",
	"roi":         "ROI",
	"crm":         "CRM",
	"b2b":         "B2B",
	"etl":         "ETL",
	"nlp":         "NLP",
	"gaap":        "GAAP",
	"cfa":         "CFA",
	"cad":         "CAD",
	"plc":         "PLC",
	"mba":         "MBA",
	"phd":         "PhD",
	"p&l":         "P&L",
	"power bi":    "Power BI",
	"autocad":     "AutoCAD",
	"solidworks":  "SolidWorks",
	"matlab":      "MATLAB",
	"tensorflow":  "TensorFlow",
	"six sigma":   "Six Sigma",
	"full stack":  "Full Stack",
	"big data":    "Big Data",
	"peer-review": "Peer Review",
}

// NormalizeSkillName returns the canonical display form of a skill name. Known
// variants map through the table; other lower-case names are title-cased word by word.
func NormalizeSkillName(name string) string {
	normalized := strings.TrimSpace(whitespaceRe.ReplaceAllString(name, " "))
	if normalized == "" {
		return ""
	}

	lower := strings.ToLower(normalized)
	if canonical, ok := skillNormalizations[lower]; ok {
		return canonical
	}

	if normalized != lower {
		// Mixed or upper case was typed on purpose.
		return normalized
	}

	words := strings.Fields(lower)
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

// SkillKey returns a comparison key so that "golang", "Go" and " GO " dedupe together.
func SkillKey(name string) string {
	return strings.ToLower(NormalizeSkillName(name))
}
