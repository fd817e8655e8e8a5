package lexicon

import "strings"

// actionVerbs is the ordered list of strong verbs used for detection and for
// rewriting bullets. Order matters: verb pickers index into it.
//
//nolint:gochecknoglobals // static lexicon
var actionVerbs = []string{
	"Achieved", "Analyzed", "Architected", "Automated", "Built",
	"Collaborated", "Created", "Delivered", "Designed", "Developed",
	"Drove", "Enhanced", "Established", "Executed", "Generated",
	"Implemented", "Improved", "Increased", "Launched", "Led",
	"Managed", "Mentored", "Optimized", "Orchestrated", "Organized",
	"Reduced", "Resolved", "Spearheaded", "Streamlined", "Transformed",
}

//nolint:gochecknoglobals // derived from actionVerbs at init
var actionVerbSet = func() map[string]bool {
	set := make(map[string]bool, len(actionVerbs))
	for _, v := range actionVerbs {
		set[strings.ToLower(v)] = true
	}
	return set
}()

// ActionVerbs returns a copy of the action verb list in title case.
func ActionVerbs() []string {
	return append([]string(nil), actionVerbs...)
}

// IsActionVerb reports whether word (any case) is a recognized action verb.
func IsActionVerb(word string) bool {
	return actionVerbSet[strings.ToLower(word)]
}
