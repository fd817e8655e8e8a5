package lexicon

import "github.com/lahori-venkatesh/fixitcv-sub000/internal/types"

// Institution describes a recognized institution brand.
type Institution struct {
	Type types.InstitutionType
	// DisplayName is used in suggestions.
	DisplayName string
	// Names are canonical full names, compared case-insensitively.
	Names []string
	// Keywords are short aliases matched as whole words.
	Keywords []string
	// Bonus is added to the overall score in premium mode.
	Bonus int
	// Industries lists where the bonus applies.
	Industries []types.IndustryCategory
}

// AppliesTo reports whether the institution bonus applies to industry.
func (i Institution) AppliesTo(industry types.IndustryCategory) bool {
	for _, ind := range i.Industries {
		if ind == industry {
			return true
		}
	}
	return false
}

//nolint:gochecknoglobals // static lexicon
var institutions = []Institution{
	{
		Type:        types.InstitutionIIT,
		DisplayName: "IIT",
		Names: []string{
			"Indian Institute of Technology",
			"IIT Bombay", "IIT Delhi", "IIT Madras", "IIT Kanpur", "IIT Kharagpur",
			"IIT Roorkee", "IIT Guwahati", "IIT Hyderabad", "IIT BHU",
			"Indian Institute of Technology Bombay", "Indian Institute of Technology Delhi",
			"Indian Institute of Technology Madras", "Indian Institute of Technology Kanpur",
			"Indian Institute of Technology Kharagpur",
		},
		Keywords:   []string{"iit"},
		Bonus:      5,
		Industries: []types.IndustryCategory{types.IndustrySoftware, types.IndustryEngineering, types.IndustryData, types.IndustryResearch},
	},
	{
		Type:        types.InstitutionIIM,
		DisplayName: "IIM",
		Names: []string{
			"Indian Institute of Management",
			"IIM Ahmedabad", "IIM Bangalore", "IIM Calcutta", "IIM Lucknow",
			"IIM Kozhikode", "IIM Indore",
			"Indian Institute of Management Ahmedabad", "Indian Institute of Management Bangalore",
			"Indian Institute of Management Calcutta",
		},
		Keywords:   []string{"iim"},
		Bonus:      6,
		Industries: []types.IndustryCategory{types.IndustryBusiness, types.IndustryConsulting, types.IndustryFinance, types.IndustryMarketing},
	},
	{
		Type:        types.InstitutionNIT,
		DisplayName: "NIT",
		Names: []string{
			"National Institute of Technology",
			"NIT Trichy", "NIT Warangal", "NIT Surathkal", "NIT Calicut", "NIT Rourkela",
			"National Institute of Technology Tiruchirappalli", "National Institute of Technology Warangal",
			"National Institute of Technology Karnataka",
		},
		Keywords:   []string{"nit"},
		Bonus:      3,
		Industries: []types.IndustryCategory{types.IndustrySoftware, types.IndustryEngineering, types.IndustryData},
	},
	{
		Type:        types.InstitutionBITS,
		DisplayName: "BITS",
		Names: []string{
			"Birla Institute of Technology and Science",
			"BITS Pilani", "BITS Goa", "BITS Hyderabad",
			"Birla Institute of Technology and Science, Pilani",
		},
		Keywords:   []string{"bits"},
		Bonus:      4,
		Industries: []types.IndustryCategory{types.IndustrySoftware, types.IndustryEngineering, types.IndustryData, types.IndustryFinance},
	},
}

// Institutions returns the institution table in lookup order.
func Institutions() []Institution {
	return append([]Institution(nil), institutions...)
}

// LookupInstitution returns the table entry for t.
func LookupInstitution(t types.InstitutionType) (Institution, bool) {
	for _, inst := range institutions {
		if inst.Type == t {
			return inst, true
		}
	}
	return Institution{}, false
}
