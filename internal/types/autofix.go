package types

// AutoFixSet is a sparse patch of ready-to-apply replacements. A nil field means
// "leave unchanged".
type AutoFixSet struct {
	Phone      *string      `json:"phone,omitempty"`
	Location   *string      `json:"location,omitempty"`
	Summary    *string      `json:"summary,omitempty"`
	Skills     []Skill      `json:"skills,omitempty"`
	// Experience is the full list when any bullet was rewritten. Descriptions of
	// rewritten entries come back as plain text, one "• " line per bullet.
	Experience []Experience `json:"experience,omitempty"`
}

// IsEmpty reports whether the patch proposes no change.
func (f *AutoFixSet) IsEmpty() bool {
	return f == nil || (f.Phone == nil && f.Location == nil && f.Summary == nil &&
		f.Skills == nil && f.Experience == nil)
}

// Fields lists the document fields the patch touches.
func (f *AutoFixSet) Fields() []string {
	if f == nil {
		return nil
	}
	var fields []string
	if f.Phone != nil {
		fields = append(fields, "phone")
	}
	if f.Location != nil {
		fields = append(fields, "location")
	}
	if f.Summary != nil {
		fields = append(fields, "summary")
	}
	if f.Skills != nil {
		fields = append(fields, "skills")
	}
	if f.Experience != nil {
		fields = append(fields, "experience")
	}
	return fields
}

// Apply returns a copy of doc with the patch merged in. doc is not modified.
func (f *AutoFixSet) Apply(doc ResumeDocument) ResumeDocument {
	out := doc
	if f == nil {
		return out
	}
	if f.Phone != nil {
		out.PersonalInfo.Phone = *f.Phone
	}
	if f.Location != nil {
		out.PersonalInfo.Location = *f.Location
	}
	if f.Summary != nil {
		out.PersonalInfo.Summary = *f.Summary
	}
	if f.Skills != nil {
		out.Skills = append([]Skill(nil), f.Skills...)
	}
	if f.Experience != nil {
		out.Experience = append([]Experience(nil), f.Experience...)
	}
	return out
}
