// Package types provides type definitions for the resume documents and score results
// exchanged between the scoring engine, the CLI and the HTTP API.
//
//nolint:revive // types is a standard Go package name pattern
package types

// SkillLevel is the proficiency attached to a skill entry.
type SkillLevel string

const (
	SkillBeginner     SkillLevel = "Beginner"
	SkillIntermediate SkillLevel = "Intermediate"
	SkillAdvanced     SkillLevel = "Advanced"
	SkillExpert       SkillLevel = "Expert"
)

// ResumeDocument is the complete resume as edited by the user.
// The scoring engine treats it as read-only input.
type ResumeDocument struct {
	PersonalInfo   PersonalInfo    `json:"personalInfo"`
	Experience     []Experience    `json:"experience,omitempty" validate:"dive"`
	Education      []Education     `json:"education,omitempty" validate:"dive"`
	Skills         []Skill         `json:"skills,omitempty" validate:"dive"`
	Projects       []Project       `json:"projects,omitempty"`
	Certifications []Certification `json:"certifications,omitempty"`
	Achievements   []Achievement   `json:"achievements,omitempty"`
	CustomSections []CustomSection `json:"customSections,omitempty"`
}

// PersonalInfo holds contact details and the professional summary.
type PersonalInfo struct {
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email,omitempty" validate:"omitempty,max=254"`
	Phone     string `json:"phone,omitempty"`
	Location  string `json:"location,omitempty"`
	Summary   string `json:"summary,omitempty"`
	JobTitle  string `json:"jobTitle,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Website   string `json:"website,omitempty"`
}

// Experience is one position. Description holds one bullet per line and may contain
// rich-text markup from the editor.
type Experience struct {
	ID          string `json:"id,omitempty"`
	Company     string `json:"company"`
	Position    string `json:"position"`
	Location    string `json:"location,omitempty"`
	StartDate   string `json:"startDate,omitempty" validate:"omitempty,yearmonth"`
	EndDate     string `json:"endDate,omitempty" validate:"omitempty,yearmonth"`
	Current     bool   `json:"current,omitempty"`
	Description string `json:"description,omitempty"`
}

// Education is one degree or program.
type Education struct {
	ID          string `json:"id,omitempty"`
	Institution string `json:"institution"`
	Degree      string `json:"degree,omitempty"`
	Field       string `json:"field,omitempty"`
	StartDate   string `json:"startDate,omitempty" validate:"omitempty,yearmonth"`
	EndDate     string `json:"endDate,omitempty" validate:"omitempty,yearmonth"`
	GPA         string `json:"gpa,omitempty"`
}

// Skill is a named skill with a proficiency level.
type Skill struct {
	ID    string     `json:"id,omitempty"`
	Name  string     `json:"name" validate:"required"`
	Level SkillLevel `json:"level,omitempty" validate:"omitempty,oneof=Beginner Intermediate Advanced Expert"`
}

// Project is a portfolio entry.
type Project struct {
	ID           string   `json:"id,omitempty"`
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	Link         string   `json:"link,omitempty"`
}

// Certification is a credential issued by an organization.
type Certification struct {
	ID     string `json:"id,omitempty"`
	Name   string `json:"name"`
	Issuer string `json:"issuer,omitempty"`
	Date   string `json:"date,omitempty"`
}

// Achievement is a titled accomplishment.
type Achievement struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// CustomSection is a user-defined section with typed content.
type CustomSection struct {
	ID      string               `json:"id,omitempty"`
	Title   string               `json:"title"`
	Content CustomSectionContent `json:"content"`
}

// FullName returns the first and last name joined by a space, skipping blanks.
func (p PersonalInfo) FullName() string {
	switch {
	case p.FirstName != "" && p.LastName != "":
		return p.FirstName + " " + p.LastName
	case p.FirstName != "":
		return p.FirstName
	default:
		return p.LastName
	}
}
