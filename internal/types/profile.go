// Package types provides type definitions for structured profile data used throughout the resume-extractor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Substitute start dates applied when an entry's date is missing or invalid.
const (
	DefaultExperienceStartDate = "2020-01-01"
	DefaultEducationStartDate  = "2018-01-01"
)

// PersonalInfo holds contact and header information extracted from a resume.
// Optional fields are pointers so that "missing" serializes as JSON null,
// matching the completion-service output contract.
type PersonalInfo struct {
	FullName *string `json:"fullName"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
	Website  *string `json:"website"`
	LinkedIn *string `json:"linkedin"`
	GitHub   *string `json:"github"`
	Title    *string `json:"title"`
	Summary  *string `json:"summary"`
}

// ExperienceEntry represents a single work history entry.
// A nil EndDate means the role is ongoing.
type ExperienceEntry struct {
	Company     string   `json:"company"`
	Position    string   `json:"position"`
	StartDate   string   `json:"start_date"`
	EndDate     *string  `json:"end_date"`
	Description string   `json:"company_description"`
	Highlights  []string `json:"highlights"`
}

// EducationEntry represents a single education entry.
type EducationEntry struct {
	Institution string  `json:"institution"`
	Degree      string  `json:"degree"`
	Field       string  `json:"field"`
	StartDate   string  `json:"start_date"`
	EndDate     *string `json:"end_date"`
	Description string  `json:"description,omitempty"`
}

// SkillEntry represents a named skill with a proficiency level.
type SkillEntry struct {
	Name  string     `json:"name"`
	Level SkillLevel `json:"level"`
}

// LanguageEntry represents a spoken language with a proficiency level.
type LanguageEntry struct {
	Name  string        `json:"name"`
	Level LanguageLevel `json:"level"`
}

// ProjectEntry represents a project with optional date bounds.
type ProjectEntry struct {
	Title     string  `json:"title"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
}

// CertificationEntry represents a certification or license.
type CertificationEntry struct {
	Name         string  `json:"name"`
	Organization *string `json:"organization"`
}

// Confidence holds 0-100 extraction reliability scores, overall and per section.
type Confidence struct {
	Overall        int `json:"overall"`
	PersonalInfo   int `json:"personalInfo"`
	Experience     int `json:"experience"`
	Education      int `json:"education"`
	Skills         int `json:"skills"`
	Languages      int `json:"languages"`
	Projects       int `json:"projects"`
	Certifications int `json:"certifications"`
}

// ProfileRecord is the pipeline's output contract: a structured professional
// profile assembled from a resume or a network data export. Records are
// created fresh per extraction and carry no persistent identifiers; the
// consumer assigns those via AssignIDs.
type ProfileRecord struct {
	PersonalInfo   PersonalInfo         `json:"personalInfo"`
	Experience     []ExperienceEntry    `json:"experience"`
	Education      []EducationEntry     `json:"education"`
	Skills         []SkillEntry         `json:"skills"`
	Languages      []LanguageEntry      `json:"languages"`
	Projects       []ProjectEntry       `json:"projects"`
	Certifications []CertificationEntry `json:"certifications"`
	Confidence     Confidence           `json:"confidence"`
	Warnings       []string             `json:"warnings"`
}

// NewProfileRecord returns an empty record with all list sections initialized,
// so callers never see nil slices in the output contract.
func NewProfileRecord() *ProfileRecord {
	return &ProfileRecord{
		Experience:     []ExperienceEntry{},
		Education:      []EducationEntry{},
		Skills:         []SkillEntry{},
		Languages:      []LanguageEntry{},
		Projects:       []ProjectEntry{},
		Certifications: []CertificationEntry{},
		Warnings:       []string{},
	}
}

// AddWarning appends a human-readable warning to the record.
func (r *ProfileRecord) AddWarning(msg string) {
	r.Warnings = append(r.Warnings, msg)
}

// Str returns a pointer to s, or nil when s is empty. It is the conversion
// used at every boundary where an optional string enters a record.
func Str(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// StrValue returns the value of p, or "" when p is nil.
func StrValue(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
