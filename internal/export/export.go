// Package export converts professional-network data exports (a ZIP of CSVs, a
// JSON blob, or a single CSV/JSON file) into a source-agnostic intermediate
// shape and maps that shape onto a ProfileRecord. Downstream code never needs
// to know whether a section arrived as CSV rows or JSON objects.
package export

import "encoding/json"

// Row is a single CSV record keyed by its header row.
type Row map[string]string

// Get returns the first non-empty value among the given header keys, tolerating
// the key-naming variance between export versions.
func (r Row) Get(keys ...string) string {
	for _, k := range keys {
		if v, ok := r[k]; ok && v != "" {
			return v
		}
	}
	return ""
}

// DateParts is the {month, year} date object used by JSON exports. A zero Year
// means the date is absent.
type DateParts struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

// Location is the structured location object used by JSON exports.
type Location struct {
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
}

// PhoneNumber is a typed phone entry from a JSON export.
type PhoneNumber struct {
	Number string `json:"number"`
	Type   string `json:"type"`
}

// Website is a typed URL entry from a JSON export.
type Website struct {
	URL  string `json:"url"`
	Type string `json:"type"`
}

// BasicInfo is the profile header section of a JSON export.
type BasicInfo struct {
	FirstName    string        `json:"firstName"`
	LastName     string        `json:"lastName"`
	EmailAddress string        `json:"emailAddress"`
	PhoneNumbers []PhoneNumber `json:"phoneNumbers"`
	Location     *Location     `json:"location"`
	Summary      string        `json:"summary"`
	Headline     string        `json:"headline"`
	Industry     string        `json:"industry"`
	Websites     []Website     `json:"websites"`
}

// Position is a work history entry from a JSON export.
type Position struct {
	CompanyName string     `json:"companyName"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Location    *Location  `json:"location"`
	StartDate   *DateParts `json:"startDate"`
	EndDate     *DateParts `json:"endDate"`
	IsCurrent   bool       `json:"isCurrent"`
}

// Education is an education entry from a JSON export.
type Education struct {
	SchoolName   string     `json:"schoolName"`
	DegreeName   string     `json:"degreeName"`
	FieldOfStudy string     `json:"fieldOfStudy"`
	StartDate    *DateParts `json:"startDate"`
	EndDate      *DateParts `json:"endDate"`
	Activities   string     `json:"activities"`
	Notes        string     `json:"notes"`
}

// Skill is a skill entry from a JSON export; proficiency is inferred from the
// endorsement count.
type Skill struct {
	Name             string `json:"name"`
	EndorsementCount int    `json:"endorsementCount"`
}

// Language is a language entry from a JSON export.
type Language struct {
	Name        string `json:"name"`
	Proficiency string `json:"proficiency"`
}

// Certification is a certification entry from a JSON export.
type Certification struct {
	Name      string     `json:"name"`
	Authority string     `json:"authority"`
	StartDate *DateParts `json:"startDate"`
	EndDate   *DateParts `json:"endDate"`
	URL       string     `json:"url"`
}

// Project is a project entry from a JSON export.
type Project struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	StartDate   *DateParts `json:"startDate"`
	EndDate     *DateParts `json:"endDate"`
	URL         string     `json:"url"`
}

// ExportData is the normalized record bag produced from an export, keyed by
// semantic section regardless of source format. CSV-derived sections live in
// the Row bags; JSON-derived sections in the typed slices. Unexpected JSON
// keys are preserved under Unrecognized, and text that failed JSON parsing is
// retained in RawText rather than dropped.
type ExportData struct {
	// CSV section bags.
	Profile        []Row
	Positions      []Row
	Education      []Row
	Skills         []Row
	Languages      []Row
	Certifications []Row
	Projects       []Row
	Contacts       []Row

	// JSON section bags.
	BasicInfo     *BasicInfo
	ProfileJSON   *BasicInfo
	JSONPositions []Position
	JSONEducation []Education
	JSONSkills    []Skill
	JSONLanguages []Language
	JSONCerts     []Certification
	JSONProjects  []Project

	RawText      string
	Unrecognized map[string]json.RawMessage
	Warnings     []string
}

// HasProfileData reports whether any section bag holds content.
func (d *ExportData) HasProfileData() bool {
	return len(d.Profile) > 0 || len(d.Positions) > 0 || len(d.Education) > 0 ||
		len(d.Skills) > 0 || len(d.Languages) > 0 || len(d.Certifications) > 0 ||
		len(d.Projects) > 0 || d.BasicInfo != nil || d.ProfileJSON != nil ||
		len(d.JSONPositions) > 0 || len(d.JSONEducation) > 0 || len(d.JSONSkills) > 0 ||
		len(d.JSONLanguages) > 0 || len(d.JSONCerts) > 0 || len(d.JSONProjects) > 0
}

func (d *ExportData) warn(msg string) {
	d.Warnings = append(d.Warnings, msg)
}
