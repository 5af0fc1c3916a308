package export

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jonathan/resume-extractor/internal/patterns"
	"github.com/jonathan/resume-extractor/internal/types"
)

// Export-path confidence baselines. Structured exports carry explicit field
// semantics, so these sit well above the rule-based fallback's scores.
const (
	exportOverallConfidence      = 90
	exportPersonalInfoConfidence = 95
	exportExperienceConfidence   = 90
	exportEducationConfidence    = 90
	exportSkillsConfidence       = 85
	exportLanguagesConfidence    = 85
	exportProjectsConfidence     = 80
	exportCertsConfidence        = 85
)

// MapToProfile converts normalized export data into a candidate ProfileRecord.
// JSON bags win over CSV bags for the same section when both are present,
// matching the precedence of the richer format.
func MapToProfile(data *ExportData) *types.ProfileRecord {
	basic := resolveBasicInfo(data)

	positions := data.JSONPositions
	if len(positions) == 0 {
		positions = positionsFromRows(data.Positions)
	}
	education := data.JSONEducation
	if len(education) == 0 {
		education = educationFromRows(data.Education)
	}
	skills := data.JSONSkills
	if len(skills) == 0 {
		skills = skillsFromRows(data.Skills)
	}
	languages := data.JSONLanguages
	if len(languages) == 0 {
		languages = languagesFromRows(data.Languages)
	}
	certs := data.JSONCerts
	if len(certs) == 0 {
		certs = certificationsFromRows(data.Certifications)
	}
	projects := data.JSONProjects
	if len(projects) == 0 {
		projects = projectsFromRows(data.Projects)
	}

	record := types.NewProfileRecord()
	record.PersonalInfo = mapPersonalInfo(basic)
	for _, pos := range positions {
		record.Experience = append(record.Experience, mapPosition(pos))
	}
	for _, edu := range education {
		record.Education = append(record.Education, mapEducation(edu))
	}
	for _, skill := range skills {
		if skill.Name == "" {
			continue
		}
		record.Skills = append(record.Skills, types.SkillEntry{
			Name:  skill.Name,
			Level: skillLevelFromEndorsements(skill.EndorsementCount),
		})
	}
	for _, lang := range languages {
		if lang.Name == "" {
			continue
		}
		record.Languages = append(record.Languages, types.LanguageEntry{
			Name:  lang.Name,
			Level: patterns.DetermineLanguageLevel(lang.Proficiency),
		})
	}
	for _, cert := range certs {
		if cert.Name == "" {
			continue
		}
		record.Certifications = append(record.Certifications, types.CertificationEntry{
			Name:         cert.Name,
			Organization: types.Str(cert.Authority),
		})
	}
	for _, proj := range projects {
		if proj.Title == "" {
			continue
		}
		record.Projects = append(record.Projects, types.ProjectEntry{
			Title:     proj.Title,
			StartDate: types.Str(formatDateParts(proj.StartDate)),
			EndDate:   types.Str(formatDateParts(proj.EndDate)),
		})
	}

	record.Confidence = types.Confidence{
		Overall:        exportOverallConfidence,
		PersonalInfo:   exportPersonalInfoConfidence,
		Experience:     exportExperienceConfidence,
		Education:      exportEducationConfidence,
		Skills:         exportSkillsConfidence,
		Languages:      exportLanguagesConfidence,
		Projects:       exportProjectsConfidence,
		Certifications: exportCertsConfidence,
	}
	record.Warnings = append(record.Warnings, data.Warnings...)
	return record
}

// resolveBasicInfo picks the richest available profile header: whole-profile
// JSON first, then the basic-information JSON entry, then the Profile CSV.
func resolveBasicInfo(data *ExportData) *BasicInfo {
	if data.ProfileJSON != nil {
		return data.ProfileJSON
	}
	if data.BasicInfo != nil {
		return data.BasicInfo
	}
	if len(data.Profile) > 0 {
		// Profile CSVs carry a single row.
		row := data.Profile[0]
		return &BasicInfo{
			FirstName:    row.Get("First Name", "firstName"),
			LastName:     row.Get("Last Name", "lastName"),
			EmailAddress: row.Get("Email Address", "email"),
			Headline:     row.Get("Headline", "headline"),
			Summary:      cleanExportText(row.Get("Summary", "summary")),
			Industry:     row.Get("Industry", "industry"),
		}
	}
	return &BasicInfo{}
}

func mapPersonalInfo(basic *BasicInfo) types.PersonalInfo {
	var phone string
	if len(basic.PhoneNumbers) > 0 {
		phone = basic.PhoneNumbers[0].Number
	}

	var linkedinURL, websiteURL string
	for _, w := range basic.Websites {
		if strings.Contains(strings.ToLower(w.Type), "linkedin") {
			if linkedinURL == "" {
				linkedinURL = w.URL
			}
		} else if websiteURL == "" {
			websiteURL = w.URL
		}
	}

	fullName := strings.TrimSpace(basic.FirstName + " " + basic.LastName)

	return types.PersonalInfo{
		FullName: types.Str(fullName),
		Email:    types.Str(basic.EmailAddress),
		Phone:    types.Str(phone),
		Address:  types.Str(formatLocation(basic.Location)),
		Website:  types.Str(websiteURL),
		LinkedIn: types.Str(linkedinURL),
		Title:    types.Str(basic.Headline),
		Summary:  types.Str(cleanExportText(basic.Summary)),
	}
}

func mapPosition(pos Position) types.ExperienceEntry {
	desc := cleanExportText(pos.Description)
	var highlights []string
	if desc != "" {
		highlights = []string{desc}
	}

	var end *string
	if !pos.IsCurrent {
		end = types.Str(formatDateParts(pos.EndDate))
	}

	return types.ExperienceEntry{
		Company:     pos.CompanyName,
		Position:    pos.Title,
		StartDate:   formatDateParts(pos.StartDate),
		EndDate:     end,
		Description: desc,
		Highlights:  highlights,
	}
}

func mapEducation(edu Education) types.EducationEntry {
	var descParts []string
	for _, p := range []string{cleanExportText(edu.Activities), cleanExportText(edu.Notes)} {
		if p != "" {
			descParts = append(descParts, p)
		}
	}
	return types.EducationEntry{
		Institution: edu.SchoolName,
		Degree:      edu.DegreeName,
		Field:       edu.FieldOfStudy,
		StartDate:   formatDateParts(edu.StartDate),
		EndDate:     types.Str(formatDateParts(edu.EndDate)),
		Description: strings.Join(descParts, "\n"),
	}
}

// --- CSV section bag conversion ---

func positionsFromRows(rows []Row) []Position {
	out := make([]Position, 0, len(rows))
	for _, row := range rows {
		finished := row.Get("Finished On", "end_date")
		out = append(out, Position{
			CompanyName: row.Get("Company Name", "company"),
			Title:       row.Get("Title", "position", "title"),
			Description: cleanExportText(row.Get("Description", "description")),
			StartDate:   parseRowDate(row.Get("Started On", "start_date")),
			EndDate:     parseRowDate(finished),
			IsCurrent:   finished == "",
		})
	}
	return out
}

func educationFromRows(rows []Row) []Education {
	out := make([]Education, 0, len(rows))
	for _, row := range rows {
		out = append(out, Education{
			SchoolName:   row.Get("School Name", "institution", "school"),
			DegreeName:   row.Get("Degree Name", "degree"),
			FieldOfStudy: row.Get("Field Of Study", "field", "major"),
			StartDate:    parseRowDate(row.Get("Start Date", "start_date")),
			EndDate:      parseRowDate(row.Get("End Date", "end_date")),
			Activities:   cleanExportText(row.Get("Activities", "activities")),
			Notes:        cleanExportText(row.Get("Notes", "description")),
		})
	}
	return out
}

func skillsFromRows(rows []Row) []Skill {
	out := make([]Skill, 0, len(rows))
	for _, row := range rows {
		count, _ := strconv.Atoi(row.Get("Endorsement Count", "endorsements"))
		out = append(out, Skill{
			Name:             row.Get("Skill Name", "name", "skill"),
			EndorsementCount: count,
		})
	}
	return out
}

func languagesFromRows(rows []Row) []Language {
	out := make([]Language, 0, len(rows))
	for _, row := range rows {
		out = append(out, Language{
			Name:        row.Get("Language", "name"),
			Proficiency: row.Get("Proficiency", "level"),
		})
	}
	return out
}

func certificationsFromRows(rows []Row) []Certification {
	out := make([]Certification, 0, len(rows))
	for _, row := range rows {
		out = append(out, Certification{
			Name:      row.Get("Name", "name"),
			Authority: row.Get("Authority", "organization"),
			StartDate: parseRowDate(row.Get("Started On", "start_date")),
		})
	}
	return out
}

func projectsFromRows(rows []Row) []Project {
	out := make([]Project, 0, len(rows))
	for _, row := range rows {
		out = append(out, Project{
			Title:       row.Get("Title", "title", "name"),
			Description: cleanExportText(row.Get("Description", "description")),
			StartDate:   parseRowDate(row.Get("Started On", "start_date")),
			EndDate:     parseRowDate(row.Get("Finished On", "end_date")),
		})
	}
	return out
}

// --- helpers ---

// formatDateParts renders a {month, year} object as YYYY-MM-01, or "" when the
// year is absent. Exports carry month/year granularity only.
func formatDateParts(d *DateParts) string {
	if d == nil || d.Year == 0 {
		return ""
	}
	month := d.Month
	if month < 1 || month > 12 {
		month = 1
	}
	return fmt.Sprintf("%04d-%02d-01", d.Year, month)
}

// parseRowDate parses the loose date strings CSV exports use ("Jan 2020",
// "2020", "01/2020") into DateParts. Returns nil when no year is present.
func parseRowDate(s string) *DateParts {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	yearStr := patterns.YearOnlyPattern.FindString(s)
	if yearStr == "" {
		return nil
	}
	year, _ := strconv.Atoi(yearStr)
	parts := &DateParts{Year: year}

	if m := patterns.MonthYearPattern.FindStringSubmatch(s); m != nil {
		if m[1] != "" {
			parts.Month = monthNumber(m[1])
		} else if m[3] != "" {
			parts.Month, _ = strconv.Atoi(m[3])
		}
	}
	return parts
}

func monthNumber(name string) int {
	switch strings.ToLower(name[:3]) {
	case "jan":
		return 1
	case "feb":
		return 2
	case "mar":
		return 3
	case "apr":
		return 4
	case "may":
		return 5
	case "jun":
		return 6
	case "jul":
		return 7
	case "aug":
		return 8
	case "sep":
		return 9
	case "oct":
		return 10
	case "nov":
		return 11
	case "dec":
		return 12
	}
	return 0
}

// skillLevelFromEndorsements maps an endorsement count onto the skill tier
// vocabulary.
func skillLevelFromEndorsements(count int) types.SkillLevel {
	switch {
	case count <= 0:
		return types.SkillBeginner
	case count < 5:
		return types.SkillIntermediate
	case count < 15:
		return types.SkillAdvanced
	default:
		return types.SkillExpert
	}
}

func formatLocation(loc *Location) string {
	if loc == nil {
		return ""
	}
	var parts []string
	for _, p := range []string{loc.City, loc.State, loc.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// Validate reports the blocking problems with a mapped record. An export with
// no usable name or contact email is worthless downstream, so these are the
// only hard requirements; everything else degrades to warnings elsewhere.
func Validate(record *types.ProfileRecord) []string {
	var problems []string
	if types.StrValue(record.PersonalInfo.FullName) == "" {
		problems = append(problems, "export contains no name")
	}
	email := types.StrValue(record.PersonalInfo.Email)
	if email == "" {
		problems = append(problems, "export contains no email address")
	} else if !patterns.EmailExact.MatchString(email) {
		problems = append(problems, "export email address is malformed: "+email)
	}
	return problems
}

// cleanExportText unescapes the literal sequences export files embed in text
// fields.
func cleanExportText(text string) string {
	if text == "" {
		return ""
	}
	text = strings.ReplaceAll(text, `\n`, "\n")
	text = strings.ReplaceAll(text, `\"`, `"`)
	return strings.TrimSpace(text)
}
