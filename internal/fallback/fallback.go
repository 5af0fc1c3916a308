// Package fallback is the rule-based extractor of last resort. It never
// returns an error: whatever the heuristics find becomes the record, and the
// reduced reliability is reported through the confidence scores and a warning.
package fallback

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-extractor/internal/patterns"
	"github.com/jonathan/resume-extractor/internal/types"
)

// threeDigitPattern flags lines carrying phone-number fragments.
var threeDigitPattern = regexp.MustCompile(`\d{3}`)

// Baseline confidence scores for rule-based extraction.
const (
	overallConfidence      = 50
	personalInfoConfidence = 40
	experienceConfidence   = 50
	educationConfidence    = 45
	skillsConfidence       = 60
	languagesConfidence    = 30
	projectsConfidence     = 35
	certsConfidence        = 40
)

// Section caps keep degenerate input from flooding the record.
const (
	maxExperience     = 10
	maxEducation      = 5
	maxSkills         = 20
	maxLanguages      = 5
	maxProjects       = 5
	maxCertifications = 10
)

// maxLineLength truncates free-text lines lifted into entry fields.
const maxLineLength = 100

// FallbackWarning is attached to every rule-based record.
const FallbackWarning = "Used fallback parsing - results may be less accurate"

// Extract builds a record from resume text using regex and keyword heuristics.
// It is total: any input, including garbage, produces a usable record.
func Extract(text string) *types.ProfileRecord {
	record := types.NewProfileRecord()
	record.PersonalInfo = extractPersonalInfo(text)
	record.Experience = extractExperience(text)
	record.Education = extractEducation(text)
	record.Skills = extractSkills(text)
	record.Languages = extractLanguages(text)
	record.Projects = extractProjects(text)
	record.Certifications = extractCertifications(text)
	record.Confidence = types.Confidence{
		Overall:        overallConfidence,
		PersonalInfo:   personalInfoConfidence,
		Experience:     experienceConfidence,
		Education:      educationConfidence,
		Skills:         skillsConfidence,
		Languages:      languagesConfidence,
		Projects:       projectsConfidence,
		Certifications: certsConfidence,
	}
	record.AddWarning(FallbackWarning)
	return record
}

func extractPersonalInfo(text string) types.PersonalInfo {
	var info types.PersonalInfo

	contact := patterns.ExtractContactInfo(text)
	if len(contact.Emails) > 0 {
		info.Email = types.Str(contact.Emails[0])
	}
	if len(contact.Phones) > 0 {
		info.Phone = types.Str(contact.Phones[0])
	}
	if len(contact.LinkedIn) > 0 {
		info.LinkedIn = types.Str(contact.LinkedIn[0])
	}
	if len(contact.GitHub) > 0 {
		info.GitHub = types.Str(contact.GitHub[0])
	}
	if len(contact.Websites) > 0 {
		info.Website = types.Str(contact.Websites[0])
	}

	info.FullName = types.Str(guessName(text))
	return info
}

// guessName scans the first five non-empty lines for something name-shaped:
// two to four words, no email or phone fragments, plausible length.
func guessName(text string) string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
		if len(lines) == 5 {
			break
		}
	}

	for _, line := range lines {
		if strings.Contains(line, "@") {
			continue
		}
		if threeDigitPattern.MatchString(line) {
			continue
		}
		if len(line) <= 5 || len(line) >= 50 {
			continue
		}
		words := strings.Fields(line)
		if len(words) >= 2 && len(words) <= 4 {
			return line
		}
	}
	return ""
}

func extractExperience(text string) []types.ExperienceEntry {
	entries := []types.ExperienceEntry{}
	seen := make(map[string]bool)

	addMatch := func(position, company string) {
		position = patterns.NormalizeJobTitle(position)
		company = patterns.NormalizeCompanyName(company)
		if position == "" || company == "" || len(position) >= maxLineLength || len(company) >= maxLineLength {
			return
		}
		key := strings.ToLower(position + "|" + company)
		if seen[key] {
			return
		}
		seen[key] = true
		entries = append(entries, types.ExperienceEntry{
			Company:     company,
			Position:    position,
			StartDate:   types.DefaultExperienceStartDate,
			Description: company,
			Highlights:  []string{},
		})
	}

	for _, m := range patterns.TitleAtCompanyPattern.FindAllStringSubmatch(text, -1) {
		addMatch(m[1], m[2])
	}
	for _, m := range patterns.TitleCompanyYearPattern.FindAllStringSubmatch(text, -1) {
		addMatch(m[1], m[2])
	}

	if len(entries) > maxExperience {
		entries = entries[:maxExperience]
	}
	return entries
}

func extractEducation(text string) []types.EducationEntry {
	entries := []types.EducationEntry{}
	lines := strings.Split(text, "\n")

	for i, raw := range lines {
		line := strings.ToLower(strings.TrimSpace(raw))
		if line == "" || !containsAny(line, patterns.DegreeKeywords) {
			continue
		}

		institution := "Unknown Institution"
		if i+1 < len(lines) {
			if next := strings.TrimSpace(lines[i+1]); next != "" {
				institution = next
			}
		}

		entries = append(entries, types.EducationEntry{
			Institution: truncateLine(institution),
			Degree:      truncateLine(strings.TrimSpace(raw)),
			Field:       "General",
			StartDate:   types.DefaultEducationStartDate,
			EndDate:     types.Str("2022-01-01"),
		})
		if len(entries) == maxEducation {
			break
		}
	}
	return entries
}

// cueContext is how many bytes on each side of a vocabulary hit are scanned
// for level-indicating language.
const cueContext = 40

// cueWindow returns the slice of text surrounding a match at idx.
func cueWindow(text string, idx, length int) string {
	start := idx - cueContext
	if start < 0 {
		start = 0
	}
	end := idx + length + cueContext
	if end > len(text) {
		end = len(text)
	}
	return text[start:end]
}

func extractSkills(text string) []types.SkillEntry {
	entries := []types.SkillEntry{}
	lower := strings.ToLower(text)

	for _, skill := range patterns.CommonSkills() {
		needle := strings.ToLower(skill)
		idx := strings.Index(lower, needle)
		if idx < 0 {
			continue
		}
		entries = append(entries, types.SkillEntry{
			Name:  skill,
			Level: patterns.DetermineSkillLevel(cueWindow(text, idx, len(needle))),
		})
		if len(entries) == maxSkills {
			break
		}
	}
	return entries
}

func extractLanguages(text string) []types.LanguageEntry {
	entries := []types.LanguageEntry{}
	lower := strings.ToLower(text)

	for _, language := range patterns.CommonLanguages {
		needle := strings.ToLower(language)
		idx := strings.Index(lower, needle)
		if idx < 0 {
			continue
		}
		entries = append(entries, types.LanguageEntry{
			Name:  language,
			Level: patterns.DetermineLanguageLevel(cueWindow(text, idx, len(needle))),
		})
		if len(entries) == maxLanguages {
			break
		}
	}
	return entries
}

func extractProjects(text string) []types.ProjectEntry {
	entries := []types.ProjectEntry{}

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if len(line) <= 10 || !containsAny(strings.ToLower(line), patterns.ProjectKeywords) {
			continue
		}
		entries = append(entries, types.ProjectEntry{Title: truncateLine(line)})
		if len(entries) == maxProjects {
			break
		}
	}
	return entries
}

func extractCertifications(text string) []types.CertificationEntry {
	entries := []types.CertificationEntry{}

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || !containsAny(strings.ToLower(line), patterns.CertificationKeywords) {
			continue
		}
		entries = append(entries, types.CertificationEntry{Name: truncateLine(line)})
		if len(entries) == maxCertifications {
			break
		}
	}
	return entries
}

func containsAny(line string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(line, kw) {
			return true
		}
	}
	return false
}

func truncateLine(s string) string {
	if len(s) > maxLineLength {
		return s[:maxLineLength]
	}
	return s
}
