// Package cleaning is the last stage before a record leaves the pipeline. It
// enforces the output contract regardless of which extractor produced the
// record: malformed contact fields are nulled, dates are corrected or
// defaulted, enum fields are coerced, incomplete entries are dropped, and
// confidence scores are clamped. Every repair is reported as a warning.
// Cleaning an already-clean record changes nothing.
package cleaning

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-extractor/internal/patterns"
	"github.com/jonathan/resume-extractor/internal/types"
)

var validate = validator.New()

// ValidateAndClean normalizes a record in place and returns it.
func ValidateAndClean(record *types.ProfileRecord) *types.ProfileRecord {
	cleanPersonalInfo(record)
	cleanExperience(record)
	cleanEducation(record)
	cleanSkills(record)
	cleanLanguages(record)
	cleanProjects(record)
	cleanCertifications(record)
	clampConfidence(&record.Confidence)
	return record
}

func cleanPersonalInfo(record *types.ProfileRecord) {
	info := &record.PersonalInfo

	if email := types.StrValue(info.Email); email != "" {
		if err := validate.Var(email, "email"); err != nil || !patterns.EmailExact.MatchString(email) {
			info.Email = nil
			record.AddWarning("Invalid email format detected and removed")
		}
	}

	if phone := types.StrValue(info.Phone); phone != "" && !patterns.PhoneLoose.MatchString(phone) {
		info.Phone = nil
		record.AddWarning("Invalid phone format detected and removed")
	}
}

func cleanExperience(record *types.ProfileRecord) {
	kept := record.Experience[:0]
	for i := range record.Experience {
		exp := record.Experience[i]
		if exp.Company == "" || exp.Position == "" {
			record.AddWarning("Incomplete experience entry removed")
			continue
		}

		if exp.StartDate != "" && !validDate(exp.StartDate) {
			exp.StartDate = types.DefaultExperienceStartDate
			record.AddWarning("Invalid start date corrected in experience")
		}
		if exp.StartDate == "" {
			exp.StartDate = types.DefaultExperienceStartDate
		}
		if end := types.StrValue(exp.EndDate); end != "" && !validDate(end) {
			exp.EndDate = nil
			record.AddWarning("Invalid end date removed in experience")
		}
		// ISO dates compare correctly as strings.
		if end := types.StrValue(exp.EndDate); end != "" && end < exp.StartDate {
			exp.EndDate = nil
			record.AddWarning("End date precedes start date in experience")
		}
		if exp.Highlights == nil {
			exp.Highlights = []string{}
		}

		kept = append(kept, exp)
	}
	record.Experience = kept
}

func cleanEducation(record *types.ProfileRecord) {
	kept := record.Education[:0]
	for i := range record.Education {
		edu := record.Education[i]
		if edu.Institution == "" || edu.Degree == "" {
			record.AddWarning("Incomplete education entry removed")
			continue
		}

		if edu.StartDate != "" && !validDate(edu.StartDate) {
			edu.StartDate = types.DefaultEducationStartDate
			record.AddWarning("Invalid start date corrected in education")
		}
		if edu.StartDate == "" {
			edu.StartDate = types.DefaultEducationStartDate
		}
		if end := types.StrValue(edu.EndDate); end != "" && !validDate(end) {
			edu.EndDate = nil
			record.AddWarning("Invalid end date removed in education")
		}
		if end := types.StrValue(edu.EndDate); end != "" && end < edu.StartDate {
			edu.EndDate = nil
			record.AddWarning("End date precedes start date in education")
		}

		kept = append(kept, edu)
	}
	record.Education = kept
}

// cleanSkills coerces levels and drops unnamed or duplicate entries. Dedup is
// case-insensitive; the first occurrence wins.
func cleanSkills(record *types.ProfileRecord) {
	kept := record.Skills[:0]
	seen := make(map[string]bool)
	for i := range record.Skills {
		skill := record.Skills[i]
		if skill.Name == "" {
			continue
		}
		key := strings.ToLower(skill.Name)
		if seen[key] {
			continue
		}
		seen[key] = true

		if !skill.Level.Valid() {
			skill.Level = types.DefaultSkillLevel
			record.AddWarning("Invalid skill level corrected")
		}
		kept = append(kept, skill)
	}
	record.Skills = kept
}

func cleanLanguages(record *types.ProfileRecord) {
	kept := record.Languages[:0]
	for i := range record.Languages {
		lang := record.Languages[i]
		if lang.Name == "" {
			continue
		}
		if !lang.Level.Valid() {
			lang.Level = types.DefaultLanguageLevel
			record.AddWarning("Invalid language level corrected")
		}
		kept = append(kept, lang)
	}
	record.Languages = kept
}

// Projects and certifications without a name are dropped silently; they carry
// no other required content worth warning about.

func cleanProjects(record *types.ProfileRecord) {
	kept := record.Projects[:0]
	for i := range record.Projects {
		proj := record.Projects[i]
		if strings.TrimSpace(proj.Title) == "" {
			continue
		}
		if start := types.StrValue(proj.StartDate); start != "" && !validDate(start) {
			proj.StartDate = nil
		}
		if end := types.StrValue(proj.EndDate); end != "" && !validDate(end) {
			proj.EndDate = nil
		}
		if start, end := types.StrValue(proj.StartDate), types.StrValue(proj.EndDate); start != "" && end != "" && end < start {
			proj.EndDate = nil
		}
		kept = append(kept, proj)
	}
	record.Projects = kept
}

func cleanCertifications(record *types.ProfileRecord) {
	kept := record.Certifications[:0]
	for i := range record.Certifications {
		cert := record.Certifications[i]
		if strings.TrimSpace(cert.Name) == "" {
			continue
		}
		kept = append(kept, cert)
	}
	record.Certifications = kept
}

func clampConfidence(c *types.Confidence) {
	for _, p := range []*int{
		&c.Overall, &c.PersonalInfo, &c.Experience, &c.Education,
		&c.Skills, &c.Languages, &c.Projects, &c.Certifications,
	} {
		if *p < 0 {
			*p = 0
		}
		if *p > 100 {
			*p = 100
		}
	}
}

// validDate requires the exact YYYY-MM-DD shape and a real calendar date.
func validDate(s string) bool {
	if !patterns.ISODateExact.MatchString(s) {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}
