// Package patterns provides the regular-expression and keyword tables used by
// rule-based resume parsing: section headers, contact fields, dates, skill and
// language proficiency cues, and job-title/company normalization. Everything
// here is pure data and pure functions; the package holds no state.
package patterns

import "regexp"

// Section reference names used as keys by DetectSections and the fallback extractor.
const (
	SectionContact        = "contact"
	SectionSummary        = "summary"
	SectionExperience     = "experience"
	SectionEducation      = "education"
	SectionSkills         = "skills"
	SectionCertifications = "certifications"
	SectionProjects       = "projects"
	SectionLanguages      = "languages"
	SectionAwards         = "awards"
	SectionPublications   = "publications"
)

// SectionPatterns matches common resume section headers on their own line.
var SectionPatterns = map[string]*regexp.Regexp{
	SectionContact:        regexp.MustCompile(`(?im)^\s*(?:CONTACT|PERSONAL\s+INFORMATION|CONTACT\s+INFORMATION|PERSONAL\s+DETAILS)\s*$`),
	SectionSummary:        regexp.MustCompile(`(?im)^\s*(?:SUMMARY|PROFILE|OBJECTIVE|CAREER\s+OBJECTIVE|PROFESSIONAL\s+SUMMARY|CAREER\s+SUMMARY|EXECUTIVE\s+SUMMARY)\s*$`),
	SectionExperience:     regexp.MustCompile(`(?im)^\s*(?:EXPERIENCE|WORK\s+EXPERIENCE|PROFESSIONAL\s+EXPERIENCE|EMPLOYMENT\s+HISTORY|CAREER\s+HISTORY|WORK\s+HISTORY)\s*$`),
	SectionEducation:      regexp.MustCompile(`(?im)^\s*(?:EDUCATION|ACADEMIC\s+BACKGROUND|EDUCATIONAL\s+BACKGROUND|ACADEMIC\s+QUALIFICATIONS)\s*$`),
	SectionSkills:         regexp.MustCompile(`(?im)^\s*(?:SKILLS|TECHNICAL\s+SKILLS|CORE\s+COMPETENCIES|COMPETENCIES|KEY\s+SKILLS|TECHNICAL\s+COMPETENCIES)\s*$`),
	SectionCertifications: regexp.MustCompile(`(?im)^\s*(?:CERTIFICATIONS?|LICENSES?|CREDENTIALS?|PROFESSIONAL\s+CERTIFICATIONS?|CERTIFICATES?)\s*$`),
	SectionProjects:       regexp.MustCompile(`(?im)^\s*(?:PROJECTS?|NOTABLE\s+PROJECTS?|PERSONAL\s+PROJECTS?|KEY\s+PROJECTS?|SELECTED\s+PROJECTS?)\s*$`),
	SectionLanguages:      regexp.MustCompile(`(?im)^\s*(?:LANGUAGES?|LANGUAGE\s+SKILLS?|FOREIGN\s+LANGUAGES?)\s*$`),
	SectionAwards:         regexp.MustCompile(`(?im)^\s*(?:AWARDS?|ACHIEVEMENTS?|HONORS?|ACCOMPLISHMENTS?|RECOGNITION)\s*$`),
	SectionPublications:   regexp.MustCompile(`(?im)^\s*(?:PUBLICATIONS?|PAPERS?|RESEARCH|PUBLICATIONS\s+AND\s+PRESENTATIONS?)\s*$`),
}

// Contact information patterns.
var (
	EmailPattern    = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	EmailExact      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	PhoneLoose      = regexp.MustCompile(`^[\d\s\-().+]{10,}$`)
	PhonePattern    = regexp.MustCompile(`(?:\+?1[-.\s]?)?\(?([0-9]{3})\)?[-.\s]?([0-9]{3})[-.\s]?([0-9]{4})(?:\s*(?:ext|extension|x)\.?\s*(\d+))?`)
	LinkedInPattern = regexp.MustCompile(`(?:https?://)?(?:www\.)?linkedin\.com/in/([A-Za-z0-9-_]+)/?`)
	GitHubPattern   = regexp.MustCompile(`(?:https?://)?(?:www\.)?github\.com/([A-Za-z0-9-_]+)/?`)
	WebsitePattern  = regexp.MustCompile(`https?://[^\s]+`)
	AddressPattern  = regexp.MustCompile(`\d+\s+[A-Za-z0-9\s,#.-]+(?:Street|St|Avenue|Ave|Road|Rd|Boulevard|Blvd|Lane|Ln|Drive|Dr|Court|Ct|Place|Pl|Way|Circle|Cir)\s*,?\s*[A-Za-z\s]+,?\s*[A-Z]{2}\s*\d{5}(?:-\d{4})?`)
)

// Date patterns.
var (
	FullDatePattern  = regexp.MustCompile(`\b(\d{1,2})[-/.](\d{1,2})[-/.](\d{4})\b`)
	ISODatePattern   = regexp.MustCompile(`\b(\d{4})-(\d{1,2})-(\d{1,2})\b`)
	MonthYearPattern = regexp.MustCompile(`(?i)\b(?:(January|February|March|April|May|June|July|August|September|October|November|December|Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)\.?\s+(\d{4})|(\d{1,2})/(\d{4}))\b`)
	YearOnlyPattern  = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
	CurrentPattern   = regexp.MustCompile(`(?i)\b(?:current|present|now|ongoing|today)\b`)
	DurationPattern  = regexp.MustCompile(`(?i)\b(\d+)\s*(?:years?|yrs?|months?|mos?)\b`)
)

// ISODateExact matches a complete YYYY-MM-DD date string and nothing else.
var ISODateExact = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Experience line patterns.
var (
	// TitleAtCompanyPattern matches "Senior Engineer at Acme Corp 2020".
	TitleAtCompanyPattern = regexp.MustCompile(`(?im)^(.+?)\s+(?:at|@)\s+(.+?)\s+(\d{4}|\d{1,2}/\d{4})`)
	// TitleCompanyYearPattern matches a three-line "title / company / year" shape.
	TitleCompanyYearPattern = regexp.MustCompile(`(?m)^([^\n]+?)\s*\n\s*([^\n]+?)\s*\n\s*(\d{4}|\d{1,2}/\d{4})`)
	BulletPointPattern      = regexp.MustCompile(`(?m)^\s*[•·▪▫◦‣⁃-]\s*(.+)$`)
	AchievementPattern      = regexp.MustCompile(`(?i)(?:increased|decreased|improved|reduced|saved|generated|achieved|exceeded|delivered|grew|expanded|boosted|enhanced|optimized)\s+.+?(?:\d+%|\$[\d,]+|[\d,]+\s*(?:users|customers|clients|projects|sales|revenue|efficiency|productivity|performance|quality|time|cost))`)
)

// Education patterns.
var (
	DegreePattern       = regexp.MustCompile(`(?i)\b(?:Ph\.?D\.?|Doctor|Doctorate|Master|M\.?[AS]\.?|Bachelor|B\.?[AS]\.?|Associate|A\.?[AS]\.?|Certificate|Diploma|Certification)\b`)
	GPAPattern          = regexp.MustCompile(`(?i)\b(?:GPA|Grade Point Average):\s*(\d+(?:\.\d+)?)\s*(?:/\s*(\d+(?:\.\d+)?))?\b`)
	HonorsPattern       = regexp.MustCompile(`(?i)\b(?:Summa Cum Laude|Magna Cum Laude|Cum Laude|Dean's List|Honor Roll|Honors|Distinction|First Class|Second Class|Third Class)\b`)
	DegreeInFieldAtForm = regexp.MustCompile(`(?i)^(.+?)\s+in\s+(.+?)\s+(?:at|from)\s+(.+?)$`)
)

// Skill level cue patterns, checked in order expert -> advanced -> beginner,
// with intermediate as the default.
var (
	SkillExpertCues   = regexp.MustCompile(`(?i)\b(?:expert|senior|lead|principal|architect|specialist|guru|10\+?\s*years?|[8-9]\+?\s*years?)\b`)
	SkillAdvancedCues = regexp.MustCompile(`(?i)\b(?:advanced|proficient|strong|solid|extensive|experienced|skilled|competent|[5-7]\+?\s*years?)\b`)
	SkillBeginnerCues = regexp.MustCompile(`(?i)\b(?:beginner|basic|fundamental|learning|novice|entry\s*level|[0-1]\+?\s*years?|new\s+to)\b`)
)

// Language level cue patterns, most specific tier first.
var (
	LangNativeCues           = regexp.MustCompile(`(?i)\b(?:native|mother\s*tongue|first\s+language|bilingual|trilingual)\b`)
	LangFullProfessionalCues = regexp.MustCompile(`(?i)\b(?:fluent|full\s+professional|business\s+fluent|professional\s+proficiency|advanced)\b`)
	LangLimitedWorkingCues   = regexp.MustCompile(`(?i)\b(?:limited\s+working|basic|elementary|beginner|some)\b`)
	LangElementaryCues       = regexp.MustCompile(`(?i)\b(?:elementary|minimal|learning)\b`)
)
