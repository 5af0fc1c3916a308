package pdf

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-extractor/internal/patterns"
)

var (
	lowerUpperPattern  = regexp.MustCompile(`([a-z])([A-Z])`)
	digitLetterPattern = regexp.MustCompile(`(\d)([A-Za-z])`)
	letterDigitPattern = regexp.MustCompile(`([A-Za-z])(\d)`)
	dashPattern        = regexp.MustCompile(`\s*[-—–]\s*`)
	bulletPattern      = regexp.MustCompile(`\s*[•·]\s*`)
	spacedAtPattern    = regexp.MustCompile(`\s*@\s*`)
	phoneJoinPattern   = regexp.MustCompile(`(\d{3})\s*[-.]?\s*(\d{3})\s*[-.]?\s*(\d{4})`)
)

var sectionHeaders = []string{
	"EXPERIENCE", "WORK EXPERIENCE", "PROFESSIONAL EXPERIENCE",
	"EDUCATION", "ACADEMIC BACKGROUND",
	"SKILLS", "TECHNICAL SKILLS", "CORE COMPETENCIES",
	"CERTIFICATIONS", "LICENSES",
	"PROJECTS", "NOTABLE PROJECTS",
	"LANGUAGES", "LANGUAGE SKILLS",
	"SUMMARY", "PROFILE", "OBJECTIVE",
}

// PreprocessText repairs common extraction artifacts before the text is
// handed to an extractor: word boundaries lost between case changes and
// digits, broken email and phone formatting, and section headers flattened
// into surrounding prose.
func PreprocessText(text string) string {
	cleaned := strings.TrimSpace(whitespacePattern.ReplaceAllString(text, " "))

	cleaned = lowerUpperPattern.ReplaceAllString(cleaned, "$1 $2")
	cleaned = digitLetterPattern.ReplaceAllString(cleaned, "$1 $2")
	cleaned = letterDigitPattern.ReplaceAllString(cleaned, "$1 $2")
	cleaned = dashPattern.ReplaceAllString(cleaned, " - ")
	cleaned = bulletPattern.ReplaceAllString(cleaned, " • ")
	cleaned = spacedAtPattern.ReplaceAllString(cleaned, "@")
	for _, tld := range []string{"com", "edu", "org", "net"} {
		cleaned = strings.ReplaceAll(cleaned, " . "+tld, "."+tld)
		cleaned = strings.ReplaceAll(cleaned, ". "+tld, "."+tld)
		cleaned = strings.ReplaceAll(cleaned, " ."+tld, "."+tld)
	}
	cleaned = phoneJoinPattern.ReplaceAllString(cleaned, "$1-$2-$3")

	// Re-isolate section headers onto their own lines so downstream section
	// detection has boundaries to work with.
	for _, header := range sectionHeaders {
		re := regexp.MustCompile(`(?i)\b` + strings.ReplaceAll(regexp.QuoteMeta(header), ` `, `\s+`) + `\b`)
		cleaned = re.ReplaceAllString(cleaned, "\n\n"+header+"\n")
	}

	return cleaned
}

// sectionOrder fixes header matching precedence when a line could satisfy
// more than one section pattern.
var sectionOrder = []string{
	patterns.SectionContact,
	patterns.SectionSummary,
	patterns.SectionExperience,
	patterns.SectionEducation,
	patterns.SectionSkills,
	patterns.SectionCertifications,
	patterns.SectionProjects,
	patterns.SectionLanguages,
	patterns.SectionAwards,
	patterns.SectionPublications,
}

// DetectSections splits resume text into logical sections keyed by the
// patterns package section names. Text before the first recognized header is
// collected under "other".
func DetectSections(text string) map[string]string {
	sections := make(map[string]string)
	current := "other"
	var content []string

	flush := func() {
		if len(content) > 0 {
			sections[current] = strings.TrimSpace(strings.Join(content, "\n"))
			content = nil
		}
	}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		isHeader := false
		for _, name := range sectionOrder {
			if patterns.SectionPatterns[name].MatchString(trimmed) {
				flush()
				current = name
				isHeader = true
				break
			}
		}
		if !isHeader {
			content = append(content, trimmed)
		}
	}
	flush()

	return sections
}
