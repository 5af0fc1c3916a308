package patterns

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-extractor/internal/types"
)

var companySuffixPattern = regexp.MustCompile(`(?i)\s*(?:Inc\.?|LLC|Corp\.?|Corporation|Ltd\.?|Limited|Co\.?|Company|LP|LLP|PC|PLLC|Group|Solutions|Technologies|Tech|Systems|Services|International|Global|Worldwide)\s*$`)

// DetermineSkillLevel infers a skill proficiency tier from the text
// surrounding a skill mention. Intermediate is the default when no cue is
// present.
func DetermineSkillLevel(context string) types.SkillLevel {
	switch {
	case SkillExpertCues.MatchString(context):
		return types.SkillExpert
	case SkillAdvancedCues.MatchString(context):
		return types.SkillAdvanced
	case SkillBeginnerCues.MatchString(context):
		return types.SkillBeginner
	default:
		return types.SkillIntermediate
	}
}

// DetermineLanguageLevel infers a language proficiency tier from surrounding
// text, defaulting to professional_working.
func DetermineLanguageLevel(context string) types.LanguageLevel {
	switch {
	case LangNativeCues.MatchString(context):
		return types.LangNative
	case LangFullProfessionalCues.MatchString(context):
		return types.LangFullProfessional
	case LangLimitedWorkingCues.MatchString(context):
		return types.LangLimitedWorking
	case LangElementaryCues.MatchString(context):
		return types.LangElementary
	default:
		return types.LangProfessionalWorking
	}
}

// NormalizeCompanyName strips legal suffixes and applies the well-known-name
// table.
func NormalizeCompanyName(name string) string {
	normalized := strings.TrimSpace(name)
	if normalized == "" {
		return ""
	}
	if short, ok := CompanyNormalizations[normalized]; ok {
		return short
	}
	return strings.TrimSpace(companySuffixPattern.ReplaceAllString(normalized, ""))
}

// NormalizeJobTitle maps title variations onto a canonical title, leaving
// unknown titles untouched. An exact variation match wins; otherwise the
// longest contained variation does, scanned in a fixed canonical order so the
// result never depends on map iteration.
func NormalizeJobTitle(title string) string {
	normalized := strings.TrimSpace(title)
	if normalized == "" {
		return ""
	}
	lower := strings.ToLower(normalized)

	best := ""
	bestLen := 0
	for _, canonical := range jobTitleCanonicalOrder {
		for _, v := range JobTitleMapping[canonical] {
			lv := strings.ToLower(v)
			if lower == lv {
				return canonical
			}
			if len(lv) > bestLen && strings.Contains(lower, lv) {
				best = canonical
				bestLen = len(lv)
			}
		}
	}
	if best != "" {
		return best
	}
	return normalized
}

// CategorizeSkill returns the SkillCategories key a skill belongs to, or
// "general" when unknown. Vocabulary entries must appear as whole words, so
// short names like "Go" or "R" cannot match inside unrelated skills.
func CategorizeSkill(name string) string {
	skill := strings.ToLower(strings.TrimSpace(name))
	if skill == "" {
		return "general"
	}
	for _, category := range skillCategoryOrder {
		for _, s := range SkillCategories[category] {
			ls := strings.ToLower(s)
			if ls == skill || containsWord(skill, ls) {
				return category
			}
		}
	}
	return "general"
}

// containsWord reports whether needle occurs in haystack bounded by non-word
// characters on both sides. '+' and '#' count as word characters so "C" does
// not match inside "C++" or "C#".
func containsWord(haystack, needle string) bool {
	if needle == "" {
		return false
	}
	for from := 0; ; {
		i := strings.Index(haystack[from:], needle)
		if i < 0 {
			return false
		}
		start := from + i
		end := start + len(needle)
		if (start == 0 || !isWordChar(haystack[start-1])) &&
			(end == len(haystack) || !isWordChar(haystack[end])) {
			return true
		}
		from = start + 1
	}
}

func isWordChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' || c == '+' || c == '#'
}
