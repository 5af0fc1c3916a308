package patterns

import (
	"regexp"
	"strings"
)

var professionalKeywords = []string{
	"responsible", "managed", "developed", "implemented", "designed", "led", "collaborated",
}

var phoneDigitsPattern = regexp.MustCompile(`\d{3}[-.\s]?\d{3}[-.\s]?\d{4}`)

// EstimateTextConfidence scores how extractable a block of resume text looks,
// 0-100, from its length, recognizable section headers, contact details,
// timeline years, and professional vocabulary. It is a pre-extraction
// heuristic only; extraction tiers report their own confidence.
func EstimateTextConfidence(text string) int {
	score := 0

	if len(text) > 500 {
		score += 20
	}
	if len(text) > 1000 {
		score += 10
	}
	if len(text) > 2000 {
		score += 10
	}

	lower := strings.ToLower(text)
	for _, section := range []string{"experience", "education", "skills"} {
		if strings.Contains(lower, section) {
			score += 10
		}
	}

	if EmailPattern.MatchString(text) {
		score += 10
	}
	if phoneDigitsPattern.MatchString(text) {
		score += 5
	}

	if len(YearOnlyPattern.FindAllString(text, -1)) > 2 {
		score += 10
	}

	keywordHits := 0
	for _, kw := range professionalKeywords {
		if strings.Contains(lower, kw) {
			keywordHits++
		}
	}
	score += min(keywordHits*2, 10)

	return min(score, 100)
}
