package patterns

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-extractor/internal/types"
)

func TestDetermineSkillLevel(t *testing.T) {
	tests := []struct {
		name     string
		context  string
		expected types.SkillLevel
	}{
		{"expert cue", "Expert in Go with 10+ years experience", types.SkillExpert},
		{"advanced cue", "Proficient in Python", types.SkillAdvanced},
		{"beginner cue", "Currently learning Rust", types.SkillBeginner},
		{"no cue defaults intermediate", "Go", types.SkillIntermediate},
		{"senior counts as expert", "Senior engineer, Kubernetes", types.SkillExpert},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetermineSkillLevel(tt.context))
		})
	}
}

func TestDetermineLanguageLevel(t *testing.T) {
	tests := []struct {
		name     string
		context  string
		expected types.LanguageLevel
	}{
		{"native", "German (native speaker)", types.LangNative},
		{"bilingual counts as native", "Bilingual English/Spanish", types.LangNative},
		{"fluent", "Fluent in French", types.LangFullProfessional},
		{"limited", "Some Italian", types.LangLimitedWorking},
		{"no cue defaults professional_working", "Japanese", types.LangProfessionalWorking},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetermineLanguageLevel(tt.context))
		})
	}
}

func TestNormalizeCompanyName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"well known name", "Google LLC", "Google"},
		{"legal suffix stripped", "Acme Corp", "Acme"},
		{"inc with period", "Widgets Inc.", "Widgets"},
		{"plain name untouched", "Acme", "Acme"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeCompanyName(tt.input))
		})
	}
}

func TestNormalizeJobTitle(t *testing.T) {
	assert.Equal(t, "Software Engineer", NormalizeJobTitle("SWE"))
	assert.Equal(t, "DevOps Engineer", NormalizeJobTitle("Site Reliability Engineer"))
	assert.Equal(t, "Underwater Basket Weaver", NormalizeJobTitle("Underwater Basket Weaver"))
}

func TestNormalizeJobTitleDeterministic(t *testing.T) {
	// "Senior Software Engineer" also contains the "Software Engineer"
	// variation; the exact match must win on every run.
	for i := 0; i < 200; i++ {
		assert.Equal(t, "Senior Software Engineer", NormalizeJobTitle("Senior Software Engineer"))
	}
	// Longest contained variation wins when no variation matches exactly.
	assert.Equal(t, "Senior Software Engineer", NormalizeJobTitle("Lead Senior Developer"))
	assert.Equal(t, "Senior Software Engineer", NormalizeJobTitle("Sr. Software Engineer"))
}

func TestCategorizeSkill(t *testing.T) {
	assert.Equal(t, "general", CategorizeSkill("Negotiation"))
	assert.Equal(t, "general", CategorizeSkill(""))
	assert.NotEqual(t, "general", CategorizeSkill("JavaScript"))
}

func TestCategorizeSkillWholeWordsOnly(t *testing.T) {
	// Short vocabulary names must not match inside unrelated words.
	assert.Equal(t, "general", CategorizeSkill("Negotiation"))
	assert.Equal(t, "general", CategorizeSkill("Recruiting"))
	assert.Equal(t, "general", CategorizeSkill("Risk Management"))

	assert.Equal(t, "programmingLanguages", CategorizeSkill("Go"))
	assert.Equal(t, "programmingLanguages", CategorizeSkill("Go programming"))
	assert.Equal(t, "programmingLanguages", CategorizeSkill("C++"))
	assert.Equal(t, "webTechnologies", CategorizeSkill("Django"))
	assert.Equal(t, "databases", CategorizeSkill("SQL Server"))
}

func TestCommonSkillsDeterministicAndDeduped(t *testing.T) {
	first := CommonSkills()
	second := CommonSkills()
	assert.Equal(t, first, second)

	seen := make(map[string]bool)
	for _, s := range first {
		assert.False(t, seen[s], "duplicate skill %q", s)
		seen[s] = true
	}
}
