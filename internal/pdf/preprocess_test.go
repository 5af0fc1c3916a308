package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-extractor/internal/patterns"
)

func TestPreprocessText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains string
	}{
		{
			name:     "case boundary repaired",
			input:    "Senior EngineerAcme",
			contains: "Engineer Acme",
		},
		{
			name:     "letter digit boundary repaired",
			input:    "Engineer2020",
			contains: "Engineer 2020",
		},
		{
			name:     "spaced email rejoined",
			input:    "jane @ example . com",
			contains: "jane@example.com",
		},
		{
			name:     "phone joined",
			input:    "555 123 4567",
			contains: "555-123-4567",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, PreprocessText(tt.input), tt.contains)
		})
	}
}

func TestPreprocessText_SectionHeadersIsolated(t *testing.T) {
	out := PreprocessText("Jane Doe EXPERIENCE Acme Corp EDUCATION State University")
	assert.Contains(t, out, "\n\nEXPERIENCE\n")
	assert.Contains(t, out, "\n\nEDUCATION\n")
}

func TestDetectSections(t *testing.T) {
	text := `Jane Doe
jane@example.com

EXPERIENCE
Senior Engineer at Acme Corp 2020 - Present

EDUCATION
BS Computer Science, State University

SKILLS
Go, Python, SQL`

	sections := DetectSections(text)

	require.Contains(t, sections, patterns.SectionExperience)
	assert.Contains(t, sections[patterns.SectionExperience], "Acme Corp")
	require.Contains(t, sections, patterns.SectionEducation)
	assert.Contains(t, sections[patterns.SectionEducation], "State University")
	require.Contains(t, sections, patterns.SectionSkills)
	assert.Contains(t, sections[patterns.SectionSkills], "Go, Python, SQL")

	// Leading unclassified lines land in the "other" bag.
	require.Contains(t, sections, "other")
	assert.Contains(t, sections["other"], "Jane Doe")
}

func TestDetectSections_EmptyText(t *testing.T) {
	assert.Empty(t, DetectSections(""))
}
