package pipeline

import (
	"archive/zip"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-extractor/internal/fallback"
	"github.com/jonathan/resume-extractor/internal/types"
)

const resumeText = `Jane Doe
jane@example.com
(555) 123-4567

EXPERIENCE
Senior Engineer at Acme Corp 2020
Built a distributed job scheduler in Go

SKILLS
Python, JavaScript, Docker
`

func buildZip(t *testing.T, entries map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, content := range entries {
		f, err := w.Create(name)
		require.NoError(t, err)
		_, err = f.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf.Bytes()
}

// testConfig drops the size floor so small fixtures pass input validation.
func testConfig() Config {
	cfg := DefaultConfig()
	cfg.MinFileBytes = 1
	return cfg
}

func TestValidateInput_SizeBounds(t *testing.T) {
	p := New(context.Background(), DefaultConfig(), nil)

	_, err := p.Extract(context.Background(), Input{
		Data:        make([]byte, 512),
		ContentType: "text/plain",
	})
	var inputErr *InputError
	require.ErrorAs(t, err, &inputErr)
	assert.Contains(t, inputErr.Message, "too small")

	_, err = p.Extract(context.Background(), Input{
		Data:        make([]byte, DefaultMaxFileBytes+1),
		ContentType: "text/plain",
	})
	require.ErrorAs(t, err, &inputErr)
	assert.Contains(t, inputErr.Message, "too large")
}

func TestValidateInput_UnsupportedContentType(t *testing.T) {
	p := New(context.Background(), testConfig(), nil)

	_, err := p.Extract(context.Background(), Input{
		Data:        []byte("GIF89a..."),
		ContentType: "image/gif",
	})
	var inputErr *InputError
	require.ErrorAs(t, err, &inputErr)
	assert.Contains(t, inputErr.Message, "unsupported content type")
}

func TestContentTypeFromFilename(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"resume.PDF", "application/pdf"},
		{"export.zip", "application/zip"},
		{"profile.json", "application/json"},
		{"Skills.csv", "text/csv"},
		{"notes.txt", "text/plain"},
		{"", "text/plain"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, contentTypeFromFilename(tt.filename), tt.filename)
	}
}

func TestExtract_SkillsOnlyArchive(t *testing.T) {
	data := buildZip(t, map[string]string{
		"Skills.csv": "Skill Name,Endorsement Count\nGo,20\nPython,3\nSQL,0\n",
	})

	p := New(context.Background(), testConfig(), nil)
	record, err := p.Extract(context.Background(), Input{
		Data:        data,
		ContentType: "application/zip",
	})
	require.NoError(t, err)

	require.Len(t, record.Skills, 3)
	assert.Equal(t, "Go", record.Skills[0].Name)
	assert.Equal(t, types.SkillExpert, record.Skills[0].Level)
	assert.Equal(t, types.SkillIntermediate, record.Skills[1].Level)
	assert.Equal(t, types.SkillBeginner, record.Skills[2].Level)

	// Structured exports bypass the AI tiers entirely; the mapping confidence
	// applies, not the fallback baseline.
	assert.Equal(t, 90, record.Confidence.Overall)
	assert.NotContains(t, record.Warnings, fallback.FallbackWarning)
}

func TestExtract_ArchiveValidationProblemsBecomeWarnings(t *testing.T) {
	data := buildZip(t, map[string]string{
		"Skills.csv": "Skill Name,Endorsement Count\nGo,20\n",
	})

	p := New(context.Background(), testConfig(), nil)
	record, err := p.Extract(context.Background(), Input{Data: data, ContentType: "application/zip"})
	require.NoError(t, err)

	// A skills-only archive carries no name or email.
	assert.NotEmpty(t, record.Warnings)
}

func TestExtract_PlainTextFallsBackToRuleBased(t *testing.T) {
	p := New(context.Background(), testConfig(), nil)
	record, err := p.Extract(context.Background(), Input{
		Data:        []byte(resumeText),
		ContentType: "text/plain",
	})
	require.NoError(t, err)

	assert.Equal(t, "jane@example.com", types.StrValue(record.PersonalInfo.Email))
	require.NotEmpty(t, record.Experience)
	assert.Contains(t, record.Experience[0].Company, "Acme")
	assert.Equal(t, 50, record.Confidence.Overall)
	assert.Contains(t, record.Warnings, fallback.FallbackWarning)
}

func TestExtract_FallbackDisabledSurfacesError(t *testing.T) {
	cfg := testConfig()
	cfg.EnableFallback = false

	p := New(context.Background(), cfg, nil)
	_, err := p.Extract(context.Background(), Input{
		Data:        []byte(resumeText),
		ContentType: "text/plain",
	})
	var extErr *ExtractionError
	require.ErrorAs(t, err, &extErr)
	assert.Contains(t, extErr.Message, "no extraction strategy")
}

func TestExtract_ProgressOrdering(t *testing.T) {
	var events []ProgressEvent
	cfg := testConfig()
	cfg.OnProgress = func(e ProgressEvent) {
		events = append(events, e)
	}

	p := New(context.Background(), cfg, nil)
	_, err := p.Extract(context.Background(), Input{
		Data:        []byte(resumeText),
		ContentType: "text/plain",
	})
	require.NoError(t, err)

	require.NotEmpty(t, events)
	assert.Equal(t, StageValidateInput, events[0].Stage)
	assert.Equal(t, StageDone, events[len(events)-1].Stage)
	assert.Equal(t, 100, events[len(events)-1].Percent)

	stages := make([]string, 0, len(events))
	last := -1
	for _, e := range events {
		assert.GreaterOrEqual(t, e.Percent, last, "percent went backwards at %s", e.Stage)
		last = e.Percent
		stages = append(stages, e.Stage)
	}
	assert.Contains(t, stages, StageFallbackExtract)
	assert.NotContains(t, stages, StageExtractText)
}

func TestExtract_EmptyExportIsTerminal(t *testing.T) {
	data := buildZip(t, map[string]string{
		"README.txt": "nothing useful here",
	})

	p := New(context.Background(), testConfig(), nil)
	_, err := p.Extract(context.Background(), Input{Data: data, ContentType: "application/zip"})
	var extErr *ExtractionError
	require.ErrorAs(t, err, &extErr)
	assert.Equal(t, StageNormalizeArchive, extErr.Stage)
}

func TestExtract_OutputContract(t *testing.T) {
	p := New(context.Background(), testConfig(), nil)
	record, err := p.Extract(context.Background(), Input{
		Data:        []byte(resumeText),
		ContentType: "text/plain",
	})
	require.NoError(t, err)

	for _, e := range record.Experience {
		assert.True(t, strings.HasPrefix(e.StartDate, "20"), "start date %q not ISO", e.StartDate)
		assert.NotNil(t, e.Highlights)
	}
	for _, s := range record.Skills {
		assert.True(t, s.Level.Valid(), "skill level %q outside vocabulary", s.Level)
	}
	for _, l := range record.Languages {
		assert.True(t, l.Level.Valid(), "language level %q outside vocabulary", l.Level)
	}
	for _, c := range []int{
		record.Confidence.Overall, record.Confidence.PersonalInfo,
		record.Confidence.Experience, record.Confidence.Skills,
	} {
		assert.GreaterOrEqual(t, c, 0)
		assert.LessOrEqual(t, c, 100)
	}
}
