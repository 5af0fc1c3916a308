// Package extraction turns raw resume text into a structured ProfileRecord by
// way of a language model. Two strategies exist: a mediated service that holds
// the provider credentials server-side, and a direct provider call. Both
// produce candidate records that still need the cleaning stage.
package extraction

import (
	"context"
	"encoding/json"

	"github.com/jonathan/resume-extractor/internal/types"
)

// Strategy is one way of producing a candidate record from resume text.
// Strategies are tried in order by the pipeline; an error moves on to the next.
type Strategy interface {
	// Name identifies the strategy in progress events and logs
	Name() string
	// Extract produces a candidate record from resume text
	Extract(ctx context.Context, resumeText string) (*types.ProfileRecord, error)
}

// Default confidence scores, applied per section when a model response omits
// its confidence block or reports zero.
const (
	defaultOverallConfidence      = 75
	defaultPersonalInfoConfidence = 80
	defaultExperienceConfidence   = 75
	defaultEducationConfidence    = 75
	defaultSkillsConfidence       = 70
	defaultLanguagesConfidence    = 65
	defaultProjectsConfidence     = 60
	defaultCertsConfidence        = 70
)

// decodeResponse validates raw model output against the response schema and
// decodes it into a record with confidence defaults applied.
func decodeResponse(raw string) (*types.ProfileRecord, error) {
	if err := ValidateResponse(raw); err != nil {
		return nil, err
	}

	record := types.NewProfileRecord()
	if err := json.Unmarshal([]byte(raw), record); err != nil {
		return nil, &ResponseError{Message: "decode extracted record", Cause: err}
	}

	ensureSlices(record)
	applyConfidenceDefaults(&record.Confidence)
	return record, nil
}

// ensureSlices restores empty slices the decoder may have nilled out, keeping
// the output contract's always-present-arrays guarantee.
func ensureSlices(r *types.ProfileRecord) {
	if r.Experience == nil {
		r.Experience = []types.ExperienceEntry{}
	}
	if r.Education == nil {
		r.Education = []types.EducationEntry{}
	}
	if r.Skills == nil {
		r.Skills = []types.SkillEntry{}
	}
	if r.Languages == nil {
		r.Languages = []types.LanguageEntry{}
	}
	if r.Projects == nil {
		r.Projects = []types.ProjectEntry{}
	}
	if r.Certifications == nil {
		r.Certifications = []types.CertificationEntry{}
	}
	if r.Warnings == nil {
		r.Warnings = []string{}
	}
}

func applyConfidenceDefaults(c *types.Confidence) {
	if c.Overall == 0 {
		c.Overall = defaultOverallConfidence
	}
	if c.PersonalInfo == 0 {
		c.PersonalInfo = defaultPersonalInfoConfidence
	}
	if c.Experience == 0 {
		c.Experience = defaultExperienceConfidence
	}
	if c.Education == 0 {
		c.Education = defaultEducationConfidence
	}
	if c.Skills == 0 {
		c.Skills = defaultSkillsConfidence
	}
	if c.Languages == 0 {
		c.Languages = defaultLanguagesConfidence
	}
	if c.Projects == 0 {
		c.Projects = defaultProjectsConfidence
	}
	if c.Certifications == 0 {
		c.Certifications = defaultCertsConfidence
	}
}
