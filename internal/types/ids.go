package types

import "github.com/google/uuid"

// Identified wraps a list entry with the persistent identifier the consuming
// application stores it under. The pipeline itself never mints IDs; they are
// assigned only at the hand-off boundary.
type Identified[T any] struct {
	ID    string `json:"id"`
	Entry T      `json:"entry"`
}

// StoredProfile is a ProfileRecord whose list entries carry freshly assigned
// identifiers, suitable for handing to a profile store.
type StoredProfile struct {
	PersonalInfo   PersonalInfo                     `json:"personalInfo"`
	Experience     []Identified[ExperienceEntry]    `json:"experience"`
	Education      []Identified[EducationEntry]     `json:"education"`
	Skills         []Identified[SkillEntry]         `json:"skills"`
	Languages      []Identified[LanguageEntry]      `json:"languages"`
	Projects       []Identified[ProjectEntry]       `json:"projects"`
	Certifications []Identified[CertificationEntry] `json:"certifications"`
	Confidence     Confidence                       `json:"confidence"`
	Warnings       []string                         `json:"warnings"`
}

func identify[T any](entries []T) []Identified[T] {
	out := make([]Identified[T], 0, len(entries))
	for _, e := range entries {
		out = append(out, Identified[T]{ID: uuid.NewString(), Entry: e})
	}
	return out
}

// AssignIDs stamps a new UUID onto every list entry of r and returns the
// result as a StoredProfile. The input record is not modified.
func AssignIDs(r *ProfileRecord) *StoredProfile {
	return &StoredProfile{
		PersonalInfo:   r.PersonalInfo,
		Experience:     identify(r.Experience),
		Education:      identify(r.Education),
		Skills:         identify(r.Skills),
		Languages:      identify(r.Languages),
		Projects:       identify(r.Projects),
		Certifications: identify(r.Certifications),
		Confidence:     r.Confidence,
		Warnings:       r.Warnings,
	}
}
