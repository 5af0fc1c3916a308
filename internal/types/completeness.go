package types

import "strings"

// Completeness returns the percentage of core profile fields that are
// populated. Six scalar contact fields and three list sections are weighted
// equally, mirroring what the profile UI reports to users after an import.
func Completeness(r *ProfileRecord) int {
	scalars := []*string{
		r.PersonalInfo.FullName,
		r.PersonalInfo.Email,
		r.PersonalInfo.Phone,
		r.PersonalInfo.Address,
		r.PersonalInfo.Summary,
		r.PersonalInfo.Title,
	}

	total := len(scalars) + 3
	completed := 0

	for _, s := range scalars {
		if s != nil && strings.TrimSpace(*s) != "" {
			completed++
		}
	}
	if len(r.Experience) > 0 {
		completed++
	}
	if len(r.Education) > 0 {
		completed++
	}
	if len(r.Skills) > 0 {
		completed++
	}

	return int(float64(completed)/float64(total)*100 + 0.5)
}
