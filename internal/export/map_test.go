package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-extractor/internal/types"
)

func TestMapToProfile_FromJSONExport(t *testing.T) {
	data := &ExportData{
		ProfileJSON: &BasicInfo{
			FirstName:    "Jane",
			LastName:     "Doe",
			EmailAddress: "jane@example.com",
			Headline:     "Senior Engineer",
			Summary:      `Builds things.\nShips things.`,
			PhoneNumbers: []PhoneNumber{{Number: "5551234567", Type: "mobile"}},
			Location:     &Location{City: "Springfield", State: "IL", Country: "USA"},
			Websites: []Website{
				{URL: "https://linkedin.com/in/janedoe", Type: "linkedin"},
				{URL: "https://janedoe.dev", Type: "personal"},
			},
		},
		JSONPositions: []Position{
			{
				CompanyName: "Acme",
				Title:       "Engineer",
				Description: "Made widgets",
				StartDate:   &DateParts{Month: 3, Year: 2020},
				EndDate:     &DateParts{Month: 6, Year: 2023},
			},
			{
				CompanyName: "Globex",
				Title:       "Senior Engineer",
				StartDate:   &DateParts{Month: 7, Year: 2023},
				IsCurrent:   true,
			},
		},
		JSONSkills:    []Skill{{Name: "Go", EndorsementCount: 20}, {Name: "SQL", EndorsementCount: 0}},
		JSONLanguages: []Language{{Name: "Spanish", Proficiency: "Native or bilingual proficiency"}},
	}

	record := MapToProfile(data)

	assert.Equal(t, "Jane Doe", types.StrValue(record.PersonalInfo.FullName))
	assert.Equal(t, "jane@example.com", types.StrValue(record.PersonalInfo.Email))
	assert.Equal(t, "5551234567", types.StrValue(record.PersonalInfo.Phone))
	assert.Equal(t, "Springfield, IL, USA", types.StrValue(record.PersonalInfo.Address))
	assert.Equal(t, "https://linkedin.com/in/janedoe", types.StrValue(record.PersonalInfo.LinkedIn))
	assert.Equal(t, "https://janedoe.dev", types.StrValue(record.PersonalInfo.Website))
	assert.Equal(t, "Builds things.\nShips things.", types.StrValue(record.PersonalInfo.Summary))

	require.Len(t, record.Experience, 2)
	assert.Equal(t, "2020-03-01", record.Experience[0].StartDate)
	assert.Equal(t, "2023-06-01", types.StrValue(record.Experience[0].EndDate))
	// Current roles have no end date regardless of what EndDate holds.
	assert.Nil(t, record.Experience[1].EndDate)

	require.Len(t, record.Skills, 2)
	assert.Equal(t, types.SkillExpert, record.Skills[0].Level)
	assert.Equal(t, types.SkillBeginner, record.Skills[1].Level)

	require.Len(t, record.Languages, 1)
	assert.Equal(t, types.LangNative, record.Languages[0].Level)

	// Structured exports report high confidence.
	assert.GreaterOrEqual(t, record.Confidence.Overall, 85)
	assert.Empty(t, Validate(record))
}

func TestMapToProfile_FromCSVRows(t *testing.T) {
	data := &ExportData{
		Profile: []Row{{
			"First Name":    "Jane",
			"Last Name":     "Doe",
			"Email Address": "jane@example.com",
			"Headline":      "Engineer",
		}},
		Positions: []Row{{
			"Company Name": "Acme",
			"Title":        "Engineer",
			"Started On":   "Jan 2020",
			"Finished On":  "",
		}},
		Education: []Row{{
			"School Name":    "State University",
			"Degree Name":    "BS",
			"Field Of Study": "Computer Science",
			"Start Date":     "2014",
			"End Date":       "05/2018",
		}},
		Skills: []Row{{"Skill Name": "Go", "Endorsement Count": "7"}},
	}

	record := MapToProfile(data)

	assert.Equal(t, "Jane Doe", types.StrValue(record.PersonalInfo.FullName))

	require.Len(t, record.Experience, 1)
	assert.Equal(t, "2020-01-01", record.Experience[0].StartDate)
	// Empty Finished On means the position is current.
	assert.Nil(t, record.Experience[0].EndDate)

	require.Len(t, record.Education, 1)
	assert.Equal(t, "State University", record.Education[0].Institution)
	assert.Equal(t, "2014-01-01", record.Education[0].StartDate)
	assert.Equal(t, "2018-05-01", types.StrValue(record.Education[0].EndDate))

	require.Len(t, record.Skills, 1)
	assert.Equal(t, types.SkillAdvanced, record.Skills[0].Level)
}

func TestMapToProfile_JSONWinsOverCSV(t *testing.T) {
	data := &ExportData{
		ProfileJSON:   &BasicInfo{FirstName: "Jane", LastName: "Doe", EmailAddress: "jane@example.com"},
		Profile:       []Row{{"First Name": "Wrong", "Last Name": "Person"}},
		JSONPositions: []Position{{CompanyName: "Acme", Title: "Engineer", StartDate: &DateParts{Year: 2020}}},
		Positions:     []Row{{"Company Name": "Globex", "Title": "Other"}},
	}

	record := MapToProfile(data)

	assert.Equal(t, "Jane Doe", types.StrValue(record.PersonalInfo.FullName))
	require.Len(t, record.Experience, 1)
	assert.Equal(t, "Acme", record.Experience[0].Company)
}

func TestSkillLevelFromEndorsements(t *testing.T) {
	tests := []struct {
		count int
		want  types.SkillLevel
	}{
		{0, types.SkillBeginner},
		{1, types.SkillIntermediate},
		{4, types.SkillIntermediate},
		{5, types.SkillAdvanced},
		{14, types.SkillAdvanced},
		{15, types.SkillExpert},
		{99, types.SkillExpert},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, skillLevelFromEndorsements(tt.count), "count %d", tt.count)
	}
}

func TestValidate(t *testing.T) {
	record := types.NewProfileRecord()
	problems := Validate(record)
	assert.Len(t, problems, 2)

	record.PersonalInfo.FullName = types.Str("Jane Doe")
	record.PersonalInfo.Email = types.Str("not-an-email")
	problems = Validate(record)
	require.Len(t, problems, 1)
	assert.Contains(t, problems[0], "malformed")

	record.PersonalInfo.Email = types.Str("jane@example.com")
	assert.Empty(t, Validate(record))
}

func TestParseRowDate(t *testing.T) {
	tests := []struct {
		input string
		month int
		year  int
	}{
		{"Jan 2020", 1, 2020},
		{"September 2019", 9, 2019},
		{"05/2018", 5, 2018},
		{"2014", 0, 2014},
	}
	for _, tt := range tests {
		parts := parseRowDate(tt.input)
		require.NotNil(t, parts, "input %q", tt.input)
		assert.Equal(t, tt.year, parts.Year, "input %q", tt.input)
		assert.Equal(t, tt.month, parts.Month, "input %q", tt.input)
	}

	assert.Nil(t, parseRowDate(""))
	assert.Nil(t, parseRowDate("soon"))
}
