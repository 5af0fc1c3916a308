package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSV(t *testing.T) {
	csv := `Skill Name,Endorsement Count
Go,12
Python,3
`
	rows := ParseCSV(csv)

	require.Len(t, rows, 2)
	assert.Equal(t, "Go", rows[0]["Skill Name"])
	assert.Equal(t, "12", rows[0]["Endorsement Count"])
	assert.Equal(t, "Python", rows[1]["Skill Name"])
}

func TestParseCSV_QuotedCommas(t *testing.T) {
	csv := `Company Name,Title,Description
"Acme, Inc.",Engineer,"Built widgets, gadgets, and more"
`
	rows := ParseCSV(csv)

	require.Len(t, rows, 1)
	assert.Equal(t, "Acme, Inc.", rows[0]["Company Name"])
	assert.Equal(t, "Built widgets, gadgets, and more", rows[0]["Description"])
}

func TestParseCSV_MismatchedRowsDropped(t *testing.T) {
	csv := `Name,Authority,Started On
AWS Certified,Amazon,2021
Truncated row only two
CKA,CNCF,2022
`
	rows := ParseCSV(csv)

	// The malformed middle row is excluded; surrounding rows are unaffected.
	require.Len(t, rows, 2)
	assert.Equal(t, "AWS Certified", rows[0]["Name"])
	assert.Equal(t, "CKA", rows[1]["Name"])
}

func TestParseCSV_CRLFAndEmptyLines(t *testing.T) {
	csv := "Language,Proficiency\r\n\r\nSpanish,Native or bilingual proficiency\r\n"
	rows := ParseCSV(csv)

	require.Len(t, rows, 1)
	assert.Equal(t, "Spanish", rows[0]["Language"])
}

func TestParseCSV_HeaderOnly(t *testing.T) {
	assert.Nil(t, ParseCSV("Name,Authority\n"))
	assert.Nil(t, ParseCSV(""))
}

func TestRowGet(t *testing.T) {
	row := Row{"Company Name": "Acme", "empty": ""}
	assert.Equal(t, "Acme", row.Get("company", "Company Name"))
	assert.Equal(t, "", row.Get("missing", "empty"))
}
