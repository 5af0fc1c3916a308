package patterns

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractContactInfo(t *testing.T) {
	text := `Jane Doe
jane.doe@example.com | (555) 123-4567
https://linkedin.com/in/janedoe
github.com/janedoe
https://janedoe.dev
`

	info := ExtractContactInfo(text)

	assert.Equal(t, []string{"jane.doe@example.com"}, info.Emails)
	assert.Equal(t, []string{"5551234567"}, info.Phones)
	assert.Equal(t, []string{"https://linkedin.com/in/janedoe"}, info.LinkedIn)
	assert.Equal(t, []string{"https://github.com/janedoe"}, info.GitHub)
	assert.Equal(t, []string{"https://janedoe.dev"}, info.Websites)
}

func TestExtractContactInfo_DeduplicatesPreservingOrder(t *testing.T) {
	text := "a@b.com second@c.org a@b.com"
	info := ExtractContactInfo(text)
	assert.Equal(t, []string{"a@b.com", "second@c.org"}, info.Emails)
}

func TestExtractContactInfo_ProfileURLsExcludedFromWebsites(t *testing.T) {
	text := "See https://www.linkedin.com/in/someone and https://github.com/someone"
	info := ExtractContactInfo(text)
	assert.Empty(t, info.Websites)
	assert.Len(t, info.LinkedIn, 1)
	assert.Len(t, info.GitHub, 1)
}

func TestNormalizePhoneNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"formatted us number", "(555) 123-4567", "5551234567"},
		{"dotted", "555.123.4567", "5551234567"},
		{"plus one prefix", "+1 555 123 4567", "5551234567"},
		{"leading one", "1-555-123-4567", "5551234567"},
		{"international kept", "+44 20 7946 0958", "+442079460958"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizePhoneNumber(tt.input))
		})
	}
}
