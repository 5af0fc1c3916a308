package extraction

import "fmt"

// MaxResumeLength bounds the text sent to a model. Longer input is truncated
// with an ellipsis and the truncation is surfaced as a warning on the result.
const MaxResumeLength = 12000

const systemPrompt = `You are an expert resume parser with deep understanding of professional documents. Your task is to extract structured data from resumes with maximum accuracy and attention to detail.

CRITICAL REQUIREMENTS:
1. Return ONLY valid JSON that matches the exact schema provided
2. Extract ALL information present - do not miss any details
3. For missing information, use null (not empty strings)
4. Pay special attention to names, job titles, companies, and dates
5. Ensure all dates are in YYYY-MM-DD format
6. Be thorough with work experience and skills extraction

EXTRACTION PRIORITIES:
- Personal information (name, contact details, job title)
- Complete work history with accurate dates and descriptions
- All skills mentioned (technical and soft skills)
- Education background
- Projects and certifications if present`

const userPromptTemplate = `Extract ALL data from this resume into the following JSON schema. Be extremely thorough and accurate:

{
  "personalInfo": {
    "fullName": "string or null",
    "email": "string or null",
    "phone": "string or null",
    "address": "string or null",
    "website": "string or null",
    "linkedin": "string or null",
    "github": "string or null",
    "title": "string or null",
    "summary": "string or null"
  },
  "experience": [
    {
      "company": "string",
      "position": "string",
      "start_date": "YYYY-MM-DD",
      "end_date": "YYYY-MM-DD or null for current",
      "company_description": "string",
      "highlights": ["array of key achievements and responsibilities"]
    }
  ],
  "education": [
    {
      "institution": "string",
      "degree": "string",
      "field": "string",
      "start_date": "YYYY-MM-DD",
      "end_date": "YYYY-MM-DD or null",
      "description": "string or null"
    }
  ],
  "skills": [
    {
      "name": "string",
      "level": "beginner|intermediate|advanced|expert"
    }
  ],
  "languages": [
    {
      "name": "string",
      "level": "elementary|limited_working|professional_working|full_professional|native"
    }
  ],
  "projects": [
    {
      "title": "string",
      "start_date": "YYYY-MM-DD or null",
      "end_date": "YYYY-MM-DD or null"
    }
  ],
  "certifications": [
    {
      "name": "string",
      "organization": "string or null"
    }
  ],
  "confidence": {
    "overall": 85,
    "personalInfo": 95,
    "experience": 90,
    "education": 85,
    "skills": 75,
    "languages": 80,
    "projects": 70,
    "certifications": 85
  },
  "warnings": ["array of any extraction issues or uncertainties"]
}

RESUME TEXT:
%s`

// TruncateResume caps resume text at MaxResumeLength runes, appending an
// ellipsis when text was dropped. The second return reports whether truncation
// happened. Cutting on a rune boundary keeps multi-byte characters intact.
func TruncateResume(text string) (string, bool) {
	if len(text) <= MaxResumeLength {
		return text, false
	}
	runes := []rune(text)
	if len(runes) <= MaxResumeLength {
		return text, false
	}
	return string(runes[:MaxResumeLength]) + "...", true
}

// BuildUserPrompt renders the extraction prompt for already-truncated text.
func BuildUserPrompt(text string) string {
	return fmt.Sprintf(userPromptTemplate, text)
}
