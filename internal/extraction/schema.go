package extraction

import (
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

// responseSchema is the JSON Schema a model response must satisfy before it is
// decoded. It checks shape, not content: entry-level requirements and enum
// coercion are the cleaning stage's job.
const responseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["personalInfo"],
  "properties": {
    "personalInfo": {
      "type": "object",
      "properties": {
        "fullName": {"type": ["string", "null"]},
        "email": {"type": ["string", "null"]},
        "phone": {"type": ["string", "null"]},
        "address": {"type": ["string", "null"]},
        "website": {"type": ["string", "null"]},
        "linkedin": {"type": ["string", "null"]},
        "github": {"type": ["string", "null"]},
        "title": {"type": ["string", "null"]},
        "summary": {"type": ["string", "null"]}
      }
    },
    "experience": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "company": {"type": ["string", "null"]},
          "position": {"type": ["string", "null"]},
          "start_date": {"type": ["string", "null"]},
          "end_date": {"type": ["string", "null"]},
          "company_description": {"type": ["string", "null"]},
          "highlights": {"type": ["array", "null"], "items": {"type": "string"}}
        }
      }
    },
    "education": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "institution": {"type": ["string", "null"]},
          "degree": {"type": ["string", "null"]},
          "field": {"type": ["string", "null"]},
          "start_date": {"type": ["string", "null"]},
          "end_date": {"type": ["string", "null"]},
          "description": {"type": ["string", "null"]}
        }
      }
    },
    "skills": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "name": {"type": ["string", "null"]},
          "level": {"type": ["string", "null"]}
        }
      }
    },
    "languages": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "name": {"type": ["string", "null"]},
          "level": {"type": ["string", "null"]}
        }
      }
    },
    "projects": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "title": {"type": ["string", "null"]},
          "start_date": {"type": ["string", "null"]},
          "end_date": {"type": ["string", "null"]}
        }
      }
    },
    "certifications": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "name": {"type": ["string", "null"]},
          "organization": {"type": ["string", "null"]}
        }
      }
    },
    "confidence": {
      "type": "object",
      "additionalProperties": {"type": "number"}
    },
    "warnings": {
      "type": "array",
      "items": {"type": "string"}
    }
  }
}`

var (
	schemaOnce   sync.Once
	schemaLoaded *gojsonschema.Schema
	schemaErr    error
)

func compiledSchema() (*gojsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schemaLoaded, schemaErr = gojsonschema.NewSchema(gojsonschema.NewStringLoader(responseSchema))
	})
	return schemaLoaded, schemaErr
}

// ValidateResponse checks raw model output against the response schema.
func ValidateResponse(raw string) error {
	schema, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile response schema: %w", err)
	}

	result, err := schema.Validate(gojsonschema.NewStringLoader(raw))
	if err != nil {
		return &ResponseError{Message: "response is not valid JSON", Cause: err}
	}
	if result.Valid() {
		return nil
	}

	problems := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		problems = append(problems, field+": "+desc.Description())
	}
	return &ResponseError{Message: "schema validation failed: " + strings.Join(problems, "; ")}
}
