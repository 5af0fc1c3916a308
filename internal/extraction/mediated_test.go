package extraction

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-extractor/internal/types"
)

const validServicePayload = `{
	"personalInfo": {"fullName": "Jane Doe", "email": "jane@example.com"},
	"experience": [],
	"education": [],
	"skills": [],
	"languages": [],
	"projects": [],
	"certifications": [],
	"confidence": {"overall": 85, "personalInfo": 90, "experience": 80, "education": 80, "skills": 75, "languages": 70, "projects": 65, "certifications": 70},
	"warnings": []
}`

func TestNewMediatedStrategy_RequiresConfig(t *testing.T) {
	_, err := NewMediatedStrategy(MediatedConfig{AccessToken: "tok"})
	assert.Error(t, err)

	_, err = NewMediatedStrategy(MediatedConfig{URL: "http://example.com"})
	assert.Error(t, err)
}

func TestMediatedStrategy_Extract(t *testing.T) {
	var gotAuth, gotAnonKey string
	var gotBody map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAnonKey = r.Header.Get("apikey")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(validServicePayload))
	}))
	defer server.Close()

	strategy, err := NewMediatedStrategy(MediatedConfig{
		URL:         server.URL,
		AccessToken: "session-token",
		AnonKey:     "anon-key",
	})
	require.NoError(t, err)

	record, err := strategy.Extract(context.Background(), "resume text here")
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", types.StrValue(record.PersonalInfo.FullName))
	assert.Equal(t, 85, record.Confidence.Overall)

	assert.Equal(t, "Bearer session-token", gotAuth)
	assert.Equal(t, "anon-key", gotAnonKey)
	assert.Equal(t, "resume text here", gotBody["resumeText"])
}

func TestMediatedStrategy_FallbackSignal(t *testing.T) {
	// The service reports extraction failure with a 200 and an in-band flag;
	// it must be treated exactly like a transport failure.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"error": "model unavailable", "fallback": true}`))
	}))
	defer server.Close()

	strategy, err := NewMediatedStrategy(MediatedConfig{URL: server.URL, AccessToken: "tok"})
	require.NoError(t, err)

	_, err = strategy.Extract(context.Background(), "text")
	require.Error(t, err)
	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Contains(t, svcErr.Message, "model unavailable")
}

func TestMediatedStrategy_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": "No authorization header", "fallback": true}`))
	}))
	defer server.Close()

	strategy, err := NewMediatedStrategy(MediatedConfig{URL: server.URL, AccessToken: "tok"})
	require.NoError(t, err)

	_, err = strategy.Extract(context.Background(), "text")
	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, http.StatusBadRequest, svcErr.StatusCode)
}

func TestMediatedStrategy_TruncatesLongResumes(t *testing.T) {
	var sentLen int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		sentLen = len(body["resumeText"])
		_, _ = w.Write([]byte(validServicePayload))
	}))
	defer server.Close()

	strategy, err := NewMediatedStrategy(MediatedConfig{URL: server.URL, AccessToken: "tok"})
	require.NoError(t, err)

	long := make([]byte, MaxResumeLength+5000)
	for i := range long {
		long[i] = 'a'
	}
	record, err := strategy.Extract(context.Background(), string(long))
	require.NoError(t, err)

	assert.Equal(t, MaxResumeLength+3, sentLen)
	assert.NotEmpty(t, record.Warnings)
}
