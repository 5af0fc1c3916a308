package extraction

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/jonathan/resume-extractor/internal/types"
)

// MediatedConfig configures the mediated extraction service strategy.
type MediatedConfig struct {
	// URL is the full endpoint of the extraction function
	URL string
	// AccessToken is the caller's bearer token
	AccessToken string
	// AnonKey is the service's project key, sent in the apikey header
	AnonKey string
	// Timeout bounds the whole request
	Timeout time.Duration
}

// MediatedStrategy calls an extraction service that holds the model provider
// credentials server-side. The service signals its own failure with an
// in-band {"fallback": true} body, which is treated the same as a transport
// error so the pipeline moves to the next strategy.
type MediatedStrategy struct {
	cfg        MediatedConfig
	httpClient *http.Client
}

// NewMediatedStrategy builds a mediated strategy. URL and AccessToken must be
// set; the constructor does not validate reachability.
func NewMediatedStrategy(cfg MediatedConfig) (*MediatedStrategy, error) {
	if cfg.URL == "" {
		return nil, &ServiceError{Message: "service URL not configured"}
	}
	if cfg.AccessToken == "" {
		return nil, &ServiceError{Message: "access token not configured"}
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	return &MediatedStrategy{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

// Name identifies the strategy
func (s *MediatedStrategy) Name() string {
	return "mediated"
}

// Extract posts the resume text to the service and decodes the returned record.
func (s *MediatedStrategy) Extract(ctx context.Context, resumeText string) (*types.ProfileRecord, error) {
	text, truncated := TruncateResume(resumeText)

	body, err := json.Marshal(map[string]string{"resumeText": text})
	if err != nil {
		return nil, &ServiceError{Message: "marshal request", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return nil, &ServiceError{Message: "build request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.cfg.AccessToken)
	if s.cfg.AnonKey != "" {
		req.Header.Set("apikey", s.cfg.AnonKey)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, &ServiceError{Message: "http request failed", Cause: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ServiceError{Message: "read response body", Cause: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &ServiceError{StatusCode: resp.StatusCode, Message: errorMessage(data)}
	}

	// The service reports extraction failure in-band rather than via status.
	var signal struct {
		Fallback bool   `json:"fallback"`
		Error    string `json:"error"`
	}
	if err := json.Unmarshal(data, &signal); err == nil && signal.Fallback {
		msg := signal.Error
		if msg == "" {
			msg = "service signaled fallback"
		}
		return nil, &ServiceError{Message: msg}
	}

	record, err := decodeResponse(string(data))
	if err != nil {
		return nil, err
	}
	if truncated {
		record.AddWarning("Resume text was truncated before extraction")
	}
	return record, nil
}

func errorMessage(body []byte) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	return string(body)
}
