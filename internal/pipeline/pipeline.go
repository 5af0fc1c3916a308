// Package pipeline provides the high-level orchestration for resume data
// extraction. One invocation takes one input document (PDF, export archive,
// or raw buffer) end to end: input validation, text or archive recovery, the
// extraction strategy chain, and the final cleaning pass. Invocations share
// no mutable state.
package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/resume-extractor/internal/cleaning"
	"github.com/jonathan/resume-extractor/internal/export"
	"github.com/jonathan/resume-extractor/internal/extraction"
	"github.com/jonathan/resume-extractor/internal/fallback"
	"github.com/jonathan/resume-extractor/internal/llm"
	"github.com/jonathan/resume-extractor/internal/patterns"
	"github.com/jonathan/resume-extractor/internal/pdf"
	"github.com/jonathan/resume-extractor/internal/types"
)

// File size bounds. The floor rejects empty or truncated uploads before any
// parser sees them.
const (
	DefaultMaxFileBytes = 50 * 1024 * 1024
	DefaultMinFileBytes = 1024
)

// Config holds everything the orchestrator needs at construction time.
type Config struct {
	MaxFileBytes int
	MinFileBytes int

	// Mediated extraction service
	MediatedURL string
	AccessToken string
	AnonKey     string

	// Direct provider access
	Provider llm.Provider
	APIKey   string
	Model    string

	RequestTimeout time.Duration

	// EnableFallback keeps the rule-based extractor in the strategy chain.
	// Disabling it surfaces the last AI-tier error instead.
	EnableFallback bool
	// EnableOCRFallback permits the OCR path for image-based PDFs
	EnableOCRFallback bool

	OnProgress ProgressFunc
}

// DefaultConfig returns a Config with size bounds, timeout, and fallback
// enabled. Credentials are left empty.
func DefaultConfig() Config {
	return Config{
		MaxFileBytes:   DefaultMaxFileBytes,
		MinFileBytes:   DefaultMinFileBytes,
		RequestTimeout: 60 * time.Second,
		EnableFallback: true,
	}
}

// Input is one document to extract from.
type Input struct {
	Data        []byte
	ContentType string
	Filename    string
}

// Pipeline orchestrates extraction for one configuration.
type Pipeline struct {
	cfg        Config
	strategies []extraction.Strategy
	logger     *zap.Logger
}

// New builds a pipeline. Strategy construction failures (missing mediated
// credentials, malformed provider key) disable that tier with a log line
// rather than failing construction: the rule-based tier keeps the pipeline
// usable with no credentials at all.
func New(ctx context.Context, cfg Config, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.MaxFileBytes <= 0 {
		cfg.MaxFileBytes = DefaultMaxFileBytes
	}
	if cfg.MinFileBytes <= 0 {
		cfg.MinFileBytes = DefaultMinFileBytes
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 60 * time.Second
	}

	p := &Pipeline{cfg: cfg, logger: logger}

	if cfg.MediatedURL != "" {
		mediated, err := extraction.NewMediatedStrategy(extraction.MediatedConfig{
			URL:         cfg.MediatedURL,
			AccessToken: cfg.AccessToken,
			AnonKey:     cfg.AnonKey,
			Timeout:     cfg.RequestTimeout,
		})
		if err != nil {
			logger.Warn("mediated extraction disabled", zap.Error(err))
		} else {
			p.strategies = append(p.strategies, mediated)
		}
	}

	if cfg.APIKey != "" {
		llmCfg := &llm.Config{
			Provider: cfg.Provider,
			Model:    cfg.Model,
			Timeout:  cfg.RequestTimeout,
		}
		client, err := llm.NewClient(ctx, llmCfg, cfg.APIKey)
		if err != nil {
			logger.Warn("direct extraction disabled", zap.Error(err))
		} else {
			p.strategies = append(p.strategies, extraction.NewDirectStrategy(client))
		}
	}

	return p
}

// Extract runs one input through the pipeline and returns the cleaned record.
func (p *Pipeline) Extract(ctx context.Context, input Input) (*types.ProfileRecord, error) {
	p.emitProgress(StageValidateInput, 5, "Validating input")

	contentType, err := p.validateInput(input)
	if err != nil {
		return nil, err
	}

	var record *types.ProfileRecord

	if contentType == "application/pdf" {
		record, err = p.extractFromPDF(ctx, input)
	} else {
		record, err = p.extractFromExport(ctx, input, contentType)
	}
	if err != nil {
		return nil, err
	}

	p.emitProgress(StageValidateAndClean, 90, "Validating and cleaning record")
	record = cleaning.ValidateAndClean(record)

	p.emitProgress(StageDone, 100, "Extraction complete")
	return record, nil
}

// validateInput enforces size bounds and resolves the effective content type.
func (p *Pipeline) validateInput(input Input) (string, error) {
	if len(input.Data) < p.cfg.MinFileBytes {
		return "", &InputError{Message: fmt.Sprintf("file too small: %d bytes (minimum %d)", len(input.Data), p.cfg.MinFileBytes)}
	}
	if len(input.Data) > p.cfg.MaxFileBytes {
		return "", &InputError{Message: fmt.Sprintf("file too large: %d bytes (maximum %d)", len(input.Data), p.cfg.MaxFileBytes)}
	}

	contentType := input.ContentType
	if contentType == "" {
		contentType = contentTypeFromFilename(input.Filename)
	}

	switch contentType {
	case "application/pdf", "application/zip", "application/json", "text/csv", "text/plain":
		return contentType, nil
	default:
		return "", &InputError{Message: fmt.Sprintf("unsupported content type %q", contentType)}
	}
}

func contentTypeFromFilename(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return "application/pdf"
	case ".zip":
		return "application/zip"
	case ".json":
		return "application/json"
	case ".csv":
		return "text/csv"
	default:
		return "text/plain"
	}
}

// extractFromPDF recovers text from the document and runs the strategy chain.
// Text recovery failure is the pipeline's only terminal extraction path.
func (p *Pipeline) extractFromPDF(ctx context.Context, input Input) (*types.ProfileRecord, error) {
	p.emitProgress(StageExtractText, 25, "Extracting text from PDF")

	opts := pdf.DefaultOptions()
	opts.EnableOCRFallback = p.cfg.EnableOCRFallback

	result := pdf.Extract(input.Data, opts)
	if !result.Success {
		msg := "no text recoverable from document"
		if result.Err != "" {
			msg += ": " + result.Err
		}
		return nil, &ExtractionError{Stage: StageExtractText, Message: msg}
	}

	text := pdf.PreprocessText(result.Text)
	return p.runStrategies(ctx, text)
}

// extractFromExport normalizes an archive or buffer. Structured section data
// maps straight to a record; a buffer that held only free text goes through
// the strategy chain like PDF text does.
func (p *Pipeline) extractFromExport(ctx context.Context, input Input, contentType string) (*types.ProfileRecord, error) {
	p.emitProgress(StageNormalizeArchive, 25, "Normalizing export data")

	data, err := export.Normalize(input.Data, contentType)
	if err != nil {
		return nil, &ExtractionError{
			Stage:   StageNormalizeArchive,
			Message: "export could not be read",
			Cause:   err,
		}
	}

	if data.HasProfileData() {
		record := export.MapToProfile(data)
		for _, problem := range export.Validate(record) {
			record.AddWarning(problem)
		}
		return record, nil
	}

	if strings.TrimSpace(data.RawText) == "" {
		return nil, &ExtractionError{
			Stage:   StageNormalizeArchive,
			Message: "export contains no profile sections and no text",
		}
	}
	return p.runStrategies(ctx, data.RawText)
}

// runStrategies tries each AI tier in order, then the rule-based extractor.
func (p *Pipeline) runStrategies(ctx context.Context, text string) (*types.ProfileRecord, error) {
	p.logger.Debug("running extraction strategies",
		zap.Int("textLength", len(text)),
		zap.Int("textConfidence", patterns.EstimateTextConfidence(text)))

	var lastErr error

	for _, strategy := range p.strategies {
		p.emitProgress(StageAIExtract, 55, "Extracting with "+strategy.Name()+" strategy")

		record, err := strategy.Extract(ctx, text)
		if err == nil {
			p.logger.Info("extraction succeeded", zap.String("strategy", strategy.Name()))
			return record, nil
		}
		p.logger.Warn("extraction strategy failed",
			zap.String("strategy", strategy.Name()),
			zap.Error(err))
		lastErr = err
	}

	if !p.cfg.EnableFallback {
		if lastErr != nil {
			return nil, lastErr
		}
		return nil, &ExtractionError{Stage: StageAIExtract, Message: "no extraction strategy available"}
	}

	p.emitProgress(StageFallbackExtract, 75, "Extracting with rule-based fallback")
	return fallback.Extract(text), nil
}
