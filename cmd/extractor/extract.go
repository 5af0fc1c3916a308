package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-extractor/internal/llm"
	"github.com/jonathan/resume-extractor/internal/logging"
	"github.com/jonathan/resume-extractor/internal/pipeline"
	"github.com/jonathan/resume-extractor/internal/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract [files...]",
	Short: "Extract structured profile data from resume files",
	Long:  "Extract structured profile data from one or more PDF resumes, export ZIP archives, or JSON/CSV buffers. A single input prints to stdout; multiple inputs write <name>.profile.json files.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runExtract,
}

var (
	extractType        string
	extractOut         string
	extractProvider    string
	extractAPIKey      string
	extractModel       string
	extractMediatedURL string
	extractAccessToken string
	extractAnonKey     string
	extractAssignIDs   bool
	extractNoFallback  bool
	extractConcurrency int
	extractVerbose     bool
	extractJSONLogs    bool
)

func init() {
	extractCmd.Flags().StringVarP(&extractType, "type", "t", "", "Content type override (application/pdf, application/zip, application/json, text/csv, text/plain)")
	extractCmd.Flags().StringVarP(&extractOut, "out", "o", "", "Output directory for batch mode, or output file for a single input")
	extractCmd.Flags().StringVar(&extractProvider, "provider", "openai", "Direct provider (openai or gemini)")
	extractCmd.Flags().StringVar(&extractAPIKey, "api-key", "", "Provider API key (overrides OPENAI_API_KEY / GEMINI_API_KEY env vars)")
	extractCmd.Flags().StringVar(&extractModel, "model", "", "Provider model override")
	extractCmd.Flags().StringVar(&extractMediatedURL, "mediated-url", "", "Mediated extraction service URL (overrides EXTRACT_SERVICE_URL)")
	extractCmd.Flags().StringVar(&extractAccessToken, "access-token", "", "Bearer token for the mediated service (overrides EXTRACT_ACCESS_TOKEN)")
	extractCmd.Flags().StringVar(&extractAnonKey, "anon-key", "", "Project key for the mediated service (overrides EXTRACT_ANON_KEY)")
	extractCmd.Flags().BoolVar(&extractAssignIDs, "assign-ids", false, "Assign unique IDs to list entries in the output")
	extractCmd.Flags().BoolVar(&extractNoFallback, "no-fallback", false, "Fail instead of using rule-based extraction when AI tiers fail")
	extractCmd.Flags().IntVar(&extractConcurrency, "concurrency", 4, "Maximum files processed in parallel")
	extractCmd.Flags().BoolVarP(&extractVerbose, "verbose", "v", false, "Enable debug logging and progress output")
	extractCmd.Flags().BoolVar(&extractJSONLogs, "json-logs", false, "Emit logs as JSON")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(_ *cobra.Command, args []string) error {
	logger, err := logging.New(extractJSONLogs, extractVerbose)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := buildConfig(logger)
	if err != nil {
		return err
	}

	ctx := context.Background()
	p := pipeline.New(ctx, cfg, logger)

	if len(args) == 1 {
		return extractOne(ctx, p, logger, args[0], extractOut)
	}

	if extractOut != "" {
		if info, err := os.Stat(extractOut); err != nil || !info.IsDir() {
			return fmt.Errorf("batch mode requires --out to be an existing directory")
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(extractConcurrency)
	for _, path := range args {
		g.Go(func() error {
			out := ""
			if extractOut != "" {
				out = filepath.Join(extractOut, outputName(path))
			} else {
				out = filepath.Join(filepath.Dir(path), outputName(path))
			}
			if err := extractOne(gctx, p, logger, path, out); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			logger.Info("extracted", zap.String("input", path), zap.String("output", out))
			return nil
		})
	}
	return g.Wait()
}

func buildConfig(logger *zap.Logger) (pipeline.Config, error) {
	cfg := pipeline.DefaultConfig()
	cfg.EnableFallback = !extractNoFallback

	cfg.MediatedURL = firstNonEmpty(extractMediatedURL, os.Getenv("EXTRACT_SERVICE_URL"))
	cfg.AccessToken = firstNonEmpty(extractAccessToken, os.Getenv("EXTRACT_ACCESS_TOKEN"))
	cfg.AnonKey = firstNonEmpty(extractAnonKey, os.Getenv("EXTRACT_ANON_KEY"))

	switch strings.ToLower(extractProvider) {
	case "openai", "":
		cfg.Provider = llm.ProviderOpenAI
		cfg.APIKey = firstNonEmpty(extractAPIKey, os.Getenv("OPENAI_API_KEY"))
	case "gemini":
		cfg.Provider = llm.ProviderGemini
		cfg.APIKey = firstNonEmpty(extractAPIKey, os.Getenv("GEMINI_API_KEY"))
	default:
		return cfg, fmt.Errorf("unknown provider %q", extractProvider)
	}
	cfg.Model = extractModel

	if extractVerbose {
		var mu sync.Mutex
		cfg.OnProgress = func(event pipeline.ProgressEvent) {
			mu.Lock()
			defer mu.Unlock()
			fmt.Fprintf(os.Stderr, "[%3d%%] %s: %s\n", event.Percent, event.Stage, event.Message)
		}
	}

	if cfg.MediatedURL == "" && cfg.APIKey == "" {
		logger.Info("no AI credentials configured, rule-based extraction only")
	}
	return cfg, nil
}

func extractOne(ctx context.Context, p *pipeline.Pipeline, logger *zap.Logger, path, out string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	record, err := p.Extract(ctx, pipeline.Input{
		Data:        data,
		ContentType: extractType,
		Filename:    filepath.Base(path),
	})
	if err != nil {
		return err
	}
	logger.Debug("record extracted",
		zap.String("input", path),
		zap.Int("completeness", types.Completeness(record)),
		zap.Int("warnings", len(record.Warnings)))

	var payload any = record
	if extractAssignIDs {
		payload = types.AssignIDs(record)
	}

	jsonBytes, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if out == "" {
		fmt.Println(string(jsonBytes))
		return nil
	}
	return os.WriteFile(out, append(jsonBytes, '\n'), 0644)
}

func outputName(inputPath string) string {
	base := filepath.Base(inputPath)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".profile.json"
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
