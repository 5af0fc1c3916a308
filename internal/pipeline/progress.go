package pipeline

// Stage labels, in execution order.
const (
	StageValidateInput    = "validate-input"
	StageExtractText      = "extract-text"
	StageNormalizeArchive = "normalize-archive"
	StageAIExtract        = "ai-extract"
	StageFallbackExtract  = "fallback-extract"
	StageValidateAndClean = "validate-and-clean"
	StageDone             = "done"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Stage   string `json:"stage"`
	Percent int    `json:"percent"`
	Message string `json:"message"`
}

// ProgressFunc is called as the pipeline moves between stages
type ProgressFunc func(event ProgressEvent)

func (p *Pipeline) emitProgress(stage string, percent int, message string) {
	if p.cfg.OnProgress != nil {
		p.cfg.OnProgress(ProgressEvent{
			Stage:   stage,
			Percent: percent,
			Message: message,
		})
	}
}
