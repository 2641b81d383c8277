package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/sgunwal/capreports/internal/analysis"
	"github.com/sgunwal/capreports/internal/extract"
)

// DocumentResult is the outcome of driving one document through the
// analyzer. Exactly one of these holds per result:
//   - Err set: the document was skipped (upload, readiness, or completion
//     failure),
//   - Structured true: Records holds the extracted list,
//   - otherwise: RawText is the unparsed response to persist as a fallback
//     artifact (possibly empty when the model produced no content).
type DocumentResult struct {
	Path       string
	Records    []map[string]any
	RawText    string
	Structured bool
	Err        error
}

// Runner is the sequential batch driver. Failures are isolated per document;
// nothing aborts the batch.
type Runner struct {
	analyzer analysis.DocumentAnalyzer
	logger   *slog.Logger
}

func NewRunner(analyzer analysis.DocumentAnalyzer, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{analyzer: analyzer, logger: logger}
}

// ProcessDocument drives one document through upload, readiness polling,
// completion and extraction. The remote file is released exactly once on
// every path after a successful upload.
func (r *Runner) ProcessDocument(ctx context.Context, path, prompt string) DocumentResult {
	res := DocumentResult{Path: path}
	start := time.Now()

	h, err := r.analyzer.Submit(ctx, path)
	if err != nil {
		res.Err = err
		return res
	}
	defer r.analyzer.Release(ctx, h)

	ready, err := r.analyzer.AwaitReady(ctx, h)
	if err != nil {
		res.Err = err
		return res
	}

	text, err := r.analyzer.Complete(ctx, prompt, ready)
	if err != nil {
		res.Err = err
		return res
	}
	res.RawText = text

	if text == "" {
		r.logger.Warn("pipeline.document.no_content", "path", path,
			"elapsed_ms", time.Since(start).Milliseconds())
		return res
	}

	if recs, ok := extract.ArrayOfObjects(text); ok {
		res.Records = recs
		res.Structured = true
		r.logger.Info("pipeline.document.ok", "path", path, "records", len(recs),
			"elapsed_ms", time.Since(start).Milliseconds())
	} else {
		r.logger.Warn("pipeline.document.unstructured", "path", path, "text_len", len(text),
			"elapsed_ms", time.Since(start).Milliseconds())
	}
	return res
}

// ProcessBatch runs ProcessDocument over every path in order. Per-document
// errors are logged and carried in the result; the batch always completes.
func (r *Runner) ProcessBatch(ctx context.Context, paths []string, prompt string) []DocumentResult {
	results := make([]DocumentResult, 0, len(paths))
	for _, path := range paths {
		r.logger.Info("pipeline.document.start", "path", path)
		res := r.ProcessDocument(ctx, path, prompt)
		if res.Err != nil {
			r.logger.Error("pipeline.document.failed", "path", path, "error", res.Err)
		}
		results = append(results, res)
	}
	return results
}
