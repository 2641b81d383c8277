package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/sgunwal/capreports/internal/analysis/gemini"
	"github.com/sgunwal/capreports/internal/common"
	"github.com/sgunwal/capreports/internal/export"
	"github.com/sgunwal/capreports/internal/extract"
	"github.com/sgunwal/capreports/internal/ingest"
	"github.com/sgunwal/capreports/internal/pipeline"
	"github.com/sgunwal/capreports/internal/prompts"
)

func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		dir = flag.String("dir", "", "directory containing report PDFs (required)")
		out = flag.String("out", "analysis_output", "output subdirectory name")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		printError("Error: %v\n", err)
		os.Exit(1)
	}

	pdfs, err := ingest.ListPDFs(*dir)
	if err != nil {
		printError("Error: %v\n", err)
		os.Exit(1)
	}
	if len(pdfs) == 0 {
		printError("No PDF files found in %s\n", *dir)
		os.Exit(1)
	}

	outDir, err := ingest.EnsureOutputDir(*dir, *out)
	if err != nil {
		printError("Error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("starting report scoring", "dir", *dir, "files", len(pdfs), "output", outDir)

	client, err := gemini.NewClient(ctx, gemini.Config{
		APIKey:          cfg.Gemini.APIKey,
		Model:           cfg.Gemini.Model,
		Temperature:     cfg.Gemini.Temperature,
		Timeout:         cfg.Gemini.Timeout,
		PollInterval:    cfg.Gemini.PollInterval,
		MaxPollAttempts: cfg.Gemini.MaxPollAttempts,
	}, logger)
	if err != nil {
		printError("Error: %v\n", err)
		os.Exit(1)
	}

	runner := pipeline.NewRunner(client, logger)
	schema := extract.BuildQuestionAnswerSchema()

	var summaryRows [][]any
	processed := 0
	fallbacks := 0
	failures := 0

	for _, path := range pdfs {
		logger.Info("processing file", "path", path, "pages", ingest.PageCount(path, logger))
		res := runner.ProcessDocument(ctx, path, prompts.MaturityQuestionnaire)
		stem := ingest.Stem(path)

		switch {
		case res.Err != nil:
			logger.Error("document failed", "path", path, "error", res.Err)
			failures++
		case res.Structured:
			if err := extract.ValidateRecords(schema, res.Records); err != nil {
				logger.Warn("records failed schema validation", "path", path, "error", err)
			}

			jsonPath := filepath.Join(outDir, stem+"_analysis.json")
			if err := export.WriteJSON(jsonPath, res.Records); err != nil {
				logger.Error("json write failed", "path", jsonPath, "error", err)
				failures++
				continue
			}

			items := make([]extract.QuestionAnswer, 0, len(res.Records))
			for _, m := range res.Records {
				qa, missing := extract.QuestionAnswerFromRecord(m)
				if len(missing) > 0 {
					logger.Warn("record missing fields", "path", path, "missing", missing)
				}
				items = append(items, qa)
			}

			docxPath := filepath.Join(outDir, stem+"_analysis.docx")
			if err := export.WriteAnalysisDocx(docxPath, "Analysis for "+filepath.Base(path), items); err != nil {
				logger.Error("docx write failed", "path", docxPath, "error", err)
				failures++
				continue
			}

			summaryRows = append(summaryRows, extract.SummarizeScores(stem, items).Row())
			processed++
		default:
			rawPath := filepath.Join(outDir, stem+"_RAW.txt")
			if err := export.WriteRaw(rawPath, res.RawText); err != nil {
				logger.Error("raw fallback write failed", "path", rawPath, "error", err)
			}
			fallbacks++
		}
	}

	if len(summaryRows) > 0 {
		summaryPath := filepath.Join(outDir, "analysis_scores.xlsx")
		if err := export.WriteXLSX(summaryPath, "Scores", extract.MaturityColumns, summaryRows, logger); err != nil {
			logger.Error("summary write failed", "path", summaryPath, "error", err)
		} else {
			logger.Info("score summary written", "path", summaryPath, "rows", len(summaryRows))
		}
	}

	logger.Info("batch complete",
		"files", len(pdfs), "processed", processed, "fallbacks", fallbacks, "failures", failures)

	fmt.Printf("Report scoring complete!\n")
	fmt.Printf("- Files scanned: %d\n", len(pdfs))
	fmt.Printf("- Reports scored: %d\n", processed)
	fmt.Printf("- Raw fallbacks: %d\n", fallbacks)
	fmt.Printf("- Failures: %d\n", failures)
	fmt.Printf("- Output: %s\n", outDir)
}
