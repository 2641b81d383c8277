package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/lu4p/cat"

	"github.com/sgunwal/capreports/internal/analysis/gemini"
	"github.com/sgunwal/capreports/internal/common"
	"github.com/sgunwal/capreports/internal/export"
	"github.com/sgunwal/capreports/internal/extract"
	"github.com/sgunwal/capreports/internal/ingest"
	"github.com/sgunwal/capreports/internal/prompts"
)

func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		dir = flag.String("dir", "", "directory containing *_analysis.docx reports (required)")
		out = flag.String("out", "", "output CSV path (defaults to <dir>/scored_reports.csv)")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}
	if *out == "" {
		*out = filepath.Join(*dir, "scored_reports.csv")
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

	docs, err := ingest.ListSuffixed(*dir, "_analysis.docx")
	if err != nil {
		printError("Error: %v\n", err)
		os.Exit(1)
	}
	if len(docs) == 0 {
		printError("No *_analysis.docx files found in %s\n", *dir)
		os.Exit(1)
	}
	logger.Info("starting score summary", "dir", *dir, "files", len(docs))

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

	columns := []string{"Community Name"}
	for _, cat := range extract.ScoreCategories {
		columns = append(columns, cat.Name)
	}
	columns = append(columns, "Total Score", "Fraction")

	var rows [][]string
	failures := 0

	for _, path := range docs {
		text, err := cat.File(path)
		if err != nil {
			logger.Error("docx text extraction failed", "path", path, "error", err)
			failures++
			continue
		}

		resp, err := client.CompleteText(ctx, prompts.ScoreExtraction, text)
		if err != nil {
			logger.Error("score extraction failed", "path", path, "error", err)
			failures++
			continue
		}
		if resp == "" {
			logger.Warn("no content produced", "path", path)
			continue
		}

		sc := extract.ParseScorecard(resp)
		if len(sc.Missing) > 0 {
			logger.Warn("sections missing from response", "path", path, "missing", sc.Missing)
		}
		if sc.Total == 0 {
			logger.Warn("total score is zero", "path", path, "community", sc.Community)
		}

		row := []string{sc.Community}
		for _, s := range sc.Sections {
			row = append(row, strconv.Itoa(s.Score))
		}
		row = append(row,
			strconv.Itoa(sc.Total),
			strconv.FormatFloat(sc.Fraction, 'f', 2, 64),
		)
		rows = append(rows, row)
		logger.Info("report scored", "path", path, "community", sc.Community, "total", sc.Total)

		time.Sleep(cfg.Batch.RequestPause)
	}

	if err := export.WriteCSV(*out, columns, rows); err != nil {
		printError("Error: %v\n", err)
		os.Exit(1)
	}

	logger.Info("score summary complete", "files", len(docs), "scored", len(rows), "failures", failures)

	fmt.Printf("Score summary complete!\n")
	fmt.Printf("- Reports analyzed: %d\n", len(docs))
	fmt.Printf("- Reports scored: %d\n", len(rows))
	fmt.Printf("- Failures: %d\n", failures)
	fmt.Printf("- Output: %s\n", *out)
}
