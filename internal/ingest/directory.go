package ingest

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// ListFiles returns the files in dir (non-recursive) whose extension matches
// ext, sorted by name. ext is compared case-insensitively and may be given
// with or without the leading dot.
func ListFiles(dir, ext string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("input directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("input directory: %s is not a directory", dir)
	}

	ext = "." + strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory: %w", err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.ToLower(filepath.Ext(e.Name())) != ext {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// ListPDFs returns the PDF files in dir, non-recursive.
func ListPDFs(dir string) ([]string, error) {
	return ListFiles(dir, "pdf")
}

// ListSuffixed returns files in dir whose base name ends with suffix
// (e.g. "_analysis.docx"), sorted by name.
func ListSuffixed(dir, suffix string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory: %w", err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasSuffix(strings.ToLower(e.Name()), strings.ToLower(suffix)) {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// EnsureOutputDir creates (if needed) and returns the output subdirectory
// under dir.
func EnsureOutputDir(dir, name string) (string, error) {
	out := filepath.Join(dir, name)
	if err := os.MkdirAll(out, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}
	return out, nil
}

// PageCount probes the PDF at path. A probe failure is logged and reported
// as zero pages; the document is still submitted.
func PageCount(path string, logger *slog.Logger) int {
	if logger == nil {
		logger = slog.Default()
	}
	n, err := api.PageCountFile(path)
	if err != nil {
		logger.Warn("ingest.page_count.failed", "path", path, "error", err)
		return 0
	}
	return n
}

// Stem returns the file name without directory or extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
