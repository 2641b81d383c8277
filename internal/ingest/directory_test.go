package ingest

import (
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestListPDFs(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "b_report.pdf"))
	touch(t, filepath.Join(dir, "A_REPORT.PDF")) // case-insensitive extension
	touch(t, filepath.Join(dir, "notes.txt"))
	if err := os.Mkdir(filepath.Join(dir, "nested"), 0o755); err != nil {
		t.Fatal(err)
	}
	touch(t, filepath.Join(dir, "nested", "skipped.pdf")) // non-recursive

	files, err := ListPDFs(dir)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		filepath.Join(dir, "A_REPORT.PDF"),
		filepath.Join(dir, "b_report.pdf"),
	}
	if len(files) != len(want) {
		t.Fatalf("files = %v, want %v", files, want)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Errorf("files[%d] = %q, want %q", i, files[i], want[i])
		}
	}
}

func TestListFiles_NotADirectory(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "plain.pdf")
	touch(t, file)

	if _, err := ListFiles(file, "pdf"); err == nil {
		t.Error("expected error for a non-directory path")
	}
	if _, err := ListFiles(filepath.Join(dir, "missing"), "pdf"); err == nil {
		t.Error("expected error for a missing path")
	}
}

func TestListSuffixed(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "aurora_analysis.docx"))
	touch(t, filepath.Join(dir, "brookfield_ANALYSIS.DOCX"))
	touch(t, filepath.Join(dir, "aurora_RAW.txt"))

	files, err := ListSuffixed(dir, "_analysis.docx")
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 2 {
		t.Fatalf("files = %v, want 2 matches", files)
	}
}

func TestEnsureOutputDir(t *testing.T) {
	dir := t.TempDir()
	out, err := EnsureOutputDir(dir, "analysis_output_excel")
	if err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(out)
	if err != nil || !info.IsDir() {
		t.Fatalf("output dir not created: %v", err)
	}
	// Idempotent.
	if _, err := EnsureOutputDir(dir, "analysis_output_excel"); err != nil {
		t.Errorf("second call failed: %v", err)
	}
}

func TestStem(t *testing.T) {
	tests := []struct{ in, want string }{
		{"/reports/Aurora_CAP.pdf", "Aurora_CAP"},
		{"plain", "plain"},
		{"archive.tar.gz", "archive.tar"},
	}
	for _, tt := range tests {
		if got := Stem(tt.in); got != tt.want {
			t.Errorf("Stem(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPageCount_BadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "not_a_pdf.pdf")
	touch(t, path)

	if n := PageCount(path, nil); n != 0 {
		t.Errorf("page count = %d, want 0 for an unreadable file", n)
	}
}
