package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteXLSXReadSheetRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	columns := []string{"Category", "Action Description", "Page Number(s)"}
	rows := [][]any{
		{"Solar Energy", "Install rooftop panels", "12"},
		{"Building Retrofits", "Retrofit town hall", ""},
	}

	if err := WriteXLSX(path, "Analysis", columns, rows, nil); err != nil {
		t.Fatal(err)
	}

	header, got, err := ReadSheet(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(header) != len(columns) || header[0] != "Category" {
		t.Errorf("header = %v, want %v", header, columns)
	}
	if len(got) != 2 {
		t.Fatalf("rows = %d, want 2", len(got))
	}
	if got[0][1] != "Install rooftop panels" {
		t.Errorf("row 0 = %v", got[0])
	}
	// Trailing empty cells still pad to header width.
	if len(got[1]) != len(columns) || got[1][2] != "" {
		t.Errorf("row 1 = %v, want padded to %d columns", got[1], len(columns))
	}
}

func TestWriteRaw_ByteForByte(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aurora_RAW.txt")
	text := "Model said:\n  [not json]\r\n\ttrailing whitespace   "

	if err := WriteRaw(path, text); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != text {
		t.Errorf("raw artifact altered: %q != %q", string(b), text)
	}
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aurora_analysis.json")
	recs := []map[string]any{{"question_id": "1.1", "answer": "Yes"}}

	if err := WriteJSON(path, recs); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(b) == 0 || b[len(b)-1] != '\n' {
		t.Error("expected newline-terminated output")
	}
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scored_reports.csv")
	columns := []string{"Report", "Total"}
	rows := [][]string{{"Aurora_CAP", "34"}, {"Brookfield, Village of", "28"}}

	if err := WriteCSV(path, columns, rows); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	all, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 {
		t.Fatalf("records = %d, want header + 2 rows", len(all))
	}
	// Commas inside values survive quoting.
	if all[2][0] != "Brookfield, Village of" {
		t.Errorf("row 2 = %v", all[2])
	}
}
