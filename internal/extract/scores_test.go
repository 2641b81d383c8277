package extract

import "testing"

const sampleScoreResponse = `Community Name: Aurora
Section 1 (First Steps): 2 / 2
Section 2 (Governance): 1 / 1
Section 3 (Stakeholder & Community Engagement): 4 / 6
Section 4 (GHG Emissions Inventory): 3 / 3
Section 5 (Sustainability Risk Assessment): 5 / 7
Section 6 (City Needs Assessment): 1 / 2
Section 7 (Strategy Identification): 6 / 9
Section 8 (Action Prioritization & Detailing): 4 / 5
Section 9 (Equity & Inclusivity): 3 / 6
Section 10 (Monitoring, Evaluation & Reporting (MER)): 5 / 7
`

func TestParseScorecard(t *testing.T) {
	sc := ParseScorecard(sampleScoreResponse)

	if sc.Community != "Aurora" {
		t.Errorf("community = %q, want Aurora", sc.Community)
	}
	if len(sc.Missing) != 0 {
		t.Errorf("missing = %v, want none", sc.Missing)
	}
	if sc.Total != 34 {
		t.Errorf("total = %d, want 34", sc.Total)
	}
	if sc.MaxTotal != 48 {
		t.Errorf("max total = %d, want 48", sc.MaxTotal)
	}
	if sc.Fraction != 0.71 {
		t.Errorf("fraction = %v, want 0.71", sc.Fraction)
	}
	if len(sc.Sections) != len(ScoreCategories) {
		t.Fatalf("sections = %d, want %d", len(sc.Sections), len(ScoreCategories))
	}
	if s := sc.Sections[6]; s.Name != "Strategy Identification" || s.Score != 6 || !s.Found {
		t.Errorf("section 7 = %+v", s)
	}
}

func TestParseScorecard_MissingSections(t *testing.T) {
	text := `Community Name: Brookfield
Section 1 (First Steps): 1 / 2
Section 4 (GHG Emissions Inventory): 2 / 3
`
	sc := ParseScorecard(text)

	if sc.Community != "Brookfield" {
		t.Errorf("community = %q, want Brookfield", sc.Community)
	}
	if sc.Total != 3 {
		t.Errorf("total = %d, want 3", sc.Total)
	}
	if len(sc.Missing) != len(ScoreCategories)-2 {
		t.Errorf("missing = %v, want %d entries", sc.Missing, len(ScoreCategories)-2)
	}
	for _, s := range sc.Sections {
		if s.Name == "Governance" && (s.Found || s.Score != 0) {
			t.Errorf("omitted section should score zero: %+v", s)
		}
	}
}

func TestParseScorecard_NoContent(t *testing.T) {
	sc := ParseScorecard("I could not find any scores in this document.")
	if sc.Community != "Unknown" {
		t.Errorf("community = %q, want Unknown", sc.Community)
	}
	if sc.Total != 0 {
		t.Errorf("total = %d, want 0", sc.Total)
	}
	if len(sc.Missing) != len(ScoreCategories) {
		t.Errorf("missing = %d, want all %d", len(sc.Missing), len(ScoreCategories))
	}
}

func TestSummarizeScores(t *testing.T) {
	items := []extractItem{
		{"1.1", 1}, {"1.2", 0}, {"1.3", 1},
		{"2.1", 1}, {"2.2", 1},
		{"3.1", 1},
		{"4.1", 0}, {"4.2", 1},
		{"9.9", 1}, // unknown prefix is ignored
	}
	qas := make([]QuestionAnswer, 0, len(items))
	for _, it := range items {
		qas = append(qas, QuestionAnswer{QuestionID: it.id, Score: it.score})
	}

	sum := SummarizeScores("Aurora_Report", qas)
	if sum.Total != 6 {
		t.Errorf("total = %d, want 6", sum.Total)
	}
	if sum.Categories["Emissions Inventory"] != 2 {
		t.Errorf("emissions inventory = %d, want 2", sum.Categories["Emissions Inventory"])
	}
	if sum.Categories["Strategy Identification"] != 2 {
		t.Errorf("strategy identification = %d, want 2", sum.Categories["Strategy Identification"])
	}
	if sum.Categories["Monitoring, Evaluation & Reporting (MER)"] != 1 {
		t.Errorf("MER = %d, want 1", sum.Categories["Monitoring, Evaluation & Reporting (MER)"])
	}

	row := sum.Row()
	if len(row) != len(MaturityColumns) {
		t.Fatalf("row length = %d, want %d", len(row), len(MaturityColumns))
	}
	if row[0] != "Aurora_Report" || row[len(row)-1] != 6 {
		t.Errorf("unexpected row: %v", row)
	}
}

type extractItem struct {
	id    string
	score int
}
