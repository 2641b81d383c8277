package extract

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ScoreCategory is one section of the standard climate-action evaluation.
type ScoreCategory struct {
	Name string
	Max  int
}

// ScoreCategories lists the ten sections in report order with their maxima.
var ScoreCategories = []ScoreCategory{
	{"First Steps", 2},
	{"Governance", 1},
	{"Stakeholder & Community Engagement", 6},
	{"GHG Emissions Inventory", 3},
	{"Sustainability Risk Assessment", 7},
	{"City Needs Assessment", 2},
	{"Strategy Identification", 9},
	{"Action Prioritization & Detailing", 5},
	{"Equity & Inclusivity", 6},
	{"Monitoring, Evaluation & Reporting (MER)", 7},
}

// CategoryScore is one parsed section score.
type CategoryScore struct {
	Name  string
	Score int
	Max   int
	Found bool
}

// Scorecard is the parsed result of a scored-report completion that follows
// the "Section N (Category): X / Y" response format.
type Scorecard struct {
	Community string
	Sections  []CategoryScore
	Total     int
	MaxTotal  int
	Fraction  float64
	Missing   []string
}

var reCommunity = regexp.MustCompile(`Community Name:\s*(.+)`)

// ParseScorecard extracts section scores from the model's plain-text
// response. Sections the model omitted score zero and are listed in Missing.
func ParseScorecard(text string) Scorecard {
	sc := Scorecard{Community: "Unknown"}
	if m := reCommunity.FindStringSubmatch(text); m != nil {
		sc.Community = strings.TrimSpace(m[1])
	}

	for idx, cat := range ScoreCategories {
		pattern := fmt.Sprintf(`Section %d \(%s\):\s*(\d+)\s*/\s*(\d+)`, idx+1, regexp.QuoteMeta(cat.Name))
		cs := CategoryScore{Name: cat.Name, Max: cat.Max}
		if m := regexp.MustCompile(pattern).FindStringSubmatch(text); m != nil {
			if v, err := strconv.Atoi(m[1]); err == nil {
				cs.Score = v
				cs.Found = true
			}
		}
		if !cs.Found {
			sc.Missing = append(sc.Missing, cat.Name)
		}
		sc.Total += cs.Score
		sc.MaxTotal += cs.Max
		sc.Sections = append(sc.Sections, cs)
	}

	if sc.MaxTotal > 0 {
		sc.Fraction = math.Round(float64(sc.Total)/float64(sc.MaxTotal)*100) / 100
	}
	return sc
}

// Maturity questionnaire categories keyed by question-id prefix.
var maturityCategories = []struct {
	prefix string
	name   string
}{
	{"1.", "Emissions Inventory"},
	{"2.", "Strategy Identification"},
	{"3.", "Action Prioritization & Detailing"},
	{"4.", "Monitoring, Evaluation & Reporting (MER)"},
}

// MaturityColumns is the column order for the questionnaire score summary.
var MaturityColumns = []string{
	"City",
	"Emissions Inventory",
	"Strategy Identification",
	"Action Prioritization & Detailing",
	"Monitoring, Evaluation & Reporting (MER)",
	"Total Score",
}

// ScoreSummary buckets questionnaire item scores by question-id prefix.
type ScoreSummary struct {
	City       string
	Categories map[string]int
	Total      int
}

// SummarizeScores aggregates per-question scores into the four maturity
// categories for a single document.
func SummarizeScores(city string, items []QuestionAnswer) ScoreSummary {
	sum := ScoreSummary{City: city, Categories: map[string]int{}}
	for _, c := range maturityCategories {
		sum.Categories[c.name] = 0
	}
	for _, qa := range items {
		for _, c := range maturityCategories {
			if strings.HasPrefix(qa.QuestionID, c.prefix) {
				sum.Categories[c.name] += qa.Score
				sum.Total += qa.Score
				break
			}
		}
	}
	return sum
}

// Row renders the summary in MaturityColumns order.
func (s ScoreSummary) Row() []any {
	row := []any{s.City}
	for _, c := range maturityCategories {
		row = append(row, s.Categories[c.name])
	}
	return append(row, s.Total)
}
