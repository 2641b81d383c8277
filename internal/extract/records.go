package extract

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// EnergyAction is one prioritized stationary-energy action pulled from a
// report. Field names mirror the JSON keys the analysis prompt requests.
type EnergyAction struct {
	Category    string
	Description string
	Document    string
	Pages       string
	Village     string
	ReportDate  string
	Evidence    string
	Note        string // set when the report had no identifiable actions
}

// EnergyActionColumns is the tabular column order for action exports.
var EnergyActionColumns = []string{
	"Category",
	"Action Description",
	"Document Name",
	"Page Number(s)",
	"Village Name",
	"Report Date",
	"Evidence for Action",
}

// EnergyActionFromRecord decodes one raw record. The second result lists
// required keys that were absent; per the pass-through policy the record is
// still returned for export.
func EnergyActionFromRecord(m map[string]any) (EnergyAction, []string) {
	a := EnergyAction{
		Category:    str(m, "Category"),
		Description: str(m, "Action Description"),
		Document:    str(m, "Document Name"),
		Pages:       str(m, "Page Number(s)"),
		Village:     str(m, "Village Name"),
		ReportDate:  str(m, "Report Date"),
		Evidence:    str(m, "Evidence for Action"),
		Note:        str(m, "note"),
	}
	if a.Note != "" {
		return a, nil
	}
	var missing []string
	if a.Category == "" {
		missing = append(missing, "Category")
	}
	if a.Description == "" {
		missing = append(missing, "Action Description")
	}
	return a, missing
}

// EmissionsInventory is one scope 1/2/3 stationary-energy inventory row.
type EmissionsInventory struct {
	Village        string
	ReportDate     string
	Document       string
	Scope1         string
	Scope1Evidence string
	Scope1Units    string
	Scope2         string
	Scope2Evidence string
	Scope2Units    string
	Scope3         string
	Scope3Evidence string
	Scope3Units    string
	Total          string
	TotalUnits     string
}

// EmissionsColumns is the tabular column order for inventory exports.
var EmissionsColumns = []string{
	"Village Name",
	"Report Date",
	"Document Name",
	"Scope 1 Emissions",
	"Evidence for Scope 1 Emissions",
	"Scope 1 Units",
	"Scope 2 Emissions",
	"Evidence for Scope 2 Emissions",
	"Scope 2 Units",
	"Scope 3 Emissions",
	"Evidence for Scope 3 Emissions",
	"Scope 3 Units",
	"Total Stationary Emissions",
	"Total Units",
}

func EmissionsFromRecord(m map[string]any) (EmissionsInventory, []string) {
	e := EmissionsInventory{
		Village:        str(m, "Village Name"),
		ReportDate:     str(m, "Report Date"),
		Document:       str(m, "Document Name"),
		Scope1:         str(m, "Scope 1 Emissions"),
		Scope1Evidence: str(m, "Evidence for Scope 1 Emissions"),
		Scope1Units:    str(m, "Scope 1 Units"),
		Scope2:         str(m, "Scope 2 Emissions"),
		Scope2Evidence: str(m, "Evidence for Scope 2 Emissions"),
		Scope2Units:    str(m, "Scope 2 Units"),
		Scope3:         str(m, "Scope 3 Emissions"),
		Scope3Evidence: str(m, "Evidence for Scope 3 Emissions"),
		Scope3Units:    str(m, "Scope 3 Units"),
		Total:          str(m, "Total Stationary Emissions"),
		TotalUnits:     str(m, "Total Units"),
	}
	var missing []string
	if e.Village == "" {
		missing = append(missing, "Village Name")
	}
	if e.Document == "" {
		missing = append(missing, "Document Name")
	}
	return e, missing
}

// QuestionAnswer is one scored Yes/No questionnaire item from the maturity
// analysis.
type QuestionAnswer struct {
	QuestionID    string
	QuestionText  string
	Snippet       string
	PageNo        string
	Answer        string
	Justification string
	Score         int
}

func QuestionAnswerFromRecord(m map[string]any) (QuestionAnswer, []string) {
	qa := QuestionAnswer{
		QuestionID:    str(m, "question_id"),
		QuestionText:  str(m, "question_text"),
		Snippet:       str(m, "relevant_snippet"),
		PageNo:        str(m, "page_no"),
		Answer:        str(m, "answer"),
		Justification: str(m, "justification"),
		Score:         num(m, "score"),
	}
	var missing []string
	if qa.QuestionID == "" {
		missing = append(missing, "question_id")
	}
	if qa.Answer == "" {
		missing = append(missing, "answer")
	}
	return qa, missing
}

// RecordsToTable flattens raw records into a header plus rows, preserving
// whatever keys the model returned. Preferred columns come first in the given
// order; any extra keys follow alphabetically. Missing values render empty.
func RecordsToTable(recs []map[string]any, preferred []string) ([]string, [][]any) {
	present := map[string]bool{}
	for _, r := range recs {
		for k := range r {
			present[k] = true
		}
	}

	var cols []string
	for _, c := range preferred {
		if present[c] {
			cols = append(cols, c)
			delete(present, c)
		}
	}
	var extra []string
	for k := range present {
		extra = append(extra, k)
	}
	sort.Strings(extra)
	cols = append(cols, extra...)

	rows := make([][]any, 0, len(recs))
	for _, r := range recs {
		row := make([]any, len(cols))
		for i, c := range cols {
			if v, ok := r[c]; ok && v != nil {
				row[i] = cellValue(v)
			} else {
				row[i] = ""
			}
		}
		rows = append(rows, row)
	}
	return cols, rows
}

func cellValue(v any) any {
	switch t := v.(type) {
	case string, float64, bool, int:
		return t
	default:
		return fmt.Sprintf("%v", t)
	}
}

func str(m map[string]any, key string) string {
	switch v := m[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case nil:
		return ""
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", v))
	}
}

func num(m map[string]any, key string) int {
	switch v := m[key].(type) {
	case float64:
		return int(v)
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}
	return 0
}
