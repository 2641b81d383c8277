package extract

// Schemas here mirror the JSON shapes the prompts request. Validation is
// advisory: records failing the schema are logged and still exported, so the
// spreadsheets show exactly what the model returned.

// BuildEnergyActionSchema returns a JSON-Schema (draft 2020-12 subset) for
// one energy-action record as a generic map.
func BuildEnergyActionSchema() map[string]any {
	return arraySchema(map[string]any{
		"type": "object",
		"properties": map[string]any{
			"Category":            map[string]any{"type": "string", "minLength": 1},
			"Action Description":  map[string]any{"type": "string", "minLength": 1},
			"Document Name":       map[string]any{"type": "string"},
			"Page Number(s)":      map[string]any{"type": "string"},
			"Village Name":        map[string]any{"type": "string"},
			"Report Date":         map[string]any{"type": "string"},
			"Evidence for Action": map[string]any{"type": "string"},
			"note":                map[string]any{"type": "string"},
		},
		"anyOf": []any{
			map[string]any{"required": []string{"Category", "Action Description"}},
			map[string]any{"required": []string{"note"}},
		},
	})
}

// BuildEmissionsSchema returns the schema for one inventory record.
func BuildEmissionsSchema() map[string]any {
	props := map[string]any{
		"Village Name":  map[string]any{"type": "string", "minLength": 1},
		"Report Date":   map[string]any{"type": "string"},
		"Document Name": map[string]any{"type": "string"},
	}
	for _, scope := range []string{"Scope 1", "Scope 2", "Scope 3"} {
		props[scope+" Emissions"] = map[string]any{"type": "string"}
		props["Evidence for "+scope+" Emissions"] = map[string]any{"type": "string"}
		props[scope+" Units"] = map[string]any{"type": "string"}
		props["Evidence for "+scope+" Units"] = map[string]any{"type": "string"}
	}
	props["Total Stationary Emissions"] = map[string]any{"type": "string"}
	props["Total Units"] = map[string]any{"type": "string"}

	return arraySchema(map[string]any{
		"type":       "object",
		"properties": props,
		"required":   []string{"Village Name", "Document Name"},
	})
}

// BuildQuestionAnswerSchema returns the schema for one questionnaire item.
func BuildQuestionAnswerSchema() map[string]any {
	return arraySchema(map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question_id":      map[string]any{"type": "string", "minLength": 1},
			"question_text":    map[string]any{"type": "string"},
			"relevant_snippet": map[string]any{"type": "string"},
			"page_no":          map[string]any{"type": "string"},
			"answer":           map[string]any{"type": "string", "enum": []string{"Yes", "No"}},
			"justification":    map[string]any{"type": "string"},
			"score":            map[string]any{"type": "integer", "minimum": 0, "maximum": 1},
		},
		"required": []string{"question_id", "answer", "score"},
	})
}

func arraySchema(item map[string]any) map[string]any {
	return map[string]any{
		"type":  "array",
		"items": item,
	}
}
