package extract

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ValidateRecords validates extracted records against "schemaMap".
func ValidateRecords(schemaMap map[string]any, recs []map[string]any) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	// Round-trip through json so numbers and nested values take the shapes
	// the validator expects.
	data, err := json.Marshal(recs)
	if err != nil {
		return fmt.Errorf("marshal records: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal records: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("records do not match schema: %w", err)
	}
	return nil
}
