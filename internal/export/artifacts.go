package export

import (
	"encoding/json"
	"fmt"
	"os"
)

// WriteJSON writes v as indented JSON.
func WriteJSON(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	if err := os.WriteFile(path, append(b, '\n'), 0o644); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}

// WriteRaw persists the unparsed response text byte-for-byte as a fallback
// artifact for manual review.
func WriteRaw(path, text string) error {
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write raw fallback: %w", err)
	}
	return nil
}
