package extract

import (
	"encoding/json"
	"strings"
)

// ArrayOfObjects recovers a list of records from a model response that is
// supposed to be a JSON array of objects but may be wrapped in prose or code
// fences, or be malformed. The attempts, in order:
//
//  1. locate the first balanced [...] region and parse it,
//  2. strip leading/trailing code fences and parse the remaining text,
//  3. normalize Python-literal syntax (single quotes, True/False/None) and
//     parse again.
//
// A bare top-level object decodes as a single-record list. When every attempt
// fails the second result is false and the caller must persist the raw text
// unchanged as a fallback artifact.
func ArrayOfObjects(text string) ([]map[string]any, bool) {
	t := strings.TrimSpace(text)
	if t == "" {
		return nil, false
	}

	if region, ok := balancedArray(t); ok {
		if recs, err := decodeRecords(region); err == nil {
			return recs, true
		}
	}

	stripped := StripCodeFence(t)
	if recs, err := decodeRecords(stripped); err == nil {
		return recs, true
	}
	if recs, err := decodeRecords(normalizeLiteral(stripped)); err == nil {
		return recs, true
	}
	return nil, false
}

// balancedArray extracts the first "[ {" region together with its matching
// ']', tracking bracket and brace depth and honoring string literals. Unlike
// a non-greedy regex this cannot mis-extract on nested or repeated bracket
// groups, and bracket noise in surrounding prose is skipped because a
// candidate must open an array of objects.
func balancedArray(text string) (string, bool) {
	for start := 0; start < len(text); {
		idx := strings.IndexByte(text[start:], '[')
		if idx < 0 {
			return "", false
		}
		open := start + idx
		if !objectFollows(text, open+1) {
			start = open + 1
			continue
		}
		if region, ok := scanBalanced(text, open); ok {
			return region, true
		}
		start = open + 1
	}
	return "", false
}

func objectFollows(text string, i int) bool {
	for ; i < len(text); i++ {
		switch text[i] {
		case ' ', '\t', '\r', '\n':
		case '{':
			return true
		default:
			return false
		}
	}
	return false
}

func scanBalanced(text string, open int) (string, bool) {
	depth := 0
	inString := false
	escaped := false
	for i := open; i < len(text); i++ {
		ch := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '[', '{':
			depth++
		case ']', '}':
			depth--
			if depth == 0 {
				return text[open : i+1], true
			}
		}
	}
	return "", false
}

// StripCodeFence removes a leading ```json (or bare ```) marker and a
// trailing ``` marker, if present.
func StripCodeFence(text string) string {
	t := strings.TrimSpace(text)
	if strings.HasPrefix(t, "```json") {
		t = t[len("```json"):]
	} else if strings.HasPrefix(t, "```") {
		t = t[len("```"):]
	}
	if strings.HasSuffix(t, "```") {
		t = t[:len(t)-len("```")]
	}
	return strings.TrimSpace(t)
}

// decodeRecords parses text as either an array of objects or a single
// object (wrapped as a one-record list).
func decodeRecords(text string) ([]map[string]any, error) {
	var recs []map[string]any
	if err := json.Unmarshal([]byte(text), &recs); err == nil {
		return recs, nil
	}
	var one map[string]any
	if err := json.Unmarshal([]byte(text), &one); err != nil {
		return nil, err
	}
	return []map[string]any{one}, nil
}

// normalizeLiteral rewrites Python-literal structures into JSON: single-quoted
// strings become double-quoted, and bare True/False/None become their JSON
// counterparts. Content inside double-quoted strings is left untouched.
func normalizeLiteral(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	inDouble := false
	inSingle := false
	escaped := false
	for i := 0; i < len(text); i++ {
		ch := text[i]

		if inDouble {
			b.WriteByte(ch)
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inDouble = false
			}
			continue
		}
		if inSingle {
			switch {
			case escaped:
				escaped = false
				b.WriteByte(ch)
			case ch == '\\':
				escaped = true
				b.WriteByte(ch)
			case ch == '\'':
				inSingle = false
				b.WriteByte('"')
			case ch == '"':
				b.WriteString(`\"`)
			default:
				b.WriteByte(ch)
			}
			continue
		}

		switch ch {
		case '"':
			inDouble = true
			b.WriteByte(ch)
		case '\'':
			inSingle = true
			b.WriteByte('"')
		default:
			if word, n, ok := literalWordAt(text, i); ok {
				b.WriteString(word)
				i += n - 1
				continue
			}
			b.WriteByte(ch)
		}
	}
	return b.String()
}

// literalWordAt reports a Python constant starting at i and its JSON spelling.
func literalWordAt(text string, i int) (string, int, bool) {
	for py, js := range map[string]string{"True": "true", "False": "false", "None": "null"} {
		if strings.HasPrefix(text[i:], py) {
			end := i + len(py)
			if end == len(text) || !isWordByte(text[end]) {
				if i == 0 || !isWordByte(text[i-1]) {
					return js, len(py), true
				}
			}
		}
	}
	return "", 0, false
}

func isWordByte(ch byte) bool {
	return ch == '_' ||
		(ch >= 'a' && ch <= 'z') ||
		(ch >= 'A' && ch <= 'Z') ||
		(ch >= '0' && ch <= '9')
}
