// Package jsonx salvages JSON values from free-form language model output.
package jsonx

import (
	"encoding/json"
	"strings"
)

// Recover extracts a syntactically valid JSON value from raw model output.
// The text may be wrapped in markdown code fences, surrounded by prose, or
// truncated mid-structure when the generation hit its token limit. Returns
// the extracted JSON string and true on success.
func Recover(text string) (string, bool) {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	text = strings.TrimSpace(text)
	if text == "" {
		return "", false
	}

	start := strings.IndexAny(text, "{[")
	if start < 0 {
		return "", false
	}

	open := text[start]
	var closing byte = '}'
	if open == '[' {
		closing = ']'
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(text); i++ {
		c := text[i]

		if escaped {
			escaped = false
			continue
		}
		if c == '\\' {
			escaped = true
			continue
		}
		if c == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch c {
		case open:
			depth++
		case closing:
			depth--
			if depth == 0 {
				candidate := text[start : i+1]
				if json.Valid([]byte(candidate)) {
					return candidate, true
				}
				return "", false
			}
		}
	}

	// Depth never returned to zero: the value was cut off. Try the whole
	// tail anyway, then attempt a truncation repair.
	tail := text[start:]
	if json.Valid([]byte(tail)) {
		return tail, true
	}
	return RepairTruncatedArray(tail)
}

// RepairTruncatedArray recovers a JSON array of objects that was cut off
// mid-element. It finds the offset of the last fully-closed object, drops
// everything after it, and closes the array. Only object-level brace depth
// is tracked; the outer array bracket is ignored. Returns the repaired
// string and true if the result parses.
func RepairTruncatedArray(candidate string) (string, bool) {
	candidate = strings.TrimSpace(candidate)
	if !strings.HasPrefix(candidate, "[") {
		return "", false
	}

	lastComplete := -1
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(candidate); i++ {
		c := candidate[i]

		if escaped {
			escaped = false
			continue
		}
		if c == '\\' {
			escaped = true
			continue
		}
		if c == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch c {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				lastComplete = i
			}
		}
	}

	if lastComplete <= 0 {
		return "", false
	}

	fixed := candidate[:lastComplete+1] + "]"
	if json.Valid([]byte(fixed)) {
		return fixed, true
	}
	return "", false
}
