package ai

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrUnparsableOutput marks model output that survived neither strict
// decoding nor brace extraction. Callers substitute their fallback payload.
var ErrUnparsableOutput = errors.New("unparsable model output")

// stripFences removes a surrounding markdown code fence, with or without a
// language tag. Models add these despite instructions not to.
func stripFences(input string) string {
	clean := strings.TrimSpace(input)

	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
	} else if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
	}
	clean = strings.TrimLeft(clean, "\r\n")
	clean = strings.TrimSuffix(clean, "```")

	return strings.TrimSpace(clean)
}

// extractObject returns the outermost brace-delimited substring, or "" when
// the input contains no object.
func extractObject(input string) string {
	start := strings.Index(input, "{")
	end := strings.LastIndex(input, "}")
	if start < 0 || end <= start {
		return ""
	}
	return input[start : end+1]
}

// DecodeModelJSON decodes model output in two stages: strict decode of the
// fence-stripped text, then strict decode of the outermost {...} substring.
func DecodeModelJSON(text string, out any) error {
	clean := stripFences(text)

	if err := json.Unmarshal([]byte(clean), out); err == nil {
		return nil
	}

	if obj := extractObject(clean); obj != "" {
		if err := json.Unmarshal([]byte(obj), out); err == nil {
			return nil
		}
	}

	return fmt.Errorf("%w: %.80q", ErrUnparsableOutput, text)
}
