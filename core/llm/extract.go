package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrNoJSON is returned when a model answer contains no usable JSON.
var ErrNoJSON = errors.New("no json objects found in model response")

var (
	arrayPattern  = regexp.MustCompile(`(?s)\[\s*\{.*\}\s*\]`)
	objectPattern = regexp.MustCompile(`\{[^{}]*\}`)
)

// DecodeObjects extracts a list of JSON objects from free-form model output.
//
// The first JSON array of objects found in the text is decoded as a whole.
// When there is none, every flat {...} object is decoded individually and
// the ones that fail to parse are skipped.
func DecodeObjects[T any](content string) ([]T, error) {
	if raw := arrayPattern.FindString(content); raw != "" {
		var items []T
		if err := json.Unmarshal([]byte(raw), &items); err != nil {
			return nil, fmt.Errorf("failed to decode json array: %w", err)
		}
		return items, nil
	}

	var items []T
	for _, raw := range objectPattern.FindAllString(content, -1) {
		var item T
		if err := json.Unmarshal([]byte(raw), &item); err != nil {
			continue
		}
		items = append(items, item)
	}
	if len(items) == 0 {
		return nil, ErrNoJSON
	}
	return items, nil
}

// DecodeObject extracts a single, possibly nested, JSON object from model
// output. Surrounding prose and code fences are ignored: the text between
// the first '{' and the last '}' is decoded.
func DecodeObject[T any](content string) (T, error) {
	var out T
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start < 0 || end < start {
		return out, ErrNoJSON
	}
	if err := json.Unmarshal([]byte(content[start:end+1]), &out); err != nil {
		return out, fmt.Errorf("failed to decode json object: %w", err)
	}
	return out, nil
}
