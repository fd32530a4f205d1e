// Package answer parses raw answer text into the shapes the quiz documents:
// a single integer, yes/no, a JSON list of integers, or a JSON list of
// [a, b] pairs. Anything else is rejected as malformed; answers are never
// interpreted beyond the documented literal formats.
package answer

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// MalformedError reports unparseable answer text. It always grades to a
// zero score with format guidance; it is never fatal.
type MalformedError struct {
	Expected string
	Example  string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("expected %s, e.g. %s", e.Expected, e.Example)
}

// Int parses a single integer answer.
func Int(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, &MalformedError{Expected: "a single integer", Example: "7"}
	}
	return n, nil
}

// YesNo parses a yes/no answer, case-insensitively. Any word starting with
// "y" counts as yes; no must be written out as "no".
func YesNo(raw string) (bool, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case strings.HasPrefix(s, "y"):
		return true, nil
	case s == "no":
		return false, nil
	default:
		return false, &MalformedError{Expected: "'Yes' or 'No'", Example: "yes"}
	}
}

// IntList parses a JSON integer list such as [1,3,0,2].
func IntList(raw string) ([]int, error) {
	malformed := &MalformedError{Expected: "a list of integers", Example: "[1,3,0,2]"}
	payload, err := decodeJSON(raw)
	if err != nil {
		return nil, malformed
	}
	if err := validate(intListSchema, payload); err != nil {
		return nil, malformed
	}
	var out []int
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &out); err != nil {
		return nil, malformed
	}
	return out, nil
}

// PairList parses a JSON list of two-element integer pairs such as
// [[0,2],[0,1]].
func PairList(raw string) ([][2]int, error) {
	malformed := &MalformedError{Expected: "a list of [a, b] pairs", Example: "[[0,2],[0,1]]"}
	payload, err := decodeJSON(raw)
	if err != nil {
		return nil, malformed
	}
	if err := validate(pairListSchema, payload); err != nil {
		return nil, malformed
	}
	var pairs [][]int
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &pairs); err != nil {
		return nil, malformed
	}
	out := make([][2]int, len(pairs))
	for i, p := range pairs {
		out[i] = [2]int{p[0], p[1]}
	}
	return out, nil
}

// decodeJSON parses raw into a generic value, rejecting trailing garbage.
func decodeJSON(raw string) (any, error) {
	dec := json.NewDecoder(strings.NewReader(strings.TrimSpace(raw)))
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, fmt.Errorf("trailing data after JSON value")
	}
	return v, nil
}
