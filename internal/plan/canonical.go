package plan

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Canonical serializes a plan into its comparison form: one line of JSON
// with every object's keys sorted lexicographically at every nesting
// level. Two plans are equal exactly when their canonical strings are
// equal, regardless of map iteration or field declaration order.
func Canonical(p Plan) (string, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("canonicalize plan: %w", err)
	}

	// Round-trip through untyped maps: encoding/json writes map keys in
	// sorted order, which gives the canonical layout for free.
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return "", fmt.Errorf("canonicalize plan: %w", err)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(generic); err != nil {
		return "", fmt.Errorf("canonicalize plan: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// Encode renders the interchange document in schema field order. With
// pretty set it indents with two spaces; otherwise the output is a single
// compact line. Non-ASCII text in the original request passes through
// unescaped either way.
func Encode(p Plan, pretty bool) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(p); err != nil {
		return "", fmt.Errorf("encode plan: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
