// Package json5 implements a JSON5 lexer, parser, and generator: a
// strict superset of JSON supporting comments, trailing commas,
// unquoted identifier keys, single-quoted strings, and extended number
// literals (hex, leading/trailing decimal points, signed values,
// Infinity/NaN).
package json5

import (
	"fmt"
	"io"
	"os"
)

// ParseFile reads and parses the JSON5 document at path.
func ParseFile(path string) (*Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("json5: %w", err)
	}
	return ParseBytes(data)
}

// ParseReader reads r to completion and parses it as a JSON5 document.
func ParseReader(r io.Reader) (*Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("json5: %w", err)
	}
	return ParseBytes(data)
}
