// Package jsonl decodes newline-delimited JSON payloads.
package jsonl

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
)

const maxLineSize = 16 * 1024 * 1024

// Lines splits data into its JSON entries, one per line, preserving order.
// Blank lines are tolerated and skipped. A line that fails to parse aborts
// the whole decode with an error naming the offending line.
func Lines(data []byte) ([]json.RawMessage, error) {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var entries []json.RawMessage
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var probe any
		if err := json.Unmarshal(line, &probe); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		entries = append(entries, json.RawMessage(bytes.Clone(line)))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}
