package costreport

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ReadFile parses the cost report stored in filename.
func ReadFile(filename string) (*Report, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening cost file %v: %w", filename, err)
	}
	defer file.Close()

	rep, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("parsing cost file %v: %w", filename, err)
	}
	return rep, nil
}

// Parse reads a cost report. The first HeaderLines lines are skipped, blank
// lines are ignored and every other line must describe one block.
func Parse(r io.Reader) (*Report, error) {
	rep := &Report{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if lineNo <= HeaderLines {
			continue
		}

		text := scanner.Text()
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		if len(fields) < MinFields {
			return nil, &ParseError{Line: lineNo, Text: text, Err: ErrMalformedLine}
		}

		diff, err := strconv.ParseFloat(fields[len(fields)-CostDiffFromEnd], 64)
		if err != nil {
			return nil, &ParseError{Line: lineNo, Text: text, Err: err}
		}

		rep.Blocks = append(rep.Blocks, Block{
			ID:       len(rep.Blocks),
			Decision: fields[DecisionField],
			CostDiff: diff,
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning cost report: %w", err)
	}

	return rep, nil
}
