// Package cfg draws the control flow graph of a block range with every block
// colored by its cost differential.
package cfg

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// CFG maps a block ID to the IDs of its successors.
type CFG struct {
	MaxBlockID int
	Successors [][]int
}

// ErrMalformedCFG is returned when a CFG file cannot be parsed.
var ErrMalformedCFG = errors.New("malformed CFG file")

// ReadFile reads a CFG from filename.
func ReadFile(filename string) (*CFG, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening CFG file %v: %w", filename, err)
	}
	defer file.Close()

	c, err := Read(file)
	if err != nil {
		return nil, fmt.Errorf("reading CFG file %v: %w", filename, err)
	}
	return c, nil
}

// Read parses a CFG dump. The first line holds the largest block ID, every
// following line lists a block and its successors:
//
//	<max block id>
//	<block id> <successor> <successor> ...
//
// The n-th block line belongs to block n. Empty lines and lines starting with
// '#' are ignored.
func Read(r io.Reader) (*CFG, error) {
	var c *CFG

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		temp := strings.TrimSpace(scanner.Text())
		if len(temp) == 0 || temp[0] == '#' {
			continue
		}
		fields := strings.Fields(temp)

		if c == nil {
			maxID, err := strconv.Atoi(fields[0])
			if err != nil || len(fields) != 1 {
				return nil, fmt.Errorf("%w: line %d: expected the largest block ID", ErrMalformedCFG, lineNo)
			}
			c = &CFG{MaxBlockID: maxID}
			continue
		}

		succs := make([]int, 0, len(fields)-1)
		for _, f := range fields[1:] {
			id, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedCFG, lineNo, err)
			}
			succs = append(succs, id)
		}
		c.Successors = append(c.Successors, succs)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning CFG: %w", err)
	}
	if c == nil {
		return nil, fmt.Errorf("%w: empty file", ErrMalformedCFG)
	}

	return c, nil
}

// Succ returns the successors of block id.
func (c *CFG) Succ(id int) []int {
	if id < 0 || id >= len(c.Successors) {
		return nil
	}
	return c.Successors[id]
}
