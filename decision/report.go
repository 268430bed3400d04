package decision

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Output files written by the aggregator into the report directory.
const (
	CSVFile     = "decision.csv"
	XLSXFile    = "decision.xlsx"
	GnuplotFile = "decision.plot"
	// PDFFile is written by the gnuplot script.
	PDFFile = "decision.pdf"
)

// maxLineLength bounds a single report line.
const maxLineLength = 64 * 1024 * 1024

// ParseReport reads the report of one workload. filename names the report in
// errors and provides the workload name.
func ParseReport(filename string, r io.Reader) (*Workload, error) {
	var lines [ReportLines][]string

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	n := 0
	for n < ReportLines && scanner.Scan() {
		lines[n] = strings.Fields(scanner.Text())
		n++
	}
	if err := scanner.Err(); err != nil {
		return nil, &ReportError{File: filename, Err: err}
	}
	if n < ReportLines {
		return nil, &ReportError{File: filename, Err: fmt.Errorf("%w: %d of %d lines", ErrShortReport, n, ReportLines)}
	}

	field := func(line, pos int) (string, error) {
		if pos >= len(lines[line]) {
			return "", &ReportError{File: filename, Line: line + 1, Err: fmt.Errorf("%w: no field %d", ErrMalformedLine, pos)}
		}
		return lines[line][pos], nil
	}
	breakdown := func(line int) (Metrics, error) {
		var m Metrics
		var err error
		if m.CPU, err = field(line, CPUField); err != nil {
			return m, err
		}
		if m.PIM, err = field(line, PIMField); err != nil {
			return m, err
		}
		if m.Reuse, err = field(line, ReuseField); err != nil {
			return m, err
		}
		m.Switch, err = field(line, SwitchField)
		return m, err
	}

	w := &Workload{Name: WorkloadName(filepath.Base(filename))}
	var err error

	if w.CPUOnly, err = field(0, OnlyTimeField); err != nil {
		return nil, err
	}
	if w.PIMOnly, err = field(1, OnlyTimeField); err != nil {
		return nil, err
	}
	// line 3 is not used
	if w.MPKI, err = breakdown(3); err != nil {
		return nil, err
	}
	if w.Greedy, err = breakdown(4); err != nil {
		return nil, err
	}
	if w.Opt, err = breakdown(5); err != nil {
		return nil, err
	}

	return w, nil
}

// ReadReport reads the report stored in filename.
func ReadReport(filename string) (*Workload, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return ParseReport(filename, file)
}

// Aggregate reads every regular file of dir in file name order. Output files
// of a previous run are skipped. The first unreadable report aborts.
func Aggregate(dir string) ([]*Workload, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing %v: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		switch e.Name() {
		case CSVFile, XLSXFile, GnuplotFile, PDFFile:
			continue
		}
		// follow symlinks
		info, err := os.Stat(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		if info.Mode().IsRegular() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	workloads := make([]*Workload, 0, len(names))
	for _, name := range names {
		log.WithField("file", name).Infoln("Reading report")

		w, err := ReadReport(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		workloads = append(workloads, w)
	}

	return workloads, nil
}
