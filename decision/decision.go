// Package decision collects the per workload offloading reports of the solver
// into one table comparing the offloading policies.
package decision

import (
	"errors"
	"fmt"
)

// Layout of a workload report. Lines 1 and 2 hold the CPU only and PIM only
// time, line 3 is not used and lines 4 to 6 break the MPKI, greedy and
// reuse aware optimal offloading time down:
//
//	CPU only time (ns): 1000
//	PIM only time (ns): 2000
//	...
//	MPKI offloading time (ns): 900 = CPU 500 + PIM 300 + REUSE 50 + SWITCH 50
//
// Field positions are 0 based after splitting on whitespace.
const (
	ReportLines = 6

	OnlyTimeField = 4

	CPUField    = 7
	PIMField    = 10
	ReuseField  = 13
	SwitchField = 16

	// ExtLen is the length of the report file extension, e.g. ".out".
	ExtLen = 4
)

// Policy names as written to the table.
const (
	PolicyCPUOnly = "CPU-only"
	PolicyPIMOnly = "PIM-only"
	PolicyMPKI    = "MPKI"
	PolicyGreedy  = "Greedy"
	PolicyOpt     = "Opt"
)

// Header is the first row of the table.
var Header = []string{"", "", "CPU", "PIM", "Reuse", "Switch"}

var (
	// ErrShortReport is returned for a report with less than ReportLines lines.
	ErrShortReport = errors.New("report too short")
	// ErrMalformedLine is returned for a report line with missing fields.
	ErrMalformedLine = errors.New("malformed report line")
)

// ReportError reports the file and line of a report that could not be read.
type ReportError struct {
	File string
	Line int
	Err  error
}

func (e *ReportError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("%v: %v", e.File, e.Err)
	}
	return fmt.Sprintf("%v:%d: %v", e.File, e.Line, e.Err)
}

func (e *ReportError) Unwrap() error {
	return e.Err
}

// Metrics is the time breakdown of one policy. Fields that do not apply to a
// policy are empty.
type Metrics struct {
	CPU    string
	PIM    string
	Reuse  string
	Switch string
}

// Row is one line of the table.
type Row struct {
	Workload string
	Policy   string
	Metrics
}

// Record returns the row as CSV record.
func (r Row) Record() []string {
	return []string{r.Workload, r.Policy, r.CPU, r.PIM, r.Reuse, r.Switch}
}

// Workload holds the values extracted from one report.
type Workload struct {
	Name string

	CPUOnly string
	PIMOnly string

	MPKI   Metrics
	Greedy Metrics
	Opt    Metrics
}

// Rows returns the five rows of the workload. Only the first one carries the
// workload name.
func (w *Workload) Rows() []Row {
	return []Row{
		{Workload: w.Name, Policy: PolicyCPUOnly, Metrics: Metrics{CPU: w.CPUOnly}},
		{Policy: PolicyPIMOnly, Metrics: Metrics{PIM: w.PIMOnly}},
		{Policy: PolicyMPKI, Metrics: w.MPKI},
		{Policy: PolicyGreedy, Metrics: w.Greedy},
		{Policy: PolicyOpt, Metrics: w.Opt},
	}
}

// WorkloadName strips the extension from a report file name.
func WorkloadName(filename string) string {
	if len(filename) <= ExtLen {
		return ""
	}
	return filename[:len(filename)-ExtLen]
}
