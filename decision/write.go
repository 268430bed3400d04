package decision

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// Table returns the header followed by the rows of every workload.
func Table(workloads []*Workload) [][]string {
	records := make([][]string, 0, 1+len(workloads)*5)
	records = append(records, Header)
	for _, w := range workloads {
		for _, r := range w.Rows() {
			records = append(records, r.Record())
		}
	}
	return records
}

// WriteCSV writes the table to w.
func WriteCSV(w io.Writer, workloads []*Workload) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(Table(workloads)); err != nil {
		return fmt.Errorf("writing CSV: %w", err)
	}
	return nil
}

// WriteCSVFile writes the table to filename.
func WriteCSVFile(filename string, workloads []*Workload) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating %v: %w", filename, err)
	}
	defer file.Close()

	if err := WriteCSV(file, workloads); err != nil {
		return err
	}
	return file.Close()
}

// SheetName is the worksheet holding the table in the XLSX output.
const SheetName = "decision"

// WriteXLSX writes the table as a spreadsheet to filename. Numeric cells are
// stored as numbers, empty cells are left blank.
func WriteXLSX(filename string, workloads []*Workload) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return err
	}

	for i, record := range Table(workloads) {
		cells := make([]interface{}, len(record))
		for j, v := range record {
			if v == "" {
				continue
			}
			if num, err := strconv.ParseFloat(v, 64); err == nil {
				cells[j] = num
			} else {
				cells[j] = v
			}
		}

		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetName, cell, &cells); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := f.SetRowStyle(SheetName, 1, 1, bold); err != nil {
		return err
	}

	if err := f.SaveAs(filename); err != nil {
		return fmt.Errorf("saving %v: %w", filename, err)
	}
	return nil
}
