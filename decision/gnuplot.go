package decision

import (
	"fmt"
	"io"
	"strings"
)

// WriteGnuplot writes a gnuplot script that plots the CSV table csvName as
// one stacked histogram per workload. The script writes pdfName and must be
// run from the directory holding the CSV file.
func WriteGnuplot(w io.Writer, csvName, pdfName string, workloads []*Workload) error {
	if len(workloads) == 0 {
		return fmt.Errorf("no workloads to plot")
	}

	var ret string
	ret += "set terminal pdf\n"
	ret += "set output '" + pdfName + "'\n"

	ret += "set datafile separator ','\n"
	ret += "set datafile missing ''\n"
	ret += "set style data histograms\n"
	ret += "set style histogram rowstacked\n"
	ret += "set style fill solid border -1\n"
	ret += "set boxwidth 0.8\n"
	ret += "set key outside right top\n"
	ret += "set xtics rotate by -45\n"
	ret += "unset x2tics\n"
	ret += "unset y2tics\n"
	ret += "set border 3\n"

	ret += "set ylabel 'Time (ns)'\n"

	columns := Header[2:]

	var plots []string
	for i, wl := range workloads {
		// the header is line 0, every workload takes 5 lines
		first := 1 + i*5
		last := first + 4
		every := fmt.Sprintf("every ::%d::%d", first, last)

		for j, col := range columns {
			var p string
			if j == 0 {
				p = "newhistogram '" + escape(wl.Name) + "', '" + escape(csvName) + "' " + every + fmt.Sprintf(" using %d:xtic(2)", j+3)
			} else {
				p = "'' " + every + fmt.Sprintf(" using %d", j+3)
			}
			if i == 0 {
				p += " title '" + col + "'"
			} else {
				p += " notitle"
			}
			p += fmt.Sprintf(" lc %d", j+1)
			plots = append(plots, p)
		}
	}
	ret += "plot " + strings.Join(plots, ", \\\n     ") + "\n"

	_, err := io.WriteString(w, ret)
	return err
}

func escape(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
