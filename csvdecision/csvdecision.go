package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/pimprof/pimviz/decision"
)

func main() {
	xlsx := flag.Bool("xlsx", false, "Also write "+decision.XLSXFile)
	gnuplot := flag.Bool("gnuplot", false, "Also write the gnuplot script "+decision.GnuplotFile)
	verbose := flag.Bool("v", false, "Print debug output")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <directory>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}
	dir := flag.Arg(0)

	workloads, err := decision.Aggregate(dir)
	if err != nil {
		log.WithError(err).Fatalln("Cannot read reports")
	}

	log.Infoln("Found reports for the following workloads:")
	for i, w := range workloads {
		log.WithFields(log.Fields{
			"workload": w.Name,
		}).Infof("%v", i)
	}

	csvFile := filepath.Join(dir, decision.CSVFile)
	log.Infoln("Creating", csvFile)
	if err := decision.WriteCSVFile(csvFile, workloads); err != nil {
		log.WithError(err).Fatalln("Cannot write CSV file")
	}

	if *xlsx {
		xlsxFile := filepath.Join(dir, decision.XLSXFile)
		log.Infoln("Creating", xlsxFile)
		if err := decision.WriteXLSX(xlsxFile, workloads); err != nil {
			log.WithError(err).Fatalln("Cannot write XLSX file")
		}
	}

	if *gnuplot {
		if err := writeGnuplotFile(dir, workloads); err != nil {
			log.WithError(err).Fatalln("Cannot write gnuplot file")
		}
	}
}

func writeGnuplotFile(dir string, workloads []*decision.Workload) error {
	filename := filepath.Join(dir, decision.GnuplotFile)
	log.Infoln("Creating plot file", filename)

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := decision.WriteGnuplot(file, decision.CSVFile, decision.PDFFile, workloads); err != nil {
		return err
	}
	return file.Close()
}
