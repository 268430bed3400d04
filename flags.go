package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/pimprof/pimviz/heatmap"
)

// global command line parameters
var output *string
var width *int
var pimMax *float64
var cpuMax *float64
var cfgFile *string
var cfgFormat *string
var verbose *bool

// parseArgs returns the cost file and the requested block range. A missing
// bound is -1.
func parseArgs() (string, int, int) {
	output = flag.String("o", "cfgheatmap.pdf", "Output file of the heat map, the extension selects the format")
	width = flag.Int("width", heatmap.DefaultWidth, "Number of basic blocks per heat map row")

	pimMax = flag.Float64("pim-max", heatmap.DefaultSaturation.PIMMax, "Cost differential at which the PIM friendly color saturates")
	cpuMax = flag.Float64("cpu-max", heatmap.DefaultSaturation.CPUMax, "Cost differential at which the CPU friendly color saturates")

	cfgFile = flag.String("cfg", "", "CFG file; if set the CFG heat map is drawn as well")
	cfgFormat = flag.String("cfg-format", "pdf", "Graphviz output format of the CFG heat map")

	verbose = flag.Bool("v", false, "Print debug output")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <costfile> [lb] [ub]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 || flag.NArg() > 3 {
		flag.Usage()
		os.Exit(2)
	}
	if *width < 1 {
		fmt.Println("width must be > 0")
		os.Exit(2)
	}

	bounds := []int{-1, -1}
	for i, arg := range flag.Args()[1:] {
		v, err := strconv.Atoi(arg)
		if err != nil {
			fmt.Printf("block bound %q is not an integer\n", arg)
			os.Exit(2)
		}
		bounds[i] = v
	}

	return flag.Arg(0), bounds[0], bounds[1]
}

func saturation() heatmap.Saturation {
	return heatmap.Saturation{PIMMax: *pimMax, CPUMax: *cpuMax}
}
