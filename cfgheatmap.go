package main

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/pimprof/pimviz/cfg"
	"github.com/pimprof/pimviz/costreport"
	"github.com/pimprof/pimviz/heatmap"
)

// name of the CFG heat map, Graphviz style
const cfgDotFile = "cfgheatmap.gv"

func main() {
	costFile, lb, ub := parseArgs()

	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	sat := saturation()
	if err := sat.Validate(); err != nil {
		log.WithError(err).Fatalln("Invalid saturation")
	}

	rep, err := costreport.ReadFile(costFile)
	if err != nil {
		log.WithError(err).Fatalln("Cannot read cost file")
	}

	lb, ub, err = rep.Range(lb, ub)
	if err != nil {
		log.WithError(err).Fatalln("Cannot select blocks")
	}

	log.WithFields(log.Fields{
		"file":   costFile,
		"blocks": rep.Len(),
		"lb":     lb,
		"ub":     ub,
	}).Infoln("Read cost file")

	sel := rep.Slice(lb, ub)
	logSummary(sel)

	if *cfgFile != "" {
		if err := drawCFG(rep, lb, ub, sat); err != nil {
			log.WithError(err).Fatalln("Cannot draw CFG heat map")
		}
	}

	grid, err := heatmap.BuildGrid(sel.CostDiffs(), sel.Decisions(), *width)
	if err != nil {
		log.WithError(err).Fatalln("Cannot build heat map")
	}
	debugGrid(grid)

	log.Infoln("Creating heat map", *output)
	if err := heatmap.Save(grid, *output, heatmap.DefaultRenderOptions()); err != nil {
		log.WithError(err).Fatalln("Cannot write heat map")
	}
}

func drawCFG(rep *costreport.Report, lb, ub int, sat heatmap.Saturation) error {
	c, err := cfg.ReadFile(*cfgFile)
	if err != nil {
		return err
	}

	g, err := cfg.Build(c, rep.CostDiffs(), rep.Decisions(), lb, ub, sat)
	if err != nil {
		return err
	}

	out := cfgDotFile + "." + *cfgFormat
	log.Infoln("Creating CFG heat map", out)
	return cfg.Render(g, cfgDotFile, out, *cfgFormat)
}

func logSummary(sel *costreport.Report) {
	s, err := costreport.Summarize(sel)
	if err != nil {
		log.WithError(err).Warnln("Cannot summarize selected blocks")
		return
	}
	log.WithFields(log.Fields{
		"pim":    s.PIMBlocks,
		"min":    s.Min,
		"max":    s.Max,
		"mean":   s.Mean,
		"median": s.Median,
	}).Infof("%v blocks selected", s.Blocks)
}

func debugGrid(g *heatmap.Grid) {
	if !log.IsLevelEnabled(log.DebugLevel) {
		return
	}
	for i, row := range g.Values {
		vals := make([]string, len(row))
		for j, v := range row {
			vals[j] = fmt.Sprintf("%6.3f", v)
		}
		log.WithField("row", i).Debugln(strings.Join(vals, " "), g.Labels[i])
	}
	log.WithField("limit", g.Limit).Debugln("color scale")
}
