// Command reptonmatrix builds the generator matrix of a repton chain and
// writes it as a normalized grayscale PNG, a spreadsheet, or CSV,
// depending on the output extension.
//
// Usage:
//
//	reptonmatrix [-o OUT] [-workers N] LINK_COUNT H C
//
// H is the rate of every hernia move plus end contraction and wiggle;
// C is the barrier-crossing rate; reptation and end extension are fixed
// at 1.0.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/repton/chain"
	"github.com/katalvlaran/repton/render"
	"github.com/katalvlaran/repton/statespace"
)

func main() {
	out := flag.String("o", "matrix.png", "output path (.png, .xlsx or .csv)")
	workers := flag.Int("workers", 0, "expansion fan-out (0 = GOMAXPROCS)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			"usage: %s [-o OUT] [-workers N] LINK_COUNT H C\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if flag.NArg() != 3 {
		flag.Usage()
		os.Exit(2)
	}
	n, err := strconv.Atoi(flag.Arg(0))
	if err != nil {
		logger.Error("invalid LINK_COUNT", "arg", flag.Arg(0), "error", err)
		os.Exit(2)
	}
	h, err := strconv.ParseFloat(flag.Arg(1), 64)
	if err != nil {
		logger.Error("invalid H", "arg", flag.Arg(1), "error", err)
		os.Exit(2)
	}
	c, err := strconv.ParseFloat(flag.Arg(2), 64)
	if err != nil {
		logger.Error("invalid C", "arg", flag.Arg(2), "error", err)
		os.Exit(2)
	}

	table := chain.RateTable[float64]{
		chain.Reptation:          1.0,
		chain.HerniaCreation:     h,
		chain.HerniaAnnihilation: h,
		chain.HerniaRedirection:  h,
		chain.BarrierCrossing:    c,
		chain.EndExtension:       1.0,
		chain.EndContraction:     h,
		chain.EndWiggle:          h,
	}

	start := time.Now()
	m, err := statespace.NewRateMatrix(n, table, statespace.WithWorkers(*workers))
	if err != nil {
		logger.Error("matrix assembly failed", "links", n, "error", err)
		os.Exit(1)
	}
	d, err := render.Dense(m)
	if err != nil {
		logger.Error("dense conversion failed", "error", err)
		os.Exit(1)
	}
	sum, err := render.Summarize(d)
	if err != nil {
		logger.Error("rate summary failed", "error", err)
		os.Exit(1)
	}
	logger.Info("generator matrix built",
		"links", n, "states", sum.States, "nonzero", sum.Nonzero,
		"min", sum.Min, "max", sum.Max, "mean", sum.Mean, "median", sum.Median,
		"elapsed", time.Since(start))

	if err = write(*out, m, d); err != nil {
		logger.Error("write failed", "out", *out, "error", err)
		os.Exit(1)
	}
	logger.Info("matrix written", "out", *out)
}

// write dispatches on the output extension: spreadsheet, CSV, or PNG.
func write(path string, m *statespace.Matrix[float64], d *mat.Dense) error {
	switch filepath.Ext(path) {
	case ".xlsx":
		return render.WriteXLSX(path, m)
	case ".csv":
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer func() { _ = f.Close() }()

		return render.WriteCSV(f, m)
	default:
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer func() { _ = f.Close() }()

		return render.WritePNG(f, d)
	}
}
