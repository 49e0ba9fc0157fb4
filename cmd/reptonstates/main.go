// Command reptonstates enumerates every configuration of a repton chain
// with the given number of links and prints them one per line, in the
// deterministic render order.
//
// Usage:
//
//	reptonstates [-workers N] LINK_COUNT
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/katalvlaran/repton/render"
	"github.com/katalvlaran/repton/statespace"
)

func main() {
	workers := flag.Int("workers", 0, "expansion fan-out (0 = GOMAXPROCS)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [-workers N] LINK_COUNT\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	n, err := strconv.Atoi(flag.Arg(0))
	if err != nil {
		logger.Error("invalid LINK_COUNT", "arg", flag.Arg(0), "error", err)
		os.Exit(2)
	}

	start := time.Now()
	states, err := statespace.All(n, statespace.WithWorkers(*workers))
	if err != nil {
		logger.Error("state-space closure failed", "links", n, "error", err)
		os.Exit(1)
	}
	logger.Info("state space enumerated",
		"links", n, "states", len(states), "elapsed", time.Since(start))

	for _, p := range render.Order(states) {
		fmt.Println(p)
	}
}
