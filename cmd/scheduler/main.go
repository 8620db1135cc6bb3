package main

import (
	"flag"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/sneharc16/CPU-Scheduling-Algorithms/sched"
)

func main() {
	var (
		quantum = flag.Int64("quantum", 2, "time quantum for round robin")
		csvPath = flag.String("csv", "", "write per-process results to this CSV file")
		verbose = flag.Bool("verbose", false, "log per-algorithm details")
	)
	flag.Parse()
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	// Interactive input carries its own quantum prompt, matching the
	// flag default otherwise.
	processes, promptedQuantum, err := loadInput(flag.Args())
	if err != nil {
		log.Fatal(err)
	}
	if promptedQuantum > 0 {
		*quantum = promptedQuantum
	}

	results, err := sched.Simulate(processes, *quantum)
	if err != nil {
		log.Fatal(err)
	}

	summaries := make([]sched.Metrics, len(results))
	for i, r := range results {
		m := sched.Summarize(r.Times)
		summaries[i] = m
		log.WithFields(log.Fields{
			"algorithm":      r.Algorithm,
			"slices":         len(r.Timeline),
			"avg_wait":       fmt.Sprintf("%.2f", m.AvgWaiting),
			"avg_turnaround": fmt.Sprintf("%.2f", m.AvgTurnaround),
		}).Debug("simulated")
		outputResult(os.Stdout, r, m)
	}

	if *csvPath != "" {
		if err := writeResultsCSV(*csvPath, results, summaries); err != nil {
			log.Fatal(err)
		}
		log.WithField("path", *csvPath).Debug("wrote results CSV")
	}
}
