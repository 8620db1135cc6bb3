package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sneharc16/CPU-Scheduling-Algorithms/sched"
)

var ErrInvalidRow = errors.New("invalid process row")

// loadInput reads the process table from the CSV file named by the
// first argument, or interactively from stdin when no file is given.
// The returned quantum is 0 unless the interactive prompts supplied one.
func loadInput(args []string) ([]sched.Process, int64, error) {
	if len(args) == 0 {
		return readInteractive(os.Stdin, os.Stdout)
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, 0, fmt.Errorf("opening scheduling file: %w", err)
	}
	defer f.Close()

	processes, err := loadProcesses(f)
	return processes, 0, err
}

// loadProcesses parses pid,arrival,burst rows.
func loadProcesses(r io.Reader) ([]sched.Process, error) {
	rows, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}

	processes := make([]sched.Process, len(rows))
	for i, row := range rows {
		if len(row) != 3 {
			return nil, fmt.Errorf("%w: line %d has %d fields, want 3", ErrInvalidRow, i+1, len(row))
		}
		var fields [3]int64
		for j, cell := range row {
			fields[j], err = strconv.ParseInt(strings.TrimSpace(cell), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrInvalidRow, i+1, err)
			}
		}
		processes[i] = sched.Process{PID: fields[0], Arrival: fields[1], Burst: fields[2]}
	}

	return processes, nil
}

// readInteractive prompts for a process count, one "PID Arrival Burst"
// line per process, and a time quantum.
func readInteractive(r io.Reader, w io.Writer) ([]sched.Process, int64, error) {
	fmt.Fprint(w, "Number of processes: ")
	var n int
	if _, err := fmt.Fscan(r, &n); err != nil {
		return nil, 0, fmt.Errorf("reading process count: %w", err)
	}
	if n <= 0 {
		return nil, 0, fmt.Errorf("%w: need at least one process", sched.ErrNoProcesses)
	}

	fmt.Fprintln(w, "Enter one process per line: PID Arrival Burst")
	processes := make([]sched.Process, n)
	for i := range processes {
		p := &processes[i]
		if _, err := fmt.Fscan(r, &p.PID, &p.Arrival, &p.Burst); err != nil {
			return nil, 0, fmt.Errorf("reading process %d: %w", i+1, err)
		}
	}

	fmt.Fprint(w, "Time quantum: ")
	var quantum int64
	if _, err := fmt.Fscan(r, &quantum); err != nil {
		return nil, 0, fmt.Errorf("reading time quantum: %w", err)
	}

	return processes, quantum, nil
}
