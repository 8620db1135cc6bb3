// Package sched simulates four classical single-core CPU scheduling
// disciplines (FCFS, non-preemptive SJF, preemptive SRTF, Round Robin)
// over a fixed set of processes, producing a coalesced execution
// timeline and per-process timing for each.
package sched

import (
	"errors"
	"fmt"
)

// Process is one entry of the immutable input table. PIDs are arbitrary
// and carry no positional meaning; the table order is irrelevant too.
type Process struct {
	PID     int64
	Arrival int64
	Burst   int64
}

var (
	ErrNoProcesses    = errors.New("no processes")
	ErrInvalidArrival = errors.New("invalid arrival time")
	ErrInvalidBurst   = errors.New("invalid burst duration")
	ErrInvalidQuantum = errors.New("invalid time quantum")
)

// ValidateProcesses checks the input table. The drivers assume a table
// that has passed this check.
func ValidateProcesses(processes []Process) error {
	if len(processes) == 0 {
		return fmt.Errorf("%w: need at least one process", ErrNoProcesses)
	}
	for _, p := range processes {
		if p.Arrival < 0 {
			return fmt.Errorf("%w: process %d arrives at %d", ErrInvalidArrival, p.PID, p.Arrival)
		}
		if p.Burst <= 0 {
			return fmt.Errorf("%w: process %d bursts for %d", ErrInvalidBurst, p.PID, p.Burst)
		}
	}
	return nil
}

// ValidateQuantum checks the round-robin time quantum.
func ValidateQuantum(quantum int64) error {
	if quantum <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidQuantum, quantum)
	}
	return nil
}
