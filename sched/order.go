package sched

import (
	"fmt"
	"sort"
)

// arrivalBefore reports whether a is admitted ahead of b: earlier
// arrival first, ties broken by PID so the order is total.
func arrivalBefore(a, b Process) bool {
	if a.Arrival != b.Arrival {
		return a.Arrival < b.Arrival
	}
	return a.PID < b.PID
}

// rankBefore orders a ahead of b by rank (total burst for SJF, current
// remaining time for SRTF); ties fall back to arrival then PID.
func rankBefore(rankA, rankB int64, a, b Process) bool {
	if rankA != rankB {
		return rankA < rankB
	}
	return arrivalBefore(a, b)
}

// admissionOrder returns the process indices sorted by arrival then PID.
// Every driver admits processes in this order.
func admissionOrder(processes []Process) []int {
	order := make([]int, len(processes))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return arrivalBefore(processes[order[i]], processes[order[j]])
	})
	return order
}

// nextArrival is the arrival time of the first not-yet-admitted process.
// A driver only asks when its ready set is empty; running dry here means
// it lost track of a process, which is a bug rather than a bad input.
func nextArrival(processes []Process, order []int, next int, algorithm string) int64 {
	if next >= len(order) {
		panic(fmt.Sprintf("sched: %s ready set empty with no future arrivals", algorithm))
	}
	return processes[order[next]].Arrival
}
