package sched

// SRTF keeps the process with the least remaining time on the CPU and
// preempts it whenever a new arrival undercuts it. The clock advances
// in whole run lengths rather than unit ticks: the running process
// either finishes before the next arrival, or runs exactly until that
// arrival and goes back to the ready set with its key reduced. Only the
// next arrival can change which process ranks best, so nothing is lost
// by not stopping in between.
func SRTF(processes []Process) Result {
	var (
		clock     int64
		tl        timeline
		times     = newTimes(processes)
		order     = admissionOrder(processes)
		next      int
		completed int
		remaining = make([]int64, len(processes))
	)
	for i, p := range processes {
		remaining[i] = p.Burst
	}
	ready := newReadySet(processes, func(i int) int64 { return remaining[i] })

	for completed < len(processes) {
		for next < len(order) && processes[order[next]].Arrival <= clock {
			ready.Insert(order[next])
			next++
		}
		if ready.Len() == 0 {
			arrival := nextArrival(processes, order, next, "SRTF")
			tl.idle(clock, arrival)
			clock = arrival
			continue
		}

		i := ready.PeekMin()
		if times[i].Start == -1 {
			times[i].Start = clock
		}
		finish := clock + remaining[i]

		if next < len(order) && processes[order[next]].Arrival < finish {
			// Run only up to the next arrival, which may undercut the
			// remaining time. The key changes, so take the entry out,
			// shorten it and reinsert; whether it still ranks best is
			// re-decided next iteration.
			arrival := processes[order[next]].Arrival
			ready.ExtractMin()
			remaining[i] -= arrival - clock
			tl.run(processes[i].PID, clock, arrival)
			clock = arrival
			ready.Insert(i)
			continue
		}

		// Nothing arrives before it would finish; run to completion.
		ready.ExtractMin()
		tl.run(processes[i].PID, clock, finish)
		clock = finish
		remaining[i] = 0
		times[i].End = clock
		completed++
	}
	return Result{Algorithm: "SRTF", Timeline: tl.slices, Times: times}
}
