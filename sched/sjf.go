package sched

// SJF dispatches the shortest total burst among arrived processes and
// runs it to completion without preemption.
func SJF(processes []Process) Result {
	var (
		clock     int64
		tl        timeline
		times     = newTimes(processes)
		order     = admissionOrder(processes)
		next      int
		completed int
	)
	ready := newReadySet(processes, func(i int) int64 { return processes[i].Burst })

	for completed < len(processes) {
		for next < len(order) && processes[order[next]].Arrival <= clock {
			ready.Insert(order[next])
			next++
		}
		if ready.Len() == 0 {
			arrival := nextArrival(processes, order, next, "SJF")
			tl.idle(clock, arrival)
			clock = arrival
			continue
		}
		i := ready.ExtractMin()
		times[i].Start = clock
		clock += processes[i].Burst
		times[i].End = clock
		tl.run(processes[i].PID, times[i].Start, clock)
		completed++
	}
	return Result{Algorithm: "SJF", Timeline: tl.slices, Times: times}
}
