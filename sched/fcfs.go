package sched

// FCFS runs every process to completion in arrival order. When the next
// process has not arrived yet the clock jumps straight to its arrival,
// leaving an idle slice for the gap.
func FCFS(processes []Process) Result {
	var (
		clock int64
		tl    timeline
		times = newTimes(processes)
	)
	for _, i := range admissionOrder(processes) {
		if arrival := processes[i].Arrival; clock < arrival {
			tl.idle(clock, arrival)
			clock = arrival
		}
		times[i].Start = clock
		clock += processes[i].Burst
		times[i].End = clock
		tl.run(processes[i].PID, times[i].Start, clock)
	}
	return Result{Algorithm: "FCFS", Timeline: tl.slices, Times: times}
}
