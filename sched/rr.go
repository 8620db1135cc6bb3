package sched

// RR hands each queued process one quantum at a time in FIFO order.
// Processes that arrive during a slice are enqueued before the
// preempted process is put back, so a fresh arrival never waits behind
// a process that already had its turn.
func RR(processes []Process, quantum int64) Result {
	var (
		clock     int64
		tl        timeline
		times     = newTimes(processes)
		order     = admissionOrder(processes)
		next      int
		completed int
		remaining = make([]int64, len(processes))
		queue     []int
	)
	for i, p := range processes {
		remaining[i] = p.Burst
	}
	admit := func() {
		for next < len(order) && processes[order[next]].Arrival <= clock {
			queue = append(queue, order[next])
			next++
		}
	}
	admit()

	for completed < len(processes) {
		if len(queue) == 0 {
			arrival := nextArrival(processes, order, next, "RR")
			tl.idle(clock, arrival)
			clock = arrival
			admit()
			continue
		}

		i := queue[0]
		queue = queue[1:]
		if times[i].Start == -1 {
			times[i].Start = clock
		}

		slice := min(remaining[i], quantum)
		tl.run(processes[i].PID, clock, clock+slice)
		clock += slice
		remaining[i] -= slice

		// New arrivals during the slice queue up ahead of the preempted
		// process.
		admit()

		if remaining[i] == 0 {
			times[i].End = clock
			completed++
		} else {
			queue = append(queue, i)
		}
	}
	return Result{Algorithm: "RR", Timeline: tl.slices, Times: times}
}
