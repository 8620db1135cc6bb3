package sched

// ProcessTimes pairs a process with its observed times under one
// algorithm. Start is the first dispatch and End the completion; both
// hold -1 until recorded, and a returned Result always has both set.
type ProcessTimes struct {
	Process
	Start int64
	End   int64
}

// Result is one algorithm's complete schedule: the coalesced timeline
// plus per-process times, indexed like the input table.
type Result struct {
	Algorithm string
	Timeline  []TimeSlice
	Times     []ProcessTimes
}

// DispatchOrder returns the PID of each non-idle slice in order, one
// entry per context switch.
func (r Result) DispatchOrder() []int64 {
	var pids []int64
	for _, s := range r.Timeline {
		if !s.Idle {
			pids = append(pids, s.PID)
		}
	}
	return pids
}

func newTimes(processes []Process) []ProcessTimes {
	times := make([]ProcessTimes, len(processes))
	for i, p := range processes {
		times[i] = ProcessTimes{Process: p, Start: -1, End: -1}
	}
	return times
}

// Simulate validates the input once and runs all four disciplines over
// it. Any validation error aborts the whole run; there are no partial
// per-algorithm results.
func Simulate(processes []Process, quantum int64) ([]Result, error) {
	if err := ValidateProcesses(processes); err != nil {
		return nil, err
	}
	if err := ValidateQuantum(quantum); err != nil {
		return nil, err
	}
	return []Result{
		FCFS(processes),
		SJF(processes),
		SRTF(processes),
		RR(processes, quantum),
	}, nil
}
