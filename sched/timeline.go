package sched

// TimeSlice is one maximal run of the schedule: a single process, or
// the idle CPU, owning [Start, Stop). Idle gaps carry an explicit flag
// instead of a sentinel PID because PIDs are arbitrary integers.
type TimeSlice struct {
	PID   int64
	Idle  bool
	Start int64
	Stop  int64
}

// timeline accumulates slices left to right and merges adjacent runs of
// the same owner, so the finished list never has two consecutive slices
// with the same owner and never has gaps.
type timeline struct {
	slices []TimeSlice
}

// run records [from, to) executed by pid.
func (t *timeline) run(pid, from, to int64) {
	t.extend(TimeSlice{PID: pid, Start: from, Stop: to})
}

// idle records [from, to) with nothing on the CPU.
func (t *timeline) idle(from, to int64) {
	t.extend(TimeSlice{Idle: true, Start: from, Stop: to})
}

func (t *timeline) extend(s TimeSlice) {
	if s.Start >= s.Stop {
		return
	}
	if n := len(t.slices); n > 0 {
		last := &t.slices[n-1]
		if last.Idle == s.Idle && (s.Idle || last.PID == s.PID) {
			last.Stop = s.Stop
			return
		}
	}
	t.slices = append(t.slices, s)
}
