package sched

import "container/heap"

// readySet ranks the indices of arrived, unfinished processes. The key
// function supplies the rank: static burst for SJF, live remaining time
// for SRTF. Ties fall back to arrival then PID. Keys of resident
// entries must not change; SRTF takes an entry out before shortening
// its remaining time and reinserts it afterwards.
type readySet struct {
	processes []Process
	key       func(i int) int64
	indices   []int
}

func newReadySet(processes []Process, key func(i int) int64) *readySet {
	return &readySet{processes: processes, key: key}
}

func (rs *readySet) Len() int { return len(rs.indices) }

func (rs *readySet) Less(i, j int) bool {
	a, b := rs.indices[i], rs.indices[j]
	return rankBefore(rs.key(a), rs.key(b), rs.processes[a], rs.processes[b])
}

func (rs *readySet) Swap(i, j int) {
	rs.indices[i], rs.indices[j] = rs.indices[j], rs.indices[i]
}

func (rs *readySet) Push(x any) {
	rs.indices = append(rs.indices, x.(int))
}

func (rs *readySet) Pop() any {
	old := rs.indices
	n := len(old)
	idx := old[n-1]
	rs.indices = old[:n-1]
	return idx
}

// Insert adds the process at table index i.
func (rs *readySet) Insert(i int) { heap.Push(rs, i) }

// ExtractMin removes and returns the best-ranked index.
func (rs *readySet) ExtractMin() int { return heap.Pop(rs).(int) }

// PeekMin returns the best-ranked index without removing it.
func (rs *readySet) PeekMin() int { return rs.indices[0] }
