package sched

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertValidTimeline checks the postconditions every driver must
// uphold: slices are contiguous, non-empty, owner-coalesced, nobody
// runs before arriving, and each process gets exactly its burst of CPU
// time. The last check also catches double-scheduling, which is what a
// duplicate ready-set or queue entry would produce.
func assertValidTimeline(t *testing.T, processes []Process, r Result) {
	t.Helper()

	require.NotEmpty(t, r.Timeline)
	executed := make(map[int64]int64)
	for k, s := range r.Timeline {
		assert.Less(t, s.Start, s.Stop, "slice %d is empty or reversed", k)
		if k > 0 {
			prev := r.Timeline[k-1]
			assert.Equal(t, prev.Stop, s.Start, "gap or overlap before slice %d", k)
			sameOwner := prev.Idle == s.Idle && (s.Idle || prev.PID == s.PID)
			assert.False(t, sameOwner, "slices %d and %d should be coalesced", k-1, k)
		}
		if !s.Idle {
			executed[s.PID] += s.Stop - s.Start
		}
	}

	for i, p := range processes {
		assert.Equal(t, p.Burst, executed[p.PID], "pid %d executed time", p.PID)
		assert.GreaterOrEqual(t, r.Times[i].Start, p.Arrival, "pid %d started before arriving", p.PID)
		assert.GreaterOrEqual(t, r.Times[i].End-r.Times[i].Start, p.Burst, "pid %d finished too fast", p.PID)
	}
}

// timesByPID flattens a result for comparison against expectations.
func timesByPID(r Result) map[int64][2]int64 {
	out := make(map[int64][2]int64, len(r.Times))
	for _, t := range r.Times {
		out[t.PID] = [2]int64{t.Start, t.End}
	}
	return out
}

func TestSimulateRunsAllFourDisciplines(t *testing.T) {
	processes := []Process{{PID: 1, Arrival: 0, Burst: 5}, {PID: 2, Arrival: 1, Burst: 3}}

	results, err := Simulate(processes, 2)
	require.NoError(t, err)
	require.Len(t, results, 4)

	names := make([]string, len(results))
	for i, r := range results {
		names[i] = r.Algorithm
		assertValidTimeline(t, processes, r)
	}
	assert.Equal(t, []string{"FCFS", "SJF", "SRTF", "RR"}, names)
}

func TestSimulateRejectsBadInput(t *testing.T) {
	valid := []Process{{PID: 1, Arrival: 0, Burst: 5}}

	for name, tc := range map[string]struct {
		processes []Process
		quantum   int64
		want      error
	}{
		"no processes":     {nil, 2, ErrNoProcesses},
		"negative arrival": {[]Process{{PID: 1, Arrival: -3, Burst: 5}}, 2, ErrInvalidArrival},
		"zero burst":       {[]Process{{PID: 1, Arrival: 0, Burst: 0}}, 2, ErrInvalidBurst},
		"negative burst":   {[]Process{{PID: 1, Arrival: 0, Burst: -1}}, 2, ErrInvalidBurst},
		"zero quantum":     {valid, 0, ErrInvalidQuantum},
	} {
		t.Run(name, func(t *testing.T) {
			results, err := Simulate(tc.processes, tc.quantum)
			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, results, "a rejected run must not yield partial results")
		})
	}
}

// A single late process looks the same under every discipline: one idle
// gap, then the whole burst.
func TestIdleGapSingleProcess(t *testing.T) {
	processes := []Process{{PID: 1, Arrival: 5, Burst: 3}}
	want := []TimeSlice{
		{Idle: true, Start: 0, Stop: 5},
		{PID: 1, Start: 5, Stop: 8},
	}

	results, err := Simulate(processes, 2)
	require.NoError(t, err)
	for _, r := range results {
		assertValidTimeline(t, processes, r)
		assert.Equal(t, want, r.Timeline, r.Algorithm)
		assert.Equal(t, int64(5), r.Times[0].Start, r.Algorithm)
		assert.Equal(t, int64(8), r.Times[0].End, r.Algorithm)

		m := Summarize(r.Times)
		assert.Zero(t, m.AvgResponse, r.Algorithm)
		assert.Zero(t, m.AvgWaiting, r.Algorithm)
		assert.InDelta(t, 3.0, m.AvgTurnaround, 1e-9, r.Algorithm)
	}
}
