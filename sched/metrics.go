package sched

import "gonum.org/v1/gonum/stat"

// MetricsRow is one process's timing under one algorithm.
type MetricsRow struct {
	ProcessTimes
	Response   int64
	Waiting    int64
	Turnaround int64
}

// Metrics aggregates one algorithm run. Throughput is processes per
// unit of simulated time measured at the last completion.
type Metrics struct {
	Rows          []MetricsRow
	AvgResponse   float64
	AvgWaiting    float64
	AvgTurnaround float64
	Throughput    float64
}

// Summarize reduces recorded start/end times to response, waiting and
// turnaround figures and their means. Response and waiting are
// computed independently: under a preemptive discipline a process can
// keep waiting after its first dispatch, so the two differ.
func Summarize(times []ProcessTimes) Metrics {
	var (
		rows           = make([]MetricsRow, len(times))
		response       = make([]float64, len(times))
		waiting        = make([]float64, len(times))
		turnaround     = make([]float64, len(times))
		lastCompletion int64
	)
	for i, t := range times {
		row := MetricsRow{
			ProcessTimes: t,
			Response:     t.Start - t.Arrival,
			Turnaround:   t.End - t.Arrival,
		}
		row.Waiting = row.Turnaround - t.Burst
		rows[i] = row
		response[i] = float64(row.Response)
		waiting[i] = float64(row.Waiting)
		turnaround[i] = float64(row.Turnaround)
		if t.End > lastCompletion {
			lastCompletion = t.End
		}
	}
	m := Metrics{
		Rows:          rows,
		AvgResponse:   stat.Mean(response, nil),
		AvgWaiting:    stat.Mean(waiting, nil),
		AvgTurnaround: stat.Mean(turnaround, nil),
	}
	if lastCompletion > 0 {
		m.Throughput = float64(len(times)) / float64(lastCompletion)
	}
	return m
}
