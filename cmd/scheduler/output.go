package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/sneharc16/CPU-Scheduling-Algorithms/sched"
)

func outputResult(w io.Writer, r sched.Result, m sched.Metrics) {
	outputTitle(w, r.Algorithm)
	outputGantt(w, r.Timeline)
	outputDispatchOrder(w, r)
	outputSchedule(w, m)
}

func outputTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

func sliceLabel(s sched.TimeSlice) string {
	if s.Idle {
		return "idle"
	}
	return strconv.FormatInt(s.PID, 10)
}

func outputGantt(w io.Writer, timeline []sched.TimeSlice) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	_, _ = fmt.Fprint(w, "|")
	for _, s := range timeline {
		label := sliceLabel(s)
		padding := strings.Repeat(" ", (8-len(label))/2)
		_, _ = fmt.Fprint(w, padding, label, padding, "|")
	}
	_, _ = fmt.Fprintln(w)
	for i, s := range timeline {
		_, _ = fmt.Fprint(w, s.Start, "\t")
		if i == len(timeline)-1 {
			_, _ = fmt.Fprint(w, s.Stop)
		}
	}
	_, _ = fmt.Fprintf(w, "\n\n")
}

func outputDispatchOrder(w io.Writer, r sched.Result) {
	pids := r.DispatchOrder()
	parts := make([]string, len(pids))
	for i, pid := range pids {
		parts[i] = strconv.FormatInt(pid, 10)
	}
	_, _ = fmt.Fprintf(w, "Dispatch order: %s\n\n", strings.Join(parts, " "))
}

func outputSchedule(w io.Writer, m sched.Metrics) {
	_, _ = fmt.Fprintln(w, "Schedule table")
	rows := make([][]string, len(m.Rows))
	for i, row := range m.Rows {
		rows[i] = []string{
			fmt.Sprint(row.PID),
			fmt.Sprint(row.Arrival),
			fmt.Sprint(row.Burst),
			fmt.Sprint(row.Start),
			fmt.Sprint(row.End),
			fmt.Sprint(row.Response),
			fmt.Sprint(row.Waiting),
			fmt.Sprint(row.Turnaround),
		}
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Arrival", "Burst", "Start", "Exit", "Response", "Wait", "Turnaround"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "", "",
		fmt.Sprintf("Average\n%.2f", m.AvgResponse),
		fmt.Sprintf("Average\n%.2f", m.AvgWaiting),
		fmt.Sprintf("Average\n%.2f", m.AvgTurnaround)})
	table.Render()
	_, _ = fmt.Fprintf(w, "Throughput: %.2f/t\n\n", m.Throughput)
}

func writeResultsCSV(path string, results []sched.Result, summaries []sched.Metrics) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating results file: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write([]string{
		"algorithm", "pid", "arrival", "burst", "start", "end", "response", "waiting", "turnaround",
	}); err != nil {
		return fmt.Errorf("writing results CSV: %w", err)
	}
	for i, r := range results {
		for _, row := range summaries[i].Rows {
			record := []string{
				r.Algorithm,
				strconv.FormatInt(row.PID, 10),
				strconv.FormatInt(row.Arrival, 10),
				strconv.FormatInt(row.Burst, 10),
				strconv.FormatInt(row.Start, 10),
				strconv.FormatInt(row.End, 10),
				strconv.FormatInt(row.Response, 10),
				strconv.FormatInt(row.Waiting, 10),
				strconv.FormatInt(row.Turnaround, 10),
			}
			if err := cw.Write(record); err != nil {
				return fmt.Errorf("writing results CSV: %w", err)
			}
		}
	}
	cw.Flush()

	return cw.Error()
}
