package sched

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArrivalBefore(t *testing.T) {
	a := Process{PID: 2, Arrival: 1}
	b := Process{PID: 1, Arrival: 3}
	assert.True(t, arrivalBefore(a, b))
	assert.False(t, arrivalBefore(b, a))

	// Same arrival: PID decides, and the order stays total.
	c := Process{PID: 1, Arrival: 1}
	assert.True(t, arrivalBefore(c, a))
	assert.False(t, arrivalBefore(a, c))
}

func TestRankBefore(t *testing.T) {
	a := Process{PID: 9, Arrival: 0}
	b := Process{PID: 1, Arrival: 5}

	assert.True(t, rankBefore(3, 4, a, b))
	assert.False(t, rankBefore(4, 3, a, b))
	// Equal ranks fall back to arrival, then PID.
	assert.True(t, rankBefore(3, 3, a, b))
	assert.True(t, rankBefore(3, 3, Process{PID: 1, Arrival: 0}, a))
}

func TestAdmissionOrderIgnoresTableOrder(t *testing.T) {
	processes := []Process{
		{PID: 50, Arrival: 3},
		{PID: 10, Arrival: 3},
		{PID: 99, Arrival: 0},
	}

	assert.Equal(t, []int{2, 1, 0}, admissionOrder(processes))
}

func TestNextArrivalPanicsWhenExhausted(t *testing.T) {
	processes := []Process{{PID: 1, Arrival: 0, Burst: 1}}
	order := admissionOrder(processes)

	assert.Equal(t, int64(0), nextArrival(processes, order, 0, "test"))
	assert.Panics(t, func() { nextArrival(processes, order, 1, "test") })
}
