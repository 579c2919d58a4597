package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const timerScale = 50 * time.Millisecond

func TestTimerFires(t *testing.T) {
	timer := NewTimer()
	deadline := time.Now().Add(timerScale)
	timer.Reset(deadline)
	require.Equal(t, deadline, timer.Deadline())

	select {
	case <-timer.Chan():
	case <-time.After(10 * timerScale):
		t.Fatal("timer did not fire")
	}
}

func TestTimerDoesNotFireEarly(t *testing.T) {
	timer := NewTimer()
	timer.Reset(time.Now().Add(10 * timerScale))

	select {
	case <-timer.Chan():
		t.Fatal("timer fired too early")
	case <-time.After(timerScale):
	}
}

func TestTimerResetAfterRead(t *testing.T) {
	timer := NewTimer()
	timer.Reset(time.Now().Add(timerScale))
	<-timer.Chan()
	timer.SetRead()

	timer.Reset(time.Now().Add(timerScale))
	select {
	case <-timer.Chan():
	case <-time.After(10 * timerScale):
		t.Fatal("timer did not fire after reset")
	}
}

func TestTimerResetWithoutRead(t *testing.T) {
	timer := NewTimer()
	timer.Reset(time.Now().Add(timerScale / 2))
	time.Sleep(timerScale) // let it fire without reading

	// the old value must not leak through the channel
	timer.Reset(time.Now().Add(10 * timerScale))
	select {
	case <-timer.Chan():
		t.Fatal("read a stale timer value")
	case <-time.After(timerScale):
	}
}

func TestTimerImmediateDeadline(t *testing.T) {
	timer := NewTimer()
	timer.Reset(time.Now().Add(-time.Second))
	select {
	case <-timer.Chan():
	case <-time.After(10 * timerScale):
		t.Fatal("timer with past deadline did not fire")
	}
}

func TestTimerStop(t *testing.T) {
	timer := NewTimer()
	timer.Reset(time.Now().Add(timerScale))
	timer.Stop()

	select {
	case <-timer.Chan():
		t.Fatal("stopped timer fired")
	case <-time.After(3 * timerScale):
	}
}

func TestRandInt31n(t *testing.T) {
	r := NewRand()
	for i := 0; i < 100; i++ {
		n := r.Int31n(100)
		require.GreaterOrEqual(t, n, int32(0))
		require.Less(t, n, int32(100))
	}
}

func TestRandJitter(t *testing.T) {
	r := NewRand()
	for i := 0; i < 100; i++ {
		n := r.Jitter(int64(time.Second))
		require.GreaterOrEqual(t, n, int64(0))
		require.Less(t, n, int64(time.Second))
	}
}
