package quicmux

import (
	"log/slog"
	"time"
)

// An AlarmDelegate is invoked when an Alarm's deadline is reached.
type AlarmDelegate interface {
	OnAlarm()
}

// AlarmDelegateFunc adapts a function to the AlarmDelegate interface.
type AlarmDelegateFunc func()

func (f AlarmDelegateFunc) OnAlarm() { f() }

// An Alarm represents at most one outstanding deadline and invokes its
// delegate when that deadline is reached. The deadline is fired by the owning
// event loop calling Fire once the Deadline has passed; the Alarm does not
// schedule anything itself.
//
// The delegate is invoked at most once per arming, and never after Cancel returned.
// An Alarm is not safe for concurrent use.
type Alarm struct {
	deadline time.Time
	delegate AlarmDelegate
	logger   *slog.Logger
}

// NewAlarm creates a new, unarmed Alarm.
func NewAlarm(delegate AlarmDelegate, logger *slog.Logger) *Alarm {
	return &Alarm{
		delegate: delegate,
		logger:   logger.With(slog.String("component", "alarm")),
	}
}

// Set arms the alarm. The alarm must not be armed, and the deadline must not
// be the zero value; a violation indicates a bug in the caller and is logged.
func (a *Alarm) Set(deadline time.Time) {
	if a.IsSet() {
		a.logger.Error("BUG: Set called on an armed alarm", slog.Time("deadline", a.deadline))
	}
	if deadline.IsZero() {
		a.logger.Error("BUG: Set called with a zero deadline")
		return
	}
	a.deadline = deadline
}

// Cancel disarms the alarm. It is a no-op if the alarm is not armed.
func (a *Alarm) Cancel() {
	a.deadline = time.Time{}
}

// Update re-arms the alarm for a new deadline.
// A zero deadline cancels the alarm. If the new deadline differs from the
// armed one by less than granularity, the call is a no-op, so sub-granularity
// jitter doesn't cause rescheduling.
func (a *Alarm) Update(deadline time.Time, granularity time.Duration) {
	if deadline.IsZero() {
		a.Cancel()
		return
	}
	if a.IsSet() {
		diff := deadline.Sub(a.deadline)
		if diff < 0 {
			diff = -diff
		}
		if diff < granularity {
			return
		}
		a.Cancel()
	}
	a.Set(deadline)
}

// IsSet says if the alarm is armed.
func (a *Alarm) IsSet() bool {
	return !a.deadline.IsZero()
}

// Deadline returns the armed deadline, or the zero value if the alarm is not
// armed. The event loop uses it to schedule its wait.
func (a *Alarm) Deadline() time.Time {
	return a.deadline
}

// Fire invokes the delegate if the alarm is armed, and disarms it.
// Calling Fire on an unarmed alarm is a no-op; this absorbs the race between
// a cancellation and an already elapsed wait in the event loop.
//
// The deadline is cleared before the delegate runs, so a delegate that
// immediately re-arms the alarm observes a clean state.
func (a *Alarm) Fire() {
	if !a.IsSet() {
		return
	}
	a.deadline = time.Time{}
	a.delegate.OnAlarm()
}
