package quicmux

import (
	"log/slog"
	"time"
)

// A BlackholeDetectorDelegate is notified when the network path degrades or
// stops delivering packets entirely.
type BlackholeDetectorDelegate interface {
	// OnPathDegrading is the earlier, softer signal: the path may be failing.
	OnPathDegrading()
	// OnBlackhole means the path is presumed dead and the connection should
	// be torn down or aggressively probed.
	OnBlackhole()
}

// A BlackholeDetector declares a network path degrading and then blackholed
// after prolonged silence. It rides two escalating deadlines on a single
// Alarm: using one alarm for both avoids double-scheduling races, since the
// alarm is always armed for the earlier of the two pending deadlines.
//
// A BlackholeDetector is not safe for concurrent use.
type BlackholeDetector struct {
	alarm    *Alarm
	delegate BlackholeDetectorDelegate
	logger   *slog.Logger

	pathDegradingDeadline time.Time
	blackholeDeadline     time.Time
}

// NewBlackholeDetector creates a BlackholeDetector in the idle state.
func NewBlackholeDetector(delegate BlackholeDetectorDelegate, logger *slog.Logger) *BlackholeDetector {
	d := &BlackholeDetector{
		delegate: delegate,
		logger:   logger.With(slog.String("component", "blackhole_detector")),
	}
	d.alarm = NewAlarm(d, logger)
	return d
}

// Alarm returns the underlying alarm, for the event loop to schedule and fire.
func (d *BlackholeDetector) Alarm() *Alarm { return d.alarm }

// RestartDetection stores both deadlines and arms the alarm for the earlier
// one. Either deadline may be zero, meaning that signal is not tracked. If
// both are set, pathDegrading must not be after blackhole.
func (d *BlackholeDetector) RestartDetection(pathDegrading, blackhole time.Time) {
	if !pathDegrading.IsZero() && !blackhole.IsZero() && pathDegrading.After(blackhole) {
		d.logger.Error("BUG: path degrading deadline after blackhole deadline",
			slog.Time("path_degrading", pathDegrading),
			slog.Time("blackhole", blackhole),
		)
	}
	d.pathDegradingDeadline = pathDegrading
	d.blackholeDeadline = blackhole
	d.updateAlarm()
}

// updateAlarm arms the alarm for the earlier pending deadline, or cancels it
// if neither signal is tracked.
func (d *BlackholeDetector) updateAlarm() {
	next := d.pathDegradingDeadline
	if next.IsZero() {
		next = d.blackholeDeadline
	}
	d.alarm.Update(next, 0)
}

// StopDetection cancels the alarm and clears both deadlines, regardless of state.
func (d *BlackholeDetector) StopDetection() {
	d.alarm.Cancel()
	d.pathDegradingDeadline = time.Time{}
	d.blackholeDeadline = time.Time{}
}

// IsDetectionInProgress says if a deadline is currently armed.
func (d *BlackholeDetector) IsDetectionInProgress() bool {
	return d.alarm.IsSet()
}

// OnAlarm implements AlarmDelegate.
func (d *BlackholeDetector) OnAlarm() {
	if !d.pathDegradingDeadline.IsZero() {
		// first firing: the path degrading deadline
		d.pathDegradingDeadline = time.Time{}
		d.delegate.OnPathDegrading()
		// The delegate may have restarted detection;
		// updateAlarm arms for whichever deadline is now the earlier one.
		d.updateAlarm()
		return
	}
	d.blackholeDeadline = time.Time{}
	d.delegate.OnBlackhole()
	d.updateAlarm()
}
