package realtime

import "time"

// systemScheduler is the production Scheduler backed by the runtime timers.
type systemScheduler struct{}

type systemTimer struct {
	t *time.Timer
}

func (s systemScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return systemTimer{t: time.AfterFunc(d, f)}
}

func (t systemTimer) Stop() bool {
	return t.t.Stop()
}

// SystemScheduler returns the wall-clock Scheduler used outside of tests.
func SystemScheduler() Scheduler {
	return systemScheduler{}
}
