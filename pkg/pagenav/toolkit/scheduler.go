package toolkit

import "time"

// Scheduler drives animations and timers from a host frame loop.
// It is not safe for concurrent use; call it from the UI thread only.
type Scheduler struct {
	now    time.Time
	anims  []*runningAnimation
	timers []*schedTimer
}

type runningAnimation struct {
	Animation
	start time.Time
}

type schedTimer struct {
	period  time.Duration
	fn      func()
	last    time.Time
	stopped bool
}

func (t *schedTimer) Stop() {
	t.stopped = true
}

// NewScheduler creates a scheduler whose clock starts at start.
func NewScheduler(start time.Time) *Scheduler {
	return &Scheduler{now: start}
}

// Now returns the time of the last Tick.
func (s *Scheduler) Now() time.Time {
	return s.now
}

// Animate starts a at the current scheduler time and applies the From value
// immediately. Completion is never reported synchronously.
func (s *Scheduler) Animate(a Animation) {
	if a.Easing == nil {
		a.Easing = Linear
	}
	if a.Exec != nil {
		a.Exec(a.Target, a.From)
	}
	s.anims = append(s.anims, &runningAnimation{Animation: a, start: s.now})
}

// NewTimer registers fn to run every period, starting one period from now.
func (s *Scheduler) NewTimer(period time.Duration, fn func()) Timer {
	t := &schedTimer{period: period, fn: fn, last: s.now}
	s.timers = append(s.timers, t)
	return t
}

// Pending returns the number of animations still running.
func (s *Scheduler) Pending() int {
	return len(s.anims)
}

// Tick advances the clock to now, updates every running animation and fires
// due timers. Callbacks may start new animations; those begin on the next Tick.
func (s *Scheduler) Tick(now time.Time) {
	if now.Before(s.now) {
		now = s.now
	}
	s.now = now

	running := s.anims
	s.anims = nil

	var finished []*runningAnimation
	var keep []*runningAnimation
	for _, a := range running {
		elapsed := now.Sub(a.start)
		progress := 1.0
		if a.Duration > 0 {
			progress = float64(elapsed) / float64(a.Duration)
		}
		if progress >= 1 {
			if a.Exec != nil {
				a.Exec(a.Target, a.To)
			}
			finished = append(finished, a)
			continue
		}
		if a.Exec != nil {
			a.Exec(a.Target, Interpolate(a.From, a.To, progress, a.Easing))
		}
		keep = append(keep, a)
	}
	// Animations started from Exec callbacks landed in s.anims.
	s.anims = append(keep, s.anims...)

	for _, a := range finished {
		if a.Done != nil {
			a.Done()
		}
	}

	timers := s.timers
	s.timers = nil

	var live []*schedTimer
	for _, t := range timers {
		if t.stopped {
			continue
		}
		if t.period > 0 && now.Sub(t.last) >= t.period {
			t.last = now
			t.fn()
		}
		if !t.stopped {
			live = append(live, t)
		}
	}
	s.timers = append(live, s.timers...)
}
