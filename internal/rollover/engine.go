package rollover

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/sandeepkv93/routined/internal/model"
)

// DayEvent announces that the local calendar date has advanced. ClosedDate
// is the day that just ended and must receive its close transition; NewDate
// is the date now current.
type DayEvent struct {
	ClosedDate string
	NewDate    string
	At         time.Time
}

// Engine watches the local clock and emits one DayEvent per midnight
// crossover. Consumers that fall behind lose events rather than blocking
// the watcher; a catch-up pass on the engine side covers lost days.
type Engine struct {
	mu      sync.Mutex
	out     chan DayEvent
	stopCh  chan struct{}
	doneCh  chan struct{}
	now     func() time.Time
	started bool
	stopped bool
	dropped uint64
}

type Option func(*Engine)

func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

func NewEngine(bufferSize int, opts ...Option) *Engine {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	e := &Engine{
		out:    make(chan DayEvent, bufferSize),
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) C() <-chan DayEvent {
	return e.out
}

func (e *Engine) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.started {
		return
	}
	e.started = true
	go e.loop()
}

func (e *Engine) Stop() {
	e.mu.Lock()
	if !e.started || e.stopped {
		e.mu.Unlock()
		return
	}
	e.stopped = true
	close(e.stopCh)
	e.mu.Unlock()
	<-e.doneCh
}

func (e *Engine) Dropped() uint64 {
	return atomic.LoadUint64(&e.dropped)
}

func (e *Engine) loop() {
	defer close(e.doneCh)
	defer close(e.out)

	var timer *time.Timer
	for {
		now := e.now()
		wait := time.Until(nextMidnight(now))
		if wait < 0 {
			wait = 0
		}
		timer = resetTimer(timer, wait)

		select {
		case <-timer.C:
			fired := e.now()
			ev := DayEvent{
				ClosedDate: model.FormatDay(fired.AddDate(0, 0, -1)),
				NewDate:    model.FormatDay(fired),
				At:         fired,
			}
			select {
			case e.out <- ev:
			default:
				atomic.AddUint64(&e.dropped, 1)
			}
		case <-e.stopCh:
			if timer != nil {
				stopTimer(timer)
			}
			return
		}
	}
}

// nextMidnight is the first instant of the day after now, in now's location.
func nextMidnight(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
}

func resetTimer(timer *time.Timer, d time.Duration) *time.Timer {
	if timer == nil {
		return time.NewTimer(d)
	}
	stopTimer(timer)
	timer.Reset(d)
	return timer
}

func stopTimer(timer *time.Timer) {
	if timer == nil {
		return
	}
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
}
