// Package poller runs the dashboard's fetch cycle: one snapshot request right
// away, then one per fixed interval, each outcome handed to a single handler.
package poller

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/smartparking/parkwatch/internal/errors"
	"github.com/smartparking/parkwatch/internal/logger"
	"github.com/smartparking/parkwatch/internal/snapshot"
)

// DefaultInterval is the time between the starts of consecutive cycles.
const DefaultInterval = 3000 * time.Millisecond

// MinInterval is the shortest interval accepted by WithInterval.
const MinInterval = 100 * time.Millisecond

// Fetcher retrieves one snapshot.
type Fetcher interface {
	Fetch(ctx context.Context) (*snapshot.Snapshot, error)
}

// FetcherFunc adapts a function to Fetcher.
type FetcherFunc func(ctx context.Context) (*snapshot.Snapshot, error)

// Fetch calls f.
func (f FetcherFunc) Fetch(ctx context.Context) (*snapshot.Snapshot, error) {
	return f(ctx)
}

// Outcome is the result of one cycle: a snapshot on success, an error otherwise.
type Outcome struct {
	Seq      uint64
	Snapshot *snapshot.Snapshot
	Err      error
	Started  time.Time
	Finished time.Time
}

// OK reports whether the cycle produced a snapshot.
func (o Outcome) OK() bool {
	return o.Snapshot != nil
}

// Duration is how long the cycle took.
func (o Outcome) Duration() time.Duration {
	return o.Finished.Sub(o.Started)
}

// Handler receives outcomes. Calls never overlap.
type Handler func(Outcome)

// Ticker is the part of time.Ticker the poller uses.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type realTicker struct {
	t *time.Ticker
}

func (r realTicker) C() <-chan time.Time { return r.t.C }
func (r realTicker) Stop()               { r.t.Stop() }

// NewTicker wraps time.NewTicker.
func NewTicker(d time.Duration) Ticker {
	return realTicker{t: time.NewTicker(d)}
}

// Option configures a Poller.
type Option func(*Poller)

// WithInterval sets the cycle interval. Values below MinInterval are raised to it.
func WithInterval(d time.Duration) Option {
	return func(p *Poller) {
		if d < MinInterval {
			d = MinInterval
		}
		p.interval = d
	}
}

// WithDiscardStale drops outcomes whose cycle started before the newest
// outcome already delivered.
func WithDiscardStale(discard bool) Option {
	return func(p *Poller) {
		p.discardStale = discard
	}
}

// WithTicker replaces the ticker factory.
func WithTicker(newTicker func(time.Duration) Ticker) Option {
	return func(p *Poller) {
		if newTicker != nil {
			p.newTicker = newTicker
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l logger.Logger) Option {
	return func(p *Poller) {
		if l != nil {
			p.log = l
		}
	}
}

// WithClock replaces time.Now for outcome timestamps.
func WithClock(now func() time.Time) Option {
	return func(p *Poller) {
		if now != nil {
			p.now = now
		}
	}
}

// Poller schedules fetch cycles.
type Poller struct {
	fetcher      Fetcher
	handler      Handler
	interval     time.Duration
	discardStale bool
	newTicker    func(time.Duration) Ticker
	log          logger.Logger
	now          func() time.Time

	seq       atomic.Uint64
	delivered uint64     // guarded by deliverMu
	deliverMu sync.Mutex // serialises handler calls

	mu      sync.Mutex
	running bool
	ctx     context.Context
	cancel  context.CancelFunc
	cycles  sync.WaitGroup
	done    chan struct{}
}

// New creates a poller. It does nothing until Start is called.
func New(fetcher Fetcher, handler Handler, opts ...Option) *Poller {
	p := &Poller{
		fetcher:   fetcher,
		handler:   handler,
		interval:  DefaultInterval,
		newTicker: NewTicker,
		log:       logger.Noop(),
		now:       time.Now,
		done:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.handler == nil {
		p.handler = func(Outcome) {}
	}
	return p
}

// Interval returns the configured cycle interval.
func (p *Poller) Interval() time.Duration {
	return p.interval
}

// Start runs the first cycle immediately and schedules the rest. It returns
// without waiting for any cycle. The schedule ends when ctx is cancelled or
// Stop is called.
func (p *Poller) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.running {
		return fmt.Errorf("poller already started")
	}
	select {
	case <-p.done:
		return fmt.Errorf("poller already stopped")
	default:
	}

	p.running = true
	p.ctx, p.cancel = context.WithCancel(ctx)
	ticker := p.newTicker(p.interval)

	p.log.Debug("poller started, interval %s", p.interval)
	p.spawn()
	go p.loop(ticker)
	return nil
}

func (p *Poller) loop(ticker Ticker) {
	defer func() {
		ticker.Stop()
		p.cycles.Wait()
		close(p.done)
		p.log.Debug("poller stopped")
	}()

	for {
		select {
		case <-p.ctx.Done():
			return
		case <-ticker.C():
			p.mu.Lock()
			p.spawn()
			p.mu.Unlock()
		}
	}
}

// Trigger runs one extra cycle now. The schedule is unaffected. It is a
// no-op when the poller is not running.
func (p *Poller) Trigger() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.running || p.ctx.Err() != nil {
		return
	}
	p.spawn()
}

// Stop cancels the schedule and waits for in-flight cycles to finish.
// Outcomes of cycles cut short by Stop are not delivered.
func (p *Poller) Stop() {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return
	}
	p.cancel()
	p.mu.Unlock()
	<-p.done
}

// Done is closed once the schedule has ended and every cycle has returned.
func (p *Poller) Done() <-chan struct{} {
	return p.done
}

// spawn starts one cycle. Callers hold p.mu.
func (p *Poller) spawn() {
	if p.ctx.Err() != nil {
		return
	}
	seq := p.seq.Add(1)
	p.cycles.Add(1)
	go func() {
		defer p.cycles.Done()
		p.deliver(p.cycle(p.ctx, seq))
	}()
}

// cycle performs one fetch. Panics become failure outcomes.
func (p *Poller) cycle(ctx context.Context, seq uint64) (out Outcome) {
	out = Outcome{Seq: seq, Started: p.now()}
	defer func() {
		if r := recover(); r != nil {
			out.Snapshot = nil
			out.Err = errors.New(errors.ErrInternal,
				fmt.Sprintf("Fetch cycle %d panicked: %v", seq, r),
				"This is a bug in the fetcher; the next cycle will retry")
		}
		out.Finished = p.now()
	}()

	snap, err := p.fetcher.Fetch(ctx)
	switch {
	case err != nil:
		out.Err = err
	case snap == nil:
		out.Err = errors.New(errors.ErrDecode, "Fetcher returned no snapshot", "")
	default:
		out.Snapshot = snap
	}
	return out
}

func (p *Poller) deliver(out Outcome) {
	p.deliverMu.Lock()
	defer p.deliverMu.Unlock()

	if p.ctx.Err() != nil {
		p.log.Debug("cycle %d finished after stop, dropped", out.Seq)
		return
	}
	if p.discardStale && out.Seq < p.delivered {
		p.log.Debug("cycle %d is older than delivered cycle %d, dropped", out.Seq, p.delivered)
		return
	}
	if out.Seq > p.delivered {
		p.delivered = out.Seq
	}

	if out.OK() {
		p.log.Debug("cycle %d ok in %s", out.Seq, out.Duration())
	} else {
		p.log.Warn("cycle %d failed: %v", out.Seq, out.Err)
	}

	defer func() {
		if r := recover(); r != nil {
			p.log.Error("handler panicked on cycle %d: %v", out.Seq, r)
		}
	}()
	p.handler(out)
}
