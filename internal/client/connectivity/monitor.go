// Package connectivity tracks whether the remote sink is reachable.
//
// The Monitor combines a bounded poll (Probe every interval) with push-style
// signals from the host (Notify). Subscribers are called once per edge:
// offline->online or online->offline. Repeated signals with the same value are
// ignored.
package connectivity

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/farmsync/internal/logging"
)

// Prober reports reachability of the remote sink; nil means online.
type Prober interface {
	Probe(ctx context.Context) error
}

type subscriber struct {
	id int
	fn func(online bool)
}

type Monitor struct {
	prober   Prober
	interval time.Duration
	timeout  time.Duration
	log      logging.Logger

	mu     sync.Mutex
	online bool
	subs   []subscriber
	nextID int

	// edgeMu keeps edge callbacks in the order the edges happened.
	edgeMu sync.Mutex
}

// NewMonitor returns a monitor that starts in the offline state.
func NewMonitor(prober Prober, interval, timeout time.Duration, log logging.Logger) *Monitor {
	return &Monitor{
		prober:   prober,
		interval: interval,
		timeout:  timeout,
		log:      log.With("module", "connectivity"),
	}
}

func (m *Monitor) IsOnline() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.online
}

// Subscribe registers fn for connectivity edges. Callbacks run synchronously
// and must not call Notify or Check.
func (m *Monitor) Subscribe(fn func(online bool)) (unsubscribe func()) {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.subs = append(m.subs, subscriber{id: id, fn: fn})
	m.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			defer m.mu.Unlock()
			for i, s := range m.subs {
				if s.id == id {
					m.subs = append(m.subs[:i], m.subs[i+1:]...)
					return
				}
			}
		})
	}
}

// Notify feeds an externally observed connectivity value.
func (m *Monitor) Notify(online bool) {
	m.edgeMu.Lock()
	defer m.edgeMu.Unlock()

	m.mu.Lock()
	if m.online == online {
		m.mu.Unlock()
		return
	}
	m.online = online
	subs := make([]subscriber, len(m.subs))
	copy(subs, m.subs)
	m.mu.Unlock()

	if online {
		m.log.Info(context.Background(), "connectivity restored")
	} else {
		m.log.Warn(context.Background(), "connectivity lost")
	}

	for _, s := range subs {
		s.fn(online)
	}
}

// Check probes once and records the result.
func (m *Monitor) Check(ctx context.Context) bool {
	probeCtx, cancel := context.WithTimeout(ctx, m.timeout)
	err := m.prober.Probe(probeCtx)
	cancel()

	if err != nil {
		m.log.Debug(ctx, "probe failed", "error", err)
	}
	m.Notify(err == nil)
	return err == nil
}

// Start probes immediately and then every interval until ctx is done.
// With a non-positive interval it probes once and returns.
func (m *Monitor) Start(ctx context.Context) {
	m.Check(ctx)

	if m.interval <= 0 {
		m.log.Warn(ctx, "polling disabled", "interval", m.interval)
		return
	}

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.Check(ctx)
		case <-ctx.Done():
			return
		}
	}
}
