package telemetry

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/Borislavv/go-ash-engine/config"
	"github.com/Borislavv/go-ash-engine/internal/replacer"
	"github.com/Borislavv/go-ash-engine/internal/shared/bytes"
)

// CardinalitySource is anything whose estimation activity the telemetry
// worker can report; both HyperLogLog layouts satisfy it.
type CardinalitySource interface {
	Metrics() (adds, computes int64)
	Footprint() uint64
	GetCardinality() uint64
}

type Logger interface {
	Interval() time.Duration
	Observe(name string, src CardinalitySource)
	Close() error
}

type Logs struct {
	ctx      context.Context
	cancel   context.CancelFunc
	cfg      *config.Engine
	logger   *slog.Logger
	replacer replacer.Replacer
	interval time.Duration

	mu      sync.Mutex
	sources map[string]CardinalitySource
}

func New(
	ctx context.Context,
	cfg *config.Engine,
	logger *slog.Logger,
	replacer replacer.Replacer,
) *Logs {
	ctx, cancel := context.WithCancel(ctx)
	return (&Logs{
		ctx:      ctx,
		cancel:   cancel,
		cfg:      cfg,
		logger:   logger,
		replacer: replacer,
		interval: cfg.TelemetryLogsInterval,
		sources:  make(map[string]CardinalitySource),
	}).run()
}

func (l *Logs) Interval() time.Duration {
	return l.interval
}

// Observe registers a sketch under a name; its stats join the periodic report.
func (l *Logs) Observe(name string, src CardinalitySource) {
	l.mu.Lock()
	l.sources[name] = src
	l.mu.Unlock()
}

func (l *Logs) Close() error {
	l.cancel()
	return nil
}

func (l *Logs) run() *Logs {
	if l.cfg != nil && l.cfg.IsTelemetryLogsEnabled {
		go l.loop()
	}
	return l
}

func (l *Logs) loop() {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	s := newSampler(l.replacer)
	prev := s.snapshot()

	for {
		select {
		case <-l.ctx.Done():
			return

		case <-ticker.C:
			cur := s.snapshot()
			d := deltaSnapshot(prev, cur)
			prev = cur

			common := []any{"interval", l.interval.String()}

			l.logger.Info("lru_k_replacer",
				append(common,
					"accesses", int64(d.accesses),
					"evictions", int64(d.evictions),
					"removals", int64(d.removals),
					"evictable", l.replacer.Size(),
				)...,
			)

			for name, src := range l.snapshotSources() {
				adds, computes := src.Metrics()
				l.logger.Info("cardinality_sketch",
					append(common,
						"sketch", name,
						"adds", adds,
						"computes", computes,
						"estimate", src.GetCardinality(),
						"registers_mem", bytes.FmtMem(src.Footprint()),
					)...,
				)
			}
		}
	}
}

func (l *Logs) snapshotSources() map[string]CardinalitySource {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make(map[string]CardinalitySource, len(l.sources))
	for name, src := range l.sources {
		out[name] = src
	}
	return out
}
