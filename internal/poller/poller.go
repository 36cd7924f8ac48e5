// SPDX-License-Identifier: Apache-2.0

package poller

import (
	"context"
	"sync"
	"time"

	"github.com/Infradevandops/NAMASKAH-sub003/internal/logger"
)

const defaultPollInterval = 15 * time.Second

// Worker periodически обновляет отслеживаемые верификации через REST,
// пока realtime-канал недоступен.
type Worker struct {
	fetcher VerificationFetcher
	source  TrackedSource
	sink    SnapshotSink
	log     *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewWorker creates a polling worker. It does nothing until Start is called.
func NewWorker(fetcher VerificationFetcher, source TrackedSource, sink SnapshotSink, log *logger.Logger) *Worker {
	return &Worker{
		fetcher: fetcher,
		source:  source,
		sink:    sink,
		log:     log,
	}
}

// Start launches the polling loop. A previously running loop is stopped
// first, so repeated fallbacks never stack tickers. The loop exits when ctx
// is cancelled or Stop is called. interval <= 0 falls back to the default.
func (w *Worker) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultPollInterval
	}

	w.Stop()

	w.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.mu.Unlock()

	w.log.Debug().
		Str("func", "Worker.Start").
		Dur("interval", interval).
		Msg("polling fallback started")

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()

		// первый проход сразу, не дожидаясь тика
		w.pollOnce(jobCtx)

		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				w.pollOnce(jobCtx)
			}
		}
	}()
}

// Stop cancels the polling loop and waits for it to exit. Safe to call when
// the worker is not running.
func (w *Worker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}

// pollOnce refreshes every tracked verification. Failures on individual
// entities are logged and skipped: one dead id must not starve the rest.
func (w *Worker) pollOnce(ctx context.Context) {
	for _, id := range w.source.Subscriptions() {
		select {
		case <-ctx.Done():
			return
		default:
		}

		v, err := w.fetcher.GetVerification(ctx, id)
		if err != nil {
			w.log.Warn().
				Str("func", "Worker.pollOnce").
				Str("verification_id", id).
				Err(err).
				Msg("poll refresh failed")
			continue
		}

		w.sink.ApplyVerification(ctx, v)
	}
}
