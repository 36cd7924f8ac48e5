// SPDX-License-Identifier: Apache-2.0

package poller

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Infradevandops/NAMASKAH-sub003/internal/logger"
	"github.com/Infradevandops/NAMASKAH-sub003/models"
)

// ── фейки ──────────────────────────────────────────────────────────────

type fakeFetcher struct {
	mu       sync.Mutex
	byID     map[string]models.Verification
	errByID  map[string]error
	fetched  []string
	fetchCnt int
}

func (f *fakeFetcher) GetVerification(_ context.Context, id string) (models.Verification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetched = append(f.fetched, id)
	f.fetchCnt++
	if err, ok := f.errByID[id]; ok {
		return models.Verification{}, err
	}
	return f.byID[id], nil
}

func (f *fakeFetcher) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fetchCnt
}

func (f *fakeFetcher) ids() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.fetched))
	copy(out, f.fetched)
	return out
}

type fakeSource struct {
	mu  sync.Mutex
	set []string
}

func (s *fakeSource) Subscriptions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.set))
	copy(out, s.set)
	return out
}

func (s *fakeSource) replace(ids ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.set = ids
}

type fakeSink struct {
	mu      sync.Mutex
	applied []models.Verification
}

func (s *fakeSink) ApplyVerification(_ context.Context, v models.Verification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applied = append(s.applied, v)
}

func (s *fakeSink) snapshots() []models.Verification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Verification, len(s.applied))
	copy(out, s.applied)
	return out
}

func newTestWorker(t *testing.T, fetcher *fakeFetcher, source *fakeSource, sink *fakeSink) *Worker {
	t.Helper()
	w := NewWorker(fetcher, source, sink, logger.Nop())
	t.Cleanup(w.Stop)
	return w
}

// ── тесты ──────────────────────────────────────────────────────────────

func TestWorker_RefreshesTrackedEntities(t *testing.T) {
	fetcher := &fakeFetcher{byID: map[string]models.Verification{
		"ver-1": {ID: "ver-1", Status: models.VerificationActive},
		"ver-2": {ID: "ver-2", Status: models.VerificationCompleted, Code: "482913"},
	}}
	source := &fakeSource{}
	source.replace("ver-1", "ver-2")
	sink := &fakeSink{}

	w := newTestWorker(t, fetcher, source, sink)
	w.Start(context.Background(), 5*time.Millisecond)

	require.Eventually(t, func() bool {
		return len(sink.snapshots()) >= 2
	}, time.Second, time.Millisecond)

	got := sink.snapshots()[:2]
	assert.Equal(t, "ver-1", got[0].ID)
	assert.Equal(t, "ver-2", got[1].ID)
	assert.Equal(t, "482913", got[1].Code)
}

func TestWorker_FirstPassIsImmediate(t *testing.T) {
	fetcher := &fakeFetcher{byID: map[string]models.Verification{"ver-1": {ID: "ver-1"}}}
	source := &fakeSource{}
	source.replace("ver-1")
	sink := &fakeSink{}

	w := newTestWorker(t, fetcher, source, sink)
	// интервал заведомо больше времени теста: сработать может только
	// стартовый проход
	w.Start(context.Background(), time.Hour)

	require.Eventually(t, func() bool {
		return fetcher.calls() == 1
	}, time.Second, time.Millisecond)
}

func TestWorker_FetchErrorSkipsEntity(t *testing.T) {
	fetcher := &fakeFetcher{
		byID:    map[string]models.Verification{"ver-ok": {ID: "ver-ok"}},
		errByID: map[string]error{"ver-dead": errors.New("gateway timeout")},
	}
	source := &fakeSource{}
	source.replace("ver-dead", "ver-ok")
	sink := &fakeSink{}

	w := newTestWorker(t, fetcher, source, sink)
	w.Start(context.Background(), 5*time.Millisecond)

	require.Eventually(t, func() bool {
		return len(sink.snapshots()) >= 1
	}, time.Second, time.Millisecond)

	for _, v := range sink.snapshots() {
		assert.Equal(t, "ver-ok", v.ID)
	}
}

func TestWorker_TracksSourceChangesBetweenTicks(t *testing.T) {
	fetcher := &fakeFetcher{byID: map[string]models.Verification{
		"ver-old": {ID: "ver-old"},
		"ver-new": {ID: "ver-new"},
	}}
	source := &fakeSource{}
	source.replace("ver-old")
	sink := &fakeSink{}

	w := newTestWorker(t, fetcher, source, sink)
	w.Start(context.Background(), 5*time.Millisecond)

	require.Eventually(t, func() bool {
		return fetcher.calls() >= 1
	}, time.Second, time.Millisecond)

	source.replace("ver-new")

	require.Eventually(t, func() bool {
		for _, id := range fetcher.ids() {
			if id == "ver-new" {
				return true
			}
		}
		return false
	}, time.Second, time.Millisecond)
}

func TestWorker_StopHaltsPolling(t *testing.T) {
	fetcher := &fakeFetcher{byID: map[string]models.Verification{"ver-1": {ID: "ver-1"}}}
	source := &fakeSource{}
	source.replace("ver-1")
	sink := &fakeSink{}

	w := newTestWorker(t, fetcher, source, sink)
	w.Start(context.Background(), 5*time.Millisecond)

	require.Eventually(t, func() bool {
		return fetcher.calls() >= 2
	}, time.Second, time.Millisecond)

	w.Stop()
	after := fetcher.calls()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, fetcher.calls(), "no fetches expected after Stop")
}

func TestWorker_StopWithoutStartIsNoOp(t *testing.T) {
	w := NewWorker(&fakeFetcher{}, &fakeSource{}, &fakeSink{}, logger.Nop())
	w.Stop()
	w.Stop()
}

func TestWorker_RestartReplacesPreviousLoop(t *testing.T) {
	fetcher := &fakeFetcher{byID: map[string]models.Verification{"ver-1": {ID: "ver-1"}}}
	source := &fakeSource{}
	source.replace("ver-1")
	sink := &fakeSink{}

	w := newTestWorker(t, fetcher, source, sink)
	w.Start(context.Background(), 5*time.Millisecond)
	w.Start(context.Background(), 5*time.Millisecond)

	require.Eventually(t, func() bool {
		return fetcher.calls() >= 3
	}, time.Second, time.Millisecond)

	w.Stop()
	after := fetcher.calls()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, fetcher.calls(), "restart must not leak a second loop")
}

func TestWorker_ContextCancelHaltsPolling(t *testing.T) {
	fetcher := &fakeFetcher{byID: map[string]models.Verification{"ver-1": {ID: "ver-1"}}}
	source := &fakeSource{}
	source.replace("ver-1")
	sink := &fakeSink{}

	ctx, cancel := context.WithCancel(context.Background())
	w := newTestWorker(t, fetcher, source, sink)
	w.Start(ctx, 5*time.Millisecond)

	require.Eventually(t, func() bool {
		return fetcher.calls() >= 1
	}, time.Second, time.Millisecond)

	cancel()
	time.Sleep(20 * time.Millisecond)
	after := fetcher.calls()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, fetcher.calls())
}
