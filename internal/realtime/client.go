// SPDX-License-Identifier: Apache-2.0

package realtime

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/Infradevandops/NAMASKAH-sub003/internal/logger"
	"github.com/Infradevandops/NAMASKAH-sub003/models"
)

// Defaults applied by NewSyncClient for zero Config fields.
const (
	DefaultHeartbeatInterval    = 25 * time.Second
	DefaultReconnectBaseDelay   = time.Second
	DefaultMaxReconnectAttempts = 5
	DefaultQueueCap             = 256
	DefaultHandshakeTimeout     = 10 * time.Second
)

// Config tunes a [SyncClient].
type Config struct {
	// HeartbeatInterval is the period between keepalive pings while ready.
	HeartbeatInterval time.Duration

	// ReconnectBaseDelay seeds the backoff: the n-th reconnect attempt is
	// scheduled after ReconnectBaseDelay * 2^(n-1).
	ReconnectBaseDelay time.Duration

	// MaxReconnectAttempts bounds automatic reconnection. Once that many
	// consecutive attempts fail the client transitions to [StateFailed]
	// and fires the fallback hook.
	MaxReconnectAttempts int

	// QueueCap bounds the outbound queue used while the connection is not
	// ready. On overflow the oldest queued message is dropped and logged.
	QueueCap int

	// HandshakeTimeout bounds a single transport dial.
	HandshakeTimeout time.Duration

	// Scheduler creates the reconnect and heartbeat timers. Nil selects
	// [SystemScheduler].
	Scheduler Scheduler
}

func (c Config) withDefaults() Config {
	if c.HeartbeatInterval == 0 {
		c.HeartbeatInterval = DefaultHeartbeatInterval
	}
	if c.ReconnectBaseDelay == 0 {
		c.ReconnectBaseDelay = DefaultReconnectBaseDelay
	}
	if c.MaxReconnectAttempts == 0 {
		c.MaxReconnectAttempts = DefaultMaxReconnectAttempts
	}
	if c.QueueCap == 0 {
		c.QueueCap = DefaultQueueCap
	}
	if c.HandshakeTimeout == 0 {
		c.HandshakeTimeout = DefaultHandshakeTimeout
	}
	if c.Scheduler == nil {
		c.Scheduler = SystemScheduler()
	}
	return c
}

// Hooks are the consumer-facing signals of a [SyncClient]. All hooks are
// optional and are invoked outside the client's internal lock, so they may
// call back into the client.
type Hooks struct {
	// OnStateChange fires on every lifecycle transition.
	OnStateChange func(s State)

	// OnAuthFailure fires exactly once per session when the server rejects
	// the handshake (or the local credential is unusable). The client does
	// not retry; the consumer is expected to force re-authentication.
	OnAuthFailure func(reason string)

	// OnFallback fires exactly once per Start cycle when reconnection is
	// exhausted, signalling that a polling fallback should take over.
	OnFallback func()

	// OnNotification receives session-wide notification frames that are
	// not addressed to any entity subscription.
	OnNotification func(msg models.InboundMessage)
}

// SyncClient multiplexes per-entity update subscriptions over a single
// authenticated connection. One instance serves one authenticated session;
// its lifecycle is driven by [SyncClient.Start] and [SyncClient.Stop].
//
// All public methods are safe for concurrent use and never block on the
// network except for the in-flight frame write itself.
type SyncClient struct {
	dialer Dialer
	creds  CredentialSource
	cfg    Config
	hooks  Hooks
	sched  Scheduler
	log    *logger.Logger

	mu    sync.Mutex
	state State
	// gen counts connection attempts; async events (dial results, read
	// loop errors, timer firings) carry the gen they were created under
	// and are ignored once it is stale.
	gen            uint64
	transport      Transport
	queue          []models.OutboundMessage
	subs           map[string]Callback
	attempts       int
	reconnectTimer Timer
	heartbeatTimer Timer
	fallbackFired  bool
}

// NewSyncClient constructs a stopped SyncClient. Nothing happens until
// Start is called.
func NewSyncClient(dialer Dialer, creds CredentialSource, cfg Config, hooks Hooks, log *logger.Logger) *SyncClient {
	cfg = cfg.withDefaults()
	return &SyncClient{
		dialer: dialer,
		creds:  creds,
		cfg:    cfg,
		hooks:  hooks,
		sched:  cfg.Scheduler,
		log:    log,
		state:  StateIdle,
		subs:   make(map[string]Callback),
	}
}

// Start initiates the connection lifecycle. It is idempotent while a
// connection is live or being established; calling it after [StateFailed]
// resets the attempt counter and begins a fresh cycle.
func (c *SyncClient) Start() {
	var after []func()
	c.mu.Lock()
	switch c.state {
	case StateConnecting, StateAuthenticating, StateReady, StateDegraded:
		c.mu.Unlock()
		return
	default:
		c.attempts = 0
		c.fallbackFired = false
		after = c.connectLocked()
	}
	c.mu.Unlock()
	run(after)
}

// Send transmits msg immediately when the connection is ready; otherwise the
// message is queued and flushed, in order, once the handshake next succeeds.
// Send never blocks on connection establishment and never returns delivery
// confirmation.
func (c *SyncClient) Send(msg models.OutboundMessage) {
	var after []func()
	c.mu.Lock()
	if c.state == StateReady && c.transport != nil {
		if err := c.transport.WriteMessage(msg); err != nil {
			c.log.Warn().Err(err).Str("type", string(msg.Type)).Msg("realtime write failed, queueing message")
			c.queue = append([]models.OutboundMessage{msg}, c.queue...)
			after = c.disconnectLocked()
		}
	} else {
		c.enqueueLocked(msg)
	}
	c.mu.Unlock()
	run(after)
}

// Subscribe registers cb for updates about entityID and announces the
// subscription to the server. Re-subscribing to the same id replaces the
// previous callback.
func (c *SyncClient) Subscribe(entityID string, cb Callback) {
	c.mu.Lock()
	c.subs[entityID] = cb
	c.mu.Unlock()

	c.Send(models.OutboundMessage{Type: models.MsgSubscribe, EntityID: entityID})
}

// Unsubscribe removes the local callback for entityID and tells the server to
// stop sending updates for it. Calling it for an id with no active
// subscription is a no-op.
func (c *SyncClient) Unsubscribe(entityID string) {
	c.mu.Lock()
	if _, ok := c.subs[entityID]; !ok {
		c.mu.Unlock()
		return
	}
	delete(c.subs, entityID)
	c.mu.Unlock()

	c.Send(models.OutboundMessage{Type: models.MsgUnsubscribe, EntityID: entityID})
}

// Subscriptions returns the entity ids with a live subscription. The polling
// fallback uses it to know what to refresh.
func (c *SyncClient) Subscriptions() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	ids := make([]string, 0, len(c.subs))
	for id := range c.subs {
		ids = append(ids, id)
	}
	return ids
}

// IsReady reports whether push delivery is currently live. Consumers use it
// to decide between relying on subscriptions and polling on their own.
func (c *SyncClient) IsReady() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state == StateReady
}

// State returns the current lifecycle state.
func (c *SyncClient) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Stop tears the client down: pending reconnect and heartbeat timers are
// cancelled, the transport is closed, and all subscriptions and queued
// messages are discarded. Safe to call from any state, any number of times.
func (c *SyncClient) Stop() {
	var after []func()
	c.mu.Lock()
	c.gen++
	c.stopTimersLocked()
	if c.transport != nil {
		_ = c.transport.Close()
		c.transport = nil
	}
	c.subs = make(map[string]Callback)
	c.queue = nil
	c.attempts = 0
	c.fallbackFired = false
	after = c.setStateLocked(StateIdle)
	c.mu.Unlock()
	run(after)
}

// ── connection lifecycle ─────────────────────────────────────────────────────

// connectLocked begins a connection attempt. The credential is validated
// before any dial; an unusable credential is treated like an auth rejection.
func (c *SyncClient) connectLocked() []func() {
	cred, err := c.creds.Credential()
	if err != nil {
		c.log.Error().Err(err).Msg("session credential unusable, not connecting")
		return c.authFailureLocked(err.Error())
	}

	c.gen++
	gen := c.gen
	notify := c.setStateLocked(StateConnecting)

	go c.dial(gen, cred)
	return notify
}

func (c *SyncClient) dial(gen uint64, cred string) {
	ctx, cancel := context.WithTimeout(context.Background(), c.cfg.HandshakeTimeout)
	tr, err := c.dialer.Dial(ctx)
	cancel()

	var after []func()
	c.mu.Lock()
	if gen != c.gen {
		c.mu.Unlock()
		if err == nil {
			_ = tr.Close()
		}
		return
	}
	if err != nil {
		c.log.Warn().Err(err).Msg("realtime dial failed")
		after = c.disconnectLocked()
		c.mu.Unlock()
		run(after)
		return
	}

	c.transport = tr
	after = c.setStateLocked(StateAuthenticating)

	// The auth frame is the only traffic allowed before the handshake
	// resolves; queued messages stay queued.
	if werr := tr.WriteMessage(models.OutboundMessage{Type: models.MsgAuth, Token: cred}); werr != nil {
		c.log.Warn().Err(werr).Msg("realtime auth frame write failed")
		after = append(after, c.disconnectLocked()...)
		c.mu.Unlock()
		run(after)
		return
	}
	c.mu.Unlock()
	run(after)

	go c.readLoop(gen, tr)
}

func (c *SyncClient) readLoop(gen uint64, tr Transport) {
	for {
		raw, err := tr.ReadMessage()
		if err != nil {
			c.transportError(gen, err)
			return
		}
		if !c.handleFrame(gen, raw) {
			return
		}
	}
}

func (c *SyncClient) transportError(gen uint64, err error) {
	var after []func()
	c.mu.Lock()
	if gen != c.gen {
		c.mu.Unlock()
		return
	}
	c.log.Warn().Err(err).Msg("realtime transport lost")
	after = c.disconnectLocked()
	c.mu.Unlock()
	run(after)
}

// disconnectLocked handles a dead or dying transport: it closes it, enters
// Degraded, and either schedules the next reconnect attempt or, when the
// attempt budget is spent, fails the session and signals the fallback.
func (c *SyncClient) disconnectLocked() []func() {
	c.stopHeartbeatLocked()
	if c.transport != nil {
		// инвалидируем читающий цикл живого транспорта: его ошибка после
		// Close — тот же обрыв, а не второй
		c.gen++
		_ = c.transport.Close()
		c.transport = nil
	}

	switch c.state {
	case StateIdle, StateFailed:
		return nil
	}

	notify := c.setStateLocked(StateDegraded)

	if c.attempts >= c.cfg.MaxReconnectAttempts {
		return append(notify, c.exhaustedLocked()...)
	}

	c.attempts++
	gen := c.gen
	delay := c.cfg.ReconnectBaseDelay << (c.attempts - 1)
	c.log.Info().Int("attempt", c.attempts).Dur("delay", delay).Msg("realtime reconnect scheduled")
	c.reconnectTimer = c.sched.AfterFunc(delay, func() { c.reconnect(gen) })
	return notify
}

func (c *SyncClient) reconnect(gen uint64) {
	var after []func()
	c.mu.Lock()
	if gen != c.gen || c.state != StateDegraded {
		c.mu.Unlock()
		return
	}
	c.reconnectTimer = nil
	after = c.connectLocked()
	c.mu.Unlock()
	run(after)
}

// exhaustedLocked transitions to Failed after the reconnect budget is spent
// and fires the polling-fallback hook exactly once.
func (c *SyncClient) exhaustedLocked() []func() {
	c.log.Error().Int("attempts", c.attempts).Msg("realtime reconnection exhausted, falling back to polling")
	notify := c.setStateLocked(StateFailed)
	if !c.fallbackFired {
		c.fallbackFired = true
		if hook := c.hooks.OnFallback; hook != nil {
			notify = append(notify, hook)
		}
	}
	return notify
}

// authFailureLocked finalizes a terminal authentication failure: no reconnect
// timer is scheduled and the consumer-facing signal fires exactly once.
func (c *SyncClient) authFailureLocked(reason string) []func() {
	c.gen++
	c.stopTimersLocked()
	if c.transport != nil {
		_ = c.transport.Close()
		c.transport = nil
	}
	notify := c.setStateLocked(StateFailed)
	if hook := c.hooks.OnAuthFailure; hook != nil {
		notify = append(notify, func() { hook(reason) })
	}
	return notify
}

// ── inbound dispatch ─────────────────────────────────────────────────────────

// handleFrame validates and dispatches one inbound frame. It reports whether
// the read loop should keep going.
func (c *SyncClient) handleFrame(gen uint64, raw []byte) bool {
	var msg models.InboundMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		c.log.Warn().Err(err).Msg("malformed realtime frame dropped")
		return true
	}
	if !models.KnownInboundKind(msg.Type) {
		c.log.Debug().Str("type", string(msg.Type)).Msg("unknown realtime frame kind dropped")
		return true
	}

	switch msg.Type {
	case models.MsgAuthSuccess:
		return c.handleAuthSuccess(gen)
	case models.MsgAuthError:
		return c.handleAuthError(gen, msg.Reason)
	case models.MsgPong:
		// keepalive acknowledged; silence is detected via transport close
		return true
	case models.MsgNotification:
		if hook := c.hooks.OnNotification; hook != nil {
			c.dispatch(func() { hook(msg) })
		}
		return true
	default:
		if !models.EntityScoped(msg.Type) || msg.EntityID == "" {
			c.log.Warn().Str("type", string(msg.Type)).Msg("entity frame without entity id dropped")
			return true
		}
		c.mu.Lock()
		if gen != c.gen {
			c.mu.Unlock()
			return false
		}
		cb := c.subs[msg.EntityID]
		c.mu.Unlock()
		if cb != nil {
			c.dispatch(func() { cb(msg) })
		}
		return true
	}
}

func (c *SyncClient) handleAuthSuccess(gen uint64) bool {
	var after []func()
	c.mu.Lock()
	if gen != c.gen {
		c.mu.Unlock()
		return false
	}

	c.attempts = 0
	after = c.setStateLocked(StateReady)
	c.scheduleHeartbeatLocked(gen)

	// Flush the queue first, in send order, then re-announce live
	// subscriptions that do not already have a subscribe frame queued.
	// The lock is held across the flush so no later Send can overtake it.
	pending := c.queue
	c.queue = nil

	queuedSubs := make(map[string]bool, len(pending))
	for _, m := range pending {
		if m.Type == models.MsgSubscribe {
			queuedSubs[m.EntityID] = true
		}
	}
	for id := range c.subs {
		if !queuedSubs[id] {
			pending = append(pending, models.OutboundMessage{Type: models.MsgSubscribe, EntityID: id})
		}
	}

	for i, m := range pending {
		if err := c.transport.WriteMessage(m); err != nil {
			c.log.Warn().Err(err).Msg("realtime queue flush failed")
			c.queue = append(pending[i:], c.queue...)
			after = append(after, c.disconnectLocked()...)
			c.mu.Unlock()
			run(after)
			return false
		}
	}
	c.mu.Unlock()
	run(after)
	return true
}

func (c *SyncClient) handleAuthError(gen uint64, reason string) bool {
	var after []func()
	c.mu.Lock()
	if gen != c.gen {
		c.mu.Unlock()
		return false
	}
	c.log.Error().Str("reason", reason).Msg("realtime authentication rejected")
	after = c.authFailureLocked(reason)
	c.mu.Unlock()
	run(after)
	return false
}

// dispatch invokes a consumer callback, isolating the read loop from panics
// in consumer code.
func (c *SyncClient) dispatch(f func()) {
	defer func() {
		if r := recover(); r != nil {
			c.log.Error().Any("panic", r).Msg("realtime callback panicked")
		}
	}()
	f()
}

// ── timers ───────────────────────────────────────────────────────────────────

func (c *SyncClient) scheduleHeartbeatLocked(gen uint64) {
	if c.cfg.HeartbeatInterval <= 0 {
		return
	}
	c.heartbeatTimer = c.sched.AfterFunc(c.cfg.HeartbeatInterval, func() { c.heartbeat(gen) })
}

func (c *SyncClient) heartbeat(gen uint64) {
	var after []func()
	c.mu.Lock()
	if gen != c.gen || c.state != StateReady || c.transport == nil {
		c.mu.Unlock()
		return
	}
	c.scheduleHeartbeatLocked(gen)
	if err := c.transport.WriteMessage(models.OutboundMessage{Type: models.MsgPing}); err != nil {
		c.log.Warn().Err(err).Msg("realtime heartbeat write failed")
		after = c.disconnectLocked()
	}
	c.mu.Unlock()
	run(after)
}

func (c *SyncClient) stopHeartbeatLocked() {
	if c.heartbeatTimer != nil {
		c.heartbeatTimer.Stop()
		c.heartbeatTimer = nil
	}
}

func (c *SyncClient) stopTimersLocked() {
	c.stopHeartbeatLocked()
	if c.reconnectTimer != nil {
		c.reconnectTimer.Stop()
		c.reconnectTimer = nil
	}
}

// ── helpers ──────────────────────────────────────────────────────────────────

func (c *SyncClient) setStateLocked(s State) []func() {
	if s == c.state {
		return nil
	}
	c.log.Debug().Str("from", c.state.String()).Str("to", s.String()).Msg("realtime state change")
	c.state = s
	if hook := c.hooks.OnStateChange; hook != nil {
		return []func(){func() { hook(s) }}
	}
	return nil
}

func (c *SyncClient) enqueueLocked(msg models.OutboundMessage) {
	if c.cfg.QueueCap > 0 && len(c.queue) >= c.cfg.QueueCap {
		c.log.Warn().Str("type", string(c.queue[0].Type)).Msg("outbound queue full, dropping oldest message")
		c.queue = c.queue[1:]
	}
	c.queue = append(c.queue, msg)
}

// run executes deferred hook invocations collected while the lock was held.
// Hooks always fire outside the lock so they may re-enter the client.
func run(fns []func()) {
	for _, fn := range fns {
		fn()
	}
}
