// SPDX-License-Identifier: Apache-2.0

package devserver

import (
	"sync"

	"github.com/Infradevandops/NAMASKAH-sub003/internal/logger"
	"github.com/Infradevandops/NAMASKAH-sub003/models"
)

// FrameWriter delivers a single server → client frame to one realtime
// session. The transport layer owns serialization and write locking.
type FrameWriter interface {
	WriteFrame(msg models.InboundMessage) error
}

// Hub tracks authenticated realtime sessions and routes simulated pushes to
// them. Entity-scoped frames go only to sessions subscribed to that entity;
// notifications go to everyone.
type Hub struct {
	mu       sync.Mutex
	sessions map[*Session]struct{}

	logger *logger.Logger
}

// Session is one attached realtime connection together with its subscription
// set. Safe for concurrent use.
type Session struct {
	hub    *Hub
	writer FrameWriter

	mu   sync.Mutex
	subs map[string]struct{}
}

func NewHub(logger *logger.Logger) *Hub {
	return &Hub{
		sessions: make(map[*Session]struct{}),
		logger:   logger,
	}
}

// Attach registers writer as a live session and returns its handle. The
// caller must Close the session when the connection goes away.
func (h *Hub) Attach(writer FrameWriter) *Session {
	s := &Session{
		hub:    h,
		writer: writer,
		subs:   make(map[string]struct{}),
	}

	h.mu.Lock()
	h.sessions[s] = struct{}{}
	h.mu.Unlock()

	return s
}

// PushEntity sends msg to every session subscribed to entityID.
func (h *Hub) PushEntity(entityID string, msg models.InboundMessage) {
	for _, s := range h.snapshot() {
		if !s.subscribed(entityID) {
			continue
		}
		if err := s.writer.WriteFrame(msg); err != nil {
			h.logger.Warn().Err(err).Str("entity_id", entityID).Msg("push skipped, session write failed")
		}
	}
}

// Broadcast sends a session-wide frame (notifications) to every attached
// session regardless of subscriptions.
func (h *Hub) Broadcast(msg models.InboundMessage) {
	for _, s := range h.snapshot() {
		if err := s.writer.WriteFrame(msg); err != nil {
			h.logger.Warn().Err(err).Msg("broadcast skipped, session write failed")
		}
	}
}

// snapshot copies the session set so pushes never hold the hub lock while
// writing to a network connection.
func (h *Hub) snapshot() []*Session {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]*Session, 0, len(h.sessions))
	for s := range h.sessions {
		out = append(out, s)
	}
	return out
}

// Subscribe adds entityID to the session's subscription set. Duplicate
// subscriptions are a no-op.
func (s *Session) Subscribe(entityID string) {
	if entityID == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs[entityID] = struct{}{}
}

// Unsubscribe removes entityID from the session's subscription set.
func (s *Session) Unsubscribe(entityID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.subs, entityID)
}

func (s *Session) subscribed(entityID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.subs[entityID]
	return ok
}

// Close detaches the session from the hub. Further pushes will not reach it.
func (s *Session) Close() {
	s.hub.mu.Lock()
	delete(s.hub.sessions, s)
	s.hub.mu.Unlock()
}
