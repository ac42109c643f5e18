// Copyright (c) twofivesha (dev@twofivesha.dev)
// SPDX-License-Identifier: BUSL-1.1

// Package session owns the set of live cooking sessions. Commands against
// one session apply strictly one after another; distinct sessions never
// block each other.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/twofivesha/agentsouschef/internal/cooking"
	"github.com/twofivesha/agentsouschef/internal/llm"
	"github.com/twofivesha/agentsouschef/internal/metrics"
	"github.com/twofivesha/agentsouschef/internal/recipes"
)

// ErrNotFound is returned for operations on an unknown or expired session.
var ErrNotFound = errors.New("session not found")

// apologyReply is returned when the collaborator is unavailable. The
// session state is left untouched.
const apologyReply = "Sorry, I'm having trouble thinking right now. " +
	"Your recipe progress is unchanged, please try again in a moment."

// Snapshot is a read-only view of one session, republished atomically after
// every mutation. Callers must not modify it.
type Snapshot struct {
	SessionID     string            `json:"sessionId"`
	RecipeID      string            `json:"recipeId"`
	RecipeName    string            `json:"recipeName"`
	CurrentStep   int               `json:"currentStep"`
	TotalSteps    int               `json:"totalSteps"`
	Strikes       []string          `json:"strikes"`
	Substitutions map[string]string `json:"substitutions"`
	MessageCount  int               `json:"messageCount"`
	LastActive    time.Time         `json:"lastActive"`
}

// entry is one live session. mu serializes mutations; snap is readable
// without the lock.
type entry struct {
	mu sync.Mutex

	recipe       *recipes.Recipe
	state        cooking.State
	messageCount int
	lastActive   time.Time

	snap atomic.Pointer[Snapshot]
}

// publish rebuilds the snapshot from current fields. Callers hold e.mu.
func (e *entry) publish(sessionID string) {
	e.snap.Store(&Snapshot{
		SessionID:     sessionID,
		RecipeID:      e.state.RecipeID,
		RecipeName:    e.recipe.Name,
		CurrentStep:   e.state.CurrentStep,
		TotalSteps:    len(e.recipe.Steps),
		Strikes:       e.state.StruckIngredients(),
		Substitutions: e.state.Clone().Substitutions,
		MessageCount:  e.messageCount,
		LastActive:    e.lastActive,
	})
}

// Option configures a Store.
type Option func(*Store)

// WithIdleTimeout evicts sessions idle for longer than d. Zero disables
// eviction.
func WithIdleTimeout(d time.Duration) Option {
	return func(s *Store) { s.idleTimeout = d }
}

// WithCollaboratorTimeout bounds a single collaborator call, retries
// included.
func WithCollaboratorTimeout(d time.Duration) Option {
	return func(s *Store) { s.collabTimeout = d }
}

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New returns a Store. Close must be called to stop the idle reaper when an
// idle timeout is set.
func New(catalog recipes.Catalog, collab llm.Collaborator, opts ...Option) *Store {
	s := &Store{
		sessions:      map[string]*entry{},
		catalog:       catalog,
		exec:          cooking.NewExecutor(catalog),
		collab:        collab,
		collabTimeout: 30 * time.Second,
		now:           time.Now,
		done:          make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.idleTimeout > 0 {
		go s.reapLoop()
	}
	return s
}

// Store owns all live sessions and mediates concurrent access to them.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*entry

	catalog recipes.Catalog
	exec    *cooking.Executor
	collab  llm.Collaborator

	idleTimeout   time.Duration
	collabTimeout time.Duration
	now           func() time.Time

	done      chan struct{}
	closeOnce sync.Once
}

// Close stops the idle reaper. Live sessions stay readable.
func (s *Store) Close() {
	s.closeOnce.Do(func() { close(s.done) })
}

// Create starts a session for a recipe and returns its first snapshot and
// the greeting reply.
func (s *Store) Create(ctx context.Context, recipeID string) (*Snapshot, string, error) {
	recipe, err := s.catalog.Get(ctx, recipeID)
	if err != nil {
		return nil, "", fmt.Errorf("session: creating session: %w", err)
	}

	id := uuid.NewString()
	e := &entry{
		recipe:     recipe,
		state:      cooking.NewState(recipeID),
		lastActive: s.now(),
	}
	e.publish(id)

	s.mu.Lock()
	s.sessions[id] = e
	s.mu.Unlock()
	metrics.ActiveSessions.Inc()

	greeting := fmt.Sprintf("Let's cook %s! Ask for 'ingredients', 'steps', or say 'next' to begin.", recipe.Name)
	return e.snap.Load(), greeting, nil
}

func (s *Store) lookup(sessionID string) (*entry, error) {
	s.mu.RLock()
	e, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("session: looking up %q: %w", sessionID, ErrNotFound)
	}
	return e, nil
}

// Get returns the current snapshot of a session.
func (s *Store) Get(sessionID string) (*Snapshot, error) {
	e, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	return e.snap.Load(), nil
}

// Recipe returns the immutable recipe a session is cooking.
func (s *Store) Recipe(sessionID string) (*recipes.Recipe, error) {
	e, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	return e.recipe, nil
}

// Execute parses raw input and applies it to the session, serialized
// against any other operation on the same session. Unrecognized input is
// routed to the collaborator without holding the session lock for the
// network round trip.
func (s *Store) Execute(ctx context.Context, sessionID, raw string) (string, *Snapshot, error) {
	e, err := s.lookup(sessionID)
	if err != nil {
		return "", nil, err
	}

	cmd := cooking.Parse(raw)
	if cmd.Kind == cooking.KindUnrecognized {
		return s.executeCollaborator(ctx, sessionID, e, raw)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	reply, next, err := s.exec.Apply(ctx, e.recipe, e.state, cmd)
	e.messageCount++
	e.lastActive = s.now()
	metrics.CommandsTotal.WithLabelValues(cmd.Kind.String()).Inc()
	if err != nil {
		e.publish(sessionID)
		return "", e.snap.Load(), err
	}
	e.state = next
	e.publish(sessionID)
	return reply, e.snap.Load(), nil
}

// executeCollaborator gathers context under the lock, releases it for the
// model call, and re-acquires it only to apply the advance hint. The lock
// is never held across the network round trip.
func (s *Store) executeCollaborator(ctx context.Context, sessionID string, e *entry, raw string) (string, *Snapshot, error) {
	e.mu.Lock()
	bundle := cooking.BuildContext(e.recipe, e.state, raw)
	e.mu.Unlock()

	var reply *llm.Reply
	var err error
	if s.collab == nil {
		err = llm.ErrUnavailable
	} else {
		callCtx, cancel := context.WithTimeout(ctx, s.collabTimeout)
		reply, err = s.collab.Chat(callCtx, bundle)
		cancel()
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.messageCount++
	e.lastActive = s.now()
	metrics.CommandsTotal.WithLabelValues(cooking.KindUnrecognized.String()).Inc()

	if err != nil {
		slog.ErrorContext(ctx, "session: collaborator call failed", "sessionId", sessionID, "error", err)
		metrics.CollaboratorFailures.Inc()
		e.publish(sessionID)
		return apologyReply, e.snap.Load(), nil
	}

	if reply.AdvanceStep {
		// Advisory hint only: applied through the normal clamped advance.
		_, next := s.exec.Advance(e.recipe, e.state)
		e.state = next
	}
	e.publish(sessionID)
	return reply.Text, e.snap.Load(), nil
}

// Strike sets an ingredient's struck state explicitly.
func (s *Store) Strike(_ context.Context, sessionID, ingredient string, action cooking.StrikeAction) (string, *Snapshot, error) {
	return s.structured(sessionID, func(e *entry) (string, cooking.State, error) {
		return s.exec.Strike(e.recipe, e.state, ingredient, action)
	})
}

// Substitute sets or overwrites the substitution for an ingredient.
func (s *Store) Substitute(_ context.Context, sessionID, original, substitute string) (string, *Snapshot, error) {
	return s.structured(sessionID, func(e *entry) (string, cooking.State, error) {
		return s.exec.SetSubstitution(e.recipe, e.state, original, substitute)
	})
}

// ClearSubstitution removes the substitution for an ingredient, if any.
func (s *Store) ClearSubstitution(_ context.Context, sessionID, original string) (string, *Snapshot, error) {
	return s.structured(sessionID, func(e *entry) (string, cooking.State, error) {
		return s.exec.ClearSubstitution(e.recipe, e.state, original)
	})
}

func (s *Store) structured(sessionID string, apply func(*entry) (string, cooking.State, error)) (string, *Snapshot, error) {
	e, err := s.lookup(sessionID)
	if err != nil {
		return "", nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	reply, next, err := apply(e)
	e.messageCount++
	e.lastActive = s.now()
	if err != nil {
		e.publish(sessionID)
		return "", e.snap.Load(), err
	}
	e.state = next
	e.publish(sessionID)
	return reply, e.snap.Load(), nil
}

// Delete removes a session. It is idempotent and reports whether a session
// existed.
func (s *Store) Delete(sessionID string) bool {
	s.mu.Lock()
	_, ok := s.sessions[sessionID]
	delete(s.sessions, sessionID)
	s.mu.Unlock()
	if ok {
		metrics.ActiveSessions.Dec()
	}
	return ok
}

// List returns snapshots of all live sessions, for diagnostics.
func (s *Store) List() []*Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Snapshot, 0, len(s.sessions))
	for _, e := range s.sessions {
		out = append(out, e.snap.Load())
	}
	return out
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *Store) reapLoop() {
	interval := s.idleTimeout / 2
	if interval > 5*time.Minute {
		interval = 5 * time.Minute
	}
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.reapIdle()
		}
	}
}

func (s *Store) reapIdle() {
	cutoff := s.now().Add(-s.idleTimeout)
	for _, snap := range s.List() {
		if snap.LastActive.Before(cutoff) {
			s.Delete(snap.SessionID)
		}
	}
}
