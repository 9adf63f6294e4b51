package repository

import (
	"sync"

	"quiz-session/internal/domain"
)

// sessionRegistry is the in-memory implementation of domain.SessionRegistry.
// It keys all mutable scoring state by container ID; snapshots are handed
// out as deep copies so callers can never mutate registry state directly.
type sessionRegistry struct {
	mu       sync.Mutex
	sessions map[string]*domain.SessionState
}

// NewSessionRegistry creates a new in-memory session registry.
func NewSessionRegistry() domain.SessionRegistry {
	return &sessionRegistry{
		sessions: make(map[string]*domain.SessionState),
	}
}

// CreateSession implements domain.SessionRegistry. Any prior state for the
// container is replaced, never merged: re-rendering a container is a full
// reset.
func (r *sessionRegistry) CreateSession(containerID string, questionCount int) *domain.SessionState {
	r.mu.Lock()
	defer r.mu.Unlock()

	state := &domain.SessionState{
		ContainerID: containerID,
		Total:       questionCount,
		Answered:    make(map[int]bool),
	}
	r.sessions[containerID] = state
	return state.Clone()
}

// GetSession implements domain.SessionRegistry.
func (r *sessionRegistry) GetSession(containerID string) (*domain.SessionState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	state, ok := r.sessions[containerID]
	if !ok {
		return nil, domain.NewSessionNotFoundError(containerID)
	}
	return state.Clone(), nil
}

// RecordAnswer implements domain.SessionRegistry. The ALREADY_ANSWERED
// guard makes scoring idempotent per question regardless of how many
// times the same selection handler fires.
func (r *sessionRegistry) RecordAnswer(containerID string, questionIndex int, isCorrect bool) (*domain.SessionState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	state, ok := r.sessions[containerID]
	if !ok {
		return nil, domain.NewSessionNotFoundError(containerID)
	}
	if state.Answered[questionIndex] {
		return nil, domain.NewAlreadyAnsweredError(containerID, questionIndex)
	}

	state.Answered[questionIndex] = true
	state.Attempted++
	if isCorrect {
		state.Correct++
	}
	return state.Clone(), nil
}

// DeleteSession implements domain.SessionRegistry.
func (r *sessionRegistry) DeleteSession(containerID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, containerID)
}
