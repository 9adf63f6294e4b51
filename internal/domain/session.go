package domain

// SessionState is the scoring state of one rendered quiz session.
// One state exists per active container; two containers showing the
// same payload hold fully independent states.
type SessionState struct {
	ContainerID string
	Total       int
	Correct     int
	Attempted   int
	Answered    map[int]bool
}

// HasAnswered reports whether the question at the given index has
// already been scored in this session.
func (s *SessionState) HasAnswered(questionIndex int) bool {
	return s.Answered[questionIndex]
}

// Clone returns a deep copy safe to hand out as a display snapshot.
func (s *SessionState) Clone() *SessionState {
	answered := make(map[int]bool, len(s.Answered))
	for k, v := range s.Answered {
		answered[k] = v
	}
	return &SessionState{
		ContainerID: s.ContainerID,
		Total:       s.Total,
		Correct:     s.Correct,
		Attempted:   s.Attempted,
		Answered:    answered,
	}
}

// SessionRegistry defines the port for per-container session state.
// All mutable scoring state is keyed by container identity so that
// logically concurrent interactions across containers never share
// mutable fields.
type SessionRegistry interface {
	// CreateSession initializes a fresh session for the container,
	// replacing any prior state for the same container ID.
	CreateSession(containerID string, questionCount int) *SessionState

	// GetSession returns a snapshot of the container's session, or a
	// SESSION_NOT_FOUND error when none exists.
	GetSession(containerID string) (*SessionState, error)

	// RecordAnswer scores a question exactly once. It fails with
	// SESSION_NOT_FOUND for an unknown container and ALREADY_ANSWERED
	// when the question index was scored before; on success it returns
	// the updated snapshot for display refresh.
	RecordAnswer(containerID string, questionIndex int, isCorrect bool) (*SessionState, error)

	// DeleteSession tears the container's session down. Deleting an
	// unknown container is a no-op.
	DeleteSession(containerID string)
}
