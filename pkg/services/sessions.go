package services

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"interest-form/pkg/form"
)

var (
	// ErrSessionNotFound is returned for ids that were never issued or were discarded.
	ErrSessionNotFound = errors.New("form session not found")
	// ErrSessionExpired is returned once for a session that went idle past its timeout.
	ErrSessionExpired = errors.New("form session expired")
)

// Session is one mounted form. Events for a session run one at a time.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu   sync.Mutex
	form *form.Controller

	closed  atomic.Bool
	expired atomic.Bool

	// guarded by SessionService.mu
	expiresAt time.Time
	timer     *time.Timer
}

// Do runs fn with exclusive access to the session's form. It fails without
// calling fn once the session has been discarded or has expired.
func (s *Session) Do(fn func(f *form.Controller) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.expired.Load() {
		return ErrSessionExpired
	}
	if s.closed.Load() {
		return ErrSessionNotFound
	}
	return fn(s.form)
}

// State returns a snapshot of the session's form.
func (s *Session) State() form.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form.State()
}

// SessionService keeps mounted forms in memory until they go idle.
// An idle session stays behind as an expired marker for the retention
// period so clients can tell expiry apart from an unknown id.
type SessionService struct {
	submissions SubmissionService
	sessions    map[string]*Session
	mu          sync.RWMutex
	timeout     time.Duration
	retention   time.Duration
	now         func() time.Time
	logger      *zap.Logger
}

// NewSessionService creates a session store whose forms expire after timeout of inactivity.
func NewSessionService(submissions SubmissionService, timeout time.Duration, logger *zap.Logger) *SessionService {
	return &SessionService{
		submissions: submissions,
		sessions:    make(map[string]*Session),
		timeout:     timeout,
		retention:   max(timeout, time.Minute),
		now:         time.Now,
		logger:      logger.Named("sessions"),
	}
}

// Create mounts a new form with default values.
func (s *SessionService) Create() *Session {
	id := uuid.NewString()
	now := s.now()

	session := &Session{
		ID:        id,
		CreatedAt: now,
		form:      form.New(Sink(s.submissions, id)),
		expiresAt: now.Add(s.timeout),
	}

	// Any activity pushes expiry back
	session.form.OnUpdate(func(form.State) {
		s.touch(session)
	})

	s.mu.Lock()
	s.sessions[id] = session
	session.timer = time.AfterFunc(s.timeout, func() { s.expire(id) })
	count := len(s.sessions)
	s.mu.Unlock()

	s.logger.Debug("form session created", zap.String("session_id", id), zap.Int("active", count))
	return session
}

// Get returns a live session. An expired session is reported once with
// ErrSessionExpired and then forgotten.
func (s *SessionService) Get(id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, exists := s.sessions[id]
	if !exists {
		return nil, ErrSessionNotFound
	}

	if session.expired.Load() || !s.now().Before(session.expiresAt) {
		s.removeLocked(id)
		return nil, ErrSessionExpired
	}

	return session, nil
}

// Delete discards a session.
func (s *SessionService) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, exists := s.sessions[id]
	if !exists {
		return ErrSessionNotFound
	}
	s.removeLocked(id)

	if session.expired.Load() {
		return ErrSessionExpired
	}
	return nil
}

// Len reports the number of sessions held, expired markers included.
func (s *SessionService) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Close stops every expiry timer and drops all sessions.
func (s *SessionService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id := range s.sessions {
		s.removeLocked(id)
	}
}

func (s *SessionService) touch(session *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.sessions[session.ID]; !exists || session.expired.Load() {
		return
	}
	session.expiresAt = s.now().Add(s.timeout)
	session.timer.Reset(s.timeout)
}

// expire runs from the session timer. The first run marks the session
// expired and rearms the timer; the second drops the marker.
func (s *SessionService) expire(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, exists := s.sessions[id]
	if !exists {
		return
	}

	if session.expired.Load() {
		s.removeLocked(id)
		return
	}

	if s.now().Before(session.expiresAt) {
		return
	}
	session.expired.Store(true)
	session.timer.Reset(s.retention)
	s.logger.Debug("form session expired", zap.String("session_id", id))
}

func (s *SessionService) removeLocked(id string) {
	if session, exists := s.sessions[id]; exists {
		session.timer.Stop()
		session.closed.Store(true)
		delete(s.sessions, id)
	}
}
