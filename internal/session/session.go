// Package session holds per-user checkout state. Sessions are process-local
// and keyed by user id; losing them on restart is acceptable, so there is no
// persistence behind this store.
package session

import "sync"

// Pending actions recorded on a session while a checkout is in flight.
const (
	PendingNone         = ""
	PendingPhone        = "phone"
	PendingLocation     = "location"
	PendingConfirmation = "confirmation"
)

// Session is one user's ephemeral checkout state. The ProcessingOrder flag
// is the sole gate for every checkout-step command.
type Session struct {
	UserID          int64
	ProcessingOrder bool
	PendingAction   string
}

// Store is a concurrency-safe map of user id to Session. Absence is an
// explicit "no session yet" case; nothing is default-initialized on read.
type Store struct {
	mu       sync.RWMutex
	sessions map[int64]Session
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{sessions: make(map[int64]Session)}
}

// Get returns the session for userID and whether one exists.
func (s *Store) Get(userID int64) (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[userID]
	return sess, ok
}

// Processing reports whether the user is mid-checkout. A missing session
// counts as not processing.
func (s *Store) Processing(userID int64) bool {
	sess, ok := s.Get(userID)
	return ok && sess.ProcessingOrder
}

// Set replaces the session for userID wholesale.
func (s *Store) Set(sess Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.UserID] = sess
}

// Begin marks the user as mid-checkout with the given pending action.
func (s *Store) Begin(userID int64, pending string) {
	s.Set(Session{UserID: userID, ProcessingOrder: true, PendingAction: pending})
}

// SetPending updates the pending action of an in-flight checkout. No-op when
// the user has no session.
func (s *Store) SetPending(userID int64, pending string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[userID]
	if !ok {
		return
	}
	sess.PendingAction = pending
	s.sessions[userID] = sess
}

// Reset clears the processing flag, abandoning any in-flight checkout.
// Safe to call for users without a session.
func (s *Store) Reset(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[userID]
	if !ok {
		return
	}
	sess.ProcessingOrder = false
	sess.PendingAction = PendingNone
	s.sessions[userID] = sess
}

// CompareAndSwapProcessing atomically flips the processing flag from old to
// new. Returns false when the current value (missing session reads as false)
// does not match old.
func (s *Store) CompareAndSwapProcessing(userID int64, old, new bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.sessions[userID]
	current := sess.ProcessingOrder
	if current != old {
		return false
	}
	sess.UserID = userID
	sess.ProcessingOrder = new
	if !new {
		sess.PendingAction = PendingNone
	}
	s.sessions[userID] = sess
	return true
}
