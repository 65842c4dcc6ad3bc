package ticket

import "sync"

// PendingPayment is the ephemeral record of the most recent unpaid
// reservation for one conversation: just enough to complete a follow-up
// "send the payment" request without re-specifying address and amount.
type PendingPayment struct {
	Address  string
	Amount   string
	IntentID string
}

// PendingStore keeps one pending payment per session. A new reservation in
// the same session overwrites the previous one (last-reservation-wins — the
// slot is deliberately single, not a queue), and a completed payment clears
// it. Keying by session keeps concurrent conversations from cross-wiring
// each other's payments.
type PendingStore struct {
	mu      sync.Mutex
	pending map[string]PendingPayment
}

// NewPendingStore returns an empty store.
func NewPendingStore() *PendingStore {
	return &PendingStore{pending: make(map[string]PendingPayment)}
}

// Set records the pending payment for a session, replacing any previous one.
func (s *PendingStore) Set(session string, p PendingPayment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending[session] = p
}

// Get returns the session's pending payment, if any.
func (s *PendingStore) Get(session string) (PendingPayment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.pending[session]
	return p, ok
}

// Clear removes the session's pending payment.
func (s *PendingStore) Clear(session string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pending, session)
}
