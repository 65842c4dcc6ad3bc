package helpdesk

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Note is a timestamped comment attached to a ticket.
type Note struct {
	Timestamp string `json:"timestamp"`
	Note      string `json:"note"`
}

// Ticket is a support ticket tracked in memory.
type Ticket struct {
	TicketID    string `json:"ticket_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Priority    string `json:"priority"`
	Assignee    string `json:"assignee"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
	Notes       []Note `json:"notes"`
}

// Store holds tickets in memory, keyed by id. Safe for concurrent use.
type Store struct {
	mu      sync.Mutex
	tickets map[string]*Ticket
	order   []string
}

func NewStore() *Store {
	return &Store{tickets: make(map[string]*Ticket)}
}

func newTicketID() string {
	return "TICKET-" + strings.ToUpper(uuid.NewString()[:8])
}

// Create inserts a new open ticket and returns a copy of it.
func (s *Store) Create(title, description, category, priority, assignee string) Ticket {
	now := time.Now().Format(time.RFC3339)
	t := &Ticket{
		TicketID:    newTicketID(),
		Title:       title,
		Description: description,
		Category:    category,
		Priority:    priority,
		Assignee:    assignee,
		Status:      "open",
		CreatedAt:   now,
		UpdatedAt:   now,
		Notes:       []Note{},
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tickets[t.TicketID] = t
	s.order = append(s.order, t.TicketID)
	return *t
}

// Update sets the status and/or appends a note. Empty arguments are skipped.
func (s *Store) Update(id, status, note string) (Ticket, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tickets[id]
	if !ok {
		return Ticket{}, false
	}
	now := time.Now().Format(time.RFC3339)
	if status != "" {
		t.Status = status
	}
	if note != "" {
		t.Notes = append(t.Notes, Note{Timestamp: now, Note: note})
	}
	t.UpdatedAt = now
	return *t, true
}

func (s *Store) Get(id string) (Ticket, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tickets[id]
	if !ok {
		return Ticket{}, false
	}
	return *t, true
}

// All returns tickets in creation order.
func (s *Store) All() []Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Ticket, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.tickets[id])
	}
	return out
}

// Search returns tickets matching every non-empty filter field exactly.
func (s *Store) Search(status, category, priority, assignee string) []Ticket {
	matches := func(t Ticket) bool {
		if status != "" && t.Status != status {
			return false
		}
		if category != "" && t.Category != category {
			return false
		}
		if priority != "" && t.Priority != priority {
			return false
		}
		if assignee != "" && t.Assignee != assignee {
			return false
		}
		return true
	}

	var out []Ticket
	for _, t := range s.All() {
		if matches(t) {
			out = append(out, t)
		}
	}
	return out
}
