package helpdesk

import (
	"context"
	"strings"
	"testing"

	"github.com/citymesh/a2a-agents/src/agent"
	"github.com/citymesh/a2a-agents/src/models"
)

func newTestHelpdesk(t *testing.T) (*agent.Agent, *Store) {
	t.Helper()
	store := NewStore()
	a, err := New(&models.DummyLLM{}, store)
	if err != nil {
		t.Fatal(err)
	}
	return a, store
}

func createParams(title string) map[string]any {
	return map[string]any{
		"title":       title,
		"description": "something broke",
		"category":    "bug",
		"priority":    "high",
	}
}

func TestCreateTicketAssignsIDAndDefaults(t *testing.T) {
	a, store := newTestHelpdesk(t)

	res := a.ExecuteTool(context.Background(), "create_ticket", createParams("Login broken"))
	if !res.Success {
		t.Fatalf("err = %q", res.Err)
	}
	payload, _ := res.Payload.(map[string]any)
	id, _ := payload["ticket_id"].(string)
	if !strings.HasPrefix(id, "TICKET-") || len(id) != len("TICKET-")+8 {
		t.Fatalf("ticket_id = %q", id)
	}

	stored, ok := store.Get(id)
	if !ok {
		t.Fatal("ticket not in store")
	}
	if stored.Status != "open" || stored.Assignee != "unassigned" {
		t.Fatalf("ticket = %+v", stored)
	}
	if stored.Notes == nil || len(stored.Notes) != 0 {
		t.Fatalf("notes = %v, want empty slice", stored.Notes)
	}
}

func TestCreateTicketRequiresFields(t *testing.T) {
	a, _ := newTestHelpdesk(t)
	res := a.ExecuteTool(context.Background(), "create_ticket", map[string]any{"title": "only a title"})
	if res.Success {
		t.Fatal("want failure")
	}
}

func TestUpdateTicketStatusAndNotes(t *testing.T) {
	a, store := newTestHelpdesk(t)
	created := store.Create("t", "d", "bug", "low", "sam")

	res := a.ExecuteTool(context.Background(), "update_ticket", map[string]any{
		"ticket_id": created.TicketID,
		"status":    "in_progress",
		"note":      "looking into it",
	})
	if !res.Success {
		t.Fatalf("err = %q", res.Err)
	}

	updated, _ := store.Get(created.TicketID)
	if updated.Status != "in_progress" {
		t.Fatalf("status = %q", updated.Status)
	}
	if len(updated.Notes) != 1 || updated.Notes[0].Note != "looking into it" {
		t.Fatalf("notes = %v", updated.Notes)
	}
}

func TestUpdateUnknownTicket(t *testing.T) {
	a, _ := newTestHelpdesk(t)
	res := a.ExecuteTool(context.Background(), "update_ticket", map[string]any{"ticket_id": "TICKET-NOPE1234"})
	if res.Success {
		t.Fatal("want failure")
	}
	if !strings.Contains(res.Err, "not found") {
		t.Fatalf("err = %q", res.Err)
	}
}

func TestSearchTicketsFiltersExactly(t *testing.T) {
	a, store := newTestHelpdesk(t)
	store.Create("a", "d", "bug", "high", "sam")
	store.Create("b", "d", "bug", "low", "alex")
	store.Create("c", "d", "question", "high", "sam")

	res := a.ExecuteTool(context.Background(), "search_tickets", map[string]any{
		"category": "bug",
		"assignee": "sam",
	})
	if !res.Success {
		t.Fatalf("err = %q", res.Err)
	}
	payload, _ := res.Payload.(map[string]any)
	if payload["count"] != 1 {
		t.Fatalf("count = %v", payload["count"])
	}
	tickets, _ := payload["tickets"].([]Ticket)
	if len(tickets) != 1 || tickets[0].Title != "a" {
		t.Fatalf("tickets = %v", tickets)
	}
}

func TestListAllTicketsKeepsCreationOrder(t *testing.T) {
	a, store := newTestHelpdesk(t)
	store.Create("first", "d", "bug", "low", "")
	store.Create("second", "d", "bug", "low", "")

	res := a.ExecuteTool(context.Background(), "list_all_tickets", nil)
	if !res.Success {
		t.Fatalf("err = %q", res.Err)
	}
	payload, _ := res.Payload.(map[string]any)
	tickets, _ := payload["tickets"].([]Ticket)
	if len(tickets) != 2 || tickets[0].Title != "first" || tickets[1].Title != "second" {
		t.Fatalf("tickets = %v", tickets)
	}
}

func TestTicketIDsAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := newTicketID()
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true
	}
}
