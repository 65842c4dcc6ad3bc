// Package helpdesk implements the support-ticket agent: an in-memory
// ticket tracker with create/update/search tooling.
package helpdesk

import (
	"context"

	"github.com/citymesh/a2a-agents/src/agent"
	"github.com/citymesh/a2a-agents/src/models"
)

const instructions = `You are a helpdesk ticket management agent. Your role is to:
1. Create support tickets for bugs, feature requests, questions, and incidents
2. Update ticket status and add progress notes
3. Look up tickets by ID and search them by status, category, priority, or assignee
4. Keep ticket records accurate and up to date

Always confirm the ticket ID after creating or updating a ticket.
Ask for a title, description, category, and priority when creating a ticket.`

type helpdeskTools struct {
	store *Store
}

// New builds the helpdesk agent around the given ticket store. Passing a
// shared store lets callers inspect tickets from outside the agent.
func New(model models.Model, store *Store) (*agent.Agent, error) {
	if store == nil {
		store = NewStore()
	}
	h := &helpdeskTools{store: store}

	catalog := agent.NewCatalog()
	for _, reg := range []struct {
		spec    agent.ToolSpec
		handler agent.Handler
	}{
		{createTicketSpec, h.createTicket},
		{updateTicketSpec, h.updateTicket},
		{getTicketSpec, h.getTicket},
		{searchTicketsSpec, h.searchTickets},
		{listAllTicketsSpec, h.listAllTickets},
	} {
		if err := catalog.Register(reg.spec, reg.handler); err != nil {
			return nil, err
		}
	}

	return agent.New(agent.Options{
		Name:         "Helpdesk Agent",
		Description:  "Specialized agent for managing support tickets",
		Instructions: instructions,
		AgentType:    "HelpdeskAgent",
		Model:        model,
		Catalog:      catalog,
	})
}

func (h *helpdeskTools) createTicket(_ context.Context, params map[string]any) agent.Result {
	title := agent.StringParam(params, "title", "")
	description := agent.StringParam(params, "description", "")
	category := agent.StringParam(params, "category", "")
	priority := agent.StringParam(params, "priority", "")
	if title == "" || description == "" || category == "" || priority == "" {
		return agent.Errorf("missing required parameters: title, description, category, priority")
	}
	assignee := agent.StringParam(params, "assignee", "unassigned")

	t := h.store.Create(title, description, category, priority, assignee)
	return agent.OK(map[string]any{
		"success":   true,
		"ticket_id": t.TicketID,
		"message":   "Ticket " + t.TicketID + " created successfully",
		"ticket":    t,
	})
}

func (h *helpdeskTools) updateTicket(_ context.Context, params map[string]any) agent.Result {
	id := agent.StringParam(params, "ticket_id", "")
	if id == "" {
		return agent.Errorf("missing required parameter: ticket_id")
	}
	t, ok := h.store.Update(id,
		agent.StringParam(params, "status", ""),
		agent.StringParam(params, "note", ""))
	if !ok {
		return agent.Errorf("Ticket %s not found", id)
	}
	return agent.OK(map[string]any{
		"success":   true,
		"ticket_id": t.TicketID,
		"message":   "Ticket " + t.TicketID + " updated successfully",
		"ticket":    t,
	})
}

func (h *helpdeskTools) getTicket(_ context.Context, params map[string]any) agent.Result {
	id := agent.StringParam(params, "ticket_id", "")
	if id == "" {
		return agent.Errorf("missing required parameter: ticket_id")
	}
	t, ok := h.store.Get(id)
	if !ok {
		return agent.Errorf("Ticket %s not found", id)
	}
	return agent.OK(map[string]any{"success": true, "ticket": t})
}

func (h *helpdeskTools) searchTickets(_ context.Context, params map[string]any) agent.Result {
	results := h.store.Search(
		agent.StringParam(params, "status", ""),
		agent.StringParam(params, "category", ""),
		agent.StringParam(params, "priority", ""),
		agent.StringParam(params, "assignee", ""))
	return agent.OK(map[string]any{
		"success": true,
		"count":   len(results),
		"tickets": results,
	})
}

func (h *helpdeskTools) listAllTickets(_ context.Context, _ map[string]any) agent.Result {
	all := h.store.All()
	return agent.OK(map[string]any{
		"success": true,
		"count":   len(all),
		"tickets": all,
	})
}
