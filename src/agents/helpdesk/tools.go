package helpdesk

import "github.com/citymesh/a2a-agents/src/agent"

var createTicketSpec = agent.ToolSpec{
	Name:        "create_ticket",
	Description: "Create a new support ticket",
	Parameters: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Ticket title/summary",
			},
			"description": map[string]any{
				"type":        "string",
				"description": "Detailed ticket description",
			},
			"category": map[string]any{
				"type":        "string",
				"enum":        []string{"bug", "feature_request", "question", "incident"},
				"description": "Ticket category",
			},
			"priority": map[string]any{
				"type":        "string",
				"enum":        []string{"low", "medium", "high", "critical"},
				"description": "Ticket priority",
			},
			"assignee": map[string]any{
				"type":        "string",
				"description": "Person or team to assign the ticket to",
			},
		},
		"required": []string{"title", "description", "category", "priority"},
	},
}

var updateTicketSpec = agent.ToolSpec{
	Name:        "update_ticket",
	Description: "Update an existing ticket",
	Parameters: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"ticket_id": map[string]any{
				"type":        "string",
				"description": "The ticket ID",
			},
			"status": map[string]any{
				"type":        "string",
				"enum":        []string{"open", "in_progress", "waiting", "resolved", "closed"},
				"description": "New ticket status",
			},
			"note": map[string]any{
				"type":        "string",
				"description": "Update note or comment",
			},
		},
		"required": []string{"ticket_id"},
	},
}

var getTicketSpec = agent.ToolSpec{
	Name:        "get_ticket",
	Description: "Retrieve ticket information by ID",
	Parameters: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"ticket_id": map[string]any{
				"type":        "string",
				"description": "The ticket ID",
			},
		},
		"required": []string{"ticket_id"},
	},
}

var searchTicketsSpec = agent.ToolSpec{
	Name:        "search_tickets",
	Description: "Search tickets by various criteria",
	Parameters: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"status": map[string]any{
				"type":        "string",
				"description": "Filter by status",
			},
			"category": map[string]any{
				"type":        "string",
				"description": "Filter by category",
			},
			"priority": map[string]any{
				"type":        "string",
				"description": "Filter by priority",
			},
			"assignee": map[string]any{
				"type":        "string",
				"description": "Filter by assignee",
			},
		},
	},
}

var listAllTicketsSpec = agent.ToolSpec{
	Name:        "list_all_tickets",
	Description: "List all tickets in the system",
	Parameters: map[string]any{
		"type":       "object",
		"properties": map[string]any{},
	},
}
