package orchestrator

import "github.com/citymesh/a2a-agents/src/agent"

var routeToBigQuerySpec = agent.ToolSpec{
	Name:        "route_to_bigquery_agent",
	Description: "Route a request to the BigQuery agent for data queries and analysis",
	Parameters: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"request": map[string]any{
				"type":        "string",
				"description": "The request to send to the BigQuery agent",
			},
		},
		"required": []string{"request"},
	},
}

var routeToTicketSpec = agent.ToolSpec{
	Name:        "route_to_ticket_agent",
	Description: "Route a request to the Ticket agent for event ticket sales (concerts, shows, events, venues). Use this for: listing events, buying tickets, checking ticket availability, USDC payments",
	Parameters: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"request": map[string]any{
				"type":        "string",
				"description": "The request to send to the Ticket agent (e.g., 'list available events', 'buy 2 tickets to concert', 'what shows are available?')",
			},
		},
		"required": []string{"request"},
	},
}

var routeToMapsSpec = agent.ToolSpec{
	Name:        "route_to_maps_agent",
	Description: "Route a request to the Maps agent for geospatial information",
	Parameters: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"request": map[string]any{
				"type":        "string",
				"description": "The request to send to the Maps agent",
			},
		},
		"required": []string{"request"},
	},
}

var listAvailableAgentsSpec = agent.ToolSpec{
	Name:        "list_available_agents",
	Description: "List all available remote agents and their capabilities",
	Parameters: map[string]any{
		"type":       "object",
		"properties": map[string]any{},
	},
}
