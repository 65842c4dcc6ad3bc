package ticket

import "github.com/citymesh/a2a-agents/src/agent"

var listEventsSpec = agent.ToolSpec{
	Name:        "list_events",
	Description: "Use this tool ONLY when user wants to BROWSE or SEE what events are available. Do NOT use this if they want to BUY/PURCHASE tickets (use purchase_tickets instead).",
	Parameters: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"category": map[string]any{
				"type":        "string",
				"enum":        []string{"concert", "sports", "theater", "festival", "conference", "other"},
				"description": "Filter by event category",
			},
			"city": map[string]any{
				"type":        "string",
				"description": "Filter by city name",
			},
		},
	},
}

var getEventDetailsSpec = agent.ToolSpec{
	Name:        "get_event_details",
	Description: "Get detailed information about a specific event",
	Parameters: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"event_id": map[string]any{
				"type":        "string",
				"description": "The event ID",
			},
		},
		"required": []string{"event_id"},
	},
}

var listVenuesSpec = agent.ToolSpec{
	Name:        "list_venues",
	Description: "List all venues in the city",
	Parameters: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"city": map[string]any{
				"type":        "string",
				"description": "Filter by city name",
			},
		},
	},
}

var purchaseTicketsSpec = agent.ToolSpec{
	Name:        "purchase_tickets",
	Description: "Use this tool when user wants to BUY, PURCHASE, or GET tickets for an event. Accepts event name (e.g. 'Broadway Musical Night', 'Tech Conference 2025') or event ID (e.g. 'event-1'). Returns USDC payment instructions on Base Sepolia blockchain.",
	Parameters: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"event_id": map[string]any{
				"type":        "string",
				"description": "The event ID or event name (e.g., 'event-2' or 'Tech Conference 2025')",
			},
			"quantity": map[string]any{
				"type":        "integer",
				"description": "Number of tickets (1-10)",
				"minimum":     1,
				"maximum":     10,
				"default":     1,
			},
			"customer_email": map[string]any{
				"type":        "string",
				"description": "Customer email address",
				"default":     "customer@example.com",
			},
			"customer_name": map[string]any{
				"type":        "string",
				"description": "Customer name",
				"default":     "Customer",
			},
		},
		"required": []string{"event_id"},
	},
}

var checkPaymentStatusSpec = agent.ToolSpec{
	Name:        "check_payment_status",
	Description: "Check the status of a payment",
	Parameters: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"payment_intent_id": map[string]any{
				"type":        "string",
				"description": "The payment intent ID",
			},
		},
		"required": []string{"payment_intent_id"},
	},
}

var getMyTicketsSpec = agent.ToolSpec{
	Name:        "get_my_tickets",
	Description: "Get purchased tickets",
	Parameters: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"status": map[string]any{
				"type":        "string",
				"enum":        []string{"pending_payment", "paid", "cancelled", "used"},
				"description": "Filter by ticket status",
			},
		},
	},
}

var sendPaymentSpec = agent.ToolSpec{
	Name:        "send_payment",
	Description: "Use this to COMPLETE PAYMENT for a ticket purchase. If user just purchased a ticket and says 'send payment' or 'complete payment', this will AUTOMATICALLY find and pay the most recent pending ticket. You can also send USDC to a specific address by providing to_address and amount_usd.",
	Parameters: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"to_address": map[string]any{
				"type":        "string",
				"description": "OPTIONAL: Payment address. If not provided, will auto-fetch from most recent ticket purchase.",
			},
			"amount_usd": map[string]any{
				"type":        "string",
				"description": "OPTIONAL: Amount in USD. If not provided, will auto-fetch from most recent ticket purchase.",
			},
			"memo": map[string]any{
				"type":        "string",
				"description": "Optional memo/note for the payment",
			},
		},
		"required": []string{},
	},
}

var getWalletBalanceSpec = agent.ToolSpec{
	Name:        "get_wallet_balance",
	Description: "Check the agent's wallet balance on Base Sepolia",
	Parameters: map[string]any{
		"type":       "object",
		"properties": map[string]any{},
	},
}

var getWalletAddressSpec = agent.ToolSpec{
	Name:        "get_wallet_address",
	Description: "Get the agent's wallet address for funding. Use this when user asks 'what's your address', 'where do I send funds', or 'what's your wallet'.",
	Parameters: map[string]any{
		"type":       "object",
		"properties": map[string]any{},
	},
}
