// Package orchestrator implements the front-door agent that routes user
// messages to the specialized downstream agents over their /chat endpoints.
package orchestrator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/citymesh/a2a-agents/src/agent"
	"github.com/citymesh/a2a-agents/src/models"
)

const instructions = `You are the main orchestrator agent. Your role is to:
1. Understand user requests and determine which specialized agents to use
2. Coordinate between multiple agents when tasks require multiple capabilities
3. Aggregate and synthesize results from different agents
4. Provide clear, helpful responses to users

Available specialized agents:
- BigQuery Agent: For data queries and analysis
- Ticket Agent: For EVENT TICKET SALES (concerts, shows, events, venues) with USDC blockchain payments
- Maps Agent: For geospatial data and map generation

When a user asks a question:
1. Determine which agent(s) can help
2. Formulate clear requests to those agents
3. Combine their responses into a coherent answer
4. Ask for clarification if the request is ambiguous

IMPORTANT:
- Questions about "tickets for sale", "events", "concerts", "shows", "venues" → Route to Ticket Agent
- The Ticket Agent handles blockchain payments in USDC on Base Sepolia
- The Ticket Agent can list events, sell tickets, check payments, and manage wallet balance

Always provide helpful, accurate information and guide users to the appropriate resources.`

const forwardTimeout = 30 * time.Second

// Descriptor identifies a downstream agent reachable over HTTP.
type Descriptor struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	BaseURL     string `json:"url"`
	Description string `json:"description"`
}

// Keyword tables checked in order; the ticket set wins ties with the others
// so that "buy tickets using my wallet address" never lands on the maps
// agent via "address".
var (
	ticketKeywords = []string{
		"ticket", "event", "concert", "show", "venue", "buy", "purchase",
		"available", "festival", "performance", "payment", "pay", "send",
		"usdc", "balance", "wallet", "complete", "transaction", "address", "fund",
	}
	bigqueryKeywords = []string{
		"query", "data", "bigquery", "sql", "database", "table", "analyze",
	}
	mapsKeywords = []string{
		"map", "location", "directions", "geocode", "address", "navigation", "route",
	}
)

// Router wraps the base agent with keyword dispatch: messages matching a
// downstream agent's vocabulary are forwarded to that agent's /chat endpoint
// instead of going through the local model.
type Router struct {
	*agent.Agent

	agents map[string]Descriptor
	order  []string
	httpc  *http.Client
}

// New builds the orchestrator around the given downstream agent descriptors.
// Descriptors are routed in the order given.
func New(model models.Model, agents []Descriptor) (*Router, error) {
	r := &Router{
		agents: make(map[string]Descriptor, len(agents)),
		httpc:  &http.Client{Timeout: forwardTimeout},
	}
	for _, d := range agents {
		r.agents[d.Key] = d
		r.order = append(r.order, d.Key)
	}

	catalog := agent.NewCatalog()
	for _, reg := range []struct {
		spec    agent.ToolSpec
		handler agent.Handler
	}{
		{routeToBigQuerySpec, r.routeTool("bigquery")},
		{routeToTicketSpec, r.routeTool("ticket")},
		{routeToMapsSpec, r.routeTool("maps")},
		{listAvailableAgentsSpec, r.listAvailableAgents},
	} {
		if err := catalog.Register(reg.spec, reg.handler); err != nil {
			return nil, err
		}
	}

	base, err := agent.New(agent.Options{
		Name:         "Orchestrator Agent",
		Description:  "High-level agent that coordinates BigQuery, Ticket, and Maps agents",
		Instructions: instructions,
		AgentType:    "OrchestratorAgent",
		Model:        model,
		Catalog:      catalog,
	})
	if err != nil {
		return nil, err
	}
	r.Agent = base
	return r, nil
}

// Chat routes by keyword before falling back to a capability listing.
// Routing is ordered: ticket vocabulary is checked first, then data, then
// maps, so overlapping words resolve to the purchase flow.
func (r *Router) Chat(ctx context.Context, message string, _ map[string]any) (string, error) {
	lower := strings.ToLower(message)

	for _, route := range []struct {
		key      string
		keywords []string
	}{
		{"ticket", ticketKeywords},
		{"bigquery", bigqueryKeywords},
		{"maps", mapsKeywords},
	} {
		if _, ok := r.agents[route.key]; !ok {
			continue
		}
		if !containsAny(lower, route.keywords) {
			continue
		}
		result := r.forward(ctx, route.key, message)
		if !result.Success {
			return "Error: " + result.Err, nil
		}
		if s, ok := result.Payload.(string); ok {
			return s, nil
		}
		return fmt.Sprint(result.Payload), nil
	}

	return r.capabilityListing(), nil
}

func containsAny(message string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(message, kw) {
			return true
		}
	}
	return false
}

// forward posts the message to the downstream agent's /chat endpoint and
// extracts its response text.
func (r *Router) forward(ctx context.Context, key, message string) agent.Result {
	info, ok := r.agents[key]
	if !ok {
		return agent.Errorf("Unknown agent: %s", key)
	}

	body, err := json.Marshal(map[string]any{"message": message})
	if err != nil {
		return agent.Errorf("Error routing to %s: %v", info.Name, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, info.BaseURL+"/chat", bytes.NewReader(body))
	if err != nil {
		return agent.Errorf("Error routing to %s: %v", info.Name, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.httpc.Do(req)
	if err != nil {
		return agent.Errorf("Cannot connect to %s at %s. Make sure it's running.", info.Name, info.BaseURL)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return agent.Errorf("Error routing to %s: HTTP %d", info.Name, resp.StatusCode)
	}

	var decoded map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return agent.Errorf("Error routing to %s: %v", info.Name, err)
	}

	response, ok := decoded["response"].(string)
	if !ok || response == "" {
		response = "No response from " + info.Name
	}
	return agent.OK(response)
}

func (r *Router) routeTool(key string) agent.Handler {
	return func(ctx context.Context, params map[string]any) agent.Result {
		request := agent.StringParam(params, "request", "")
		if request == "" {
			return agent.Errorf("missing required parameter: request")
		}
		result := r.forward(ctx, key, request)
		if !result.Success {
			return result
		}
		info := r.agents[key]
		return agent.OK(map[string]any{
			"success":  true,
			"agent":    info.Name,
			"response": result.Payload,
		})
	}
}

func (r *Router) listAvailableAgents(_ context.Context, _ map[string]any) agent.Result {
	listed := make([]any, 0, len(r.order))
	for _, key := range r.order {
		info := r.agents[key]
		listed = append(listed, map[string]any{
			"key":         info.Key,
			"name":        info.Name,
			"url":         info.BaseURL,
			"description": info.Description,
		})
	}
	return agent.OK(map[string]any{"success": true, "agents": listed})
}

func (r *Router) capabilityListing() string {
	lines := make([]string, 0, len(r.order))
	for _, key := range r.order {
		info := r.agents[key]
		lines = append(lines, fmt.Sprintf("• %s: %s", info.Name, info.Description))
	}
	return fmt.Sprintf("I can help you with %d specialized agents:\n\n%s\n\nWhat would you like to do?",
		len(r.order), strings.Join(lines, "\n"))
}
