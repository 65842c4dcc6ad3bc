package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/citymesh/a2a-agents/src/models"
)

// Service is the surface the HTTP layer serves: discovery, direct tool
// execution, and chat. *Agent implements it; the orchestrator wraps an Agent
// and overrides Chat with routing.
type Service interface {
	Name() string
	Description() string
	Specs() []ToolSpec
	ExecuteTool(ctx context.Context, name string, params map[string]any) Result
	Card() Card
	Chat(ctx context.Context, message string, context map[string]any) (string, error)
}

// Card is the A2A capability card advertised on the discovery endpoint.
type Card struct {
	Name         string            `json:"name"`
	Description  string            `json:"description"`
	Capabilities Capabilities      `json:"capabilities"`
	Metadata     map[string]string `json:"metadata"`
}

// Capabilities lists what the agent can do; today that is its tool catalog.
type Capabilities struct {
	Tools []ToolSpec `json:"tools"`
}

// Agent runs one request/response cycle: build an augmented prompt from the
// tool catalog and instructions, invoke the model once, parse for a tool
// call, execute it, and format the reply. Instances hold no per-request
// state.
type Agent struct {
	name         string
	description  string
	instructions string
	agentType    string
	model        models.Model
	catalog      *Catalog
}

// Options configure a new Agent.
type Options struct {
	Name         string
	Description  string
	Instructions string
	AgentType    string
	Model        models.Model
	Catalog      *Catalog
}

// New creates an Agent with the provided options.
func New(opts Options) (*Agent, error) {
	if opts.Model == nil {
		return nil, errors.New("agent requires a language model")
	}
	if strings.TrimSpace(opts.Name) == "" {
		return nil, errors.New("agent requires a name")
	}
	catalog := opts.Catalog
	if catalog == nil {
		catalog = NewCatalog()
	}
	agentType := opts.AgentType
	if agentType == "" {
		agentType = "Agent"
	}
	return &Agent{
		name:         opts.Name,
		description:  opts.Description,
		instructions: opts.Instructions,
		agentType:    agentType,
		model:        opts.Model,
		catalog:      catalog,
	}, nil
}

func (a *Agent) Name() string        { return a.name }
func (a *Agent) Description() string { return a.description }

// Specs returns the tool catalog in declaration order.
func (a *Agent) Specs() []ToolSpec { return a.catalog.Specs() }

// ExecuteTool dispatches a direct tool call, bypassing the model.
func (a *Agent) ExecuteTool(ctx context.Context, name string, params map[string]any) Result {
	return a.catalog.Execute(ctx, name, params)
}

// Card returns the A2A capability card.
func (a *Agent) Card() Card {
	return Card{
		Name:        a.name,
		Description: a.description,
		Capabilities: Capabilities{
			Tools: a.Specs(),
		},
		Metadata: map[string]string{
			"version":    "1.0.0",
			"agent_type": a.agentType,
		},
	}
}

// Chat processes one user message. Every fault inside the cycle is converted
// to a textual "Error processing request" reply; the returned error is
// reserved for transport-level failures below this layer and is always nil
// here.
func (a *Agent) Chat(ctx context.Context, message string, _ map[string]any) (reply string, err error) {
	defer func() {
		if r := recover(); r != nil {
			reply, err = fmt.Sprintf("Error processing request: %v", r), nil
		}
	}()

	// Without tools this is plain single-turn generation.
	if a.catalog.Len() == 0 {
		text, err := a.model.Generate(ctx, a.instructions+"\n\nUser: "+message)
		if err != nil {
			return fmt.Sprintf("Error processing request: %v", err), nil
		}
		return text, nil
	}

	text, err := a.model.Generate(ctx, a.buildPrompt(message))
	if err != nil {
		return fmt.Sprintf("Error processing request: %v", err), nil
	}

	inv, outcome := Parse(text)
	if outcome == NoCall {
		return text, nil
	}
	return FormatResult(a.catalog.Execute(ctx, inv.Tool, inv.Params)), nil
}

// buildPrompt embeds the instructions, the rendered tool catalog, the intent
// disambiguation examples, and the marker convention around the user
// message.
func (a *Agent) buildPrompt(message string) string {
	var sb strings.Builder
	sb.Grow(4096)

	sb.WriteString(a.instructions)
	sb.WriteString("\n\nAvailable tools:\n")
	for _, spec := range a.catalog.Specs() {
		fmt.Fprintf(&sb, "- %s: %s\n", spec.Name, spec.Description)
	}

	sb.WriteString(`
IMPORTANT INSTRUCTIONS:
- Analyze the user's request carefully to determine their intent
- If they want to BUY, PURCHASE, or GET tickets → use 'purchase_tickets' tool
- If they want to LIST, SHOW, or SEE available events → use 'list_events' tool
- If they ask about a SPECIFIC event → use 'get_event_details' tool
- If they want to PAY, SEND PAYMENT, or COMPLETE PAYMENT → use 'send_payment' tool
- ALWAYS extract parameter values from the user's message text
- For event names: extract the exact name from phrases like "ticket for X", "buy X", "purchase X tickets"
- Example: "Buy a ticket for Broadway Musical Night" → {"event_id": "Broadway Musical Night", "quantity": 1}
- Example: "Buy ticket and pay for it" → First use purchase_tickets, then note to use send_payment
- Example: "Send $1 to 0x123..." → {"to_address": "0x123...", "amount_usd": "1"}
- Example: "Show me events" → {}
- DO NOT leave parameters empty or null - extract them from the user's message!

MULTI-STEP REQUESTS:
- If user asks to "buy and pay" or "purchase and complete payment":
  1. You can only call ONE tool at a time
  2. Start with purchase_tickets
  3. Tell the user you'll complete the payment in a follow-up
- If user says "send payment" after purchasing, use the payment details from their previous context

When you need to use a tool, respond with EXACTLY this format:
USE_TOOL: tool_name
PARAMETERS: {"param1": "value1", "param2": "value2"}

User message: `)
	sb.WriteString(message)

	return sb.String()
}
