// Command a2a-server runs one agent of the city services system as an A2A
// HTTP service. Each agent runs in its own process:
//
//	a2a-server --agent orchestrator
//	a2a-server --agent ticket --port 9002
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/citymesh/a2a-agents/src/agent"
	"github.com/citymesh/a2a-agents/src/agents/bigquery"
	"github.com/citymesh/a2a-agents/src/agents/helpdesk"
	"github.com/citymesh/a2a-agents/src/agents/maps"
	"github.com/citymesh/a2a-agents/src/agents/orchestrator"
	"github.com/citymesh/a2a-agents/src/agents/ticket"
	"github.com/citymesh/a2a-agents/src/config"
	"github.com/citymesh/a2a-agents/src/httpapi"
	"github.com/citymesh/a2a-agents/src/mcp"
	"github.com/citymesh/a2a-agents/src/models"
)

func main() {
	var (
		agentName = flag.String("agent", "orchestrator", "agent to run: orchestrator, bigquery, ticket, maps, helpdesk")
		port      = flag.Int("port", 0, "port to listen on (overrides config)")
		provider  = flag.String("provider", "gemini", "model provider: gemini, openai, anthropic, ollama, dummy")
		modelName = flag.String("model", config.ModelName, "model name")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Warn("incomplete configuration, some agents may not work", "err", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	model, err := models.NewLLMProvider(ctx, *provider, *modelName)
	if err != nil {
		logger.Error("create model", "err", err)
		os.Exit(1)
	}

	svc, defaultPort, err := buildAgent(*agentName, cfg, model)
	if err != nil {
		logger.Error("create agent", "agent", *agentName, "err", err)
		os.Exit(1)
	}

	listenPort := defaultPort
	if *port != 0 {
		listenPort = *port
	}

	server := httpapi.NewServer(svc, logger)
	logger.Info("starting agent", "agent", svc.Name(), "port", listenPort)
	if err := server.ListenAndServe(ctx, fmt.Sprintf(":%d", listenPort)); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func buildAgent(name string, cfg *config.Config, model models.Model) (agent.Service, int, error) {
	switch name {
	case "orchestrator":
		router, err := orchestrator.New(model, []orchestrator.Descriptor{
			{
				Key:         "bigquery",
				Name:        "BigQuery Agent",
				BaseURL:     fmt.Sprintf("http://localhost:%d", cfg.BigQueryAgentPort),
				Description: "Handles BigQuery data queries and analysis",
			},
			{
				Key:         "ticket",
				Name:        "Ticket Agent",
				BaseURL:     fmt.Sprintf("http://localhost:%d", cfg.TicketAgentPort),
				Description: "Sells event tickets (concerts, shows, venues) with USDC blockchain payments on Base Sepolia",
			},
			{
				Key:         "maps",
				Name:        "Maps Agent",
				BaseURL:     fmt.Sprintf("http://localhost:%d", cfg.MapsAgentPort),
				Description: "Provides geospatial information and maps",
			},
		})
		return router, cfg.OrchestratorPort, err

	case "bigquery":
		a, err := bigquery.New(model, cfg.GoogleCloudProject, cfg.BigQueryLocation)
		return a, cfg.BigQueryAgentPort, err

	case "ticket":
		a, err := ticket.New(model, mcp.NewClient(cfg.MCPTicketServerURL), ticket.NewPendingStore())
		return a, cfg.TicketAgentPort, err

	case "maps":
		a, err := maps.New(model, cfg.MapsAPIKey)
		return a, cfg.MapsAgentPort, err

	case "helpdesk":
		a, err := helpdesk.New(model, helpdesk.NewStore())
		return a, cfg.HelpdeskAgentPort, err

	default:
		return nil, 0, fmt.Errorf("unknown agent %q (want orchestrator, bigquery, ticket, maps, or helpdesk)", name)
	}
}
