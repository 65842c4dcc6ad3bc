package config

import (
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"ORCHESTRATOR_PORT", "BIGQUERY_AGENT_PORT", "TICKET_AGENT_PORT",
		"MAPS_AGENT_PORT", "HELPDESK_AGENT_PORT", "BIGQUERY_LOCATION",
		"MCP_TICKET_SERVER_URL",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.OrchestratorPort != 8000 || cfg.BigQueryAgentPort != 8001 ||
		cfg.TicketAgentPort != 8002 || cfg.MapsAgentPort != 8003 ||
		cfg.HelpdeskAgentPort != 8004 {
		t.Fatalf("ports = %+v", cfg)
	}
	if cfg.BigQueryLocation != "US" {
		t.Fatalf("location = %q", cfg.BigQueryLocation)
	}
	if cfg.MCPTicketServerURL != "http://localhost:3000" {
		t.Fatalf("mcp url = %q", cfg.MCPTicketServerURL)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("TICKET_AGENT_PORT", "9002")
	t.Setenv("MCP_TICKET_SERVER_URL", "http://tickets:4000")

	cfg := Load()
	if cfg.TicketAgentPort != 9002 {
		t.Fatalf("port = %d", cfg.TicketAgentPort)
	}
	if cfg.MCPTicketServerURL != "http://tickets:4000" {
		t.Fatalf("mcp url = %q", cfg.MCPTicketServerURL)
	}
}

func TestLoadBadPortFallsBack(t *testing.T) {
	t.Setenv("ORCHESTRATOR_PORT", "not-a-number")
	if cfg := Load(); cfg.OrchestratorPort != 8000 {
		t.Fatalf("port = %d", cfg.OrchestratorPort)
	}
}

func TestValidateNamesMissingVariables(t *testing.T) {
	t.Setenv("GOOGLE_CLOUD_PROJECT", "")
	t.Setenv("GOOGLE_API_KEY", "")

	err := Load().Validate()
	if err == nil {
		t.Fatal("want error")
	}
	for _, want := range []string{"GOOGLE_CLOUD_PROJECT", "GOOGLE_API_KEY"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("err = %v, missing %s", err, want)
		}
	}

	t.Setenv("GOOGLE_CLOUD_PROJECT", "proj")
	t.Setenv("GOOGLE_API_KEY", "key")
	if err := Load().Validate(); err != nil {
		t.Fatalf("err = %v", err)
	}
}
