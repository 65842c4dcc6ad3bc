// Package config loads settings for the agent system from environment
// variables, with an optional .env file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// ModelName is the default chat model used by every agent.
const ModelName = "gemini-2.0-flash-exp"

// Config holds the settings for the agent system.
type Config struct {
	// Google Cloud settings.
	GoogleCloudProject string
	GoogleAPIKey       string

	// BigQuery settings.
	BigQueryDataset  string
	BigQueryLocation string

	// Agent ports.
	OrchestratorPort  int
	BigQueryAgentPort int
	TicketAgentPort   int
	MapsAgentPort     int
	HelpdeskAgentPort int

	// Maps settings.
	MapsAPIKey string

	// MCP ticket server settings.
	MCPTicketServerURL string
}

// Load reads the .env file if present and then the environment. A missing
// .env file is not an error.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		GoogleCloudProject: os.Getenv("GOOGLE_CLOUD_PROJECT"),
		GoogleAPIKey:       os.Getenv("GOOGLE_API_KEY"),
		BigQueryDataset:    os.Getenv("BIGQUERY_DATASET"),
		BigQueryLocation:   getenv("BIGQUERY_LOCATION", "US"),
		OrchestratorPort:   getenvInt("ORCHESTRATOR_PORT", 8000),
		BigQueryAgentPort:  getenvInt("BIGQUERY_AGENT_PORT", 8001),
		TicketAgentPort:    getenvInt("TICKET_AGENT_PORT", 8002),
		MapsAgentPort:      getenvInt("MAPS_AGENT_PORT", 8003),
		HelpdeskAgentPort:  getenvInt("HELPDESK_AGENT_PORT", 8004),
		MapsAPIKey:         os.Getenv("MAPS_API_KEY"),
		MCPTicketServerURL: getenv("MCP_TICKET_SERVER_URL", "http://localhost:3000"),
	}
}

// Validate reports required settings that are missing. The system still
// starts without them; the agents that need them fail at tool time.
func (c *Config) Validate() error {
	var missing []string
	if c.GoogleCloudProject == "" {
		missing = append(missing, "GOOGLE_CLOUD_PROJECT")
	}
	if c.GoogleAPIKey == "" {
		missing = append(missing, "GOOGLE_API_KEY")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
