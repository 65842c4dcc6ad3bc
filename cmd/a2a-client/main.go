// Command a2a-client is a small terminal client for the agent services.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	agentURL string
	session  string

	titleColor = color.New(color.FgCyan, color.Bold)
	toolColor  = color.New(color.FgGreen)
	errColor   = color.New(color.FgRed)
)

func main() {
	root := &cobra.Command{
		Use:          "a2a-client",
		Short:        "Talk to the city services agents over their A2A HTTP API",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&agentURL, "url", "http://localhost:8000", "base URL of the agent service")
	root.PersistentFlags().StringVar(&session, "session", "", "session id sent with chat messages")

	root.AddCommand(chatCmd(), cardCmd(), toolsCmd(), execCmd(), healthCmd())

	if err := root.Execute(); err != nil {
		errColor.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func chatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat <message>",
		Short: "Send a chat message to the agent",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]any{"message": strings.Join(args, " ")}
			if session != "" {
				payload["context"] = map[string]any{"session_id": session}
			}

			var out struct {
				Response  string `json:"response"`
				AgentName string `json:"agent_name"`
			}
			if err := post("/chat", payload, &out); err != nil {
				return err
			}
			titleColor.Printf("%s:\n", out.AgentName)
			fmt.Println(out.Response)
			return nil
		},
	}
}

func cardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "card",
		Short: "Show the agent's capability card",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var card struct {
				Name         string `json:"name"`
				Description  string `json:"description"`
				Capabilities struct {
					Tools []struct {
						Name        string `json:"name"`
						Description string `json:"description"`
					} `json:"tools"`
				} `json:"capabilities"`
				Metadata map[string]string `json:"metadata"`
			}
			if err := get("/agent-card", &card); err != nil {
				return err
			}
			titleColor.Println(card.Name)
			fmt.Println(card.Description)
			if v := card.Metadata["version"]; v != "" {
				fmt.Println("Version:", v)
			}
			fmt.Printf("Tools: %d\n", len(card.Capabilities.Tools))
			for _, t := range card.Capabilities.Tools {
				toolColor.Printf("  %s", t.Name)
				fmt.Printf(" — %s\n", t.Description)
			}
			return nil
		},
	}
}

func toolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "List the agent's tools",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var out struct {
				Tools []struct {
					Name        string `json:"name"`
					Description string `json:"description"`
				} `json:"tools"`
			}
			if err := get("/tools", &out); err != nil {
				return err
			}
			for _, t := range out.Tools {
				toolColor.Printf("%s", t.Name)
				fmt.Printf(" — %s\n", t.Description)
			}
			return nil
		},
	}
}

func execCmd() *cobra.Command {
	var paramsJSON string
	cmd := &cobra.Command{
		Use:   "exec <tool>",
		Short: "Execute a tool directly, bypassing the model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := map[string]any{}
			if paramsJSON != "" {
				if err := json.Unmarshal([]byte(paramsJSON), &params); err != nil {
					return fmt.Errorf("invalid --params JSON: %w", err)
				}
			}

			var out struct {
				Result json.RawMessage `json:"result"`
			}
			if err := post("/execute-tool", map[string]any{
				"tool_name":  args[0],
				"parameters": params,
			}, &out); err != nil {
				return err
			}

			var pretty bytes.Buffer
			if err := json.Indent(&pretty, out.Result, "", "  "); err != nil {
				fmt.Println(string(out.Result))
				return nil
			}
			fmt.Println(pretty.String())
			return nil
		},
	}
	cmd.Flags().StringVar(&paramsJSON, "params", "", "tool parameters as a JSON object")
	return cmd
}

func healthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the agent is up",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var out struct {
				Status string `json:"status"`
				Agent  string `json:"agent"`
			}
			if err := get("/health", &out); err != nil {
				return err
			}
			fmt.Printf("%s: %s\n", out.Agent, out.Status)
			return nil
		},
	}
}

var httpc = &http.Client{Timeout: 60 * time.Second}

func get(path string, out any) error {
	resp, err := httpc.Get(strings.TrimRight(agentURL, "/") + path)
	if err != nil {
		return fmt.Errorf("cannot connect to agent at %s: %w", agentURL, err)
	}
	return decode(resp, out)
}

func post(path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	resp, err := httpc.Post(strings.TrimRight(agentURL, "/")+path, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("cannot connect to agent at %s: %w", agentURL, err)
	}
	return decode(resp, out)
}

func decode(resp *http.Response, out any) error {
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
