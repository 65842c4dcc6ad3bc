package agent

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// maxEventCards caps the event listing so a large catalog cannot flood the
// reply.
const maxEventCards = 10

// FormatResult renders a tool Result as user-facing text.
//
//   - failures become "Error: <reason>"
//   - string payloads are returned verbatim (tools may pre-format messages)
//   - payloads carrying an "events" list render as cards, capped at 10
//   - anything else is pretty-printed JSON
func FormatResult(res Result) string {
	if !res.Success {
		if res.Err == "" {
			return "Error: Unknown error"
		}
		return "Error: " + res.Err
	}

	switch payload := res.Payload.(type) {
	case nil:
		return ""
	case string:
		return payload
	case map[string]any:
		if events, ok := payload["events"].([]any); ok {
			return formatEvents(events)
		}
	}

	dump, err := json.MarshalIndent(res.Payload, "", "  ")
	if err != nil {
		return fmt.Sprint(res.Payload)
	}
	return string(dump)
}

func formatEvents(events []any) string {
	if len(events) > maxEventCards {
		events = events[:maxEventCards]
	}

	cards := make([]string, 0, len(events))
	for _, e := range events {
		event, ok := e.(map[string]any)
		if !ok {
			continue
		}
		card := fmt.Sprintf(
			"🎫 **%s**\n📅 %s at %s\n📍 %s\n💵 $%s USDC\n🎟️ %s tickets available\nℹ️ %s",
			field(event, "name"),
			field(event, "date"),
			field(event, "time"),
			field(event, "venue"),
			field(event, "priceUSD"),
			field(event, "availableTickets"),
			field(event, "description"),
		)
		cards = append(cards, card)
	}

	return "Here are the available events:\n\n" + strings.Join(cards, "\n\n")
}

// field renders a JSON value for card display. Numbers drop the float64
// artifacts JSON decoding introduces (50 rather than 50.000000).
func field(m map[string]any, key string) string {
	switch v := m[key].(type) {
	case nil:
		return "N/A"
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
