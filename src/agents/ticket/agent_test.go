package ticket

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/citymesh/a2a-agents/src/agent"
	"github.com/citymesh/a2a-agents/src/mcp"
	"github.com/citymesh/a2a-agents/src/models"
)

// mcpStub is an in-process companion service for tests. Handlers are keyed
// by tool name; unset tools return success with an empty body.
type mcpStub struct {
	t        *testing.T
	handlers map[string]func(params map[string]any) (int, map[string]any)
	calls    []string
}

func newMCPStub(t *testing.T) (*mcpStub, *httptest.Server) {
	s := &mcpStub{t: t, handlers: map[string]func(map[string]any) (int, map[string]any){}}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(r.URL.Path, "/mcp/tool/")
		s.calls = append(s.calls, name)

		var params map[string]any
		if r.Method == http.MethodPost {
			json.NewDecoder(r.Body).Decode(&params)
		}

		h, ok := s.handlers[name]
		if !ok {
			json.NewEncoder(w).Encode(map[string]any{"success": true})
			return
		}
		status, body := h(params)
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(srv.Close)
	return s, srv
}

func (s *mcpStub) on(tool string, h func(params map[string]any) (int, map[string]any)) {
	s.handlers[tool] = h
}

func eventCatalog() map[string]any {
	return map[string]any{
		"success": true,
		"events": []any{
			map[string]any{"id": "event-1", "name": "Broadway Musical Night"},
			map[string]any{"id": "event-2", "name": "Tech Conference 2025"},
			map[string]any{"id": "event-3", "name": "Jazz Festival"},
		},
	}
}

func newTestTicketAgent(t *testing.T, url string) (*agent.Agent, *PendingStore) {
	t.Helper()
	store := NewPendingStore()
	a, err := New(&models.DummyLLM{}, mcp.NewClient(url), store)
	if err != nil {
		t.Fatal(err)
	}
	return a, store
}

func TestSimilarity(t *testing.T) {
	if got := similarity("abc", "abc"); got != 1 {
		t.Fatalf("identical strings = %v", got)
	}
	if got := similarity("", "x"); got != 0 {
		t.Fatalf("empty string = %v", got)
	}
	if got := similarity("abcd", "abxd"); got != 0.75 {
		t.Fatalf("one mismatch = %v", got)
	}
}

func TestResolveEventSubstringBeatsSimilarity(t *testing.T) {
	stub, srv := newMCPStub(t)
	stub.on("list_events", func(map[string]any) (int, map[string]any) {
		return http.StatusOK, eventCatalog()
	})
	tools := &ticketTools{mcp: mcp.NewClient(srv.URL), pending: NewPendingStore()}

	id, _, ok := tools.resolveEvent(context.Background(), "jazz")
	if !ok || id != "event-3" {
		t.Fatalf("resolved %q ok=%v, want event-3", id, ok)
	}

	// Reference containing the full event name also matches.
	id, _, ok = tools.resolveEvent(context.Background(), "tickets to tech conference 2025 please")
	if !ok || id != "event-2" {
		t.Fatalf("resolved %q ok=%v, want event-2", id, ok)
	}
}

func TestResolveEventSimilarityAbsorbsTypos(t *testing.T) {
	stub, srv := newMCPStub(t)
	stub.on("list_events", func(map[string]any) (int, map[string]any) {
		return http.StatusOK, eventCatalog()
	})
	tools := &ticketTools{mcp: mcp.NewClient(srv.URL), pending: NewPendingStore()}

	id, _, ok := tools.resolveEvent(context.Background(), "Broadway Musical Nite!")
	if !ok || id != "event-1" {
		t.Fatalf("resolved %q ok=%v, want event-1", id, ok)
	}
}

func TestResolveEventMissListsCandidates(t *testing.T) {
	stub, srv := newMCPStub(t)
	stub.on("list_events", func(map[string]any) (int, map[string]any) {
		return http.StatusOK, eventCatalog()
	})
	tools := &ticketTools{mcp: mcp.NewClient(srv.URL), pending: NewPendingStore()}

	_, candidates, ok := tools.resolveEvent(context.Background(), "zzzzzzzzzz")
	if ok {
		t.Fatal("want miss")
	}
	if len(candidates) != 3 || candidates[0] != "Broadway Musical Night" {
		t.Fatalf("candidates = %v", candidates)
	}
}

func TestPurchaseUnknownEventReportsCandidates(t *testing.T) {
	stub, srv := newMCPStub(t)
	stub.on("list_events", func(map[string]any) (int, map[string]any) {
		return http.StatusOK, eventCatalog()
	})
	a, _ := newTestTicketAgent(t, srv.URL)

	res := a.ExecuteTool(context.Background(), "purchase_tickets", map[string]any{"event_id": "Opera Gala"})
	if res.Success {
		t.Fatal("want failure")
	}
	if !strings.Contains(res.Err, "Event 'Opera Gala' not found") ||
		!strings.Contains(res.Err, "Jazz Festival") {
		t.Fatalf("err = %q", res.Err)
	}
}

func TestPurchaseRecordsPendingPaymentAndRendersInstructions(t *testing.T) {
	stub, srv := newMCPStub(t)
	stub.on("list_events", func(map[string]any) (int, map[string]any) {
		return http.StatusOK, eventCatalog()
	})
	stub.on("purchase_tickets", func(params map[string]any) (int, map[string]any) {
		if params["eventId"] != "event-1" {
			t.Errorf("eventId = %v", params["eventId"])
		}
		if params["quantity"] != float64(10) {
			t.Errorf("quantity = %v, want clamped to 10", params["quantity"])
		}
		if params["customerEmail"] != "customer@example.com" {
			t.Errorf("customerEmail = %v", params["customerEmail"])
		}
		return http.StatusPaymentRequired, map[string]any{
			"requiresPayment": true,
			"paymentIntent": map[string]any{
				"id":        "pi_42",
				"amount":    99.5,
				"expiresAt": "2025-06-01T12:00:00Z",
				"blockchain": map[string]any{
					"paymentAddress": "0xabc",
					"network":        "Base Sepolia",
					"chainId":        float64(84532),
				},
			},
		}
	})
	a, store := newTestTicketAgent(t, srv.URL)

	ctx := agent.WithSession(context.Background(), "s1")
	res := a.ExecuteTool(ctx, "purchase_tickets", map[string]any{
		"event_id": "Broadway Musical Night",
		"quantity": float64(25),
	})
	if !res.Success {
		t.Fatalf("err = %q", res.Err)
	}

	text, _ := res.Payload.(string)
	for _, want := range []string{"$99.50 USDC", "0xabc", "pi_42", "Chain ID: 84532"} {
		if !strings.Contains(text, want) {
			t.Fatalf("instructions missing %q:\n%s", want, text)
		}
	}

	p, ok := store.Get("s1")
	if !ok {
		t.Fatal("pending payment not recorded")
	}
	if p.Address != "0xabc" || p.Amount != "99.50" || p.IntentID != "pi_42" {
		t.Fatalf("pending = %+v", p)
	}
}

func TestSendPaymentAutoFillsFromPendingStore(t *testing.T) {
	stub, srv := newMCPStub(t)
	var paid map[string]any
	stub.on("send_payment", func(params map[string]any) (int, map[string]any) {
		paid = params
		return http.StatusOK, map[string]any{
			"success":         true,
			"transactionHash": "0xdeadbeef",
			"explorerUrl":     "https://sepolia.basescan.org/tx/0xdeadbeef",
		}
	})
	a, store := newTestTicketAgent(t, srv.URL)

	ctx := agent.WithSession(context.Background(), "s1")
	store.Set("s1", PendingPayment{Address: "0xabc", Amount: "99.50", IntentID: "pi_42"})

	res := a.ExecuteTool(ctx, "send_payment", map[string]any{})
	if !res.Success {
		t.Fatalf("err = %q", res.Err)
	}
	if paid["toAddress"] != "0xabc" || paid["amountUSD"] != "99.50" {
		t.Fatalf("payment params = %v", paid)
	}
	text, _ := res.Payload.(string)
	if !strings.Contains(text, "0xdeadbeef") {
		t.Fatalf("confirmation missing tx hash:\n%s", text)
	}

	// The slot is consumed: a second attempt finds nothing pending.
	if _, ok := store.Get("s1"); ok {
		t.Fatal("pending slot not cleared after payment")
	}
	res = a.ExecuteTool(ctx, "send_payment", map[string]any{})
	if !res.Success {
		t.Fatalf("err = %q", res.Err)
	}
	text, _ = res.Payload.(string)
	if !strings.Contains(text, "No Pending Payments Found") {
		t.Fatalf("got %q", text)
	}
}

func TestSendPaymentFallsBackToCompanionService(t *testing.T) {
	stub, srv := newMCPStub(t)
	stub.on("get_pending_payment", func(map[string]any) (int, map[string]any) {
		return http.StatusOK, map[string]any{
			"success": true,
			"paymentIntent": map[string]any{
				"amount": 12.0,
				"blockchain": map[string]any{
					"paymentAddress": "0xfeed",
				},
			},
		}
	})
	var paid map[string]any
	stub.on("send_payment", func(params map[string]any) (int, map[string]any) {
		paid = params
		return http.StatusOK, map[string]any{"success": true, "transactionHash": "0x1"}
	})
	a, _ := newTestTicketAgent(t, srv.URL)

	res := a.ExecuteTool(context.Background(), "send_payment", map[string]any{})
	if !res.Success {
		t.Fatalf("err = %q", res.Err)
	}
	if paid["toAddress"] != "0xfeed" || paid["amountUSD"] != "12.00" {
		t.Fatalf("payment params = %v", paid)
	}
}

func TestSendPaymentFailureSurfacesReason(t *testing.T) {
	stub, srv := newMCPStub(t)
	stub.on("send_payment", func(map[string]any) (int, map[string]any) {
		return http.StatusOK, map[string]any{"success": false, "error": "insufficient USDC balance"}
	})
	a, store := newTestTicketAgent(t, srv.URL)
	store.Set(agent.DefaultSession, PendingPayment{Address: "0xabc", Amount: "5.00"})

	res := a.ExecuteTool(context.Background(), "send_payment", map[string]any{})
	if res.Success {
		t.Fatal("want failure")
	}
	if res.Err != "Payment failed: insufficient USDC balance" {
		t.Fatalf("err = %q", res.Err)
	}
	if _, ok := store.Get(agent.DefaultSession); !ok {
		t.Fatal("pending slot should survive a failed payment")
	}
}

func TestSessionsKeepSeparatePendingSlots(t *testing.T) {
	store := NewPendingStore()
	store.Set("alice", PendingPayment{Address: "0xa", Amount: "1.00"})
	store.Set("bob", PendingPayment{Address: "0xb", Amount: "2.00"})

	a, _ := store.Get("alice")
	b, _ := store.Get("bob")
	if a.Address != "0xa" || b.Address != "0xb" {
		t.Fatalf("slots crossed: %+v %+v", a, b)
	}

	store.Clear("alice")
	if _, ok := store.Get("alice"); ok {
		t.Fatal("alice slot not cleared")
	}
	if _, ok := store.Get("bob"); !ok {
		t.Fatal("bob slot lost")
	}
}

func TestGetEventDetailsResolvesNames(t *testing.T) {
	stub, srv := newMCPStub(t)
	stub.on("list_events", func(map[string]any) (int, map[string]any) {
		return http.StatusOK, eventCatalog()
	})
	var got map[string]any
	stub.on("get_event", func(params map[string]any) (int, map[string]any) {
		got = params
		return http.StatusOK, map[string]any{"success": true, "result": map[string]any{"id": "event-3"}}
	})
	a, _ := newTestTicketAgent(t, srv.URL)

	res := a.ExecuteTool(context.Background(), "get_event_details", map[string]any{"event_id": "Jazz Festival"})
	if !res.Success {
		t.Fatalf("err = %q", res.Err)
	}
	if got["eventId"] != "event-3" {
		t.Fatalf("eventId = %v", got["eventId"])
	}
}

func TestWalletBalanceFormatsSummary(t *testing.T) {
	stub, srv := newMCPStub(t)
	stub.on("get_balance", func(map[string]any) (int, map[string]any) {
		return http.StatusOK, map[string]any{
			"success":     true,
			"address":     "0xwallet",
			"balanceUSDC": "42.00",
			"balanceETH":  "0.05",
			"network":     "Base Sepolia",
			"chainId":     float64(84532),
		}
	})
	a, _ := newTestTicketAgent(t, srv.URL)

	res := a.ExecuteTool(context.Background(), "get_wallet_balance", nil)
	if !res.Success {
		t.Fatalf("err = %q", res.Err)
	}
	text, _ := res.Payload.(string)
	for _, want := range []string{"0xwallet", "$42.00", "0.05 ETH"} {
		if !strings.Contains(text, want) {
			t.Fatalf("summary missing %q:\n%s", want, text)
		}
	}
}

func TestMCPFailureBecomesResultError(t *testing.T) {
	stub, srv := newMCPStub(t)
	stub.on("list_events", func(map[string]any) (int, map[string]any) {
		return http.StatusOK, map[string]any{"success": false, "error": "inventory offline"}
	})
	a, _ := newTestTicketAgent(t, srv.URL)

	res := a.ExecuteTool(context.Background(), "list_events", nil)
	if res.Success {
		t.Fatal("want failure")
	}
	if res.Err != "inventory offline" {
		t.Fatalf("err = %q", res.Err)
	}
}
