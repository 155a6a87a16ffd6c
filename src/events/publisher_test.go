package events

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

type failingPublisher struct{}

func (failingPublisher) Publish(context.Context, Event) error { return errors.New("broker down") }
func (failingPublisher) Close() error                        { return nil }

func TestEventJSON(t *testing.T) {
	e := New(TransactionCreated, 4).WithBudget(2)

	body, err := e.ToJSON()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var m map[string]any
	if err := json.Unmarshal(body, &m); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m["type"] != "transaction.created" || m["entity_id"] != float64(4) || m["budget_id"] != float64(2) {
		t.Fatalf("unexpected body %s", body)
	}
	if _, ok := m["user_id"]; ok {
		t.Fatalf("user_id should be omitted: %s", body)
	}
	if _, ok := m["occurred_at"]; !ok {
		t.Fatalf("occurred_at missing: %s", body)
	}
}

func TestNoopPublisher(t *testing.T) {
	var p Publisher = NoopPublisher{}
	if err := p.Publish(context.Background(), New(BudgetCreated, 1)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestEmitLogsFailures(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	Emit(context.Background(), failingPublisher{}, &log, New(BudgetAchieved, 9).WithUser(1))

	out := buf.String()
	if !strings.Contains(out, "broker down") || !strings.Contains(out, "budget.achieved") {
		t.Fatalf("expected failure to be logged, got %q", out)
	}
}
