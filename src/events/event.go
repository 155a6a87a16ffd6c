// Package events publishes domain events after successful writes.
package events

import (
	"encoding/json"
	"time"
)

const (
	BudgetCreated       = "budget.created"
	BudgetAchieved      = "budget.achieved"
	TransactionCreated  = "transaction.created"
	TransactionDeleted  = "transaction.deleted"
	NotificationCreated = "notification.created"
)

// Event is the message body. Type doubles as the routing key.
type Event struct {
	Type       string    `json:"type"`
	EntityID   int64     `json:"entity_id"`
	UserID     int64     `json:"user_id,omitempty"`
	BudgetID   int64     `json:"budget_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

func New(eventType string, entityID int64) Event {
	return Event{
		Type:       eventType,
		EntityID:   entityID,
		OccurredAt: time.Now().UTC(),
	}
}

func (e Event) WithUser(userID int64) Event {
	e.UserID = userID
	return e
}

func (e Event) WithBudget(budgetID int64) Event {
	e.BudgetID = budgetID
	return e
}

func (e Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}
