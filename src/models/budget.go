package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Budget struct {
	ID           int64           `json:"id"`
	UserID       int64           `json:"user_id"`
	Month        string          `json:"month"`
	Year         int             `json:"year"`
	TargetBudget decimal.Decimal `json:"target_budget"`
	ActualSpent  decimal.Decimal `json:"actual_spent"`
	Achieved     bool            `json:"achieved"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// SpendingSummary is the total of all transactions booked against a user's
// budgets for one month/year period.
type SpendingSummary struct {
	TotalSpent decimal.Decimal `json:"total_spent"`
}
