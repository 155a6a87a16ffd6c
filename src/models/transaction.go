package models

import "github.com/shopspring/decimal"

type Transaction struct {
	ID          int64           `json:"id"`
	BudgetID    int64           `json:"budget_id"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Date        Date            `json:"date"`
}
