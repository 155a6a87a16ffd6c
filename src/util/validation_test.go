package util

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

type budgetPayload struct {
	UserID       int64            `json:"user_id" validate:"required,gt=0"`
	Month        string           `json:"month" validate:"required,max=20"`
	TargetBudget *decimal.Decimal `json:"target_budget" validate:"required,gte=0"`
}

func TestValidate(t *testing.T) {
	neg := decimal.NewFromInt(-5)
	ok := decimal.RequireFromString("500")

	tests := []struct {
		name       string
		payload    budgetPayload
		wantFields []string
	}{
		{
			name:    "valid",
			payload: budgetPayload{UserID: 1, Month: "Jan", TargetBudget: &ok},
		},
		{
			name:       "missing everything",
			payload:    budgetPayload{},
			wantFields: []string{"user_id", "month", "target_budget"},
		},
		{
			name:       "negative decimal",
			payload:    budgetPayload{UserID: 1, Month: "Jan", TargetBudget: &neg},
			wantFields: []string{"target_budget"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(&tt.payload)
			if len(tt.wantFields) == 0 {
				if err != nil {
					t.Fatalf("unexpected error: %v %+v", err, err.Errors)
				}
				return
			}
			if err == nil {
				t.Fatal("expected validation error")
			}
			if err.Status != http.StatusUnprocessableEntity {
				t.Errorf("status = %d", err.Status)
			}
			got := map[string]bool{}
			for _, fe := range err.Errors {
				got[fe.Field] = true
			}
			for _, f := range tt.wantFields {
				if !got[f] {
					t.Errorf("missing field error for %q in %+v", f, err.Errors)
				}
			}
		})
	}
}

func TestDecodeAndValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "valid", body: `{"user_id":1,"month":"Jan","target_budget":500}`},
		{name: "empty body", body: ``, wantErr: true},
		{name: "malformed", body: `{"user_id":`, wantErr: true},
		{name: "wrong type", body: `{"user_id":"one","month":"Jan","target_budget":1}`, wantErr: true},
		{name: "missing field", body: `{"user_id":1,"month":"Jan"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/budgets/", strings.NewReader(tt.body))
			var p budgetPayload
			err := DecodeAndValidate(req, &p)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && err.Status != http.StatusUnprocessableEntity {
				t.Errorf("status = %d", err.Status)
			}
		})
	}
}
