package db

import (
	"budget-server/src/models"
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
)

var budgetCols = []string{"id", "user_id", "month", "year", "target_budget", "actual_spent", "achieved", "created_at", "updated_at"}

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet expectations: %v", err)
		}
		mock.Close()
	})
	return mock
}

func TestCreateBudget(t *testing.T) {
	mock := newMock(t)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	target := decimal.RequireFromString("500")

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO budgets")).
		WithArgs(int64(1), "January", 2024, target).
		WillReturnRows(pgxmock.NewRows(budgetCols).
			AddRow(int64(1), int64(1), "January", 2024, target, decimal.Zero, false, now, now))

	b, err := CreateBudget(context.Background(), mock, &models.Budget{UserID: 1, Month: "January", Year: 2024, TargetBudget: target})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.ID != 1 || !b.ActualSpent.IsZero() || b.Achieved {
		t.Fatalf("unexpected budget %+v", b)
	}
}

func TestGetBudgetByIDNotFound(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM budgets WHERE id = $1")).
		WithArgs(int64(99)).
		WillReturnError(pgx.ErrNoRows)

	_, err := GetBudgetByID(context.Background(), mock, 99)
	if !errors.Is(err, pgx.ErrNoRows) {
		t.Fatalf("expected ErrNoRows, got %v", err)
	}
}

func TestGetAllBudgetsForUserEmpty(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM budgets WHERE user_id = $1")).
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows(budgetCols))

	budgets, err := GetAllBudgetsForUser(context.Background(), mock, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if budgets == nil || len(budgets) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", budgets)
	}
}

func TestDeleteBudget(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		wantErr  error
	}{
		{"deleted", 1, nil},
		{"missing", 0, pgx.ErrNoRows},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMock(t)
			mock.ExpectExec(regexp.QuoteMeta("DELETE FROM budgets WHERE id = $1")).
				WithArgs(int64(3)).
				WillReturnResult(pgxmock.NewResult("DELETE", tt.affected))

			err := DeleteBudget(context.Background(), mock, 3)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestMarkBudgetAchieved(t *testing.T) {
	mock := newMock(t)
	now := time.Now().UTC()
	mock.ExpectQuery(regexp.QuoteMeta("SET achieved = TRUE")).
		WithArgs(int64(2)).
		WillReturnRows(pgxmock.NewRows(budgetCols).
			AddRow(int64(2), int64(1), "March", 2024, decimal.NewFromInt(100), decimal.Zero, true, now, now))

	b, err := MarkBudgetAchieved(context.Background(), mock, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !b.Achieved {
		t.Fatal("expected achieved budget")
	}
}

func TestIsBudgetAchieved(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT achieved FROM budgets")).
		WithArgs(int64(2)).
		WillReturnRows(pgxmock.NewRows([]string{"achieved"}).AddRow(true))

	achieved, err := IsBudgetAchieved(context.Background(), mock, 2)
	if err != nil || !achieved {
		t.Fatalf("got %v, %v", achieved, err)
	}
}

func TestGetMonthlySpending(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("COALESCE(SUM(t.amount), 0)")).
		WithArgs(int64(1), "January", 2024).
		WillReturnRows(pgxmock.NewRows([]string{"total"}).AddRow(decimal.RequireFromString("120.5")))

	total, err := GetMonthlySpending(context.Background(), mock, 1, "January", 2024)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !total.Equal(decimal.RequireFromString("120.5")) {
		t.Fatalf("got %s", total)
	}
}
