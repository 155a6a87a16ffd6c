package db

import (
	"budget-server/src/models"
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const budgetColumns = `id, user_id, month, year, target_budget, actual_spent, achieved, created_at, updated_at`

func scanBudget(row pgx.Row) (*models.Budget, error) {
	var b models.Budget
	err := row.Scan(&b.ID, &b.UserID, &b.Month, &b.Year, &b.TargetBudget, &b.ActualSpent, &b.Achieved, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func CreateBudget(ctx context.Context, pool DBTX, budget *models.Budget) (*models.Budget, error) {
	query := `
		INSERT INTO budgets (user_id, month, year, target_budget)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + budgetColumns
	b, err := scanBudget(pool.QueryRow(ctx, query, budget.UserID, budget.Month, budget.Year, budget.TargetBudget))
	if err != nil {
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}
	return b, nil
}

func GetBudgetByID(ctx context.Context, pool DBTX, budgetID int64) (*models.Budget, error) {
	query := `SELECT ` + budgetColumns + ` FROM budgets WHERE id = $1`
	b, err := scanBudget(pool.QueryRow(ctx, query, budgetID))
	if err != nil {
		return nil, fmt.Errorf("failed to get budget %d: %w", budgetID, err)
	}
	return b, nil
}

func GetAllBudgetsForUser(ctx context.Context, pool DBTX, userID int64) ([]models.Budget, error) {
	query := `
		SELECT ` + budgetColumns + `
		FROM budgets WHERE user_id = $1
		ORDER BY year, id
	`
	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets for user %d: %w", userID, err)
	}
	defer rows.Close()

	budgets := []models.Budget{}
	for rows.Next() {
		b, err := scanBudget(rows)
		if err != nil {
			return nil, err
		}
		budgets = append(budgets, *b)
	}
	return budgets, rows.Err()
}

func UpdateBudgetActualSpent(ctx context.Context, pool DBTX, budgetID int64, actualSpent decimal.Decimal) (*models.Budget, error) {
	query := `
		UPDATE budgets
		SET actual_spent = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING ` + budgetColumns
	b, err := scanBudget(pool.QueryRow(ctx, query, actualSpent, budgetID))
	if err != nil {
		return nil, fmt.Errorf("failed to update budget %d: %w", budgetID, err)
	}
	return b, nil
}

// MarkBudgetAchieved sets the achieved flag. It never resets it.
func MarkBudgetAchieved(ctx context.Context, pool DBTX, budgetID int64) (*models.Budget, error) {
	query := `
		UPDATE budgets
		SET achieved = TRUE, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + budgetColumns
	b, err := scanBudget(pool.QueryRow(ctx, query, budgetID))
	if err != nil {
		return nil, fmt.Errorf("failed to mark budget %d achieved: %w", budgetID, err)
	}
	return b, nil
}

func IsBudgetAchieved(ctx context.Context, pool DBTX, budgetID int64) (bool, error) {
	query := `SELECT achieved FROM budgets WHERE id = $1`
	var achieved bool
	if err := pool.QueryRow(ctx, query, budgetID).Scan(&achieved); err != nil {
		return false, fmt.Errorf("failed to check budget %d: %w", budgetID, err)
	}
	return achieved, nil
}

func DeleteBudget(ctx context.Context, pool DBTX, budgetID int64) error {
	query := `DELETE FROM budgets WHERE id = $1`
	cmd, err := pool.Exec(ctx, query, budgetID)
	if err != nil {
		return fmt.Errorf("failed to delete budget %d: %w", budgetID, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("budget %d: %w", budgetID, pgx.ErrNoRows)
	}
	return nil
}

// GetMonthlySpending sums every transaction booked against the user's
// budgets for the period. A period with no transactions sums to zero.
func GetMonthlySpending(ctx context.Context, pool DBTX, userID int64, month string, year int) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(t.amount), 0)
		FROM transactions t
		JOIN budgets b ON b.id = t.budget_id
		WHERE b.user_id = $1 AND b.month = $2 AND b.year = $3
	`
	var total decimal.Decimal
	if err := pool.QueryRow(ctx, query, userID, month, year).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum spending for user %d %s/%d: %w", userID, month, year, err)
	}
	return total, nil
}
