package db

import (
	"budget-server/src/models"
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

const transactionColumns = `id, budget_id, amount, description, date`

func scanTransaction(row pgx.Row) (*models.Transaction, error) {
	var t models.Transaction
	var date time.Time
	err := row.Scan(&t.ID, &t.BudgetID, &t.Amount, &t.Description, &date)
	if err != nil {
		return nil, err
	}
	t.Date = models.Date{Time: date}
	return &t, nil
}

func CreateTransaction(ctx context.Context, pool DBTX, txn *models.Transaction) (*models.Transaction, error) {
	query := `
		INSERT INTO transactions (budget_id, amount, description, date)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + transactionColumns
	t, err := scanTransaction(pool.QueryRow(ctx, query, txn.BudgetID, txn.Amount, txn.Description, txn.Date.Time))
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}
	return t, nil
}

func GetTransactionByID(ctx context.Context, pool DBTX, id int64) (*models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`
	t, err := scanTransaction(pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction %d: %w", id, err)
	}
	return t, nil
}

func GetTransactionsForBudget(ctx context.Context, pool DBTX, budgetID int64) ([]models.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions WHERE budget_id = $1
		ORDER BY date, id
	`
	rows, err := pool.Query(ctx, query, budgetID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for budget %d: %w", budgetID, err)
	}
	defer rows.Close()

	transactions := []models.Transaction{}
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, *t)
	}
	return transactions, rows.Err()
}

func DeleteTransaction(ctx context.Context, pool DBTX, id int64) error {
	query := `DELETE FROM transactions WHERE id = $1`
	cmd, err := pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %d: %w", id, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("transaction %d: %w", id, pgx.ErrNoRows)
	}
	return nil
}
