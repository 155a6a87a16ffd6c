package db

import (
	"budget-server/src/models"
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

const notificationColumns = `id, user_id, month, year, message, created_at`

func scanNotification(row pgx.Row) (*models.Notification, error) {
	var n models.Notification
	err := row.Scan(&n.ID, &n.UserID, &n.Month, &n.Year, &n.Message, &n.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func collectNotifications(rows pgx.Rows) ([]models.Notification, error) {
	defer rows.Close()

	notifications := []models.Notification{}
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, *n)
	}
	return notifications, rows.Err()
}

func CreateNotification(ctx context.Context, pool DBTX, notification *models.Notification) (*models.Notification, error) {
	query := `
		INSERT INTO notifications (user_id, month, year, message)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + notificationColumns
	n, err := scanNotification(pool.QueryRow(ctx, query, notification.UserID, notification.Month, notification.Year, notification.Message))
	if err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}
	return n, nil
}

func GetNotificationsForPeriod(ctx context.Context, pool DBTX, userID int64, month string, year int) ([]models.Notification, error) {
	query := `
		SELECT ` + notificationColumns + `
		FROM notifications
		WHERE user_id = $1 AND month = $2 AND year = $3
		ORDER BY created_at, id
	`
	rows, err := pool.Query(ctx, query, userID, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications for user %d %s/%d: %w", userID, month, year, err)
	}
	return collectNotifications(rows)
}

func GetAllNotificationsForUser(ctx context.Context, pool DBTX, userID int64) ([]models.Notification, error) {
	query := `
		SELECT ` + notificationColumns + `
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at, id
	`
	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications for user %d: %w", userID, err)
	}
	return collectNotifications(rows)
}

func UpdateNotificationMessage(ctx context.Context, pool DBTX, id int64, message string) (*models.Notification, error) {
	query := `
		UPDATE notifications
		SET message = $1
		WHERE id = $2
		RETURNING ` + notificationColumns
	n, err := scanNotification(pool.QueryRow(ctx, query, message, id))
	if err != nil {
		return nil, fmt.Errorf("failed to update notification %d: %w", id, err)
	}
	return n, nil
}
