package handlers

import (
	db "budget-server/src/db/sql"
	"budget-server/src/events"
	"budget-server/src/models"
	"budget-server/src/util"
	"net/http"

	"github.com/rs/zerolog/hlog"
)

type createNotificationRequest struct {
	UserID  int64  `json:"user_id" validate:"required,gt=0"`
	Month   string `json:"month" validate:"required,max=20"`
	Year    int    `json:"year" validate:"required,min=1"`
	Message string `json:"message" validate:"required"`
}

type updateNotificationRequest struct {
	Message string `json:"message" validate:"required"`
}

func CreateNotification(pool db.DBTX, publisher events.Publisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createNotificationRequest
		if herr := util.DecodeAndValidate(r, &req); herr != nil {
			util.WriteError(w, herr)
			return
		}

		created, err := db.CreateNotification(r.Context(), pool, &models.Notification{
			UserID:  req.UserID,
			Month:   req.Month,
			Year:    req.Year,
			Message: req.Message,
		})
		if err != nil {
			writeDBError(w, r, err, "notification", "failed to create notification")
			return
		}

		hlog.FromRequest(r).Info().
			Int64("notification_id", created.ID).
			Int64("user_id", created.UserID).
			Msg("created notification")
		events.Emit(r.Context(), publisher, hlog.FromRequest(r),
			events.New(events.NotificationCreated, created.ID).WithUser(created.UserID))

		util.WriteJSON(w, http.StatusOK, created)
	}
}

// GetNotificationsForPeriod answers an empty list when nothing matches.
func GetNotificationsForPeriod(pool db.DBTX) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, herr := util.IDParam(r, "id")
		if herr != nil {
			util.WriteError(w, herr)
			return
		}
		month, year, herr := util.PeriodParams(r)
		if herr != nil {
			util.WriteError(w, herr)
			return
		}

		notifications, err := db.GetNotificationsForPeriod(r.Context(), pool, userID, month, year)
		if err != nil {
			writeDBError(w, r, err, "notification", "failed to list notifications")
			return
		}

		util.WriteJSON(w, http.StatusOK, notifications)
	}
}

func GetAllNotificationsForUser(pool db.DBTX) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, herr := util.IDParam(r, "user_id")
		if herr != nil {
			util.WriteError(w, herr)
			return
		}

		notifications, err := db.GetAllNotificationsForUser(r.Context(), pool, userID)
		if err != nil {
			writeDBError(w, r, err, "notification", "failed to list notifications")
			return
		}

		util.WriteJSON(w, http.StatusOK, notifications)
	}
}

func UpdateNotification(pool db.DBTX) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		notificationID, herr := util.IDParam(r, "id")
		if herr != nil {
			util.WriteError(w, herr)
			return
		}

		var req updateNotificationRequest
		if herr := util.DecodeAndValidate(r, &req); herr != nil {
			util.WriteError(w, herr)
			return
		}

		updated, err := db.UpdateNotificationMessage(r.Context(), pool, notificationID, req.Message)
		if err != nil {
			writeDBError(w, r, err, "notification", "failed to update notification")
			return
		}

		hlog.FromRequest(r).Info().Int64("notification_id", notificationID).Msg("updated notification")
		util.WriteJSON(w, http.StatusOK, updated)
	}
}
