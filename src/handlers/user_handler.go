package handlers

import (
	db "budget-server/src/db/sql"
	"budget-server/src/errs"
	"budget-server/src/util"
	"errors"
	"net/http"

	"github.com/rs/zerolog/hlog"
	"golang.org/x/crypto/bcrypt"
)

type createUserRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required"`
}

// bcrypt rejects passwords longer than 72 bytes, whatever their rune count.
const maxPasswordBytes = 72

func passwordTooLong() *errs.HTTPError {
	return errs.NewValidationError("Validation failed", []errs.FieldError{
		{Field: "password", Error: "must not exceed 72 bytes"},
	})
}

type updateUserRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=1,max=255"`
	Email *string `json:"email" validate:"omitempty,email,max=255"`
}

func CreateUser(pool db.DBTX) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createUserRequest
		if herr := util.DecodeAndValidate(r, &req); herr != nil {
			util.WriteError(w, herr)
			return
		}

		if len(req.Password) > maxPasswordBytes {
			util.WriteError(w, passwordTooLong())
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			util.WriteError(w, passwordTooLong())
			return
		}
		if err != nil {
			hlog.FromRequest(r).Error().Err(err).Msg("failed to hash password")
			util.WriteError(w, errs.NewInternalServerError())
			return
		}

		user, err := db.CreateUser(r.Context(), pool, req.Name, req.Email, hash)
		if err != nil {
			writeDBError(w, r, err, "user", "failed to create user")
			return
		}

		hlog.FromRequest(r).Info().Int64("user_id", user.ID).Msg("created user")
		util.WriteJSON(w, http.StatusOK, user)
	}
}

func GetUser(pool db.DBTX) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, herr := util.IDParam(r, "id")
		if herr != nil {
			util.WriteError(w, herr)
			return
		}

		user, err := db.GetUserByID(r.Context(), pool, userID)
		if err != nil {
			writeDBError(w, r, err, "user", "failed to get user")
			return
		}

		util.WriteJSON(w, http.StatusOK, user)
	}
}

func GetAllUsers(pool db.DBTX) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := db.GetAllUsers(r.Context(), pool)
		if err != nil {
			writeDBError(w, r, err, "user", "failed to list users")
			return
		}

		util.WriteJSON(w, http.StatusOK, users)
	}
}

func UpdateUser(pool db.DBTX) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, herr := util.IDParam(r, "id")
		if herr != nil {
			util.WriteError(w, herr)
			return
		}

		var req updateUserRequest
		if herr := util.DecodeAndValidate(r, &req); herr != nil {
			util.WriteError(w, herr)
			return
		}

		user, err := db.UpdateUser(r.Context(), pool, userID, req.Name, req.Email)
		if err != nil {
			writeDBError(w, r, err, "user", "failed to update user")
			return
		}

		hlog.FromRequest(r).Info().Int64("user_id", userID).Msg("updated user")
		util.WriteJSON(w, http.StatusOK, user)
	}
}

// DeleteUser removes the user; budgets, transactions and notifications go
// with it.
func DeleteUser(pool db.DBTX, summaries SummaryStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, herr := util.IDParam(r, "id")
		if herr != nil {
			util.WriteError(w, herr)
			return
		}

		if err := db.DeleteUser(r.Context(), pool, userID); err != nil {
			writeDBError(w, r, err, "user", "failed to delete user")
			return
		}
		summaries.ClearAll()

		hlog.FromRequest(r).Info().Int64("user_id", userID).Msg("deleted user")
		util.WriteMessage(w, "User deleted successfully")
	}
}
