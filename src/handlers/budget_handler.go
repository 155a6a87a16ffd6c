package handlers

import (
	db "budget-server/src/db/sql"
	"budget-server/src/events"
	"budget-server/src/models"
	"budget-server/src/util"
	"net/http"

	"github.com/rs/zerolog/hlog"
	"github.com/shopspring/decimal"
)

type createBudgetRequest struct {
	UserID       int64            `json:"user_id" validate:"required,gt=0"`
	Month        string           `json:"month" validate:"required,max=20"`
	Year         int              `json:"year" validate:"required,min=1"`
	TargetBudget *decimal.Decimal `json:"target_budget" validate:"required,gte=0"`
}

type updateBudgetRequest struct {
	ActualSpent *decimal.Decimal `json:"actual_spent" validate:"required,gte=0"`
}

func CreateBudget(pool db.DBTX, publisher events.Publisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createBudgetRequest
		if herr := util.DecodeAndValidate(r, &req); herr != nil {
			util.WriteError(w, herr)
			return
		}

		created, err := db.CreateBudget(r.Context(), pool, &models.Budget{
			UserID:       req.UserID,
			Month:        req.Month,
			Year:         req.Year,
			TargetBudget: *req.TargetBudget,
		})
		if err != nil {
			writeDBError(w, r, err, "budget", "failed to create budget")
			return
		}

		hlog.FromRequest(r).Info().
			Int64("budget_id", created.ID).
			Int64("user_id", created.UserID).
			Str("period", created.Month).
			Msg("created budget")
		events.Emit(r.Context(), publisher, hlog.FromRequest(r),
			events.New(events.BudgetCreated, created.ID).WithUser(created.UserID))

		util.WriteJSON(w, http.StatusOK, created)
	}
}

func GetBudgetByID(pool db.DBTX) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		budgetID, herr := util.IDParam(r, "id")
		if herr != nil {
			util.WriteError(w, herr)
			return
		}

		budget, err := db.GetBudgetByID(r.Context(), pool, budgetID)
		if err != nil {
			writeDBError(w, r, err, "budget", "failed to get budget")
			return
		}

		util.WriteJSON(w, http.StatusOK, budget)
	}
}

func GetAllBudgetsForUser(pool db.DBTX) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, herr := util.IDParam(r, "user_id")
		if herr != nil {
			util.WriteError(w, herr)
			return
		}

		budgets, err := db.GetAllBudgetsForUser(r.Context(), pool, userID)
		if err != nil {
			writeDBError(w, r, err, "budget", "failed to list budgets")
			return
		}

		util.WriteJSON(w, http.StatusOK, budgets)
	}
}

// UpdateBudget records the amount spent so far. It does not touch achieved.
func UpdateBudget(pool db.DBTX) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		budgetID, herr := util.IDParam(r, "id")
		if herr != nil {
			util.WriteError(w, herr)
			return
		}

		var req updateBudgetRequest
		if herr := util.DecodeAndValidate(r, &req); herr != nil {
			util.WriteError(w, herr)
			return
		}

		updated, err := db.UpdateBudgetActualSpent(r.Context(), pool, budgetID, *req.ActualSpent)
		if err != nil {
			writeDBError(w, r, err, "budget", "failed to update budget")
			return
		}

		hlog.FromRequest(r).Info().Int64("budget_id", budgetID).Msg("updated budget")
		util.WriteJSON(w, http.StatusOK, updated)
	}
}

func DeleteBudget(pool db.DBTX, summaries SummaryStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		budgetID, herr := util.IDParam(r, "id")
		if herr != nil {
			util.WriteError(w, herr)
			return
		}

		if err := db.DeleteBudget(r.Context(), pool, budgetID); err != nil {
			writeDBError(w, r, err, "budget", "failed to delete budget")
			return
		}
		summaries.ClearAll()

		hlog.FromRequest(r).Info().Int64("budget_id", budgetID).Msg("deleted budget")
		util.WriteMessage(w, "Budget deleted successfully")
	}
}

func AchieveBudget(pool db.DBTX, publisher events.Publisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		budgetID, herr := util.IDParam(r, "id")
		if herr != nil {
			util.WriteError(w, herr)
			return
		}

		budget, err := db.MarkBudgetAchieved(r.Context(), pool, budgetID)
		if err != nil {
			writeDBError(w, r, err, "budget", "failed to mark budget achieved")
			return
		}

		hlog.FromRequest(r).Info().Int64("budget_id", budgetID).Msg("budget achieved")
		events.Emit(r.Context(), publisher, hlog.FromRequest(r),
			events.New(events.BudgetAchieved, budget.ID).WithUser(budget.UserID))

		util.WriteMessage(w, "Budget marked as achieved")
	}
}

func CheckBudgetAchieved(pool db.DBTX) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		budgetID, herr := util.IDParam(r, "id")
		if herr != nil {
			util.WriteError(w, herr)
			return
		}

		achieved, err := db.IsBudgetAchieved(r.Context(), pool, budgetID)
		if err != nil {
			writeDBError(w, r, err, "budget", "failed to check budget")
			return
		}

		util.WriteJSON(w, http.StatusOK, map[string]bool{"achieved": achieved})
	}
}

// GetSpendingSummary answers the total spent by a user in one month/year,
// served from summaries when possible.
func GetSpendingSummary(pool db.DBTX, summaries SummaryStore) http.HandlerFunc {
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

		if total, ok := summaries.Get(userID, month, year); ok {
			util.WriteJSON(w, http.StatusOK, models.SpendingSummary{TotalSpent: total})
			return
		}

		gen := summaries.Generation()
		total, err := db.GetMonthlySpending(r.Context(), pool, userID, month, year)
		if err != nil {
			writeDBError(w, r, err, "budget", "failed to sum spending")
			return
		}
		summaries.Set(userID, month, year, total, gen)

		util.WriteJSON(w, http.StatusOK, models.SpendingSummary{TotalSpent: total})
	}
}
