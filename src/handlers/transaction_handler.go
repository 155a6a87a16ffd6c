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

type createTransactionRequest struct {
	BudgetID    int64            `json:"budget_id" validate:"required,gt=0"`
	Amount      *decimal.Decimal `json:"amount" validate:"required"`
	Description string           `json:"description" validate:"required,max=255"`
	Date        *models.Date     `json:"date" validate:"required"`
}

func CreateTransaction(pool db.DBTX, summaries SummaryStore, publisher events.Publisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createTransactionRequest
		if herr := util.DecodeAndValidate(r, &req); herr != nil {
			util.WriteError(w, herr)
			return
		}

		created, err := db.CreateTransaction(r.Context(), pool, &models.Transaction{
			BudgetID:    req.BudgetID,
			Amount:      *req.Amount,
			Description: req.Description,
			Date:        *req.Date,
		})
		if err != nil {
			writeDBError(w, r, err, "transaction", "failed to create transaction")
			return
		}
		summaries.ClearAll()

		hlog.FromRequest(r).Info().
			Int64("transaction_id", created.ID).
			Int64("budget_id", created.BudgetID).
			Msg("created transaction")
		events.Emit(r.Context(), publisher, hlog.FromRequest(r),
			events.New(events.TransactionCreated, created.ID).WithBudget(created.BudgetID))

		util.WriteJSON(w, http.StatusOK, created)
	}
}

func GetTransactionByID(pool db.DBTX) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		transactionID, herr := util.IDParam(r, "id")
		if herr != nil {
			util.WriteError(w, herr)
			return
		}

		txn, err := db.GetTransactionByID(r.Context(), pool, transactionID)
		if err != nil {
			writeDBError(w, r, err, "transaction", "failed to get transaction")
			return
		}

		util.WriteJSON(w, http.StatusOK, txn)
	}
}

func GetTransactionsForBudget(pool db.DBTX) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		budgetID, herr := util.IDParam(r, "budget_id")
		if herr != nil {
			util.WriteError(w, herr)
			return
		}

		txns, err := db.GetTransactionsForBudget(r.Context(), pool, budgetID)
		if err != nil {
			writeDBError(w, r, err, "transaction", "failed to list transactions")
			return
		}

		util.WriteJSON(w, http.StatusOK, txns)
	}
}

func DeleteTransaction(pool db.DBTX, summaries SummaryStore, publisher events.Publisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		transactionID, herr := util.IDParam(r, "id")
		if herr != nil {
			util.WriteError(w, herr)
			return
		}

		if err := db.DeleteTransaction(r.Context(), pool, transactionID); err != nil {
			writeDBError(w, r, err, "transaction", "failed to delete transaction")
			return
		}
		summaries.ClearAll()

		hlog.FromRequest(r).Info().Int64("transaction_id", transactionID).Msg("deleted transaction")
		events.Emit(r.Context(), publisher, hlog.FromRequest(r),
			events.New(events.TransactionDeleted, transactionID))

		util.WriteMessage(w, "Transaction deleted successfully")
	}
}
