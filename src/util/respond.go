package util

import (
	"budget-server/src/errs"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, err *errs.HTTPError) {
	WriteJSON(w, err.Status, err)
}

// WriteMessage answers 200 with {"message": msg}.
func WriteMessage(w http.ResponseWriter, msg string) {
	WriteJSON(w, http.StatusOK, map[string]string{"message": msg})
}

// IDParam parses a positive integer path parameter.
func IDParam(r *http.Request, name string) (int64, *errs.HTTPError) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errs.NewValidationError("Invalid path parameter", []errs.FieldError{
			{Field: name, Error: "must be a positive integer"},
		})
	}
	return id, nil
}

// PeriodParams parses the {month}/{year} pair shared by period lookups.
func PeriodParams(r *http.Request) (string, int, *errs.HTTPError) {
	month := chi.URLParam(r, "month")
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	var fields []errs.FieldError
	if month == "" {
		fields = append(fields, errs.FieldError{Field: "month", Error: "is required"})
	}
	if err != nil || year < 1 {
		fields = append(fields, errs.FieldError{Field: "year", Error: "must be a positive integer"})
	}
	if len(fields) > 0 {
		return "", 0, errs.NewValidationError("Invalid path parameter", fields)
	}
	return month, year, nil
}
