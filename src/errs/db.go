package errs

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// FromDB converts an error returned by the SQL layer into an HTTPError.
// entity is the singular resource name used in the message ("budget").
func FromDB(err error, entity string) *HTTPError {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return NewNotFoundError(fmt.Sprintf("%s not found", capitalize(entity)))
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.ForeignKeyViolation:
			ref := referencedEntity(pgErr.ConstraintName, pgErr.Detail)
			return NewValidationError(
				fmt.Sprintf("The referenced %s does not exist", ref),
				[]FieldError{{Field: ref + "_id", Error: "does not exist"}},
			)
		case pgerrcode.UniqueViolation:
			return NewConflictError(fmt.Sprintf("A %s with this %s already exists", entity, uniqueColumn(pgErr.ConstraintName)))
		case pgerrcode.NotNullViolation:
			return NewValidationError(
				fmt.Sprintf("The %s is required", pgErr.ColumnName),
				[]FieldError{{Field: pgErr.ColumnName, Error: "is required"}},
			)
		case pgerrcode.CheckViolation, pgerrcode.NumericValueOutOfRange, pgerrcode.StringDataRightTruncationDataException:
			return NewValidationError("One or more values do not meet required conditions", nil)
		}
	}

	return NewInternalServerError()
}

func capitalize(s string) string {
	if s == "" {
		return "Resource"
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// referencedEntity derives "user" from a constraint such as
// budgets_user_id_fkey, falling back to the key name in the detail text.
func referencedEntity(constraint, detail string) string {
	if i := strings.Index(constraint, "_"); i >= 0 {
		rest := strings.TrimSuffix(constraint[i+1:], "_fkey")
		if strings.HasSuffix(rest, "_id") {
			return strings.TrimSuffix(rest, "_id")
		}
	}
	// Key (user_id)=(42) is not present in table "users".
	if start := strings.Index(detail, "("); start >= 0 {
		if end := strings.Index(detail[start:], ")"); end > 0 {
			return strings.TrimSuffix(detail[start+1:start+end], "_id")
		}
	}
	return "record"
}

// uniqueColumn derives "email" from users_email_key.
func uniqueColumn(constraint string) string {
	trimmed := strings.TrimSuffix(constraint, "_key")
	if i := strings.LastIndex(trimmed, "_"); i >= 0 && i < len(trimmed)-1 {
		return trimmed[i+1:]
	}
	return "value"
}
