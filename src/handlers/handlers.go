// Package handlers holds one http.HandlerFunc constructor per endpoint.
package handlers

import (
	"budget-server/src/errs"
	"budget-server/src/util"
	"net/http"

	"github.com/rs/zerolog/hlog"
	"github.com/shopspring/decimal"
)

// writeDBError logs err and answers with its mapped HTTPError. Client
// errors are logged at warn, everything else at error.
func writeDBError(w http.ResponseWriter, r *http.Request, err error, entity, msg string) {
	herr := errs.FromDB(err, entity)
	log := hlog.FromRequest(r)
	if herr.Status >= http.StatusInternalServerError {
		log.Error().Err(err).Msg(msg)
	} else {
		log.Warn().Err(err).Int("status", herr.Status).Msg(msg)
	}
	util.WriteError(w, herr)
}

// SummaryStore caches monthly spending totals. *cache.SummaryCache
// implements it.
//
// Generation is read before a total is computed and handed back to Set, so
// a total that raced with ClearAll is discarded.
type SummaryStore interface {
	Generation() uint64
	Get(userID int64, month string, year int) (decimal.Decimal, bool)
	Set(userID int64, month string, year int, total decimal.Decimal, gen uint64)
	ClearAll()
}
