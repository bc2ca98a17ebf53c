package sessions

import (
	"context"
	"database/sql"

	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/pkg/dbmetrics"
)

// Executor interfaces are shared with dbmetrics so the repository works on
// *sql.DB, the instrumented wrapper, or an open transaction from the context.
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor

// TxBeginner starts transactions; satisfied by *sql.DB and *dbmetrics.DB.
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error)
}
