package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/farmsync/internal/dbx"
	"github.com/dmitrijs2005/farmsync/internal/server/repositories/operations"
	"github.com/dmitrijs2005/farmsync/internal/server/repositories/plots"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Operations(db dbx.DBTX) operations.Repository
	Plots(db dbx.DBTX) plots.Repository
}
