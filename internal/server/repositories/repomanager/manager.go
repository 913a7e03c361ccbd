package repomanager

import (
	"context"
	"database/sql"

	"github.com/mpetrovs/newsbrief/internal/dbx"
	"github.com/mpetrovs/newsbrief/internal/server/repositories/newsletters"
	"github.com/mpetrovs/newsbrief/internal/server/repositories/otps"
	"github.com/mpetrovs/newsbrief/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	OTPs(db dbx.DBTX) otps.Repository
	Newsletters(db dbx.DBTX) newsletters.Repository
}
