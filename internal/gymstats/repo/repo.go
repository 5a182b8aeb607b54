package repo

import (
	_ "embed"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema creates the tables the repo reads from.
//
//go:embed schema.sql
var Schema string

const statusCompleted = "completed"

// Repo is the read-only data access adapter of the insights engine. All
// queries are scoped to a single user and a lower time bound.
type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}
