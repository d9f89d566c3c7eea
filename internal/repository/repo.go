package repository

import (
	"notesvc/pkg/database"
)

// Repo issues SQL against the users and notes tables. All statements go
// through database.Tx, so they run on a pooled connection or join the
// transaction carried by the context.
type Repo struct {
	db database.Tx
}

func New(db database.Tx) *Repo {
	return &Repo{db: db}
}
