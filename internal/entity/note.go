package entity

import "errors"

var ErrNoteNotFound = errors.New("note not found")

// ErrNothingToUpdate is returned when an update request carries
// neither a new title nor new content.
var ErrNothingToUpdate = errors.New("nothing to update")

type Note struct {
	ID      int64
	UserID  string
	Title   string
	Content string

	// CreatedAt is epoch milliseconds captured at insertion.
	CreatedAt int64
}
