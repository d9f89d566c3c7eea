package slogx

import (
	"log/slog"

	"github.com/lmittmann/tint"
)

func Err(err error) slog.Attr {
	return tint.Err(err)
}

func UserID(id string) slog.Attr {
	return slog.String("user_id", id)
}

func NoteID(id int64) slog.Attr {
	return slog.Int64("note_id", id)
}

func Email(email string) slog.Attr {
	return slog.String("email", email)
}
