package repository

import (
	"context"
	"fmt"
	"time"

	"notesvc/internal/entity"
	"notesvc/pkg/logger/slogx"
)

func (r *Repo) CreateNote(ctx context.Context, userID, title, content string) (entity.Note, error) {
	note := entity.Note{
		UserID:    userID,
		Title:     title,
		Content:   content,
		CreatedAt: time.Now().UnixMilli(),
	}

	err := r.db.QueryRow(ctx,
		`INSERT INTO notes (user_id, title, content, created_epoch_timestamp)
		 VALUES ($1, $2, $3, $4)
		 RETURNING note_id`,
		note.UserID, note.Title, note.Content, note.CreatedAt,
	).Scan(&note.ID)
	if err != nil {
		return entity.Note{}, fmt.Errorf("create note: %w", err)
	}

	slogx.Debug(ctx, "success to create note", slogx.UserID(userID), slogx.NoteID(note.ID))

	return note, nil
}

func (r *Repo) GetNotesByUserID(ctx context.Context, userID string) ([]entity.Note, error) {
	rows, err := r.db.Query(ctx,
		`SELECT note_id, user_id, title, content, created_epoch_timestamp
		 FROM notes
		 WHERE user_id = $1
		 ORDER BY note_id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("get notes by user: %w", err)
	}
	defer rows.Close()

	notes := make([]entity.Note, 0)
	for rows.Next() {
		var n entity.Note
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Content, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get notes by user: %w", err)
	}

	return notes, nil
}

func (r *Repo) UpdateNoteTitle(ctx context.Context, id int64, title string) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE notes SET title = $1 WHERE note_id = $2`,
		title, id,
	)
	if err != nil {
		return false, fmt.Errorf("update note title: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func (r *Repo) UpdateNoteContent(ctx context.Context, id int64, content string) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE notes SET content = $1 WHERE note_id = $2`,
		content, id,
	)
	if err != nil {
		return false, fmt.Errorf("update note content: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func (r *Repo) DeleteNote(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM notes WHERE note_id = $1`,
		id,
	)
	if err != nil {
		return false, fmt.Errorf("delete note: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}
