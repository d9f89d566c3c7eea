package notes

import (
	"context"
	"fmt"

	"notesvc/internal/entity"
	"notesvc/pkg/logger/slogx"
)

type notesRepository interface {
	CreateNote(ctx context.Context, userID, title, content string) (entity.Note, error)
	GetNotesByUserID(ctx context.Context, userID string) ([]entity.Note, error)
	UpdateNoteTitle(ctx context.Context, id int64, title string) (bool, error)
	UpdateNoteContent(ctx context.Context, id int64, content string) (bool, error)
	DeleteNote(ctx context.Context, id int64) (bool, error)
}

type transactor interface {
	RunInTx(ctx context.Context, f func(context.Context) error) error
}

//go:generate go run github.com/kazhuravlev/options-gen/cmd/options-gen@v0.55.3 -out-filename=usecase_options.gen.go -from-struct=Options
type Options struct {
	repo notesRepository `option:"mandatory" validate:"required"`
	tr   transactor      `option:"mandatory" validate:"required"`
}

type Usecase struct {
	Options
}

func New(opts Options) (*Usecase, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate notes usecase options: %v", err)
	}

	return &Usecase{Options: opts}, nil
}

func (u *Usecase) CreateNote(ctx context.Context, userID, title, content string) (entity.Note, error) {
	note, err := u.repo.CreateNote(ctx, userID, title, content)
	if err != nil {
		return entity.Note{}, fmt.Errorf("usecase create note: %w", err)
	}

	slogx.Info(ctx, "success to create note", slogx.UserID(userID), slogx.NoteID(note.ID))

	return note, nil
}

func (u *Usecase) GetNotesByUserID(ctx context.Context, userID string) ([]entity.Note, error) {
	notes, err := u.repo.GetNotesByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("usecase get notes by user: %w", err)
	}

	return notes, nil
}

// UpdateNote applies the provided fields to the note. At least one
// field must be set, otherwise entity.ErrNothingToUpdate is returned
// before any store access. Both field updates run in one transaction so
// a concurrent caller never observes a half-applied pair. The returned
// flag reports whether the note existed.
func (u *Usecase) UpdateNote(ctx context.Context, id int64, title, content *string) (bool, error) {
	if title == nil && content == nil {
		return false, entity.ErrNothingToUpdate
	}

	var existed bool

	err := u.tr.RunInTx(ctx, func(ctx context.Context) error {
		if title != nil {
			ok, err := u.repo.UpdateNoteTitle(ctx, id, *title)
			if err != nil {
				return err
			}
			existed = existed || ok
		}

		if content != nil {
			ok, err := u.repo.UpdateNoteContent(ctx, id, *content)
			if err != nil {
				return err
			}
			existed = existed || ok
		}

		return nil
	})
	if err != nil {
		return false, fmt.Errorf("usecase update note: %w", err)
	}

	return existed, nil
}

func (u *Usecase) DeleteNote(ctx context.Context, id int64) (bool, error) {
	existed, err := u.repo.DeleteNote(ctx, id)
	if err != nil {
		return false, fmt.Errorf("usecase delete note: %w", err)
	}

	if existed {
		slogx.Debug(ctx, "success to delete note", slogx.NoteID(id))
	}

	return existed, nil
}
