package notes

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notesvc/internal/entity"
)

type fakeNotesRepo struct {
	notes  map[int64]entity.Note
	nextID int64

	titleCalls   int
	contentCalls int

	err error
}

func newFakeNotesRepo() *fakeNotesRepo {
	return &fakeNotesRepo{notes: make(map[int64]entity.Note), nextID: 1}
}

func (f *fakeNotesRepo) CreateNote(_ context.Context, userID, title, content string) (entity.Note, error) {
	if f.err != nil {
		return entity.Note{}, f.err
	}
	note := entity.Note{ID: f.nextID, UserID: userID, Title: title, Content: content, CreatedAt: f.nextID * 1000}
	f.notes[note.ID] = note
	f.nextID++
	return note, nil
}

func (f *fakeNotesRepo) GetNotesByUserID(_ context.Context, userID string) ([]entity.Note, error) {
	if f.err != nil {
		return nil, f.err
	}
	notes := make([]entity.Note, 0)
	for id := int64(1); id < f.nextID; id++ {
		if n, ok := f.notes[id]; ok && n.UserID == userID {
			notes = append(notes, n)
		}
	}
	return notes, nil
}

func (f *fakeNotesRepo) UpdateNoteTitle(_ context.Context, id int64, title string) (bool, error) {
	f.titleCalls++
	if f.err != nil {
		return false, f.err
	}
	n, ok := f.notes[id]
	if !ok {
		return false, nil
	}
	n.Title = title
	f.notes[id] = n
	return true, nil
}

func (f *fakeNotesRepo) UpdateNoteContent(_ context.Context, id int64, content string) (bool, error) {
	f.contentCalls++
	if f.err != nil {
		return false, f.err
	}
	n, ok := f.notes[id]
	if !ok {
		return false, nil
	}
	n.Content = content
	f.notes[id] = n
	return true, nil
}

func (f *fakeNotesRepo) DeleteNote(_ context.Context, id int64) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	_, ok := f.notes[id]
	delete(f.notes, id)
	return ok, nil
}

// fakeTransactor counts transactions; statements run as-is.
type fakeTransactor struct {
	calls int
}

func (f *fakeTransactor) RunInTx(ctx context.Context, fn func(context.Context) error) error {
	f.calls++
	return fn(ctx)
}

func newTestUsecase(t *testing.T) (*Usecase, *fakeNotesRepo, *fakeTransactor) {
	t.Helper()

	repo := newFakeNotesRepo()
	tr := &fakeTransactor{}

	uc, err := New(NewOptions(repo, tr))
	require.NoError(t, err)

	return uc, repo, tr
}

func ptr(s string) *string { return &s }

func TestCreateNote_ThenList(t *testing.T) {
	uc, _, _ := newTestUsecase(t)
	ctx := context.Background()

	note, err := uc.CreateNote(ctx, "u1", "Shopping", "Milk")
	require.NoError(t, err)
	assert.Equal(t, "Shopping", note.Title)

	notes, err := uc.GetNotesByUserID(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, note.ID, notes[0].ID)
	assert.Equal(t, "Milk", notes[0].Content)
}

func TestCreateNote_TimestampsNonDecreasing(t *testing.T) {
	uc, _, _ := newTestUsecase(t)
	ctx := context.Background()

	first, err := uc.CreateNote(ctx, "u1", "a", "1")
	require.NoError(t, err)
	second, err := uc.CreateNote(ctx, "u1", "b", "2")
	require.NoError(t, err)

	assert.GreaterOrEqual(t, second.CreatedAt, first.CreatedAt)
}

func TestGetNotesByUserID_UnknownOwner(t *testing.T) {
	uc, _, _ := newTestUsecase(t)

	notes, err := uc.GetNotesByUserID(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestUpdateNote_NothingToUpdate(t *testing.T) {
	uc, repo, tr := newTestUsecase(t)

	_, err := uc.UpdateNote(context.Background(), 1, nil, nil)
	require.ErrorIs(t, err, entity.ErrNothingToUpdate)

	assert.Zero(t, tr.calls, "no transaction for an empty update")
	assert.Zero(t, repo.titleCalls+repo.contentCalls, "no store round-trip for an empty update")
}

func TestUpdateNote_TitleOnly(t *testing.T) {
	uc, repo, tr := newTestUsecase(t)
	ctx := context.Background()

	note, err := uc.CreateNote(ctx, "u1", "Shopping", "Milk")
	require.NoError(t, err)

	existed, err := uc.UpdateNote(ctx, note.ID, ptr("Groceries"), nil)
	require.NoError(t, err)
	assert.True(t, existed)

	assert.Equal(t, 1, tr.calls)
	assert.Equal(t, 1, repo.titleCalls)
	assert.Zero(t, repo.contentCalls, "content untouched by a title-only update")

	got := repo.notes[note.ID]
	assert.Equal(t, "Groceries", got.Title)
	assert.Equal(t, "Milk", got.Content)
	assert.Equal(t, note.CreatedAt, got.CreatedAt)
}

func TestUpdateNote_BothFields(t *testing.T) {
	uc, repo, tr := newTestUsecase(t)
	ctx := context.Background()

	note, err := uc.CreateNote(ctx, "u1", "Shopping", "Milk")
	require.NoError(t, err)

	existed, err := uc.UpdateNote(ctx, note.ID, ptr("Groceries"), ptr("Milk, Eggs"))
	require.NoError(t, err)
	assert.True(t, existed)
	assert.Equal(t, 1, tr.calls, "both field updates share one transaction")

	got := repo.notes[note.ID]
	assert.Equal(t, "Groceries", got.Title)
	assert.Equal(t, "Milk, Eggs", got.Content)
}

func TestUpdateNote_MissingNote(t *testing.T) {
	uc, _, _ := newTestUsecase(t)

	existed, err := uc.UpdateNote(context.Background(), 404, ptr("x"), ptr("y"))
	require.NoError(t, err)
	assert.False(t, existed)
}

func TestUpdateNote_StoreFailure(t *testing.T) {
	uc, repo, _ := newTestUsecase(t)
	repo.err = errors.New("db down")

	_, err := uc.UpdateNote(context.Background(), 1, ptr("x"), nil)
	require.Error(t, err)
}

func TestDeleteNote_Twice(t *testing.T) {
	uc, _, _ := newTestUsecase(t)
	ctx := context.Background()

	note, err := uc.CreateNote(ctx, "u1", "Shopping", "Milk")
	require.NoError(t, err)

	existed, err := uc.DeleteNote(ctx, note.ID)
	require.NoError(t, err)
	assert.True(t, existed)

	existed, err = uc.DeleteNote(ctx, note.ID)
	require.NoError(t, err)
	assert.False(t, existed, "second delete must report existed=false")
}

func TestFullScenario(t *testing.T) {
	uc, _, _ := newTestUsecase(t)
	ctx := context.Background()

	note, err := uc.CreateNote(ctx, "u1", "Shopping", "Milk")
	require.NoError(t, err)

	notes, err := uc.GetNotesByUserID(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "Shopping", notes[0].Title)
	assert.Equal(t, "Milk", notes[0].Content)

	existed, err := uc.UpdateNote(ctx, note.ID, nil, ptr("Milk, Eggs"))
	require.NoError(t, err)
	require.True(t, existed)

	notes, err = uc.GetNotesByUserID(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "Milk, Eggs", notes[0].Content)

	existed, err = uc.DeleteNote(ctx, note.ID)
	require.NoError(t, err)
	require.True(t, existed)

	notes, err = uc.GetNotesByUserID(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, notes)
}
