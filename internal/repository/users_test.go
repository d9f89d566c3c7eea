package repository

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"notesvc/internal/entity"
)

func TestCreateUser_Inserted(t *testing.T) {
	db := &fakeDB{execTag: pgconn.NewCommandTag("INSERT 0 1")}
	repo := New(db)

	inserted, err := repo.CreateUser(context.Background(), entity.User{
		ID: "u-1", Email: "alice@example.com", PasswordHash: "hash",
	})
	if err != nil {
		t.Fatalf("CreateUser error: %v", err)
	}
	if !inserted {
		t.Fatal("expected inserted=true")
	}

	if len(db.calls) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(db.calls))
	}
	if !strings.Contains(db.calls[0].sql, "ON CONFLICT (email) DO NOTHING") {
		t.Fatalf("insert must be a conflict no-op, got %q", db.calls[0].sql)
	}
	if got := db.calls[0].args; got[0] != "u-1" || got[1] != "alice@example.com" {
		t.Fatalf("unexpected args: %v", got)
	}
}

func TestCreateUser_EmailTaken(t *testing.T) {
	db := &fakeDB{execTag: pgconn.NewCommandTag("INSERT 0 0")}
	repo := New(db)

	inserted, err := repo.CreateUser(context.Background(), entity.User{
		ID: "u-2", Email: "alice@example.com", PasswordHash: "hash",
	})
	if err != nil {
		t.Fatalf("CreateUser error: %v", err)
	}
	if inserted {
		t.Fatal("duplicate email must not report an insert")
	}
}

func TestCreateUser_DBError(t *testing.T) {
	db := &fakeDB{execErr: errors.New("db down")}
	repo := New(db)

	_, err := repo.CreateUser(context.Background(), entity.User{ID: "u", Email: "e@x.io", PasswordHash: "h"})
	if err == nil || !strings.Contains(err.Error(), "db down") {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestGetUserByEmail_Found(t *testing.T) {
	db := &fakeDB{row: fakeRow{vals: []any{"u-1", "alice@example.com", "hash"}}}
	repo := New(db)

	user, err := repo.GetUserByEmail(context.Background(), "alice@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail error: %v", err)
	}
	if user.ID != "u-1" || user.Email != "alice@example.com" || user.PasswordHash != "hash" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestGetUserByEmail_NotFound(t *testing.T) {
	db := &fakeDB{row: fakeRow{err: pgx.ErrNoRows}}
	repo := New(db)

	_, err := repo.GetUserByEmail(context.Background(), "nobody@example.com")
	if !errors.Is(err, entity.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestDeleteUser_NonexistentIsNoop(t *testing.T) {
	db := &fakeDB{execTag: pgconn.NewCommandTag("DELETE 0")}
	repo := New(db)

	if err := repo.DeleteUser(context.Background(), "missing"); err != nil {
		t.Fatalf("deleting a nonexistent id must not fail: %v", err)
	}
}

func TestUserExists(t *testing.T) {
	db := &fakeDB{row: fakeRow{vals: []any{int64(1)}}}
	repo := New(db)

	exists, err := repo.UserExists(context.Background(), "alice@example.com")
	if err != nil {
		t.Fatalf("UserExists error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists=true")
	}

	db.row = fakeRow{vals: []any{int64(0)}}
	exists, err = repo.UserExists(context.Background(), "nobody@example.com")
	if err != nil {
		t.Fatalf("UserExists error: %v", err)
	}
	if exists {
		t.Fatal("expected exists=false")
	}
}

func TestListUsers(t *testing.T) {
	db := &fakeDB{rows: &fakeRows{rows: [][]any{
		{"u-1", "alice@example.com"},
		{"u-2", "bob@example.com"},
	}}}
	repo := New(db)

	users, err := repo.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("ListUsers error: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if users[0].Email != "alice@example.com" || users[1].ID != "u-2" {
		t.Fatalf("unexpected users: %+v", users)
	}
}
