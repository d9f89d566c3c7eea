// Package api translates HTTP requests into store calls and store
// results into HTTP responses. Request shape is checked here, before
// any store access; storage failures map uniformly to an opaque 500.
package api

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"notesvc/internal/entity"
	"notesvc/pkg/logger/slogx"
)

const (
	internalServerErrorMessage = "Internal server error."
	invalidCredentialsMessage  = "Invalid Credentials."
	invalidBodyMessage         = "Missing or invalid body."
)

type authUsecase interface {
	Register(ctx context.Context, email, password string) (entity.RegisterResult, error)
	Authenticate(ctx context.Context, email, password string) (entity.AuthResult, error)
}

type notesUsecase interface {
	CreateNote(ctx context.Context, userID, title, content string) (entity.Note, error)
	GetNotesByUserID(ctx context.Context, userID string) ([]entity.Note, error)
	UpdateNote(ctx context.Context, id int64, title, content *string) (bool, error)
	DeleteNote(ctx context.Context, id int64) (bool, error)
}

type Handler struct {
	auth     authUsecase
	notes    notesUsecase
	validate *validator.Validate
}

func NewHandler(auth authUsecase, notes notesUsecase) *Handler {
	return &Handler{
		auth:     auth,
		notes:    notes,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// NewRouter mounts the handler on a fresh echo instance. The returned
// echo.Echo is a plain http.Handler and plugs into gwserver.
func NewRouter(h *Handler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(slogx.RequestLogger())

	a := e.Group("/auth")
	a.POST("/register", h.RegisterUser)
	a.POST("/login", h.Login)

	n := e.Group("/notes")
	n.POST("/new", h.CreateNote)
	n.GET("/all", h.GetNotes)
	n.PUT("/update", h.UpdateNote)
	n.DELETE("/delete", h.DeleteNote)

	return e
}

type errorResponse struct {
	Error string `json:"error"`
}

func errJSON(c echo.Context, code int, msg string) error {
	return c.JSON(code, errorResponse{Error: msg})
}
