package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"notesvc/internal/entity"
	"notesvc/pkg/logger/slogx"
)

func (h *Handler) CreateNote(c echo.Context) error {
	var req createNoteRequest
	if err := c.Bind(&req); err != nil {
		return errJSON(c, http.StatusBadRequest, invalidBodyMessage)
	}
	if err := h.validate.Struct(&req); err != nil {
		return errJSON(c, http.StatusBadRequest, invalidBodyMessage)
	}

	ctx := c.Request().Context()

	note, err := h.notes.CreateNote(ctx, req.UserID, req.Title, req.Content)
	if err != nil {
		slogx.Error(ctx, "create note", slogx.Err(err))
		return errJSON(c, http.StatusInternalServerError, internalServerErrorMessage)
	}

	return c.JSON(http.StatusOK, createNoteResponse{NoteID: note.ID})
}

func (h *Handler) GetNotes(c echo.Context) error {
	userID := c.QueryParam("userId")
	if userID == "" {
		return errJSON(c, http.StatusBadRequest, "Missing or invalid userId parameter")
	}

	ctx := c.Request().Context()

	notes, err := h.notes.GetNotesByUserID(ctx, userID)
	if err != nil {
		slogx.Error(ctx, "get notes", slogx.Err(err))
		return errJSON(c, http.StatusInternalServerError, internalServerErrorMessage)
	}

	resp := make([]noteResponse, 0, len(notes))
	for _, n := range notes {
		resp = append(resp, noteResponse{
			NoteID:             n.ID,
			Title:              n.Title,
			Content:            n.Content,
			CreatedAtTimestamp: n.CreatedAt,
		})
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateNote(c echo.Context) error {
	var req updateNoteRequest
	if err := c.Bind(&req); err != nil {
		return errJSON(c, http.StatusBadRequest, "Missing or invalid request body.")
	}
	if err := h.validate.Struct(&req); err != nil {
		return errJSON(c, http.StatusBadRequest, "Missing or invalid request body.")
	}

	ctx := c.Request().Context()

	existed, err := h.notes.UpdateNote(ctx, req.NoteID, req.Title, req.Content)
	if err != nil {
		if errors.Is(err, entity.ErrNothingToUpdate) {
			return errJSON(c, http.StatusBadRequest, "Missing or invalid request body.")
		}
		slogx.Error(ctx, "update note", slogx.Err(err))
		return errJSON(c, http.StatusInternalServerError, internalServerErrorMessage)
	}

	if !existed {
		return errJSON(c, http.StatusNotFound, fmt.Sprintf("Note with %d does not exist.", req.NoteID))
	}

	return c.JSON(http.StatusOK, updateNoteResponse{
		NoteID:  req.NoteID,
		Title:   req.Title,
		Content: req.Content,
	})
}

func (h *Handler) DeleteNote(c echo.Context) error {
	noteID, err := strconv.ParseInt(c.QueryParam("noteId"), 10, 64)
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "Missing or invalid noteId parameter")
	}

	ctx := c.Request().Context()

	existed, err := h.notes.DeleteNote(ctx, noteID)
	if err != nil {
		slogx.Error(ctx, "delete note", slogx.Err(err))
		return errJSON(c, http.StatusInternalServerError, internalServerErrorMessage)
	}

	if !existed {
		return errJSON(c, http.StatusNotFound, fmt.Sprintf("Note with %d does not exist.", noteID))
	}

	return c.JSON(http.StatusOK, echo.Map{"success": "Successfully deleted the note."})
}
