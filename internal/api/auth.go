package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"notesvc/internal/entity"
	"notesvc/pkg/logger/slogx"
)

func (h *Handler) RegisterUser(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return errJSON(c, http.StatusBadRequest, invalidCredentialsMessage)
	}
	if err := h.validate.Struct(&req); err != nil {
		return errJSON(c, http.StatusBadRequest, invalidCredentialsMessage)
	}

	ctx := c.Request().Context()

	result, err := h.auth.Register(ctx, req.Email, req.Password)
	if err != nil {
		slogx.Error(ctx, "register user", slogx.Err(err))
		return errJSON(c, http.StatusInternalServerError, internalServerErrorMessage)
	}

	if result.AlreadyExists {
		return errJSON(c, http.StatusConflict, "User with the specified email already exists.")
	}

	return c.JSON(http.StatusOK, userIDResponse{UserID: result.UserID})
}

func (h *Handler) Login(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return errJSON(c, http.StatusBadRequest, invalidCredentialsMessage)
	}
	if err := h.validate.Struct(&req); err != nil {
		return errJSON(c, http.StatusBadRequest, invalidCredentialsMessage)
	}

	ctx := c.Request().Context()

	result, err := h.auth.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		slogx.Error(ctx, "authenticate user", slogx.Err(err))
		return errJSON(c, http.StatusInternalServerError, internalServerErrorMessage)
	}

	switch result.Status {
	case entity.AuthStatusWrongPassword:
		return errJSON(c, http.StatusUnauthorized, "Invalid credentials - email or password incorrect.")
	case entity.AuthStatusNoSuchUser:
		return errJSON(c, http.StatusNotFound, "User with the specified email doesn't exist.")
	default:
		return c.JSON(http.StatusOK, userIDResponse{UserID: result.UserID})
	}
}
