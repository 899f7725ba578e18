package handler

import (
	"log/slog"
	"net/http"

	"quill/internal/delivery/http/middleware"
	"quill/internal/delivery/http/response"
	domainerrors "quill/internal/domain/errors"
	"quill/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// NoteHandler holds dependencies for note-related handlers.
type NoteHandler struct {
	uc     usecase.NoteUsecase
	logger *slog.Logger
}

// NewNoteHandler is the constructor for NoteHandler, injected by Fx.
func NewNoteHandler(uc usecase.NoteUsecase, logger *slog.Logger) *NoteHandler {
	return &NoteHandler{
		uc:     uc,
		logger: logger,
	}
}

// requireOwner checks that the authenticated user is the one the request
// addresses. Identity comes from the verified token claims, never from the
// request body or path alone.
func requireOwner(c echo.Context, username string) error {
	actor, ok := c.Get(middleware.KeyUsername).(string)
	if !ok {
		return errors.WithStack(domainerrors.ErrInvalidToken)
	}
	if actor != username {
		return errors.Wrap(domainerrors.ErrForbidden, "token does not match addressed user")
	}

	return nil
}

// noteIDParam parses the noteId path parameter.
func noteIDParam(c echo.Context) (uuid.UUID, error) {
	noteID, err := uuid.Parse(c.Param("noteId"))
	if err != nil {
		return uuid.Nil, errors.WithStack(domainerrors.ErrNoteNotFound.WithDetails("invalid note id"))
	}

	return noteID, nil
}

// AddNote handles the note creation request.
func (h *NoteHandler) AddNote(c echo.Context) error {
	var input *usecase.AddNoteInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid note input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}
	if err := requireOwner(c, input.Username); err != nil {
		return err
	}

	output, err := h.uc.AddNote(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{
		"noteId": output.NoteID.String(),
	}, "Note added successfully")
}

// ListNotes handles the request to list every note owned by a user.
func (h *NoteHandler) ListNotes(c echo.Context) error {
	username := c.Param("username")
	if err := requireOwner(c, username); err != nil {
		return err
	}

	notes, err := h.uc.ListNotes(c.Request().Context(), username)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, notes, "Notes retrieved successfully")
}

// UpdateNote handles the request to overwrite a note's title and content.
func (h *NoteHandler) UpdateNote(c echo.Context) error {
	username := c.Param("username")
	if err := requireOwner(c, username); err != nil {
		return err
	}

	noteID, err := noteIDParam(c)
	if err != nil {
		return err
	}

	var input *usecase.UpdateNoteInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid note input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}
	input.Username = username
	input.NoteID = noteID

	if err := h.uc.UpdateNote(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Note updated successfully")
}

// DeleteNote handles the request to remove a note.
func (h *NoteHandler) DeleteNote(c echo.Context) error {
	username := c.Param("username")
	if err := requireOwner(c, username); err != nil {
		return err
	}

	noteID, err := noteIDParam(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteNote(c.Request().Context(), username, noteID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Note deleted successfully")
}

// SearchNotes handles the substring search request. An absent or empty
// keyword matches every note.
func (h *NoteHandler) SearchNotes(c echo.Context) error {
	username := c.Param("username")
	if err := requireOwner(c, username); err != nil {
		return err
	}

	keyword := c.QueryParam("keyword")

	notes, err := h.uc.SearchNotes(c.Request().Context(), username, keyword)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, notes, "Notes retrieved successfully")
}
