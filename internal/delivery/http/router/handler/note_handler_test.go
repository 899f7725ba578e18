package handler

import (
	"context"
	"net/http"
	"testing"

	"quill/internal/delivery/http/middleware"
	"quill/internal/domain/entity"
	domainerrors "quill/internal/domain/errors"
	mockUC "quill/internal/mocks/usecase"
	"quill/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// asAuthenticated installs the identity normally set by the auth middleware.
func asAuthenticated(c echo.Context, username string) {
	c.Set(middleware.KeyUserID, uuid.New())
	c.Set(middleware.KeyUsername, username)
}

func TestNoteHandler_AddNote_Success(t *testing.T) {
	e := newTestEcho()
	uc := mockUC.NewMockNoteUsecase(t)
	h := NewNoteHandler(uc, testLogger())

	noteID := uuid.New()
	uc.EXPECT().
		AddNote(mock.Anything, mock.AnythingOfType("*usecase.AddNoteInput")).
		Run(func(ctx context.Context, input *usecase.AddNoteInput) {
			assert.Equal(t, "alice", input.Username)
			assert.Equal(t, "Groceries", input.Title)
		}).
		Return(&usecase.AddNoteOutput{NoteID: noteID}, nil)

	c, rec := newJSONContext(e, http.MethodPost, "/dashboard/note", `{"username":"alice","title":"Groceries","content":"milk"}`)
	asAuthenticated(c, "alice")

	err := h.AddNote(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), noteID.String())
}

func TestNoteHandler_AddNote_ForbiddenForOtherUser(t *testing.T) {
	e := newTestEcho()
	uc := mockUC.NewMockNoteUsecase(t)
	h := NewNoteHandler(uc, testLogger())

	c, _ := newJSONContext(e, http.MethodPost, "/dashboard/note", `{"username":"bob","title":"x","content":"y"}`)
	asAuthenticated(c, "alice")

	err := h.AddNote(c)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestNoteHandler_ListNotes_Success(t *testing.T) {
	e := newTestEcho()
	uc := mockUC.NewMockNoteUsecase(t)
	h := NewNoteHandler(uc, testLogger())

	notes := []entity.Note{
		{ID: uuid.New(), Title: "first", Content: "one"},
		{ID: uuid.New(), Title: "second", Content: "two"},
	}
	uc.EXPECT().ListNotes(mock.Anything, "alice").Return(notes, nil)

	c, rec := newJSONContext(e, http.MethodGet, "/dashboard/notes/alice", "")
	c.SetParamNames("username")
	c.SetParamValues("alice")
	asAuthenticated(c, "alice")

	err := h.ListNotes(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "first")
	assert.Contains(t, rec.Body.String(), "second")
}

func TestNoteHandler_ListNotes_UserNotFound(t *testing.T) {
	e := newTestEcho()
	uc := mockUC.NewMockNoteUsecase(t)
	h := NewNoteHandler(uc, testLogger())

	uc.EXPECT().
		ListNotes(mock.Anything, "ghost").
		Return(nil, errors.Wrap(domainerrors.ErrUserNotFound, "note owner not found"))

	c, _ := newJSONContext(e, http.MethodGet, "/dashboard/notes/ghost", "")
	c.SetParamNames("username")
	c.SetParamValues("ghost")
	asAuthenticated(c, "ghost")

	err := h.ListNotes(c)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestNoteHandler_UpdateNote_Success(t *testing.T) {
	e := newTestEcho()
	uc := mockUC.NewMockNoteUsecase(t)
	h := NewNoteHandler(uc, testLogger())

	noteID := uuid.New()
	uc.EXPECT().
		UpdateNote(mock.Anything, mock.AnythingOfType("*usecase.UpdateNoteInput")).
		Run(func(ctx context.Context, input *usecase.UpdateNoteInput) {
			assert.Equal(t, "alice", input.Username)
			assert.Equal(t, noteID, input.NoteID)
			assert.Equal(t, "updated", input.Title)
		}).
		Return(nil)

	c, rec := newJSONContext(e, http.MethodPut, "/dashboard/note/alice/"+noteID.String(), `{"title":"updated","content":"new content"}`)
	c.SetParamNames("username", "noteId")
	c.SetParamValues("alice", noteID.String())
	asAuthenticated(c, "alice")

	err := h.UpdateNote(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Note updated successfully")
}

func TestNoteHandler_UpdateNote_MissingContent(t *testing.T) {
	e := newTestEcho()
	uc := mockUC.NewMockNoteUsecase(t)
	h := NewNoteHandler(uc, testLogger())

	noteID := uuid.New()

	// Updates overwrite both fields, so a body without content must be
	// rejected instead of silently blanking the note's content.
	c, _ := newJSONContext(e, http.MethodPut, "/dashboard/note/alice/"+noteID.String(), `{"title":"only title"}`)
	c.SetParamNames("username", "noteId")
	c.SetParamValues("alice", noteID.String())
	asAuthenticated(c, "alice")

	err := h.UpdateNote(c)

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
}

func TestNoteHandler_UpdateNote_MissingTitle(t *testing.T) {
	e := newTestEcho()
	uc := mockUC.NewMockNoteUsecase(t)
	h := NewNoteHandler(uc, testLogger())

	noteID := uuid.New()

	c, _ := newJSONContext(e, http.MethodPut, "/dashboard/note/alice/"+noteID.String(), `{"content":"only content"}`)
	c.SetParamNames("username", "noteId")
	c.SetParamValues("alice", noteID.String())
	asAuthenticated(c, "alice")

	err := h.UpdateNote(c)

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
}

func TestNoteHandler_UpdateNote_InvalidNoteID(t *testing.T) {
	e := newTestEcho()
	uc := mockUC.NewMockNoteUsecase(t)
	h := NewNoteHandler(uc, testLogger())

	c, _ := newJSONContext(e, http.MethodPut, "/dashboard/note/alice/not-a-uuid", `{"title":"x","content":"y"}`)
	c.SetParamNames("username", "noteId")
	c.SetParamValues("alice", "not-a-uuid")
	asAuthenticated(c, "alice")

	err := h.UpdateNote(c)

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
}

func TestNoteHandler_UpdateNote_NoteNotFound(t *testing.T) {
	e := newTestEcho()
	uc := mockUC.NewMockNoteUsecase(t)
	h := NewNoteHandler(uc, testLogger())

	noteID := uuid.New()
	uc.EXPECT().
		UpdateNote(mock.Anything, mock.AnythingOfType("*usecase.UpdateNoteInput")).
		Return(errors.Wrap(domainerrors.ErrNoteNotFound, "update failed"))

	c, _ := newJSONContext(e, http.MethodPut, "/dashboard/note/alice/"+noteID.String(), `{"title":"x","content":"y"}`)
	c.SetParamNames("username", "noteId")
	c.SetParamValues("alice", noteID.String())
	asAuthenticated(c, "alice")

	err := h.UpdateNote(c)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNoteNotFound))
}

func TestNoteHandler_DeleteNote_Success(t *testing.T) {
	e := newTestEcho()
	uc := mockUC.NewMockNoteUsecase(t)
	h := NewNoteHandler(uc, testLogger())

	noteID := uuid.New()
	uc.EXPECT().DeleteNote(mock.Anything, "alice", noteID).Return(nil)

	c, rec := newJSONContext(e, http.MethodDelete, "/dashboard/note/alice/"+noteID.String(), "")
	c.SetParamNames("username", "noteId")
	c.SetParamValues("alice", noteID.String())
	asAuthenticated(c, "alice")

	err := h.DeleteNote(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Note deleted successfully")
}

func TestNoteHandler_DeleteNote_Forbidden(t *testing.T) {
	e := newTestEcho()
	uc := mockUC.NewMockNoteUsecase(t)
	h := NewNoteHandler(uc, testLogger())

	noteID := uuid.New()

	c, _ := newJSONContext(e, http.MethodDelete, "/dashboard/note/bob/"+noteID.String(), "")
	c.SetParamNames("username", "noteId")
	c.SetParamValues("bob", noteID.String())
	asAuthenticated(c, "alice")

	err := h.DeleteNote(c)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestNoteHandler_SearchNotes_Success(t *testing.T) {
	e := newTestEcho()
	uc := mockUC.NewMockNoteUsecase(t)
	h := NewNoteHandler(uc, testLogger())

	matches := []entity.Note{
		{ID: uuid.New(), Title: "meeting notes", Content: "agenda"},
	}
	uc.EXPECT().SearchNotes(mock.Anything, "alice", "meeting").Return(matches, nil)

	c, rec := newJSONContext(e, http.MethodGet, "/dashboard/search/alice?keyword=meeting", "")
	c.SetParamNames("username")
	c.SetParamValues("alice")
	asAuthenticated(c, "alice")

	err := h.SearchNotes(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "meeting notes")
}

func TestNoteHandler_SearchNotes_EmptyKeywordMatchesAll(t *testing.T) {
	e := newTestEcho()
	uc := mockUC.NewMockNoteUsecase(t)
	h := NewNoteHandler(uc, testLogger())

	all := []entity.Note{
		{ID: uuid.New(), Title: "first"},
		{ID: uuid.New(), Title: "second"},
	}
	uc.EXPECT().SearchNotes(mock.Anything, "alice", "").Return(all, nil)

	c, rec := newJSONContext(e, http.MethodGet, "/dashboard/search/alice", "")
	c.SetParamNames("username")
	c.SetParamValues("alice")
	asAuthenticated(c, "alice")

	err := h.SearchNotes(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "first")
	assert.Contains(t, rec.Body.String(), "second")
}
