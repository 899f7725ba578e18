// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "quill/internal/delivery/context"
	"quill/internal/domain/entity"
	domainerrors "quill/internal/domain/errors"
	"quill/internal/domain/repository"
	"quill/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noteService implements the NoteUsecase interface.
// Note writes are single conditional statements in the repository, so there
// is no read-modify-write window between concurrent operations on one user.
type noteService struct {
	userRepo repository.UserRepository
	noteRepo repository.NoteRepository
	logger   *slog.Logger
}

// NoteServiceParams holds dependencies for noteService, injected by Fx.
type NoteServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	NoteRepo repository.NoteRepository
	Logger   *slog.Logger
}

// NewNoteService is the constructor for noteService.
func NewNoteService(params NoteServiceParams) usecase.NoteUsecase {
	return &noteService{
		userRepo: params.UserRepo,
		noteRepo: params.NoteRepo,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *noteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// resolveOwner loads the owning user by username, mapping absence to the
// domain's user not-found error.
func (srv *noteService) resolveOwner(ctx context.Context, username string) (*entity.User, error) {
	user, err := srv.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "note owner not found")
		}

		return nil, errors.Wrap(err, "failed to resolve note owner")
	}

	return user, nil
}

// AddNote appends a new note to the user's collection.
func (srv *noteService) AddNote(ctx context.Context, input *usecase.AddNoteInput) (*usecase.AddNoteOutput, error) {
	owner, err := srv.resolveOwner(ctx, input.Username)
	if err != nil {
		srv.log(ctx).Warn("Add note failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, err
	}

	note := &entity.Note{
		UserID:  owner.ID,
		Title:   input.Title,
		Content: input.Content,
	}

	if err := srv.noteRepo.Create(ctx, note); err != nil {
		srv.log(ctx).Error("Add note failed", slog.Any("userID", owner.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create note")
	}

	srv.log(ctx).Debug("Note created", slog.Any("userID", owner.ID), slog.Any("noteID", note.ID))

	return &usecase.AddNoteOutput{NoteID: note.ID}, nil
}

// ListNotes returns the user's full note collection in creation order.
func (srv *noteService) ListNotes(ctx context.Context, username string) ([]entity.Note, error) {
	owner, err := srv.resolveOwner(ctx, username)
	if err != nil {
		srv.log(ctx).Warn("List notes failed", slog.String("username", username), slog.Any("error", err))

		return nil, err
	}

	notes, err := srv.noteRepo.ListByUser(ctx, owner.ID)
	if err != nil {
		srv.log(ctx).Error("List notes failed", slog.Any("userID", owner.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list notes")
	}

	return notes, nil
}

// UpdateNote overwrites both title and content of the addressed note.
func (srv *noteService) UpdateNote(ctx context.Context, input *usecase.UpdateNoteInput) error {
	owner, err := srv.resolveOwner(ctx, input.Username)
	if err != nil {
		srv.log(ctx).Warn("Update note failed", slog.String("username", input.Username), slog.Any("error", err))

		return err
	}

	if err := srv.noteRepo.Update(ctx, owner.ID, input.NoteID, input.Title, input.Content); err != nil {
		if errors.Is(err, repository.ErrNoteNotFound) {
			srv.log(ctx).Warn("Update note failed", slog.Any("noteID", input.NoteID), slog.Any("error", err))

			return errors.Wrap(domainerrors.ErrNoteNotFound, "update failed")
		}
		srv.log(ctx).Error("Update note failed", slog.Any("noteID", input.NoteID), slog.Any("error", err))

		return errors.Wrap(err, "failed to update note")
	}

	return nil
}

// DeleteNote removes the addressed note from the user's collection.
func (srv *noteService) DeleteNote(ctx context.Context, username string, noteID uuid.UUID) error {
	owner, err := srv.resolveOwner(ctx, username)
	if err != nil {
		srv.log(ctx).Warn("Delete note failed", slog.String("username", username), slog.Any("error", err))

		return err
	}

	if err := srv.noteRepo.Delete(ctx, owner.ID, noteID); err != nil {
		if errors.Is(err, repository.ErrNoteNotFound) {
			srv.log(ctx).Warn("Delete note failed", slog.Any("noteID", noteID), slog.Any("error", err))

			return errors.Wrap(domainerrors.ErrNoteNotFound, "delete failed")
		}
		srv.log(ctx).Error("Delete note failed", slog.Any("noteID", noteID), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete note")
	}

	return nil
}

// SearchNotes returns every note whose title or content contains the keyword
// as a literal, case-sensitive substring. An empty keyword matches everything.
func (srv *noteService) SearchNotes(ctx context.Context, username, keyword string) ([]entity.Note, error) {
	owner, err := srv.resolveOwner(ctx, username)
	if err != nil {
		srv.log(ctx).Warn("Search notes failed", slog.String("username", username), slog.Any("error", err))

		return nil, err
	}

	notes, err := srv.noteRepo.Search(ctx, owner.ID, keyword)
	if err != nil {
		srv.log(ctx).Error("Search notes failed", slog.Any("userID", owner.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to search notes")
	}

	return notes, nil
}
