// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"strings"

	"quill/internal/domain/entity"
	domainerrors "quill/internal/domain/errors"
	"quill/internal/domain/repository"
	"quill/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// noteRepository implements the domain.NoteRepository interface using GORM.
// Update and Delete are single conditional statements keyed by
// (user_id, note_id), so concurrent note operations on the same user never
// overwrite each other's rows.
type noteRepository struct {
	db *gorm.DB
}

// NewNoteRepository is the constructor for noteRepository.
func NewNoteRepository(db *gorm.DB) repository.NoteRepository {
	return &noteRepository{db: db}
}

// Create persists a new note for the given owner.
func (repo *noteRepository) Create(ctx context.Context, note *entity.Note) error {
	noteM := fromNoteDomain(note)

	if err := repo.db.WithContext(ctx).Create(noteM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrNoteCreationFailed.WrapMessage("missing required note fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create note")
	}

	note.ID = noteM.ID
	note.CreatedAt = noteM.CreatedAt
	note.UpdatedAt = noteM.UpdatedAt

	return nil
}

// ListByUser returns every note owned by the user, in creation order.
func (repo *noteRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.Note, error) {
	var noteModels []model.NoteModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at, id").
		Find(&noteModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notes")
	}

	return toNoteDomainSlice(noteModels), nil
}

// Update overwrites both title and content of the addressed note in a single
// conditional statement. RowsAffected == 0 means the note does not exist for
// this owner.
func (repo *noteRepository) Update(ctx context.Context, userID, noteID uuid.UUID, title, content string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NoteModel{}).
		Where("id = ? AND user_id = ?", noteID, userID).
		Updates(map[string]any{
			"title":   title,
			"content": content,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update note")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNoteNotFound
	}

	return nil
}

// Delete removes the addressed note in a single conditional statement.
func (repo *noteRepository) Delete(ctx context.Context, userID, noteID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", noteID, userID).
		Delete(&model.NoteModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete note")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNoteNotFound
	}

	return nil
}

// Search returns every note whose title or content contains the keyword as a
// literal substring. LIKE is case-sensitive in PostgreSQL; an empty keyword
// produces '%%' and matches every note.
func (repo *noteRepository) Search(ctx context.Context, userID uuid.UUID, keyword string) ([]entity.Note, error) {
	pattern := "%" + escapeLikePattern(keyword) + "%"

	var noteModels []model.NoteModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND (title LIKE ? OR content LIKE ?)", userID, pattern, pattern).
		Order("created_at, id").
		Find(&noteModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to search notes")
	}

	return toNoteDomainSlice(noteModels), nil
}

// escapeLikePattern escapes LIKE metacharacters so the keyword is matched literally.
func escapeLikePattern(keyword string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

	return replacer.Replace(keyword)
}

// --- Mapper Functions ---

// toNoteDomain converts a GORM NoteModel to a domain Note entity.
func toNoteDomain(data *model.NoteModel) *entity.Note {
	if data == nil {
		return nil
	}

	return &entity.Note{
		ID:        data.ID,
		UserID:    data.UserID,
		Title:     data.Title,
		Content:   data.Content,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toNoteDomainSlice(models []model.NoteModel) []entity.Note {
	notes := make([]entity.Note, 0, len(models))
	for i := range models {
		notes = append(notes, *toNoteDomain(&models[i]))
	}

	return notes
}

// fromNoteDomain converts a domain Note entity to a GORM NoteModel.
func fromNoteDomain(note *entity.Note) *model.NoteModel {
	if note == nil {
		return nil
	}

	return &model.NoteModel{
		ID:      note.ID,
		UserID:  note.UserID,
		Title:   note.Title,
		Content: note.Content,
	}
}
