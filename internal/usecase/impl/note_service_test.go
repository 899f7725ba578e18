package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"quill/internal/domain/entity"
	domainerrors "quill/internal/domain/errors"
	"quill/internal/domain/repository"
	mockRepo "quill/internal/mocks/repository"
	"quill/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// noteServiceFixtures holds all test dependencies for note service tests.
type noteServiceFixtures struct {
	service  usecase.NoteUsecase
	userRepo *mockRepo.MockUserRepository
	noteRepo *mockRepo.MockNoteRepository
}

func createTestNoteService(t *testing.T) noteServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	noteRepo := mockRepo.NewMockNoteRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewNoteService(NoteServiceParams{
		UserRepo: userRepo,
		NoteRepo: noteRepo,
		Logger:   logger,
	})

	return noteServiceFixtures{
		service:  service,
		userRepo: userRepo,
		noteRepo: noteRepo,
	}
}

func testOwner() *entity.User {
	return &entity.User{
		ID:       uuid.New(),
		Username: "alice",
	}
}

func TestNoteService_AddNote_Success(t *testing.T) {
	fx := createTestNoteService(t)

	ctx := context.Background()
	owner := testOwner()
	input := &usecase.AddNoteInput{
		Username: owner.Username,
		Title:    "Groceries",
		Content:  "milk, eggs",
	}

	fx.userRepo.EXPECT().FindByUsername(ctx, owner.Username).Return(owner, nil)
	fx.noteRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Note")).
		Run(func(ctx context.Context, note *entity.Note) {
			assert.Equal(t, owner.ID, note.UserID)
			assert.Equal(t, input.Title, note.Title)
			assert.Equal(t, input.Content, note.Content)
			note.ID = uuid.New()
		}).
		Return(nil)

	output, err := fx.service.AddNote(ctx, input)

	require.NoError(t, err)
	assert.NotNil(t, output)
	assert.NotEqual(t, uuid.Nil, output.NoteID)
}

func TestNoteService_AddNote_UserNotFound(t *testing.T) {
	fx := createTestNoteService(t)

	ctx := context.Background()
	input := &usecase.AddNoteInput{
		Username: "ghost",
		Title:    "Groceries",
		Content:  "milk",
	}

	fx.userRepo.EXPECT().FindByUsername(ctx, input.Username).Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.AddNote(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestNoteService_AddNote_EmptyTitleAndContent(t *testing.T) {
	fx := createTestNoteService(t)

	ctx := context.Background()
	owner := testOwner()
	input := &usecase.AddNoteInput{Username: owner.Username}

	fx.userRepo.EXPECT().FindByUsername(ctx, owner.Username).Return(owner, nil)
	fx.noteRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Note")).
		Run(func(ctx context.Context, note *entity.Note) {
			assert.Empty(t, note.Title)
			assert.Empty(t, note.Content)
			note.ID = uuid.New()
		}).
		Return(nil)

	output, err := fx.service.AddNote(ctx, input)

	require.NoError(t, err)
	assert.NotNil(t, output)
}

// Two concurrent AddNote calls for the same user must both survive; note
// creation is a single insert, not a read-modify-write of the collection.
func TestNoteService_AddNote_ConcurrentInserts(t *testing.T) {
	fx := createTestNoteService(t)

	ctx := context.Background()
	owner := testOwner()

	var mu sync.Mutex
	stored := make(map[uuid.UUID]entity.Note)

	fx.userRepo.EXPECT().FindByUsername(ctx, owner.Username).Return(owner, nil).Times(2)
	fx.noteRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Note")).
		Run(func(ctx context.Context, note *entity.Note) {
			note.ID = uuid.New()
			mu.Lock()
			stored[note.ID] = *note
			mu.Unlock()
		}).
		Return(nil).
		Times(2)

	var wg sync.WaitGroup
	for _, title := range []string{"first", "second"} {
		wg.Add(1)
		go func(title string) {
			defer wg.Done()
			_, err := fx.service.AddNote(ctx, &usecase.AddNoteInput{
				Username: owner.Username,
				Title:    title,
			})
			assert.NoError(t, err)
		}(title)
	}
	wg.Wait()

	assert.Len(t, stored, 2)
}

func TestNoteService_ListNotes_Success(t *testing.T) {
	fx := createTestNoteService(t)

	ctx := context.Background()
	owner := testOwner()
	notes := []entity.Note{
		{ID: uuid.New(), UserID: owner.ID, Title: "first"},
		{ID: uuid.New(), UserID: owner.ID, Title: "second"},
	}

	fx.userRepo.EXPECT().FindByUsername(ctx, owner.Username).Return(owner, nil)
	fx.noteRepo.EXPECT().ListByUser(ctx, owner.ID).Return(notes, nil)

	got, err := fx.service.ListNotes(ctx, owner.Username)

	require.NoError(t, err)
	assert.Equal(t, notes, got)
}

func TestNoteService_ListNotes_Empty(t *testing.T) {
	fx := createTestNoteService(t)

	ctx := context.Background()
	owner := testOwner()

	fx.userRepo.EXPECT().FindByUsername(ctx, owner.Username).Return(owner, nil)
	fx.noteRepo.EXPECT().ListByUser(ctx, owner.ID).Return([]entity.Note{}, nil)

	got, err := fx.service.ListNotes(ctx, owner.Username)

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestNoteService_ListNotes_UserNotFound(t *testing.T) {
	fx := createTestNoteService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().FindByUsername(ctx, "ghost").Return(nil, repository.ErrUserNotFound)

	got, err := fx.service.ListNotes(ctx, "ghost")

	assert.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestNoteService_UpdateNote_Success(t *testing.T) {
	fx := createTestNoteService(t)

	ctx := context.Background()
	owner := testOwner()
	input := &usecase.UpdateNoteInput{
		Username: owner.Username,
		NoteID:   uuid.New(),
		Title:    "updated",
		Content:  "updated content",
	}

	fx.userRepo.EXPECT().FindByUsername(ctx, owner.Username).Return(owner, nil)
	fx.noteRepo.EXPECT().Update(ctx, owner.ID, input.NoteID, input.Title, input.Content).Return(nil)

	err := fx.service.UpdateNote(ctx, input)

	require.NoError(t, err)
}

func TestNoteService_UpdateNote_NoteNotFound(t *testing.T) {
	fx := createTestNoteService(t)

	ctx := context.Background()
	owner := testOwner()
	input := &usecase.UpdateNoteInput{
		Username: owner.Username,
		NoteID:   uuid.New(),
		Title:    "updated",
	}

	fx.userRepo.EXPECT().FindByUsername(ctx, owner.Username).Return(owner, nil)
	fx.noteRepo.EXPECT().
		Update(ctx, owner.ID, input.NoteID, input.Title, input.Content).
		Return(repository.ErrNoteNotFound)

	err := fx.service.UpdateNote(ctx, input)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNoteNotFound))
}

func TestNoteService_DeleteNote_Success(t *testing.T) {
	fx := createTestNoteService(t)

	ctx := context.Background()
	owner := testOwner()
	noteID := uuid.New()

	fx.userRepo.EXPECT().FindByUsername(ctx, owner.Username).Return(owner, nil)
	fx.noteRepo.EXPECT().Delete(ctx, owner.ID, noteID).Return(nil)

	err := fx.service.DeleteNote(ctx, owner.Username, noteID)

	require.NoError(t, err)
}

func TestNoteService_DeleteNote_NoteNotFound(t *testing.T) {
	fx := createTestNoteService(t)

	ctx := context.Background()
	owner := testOwner()
	noteID := uuid.New()

	fx.userRepo.EXPECT().FindByUsername(ctx, owner.Username).Return(owner, nil)
	fx.noteRepo.EXPECT().Delete(ctx, owner.ID, noteID).Return(repository.ErrNoteNotFound)

	err := fx.service.DeleteNote(ctx, owner.Username, noteID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNoteNotFound))
}

func TestNoteService_SearchNotes_Success(t *testing.T) {
	fx := createTestNoteService(t)

	ctx := context.Background()
	owner := testOwner()
	matches := []entity.Note{
		{ID: uuid.New(), UserID: owner.ID, Title: "meeting notes"},
	}

	fx.userRepo.EXPECT().FindByUsername(ctx, owner.Username).Return(owner, nil)
	fx.noteRepo.EXPECT().Search(ctx, owner.ID, "meeting").Return(matches, nil)

	got, err := fx.service.SearchNotes(ctx, owner.Username, "meeting")

	require.NoError(t, err)
	assert.Equal(t, matches, got)
}

func TestNoteService_SearchNotes_EmptyKeyword(t *testing.T) {
	fx := createTestNoteService(t)

	ctx := context.Background()
	owner := testOwner()
	all := []entity.Note{
		{ID: uuid.New(), UserID: owner.ID, Title: "first"},
		{ID: uuid.New(), UserID: owner.ID, Title: "second"},
	}

	fx.userRepo.EXPECT().FindByUsername(ctx, owner.Username).Return(owner, nil)
	fx.noteRepo.EXPECT().Search(ctx, owner.ID, "").Return(all, nil)

	got, err := fx.service.SearchNotes(ctx, owner.Username, "")

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestNoteService_SearchNotes_UserNotFound(t *testing.T) {
	fx := createTestNoteService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().FindByUsername(ctx, "ghost").Return(nil, repository.ErrUserNotFound)

	got, err := fx.service.SearchNotes(ctx, "ghost", "meeting")

	assert.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
