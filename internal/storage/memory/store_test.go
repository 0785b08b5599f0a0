package memory

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pt/internal/models"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testUser(id int, name, email string) models.UserWithAuth {
	date := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	return models.UserWithAuth{
		User: models.User{
			ID:           id,
			FullName:     name,
			Avatar:       "images/avatars/males/image-1.png",
			DateCreated:  date,
			DateModified: date,
		},
		AuthInfo: &models.UserAuthInfo{Email: email, Password: "pw"},
	}
}

func testItem(id int, status models.Status, assignee models.User) models.Item {
	date := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	return models.Item{
		ID:           id,
		Title:        "Item",
		Type:         models.ItemTypeBug,
		Estimate:     4,
		Priority:     models.PriorityMedium,
		Status:       status,
		Assignee:     assignee,
		Tasks:        []models.Task{},
		Comments:     []models.Comment{},
		DateCreated:  date,
		DateModified: date,
	}
}

func seedStore(items ...models.Item) *Store {
	users := []models.UserWithAuth{
		testUser(1, "Dana Field", "dana@example.com"),
		testUser(2, "Omar Reyes", "omar@example.com"),
	}
	return NewStore(users, items, discardLogger())
}

func TestNextIntegerID(t *testing.T) {
	tests := []struct {
		name string
		ids  []int
		want int
	}{
		{"empty", nil, 1},
		{"unordered", []int{1, 5, 3}, 6},
		{"single", []int{2}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := nextIntegerID(tt.ids); got != tt.want {
				t.Errorf("nextIntegerID(%v) = %d, want %d", tt.ids, got, tt.want)
			}
		})
	}
}

func TestCreateItemAssignsIDAndPrepends(t *testing.T) {
	user := testUser(1, "Dana Field", "dana@example.com").User
	s := seedStore(
		testItem(1, models.StatusOpen, user),
		testItem(5, models.StatusClosed, user),
		testItem(3, models.StatusOpen, user),
	)

	created := s.CreateItem(models.Item{Title: "New work"})
	assert.Equal(t, 6, created.ID)

	items := s.Items()
	require.Len(t, items, 4)
	assert.Equal(t, 6, items[0].ID, "new item is prepended")
	assert.Equal(t, "New work", items[0].Title)
}

func TestSoftDeleteItem(t *testing.T) {
	user := testUser(1, "Dana Field", "dana@example.com").User
	s := seedStore(testItem(1, models.StatusOpen, user))

	require.True(t, s.SoftDeleteItem(1))
	assert.False(t, s.SoftDeleteItem(1), "second delete finds nothing active")
	assert.False(t, s.SoftDeleteItem(42))

	// Gone from active reads, still present raw.
	_, err := s.ActiveItem(1)
	assert.ErrorIs(t, err, ErrNotFound)

	items := s.Items()
	require.Len(t, items, 1)
	require.NotNil(t, items[0].DateDeleted)
	assert.Empty(t, Filter(items, Active))
}

func TestReplaceItemLeavesOthersUntouched(t *testing.T) {
	user := testUser(1, "Dana Field", "dana@example.com").User
	first := testItem(1, models.StatusOpen, user)
	second := testItem(2, models.StatusOpen, user)
	third := testItem(3, models.StatusClosed, user)
	s := seedStore(first, second, third)

	candidate := testItem(2, models.StatusClosed, user)
	candidate.Title = "Rewritten"

	replaced, err := s.ReplaceItem(2, candidate)
	require.NoError(t, err)
	assert.Equal(t, candidate, replaced)

	items := s.Items()
	assert.Equal(t, first, items[0])
	assert.Equal(t, candidate, items[1])
	assert.Equal(t, third, items[2])
}

func TestReplaceItemKeepsCandidateID(t *testing.T) {
	user := testUser(1, "Dana Field", "dana@example.com").User
	s := seedStore(testItem(1, models.StatusOpen, user))

	candidate := testItem(42, models.StatusOpen, user)
	replaced, err := s.ReplaceItem(1, candidate)
	require.NoError(t, err)

	// The caller-supplied id wins; the URL id only located the record.
	assert.Equal(t, 42, replaced.ID)
	assert.Equal(t, 42, s.Items()[0].ID)
}

func TestReplaceItemNotFound(t *testing.T) {
	user := testUser(1, "Dana Field", "dana@example.com").User
	s := seedStore(testItem(1, models.StatusOpen, user))
	require.True(t, s.SoftDeleteItem(1))

	_, err := s.ReplaceItem(1, testItem(1, models.StatusOpen, user))
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.ReplaceItem(9, testItem(9, models.StatusOpen, user))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTaskLifecycle(t *testing.T) {
	user := testUser(1, "Dana Field", "dana@example.com").User
	item := testItem(1, models.StatusOpen, user)
	item.Tasks = []models.Task{{ID: 1, Title: "first"}, {ID: 2, Title: "second"}}
	s := seedStore(item)

	created, err := s.CreateTask(1, models.Task{Title: "third"})
	require.NoError(t, err)
	assert.Equal(t, 3, created.ID, "task ids count within the parent item")

	got, err := s.ActiveItem(1)
	require.NoError(t, err)
	require.Len(t, got.Tasks, 3)
	assert.Equal(t, 3, got.Tasks[0].ID, "new task is prepended")

	modified := models.Task{ID: 2, Title: "second, revised", Completed: true}
	replaced, err := s.ReplaceTask(1, modified)
	require.NoError(t, err)
	assert.Equal(t, modified, replaced)

	_, err = s.ReplaceTask(1, models.Task{ID: 9, Title: "ghost"})
	assert.ErrorIs(t, err, ErrTaskNotFound)
	_, err = s.ReplaceTask(77, modified)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.SoftDeleteTask(1, 1))
	assert.ErrorIs(t, s.SoftDeleteTask(1, 99), ErrTaskNotFound)
	assert.ErrorIs(t, s.SoftDeleteTask(77, 1), ErrNotFound)

	got, err = s.ActiveItem(1)
	require.NoError(t, err)
	assert.Len(t, got.Tasks, 2, "deleted task filtered from the active view")

	raw := s.Items()[0]
	assert.Len(t, raw.Tasks, 3, "deleted task kept in the raw store")
}

func TestCreateComment(t *testing.T) {
	user := testUser(1, "Dana Field", "dana@example.com").User
	item := testItem(1, models.StatusOpen, user)
	item.Comments = []models.Comment{{ID: 4, Title: "existing"}}
	s := seedStore(item)

	created, err := s.CreateComment(1, models.Comment{Title: "looks good", User: user})
	require.NoError(t, err)
	assert.Equal(t, 5, created.ID)

	_, err = s.CreateComment(9, models.Comment{Title: "nowhere"})
	assert.ErrorIs(t, err, ErrNotFound)

	raw := s.Items()[0]
	require.Len(t, raw.Comments, 2)
	assert.Equal(t, "looks good", raw.Comments[0].Title)
}

func TestRegisterUser(t *testing.T) {
	s := seedStore()

	user, err := s.RegisterUser("new@example.com", "secret", "Noa Lang")
	require.NoError(t, err)
	assert.Equal(t, 3, user.ID)
	assert.Equal(t, "Noa Lang", user.FullName)

	_, err = s.RegisterUser("new@example.com", "other", "Imposter")
	assert.ErrorIs(t, err, ErrUserExists)
	_, err = s.RegisterUser("dana@example.com", "pw", "Dana Again")
	assert.ErrorIs(t, err, ErrUserExists)

	// Registration extends only the credentialed list; the public list
	// the client reads stays as seeded.
	assert.Len(t, s.Users(), 2)

	found, err := s.FindUserByCredentials("new@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
}

func TestFindUserByCredentials(t *testing.T) {
	s := seedStore()

	found, err := s.FindUserByCredentials("dana@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "Dana Field", found.FullName)

	_, err = s.FindUserByCredentials("dana@example.com", "wrong")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.FindUserByCredentials("nobody@example.com", "pw")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSoftDeleteUser(t *testing.T) {
	s := seedStore()

	require.True(t, s.SoftDeleteUser(1))
	assert.False(t, s.SoftDeleteUser(1))

	_, ok := s.ActiveUser(1)
	assert.False(t, ok)
	assert.Len(t, s.Users(), 2, "soft delete keeps the raw entry")
}

func TestReplaceUser(t *testing.T) {
	s := seedStore()

	candidate := models.User{ID: 1, FullName: "Dana Renamed"}
	replaced, err := s.ReplaceUser(1, candidate)
	require.NoError(t, err)
	assert.Equal(t, candidate, replaced)
	assert.Equal(t, "Dana Renamed", s.Users()[0].FullName)

	_, err = s.ReplaceUser(9, candidate)
	assert.ErrorIs(t, err, ErrNotFound)

	require.True(t, s.SoftDeleteUser(2))
	_, err = s.ReplaceUser(2, candidate)
	assert.ErrorIs(t, err, ErrNotFound, "deleted users cannot be replaced")
}
