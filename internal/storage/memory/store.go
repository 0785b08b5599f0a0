// Package memory holds the process-lifetime snapshot of users and items.
// There is no persistence: the store is seeded once at startup from the
// generated dataset and mutated in place until shutdown. Deletion is
// always soft (a timestamp), ids are never reused.
package memory

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"pt/internal/models"
)

var (
	// ErrNotFound means the referenced entity is absent or soft deleted.
	ErrNotFound = errors.New("not found")
	// ErrTaskNotFound means the parent item exists but the task does not.
	ErrTaskNotFound = errors.New("task not found")
	// ErrUserExists means a registration email is already taken.
	ErrUserExists = errors.New("user exists")
)

// Store is the in-memory backing of the mock API. The public user list
// and the credentialed user list deliberately drift apart over time:
// registration only extends the credentialed list, while user edits and
// deletes only touch the public one. That mirrors how the real client
// observes this backend.
//
// Mutations are copy-on-write over the collection slices and run under a
// single writer lock, so every read observes either fully-old or
// fully-new state.
type Store struct {
	mu     sync.RWMutex
	logger *slog.Logger

	usersWithAuth []models.UserWithAuth
	users         []models.User
	items         []models.Item
}

// NewStore seeds a store from the generated dataset. The public user list
// is derived from the credentialed one.
func NewStore(usersWithAuth []models.UserWithAuth, items []models.Item, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Store{
		logger:        logger,
		usersWithAuth: append([]models.UserWithAuth(nil), usersWithAuth...),
		users:         models.StripAuth(usersWithAuth),
		items:         append([]models.Item(nil), items...),
	}

	s.logger.Info("store seeded",
		slog.Int("users", len(s.users)),
		slog.Int("items", len(s.items)))
	return s
}

// nextIntegerID returns max(id)+1 over the given ids, or 1 when empty.
func nextIntegerID(ids []int) int {
	max := 0
	for _, id := range ids {
		if id > max {
			max = id
		}
	}
	return max + 1
}

func itemIDs(items []models.Item) []int {
	ids := make([]int, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	return ids
}

func taskIDs(tasks []models.Task) []int {
	ids := make([]int, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	return ids
}

func commentIDs(comments []models.Comment) []int {
	ids := make([]int, len(comments))
	for i, c := range comments {
		ids[i] = c.ID
	}
	return ids
}

// Users returns the raw public user list, deleted users included.
func (s *Store) Users() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.User(nil), s.users...)
}

// Items returns the raw item list, deleted items included.
func (s *Store) Items() []models.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Item(nil), s.items...)
}

// ActiveUser finds a public user by id, skipping soft-deleted ones.
func (s *Store) ActiveUser(id int) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id && u.Active() {
			return u, true
		}
	}
	return models.User{}, false
}

// ActiveItem finds an active item by id and returns it with its deleted
// tasks filtered out. The stored item is left untouched.
func (s *Store) ActiveItem(id int) (models.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, it := range s.items {
		if it.ID != id || !it.Active() {
			continue
		}
		tasks := make([]models.Task, 0, len(it.Tasks))
		for _, t := range it.Tasks {
			if t.Active() {
				tasks = append(tasks, t)
			}
		}
		it.Tasks = tasks
		return it, nil
	}
	return models.Item{}, ErrNotFound
}

// CreateItem assigns the next item id and prepends the candidate to the
// backlog. Candidates are stored as given; this is a mock, not a
// validator.
func (s *Store) CreateItem(candidate models.Item) models.Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	candidate.ID = nextIntegerID(itemIDs(s.items))
	s.items = append([]models.Item{candidate}, s.items...)
	return candidate
}

// ReplaceItem overwrites the active item with the given id wholesale.
// The candidate is stored and returned verbatim, its own id included;
// the URL id only selects which record to overwrite.
func (s *Store) ReplaceItem(id int, candidate models.Item) (models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.activeItemIndex(id)
	if idx < 0 {
		return models.Item{}, ErrNotFound
	}

	items := append([]models.Item(nil), s.items...)
	items[idx] = candidate
	s.items = items
	return candidate, nil
}

// SoftDeleteItem stamps the active item with a deletion time. Returns
// false when the item is absent or already deleted.
func (s *Store) SoftDeleteItem(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.activeItemIndex(id)
	if idx < 0 {
		return false
	}

	now := time.Now()
	items := append([]models.Item(nil), s.items...)
	items[idx].DateDeleted = &now
	s.items = items
	return true
}

// CreateTask assigns the next task id within the parent item and prepends
// the candidate to the item's task list.
func (s *Store) CreateTask(itemID int, candidate models.Task) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.activeItemIndex(itemID)
	if idx < 0 {
		return models.Task{}, ErrNotFound
	}

	item := s.items[idx]
	candidate.ID = nextIntegerID(taskIDs(item.Tasks))
	item.Tasks = append([]models.Task{candidate}, item.Tasks...)

	items := append([]models.Item(nil), s.items...)
	items[idx] = item
	s.items = items
	return candidate, nil
}

// ReplaceTask overwrites the task whose id matches the candidate's id
// within the given item's task list.
func (s *Store) ReplaceTask(itemID int, candidate models.Task) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.activeItemIndex(itemID)
	if idx < 0 {
		return models.Task{}, ErrNotFound
	}

	item := s.items[idx]
	found := false
	tasks := append([]models.Task(nil), item.Tasks...)
	for i, t := range tasks {
		if t.ID == candidate.ID {
			tasks[i] = candidate
			found = true
		}
	}
	item.Tasks = tasks

	items := append([]models.Item(nil), s.items...)
	items[idx] = item
	s.items = items

	if !found {
		return candidate, ErrTaskNotFound
	}
	return candidate, nil
}

// SoftDeleteTask stamps a task within an item with a deletion time.
func (s *Store) SoftDeleteTask(itemID, taskID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.activeItemIndex(itemID)
	if idx < 0 {
		return ErrNotFound
	}

	item := s.items[idx]
	found := false
	now := time.Now()
	tasks := append([]models.Task(nil), item.Tasks...)
	for i, t := range tasks {
		if t.ID == taskID {
			tasks[i].DateDeleted = &now
			found = true
		}
	}
	item.Tasks = tasks

	items := append([]models.Item(nil), s.items...)
	items[idx] = item
	s.items = items

	if !found {
		return ErrTaskNotFound
	}
	return nil
}

// CreateComment assigns the next comment id within the parent item and
// prepends the candidate to the item's comment list.
func (s *Store) CreateComment(itemID int, candidate models.Comment) (models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.activeItemIndex(itemID)
	if idx < 0 {
		return models.Comment{}, ErrNotFound
	}

	item := s.items[idx]
	candidate.ID = nextIntegerID(commentIDs(item.Comments))
	item.Comments = append([]models.Comment{candidate}, item.Comments...)

	items := append([]models.Item(nil), s.items...)
	items[idx] = item
	s.items = items
	return candidate, nil
}

// SoftDeleteUser stamps the active public user with a deletion time. The
// credentialed list is not touched, so the user can still log in; the
// client never exercises that path.
func (s *Store) SoftDeleteUser(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, u := range s.users {
		if u.ID == id && u.Active() {
			now := time.Now()
			users := append([]models.User(nil), s.users...)
			users[i].DateDeleted = &now
			s.users = users
			return true
		}
	}
	return false
}

// ReplaceUser overwrites the active public user wholesale. The candidate
// is accepted as-is, whatever fields it carries.
func (s *Store) ReplaceUser(id int, candidate models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, u := range s.users {
		if u.ID == id && u.Active() {
			users := append([]models.User(nil), s.users...)
			users[i] = candidate
			s.users = users
			return candidate, nil
		}
	}
	return models.User{}, ErrNotFound
}

// FindUserByCredentials scans the credentialed users for a plaintext
// email/password match. Mock only; do not mistake this for security.
func (s *Store) FindUserByCredentials(email, password string) (models.UserWithAuth, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.usersWithAuth {
		if u.AuthInfo != nil && u.AuthInfo.Email == email && u.AuthInfo.Password == password {
			return u, nil
		}
	}
	return models.UserWithAuth{}, ErrNotFound
}

// RegisterUser appends a new credentialed user unless the email is
// already taken by any user, deleted or not.
func (s *Store) RegisterUser(email, password, fullName string) (models.UserWithAuth, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.usersWithAuth {
		if u.AuthInfo != nil && u.AuthInfo.Email == email {
			return models.UserWithAuth{}, ErrUserExists
		}
	}

	user := models.UserWithAuth{
		User: models.User{
			ID:       nextIntegerID(userIDs(s.usersWithAuth)),
			FullName: fullName,
		},
		AuthInfo: &models.UserAuthInfo{Email: email, Password: password},
	}
	s.usersWithAuth = append(append([]models.UserWithAuth(nil), s.usersWithAuth...), user)
	return user, nil
}

func userIDs(users []models.UserWithAuth) []int {
	ids := make([]int, len(users))
	for i, u := range users {
		ids[i] = u.ID
	}
	return ids
}

// activeItemIndex must be called with the lock held.
func (s *Store) activeItemIndex(id int) int {
	for i, it := range s.items {
		if it.ID == id && it.Active() {
			return i
		}
	}
	return -1
}
