package mockgen

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pt/internal/models"
)

func TestUsersPopulation(t *testing.T) {
	g := New(42)
	users := g.Users(20)

	require.Len(t, users, 21)

	me := users[0]
	assert.Equal(t, 21, me.ID, "me user takes the id after the regular population")
	assert.Equal(t, MeFullName, me.FullName)
	require.NotNil(t, me.AuthInfo)
	assert.Equal(t, MeEmail, me.AuthInfo.Email)
	assert.Equal(t, MockPassword, me.AuthInfo.Password)

	seen := make(map[int]bool)
	for _, u := range users[1:] {
		assert.GreaterOrEqual(t, u.ID, 1)
		assert.LessOrEqual(t, u.ID, 20)
		assert.False(t, seen[u.ID], "duplicate user id %d", u.ID)
		seen[u.ID] = true

		assert.NotEmpty(t, u.FullName)
		assert.True(t, strings.HasPrefix(u.Avatar, "images/avatars/"), "avatar %q", u.Avatar)
		assert.True(t, strings.HasSuffix(u.Avatar, ".png"), "avatar %q", u.Avatar)

		require.NotNil(t, u.AuthInfo)
		assert.Contains(t, u.AuthInfo.Email, "@")
		assert.Equal(t, MockPassword, u.AuthInfo.Password)
		assert.Nil(t, u.DateDeleted)
		assert.False(t, u.DateCreated.After(time.Now()))
	}
}

func TestUsersSameSeedReproducible(t *testing.T) {
	a := New(7).Users(10)
	b := New(7).Users(10)

	require.Len(t, b, len(a))
	for i := range a {
		assert.Equal(t, a[i].FullName, b[i].FullName)
		assert.Equal(t, a[i].Avatar, b[i].Avatar)
		assert.Equal(t, a[i].AuthInfo.Email, b[i].AuthInfo.Email)
	}
}

func TestItemsPopulation(t *testing.T) {
	g := New(99)
	users := models.StripAuth(g.Users(5))

	start := time.Now()
	items := g.Items(40, users)
	end := time.Now()

	require.Len(t, items, 40)

	userIDs := make(map[int]bool)
	for _, u := range users {
		userIDs[u.ID] = true
	}

	seen := make(map[int]bool)
	for _, it := range items {
		assert.GreaterOrEqual(t, it.ID, 1)
		assert.LessOrEqual(t, it.ID, 40)
		assert.False(t, seen[it.ID], "duplicate item id %d", it.ID)
		seen[it.ID] = true

		assert.NotEmpty(t, it.Title)
		assert.Contains(t, models.ItemTypes, it.Type)
		assert.Contains(t, models.Priorities, it.Priority)
		assert.Contains(t, models.Statuses, it.Status)
		assert.GreaterOrEqual(t, it.Estimate, 1)
		assert.LessOrEqual(t, it.Estimate, 24)
		assert.True(t, userIDs[it.Assignee.ID], "assignee %d not in population", it.Assignee.ID)

		assert.GreaterOrEqual(t, len(it.Tasks), 5)
		assert.LessOrEqual(t, len(it.Tasks), 20)
		assert.LessOrEqual(t, len(it.Comments), 5)

		checkTasks(t, it, start, end)

		for _, cm := range it.Comments {
			assert.True(t, userIDs[cm.User.ID], "comment user %d not in population", cm.User.ID)
			assert.NotEmpty(t, cm.Title)
		}
	}
}

func checkTasks(t *testing.T, it models.Item, start, end time.Time) {
	t.Helper()

	// Item creation dates can sit up to a month ahead, so task dates are
	// bounded by whichever of (item date, generation window) is wider.
	const slack = time.Second
	lower := it.DateCreated
	if start.Before(lower) {
		lower = start
	}
	lower = lower.Add(-slack)
	upper := it.DateCreated
	if end.After(upper) {
		upper = end
	}
	upper = upper.Add(slack)

	seen := make(map[int]bool)
	for _, task := range it.Tasks {
		assert.False(t, seen[task.ID], "duplicate task id %d in item %d", task.ID, it.ID)
		seen[task.ID] = true

		assert.False(t, task.DateCreated.Before(lower), "task created %v before %v", task.DateCreated, lower)
		assert.False(t, task.DateCreated.After(upper), "task created %v after %v", task.DateCreated, upper)

		if task.DateStart != nil {
			require.NotNil(t, task.DateEnd, "scheduled task %d has no end date", task.ID)
			assert.False(t, task.DateEnd.Before(*task.DateStart), "task %d ends before it starts", task.ID)
			assert.LessOrEqual(t, task.DateEnd.Sub(*task.DateStart), 60*time.Hour)
		} else {
			assert.Nil(t, task.DateEnd)
		}
	}
}
