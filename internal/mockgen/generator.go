// Package mockgen builds the synthetic dataset the server seeds its store
// with: a population of users and a backlog of items with nested tasks and
// comments. All randomness flows through a single seeded faker, so two
// generators with the same seed produce the same population.
package mockgen

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"pt/internal/models"
)

// Default population sizes used by the server entrypoint.
const (
	DefaultUserCount = 20
	DefaultItemCount = 200
)

// Fixed demo credentials. This is a mock backend; the password is not a
// secret and never will be.
const (
	MockPassword = "nuvious"
	MeFullName   = "Alex Ziskind"
	MeEmail      = "alex@email.com"
	meAvatar     = "images/avatars/me/me.png"
)

// Generator produces synthetic users and items from a seeded random
// stream.
type Generator struct {
	faker *gofakeit.Faker
	title cases.Caser
}

// New returns a generator whose output is fully determined by seed.
func New(seed uint64) *Generator {
	return &Generator{
		faker: gofakeit.New(seed),
		title: cases.Title(language.AmericanEnglish),
	}
}

// Users builds count regular users with ids 1..count, then prepends the
// demo "me" user, which gets the next id so it is positionally first but
// numerically last.
func (g *Generator) Users(count int) []models.UserWithAuth {
	users := make([]models.UserWithAuth, 0, count+1)
	users = append(users, g.meUser(count))
	for i := 0; i < count; i++ {
		users = append(users, g.buildUser(i))
	}
	return users
}

// Items builds count items with ids 1..count, each assigned to a user
// sampled from the given population.
func (g *Generator) Items(count int, users []models.User) []models.Item {
	items := make([]models.Item, 0, count)
	for i := 0; i < count; i++ {
		items = append(items, g.buildItem(i, users))
	}
	return items
}

func (g *Generator) buildUser(index int) models.UserWithAuth {
	male := g.faker.Bool()
	first := g.faker.FirstName()
	last := g.faker.LastName()
	date := g.pastYear()

	pool := "females"
	if male {
		pool = "males"
	}

	return models.UserWithAuth{
		User: models.User{
			ID:           index + 1,
			FullName:     first + " " + last,
			Avatar:       fmt.Sprintf("images/avatars/%s/image-%d.png", pool, index+1),
			DateCreated:  date,
			DateModified: date,
		},
		AuthInfo: &models.UserAuthInfo{
			Email:    fmt.Sprintf("%s.%s@%s", first, last, g.faker.DomainName()),
			Password: MockPassword,
		},
	}
}

func (g *Generator) meUser(index int) models.UserWithAuth {
	date := g.pastYear()
	return models.UserWithAuth{
		User: models.User{
			ID:           index + 1,
			FullName:     MeFullName,
			Avatar:       meAvatar,
			DateCreated:  date,
			DateModified: date,
		},
		AuthInfo: &models.UserAuthInfo{
			Email:    MeEmail,
			Password: MockPassword,
		},
	}
}

func (g *Generator) buildItem(index int, users []models.User) models.Item {
	now := time.Now()
	// Anywhere between a year back and a month ahead, so the backlog has
	// both history and planned work.
	created := g.dateBetween(now.AddDate(-1, 0, 0), now.AddDate(0, 1, 0))

	return models.Item{
		ID:           index + 1,
		Title:        g.title.String(g.faker.BS()),
		Description:  g.faker.Sentence(10),
		Type:         models.ItemTypes[g.faker.Number(0, len(models.ItemTypes)-1)],
		Estimate:     g.faker.Number(1, 24),
		Priority:     models.Priorities[g.faker.Number(0, len(models.Priorities)-1)],
		Status:       models.Statuses[g.faker.Number(0, len(models.Statuses)-1)],
		Assignee:     g.sampleUser(users),
		Tasks:        g.buildTasks(created),
		Comments:     g.buildComments(users),
		DateCreated:  created,
		DateModified: created,
	}
}

func (g *Generator) buildTasks(from time.Time) []models.Task {
	count := g.faker.Number(5, 20)
	tasks := make([]models.Task, 0, count)
	for i := 0; i < count; i++ {
		tasks = append(tasks, g.buildTask(i, from))
	}
	return tasks
}

func (g *Generator) buildTask(index int, from time.Time) models.Task {
	now := time.Now()
	created := g.dateBetween(from, now)

	task := models.Task{
		ID:           index + 1,
		Title:        g.title.String(g.faker.BS()),
		Completed:    g.faker.Bool(),
		DateCreated:  created,
		DateModified: created,
	}

	if g.faker.Bool() {
		start := g.dateBetween(from, now)
		end := start.Add(time.Duration(g.faker.Number(0, 60)) * time.Hour)
		task.DateStart = &start
		task.DateEnd = &end
	}

	return task
}

func (g *Generator) buildComments(users []models.User) []models.Comment {
	count := g.faker.Number(0, 5)
	comments := make([]models.Comment, 0, count)
	for i := 0; i < count; i++ {
		comments = append(comments, g.buildComment(i, users))
	}
	return comments
}

func (g *Generator) buildComment(index int, users []models.User) models.Comment {
	date := g.pastYear()
	return models.Comment{
		ID:           index + 1,
		Title:        g.title.String(g.faker.LoremIpsumSentence(40)),
		User:         g.sampleUser(users),
		DateCreated:  date,
		DateModified: date,
	}
}

func (g *Generator) sampleUser(users []models.User) models.User {
	return users[g.faker.Number(0, len(users)-1)]
}

func (g *Generator) pastYear() time.Time {
	now := time.Now()
	return g.faker.DateRange(now.AddDate(-1, 0, 0), now)
}

// dateBetween tolerates reversed bounds; item creation dates may sit in
// the near future while task dates are sampled against now.
func (g *Generator) dateBetween(from, to time.Time) time.Time {
	if to.Before(from) {
		from, to = to, from
	}
	return g.faker.DateRange(from, to)
}
