package models

import "time"

// ItemType classifies a backlog item.
type ItemType string

// Priority ranks how urgently an item should be handled.
type Priority string

// Status tracks an item through its lifecycle.
type Status string

const (
	ItemTypeBug        ItemType = "Bug"
	ItemTypeChore      ItemType = "Chore"
	ItemTypeImpediment ItemType = "Impediment"
	ItemTypePBI        ItemType = "PBI"

	PriorityLow      Priority = "Low"
	PriorityMedium   Priority = "Medium"
	PriorityHigh     Priority = "High"
	PriorityCritical Priority = "Critical"

	StatusOpen     Status = "Open"
	StatusReOpened Status = "ReOpened"
	StatusClosed   Status = "Closed"
)

// Enum member lists, in the order the generator samples them.
var (
	ItemTypes  = []ItemType{ItemTypeBug, ItemTypeChore, ItemTypeImpediment, ItemTypePBI}
	Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical}
	Statuses   = []Status{StatusOpen, StatusReOpened, StatusClosed}
)

// User is the public view of a tracker user. A nil DateDeleted means the
// user is active; soft deletion only ever sets the timestamp.
type User struct {
	ID           int        `json:"id"`
	FullName     string     `json:"fullName"`
	Title        string     `json:"title,omitempty"`
	Avatar       string     `json:"avatar"`
	DateCreated  time.Time  `json:"dateCreated"`
	DateModified time.Time  `json:"dateModified"`
	DateDeleted  *time.Time `json:"dateDeleted,omitempty"`
}

// Active reports whether the user has not been soft deleted.
func (u User) Active() bool {
	return u.DateDeleted == nil
}

// UserAuthInfo carries the mock credentials of a user. Plaintext on
// purpose: this backend fakes authentication for a demo client.
type UserAuthInfo struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserWithAuth is the server-side view of a user, credentials included.
// It never leaves the process except through /auth and /register.
type UserWithAuth struct {
	User
	AuthInfo *UserAuthInfo `json:"authInfo,omitempty"`
}

// StripAuth returns the public view of users with credentials removed.
func StripAuth(users []UserWithAuth) []User {
	public := make([]User, len(users))
	for i, u := range users {
		public[i] = u.User
	}
	return public
}

// Item is a backlog item with its owned tasks and comments. Assignee is a
// value snapshot of the user at creation time, not a live reference, so
// later user edits do not rewrite historical items.
type Item struct {
	ID           int        `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description,omitempty"`
	Type         ItemType   `json:"type"`
	Estimate     int        `json:"estimate"`
	Priority     Priority   `json:"priority"`
	Status       Status     `json:"status"`
	Assignee     User       `json:"assignee"`
	Tasks        []Task     `json:"tasks"`
	Comments     []Comment  `json:"comments"`
	DateCreated  time.Time  `json:"dateCreated"`
	DateModified time.Time  `json:"dateModified"`
	DateDeleted  *time.Time `json:"dateDeleted,omitempty"`
}

// Active reports whether the item has not been soft deleted.
func (i Item) Active() bool {
	return i.DateDeleted == nil
}

// Task is a unit of work inside an item. Its id is only unique among the
// sibling tasks of the same item. DateStart/DateEnd are set only when the
// task was scheduled.
type Task struct {
	ID           int        `json:"id"`
	Title        string     `json:"title"`
	Completed    bool       `json:"completed"`
	DateCreated  time.Time  `json:"dateCreated"`
	DateModified time.Time  `json:"dateModified"`
	DateStart    *time.Time `json:"dateStart,omitempty"`
	DateEnd      *time.Time `json:"dateEnd,omitempty"`
	DateDeleted  *time.Time `json:"dateDeleted,omitempty"`
}

// Active reports whether the task has not been soft deleted.
func (t Task) Active() bool {
	return t.DateDeleted == nil
}

// Comment is a remark on an item. User is a value snapshot, like
// Item.Assignee.
type Comment struct {
	ID           int        `json:"id"`
	Title        string     `json:"title"`
	User         User       `json:"user"`
	DateCreated  time.Time  `json:"dateCreated"`
	DateModified time.Time  `json:"dateModified"`
	DateDeleted  *time.Time `json:"dateDeleted,omitempty"`
}

// ItemSummary is the flattened row served by /summaries.
type ItemSummary struct {
	ID             int       `json:"id"`
	Title          string    `json:"title"`
	Type           ItemType  `json:"type"`
	Priority       Priority  `json:"priority"`
	Estimate       int       `json:"estimate"`
	Status         Status    `json:"status"`
	AssigneeID     int       `json:"assigneeId"`
	AssigneeName   string    `json:"assigneeName"`
	AssigneeAvatar string    `json:"assigneeAvatar"`
	DateCreated    time.Time `json:"dateCreated"`
}

// Summarize flattens an item into its summary row.
func Summarize(i Item) ItemSummary {
	return ItemSummary{
		ID:             i.ID,
		Title:          i.Title,
		Type:           i.Type,
		Priority:       i.Priority,
		Estimate:       i.Estimate,
		Status:         i.Status,
		AssigneeID:     i.Assignee.ID,
		AssigneeName:   i.Assignee.FullName,
		AssigneeAvatar: i.Assignee.Avatar,
		DateCreated:    i.DateCreated,
	}
}

// AuthToken is handed out on successful login or registration. The token
// is an opaque GUID; nothing ever checks it, which is all a mock needs.
type AuthToken struct {
	AccessToken string    `json:"access_token"`
	DateExpires time.Time `json:"dateExpires"`
}

// LoginModel is the credentials payload of POST /auth.
type LoginModel struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterModel is the sign-up payload of POST /register.
type RegisterModel struct {
	Username string `json:"username"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
}
