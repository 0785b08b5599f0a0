package memory

import (
	"time"

	"pt/internal/models"
)

// ItemFilter is a predicate over items; filters compose by chaining.
type ItemFilter func(models.Item) bool

// Active keeps items that have not been soft deleted.
func Active(i models.Item) bool {
	return i.Active()
}

// Open keeps active items that are open or reopened.
func Open(i models.Item) bool {
	return (i.Status == models.StatusOpen || i.Status == models.StatusReOpened) && i.Active()
}

// Closed keeps active items that are closed.
func Closed(i models.Item) bool {
	return i.Status == models.StatusClosed && i.Active()
}

// ByUser keeps items assigned to the given user, regardless of deletion
// state. A non-positive id is the identity filter, matching an absent
// query parameter.
func ByUser(userID int) ItemFilter {
	if userID <= 0 {
		return func(models.Item) bool { return true }
	}
	return func(i models.Item) bool {
		return i.Assignee.ID == userID
	}
}

// ByAssignee keeps active items assigned to the given user; this is the
// /myItems view.
func ByAssignee(userID int) ItemFilter {
	return func(i models.Item) bool {
		return i.Assignee.ID == userID && i.Active()
	}
}

// ByDateRange keeps items created within [start, end], inclusive.
func ByDateRange(start, end time.Time) ItemFilter {
	return func(i models.Item) bool {
		return !i.DateCreated.Before(start) && !i.DateCreated.After(end)
	}
}

// ByPriority keeps active items with the given priority.
func ByPriority(p models.Priority) ItemFilter {
	return func(i models.Item) bool {
		return i.Priority == p && i.Active()
	}
}

// ByType keeps active items of the given type.
func ByType(t models.ItemType) ItemFilter {
	return func(i models.Item) bool {
		return i.Type == t && i.Active()
	}
}

// Filter returns the items matching every given filter. The result is
// always non-nil so it serializes as a JSON array.
func Filter(items []models.Item, filters ...ItemFilter) []models.Item {
	out := make([]models.Item, 0, len(items))
next:
	for _, it := range items {
		for _, f := range filters {
			if !f(it) {
				continue next
			}
		}
		out = append(out, it)
	}
	return out
}

// StatusCountsResult aggregates open versus closed counts. CloseRate is
// nil when there are no active items; JSON renders that as null, which is
// exactly what the NaN division serialized to in the original backend.
type StatusCountsResult struct {
	ActiveItemsCount int      `json:"activeItemsCount"`
	CloseRate        *float64 `json:"closeRate"`
	ClosedItemsCount int      `json:"closedItemsCount"`
	OpenItemsCount   int      `json:"openItemsCount"`
}

// StatusCounts tallies open and closed items after applying the given
// filters.
func StatusCounts(items []models.Item, filters ...ItemFilter) StatusCountsResult {
	open := len(Filter(items, append([]ItemFilter{Open}, filters...)...))
	closed := len(Filter(items, append([]ItemFilter{Closed}, filters...)...))
	active := open + closed

	res := StatusCountsResult{
		ActiveItemsCount: active,
		ClosedItemsCount: closed,
		OpenItemsCount:   open,
	}
	if active > 0 {
		rate := float64(closed) / float64(active) * 100
		res.CloseRate = &rate
	}
	return res
}

// PriorityCountsResult buckets active items per priority.
type PriorityCountsResult struct {
	Critical int `json:"critical"`
	High     int `json:"high"`
	Low      int `json:"low"`
	Medium   int `json:"medium"`
}

// PriorityCounts tallies active items per priority after applying the
// given filters.
func PriorityCounts(items []models.Item, filters ...ItemFilter) PriorityCountsResult {
	count := func(p models.Priority) int {
		return len(Filter(items, append([]ItemFilter{ByPriority(p)}, filters...)...))
	}
	return PriorityCountsResult{
		Critical: count(models.PriorityCritical),
		High:     count(models.PriorityHigh),
		Low:      count(models.PriorityLow),
		Medium:   count(models.PriorityMedium),
	}
}

// TypeCountsResult buckets active items per item type.
type TypeCountsResult struct {
	Bug        int `json:"bug"`
	Chore      int `json:"chore"`
	Impediment int `json:"impediment"`
	PBI        int `json:"pbi"`
}

// TypeCounts tallies active items per type after applying the given
// filters.
func TypeCounts(items []models.Item, filters ...ItemFilter) TypeCountsResult {
	count := func(t models.ItemType) int {
		return len(Filter(items, append([]ItemFilter{ByType(t)}, filters...)...))
	}
	return TypeCountsResult{
		Bug:        count(models.ItemTypeBug),
		Chore:      count(models.ItemTypeChore),
		Impediment: count(models.ItemTypeImpediment),
		PBI:        count(models.ItemTypePBI),
	}
}

// ItemsForMonth splits one month bucket into its open and closed items.
type ItemsForMonth struct {
	Closed []models.Item `json:"closed"`
	Open   []models.Item `json:"open"`
}

// FilteredIssues is a monthly time series: one anchor date per calendar
// month from the oldest to the newest filtered item, and the open/closed
// split for each bucket.
type FilteredIssues struct {
	Categories []time.Time     `json:"categories"`
	Items      []ItemsForMonth `json:"items"`
}

// FilteredIssuesByMonth buckets the filtered items by calendar month and
// year of their creation date. The month range is derived from the
// filtered set itself, deletion state and status notwithstanding; only
// the per-bucket open/closed split applies those. An empty filtered set
// yields an explicitly empty series.
func FilteredIssuesByMonth(items []models.Item, filters ...ItemFilter) FilteredIssues {
	filtered := Filter(items, filters...)

	res := FilteredIssues{
		Categories: []time.Time{},
		Items:      []ItemsForMonth{},
	}
	if len(filtered) == 0 {
		return res
	}

	min, max := filtered[0].DateCreated, filtered[0].DateCreated
	for _, it := range filtered[1:] {
		if it.DateCreated.Before(min) {
			min = it.DateCreated
		}
		if it.DateCreated.After(max) {
			max = it.DateCreated
		}
	}

	for anchor := min; !anchor.After(max); anchor = anchor.AddDate(0, 1, 0) {
		res.Categories = append(res.Categories, anchor)

		month := ItemsForMonth{
			Closed: []models.Item{},
			Open:   []models.Item{},
		}
		for _, it := range filtered {
			if it.DateCreated.Month() != anchor.Month() || it.DateCreated.Year() != anchor.Year() {
				continue
			}
			switch {
			case Open(it):
				month.Open = append(month.Open, it)
			case Closed(it):
				month.Closed = append(month.Closed, it)
			}
		}
		res.Items = append(res.Items, month)
	}

	return res
}
