// Package items holds the bookmark item list: creation, edits, deletion,
// the filtered view, and file reference bookkeeping.
package items

import (
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"bookmarkhub/internal/model"
)

// ErrNotFound is returned when an item id is unknown.
var ErrNotFound = errors.New("item not found")

// Collection is an ordered list of bookmark items.
// It is not safe for concurrent use.
type Collection struct {
	items []model.BookmarkItem
	now   func() time.Time
	newID func() string
}

// New creates a Collection over a copy of items.
func New(items []model.BookmarkItem) *Collection {
	return &Collection{
		items: model.CloneItems(items),
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Items returns a copy of the items in storage order.
func (c *Collection) Items() []model.BookmarkItem {
	return model.CloneItems(c.items)
}

// Len returns the number of items.
func (c *Collection) Len() int {
	return len(c.items)
}

// Get looks up an item by id.
func (c *Collection) Get(id string) (model.BookmarkItem, bool) {
	i := c.index(id)
	if i < 0 {
		return model.BookmarkItem{}, false
	}
	return c.items[i], true
}

func (c *Collection) index(id string) int {
	return slices.IndexFunc(c.items, func(it model.BookmarkItem) bool { return it.ID == id })
}

// Draft is the user input for a new or edited item.
type Draft struct {
	Title      string
	CategoryID string
	Payload    model.Payload
}

// Add appends an item at the end of its category.
func (c *Collection) Add(d Draft) (model.BookmarkItem, error) {
	it := model.BookmarkItem{
		ID:         c.newID(),
		Title:      strings.TrimSpace(d.Title),
		CategoryID: d.CategoryID,
		CreatedAt:  c.now().UnixMilli(),
		Order:      c.nextOrder(d.CategoryID),
		Payload:    d.Payload,
	}
	if err := it.Validate(); err != nil {
		return model.BookmarkItem{}, err
	}
	c.items = append(c.items, it)
	return it, nil
}

// nextOrder is the order that places an item last in categoryID: the
// category's item count, or one past its highest order if deletions left
// gaps that would make the count collide.
func (c *Collection) nextOrder(categoryID string) int {
	n, top := 0, -1
	for _, it := range c.items {
		if it.CategoryID == categoryID {
			n++
			top = max(top, it.Order)
		}
	}
	return max(n, top+1)
}

// Update replaces an item's editable fields and bumps UpdatedAt. An item
// moved to another category goes to the end of it.
func (c *Collection) Update(id string, d Draft) (model.BookmarkItem, error) {
	i := c.index(id)
	if i < 0 {
		return model.BookmarkItem{}, ErrNotFound
	}
	it := c.items[i]
	it.Title = strings.TrimSpace(d.Title)
	if d.CategoryID != "" && d.CategoryID != it.CategoryID {
		it.CategoryID = d.CategoryID
		it.Order = c.nextOrder(d.CategoryID)
	}
	if d.Payload != nil {
		it.Payload = d.Payload
	}
	it.UpdatedAt = c.now().UnixMilli()
	if err := it.Validate(); err != nil {
		return model.BookmarkItem{}, err
	}
	c.items[i] = it
	return it, nil
}

// Delete removes one item.
func (c *Collection) Delete(id string) error {
	i := c.index(id)
	if i < 0 {
		return ErrNotFound
	}
	c.items = slices.Delete(c.items, i, i+1)
	return nil
}

// RemoveInCategories drops every item whose category is in ids and returns
// how many were removed.
func (c *Collection) RemoveInCategories(ids map[string]struct{}) int {
	before := len(c.items)
	c.items = slices.DeleteFunc(c.items, func(it model.BookmarkItem) bool {
		_, gone := ids[it.CategoryID]
		return gone
	})
	return before - len(c.items)
}

// Replace swaps the whole list, e.g. after a reorder.
func (c *Collection) Replace(items []model.BookmarkItem) {
	c.items = model.CloneItems(items)
}

// Filter narrows the view. Zero values match everything.
type Filter struct {
	// Categories restricts to items in these categories, usually the
	// selected category with its descendants.
	Categories map[string]struct{}
	Type       model.ItemType
	Query      string
}

// View returns the filtered items sorted by order.
func (c *Collection) View(f Filter) []model.BookmarkItem {
	query := strings.ToLower(strings.TrimSpace(f.Query))
	var out []model.BookmarkItem
	for _, it := range c.items {
		if f.Categories != nil {
			if _, ok := f.Categories[it.CategoryID]; !ok {
				continue
			}
		}
		if f.Type != "" && it.Type() != f.Type {
			continue
		}
		if query != "" && !matches(it, query) {
			continue
		}
		out = append(out, it)
	}
	SortByOrder(out)
	return out
}

func matches(it model.BookmarkItem, query string) bool {
	fields := []string{it.Title}
	switch p := it.Payload.(type) {
	case model.Website:
		fields = append(fields, p.URL)
	case model.Note:
		fields = append(fields, p.Content)
	case model.File:
		fields = append(fields, p.Name)
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}

// SortByOrder sorts in place by order, keeping ties in their current order.
func SortByOrder(items []model.BookmarkItem) {
	slices.SortStableFunc(items, func(a, b model.BookmarkItem) int {
		return a.Order - b.Order
	})
}

// Stats counts items per type.
type Stats struct {
	Total    int `json:"total"`
	Websites int `json:"websites"`
	Notes    int `json:"notes"`
	Files    int `json:"files"`
}

// Stats returns per-type counts over the whole list.
func (c *Collection) Stats() Stats {
	s := Stats{Total: len(c.items)}
	for _, it := range c.items {
		switch it.Type() {
		case model.TypeWebsite:
			s.Websites++
		case model.TypeNote:
			s.Notes++
		case model.TypeFile:
			s.Files++
		}
	}
	return s
}

// UsedFileIDs returns the file ids referenced by file items.
func (c *Collection) UsedFileIDs() map[string]struct{} {
	used := make(map[string]struct{})
	for _, it := range c.items {
		if f, ok := it.Payload.(model.File); ok && f.FileID != "" {
			used[f.FileID] = struct{}{}
		}
	}
	return used
}
