// Package cloud is the client's single read/write surface for bookmark
// data. It keeps everything in memory and persists changes to the remote
// API when it is reachable and the user is logged in, and always to the
// local store.
//
// Background persistence never reports failures to the caller; they are
// logged. Foreground actions such as login or saving the default theme
// return their errors.
package cloud

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"bookmarkhub/internal/contextutil"
	"bookmarkhub/internal/dnd"
	"bookmarkhub/internal/items"
	"bookmarkhub/internal/localstore"
	"bookmarkhub/internal/model"
	"bookmarkhub/internal/remote"
	"bookmarkhub/internal/session"
	"bookmarkhub/internal/tree"
)

// DefaultPassword is the local-mode password until one is set.
const DefaultPassword = "admin"

var (
	// ErrUnauthorized is returned for a wrong password or a missing login.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrFileNotFound is returned when no tier has the requested file.
	ErrFileNotFound = errors.New("file not found")
)

// Options tune a Store. Zero values pick the defaults.
type Options struct {
	// SaveDebounce is the quiet period before a change is persisted.
	SaveDebounce time.Duration
}

// Store is safe for concurrent use.
type Store struct {
	api   remote.API
	local *localstore.Store
	sess  *session.Session
	now   func() time.Time

	mu           sync.Mutex
	forest       *tree.Forest
	items        *items.Collection
	theme        model.ThemeConfig
	defaultTheme *model.ThemeConfig

	categorySaver *Debouncer
	itemSaver     *Debouncer
}

// New creates a Store. api may be nil for a client that never goes online.
// ctx is used for persists triggered by the debounce timer.
func New(ctx context.Context, api remote.API, local *localstore.Store, sess *session.Session, opts Options) *Store {
	if opts.SaveDebounce <= 0 {
		opts.SaveDebounce = 500 * time.Millisecond
	}
	s := &Store{
		api:    api,
		local:  local,
		sess:   sess,
		now:    time.Now,
		forest: tree.New(nil),
		items:  items.New(nil),
		theme:  model.DefaultTheme(),
	}
	s.categorySaver = NewDebouncer(ctx, opts.SaveDebounce, s.persistCategories)
	s.itemSaver = NewDebouncer(ctx, opts.SaveDebounce, s.persistItems)
	return s
}

// Load decides between cloud and local mode and fills the in-memory state.
func (s *Store) Load(ctx context.Context) error {
	logger := contextutil.LoggerFromContext(ctx)

	var data remote.Data
	cloud := false
	if s.api != nil {
		if err := s.api.Ping(ctx); err != nil {
			logger.InfoContext(ctx, "remote unreachable, working locally", "error", err)
		} else if d, err := s.api.GetData(ctx); err != nil {
			logger.WarnContext(ctx, "failed to fetch remote data, working locally", "error", err)
		} else {
			data, cloud = d, true
		}
	}
	s.sess.SetCloud(cloud)

	var token string
	if err := s.local.Load(ctx, localstore.KeyAuth, &token); err == nil {
		s.sess.SetToken(token)
	}

	cats := data.Categories
	if len(cats) == 0 {
		cats = s.cachedCategories(ctx)
	}
	list := data.Items
	if len(list) == 0 {
		list = s.cachedItems(ctx)
	}

	var defaultTheme *model.ThemeConfig
	theme := model.DefaultTheme()
	if cloud {
		defaultTheme = data.DefaultTheme
		if defaultTheme != nil {
			if err := s.local.Save(ctx, localstore.KeyDefaultTheme, defaultTheme); err != nil {
				logger.WarnContext(ctx, "failed to cache default theme", "error", err)
			}
		}
	} else {
		defaultTheme = s.cachedTheme(ctx, localstore.KeyDefaultTheme)
	}
	if defaultTheme != nil {
		theme = *defaultTheme
	}
	userKey := localstore.KeyTheme
	if cloud {
		userKey = localstore.KeyUserTheme
	}
	if t := s.cachedTheme(ctx, userKey); t != nil {
		theme = *t
	}

	s.mu.Lock()
	s.forest = tree.New(cats)
	s.items = items.New(list)
	s.theme = theme
	s.defaultTheme = defaultTheme
	s.mu.Unlock()

	logger.InfoContext(ctx, "bookmarks loaded", "cloud", cloud, "categories", len(cats), "items", len(list))
	return nil
}

func (s *Store) cachedCategories(ctx context.Context) []model.Category {
	var cats []model.Category
	err := s.local.Load(ctx, localstore.KeyCategories, &cats)
	if err == nil {
		return cats
	}
	if !errors.Is(err, localstore.ErrNotFound) {
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "failed to read cached categories", "error", err)
	}
	return model.SampleCategories()
}

func (s *Store) cachedItems(ctx context.Context) []model.BookmarkItem {
	var list []model.BookmarkItem
	err := s.local.Load(ctx, localstore.KeyItems, &list)
	if err == nil {
		return list
	}
	if !errors.Is(err, localstore.ErrNotFound) {
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "failed to read cached items", "error", err)
	}
	return model.SampleItems(s.now())
}

func (s *Store) cachedTheme(ctx context.Context, key string) *model.ThemeConfig {
	var t model.ThemeConfig
	if err := s.local.Load(ctx, key, &t); err != nil {
		return nil
	}
	if err := t.Validate(); err != nil {
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "ignoring invalid cached theme", "key", key, "error", err)
		return nil
	}
	return &t
}

// Session returns the session the store syncs with.
func (s *Store) Session() *session.Session {
	return s.sess
}

// Flush persists pending changes now.
func (s *Store) Flush(ctx context.Context) {
	s.categorySaver.Flush(ctx)
	s.itemSaver.Flush(ctx)
}

// Sync persists both lists now, whether or not they changed.
func (s *Store) Sync(ctx context.Context) {
	s.categorySaver.Schedule()
	s.itemSaver.Schedule()
	s.Flush(ctx)
}

// Close flushes pending changes and releases the local store.
func (s *Store) Close(ctx context.Context) error {
	s.categorySaver.Close(ctx)
	s.itemSaver.Close(ctx)
	return s.local.Close()
}

func (s *Store) persistCategories(ctx context.Context) {
	logger := contextutil.LoggerFromContext(ctx)
	cats := s.Categories()
	if s.api != nil && s.sess.CanSync() {
		if err := s.api.SaveCategories(ctx, cats); err != nil {
			logger.WarnContext(ctx, "failed to sync categories", "error", err)
		}
	}
	if err := s.local.Save(ctx, localstore.KeyCategories, cats); err != nil {
		logger.WarnContext(ctx, "failed to cache categories", "error", err)
	}
}

func (s *Store) persistItems(ctx context.Context) {
	logger := contextutil.LoggerFromContext(ctx)
	list := s.Items()
	if s.api != nil && s.sess.CanSync() {
		if err := s.api.SaveItems(ctx, list); err != nil {
			logger.WarnContext(ctx, "failed to sync items", "error", err)
		}
	}
	if err := s.local.Save(ctx, localstore.KeyItems, list); err != nil {
		logger.WarnContext(ctx, "failed to cache items", "error", err)
	}
}

// Categories returns a copy of every category.
func (s *Store) Categories() []model.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.forest.Categories()
}

// SetCategories replaces the category list and schedules a persist.
func (s *Store) SetCategories(cats []model.Category) {
	s.mu.Lock()
	s.forest = tree.New(cats)
	s.mu.Unlock()
	s.categorySaver.Schedule()
}

// Items returns a copy of every item.
func (s *Store) Items() []model.BookmarkItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items.Items()
}

// SetItems replaces the item list and schedules a persist.
func (s *Store) SetItems(list []model.BookmarkItem) {
	s.mu.Lock()
	s.items = items.New(list)
	s.mu.Unlock()
	s.itemSaver.Schedule()
}

// Category looks up a category.
func (s *Store) Category(id string) (model.Category, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.forest.Category(id)
}

// Children returns parentID's children in display order.
func (s *Store) Children(parentID *string) []model.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.forest.Children(parentID)
}

// DescendantIDs returns id and everything below it.
func (s *Store) DescendantIDs(id string) map[string]struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.forest.DescendantIDs(id)
}

// Path returns the breadcrumb from the root to id.
func (s *Store) Path(id string) []model.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.forest.Path(id)
}

// Flatten returns the visible tree rows.
func (s *Store) Flatten(expanded map[string]bool) []tree.Node {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.forest.Flatten(expanded)
}

// AddCategory creates a category at the end of parentID's children.
func (s *Store) AddCategory(name string, parentID *string) (model.Category, error) {
	s.mu.Lock()
	c, err := s.forest.Add(name, parentID)
	s.mu.Unlock()
	if err != nil {
		return model.Category{}, err
	}
	s.categorySaver.Schedule()
	return c, nil
}

// RenameCategory changes a category's name.
func (s *Store) RenameCategory(id, name string) error {
	s.mu.Lock()
	err := s.forest.Rename(id, name)
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.categorySaver.Schedule()
	return nil
}

// DeleteCategory removes id, its subtree, and every item filed under them.
// It returns the number of items removed.
func (s *Store) DeleteCategory(id string) (int, error) {
	s.mu.Lock()
	removed, err := s.forest.Delete(id)
	if err != nil {
		s.mu.Unlock()
		return 0, err
	}
	n := s.items.RemoveInCategories(removed)
	s.mu.Unlock()

	s.categorySaver.Schedule()
	if n > 0 {
		s.itemSaver.Schedule()
	}
	return n, nil
}

// MoveCategory reparents id under parentID at position order. Moves into
// the category's own subtree are rejected with tree.ErrCycle.
func (s *Store) MoveCategory(id string, parentID *string, order int) error {
	s.mu.Lock()
	err := s.forest.MoveCategory(id, parentID, order)
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.categorySaver.Schedule()
	return nil
}

// DragCategory commits a drop placement computed by the tree drag engine.
// It reports false when the placement no longer resolves to a valid move.
func (s *Store) DragCategory(activeID string, p dnd.Placement) (dnd.Move, bool, error) {
	mv, ok := dnd.Resolve(s, activeID, p)
	if !ok {
		return dnd.Move{}, false, nil
	}
	if err := s.MoveCategory(mv.CategoryID, mv.ParentID, mv.Order); err != nil {
		return dnd.Move{}, false, err
	}
	return mv, true, nil
}

// Item looks up an item.
func (s *Store) Item(id string) (model.BookmarkItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items.Get(id)
}

// View returns the filtered items in display order.
func (s *Store) View(f items.Filter) []model.BookmarkItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items.View(f)
}

// Stats counts items per type.
func (s *Store) Stats() items.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items.Stats()
}

// AddItem files a new item at the end of its category.
func (s *Store) AddItem(d items.Draft) (model.BookmarkItem, error) {
	s.mu.Lock()
	if _, ok := s.forest.Category(d.CategoryID); !ok {
		s.mu.Unlock()
		return model.BookmarkItem{}, fmt.Errorf("item category %q: %w", d.CategoryID, tree.ErrNotFound)
	}
	it, err := s.items.Add(d)
	s.mu.Unlock()
	if err != nil {
		return model.BookmarkItem{}, err
	}
	s.itemSaver.Schedule()
	return it, nil
}

// UpdateItem edits an item.
func (s *Store) UpdateItem(id string, d items.Draft) (model.BookmarkItem, error) {
	s.mu.Lock()
	if d.CategoryID != "" {
		if _, ok := s.forest.Category(d.CategoryID); !ok {
			s.mu.Unlock()
			return model.BookmarkItem{}, fmt.Errorf("item category %q: %w", d.CategoryID, tree.ErrNotFound)
		}
	}
	it, err := s.items.Update(id, d)
	s.mu.Unlock()
	if err != nil {
		return model.BookmarkItem{}, err
	}
	s.itemSaver.Schedule()
	return it, nil
}

// DeleteItem removes an item.
func (s *Store) DeleteItem(id string) error {
	s.mu.Lock()
	err := s.items.Delete(id)
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.itemSaver.Schedule()
	return nil
}

// ReorderItems moves activeID onto overID's slot within the view selected
// by f. It reports false when nothing changed.
func (s *Store) ReorderItems(f items.Filter, activeID, overID string) bool {
	s.mu.Lock()
	out, ok := dnd.ReorderItems(s.items.Items(), s.items.View(f), activeID, overID)
	if ok {
		s.items.Replace(out)
	}
	s.mu.Unlock()
	if ok {
		s.itemSaver.Schedule()
	}
	return ok
}

// Import appends categories and items, e.g. from a bookmark file. Imported
// root categories go after the existing ones and imported items after the
// existing items of their category.
func (s *Store) Import(cats []model.Category, list []model.BookmarkItem) {
	s.mu.Lock()
	existing := s.forest.Categories()
	rootOffset := len(s.forest.Children(nil))
	for _, c := range model.CloneCategories(cats) {
		if c.IsRoot() {
			c.Order += rootOffset
		}
		existing = append(existing, c)
	}
	s.forest = tree.New(existing)

	all := s.items.Items()
	next := make(map[string]int)
	for _, it := range all {
		next[it.CategoryID] = max(next[it.CategoryID], it.Order+1)
	}
	for _, it := range list {
		it.Order += next[it.CategoryID]
		all = append(all, it)
	}
	s.items = items.New(all)
	s.mu.Unlock()

	s.categorySaver.Schedule()
	s.itemSaver.Schedule()
}
