package model

import "time"

// SampleCategories seeds a first run without a cache.
func SampleCategories() []Category {
	return []Category{
		{ID: "cat-1", Name: "Work", Order: 0},
		{ID: "cat-2", Name: "Study", Order: 1},
		{ID: "cat-3", Name: "Leisure", Order: 2},
		{ID: "cat-1-1", Name: "Project docs", ParentID: Ref("cat-1"), Order: 0},
		{ID: "cat-2-1", Name: "Programming", ParentID: Ref("cat-2"), Order: 0},
		{ID: "cat-2-2", Name: "Design", ParentID: Ref("cat-2"), Order: 1},
	}
}

// SampleItems seeds a first run without a cache.
func SampleItems(now time.Time) []BookmarkItem {
	ms := now.UnixMilli()
	return []BookmarkItem{
		{
			ID:         "item-1",
			Title:      "GitHub",
			CategoryID: "cat-1-1",
			CreatedAt:  ms,
			Order:      0,
			Payload:    Website{URL: "https://github.com"},
		},
		{
			ID:         "item-2",
			Title:      "Study notes",
			CategoryID: "cat-2-1",
			CreatedAt:  ms,
			Order:      0,
			Payload:    Note{Content: "A sample note for keeping important things.\n\nMultiple lines are fine."},
		},
		{
			ID:         "item-3",
			Title:      "Tailwind CSS",
			CategoryID: "cat-2-1",
			CreatedAt:  ms,
			Order:      1,
			Payload:    Website{URL: "https://tailwindcss.com"},
		},
	}
}
