package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ItemType tags the variant of a BookmarkItem.
type ItemType string

const (
	TypeWebsite ItemType = "website"
	TypeNote    ItemType = "note"
	TypeFile    ItemType = "file"
)

// Valid reports whether t is one of the known item types.
func (t ItemType) Valid() bool {
	switch t {
	case TypeWebsite, TypeNote, TypeFile:
		return true
	}
	return false
}

// Payload is the type-specific part of a BookmarkItem.
// Only Website, Note and File implement it.
type Payload interface {
	Type() ItemType
	isPayload()
}

// Website is a link bookmark.
type Website struct {
	URL     string
	Favicon string
}

// Note is a free-text note.
type Note struct {
	Content string
}

// File references an uploaded file.
// LegacyData carries the inline base64 data URL of records written before
// files moved into the file database. It is read, never written for new items.
type File struct {
	Name       string
	MIMEType   string
	FileID     string
	LegacyData string
}

func (Website) Type() ItemType { return TypeWebsite }
func (Note) Type() ItemType    { return TypeNote }
func (File) Type() ItemType    { return TypeFile }

func (Website) isPayload() {}
func (Note) isPayload()    {}
func (File) isPayload()    {}

// BookmarkItem is a website, note or file attached to one category.
type BookmarkItem struct {
	ID         string
	Title      string
	CategoryID string
	CreatedAt  int64
	UpdatedAt  int64
	Order      int
	Payload    Payload
}

// Type returns the item's tag, or "" when no payload is set.
func (it BookmarkItem) Type() ItemType {
	if it.Payload == nil {
		return ""
	}
	return it.Payload.Type()
}

// Validate checks the fields every item must carry.
func (it BookmarkItem) Validate() error {
	if strings.TrimSpace(it.Title) == "" {
		return &ValidationError{Field: "title", Message: "cannot be empty"}
	}
	switch p := it.Payload.(type) {
	case nil:
		return &ValidationError{Field: "type", Message: "must be one of website, note, file"}
	case Website:
		if strings.TrimSpace(p.URL) == "" {
			return &ValidationError{Field: "url", Message: "cannot be empty for a website"}
		}
	case File:
		if p.FileID == "" && p.LegacyData == "" {
			return &ValidationError{Field: "fileId", Message: "cannot be empty for a file"}
		}
	}
	return nil
}

// itemWire is the flat JSON shape shared with the KV API and older clients.
type itemWire struct {
	ID         string   `json:"id"`
	Type       ItemType `json:"type"`
	Title      string   `json:"title"`
	CategoryID string   `json:"categoryId"`
	CreatedAt  int64    `json:"createdAt"`
	UpdatedAt  int64    `json:"updatedAt,omitempty"`
	Order      int      `json:"order"`

	URL     string `json:"url,omitempty"`
	Favicon string `json:"favicon,omitempty"`

	Content string `json:"content,omitempty"`

	FileName string `json:"fileName,omitempty"`
	FileType string `json:"fileType,omitempty"`
	FileID   string `json:"fileId,omitempty"`
	FileData string `json:"fileData,omitempty"`
}

// MarshalJSON writes the flat wire form with only the group matching the type.
func (it BookmarkItem) MarshalJSON() ([]byte, error) {
	w := itemWire{
		ID:         it.ID,
		Type:       it.Type(),
		Title:      it.Title,
		CategoryID: it.CategoryID,
		CreatedAt:  it.CreatedAt,
		UpdatedAt:  it.UpdatedAt,
		Order:      it.Order,
	}
	switch p := it.Payload.(type) {
	case Website:
		w.URL, w.Favicon = p.URL, p.Favicon
	case Note:
		w.Content = p.Content
	case File:
		w.FileName, w.FileType, w.FileID, w.FileData = p.Name, p.MIMEType, p.FileID, p.LegacyData
	case nil:
		return nil, fmt.Errorf("item %s has no payload", it.ID)
	}
	return json.Marshal(w)
}

// UnmarshalJSON reads the flat wire form. Fields that do not belong to the
// declared type are dropped.
func (it *BookmarkItem) UnmarshalJSON(data []byte) error {
	var w itemWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	var p Payload
	switch w.Type {
	case TypeWebsite:
		p = Website{URL: w.URL, Favicon: w.Favicon}
	case TypeNote:
		p = Note{Content: w.Content}
	case TypeFile:
		p = File{Name: w.FileName, MIMEType: w.FileType, FileID: w.FileID, LegacyData: w.FileData}
	default:
		return &ValidationError{Field: "type", Message: fmt.Sprintf("unknown item type %q", w.Type)}
	}
	*it = BookmarkItem{
		ID:         w.ID,
		Title:      w.Title,
		CategoryID: w.CategoryID,
		CreatedAt:  w.CreatedAt,
		UpdatedAt:  w.UpdatedAt,
		Order:      w.Order,
		Payload:    p,
	}
	return nil
}

// CloneItems returns a shallow copy of the slice. Payloads are values, so
// the copy is independent of the original.
func CloneItems(in []BookmarkItem) []BookmarkItem {
	if in == nil {
		return nil
	}
	out := make([]BookmarkItem, len(in))
	copy(out, in)
	return out
}
