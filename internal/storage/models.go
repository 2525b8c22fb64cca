package storage

import "strings"

// Keys of the shared namespace.
const (
	KeyCategories   = "categories"
	KeyItems        = "items"
	KeySettings     = "settings"
	KeyDefaultTheme = "defaultTheme"
	KeyPassword     = "password"

	// FileKeyPrefix starts every uploaded file key: file_<ms>_<random>.
	FileKeyPrefix = "file_"
)

// IsFileKey reports whether key holds an uploaded file.
func IsFileKey(key string) bool {
	return strings.HasPrefix(key, FileKeyPrefix)
}

// FileRecord is a file stored in the client-side file database.
type FileRecord struct {
	ID        string
	Name      string
	Type      string
	Data      string // base64 data URL
	CreatedAt int64  // unix ms
}
