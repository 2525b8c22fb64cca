package model

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"regexp"
)

// DefaultMIMEType is used when a file record carries no type.
const DefaultMIMEType = "application/octet-stream"

// ErrMalformedDataURL is returned when a stored payload is not a base64 data URL.
var ErrMalformedDataURL = errors.New("malformed data URL")

var dataURLPattern = regexp.MustCompile(`^data:(.+);base64,(.+)$`)

// StoredFile is an uploaded file kept whole as a base64 data URL.
type StoredFile struct {
	ID        string `json:"id,omitempty"`
	Data      string `json:"data"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	Size      int64  `json:"size,omitempty"`
	CreatedAt int64  `json:"createdAt"`
}

// EncodeDataURL builds a data URL from raw bytes.
func EncodeDataURL(mimeType string, raw []byte) string {
	if mimeType == "" {
		mimeType = DefaultMIMEType
	}
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(raw)
}

// DecodeDataURL splits a data URL into its MIME type and decoded bytes.
func DecodeDataURL(dataURL string) (string, []byte, error) {
	m := dataURLPattern.FindStringSubmatch(dataURL)
	if m == nil {
		return "", nil, ErrMalformedDataURL
	}
	raw, err := base64.StdEncoding.DecodeString(m[2])
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrMalformedDataURL, err)
	}
	return m[1], raw, nil
}

// ParseStoredFile decodes a stored file value. Values written by early
// versions are the bare data URL string rather than a JSON record; those are
// returned with default name and type.
func ParseStoredFile(id string, value []byte) StoredFile {
	var f StoredFile
	if err := json.Unmarshal(value, &f); err == nil && f.Data != "" {
		f.ID = id
		if f.Name == "" {
			f.Name = "file"
		}
		if f.Type == "" {
			f.Type = DefaultMIMEType
		}
		return f
	}
	return StoredFile{ID: id, Data: string(value), Name: "file", Type: DefaultMIMEType}
}

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// RandomBase36 returns n random lowercase base36 characters, the suffix
// format of generated file ids.
func RandomBase36(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = base36[rand.IntN(len(base36))]
	}
	return string(b)
}
