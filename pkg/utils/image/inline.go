package image

import (
	"encoding/base64"
	"fmt"
	"io"
	"strings"
)

const (
	MaxInlineSize = 5 * 1024 * 1024 // 5MB
)

var AllowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// Inline reads an image and returns it as a base64 data URL, the only
// form of image processing the catalog performs. Records store either
// these payloads or plain remote URLs.
func Inline(src io.Reader, contentType string) (string, error) {
	if !AllowedImageTypes[contentType] {
		return "", fmt.Errorf("invalid file type %q, allowed types are: jpeg, png, webp", contentType)
	}

	data, err := io.ReadAll(io.LimitReader(src, MaxInlineSize+1))
	if err != nil {
		return "", fmt.Errorf("could not read image: %v", err)
	}
	if len(data) > MaxInlineSize {
		return "", fmt.Errorf("file size too large, maximum size is %d bytes", MaxInlineSize)
	}

	encoded := base64.StdEncoding.EncodeToString(data)
	return fmt.Sprintf("data:%s;base64,%s", contentType, encoded), nil
}

// ValidEntry reports whether an image entry is acceptable for a
// property record: a remote URL or an inlined data payload.
func ValidEntry(entry string) bool {
	entry = strings.TrimSpace(entry)
	if entry == "" {
		return false
	}
	return strings.HasPrefix(entry, "http://") ||
		strings.HasPrefix(entry, "https://") ||
		strings.HasPrefix(entry, "data:image/")
}
