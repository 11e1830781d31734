package storage

import (
	"context"
	"io"
	"strings"
)

// Folder names inside the bucket, one per entity type.
const (
	ProjectImagesFolder = "project-images"
	BlogImagesFolder    = "blog-images"
)

// Storage abstracts image persistence. The production implementation is
// S3-compatible object storage; LocalStorage serves development.
type Storage interface {
	// Save stores the object under key (e.g. "project-images/<uuid>.jpg")
	// and returns its public URL.
	Save(ctx context.Context, key string, data io.Reader, size int64, contentType string) (url string, err error)

	// Delete removes the object for key. Missing objects are not an error.
	Delete(ctx context.Context, key string) error

	// DeleteMany removes the objects for keys best-effort and returns the
	// first error encountered, if any.
	DeleteMany(ctx context.Context, keys []string) error
}

// ObjectKeyFromURL derives the storage key for a public image URL by
// splitting on the folder prefix, e.g.
// "https://cdn.example.com/projects/project-images/abc.jpg" with folder
// "project-images" yields "project-images/abc.jpg". Returns "" when the
// URL does not contain the folder.
func ObjectKeyFromURL(url, folder string) string {
	marker := folder + "/"
	idx := strings.LastIndex(url, marker)
	if idx < 0 {
		return ""
	}
	name := url[idx+len(marker):]
	if name == "" {
		return ""
	}
	return marker + name
}

// ObjectKeysFromURLs maps ObjectKeyFromURL over urls, dropping URLs that
// yield no key.
func ObjectKeysFromURLs(urls []string, folder string) []string {
	keys := make([]string, 0, len(urls))
	for _, u := range urls {
		if k := ObjectKeyFromURL(u, folder); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}
