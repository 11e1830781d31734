package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestObjectKeyFromURL(t *testing.T) {
	tests := []struct {
		url    string
		folder string
		want   string
	}{
		{"https://cdn.example.com/projects/project-images/abc.jpg", ProjectImagesFolder, "project-images/abc.jpg"},
		{"/uploads/blog-images/xyz.jpg", BlogImagesFolder, "blog-images/xyz.jpg"},
		{"https://cdn.example.com/projects/other/abc.jpg", ProjectImagesFolder, ""},
		{"https://cdn.example.com/projects/project-images/", ProjectImagesFolder, ""},
	}
	for _, tt := range tests {
		if got := ObjectKeyFromURL(tt.url, tt.folder); got != tt.want {
			t.Errorf("ObjectKeyFromURL(%q, %q) = %q, want %q", tt.url, tt.folder, got, tt.want)
		}
	}
}

func TestObjectKeysFromURLs_DropsUnmatched(t *testing.T) {
	urls := []string{
		"/uploads/project-images/a.jpg",
		"/uploads/unrelated/b.jpg",
		"/uploads/project-images/c.jpg",
	}
	keys := ObjectKeysFromURLs(urls, ProjectImagesFolder)
	if len(keys) != 2 {
		t.Fatalf("expected 2 keys, got %d: %v", len(keys), keys)
	}
	if keys[0] != "project-images/a.jpg" || keys[1] != "project-images/c.jpg" {
		t.Errorf("unexpected keys: %v", keys)
	}
}

func TestLocalStorage_SaveAndDelete(t *testing.T) {
	dir := t.TempDir()
	s := NewLocalStorage(dir, "/uploads")
	ctx := context.Background()

	url, err := s.Save(ctx, "project-images/test.jpg", strings.NewReader("image-bytes"), 11, "image/jpeg")
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if url != "/uploads/project-images/test.jpg" {
		t.Errorf("unexpected url %q", url)
	}

	data, err := os.ReadFile(filepath.Join(dir, "project-images", "test.jpg"))
	if err != nil {
		t.Fatalf("stored file not readable: %v", err)
	}
	if string(data) != "image-bytes" {
		t.Errorf("unexpected file content %q", data)
	}

	if err := s.Delete(ctx, "project-images/test.jpg"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "project-images", "test.jpg")); !os.IsNotExist(err) {
		t.Error("expected file to be removed")
	}

	// Deleting a missing object is not an error
	if err := s.Delete(ctx, "project-images/missing.jpg"); err != nil {
		t.Errorf("deleting missing object should not fail: %v", err)
	}
}

func TestLocalStorage_DeleteMany(t *testing.T) {
	dir := t.TempDir()
	s := NewLocalStorage(dir, "/uploads")
	ctx := context.Background()

	keys := []string{"blog-images/a.jpg", "blog-images/b.jpg"}
	for _, k := range keys {
		if _, err := s.Save(ctx, k, strings.NewReader("x"), 1, "image/jpeg"); err != nil {
			t.Fatalf("Save %s failed: %v", k, err)
		}
	}
	if err := s.DeleteMany(ctx, keys); err != nil {
		t.Fatalf("DeleteMany failed: %v", err)
	}
	for _, k := range keys {
		if _, err := os.Stat(filepath.Join(dir, k)); !os.IsNotExist(err) {
			t.Errorf("expected %s to be removed", k)
		}
	}
}
