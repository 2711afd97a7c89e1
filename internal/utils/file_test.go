package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIsImageFile(t *testing.T) {
	cases := map[string]bool{
		"photo.jpg":      true,
		"photo.JPEG":     true,
		"scan.webp":      true,
		"closet/tee.png": true,
		"notes.txt":      false,
		"archive.tar.gz": false,
		"noextension":    false,
	}

	for name, want := range cases {
		if got := IsImageFile(name); got != want {
			t.Errorf("IsImageFile(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestListImageFiles(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "nested")
	if err := EnsureDir(sub); err != nil {
		t.Fatalf("EnsureDir failed: %v", err)
	}

	for _, name := range []string{"a.jpg", "b.txt", "nested/c.png"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0640); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	files, err := ListImageFiles(dir)
	if err != nil {
		t.Fatalf("ListImageFiles failed: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 image files, got %d: %v", len(files), files)
	}
	if filepath.Base(files[0]) != "a.jpg" || filepath.Base(files[1]) != "c.png" {
		t.Errorf("expected sorted order [a.jpg c.png], got %v", files)
	}
}

func TestFormatFileSize(t *testing.T) {
	cases := map[int64]string{
		512:     "512 B",
		2048:    "2.0 KB",
		1048576: "1.0 MB",
	}

	for size, want := range cases {
		if got := FormatFileSize(size); got != want {
			t.Errorf("FormatFileSize(%d) = %q, want %q", size, got, want)
		}
	}
}
