package blob

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestPutGetRoundTrip(t *testing.T) {
	s, err := NewStoreAt(t.TempDir())
	if err != nil {
		t.Fatalf("NewStoreAt: %v", err)
	}

	orig := []byte("original-bytes")
	thumb := []byte("thumb-bytes")
	if err := s.Put("abc123", orig, thumb); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, err := s.Get("abc123")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !bytes.Equal(got, orig) {
		t.Errorf("Get = %q, want %q", got, orig)
	}

	gotThumb, err := s.GetThumb("abc123")
	if err != nil {
		t.Fatalf("GetThumb: %v", err)
	}
	if !bytes.Equal(gotThumb, thumb) {
		t.Errorf("GetThumb = %q, want %q", gotThumb, thumb)
	}
}

func TestGetThumbFallsBackToOriginal(t *testing.T) {
	s, err := NewStoreAt(t.TempDir())
	if err != nil {
		t.Fatalf("NewStoreAt: %v", err)
	}
	if err := s.Put("no-thumb", []byte("only-original"), nil); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, err := s.GetThumb("no-thumb")
	if err != nil {
		t.Fatalf("GetThumb: %v", err)
	}
	if string(got) != "only-original" {
		t.Errorf("GetThumb = %q, want original", got)
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	s, err := NewStoreAt(t.TempDir())
	if err != nil {
		t.Fatalf("NewStoreAt: %v", err)
	}
	if err := s.Put("k", []byte("x"), []byte("y")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := s.Delete("k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := s.Delete("k"); err != nil {
		t.Errorf("second Delete: %v", err)
	}
	if _, err := s.Get("k"); err == nil {
		t.Error("Get after Delete should fail")
	}
}

func TestKeysCannotEscapeBase(t *testing.T) {
	base := t.TempDir()
	s, err := NewStoreAt(base)
	if err != nil {
		t.Fatalf("NewStoreAt: %v", err)
	}
	if err := s.Put("../escape", []byte("x"), nil); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if _, err := os.Stat(filepath.Join(base, "escape")); err == nil {
		t.Error("key escaped the images subdir")
	}
	if _, err := os.Stat(filepath.Join(base, "images", "..escape")); err != nil {
		t.Errorf("sanitized key not written where expected: %v", err)
	}
}
