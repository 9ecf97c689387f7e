// Package blob stores uploaded image bytes on disk, keyed by storage key.
// Layout: <base>/images/<key> and <base>/images/<key>.thumb
package blob

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// BaseDirEnv is the env var override for the blob base dir (for testing).
	BaseDirEnv = "ASSETDECK_DATA_DIR"
	// DefaultBase is the default base under the user's home.
	DefaultBase = ".assetdeck"

	imagesSubdir = "images"
	thumbSuffix  = ".thumb"
)

// Store reads and writes image blobs under a base directory.
type Store struct {
	baseDir string
}

// NewStore creates a store rooted at the user's home + DefaultBase, or at
// the path in ASSETDECK_DATA_DIR if set.
func NewStore() (*Store, error) {
	base := os.Getenv(BaseDirEnv)
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, DefaultBase)
	}
	return NewStoreAt(base)
}

// NewStoreAt creates a store rooted at base, creating the images dir.
func NewStoreAt(base string) (*Store, error) {
	if err := os.MkdirAll(filepath.Join(base, imagesSubdir), 0o755); err != nil {
		return nil, err
	}
	return &Store{baseDir: base}, nil
}

// BaseDir returns the store root.
func (s *Store) BaseDir() string {
	return s.baseDir
}

// Put writes the original and thumbnail bytes for a key. The thumbnail may
// be nil when the original was already small enough.
func (s *Store) Put(key string, original, thumb []byte) error {
	if err := os.WriteFile(s.path(key), original, 0o644); err != nil {
		return err
	}
	if thumb != nil {
		return os.WriteFile(s.path(key)+thumbSuffix, thumb, 0o644)
	}
	return nil
}

// Get reads the original bytes for a key.
func (s *Store) Get(key string) ([]byte, error) {
	return os.ReadFile(s.path(key))
}

// GetThumb reads the thumbnail for a key, falling back to the original when
// no separate thumbnail was written.
func (s *Store) GetThumb(key string) ([]byte, error) {
	b, err := os.ReadFile(s.path(key) + thumbSuffix)
	if err == nil {
		return b, nil
	}
	return s.Get(key)
}

// Delete removes the blob and its thumbnail. Missing files are not an error.
func (s *Store) Delete(key string) error {
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return err
	}
	if err := os.Remove(s.path(key) + thumbSuffix); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *Store) path(key string) string {
	// Keys are uuids and must not contain path separators.
	key = strings.ReplaceAll(key, string(filepath.Separator), "")
	return filepath.Join(s.baseDir, imagesSubdir, key)
}
