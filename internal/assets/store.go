package assets

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// URLPrefix is the public path under which stored images are served.
const URLPrefix = "/uploads/images/"

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9.-]`)

// Store writes uploaded files under {root}/images and addresses them by
// relative URLs of the form /uploads/images/{filename}.
type Store struct {
	root string
}

// NewStore ensures the images directory exists and returns a store rooted at
// dir. Creation is idempotent, so concurrent first-writers race harmlessly.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("uploads dir required")
	}
	if err := os.MkdirAll(filepath.Join(dir, "images"), 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &Store{root: dir}, nil
}

// Save writes the full content of r to a fresh file and returns its URL.
// Filenames are {unix-millis}-{token}-{sanitized original name}; the token
// makes collisions overwhelmingly unlikely, so no locking is needed.
func (s *Store) Save(originalName string, r io.Reader) (string, error) {
	name := fmt.Sprintf("%d-%s-%s",
		time.Now().UnixMilli(),
		uuid.NewString()[:8],
		sanitizeName(originalName),
	)

	path := filepath.Join(s.root, "images", name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", name, err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("close %s: %w", name, err)
	}

	return URLPrefix + name, nil
}

// Delete removes the file behind url if it exists. Best effort: failures and
// foreign URLs are logged, never returned.
func (s *Store) Delete(url string) {
	path, ok := s.resolve(url)
	if !ok {
		log.Printf("[warn] op=asset_delete msg=unresolvable url=%s", url)
		return
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Printf("[warn] op=asset_delete error=%v url=%s", err, url)
	}
}

// FileInfo describes one stored file, for the orphan sweep.
type FileInfo struct {
	URL     string
	ModTime time.Time
}

// List returns every stored image with its modification time.
func (s *Store) List() ([]FileInfo, error) {
	entries, err := os.ReadDir(filepath.Join(s.root, "images"))
	if err != nil {
		return nil, fmt.Errorf("read uploads dir: %w", err)
	}

	out := make([]FileInfo, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		out = append(out, FileInfo{URL: URLPrefix + e.Name(), ModTime: info.ModTime()})
	}
	return out, nil
}

// resolve maps a public URL back to a path under the store root, rejecting
// anything outside the images directory.
func (s *Store) resolve(url string) (string, bool) {
	if !strings.HasPrefix(url, URLPrefix) {
		return "", false
	}
	name := filepath.Base(strings.TrimPrefix(url, URLPrefix))
	if name == "" || name == "." || name == ".." {
		return "", false
	}
	return filepath.Join(s.root, "images", name), true
}

func sanitizeName(name string) string {
	name = filepath.Base(name)
	name = unsafeChars.ReplaceAllString(name, "")
	if name == "" {
		name = "file"
	}
	return name
}
