package media

import (
	"os"
	"path/filepath"
)

// Resolver loads photo and audio files by opaque reference. The quiz engine
// only carries refs; this is the single place that touches media bytes.
// Absence is not an error — a question with an unresolvable ref simply
// presents without media.
type Resolver struct {
	root string
}

// NewResolver creates a Resolver over the given media directory.
func NewResolver(root string) *Resolver {
	return &Resolver{root: root}
}

// LoadImage returns the photo bytes for ref, or ok=false when the ref is
// empty, escapes the media directory, or the file is missing.
func (r *Resolver) LoadImage(ref string) ([]byte, bool) {
	return r.load(ref)
}

// LoadAudio returns the recording bytes for ref, with the same absence
// semantics as LoadImage.
func (r *Resolver) LoadAudio(ref string) ([]byte, bool) {
	return r.load(ref)
}

// Exists reports whether ref resolves to a stored file.
func (r *Resolver) Exists(ref string) bool {
	p, ok := r.path(ref)
	if !ok {
		return false
	}
	info, err := os.Stat(p)
	return err == nil && info.Mode().IsRegular()
}

func (r *Resolver) load(ref string) ([]byte, bool) {
	p, ok := r.path(ref)
	if !ok {
		return nil, false
	}
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, false
	}
	return data, true
}

// path maps a ref to a file path under root. Refs are stored as relative
// paths; anything resolving outside root is rejected.
func (r *Resolver) path(ref string) (string, bool) {
	if ref == "" || r.root == "" {
		return "", false
	}
	p := filepath.Join(r.root, filepath.Clean("/"+ref))
	rel, err := filepath.Rel(r.root, p)
	if err != nil || rel == ".." || filepath.IsAbs(rel) {
		return "", false
	}
	return p, true
}

// DefaultMediaDir resolves the media directory next to the database:
// 1. KEEPSAKE_MEDIA environment variable
// 2. $XDG_DATA_HOME/keepsake/media
// 3. ~/.local/share/keepsake/media
func DefaultMediaDir() (string, error) {
	if p := os.Getenv("KEEPSAKE_MEDIA"); p != "" {
		return p, os.MkdirAll(p, 0o755)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "keepsake", "media")
	return p, os.MkdirAll(p, 0o755)
}
