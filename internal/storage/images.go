package storage

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ImageStore writes uploaded images below a media root. Stored paths are
// relative, slash-separated, and use a generated filename so user input
// never reaches the filesystem.
type ImageStore struct {
	root string
}

func NewImageStore(root string) *ImageStore {
	return &ImageStore{root: root}
}

// SaveRecipeImage writes the image under uploads/recipe/<uuid><ext> and
// returns the relative path. ext must include the leading dot.
func (s *ImageStore) SaveRecipeImage(data []byte, ext string) (string, error) {
	ext = strings.ToLower(ext)
	rel := path.Join("uploads", "recipe", uuid.New().String()+ext)

	full := filepath.Join(s.root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("create image directory: %w", err)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return "", fmt.Errorf("write image: %w", err)
	}

	return rel, nil
}

// Remove deletes a previously stored image. A missing file is not an error.
func (s *ImageStore) Remove(rel string) error {
	full := filepath.Join(s.root, filepath.FromSlash(rel))
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
