package taskdoc

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"pkg.jsn.cam/fanreduce/pkg/fanreduce"
)

// Store keeps task documents as <id>.md files in one directory, with
// archived documents under an archive/ subdirectory.
type Store struct {
	dir string
}

// NewStore opens a document store rooted at dir, creating it if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create task document directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Save writes the document atomically via a temp file and rename.
func (s *Store) Save(doc Doc) error {
	data, err := Format(doc)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, ".taskdoc-*.tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.path(doc.Meta.ID))
}

// Load reads the document with the given ID.
func (s *Store) Load(id string) (Doc, error) {
	data, err := os.ReadFile(s.path(id))
	if errors.Is(err, os.ErrNotExist) {
		return Doc{}, fanreduce.ErrDocNotFound
	}
	if err != nil {
		return Doc{}, err
	}
	return Parse(data)
}

// List returns all non-archived documents in filename order. Documents
// that fail to parse are skipped with a warning.
func (s *Store) List() ([]Doc, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}

	var docs []Doc
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			log.Printf("[TASKDOC] Warning: Failed to read %s: %v", entry.Name(), err)
			continue
		}
		doc, err := Parse(data)
		if err != nil {
			log.Printf("[TASKDOC] Warning: Skipping malformed document %s: %v", entry.Name(), err)
			continue
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// Delete removes the document with the given ID.
func (s *Store) Delete(id string) error {
	err := os.Remove(s.path(id))
	if errors.Is(err, os.ErrNotExist) {
		return fanreduce.ErrDocNotFound
	}
	return err
}

// Archive moves the document into archive/, never overwriting: an
// occupied name gets " (1)", " (2)", ... appended before the extension.
// Returns the destination path.
func (s *Store) Archive(id string) (string, error) {
	src := s.path(id)
	if _, err := os.Stat(src); errors.Is(err, os.ErrNotExist) {
		return "", fanreduce.ErrDocNotFound
	} else if err != nil {
		return "", err
	}

	archiveDir := filepath.Join(s.dir, "archive")
	if err := os.MkdirAll(archiveDir, 0755); err != nil {
		return "", err
	}

	dest, err := uniqueDest(filepath.Join(archiveDir, id+".md"))
	if err != nil {
		return "", err
	}
	if err := os.Rename(src, dest); err != nil {
		return "", err
	}
	return dest, nil
}

func (s *Store) path(id string) string {
	return filepath.Join(s.dir, id+".md")
}

// uniqueDest returns dest when free, otherwise the first free
// "name (n).ext" variant.
func uniqueDest(dest string) (string, error) {
	if _, err := os.Stat(dest); errors.Is(err, os.ErrNotExist) {
		return dest, nil
	}

	ext := filepath.Ext(dest)
	stem := strings.TrimSuffix(dest, ext)
	for n := 1; n < 1000; n++ {
		candidate := fmt.Sprintf("%s (%d)%s", stem, n, ext)
		if _, err := os.Stat(candidate); errors.Is(err, os.ErrNotExist) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("no unique archive name for %s", dest)
}
