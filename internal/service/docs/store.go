package docs

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"PolicyTone/pkg/util"
)

// FileStore reads meeting transcripts from a directory of UTF-8 text
// files. Each file is named after its meeting date, e.g. 2024-10-11.txt,
// so lexicographic filename order is chronological order.
type FileStore struct {
	dir string
}

// NewFileStore creates a store over a transcript directory.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Load reads every .txt transcript. It returns the documents keyed by
// meeting date plus the chronological key order. Files whose name does
// not parse as a meeting date are skipped.
func (s *FileStore) Load() (map[string]string, []string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, nil, fmt.Errorf("read transcript dir: %w", err)
	}

	docs := make(map[string]string)
	order := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}
		id := strings.TrimSuffix(entry.Name(), ".txt")
		if _, ok := util.ParseMeetingDate(id); !ok {
			continue
		}

		b, err := os.ReadFile(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			return nil, nil, fmt.Errorf("read transcript %s: %w", entry.Name(), err)
		}
		docs[id] = string(b)
		order = append(order, id)
	}

	sort.Strings(order)
	return docs, order, nil
}

// Save writes one transcript, creating the directory if needed.
func (s *FileStore) Save(documentID, text string) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create transcript dir: %w", err)
	}
	path := filepath.Join(s.dir, documentID+".txt")
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write transcript %s: %w", documentID, err)
	}
	return nil
}
