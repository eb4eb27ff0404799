// Package highscore keeps the best score in a plain-text file holding a
// single integer.
package highscore

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// DefaultPath is where the arcade build keeps its scores file
const DefaultPath = "assets/lib/.scores"

// ErrMalformed is returned when the scores file does not hold a
// non-negative integer
var ErrMalformed = errors.New("malformed high score")

// FileStore reads and writes the high score file. It never fails the
// caller: problems are logged and the store falls back to 0 or skips
// the write.
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by the file at path
func NewFileStore(path string) *FileStore {
	if path == "" {
		path = DefaultPath
	}
	return &FileStore{path: path}
}

// Path returns the file the store uses
func (s *FileStore) Path() string { return s.path }

// ReadHighScore returns the stored high score, or 0 if the file is
// missing, unreadable or malformed
func (s *FileStore) ReadHighScore() int {
	score, err := s.Load()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Printf("No high score yet at %s", s.path)
		} else {
			log.Printf("Failed to read high score: %v", err)
		}
		return 0
	}
	return score
}

// WriteHighScore replaces the stored value. Failures are logged.
func (s *FileStore) WriteHighScore(score int) {
	if err := s.Save(score); err != nil {
		log.Printf("Failed to save high score: %v", err)
	}
}

// Load reads the file and parses the last non-empty line
func (s *FileStore) Load() (int, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", s.path, err)
	}
	return Parse(string(data))
}

// Save writes score to the file, creating its directory if needed
func (s *FileStore) Save(score int) error {
	if score < 0 {
		return fmt.Errorf("save %d: %w", score, ErrMalformed)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(s.path, []byte(strconv.Itoa(score)), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}

// Parse extracts the score from file contents. The last non-empty line
// wins, matching files that were appended to by hand.
func Parse(content string) (int, error) {
	var last string
	for _, line := range strings.Split(content, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			last = line
		}
	}
	if last == "" {
		return 0, fmt.Errorf("empty file: %w", ErrMalformed)
	}
	score, err := strconv.Atoi(last)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", last, ErrMalformed)
	}
	if score < 0 {
		return 0, fmt.Errorf("negative score %d: %w", score, ErrMalformed)
	}
	return score, nil
}
