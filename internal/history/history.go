package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spigell/careerfit/internal/career"
	"github.com/spigell/careerfit/internal/skillgap"
)

// Entry is a saved assessment result.
type Entry struct {
	ID          uuid.UUID        `json:"id"`
	CreatedAt   time.Time        `json:"createdAt"`
	Answers     map[string]int   `json:"answers"`
	Career      string           `json:"career"`
	MatchScore  int              `json:"matchScore"`
	MatchReason []string         `json:"matchReason,omitempty"`
	Skills      []string         `json:"skills,omitempty"`
	Gap         *skillgap.Report `json:"gap,omitempty"`
}

// History is the ordered list of saved entries, oldest first.
type History struct {
	Items []*Entry `json:"items"`
}

// NewEntry records the outcome of an assessment. gap may be nil.
func NewEntry(answers map[string]int, profile *career.Profile, skills []string, gap *skillgap.Report) *Entry {
	e := &Entry{
		ID:        uuid.New(),
		CreatedAt: time.Now().UTC(),
		Answers:   make(map[string]int, len(answers)),
		Skills:    append([]string(nil), skills...),
		Gap:       gap,
	}
	maps.Copy(e.Answers, answers)
	if profile != nil {
		e.Career = profile.Title
		e.MatchScore = profile.MatchScore
		e.MatchReason = append([]string(nil), profile.MatchReason...)
	}
	return e
}

// Load reads the history file. A missing or empty file is an empty history.
func Load(path string) (*History, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &History{}, nil
		}
		return nil, err
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, err
	}

	if stat.Size() == 0 {
		return &History{}, nil
	}

	var h History
	if err := json.NewDecoder(file).Decode(&h); err != nil {
		return nil, fmt.Errorf("decode history %q: %w", path, err)
	}
	return &h, nil
}

// Append adds the entry to the history file, creating it when needed.
func Append(path string, entry *Entry) error {
	if entry == nil {
		return errors.New("history entry is required")
	}

	h, err := Load(path)
	if err != nil {
		return err
	}

	h.Items = append(h.Items, entry)
	return h.ToFile(path)
}

// ToFile replaces the file at path with the history.
func (h *History) ToFile(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".history_*.json")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	if err := enc.Encode(h); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}

// DumpToTmpFile writes the history to a new temporary file and returns its name.
func (h *History) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "careerfit_history_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(h); err != nil {
		return "", err
	}
	return file.Name(), nil
}

func (h *History) Len() int {
	return len(h.Items)
}

// Latest returns the most recent entry or nil.
func (h *History) Latest() *Entry {
	if len(h.Items) == 0 {
		return nil
	}
	return h.Items[len(h.Items)-1]
}

// Find looks an entry up by id or by a unique id prefix.
func (h *History) Find(id string) (*Entry, bool) {
	var found *Entry
	for _, e := range h.Items {
		s := e.ID.String()
		if s == id {
			return e, true
		}
		if len(id) >= 4 && strings.HasPrefix(s, id) {
			if found != nil {
				return nil, false
			}
			found = e
		}
	}
	return found, found != nil
}
