// Package history persists solved problems to disk as JSON files, one
// file per entry, named by entry ID.
package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/solventhq/solvent"
)

// Entry is one solved problem: the inputs, the streamed solution text,
// and whatever structured results the user fetched before saving.
type Entry struct {
	ID          string
	CreatedAt   time.Time
	ProblemText string
	Difficulty  solvent.Difficulty
	Mode        solvent.ExecutionMode
	Solution    string
	Result      *solvent.AnalyzeResponse
	Simple      *solvent.SimplifiedExplanation
	CodeNotes   *solvent.CodeExplanation
	Execution   *solvent.ExecuteResponse
}

// NewEntry creates an Entry with a fresh ID and creation time.
func NewEntry() Entry {
	return Entry{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
	}
}

// envelope is the v1 wire format for a persisted entry.
type envelope struct {
	Version     int                            `json:"version"`
	ID          string                         `json:"id"`
	CreatedAt   time.Time                      `json:"created_at"`
	ProblemText string                         `json:"problem_text"`
	Difficulty  solvent.Difficulty             `json:"difficulty,omitempty"`
	Mode        solvent.ExecutionMode          `json:"mode,omitempty"`
	Solution    string                         `json:"solution,omitempty"`
	Result      *solvent.AnalyzeResponse       `json:"result,omitempty"`
	Simple      *solvent.SimplifiedExplanation `json:"simple,omitempty"`
	CodeNotes   *solvent.CodeExplanation       `json:"code_notes,omitempty"`
	Execution   *solvent.ExecuteResponse       `json:"execution,omitempty"`
}

// Marshal serializes an Entry to JSON in v1 envelope format.
func Marshal(e Entry) ([]byte, error) {
	env := envelope{
		Version:     1,
		ID:          e.ID,
		CreatedAt:   e.CreatedAt,
		ProblemText: e.ProblemText,
		Difficulty:  e.Difficulty,
		Mode:        e.Mode,
		Solution:    e.Solution,
		Result:      e.Result,
		Simple:      e.Simple,
		CodeNotes:   e.CodeNotes,
		Execution:   e.Execution,
	}
	return json.MarshalIndent(env, "", "  ")
}

// Unmarshal deserializes an Entry from JSON in v1 envelope format.
func Unmarshal(data []byte) (Entry, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Entry{}, fmt.Errorf("unmarshal envelope: %w", err)
	}
	if env.Version != 1 {
		return Entry{}, fmt.Errorf("unsupported envelope version: %d", env.Version)
	}
	return Entry{
		ID:          env.ID,
		CreatedAt:   env.CreatedAt,
		ProblemText: env.ProblemText,
		Difficulty:  env.Difficulty,
		Mode:        env.Mode,
		Solution:    env.Solution,
		Result:      env.Result,
		Simple:      env.Simple,
		CodeNotes:   env.CodeNotes,
		Execution:   env.Execution,
	}, nil
}

// Store reads and writes entries under a single directory.
type Store struct {
	dir string
}

// NewStore returns a Store rooted at dir. The directory is created on
// first Save, not here.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// path returns the file path for an entry ID.
func (st *Store) path(id string) string {
	return filepath.Join(st.dir, id+".json")
}

// Save writes an entry to disk, creating the directory as needed. The
// write goes through a temp file and rename so a crash never leaves a
// half-written entry behind.
func (st *Store) Save(e Entry) error {
	if e.ID == "" {
		return fmt.Errorf("history: entry has no ID")
	}
	data, err := Marshal(e)
	if err != nil {
		return fmt.Errorf("history: marshal: %w", err)
	}
	if err := os.MkdirAll(st.dir, 0o700); err != nil {
		return fmt.Errorf("history: create directories: %w", err)
	}
	path := st.path(e.ID)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("history: write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp) // best-effort cleanup
		return fmt.Errorf("history: rename temp file: %w", err)
	}
	return nil
}

// Load reads one entry by ID.
func (st *Store) Load(id string) (Entry, error) {
	data, err := os.ReadFile(st.path(id))
	if err != nil {
		return Entry{}, fmt.Errorf("history: read file: %w", err)
	}
	e, err := Unmarshal(data)
	if err != nil {
		return Entry{}, fmt.Errorf("history: %w", err)
	}
	return e, nil
}

// List returns all entries, newest first. Files that fail to parse are
// skipped so one corrupt entry does not hide the rest.
func (st *Store) List() ([]Entry, error) {
	dirents, err := os.ReadDir(st.dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("history: read dir: %w", err)
	}
	var entries []Entry
	for _, de := range dirents {
		name := de.Name()
		if de.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(st.dir, name))
		if err != nil {
			continue
		}
		e, err := Unmarshal(data)
		if err != nil {
			continue
		}
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
	return entries, nil
}

// Delete removes one entry by ID. Deleting a missing entry is not an
// error.
func (st *Store) Delete(id string) error {
	err := os.Remove(st.path(id))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("history: delete: %w", err)
	}
	return nil
}
