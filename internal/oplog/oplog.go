// Package oplog persists one JSON operation-log document per sort run.
package oplog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/deadcoast/sik-sort/pkg/types"
	"github.com/gofrs/flock"
	"github.com/google/uuid"
)

// Document is the persisted artifact. Field names and timestamp encoding are
// a wire contract consumed by the logs reader; do not rename.
type Document struct {
	StartTime  time.Time             `json:"start_time"`
	EndTime    time.Time             `json:"end_time"`
	Operations []types.SortOperation `json:"operations"`
}

// Session accumulates move records for one run and writes them out on
// finalize. A directory-level flock serializes concurrent invocations against
// the same log directory.
type Session struct {
	id   string
	dir  string
	lock *flock.Flock
	doc  Document
}

// NewSession creates the log directory, takes the lock, and stamps the start
// time.
func NewSession(dir string) (*Session, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	lock := flock.New(filepath.Join(dir, ".lock"))
	acquired, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock log dir: %w", err)
	}
	if !acquired {
		return nil, fmt.Errorf("another sort is already running against %s", dir)
	}

	return &Session{
		id:   uuid.NewString(),
		dir:  dir,
		lock: lock,
		doc:  Document{StartTime: time.Now(), Operations: []types.SortOperation{}},
	}, nil
}

// ID returns the session identifier used in the log filename.
func (s *Session) ID() string { return s.id }

// Append records one successful move, in processing order.
func (s *Session) Append(op types.SortOperation) {
	s.doc.Operations = append(s.doc.Operations, op)
}

// Finalize stamps the end time, writes the document, and releases the lock.
func (s *Session) Finalize() error {
	defer s.lock.Unlock()

	s.doc.EndTime = time.Now()

	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return err
	}

	path := filepath.Join(s.dir, "session-"+s.id+".json")
	return os.WriteFile(path, data, 0644)
}

// Discard releases the lock without writing anything. Used when the run
// aborts before any file is touched.
func (s *Session) Discard() {
	s.lock.Unlock()
}

// Latest loads the most recently written session document from dir.
func Latest(dir string) (*Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var candidates []os.DirEntry
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".json" {
			candidates = append(candidates, e)
		}
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("no session logs in %s", dir)
	}

	sort.Slice(candidates, func(i, j int) bool {
		ii, _ := candidates[i].Info()
		ji, _ := candidates[j].Info()
		if ii == nil || ji == nil {
			return false
		}
		return ii.ModTime().After(ji.ModTime())
	})

	data, err := os.ReadFile(filepath.Join(dir, candidates[0].Name()))
	if err != nil {
		return nil, err
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
