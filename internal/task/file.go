package task

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/JaskiratSingh1/Verto/internal/utils"
)

// record is the persisted form of a task.
type record struct {
	ID     string `json:"id" yaml:"id" toml:"id"`
	Title  string `json:"title" yaml:"title" toml:"title"`
	IsDone bool   `json:"isDone" yaml:"isDone" toml:"isDone"`
	Day    string `json:"day" yaml:"day" toml:"day"`
}

// document is the persisted form of the whole store, keyed by Day.String.
type document map[string][]record

// Load replaces the in-memory state with the file contents. Any failure
// leaves the store empty; nothing is returned to the caller.
func (s *Store) Load() {
	s.buckets = make(map[Day][]entry)
	if s.path == "" {
		return
	}

	data, err := s.readFile()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Debug("no tasks file yet", "path", s.path)
			return
		}
		s.logger.Warn("cannot read tasks file, starting empty", "path", s.path, "err", err)
		return
	}

	buckets, err := s.decode(data)
	if err != nil {
		s.logger.Warn("ignoring unreadable tasks file, starting empty", "path", s.path, "err", err)
		return
	}
	s.buckets = buckets
	s.logger.Debug("loaded tasks", "path", s.path, "days", len(buckets))
}

// Reload re-reads the file, e.g. after another process changed it.
func (s *Store) Reload() {
	s.Load()
}

// Save writes the full store to disk atomically. The result is also
// recorded for Err.
func (s *Store) Save() error {
	err := s.save()
	s.lastErr = err
	if err != nil {
		s.logger.Error("saving tasks failed, keeping changes in memory", "path", s.path, "err", err)
	}
	return err
}

func (s *Store) save() error {
	if s.path == "" {
		return nil
	}
	data, err := s.encode()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	if err := s.lock.Lock(); err != nil {
		return fmt.Errorf("lock tasks file: %w", err)
	}
	defer func() { _ = s.lock.Unlock() }()

	if err := utils.WriteFileAtomic(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write tasks file: %w", err)
	}
	return nil
}

func (s *Store) readFile() ([]byte, error) {
	if err := s.lock.RLock(); err == nil {
		defer func() { _ = s.lock.Unlock() }()
	} else if !errors.Is(err, fs.ErrNotExist) {
		s.logger.Debug("reading tasks file without lock", "err", err)
	}
	return os.ReadFile(s.path)
}

// encode renders the store with 2-space indentation and a trailing newline.
// encoding/json sorts map keys, which keeps days in chronological order.
func (s *Store) encode() ([]byte, error) {
	data, err := json.MarshalIndent(s.document(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal tasks: %w", err)
	}
	return append(data, '\n'), nil
}

func (s *Store) document() document {
	doc := make(document, len(s.buckets))
	for day, bucket := range s.buckets {
		if len(bucket) == 0 {
			continue
		}
		key := day.String()
		records := make([]record, len(bucket))
		for i, e := range bucket {
			records[i] = record{ID: e.id, Title: e.title, IsDone: e.done, Day: key}
		}
		doc[key] = records
	}
	return doc
}

func (s *Store) decode(data []byte) (map[Day][]entry, error) {
	buckets := make(map[Day][]entry)
	if len(bytes.TrimSpace(data)) == 0 {
		return buckets, nil
	}
	if err := Validate(data); err != nil {
		return nil, fmt.Errorf("schema: %w", err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse tasks file: %w", err)
	}

	// Keys naming the same day merge in key order.
	for _, key := range slices.Sorted(maps.Keys(doc)) {
		records := doc[key]
		day, err := ParseDay(key)
		if err != nil {
			return nil, err
		}
		for _, r := range records {
			if len(buckets[day]) >= MaxTasksPerDay {
				s.logger.Warn("dropping tasks over the daily limit", "day", day.Date(), "limit", MaxTasksPerDay, "stored", len(records))
				break
			}
			buckets[day] = append(buckets[day], entry{id: r.ID, title: r.Title, done: r.IsDone})
		}
	}
	return buckets, nil
}
