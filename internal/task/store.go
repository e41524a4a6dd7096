package task

import (
	"io"
	"slices"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/gofrs/flock"
	"github.com/google/uuid"
)

// MaxTasksPerDay caps the number of tasks filed under one day.
const MaxTasksPerDay = 7

// Task is a single entry of a day's list.
type Task struct {
	ID    string
	Title string
	Done  bool
	Day   Day // filled from the owning bucket
}

// Ref returns the (day, id) address of t.
func (t Task) Ref() Ref {
	return Ref{Day: t.Day, ID: t.ID}
}

// Ref addresses a task by its owning day and id.
type Ref struct {
	Day Day
	ID  string
}

// entry is the stored form of a task; the day is the bucket key.
type entry struct {
	id    string
	title string
	done  bool
}

func (e entry) task(day Day) Task {
	return Task{ID: e.id, Title: e.title, Done: e.done, Day: day}
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for load and save diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithIDFunc overrides task id generation.
func WithIDFunc(fn func() string) Option {
	return func(s *Store) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// Store owns the day to tasks mapping and its file. Every successful
// mutation is written through to disk before the method returns.
//
// A Store is not safe for concurrent use; it expects a single writer.
// Other processes touching the same file are serialized with a file lock.
type Store struct {
	path    string
	buckets map[Day][]entry
	lock    *flock.Flock
	logger  *log.Logger
	newID   func() string
	lastErr error
}

// Open creates a store backed by path and loads it. An empty path keeps the
// store in memory only.
func Open(path string, opts ...Option) *Store {
	s := &Store{
		path:    path,
		buckets: make(map[Day][]entry),
		logger:  log.New(io.Discard),
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	if path != "" {
		s.lock = flock.New(path + ".lock")
	}
	s.Load()
	return s
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Err returns the error of the most recent save, or nil if it succeeded.
func (s *Store) Err() error {
	return s.lastErr
}

// TasksForDay returns a copy of the tasks filed under day, in display order.
func (s *Store) TasksForDay(day Day) []Task {
	bucket := s.buckets[day]
	tasks := make([]Task, len(bucket))
	for i, e := range bucket {
		tasks[i] = e.task(day)
	}
	return tasks
}

// Days returns every day that has at least one task, oldest first.
func (s *Store) Days() []Day {
	days := make([]Day, 0, len(s.buckets))
	for day, bucket := range s.buckets {
		if len(bucket) > 0 {
			days = append(days, day)
		}
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Before(days[j])
	})
	return days
}

// Add appends a new task to day. It reports false, leaving the store
// untouched, when the trimmed text is empty or the day is already full.
func (s *Store) Add(text string, day Day) (Task, bool) {
	title := strings.TrimSpace(text)
	if title == "" {
		return Task{}, false
	}
	bucket := s.buckets[day]
	if len(bucket) >= MaxTasksPerDay {
		s.logger.Debug("day is full", "day", day.Date(), "limit", MaxTasksPerDay)
		return Task{}, false
	}

	e := entry{id: s.newID(), title: title}
	s.buckets[day] = append(bucket, e)
	s.persist()
	return e.task(day), true
}

// Toggle flips the done flag of the referenced task. Unknown refs are ignored.
func (s *Store) Toggle(ref Ref) bool {
	i := s.index(ref)
	if i < 0 {
		return false
	}
	bucket := s.buckets[ref.Day]
	bucket[i].done = !bucket[i].done
	s.persist()
	return true
}

// Delete removes the referenced task. Unknown refs are ignored.
func (s *Store) Delete(ref Ref) bool {
	i := s.index(ref)
	if i < 0 {
		return false
	}
	bucket := slices.Delete(s.buckets[ref.Day], i, i+1)
	if len(bucket) == 0 {
		delete(s.buckets, ref.Day)
	} else {
		s.buckets[ref.Day] = bucket
	}
	s.persist()
	return true
}

// index finds ref.ID within its day's bucket, or -1.
func (s *Store) index(ref Ref) int {
	return slices.IndexFunc(s.buckets[ref.Day], func(e entry) bool {
		return e.id == ref.ID
	})
}

// persist saves after a mutation. The error is kept in lastErr.
func (s *Store) persist() {
	_ = s.Save()
}
