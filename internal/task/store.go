package task

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// dbIndent matches the four-space indentation the database file has always
// been written with.
const dbIndent = "    "

// Store reads and mutates the task database file. Every operation works on
// the current on-disk state, so concurrent taskvet invocations observe each
// other's writes. A missing database file is an empty database.
type Store struct {
	path   string
	logger zerolog.Logger
}

// NewStore creates a Store over the database file at path.
func NewStore(path string, logger zerolog.Logger) *Store {
	return &Store{path: path, logger: logger}
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// All returns every task, newest (highest ID) first.
func (s *Store) All() ([]Task, error) {
	return s.load()
}

// First returns the first count tasks in database order (newest first).
// Count is clamped to the database size; a negative count is an empty result.
func (s *Store) First(count int) ([]Task, error) {
	tasks, err := s.load()
	if err != nil {
		return nil, err
	}

	if count < 0 {
		count = 0
	}
	if count > len(tasks) {
		count = len(tasks)
	}

	return tasks[:count], nil
}

// Find returns every task whose title or description contains query,
// case-insensitively. An empty result is not an error.
func (s *Store) Find(query string) ([]Task, error) {
	tasks, err := s.load()
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(query)

	return lo.Filter(tasks, func(t Task, _ int) bool {
		haystack := strings.ToLower(t.Title) + strings.ToLower(t.Description)
		return strings.Contains(haystack, needle)
	}), nil
}

// Get returns the task with the given ID, or None if absent.
func (s *Store) Get(id int) (mo.Option[Task], error) {
	tasks, err := s.load()
	if err != nil {
		return mo.None[Task](), err
	}

	if t, ok := lo.Find(tasks, func(t Task) bool { return t.ID == id }); ok {
		return mo.Some(t), nil
	}

	return mo.None[Task](), nil
}

// Add appends a new task with the next sequential ID and persists the
// database. Returns the stored task.
func (s *Store) Add(title, description string) (Task, error) {
	tasks, err := s.load()
	if err != nil {
		return Task{}, err
	}

	t := Task{
		Title:       title,
		Description: description,
		ID:          nextID(tasks),
	}

	tasks = append(tasks, t)
	if err := s.save(tasks); err != nil {
		return Task{}, err
	}

	s.logger.Info().
		Str("op_id", uuid.NewString()).
		Int("task_id", t.ID).
		Str("title", t.Title).
		Msg("task added")

	return t, nil
}

// Done removes the task with the given ID. The removal is done by raw
// document surgery so that fields written into the database by other tools
// survive untouched. Returns TaskNotFoundError if the ID is absent.
func (s *Store) Done(id int) error {
	raw, err := s.readRaw()
	if err != nil {
		return err
	}

	index := -1
	for i, item := range gjson.ParseBytes(raw).Array() {
		if item.Get("id").Int() == int64(id) {
			index = i
			break
		}
	}

	if index == -1 {
		return TaskNotFoundError{ID: id}
	}

	updated, err := sjson.DeleteBytes(raw, strconv.Itoa(index))
	if err != nil {
		return fmt.Errorf("task: failed to remove task %d: %w", id, err)
	}

	if err := s.writeRaw(updated); err != nil {
		return err
	}

	s.logger.Info().
		Str("op_id", uuid.NewString()).
		Int("task_id", id).
		Msg("task completed")

	return nil
}

// Count returns the number of tasks without decoding the full database.
func (s *Store) Count() (int, error) {
	raw, err := s.readRaw()
	if err != nil {
		return 0, err
	}

	return int(gjson.GetBytes(raw, "#").Int()), nil
}

// NextID returns the ID the next added task will receive. The database is
// kept in descending ID order, so the head entry carries the highest ID.
func (s *Store) NextID() (int, error) {
	raw, err := s.readRaw()
	if err != nil {
		return 0, err
	}

	head := gjson.GetBytes(raw, "0.id")
	if !head.Exists() {
		return 1, nil
	}

	return int(head.Int()) + 1, nil
}

// load decodes the database into tasks, newest first.
func (s *Store) load() ([]Task, error) {
	raw, err := s.readRaw()
	if err != nil {
		return nil, err
	}

	if len(raw) == 0 {
		return []Task{}, nil
	}

	var tasks []Task
	if err := json.Unmarshal(raw, &tasks); err != nil {
		return nil, fmt.Errorf("task: failed to parse database %s: %w", s.path, err)
	}

	sortTasks(tasks)

	return tasks, nil
}

// save persists tasks newest-first with the database's indentation.
func (s *Store) save(tasks []Task) error {
	sortTasks(tasks)

	data, err := json.MarshalIndent(tasks, "", dbIndent)
	if err != nil {
		return fmt.Errorf("task: failed to encode database: %w", err)
	}

	return s.writeRaw(data)
}

// readRaw returns the raw database document. A missing file is an empty
// database, matching first-run behavior.
func (s *Store) readRaw() ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []byte("[]"), nil
		}
		return nil, fmt.Errorf("task: failed to read database %s: %w", s.path, err)
	}

	if len(data) == 0 {
		return []byte("[]"), nil
	}

	return data, nil
}

// writeRaw writes the raw database document.
func (s *Store) writeRaw(data []byte) error {
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("task: failed to write database %s: %w", s.path, err)
	}
	return nil
}

// sortTasks orders tasks by descending ID, the database invariant.
func sortTasks(tasks []Task) {
	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].ID > tasks[j].ID
	})
}

// nextID returns the highest existing ID plus one, starting from 1.
func nextID(tasks []Task) int {
	if len(tasks) == 0 {
		return 1
	}

	return lo.MaxBy(tasks, func(a, b Task) bool { return a.ID > b.ID }).ID + 1
}
