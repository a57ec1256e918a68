// Package task implements the JSON-file task database behind the taskvet CLI.
package task

import "fmt"

// DefaultDBFile is the task database file name, resolved against the
// working directory unless an explicit path is configured.
const DefaultDBFile = "task_db.json"

// Task is one to-do entry. The json tags are the database wire format and
// must not change: existing database files depend on them.
type Task struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ID          int    `json:"id"`
}

// TaskNotFoundError is returned when an operation names a task ID that is
// not present in the database.
type TaskNotFoundError struct {
	ID int
}

func (e TaskNotFoundError) Error() string {
	return fmt.Sprintf("task: no task with id %d", e.ID)
}
