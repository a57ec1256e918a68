package task_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/taskvet/taskvet/internal/task"
)

func newTestStore(t *testing.T) *task.Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), task.DefaultDBFile)
	return task.NewStore(path, zerolog.Nop())
}

func TestAddAssignsSequentialIDs(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)

	first, err := store.Add("buy milk", "2% if they have it")
	require.NoError(t, err)
	assert.Equal(t, 1, first.ID)

	second, err := store.Add("water plants", "the fern is thirsty")
	require.NoError(t, err)
	assert.Equal(t, 2, second.ID)

	third, err := store.Add("call mom", "before the weekend")
	require.NoError(t, err)
	assert.Equal(t, 3, third.ID)
}

func TestAllReturnsNewestFirst(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)

	for _, title := range []string{"one", "two", "three"} {
		_, err := store.Add(title, "desc")
		require.NoError(t, err)
	}

	tasks, err := store.All()
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, []int{3, 2, 1}, []int{tasks[0].ID, tasks[1].ID, tasks[2].ID})
}

func TestFirstClampsCount(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)

	_, err := store.Add("one", "desc")
	require.NoError(t, err)
	_, err = store.Add("two", "desc")
	require.NoError(t, err)

	tasks, err := store.First(10)
	require.NoError(t, err)
	assert.Len(t, tasks, 2)

	tasks, err = store.First(1)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, 2, tasks[0].ID)

	tasks, err = store.First(-5)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestFirstOnEmptyDatabase(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)

	tasks, err := store.First(5)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestFindMatchesCaseInsensitively(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)

	_, err := store.Add("Buy Milk", "from the corner shop")
	require.NoError(t, err)
	_, err = store.Add("water plants", "the MILKweed too")
	require.NoError(t, err)
	_, err = store.Add("call mom", "before the weekend")
	require.NoError(t, err)

	tasks, err := store.Find("milk")
	require.NoError(t, err)
	assert.Len(t, tasks, 2)

	tasks, err = store.Find("weekend")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "call mom", tasks[0].Title)

	tasks, err = store.Find("no such thing")
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestGetReturnsOption(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)

	added, err := store.Add("buy milk", "2%")
	require.NoError(t, err)

	found, err := store.Get(added.ID)
	require.NoError(t, err)
	require.True(t, found.IsPresent())
	assert.Equal(t, added, found.MustGet())

	missing, err := store.Get(99)
	require.NoError(t, err)
	assert.True(t, missing.IsAbsent())
}

func TestDoneRemovesTask(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)

	_, err := store.Add("one", "desc")
	require.NoError(t, err)
	keep, err := store.Add("two", "desc")
	require.NoError(t, err)

	require.NoError(t, store.Done(1))

	tasks, err := store.All()
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, keep.ID, tasks[0].ID)
}

func TestDoneUnknownID(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)

	_, err := store.Add("one", "desc")
	require.NoError(t, err)

	err = store.Done(42)
	require.Error(t, err)

	var notFound task.TaskNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, 42, notFound.ID)
}

func TestDonePreservesForeignFields(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), task.DefaultDBFile)
	raw := `[
    {"title": "two", "description": "b", "id": 2, "owner": "sam"},
    {"title": "one", "description": "a", "id": 1}
]`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))

	store := task.NewStore(path, zerolog.Nop())
	require.NoError(t, store.Done(1))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	doc := gjson.ParseBytes(data)
	require.Equal(t, int64(1), doc.Get("#").Int())
	assert.Equal(t, "sam", doc.Get("0.owner").String(), "fields from other tools must survive")
}

func TestCountAndNextID(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)

	count, err := store.Count()
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	next, err := store.NextID()
	require.NoError(t, err)
	assert.Equal(t, 1, next)

	_, err = store.Add("one", "desc")
	require.NoError(t, err)
	_, err = store.Add("two", "desc")
	require.NoError(t, err)

	count, err = store.Count()
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	next, err = store.NextID()
	require.NoError(t, err)
	assert.Equal(t, 3, next)
}

func TestNextIDSkipsGaps(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)

	for _, title := range []string{"one", "two", "three"} {
		_, err := store.Add(title, "desc")
		require.NoError(t, err)
	}

	// Completing the newest task must not recycle its ID.
	require.NoError(t, store.Done(3))

	next, err := store.NextID()
	require.NoError(t, err)
	assert.Equal(t, 3, next)
}

func TestLoadCorruptDatabase(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), task.DefaultDBFile)
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))

	store := task.NewStore(path, zerolog.Nop())

	_, err := store.All()
	assert.Error(t, err)
}

func TestEmptyFileIsEmptyDatabase(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), task.DefaultDBFile)
	require.NoError(t, os.WriteFile(path, []byte(""), 0o600))

	store := task.NewStore(path, zerolog.Nop())

	tasks, err := store.All()
	require.NoError(t, err)
	assert.Empty(t, tasks)
}
