package todo

import (
	"encoding/json"
	"errors"

	log "github.com/sirupsen/logrus"

	"todoapp/internal/storage"
)

const (
	PendingKey = "todoItems"
	DoneKey    = "doneItems"
)

var ErrIndexOutOfRange = errors.New("todo: index out of range")

// Gateway is the blob store the task lists are persisted to.
type Gateway interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
}

type Op string

const (
	OpAdd        Op = "add"
	OpDelete     Op = "delete"
	OpMarkDone   Op = "mark_done"
	OpDeleteDone Op = "delete_done"
)

// Change describes a completed mutation and the resulting list sizes.
type Change struct {
	Op      Op
	Task    Task
	Pending int
	Done    int
}

// Store owns the pending and done lists. It is not safe for concurrent use;
// the UI goroutine owns it.
type Store struct {
	gw        Gateway
	log       log.FieldLogger
	pending   []Task
	done      []Task
	observers map[int]func(Change)
	nextObs   int
}

// Open loads both lists from gw. Missing or undecodable data yields an empty list.
func Open(gw Gateway, logger log.FieldLogger) *Store {
	if logger == nil {
		logger = log.StandardLogger()
	}
	s := &Store{
		gw:        gw,
		log:       logger,
		observers: map[int]func(Change){},
	}
	s.pending = s.load(PendingKey)
	s.done = s.load(DoneKey)
	return s
}

func (s *Store) load(key string) []Task {
	data, err := s.gw.Get(key)
	if errors.Is(err, storage.ErrNotFound) {
		s.log.WithField("key", key).Debug("no stored tasks")
		return []Task{}
	}
	if err != nil {
		s.log.WithField("key", key).WithError(err).Warn("load tasks")
		return []Task{}
	}
	var tasks []Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		s.log.WithField("key", key).WithError(err).Warn("discarding undecodable tasks")
		return []Task{}
	}
	if tasks == nil {
		tasks = []Task{}
	}
	return tasks
}

func (s *Store) Pending() []Task {
	return append([]Task(nil), s.pending...)
}

func (s *Store) Done() []Task {
	return append([]Task(nil), s.done...)
}

// Subscribe registers fn to run after every mutation, before the mutating
// call returns. The returned func removes it.
func (s *Store) Subscribe(fn func(Change)) func() {
	id := s.nextObs
	s.nextObs++
	s.observers[id] = fn
	return func() { delete(s.observers, id) }
}

func (s *Store) AddItem(t Task) {
	s.pending = append(s.pending, t)
	s.commit(OpAdd, t)
}

func (s *Store) DeleteItem(index int) error {
	t, rest, err := removeAt(s.pending, index)
	if err != nil {
		return err
	}
	s.pending = rest
	s.commit(OpDelete, t)
	return nil
}

// MarkAsDone moves pending[index] to the end of the done list.
func (s *Store) MarkAsDone(index int) error {
	t, rest, err := removeAt(s.pending, index)
	if err != nil {
		return err
	}
	s.pending = rest
	s.done = append(s.done, t)
	s.commit(OpMarkDone, t)
	return nil
}

func (s *Store) DeleteDoneItem(index int) error {
	t, rest, err := removeAt(s.done, index)
	if err != nil {
		return err
	}
	s.done = rest
	s.commit(OpDeleteDone, t)
	return nil
}

func (s *Store) commit(op Op, t Task) {
	s.save()
	c := Change{Op: op, Task: t, Pending: len(s.pending), Done: len(s.done)}
	for _, fn := range s.observers {
		fn(c)
	}
}

// save writes both lists independently. Failures are logged and dropped.
func (s *Store) save() {
	s.saveKey(PendingKey, s.pending)
	s.saveKey(DoneKey, s.done)
}

func (s *Store) saveKey(key string, tasks []Task) {
	data, err := json.Marshal(tasks)
	if err != nil {
		s.log.WithField("key", key).WithError(err).Warn("encode tasks")
		return
	}
	if err := s.gw.Set(key, data); err != nil {
		s.log.WithField("key", key).WithError(err).Warn("persist tasks")
	}
}

func removeAt(tasks []Task, index int) (Task, []Task, error) {
	if index < 0 || index >= len(tasks) {
		return Task{}, tasks, ErrIndexOutOfRange
	}
	t := tasks[index]
	out := make([]Task, 0, len(tasks)-1)
	out = append(out, tasks[:index]...)
	out = append(out, tasks[index+1:]...)
	return t, out, nil
}
