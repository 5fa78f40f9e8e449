package store

import (
	"context"
	"sync"
	"time"

	"task-tracker/internal/docstore"
	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
)

// Store owns the in-memory collections of tasks, projects, and
// standard tasks for one session. Mutations are synchronous over the
// in-memory state and mirrored to the document store fire-and-forget;
// remote snapshots arrive through subscriptions and replace the local
// collection wholesale when their revision is newer (last write wins,
// no merge). The store is the single mutator on a client; the mutex
// only guards against the subscription goroutines.
type Store struct {
	mu     sync.Mutex
	docs   docstore.Store
	userID string
	now    func() time.Time

	tasks     []domain.Task
	projects  []domain.Project
	standards []domain.StandardTask

	// last revision written or observed per document key, and the
	// number of local writes not yet flushed per key
	revisions    map[string]int64
	pending      map[string]int
	unsubscribes []func()

	// write queue, drained by a single goroutine so saves reach the
	// document store in mutation order
	saveMu     sync.Mutex
	saveQueue  []saveRequest
	saveClosed bool
	saveSignal chan struct{}
	saveDone   chan struct{}
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces the store's time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New loads the user's collections from the document store and
// subscribes to remote changes.
func New(ctx context.Context, docs docstore.Store, userID string, opts ...Option) (*Store, error) {
	s := &Store{
		docs:       docs,
		userID:     userID,
		now:        time.Now,
		revisions:  make(map[string]int64),
		pending:    make(map[string]int),
		saveSignal: make(chan struct{}, 1),
		saveDone:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.loadAll(ctx); err != nil {
		return nil, err
	}

	for _, key := range s.collectionKeys() {
		s.unsubscribes = append(s.unsubscribes, docs.Subscribe(key, s.applySnapshot))
	}

	go s.saveLoop()
	return s, nil
}

// Close detaches the store from the subscription feed and flushes any
// queued writes to the document store.
func (s *Store) Close() {
	for _, unsubscribe := range s.unsubscribes {
		unsubscribe()
	}

	s.saveMu.Lock()
	s.saveClosed = true
	s.saveMu.Unlock()
	select {
	case s.saveSignal <- struct{}{}:
	default:
	}
	<-s.saveDone
}

func (s *Store) collectionKeys() []string {
	return []string{
		docstore.TasksKey(s.userID),
		docstore.StandardTasksKey(s.userID),
		docstore.ProjectsKey,
	}
}

// TaskPatch is a partial task update. Only non-nil fields are applied.
// A Status change triggers its derived effects (force-close, finish or
// restart history); every other field is applied as-is, so a caller
// overwriting Logs is responsible for keeping stored durations
// consistent.
type TaskPatch struct {
	Title       *string
	Description *string
	ProjectID   *string
	Priority    *domain.Priority
	Type        *string
	Status      *domain.Status
	Logs        *[]domain.TaskLog
}

// AddTaskParams describes a task to create.
type AddTaskParams struct {
	Title       string
	Description string
	ProjectID   string
	Type        string
	Priority    domain.Priority

	// Intervals, when non-empty, makes this a backfilled task: logs
	// are synthesized with computed durations and the task is
	// immediately done.
	Intervals []domain.LogInterval
}

// AddTask creates a task. Input is assumed pre-validated by the
// boundary.
func (s *Store) AddTask(p AddTaskParams) domain.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	var task domain.Task
	if len(p.Intervals) > 0 {
		task = domain.NewBackfilledTask(p.Title, p.ProjectID, p.Type, p.Priority, p.Intervals)
	} else {
		task = domain.NewTask(p.Title, p.ProjectID, p.Type, p.Priority, s.now())
	}
	task.Description = p.Description

	s.tasks = append(s.tasks, task)
	s.persistTasks()
	return task
}

// UpdateTask merges a partial update into the task.
func (s *Store) UpdateTask(id string, patch TaskPatch) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task := s.findTask(id)
	if task == nil {
		return domain.Task{}, errors.NewNotFoundError("task", id)
	}

	if patch.Title != nil {
		task.Title = *patch.Title
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.ProjectID != nil {
		task.ProjectID = *patch.ProjectID
	}
	if patch.Priority != nil {
		task.Priority = *patch.Priority
	}
	if patch.Type != nil {
		task.Type = *patch.Type
	}
	if patch.Logs != nil {
		task.Logs = *patch.Logs
	}
	if patch.Status != nil {
		task.ApplyStatusChange(*patch.Status, s.now())
	}

	s.persistTasks()
	return *task, nil
}

// DeleteTask removes the task unconditionally. There is no soft
// delete and no child entities to clean up.
func (s *Store) DeleteTask(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			s.persistTasks()
			return nil
		}
	}
	return errors.NewNotFoundError("task", id)
}

// ToggleTaskLog flips the target task between idle and tracking. When
// starting a task, any other tracking task is stopped first so at most
// one task is tracking system-wide; the implicitly stopped task gets a
// pause event just like a manual stop.
func (s *Store) ToggleTaskLog(id string) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task := s.findTask(id)
	if task == nil {
		return domain.Task{}, errors.NewNotFoundError("task", id)
	}

	now := s.now()
	if task.IsTracking() {
		task.CloseOpenLog(now, domain.ActionPause)
	} else {
		for i := range s.tasks {
			if s.tasks[i].ID != id {
				s.tasks[i].CloseOpenLog(now, domain.ActionPause)
			}
		}
		task.StartLog(now)
	}

	s.persistTasks()
	return *task, nil
}

// SeedFromStandard creates a real task from a standard-task template,
// with logs pre-filled from the template's intervals resolved against
// the given day.
func (s *Store) SeedFromStandard(standardID string, day time.Time) (domain.Task, error) {
	s.mu.Lock()

	var template *domain.StandardTask
	for i := range s.standards {
		if s.standards[i].ID == standardID {
			template = &s.standards[i]
			break
		}
	}
	if template == nil {
		s.mu.Unlock()
		return domain.Task{}, errors.NewNotFoundError("standard task", standardID)
	}

	intervals, err := template.MaterializeIntervals(day)
	if err != nil {
		s.mu.Unlock()
		return domain.Task{}, errors.NewValidationError("standard task has invalid intervals", err)
	}
	params := AddTaskParams{
		Title:     template.Title,
		ProjectID: template.ProjectID,
		Type:      template.Type,
		Priority:  template.Priority,
		Intervals: intervals,
	}
	s.mu.Unlock()

	if len(intervals) == 0 {
		return domain.Task{}, errors.NewValidationError("standard task has no intervals", nil)
	}

	return s.AddTask(params), nil
}

// Now returns the current time from the store's clock. Callers that
// derive durations from store state use this so tests can pin time.
func (s *Store) Now() time.Time {
	return s.now()
}

// Tasks returns a copy of the task collection.
func (s *Store) Tasks() []domain.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks := make([]domain.Task, len(s.tasks))
	copy(tasks, s.tasks)
	return tasks
}

func (s *Store) findTask(id string) *domain.Task {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return &s.tasks[i]
		}
	}
	return nil
}
