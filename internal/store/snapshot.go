package store

import (
	"context"
	"encoding/json"

	"task-tracker/internal/docstore"
	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
	"task-tracker/internal/logging"
)

func (s *Store) loadAll(ctx context.Context) error {
	if err := loadCollection(ctx, s.docs, docstore.TasksKey(s.userID), &s.tasks, s.revisions); err != nil {
		return err
	}
	if err := loadCollection(ctx, s.docs, docstore.StandardTasksKey(s.userID), &s.standards, s.revisions); err != nil {
		return err
	}
	return loadCollection(ctx, s.docs, docstore.ProjectsKey, &s.projects, s.revisions)
}

func loadCollection[T any](ctx context.Context, docs docstore.Store, key string, out *[]T, revisions map[string]int64) error {
	doc, err := docs.Load(ctx, key)
	if err != nil {
		return err
	}
	if doc == nil {
		return nil
	}
	if err := json.Unmarshal(doc.Body, out); err != nil {
		return errors.NewPersistenceError("decode collection", err).WithContext("key", key)
	}
	revisions[key] = doc.Revision
	return nil
}

// persistTasks mirrors the task collection to the document store. The
// caller must hold the mutex; the snapshot is marshalled synchronously
// and written in the background so mutations never wait on disk.
func (s *Store) persistTasks() {
	s.persist(docstore.TasksKey(s.userID), s.tasks)
}

func (s *Store) persistProjects() {
	s.persist(docstore.ProjectsKey, s.projects)
}

func (s *Store) persistStandards() {
	s.persist(docstore.StandardTasksKey(s.userID), s.standards)
}

type saveRequest struct {
	key  string
	body []byte
}

func (s *Store) persist(key string, collection any) {
	body, err := json.Marshal(collection)
	if err != nil {
		logging.Errorf("failed to encode %s: %v\n", key, err)
		return
	}

	s.saveMu.Lock()
	if s.saveClosed {
		s.saveMu.Unlock()
		logging.Errorf("dropped save of %s: store closed\n", key)
		return
	}
	s.saveQueue = append(s.saveQueue, saveRequest{key: key, body: body})
	s.saveMu.Unlock()

	// callers of persist hold s.mu
	s.pending[key]++

	select {
	case s.saveSignal <- struct{}{}:
	default:
	}
}

// saveLoop drains the write queue in order. Failures are logged and
// dropped; the next save of the same key carries the full collection
// again, so nothing stays missing for long.
func (s *Store) saveLoop() {
	defer close(s.saveDone)

	for range s.saveSignal {
		for {
			s.saveMu.Lock()
			if len(s.saveQueue) == 0 {
				closed := s.saveClosed
				s.saveMu.Unlock()
				if closed {
					return
				}
				break
			}
			req := s.saveQueue[0]
			s.saveQueue = s.saveQueue[1:]
			s.saveMu.Unlock()

			revision, err := s.docs.Save(context.Background(), req.key, req.body)
			if err != nil {
				logging.Errorf("failed to save %s: %v\n", req.key, err)
			}
			s.saveCompleted(req.key, revision)
		}
	}
}

func (s *Store) saveCompleted(key string, revision int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending[key]--
	if revision > s.revisions[key] {
		s.revisions[key] = revision
	}
}

// applySnapshot replaces a local collection with a remote document.
// Snapshots at or below the last known revision are echoes of our own
// writes (or stale) and are dropped, as is anything that arrives while
// local writes are still in flight; newer remote documents win
// wholesale, there is no per-task merge.
func (s *Store) applySnapshot(doc docstore.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending[doc.Key] > 0 || doc.Revision <= s.revisions[doc.Key] {
		return
	}

	var err error
	switch doc.Key {
	case docstore.TasksKey(s.userID):
		var tasks []domain.Task
		if err = json.Unmarshal(doc.Body, &tasks); err == nil {
			s.tasks = tasks
		}
	case docstore.StandardTasksKey(s.userID):
		var standards []domain.StandardTask
		if err = json.Unmarshal(doc.Body, &standards); err == nil {
			s.standards = standards
		}
	case docstore.ProjectsKey:
		var projects []domain.Project
		if err = json.Unmarshal(doc.Body, &projects); err == nil {
			s.projects = projects
		}
	default:
		return
	}

	if err != nil {
		logging.Errorf("failed to decode snapshot %s: %v\n", doc.Key, err)
		return
	}
	s.revisions[doc.Key] = doc.Revision
}
