package docstore

import (
	"context"
	"time"
)

// Collection keys. Task and standard-task documents are namespaced per
// user; the project document is shared across all users.
const (
	TasksKeyPrefix         = "tasks/"
	StandardTasksKeyPrefix = "standard-tasks/"
	ProjectsKey            = "projects"
)

// Document is one whole-collection blob. Collections are always read
// and written as a unit; there are no partial or delta writes. The
// revision is a monotonic counter bumped on every save, which lets
// subscribers decide whether a notification is foreign without
// comparing document contents.
type Document struct {
	Key       string
	Revision  int64
	Body      []byte
	UpdatedAt time.Time
}

// SubscribeFunc receives the full document after each save.
type SubscribeFunc func(Document)

// Store is the persistence collaborator contract: whole-document
// load/save plus a subscription feed of remote changes.
type Store interface {
	// Load returns the document for the key, or nil if absent.
	Load(ctx context.Context, key string) (*Document, error)

	// Save replaces the document body and returns the new revision.
	Save(ctx context.Context, key string, body []byte) (int64, error)

	// Subscribe registers a callback for changes to the key and
	// returns an unsubscribe function. Callbacks run on their own
	// goroutine; the subscriber filters out its own writes by
	// revision.
	Subscribe(key string, fn SubscribeFunc) func()

	// Close releases the underlying resources.
	Close() error
}

// TasksKey returns the task document key for a user.
func TasksKey(userID string) string {
	return TasksKeyPrefix + userID
}

// StandardTasksKey returns the standard-task document key for a user.
func StandardTasksKey(userID string) string {
	return StandardTasksKeyPrefix + userID
}
