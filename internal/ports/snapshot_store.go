package ports

import "context"

// SnapshotStore keeps named plain-text plan exports.
type SnapshotStore interface {
	Get(ctx context.Context, name string) (string, error)
	Put(ctx context.Context, name string, value string) error
	Delete(ctx context.Context, name string) error
	List(ctx context.Context) ([]string, error)
}
