package repository

import "context"

// Well-known keys in the state store.
const (
	KeyClasses      = "teacherTaskMasterData"
	KeyCurrentClass = "currentClassId"
)

// StateRepo stores opaque string values under string keys.
type StateRepo interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
