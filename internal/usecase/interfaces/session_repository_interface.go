package interfaces

import (
	"context"

	"rawasi_matching/internal/domain/entities"
)

//go:generate mockgen -source=session_repository_interface.go -destination=mocks/session_repository_interface_mock.go -package=mock_interfaces

// ISessionRepository persists the owner's session cells.
//
// Get returns a zero Session (empty ID) when nothing is stored under id.
// Save is last-write-wins: callers always read the latest snapshot, apply
// one change and write it back.
type ISessionRepository interface {
	Get(ctx context.Context, id string) (entities.Session, error)
	Save(ctx context.Context, s entities.Session) (entities.Session, error)
	Delete(ctx context.Context, id string) error
}
